package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/GarikMirzoyan/measurecolor/internal/agent"
	"github.com/GarikMirzoyan/measurecolor/internal/agent/config"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg := config.InitConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := agent.NewAgent(cfg, agent.NewHostCollector(), agent.NewSender(cfg.Address, cfg.Key), logger)
	a.Run(ctx)
}
