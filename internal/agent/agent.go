package agent

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/GarikMirzoyan/measurecolor/internal/agent/config"
	"github.com/GarikMirzoyan/measurecolor/internal/dto"
	"go.uber.org/zap"
)

type batchSender interface {
	SendBatch(ctx context.Context, measures []dto.Measure) error
}

type Agent struct {
	config    config.Config
	collector Collector
	sender    batchSender
	logger    *zap.Logger

	mu     sync.Mutex
	latest map[string]float64
	// Значения из последнего успешного отчёта
	reported map[string]float64
}

func NewAgent(config config.Config, collector Collector, sender batchSender, logger *zap.Logger) *Agent {
	return &Agent{
		config:    config,
		collector: collector,
		sender:    sender,
		logger:    logger,
		latest:    make(map[string]float64),
		reported:  make(map[string]float64),
	}
}

// Run опрашивает хост и отправляет отчёты до отмены ctx
func (a *Agent) Run(ctx context.Context) {
	tickerPoll := time.NewTicker(a.config.PollInterval)
	defer tickerPoll.Stop()
	tickerReport := time.NewTicker(a.config.ReportInterval)
	defer tickerReport.Stop()

	a.logger.Info("Agent started",
		zap.String("address", a.config.Address),
		zap.String("component", a.config.Component),
	)

	for {
		select {
		case <-ctx.Done():
			return
		case <-tickerPoll.C:
			if err := a.Poll(ctx); err != nil {
				a.logger.Warn("Error collecting measures", zap.Error(err))
			}
		case <-tickerReport.C:
			if err := a.Report(ctx); err != nil {
				a.logger.Error("Error sending measures", zap.Error(err))
			}
		}
	}
}

func (a *Agent) Poll(ctx context.Context) error {
	collected, err := a.collector.Collect(ctx)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	for key, value := range collected {
		a.latest[key] = value
	}
	return nil
}

// Report отправляет последние значения; первая вариация - изменение с прошлого отчёта
func (a *Agent) Report(ctx context.Context) error {
	a.mu.Lock()
	batch := a.buildBatchLocked()
	snapshot := make(map[string]float64, len(a.latest))
	for key, value := range a.latest {
		snapshot[key] = value
	}
	a.mu.Unlock()

	if err := a.sender.SendBatch(ctx, batch); err != nil {
		return err
	}

	a.mu.Lock()
	a.reported = snapshot
	a.mu.Unlock()
	return nil
}

func (a *Agent) buildBatchLocked() []dto.Measure {
	keys := make([]string, 0, len(a.latest))
	for key := range a.latest {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	batch := make([]dto.Measure, 0, len(keys))
	for _, key := range keys {
		value := a.latest[key]
		measure := dto.Measure{
			Metric:    key,
			Component: a.config.Component,
			Value:     &value,
		}
		if previous, ok := a.reported[key]; ok {
			delta := value - previous
			measure.Variations = []*float64{&delta}
		}
		batch = append(batch, measure)
	}
	return batch
}
