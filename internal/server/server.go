package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GarikMirzoyan/measurecolor/internal/catalog"
	"github.com/GarikMirzoyan/measurecolor/internal/database"
	"github.com/GarikMirzoyan/measurecolor/internal/handlers"
	"github.com/GarikMirzoyan/measurecolor/internal/measures"
	"github.com/GarikMirzoyan/measurecolor/internal/middleware/gzipmiddleware"
	"github.com/GarikMirzoyan/measurecolor/internal/middleware/hmacmiddleware"
	"github.com/GarikMirzoyan/measurecolor/internal/middleware/loggermiddleware"
	"github.com/GarikMirzoyan/measurecolor/internal/middleware/ratelimitmiddleware"
	"github.com/GarikMirzoyan/measurecolor/internal/repositories"
	"github.com/GarikMirzoyan/measurecolor/internal/server/config"
	"github.com/GarikMirzoyan/measurecolor/internal/telemetry"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	shutdownTimeout     = 10 * time.Second
	limiterCleanupEvery = 10 * time.Minute
)

type Server struct {
	storage   measures.MeasureStorage
	telemetry *telemetry.Telemetry
	config    config.Config
	logger    *zap.Logger
}

func NewServer(storage measures.MeasureStorage, tel *telemetry.Telemetry, logger *zap.Logger, config config.Config) *Server {
	return &Server{
		storage:   storage,
		telemetry: tel,
		logger:    logger,
		config:    config,
	}
}

func Run() {
	// Настройка логирования с использованием zap
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	config := config.InitConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tel := telemetry.New()
	rateLimiter := ratelimitmiddleware.NewRateLimiter(config.RateLimit, logger)
	go cleanupLimiter(ctx, rateLimiter)

	var (
		r        *chi.Mux
		memStore *measures.MemStorage
	)
	if config.DBConnectionString == "" {
		// Работаем с in-memory storage
		memStore = measures.NewMemStorage()
		if err := memStore.LoadFromFile(config); err != nil {
			logger.Error("Error loading measures", zap.Error(err))
		}
		go memStore.StartSaving(ctx, config, logger)

		server := NewServer(memStore, tel, logger, config)
		server.SeedCatalog(ctx)
		r = server.Router(rateLimiter, nil)
	} else {
		dbConn, err := database.NewDBConnection(config.DBConnectionString)
		if err != nil {
			logger.Fatal("Error connecting to database", zap.Error(err))
		}
		defer dbConn.Close()

		// Прогон миграций
		if err := dbConn.RunMigrations(); err != nil {
			logger.Fatal("Migration error", zap.Error(err))
		}

		storage := measures.NewDBStorage(repositories.NewMeasureRepository(dbConn))
		server := NewServer(storage, tel, logger, config)
		server.SeedCatalog(ctx)
		r = server.Router(rateLimiter, handlers.NewDBBaseHandlers(dbConn))
	}

	httpServer := &http.Server{
		Addr:    config.Address,
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", zap.Error(err))
		}
	}()

	logger.Info("Starting server", zap.String("address", config.Address))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Error starting server", zap.Error(err))
	}

	if memStore != nil && config.FileStoragePath != "" {
		if err := memStore.SaveToFile(config); err != nil {
			logger.Error("Error saving measures on shutdown", zap.Error(err))
		}
	}
}

// SeedCatalog загружает описания метрик из каталога в хранилище
func (s *Server) SeedCatalog(ctx context.Context) {
	if s.config.CatalogPath == "" {
		return
	}

	metrics, err := catalog.Load(s.config.CatalogPath)
	if err != nil {
		s.logger.Warn("Metric catalog not loaded", zap.String("path", s.config.CatalogPath), zap.Error(err))
		return
	}

	for _, metric := range metrics {
		if err := s.storage.UpsertMetric(ctx, metric); err != nil {
			s.logger.Error("Error seeding metric", zap.String("metric", metric.Key), zap.Error(err))
		}
	}
	s.logger.Info("Metric catalog loaded", zap.Int("metrics", len(metrics)))
}

// Router собирает маршруты; dbHandlers может быть nil без базы данных
func (s *Server) Router(rateLimiter *ratelimitmiddleware.RateLimiter, dbHandlers *handlers.DBBaseHandler) *chi.Mux {
	r := chi.NewRouter()

	SetMiddlewares(r, s.logger, rateLimiter, s.config.Key)
	SetMeasureRoutes(r, handlers.NewMeasureHandlers(s.storage, s.telemetry, s.logger))
	r.Handle("/metrics", s.telemetry.Handler())
	if dbHandlers != nil {
		SetDBRoutes(r, dbHandlers)
	}
	return r
}

func SetMiddlewares(r *chi.Mux, logger *zap.Logger, rateLimiter *ratelimitmiddleware.RateLimiter, key string) {
	r.Use(func(next http.Handler) http.Handler {
		return loggermiddleware.Logger(next, logger)
	})
	r.Use(rateLimiter.Middleware)
	r.Use(gzipmiddleware.GzipDecompression) // Разжатие входящих данных
	r.Use(gzipmiddleware.GzipCompression)   // Сжатие исходящих данных
	// Подпись считается по несжатому телу
	r.Use(hmacmiddleware.NewHMACMiddleware(key).Middleware)
}

func SetMeasureRoutes(r *chi.Mux, handlers handlers.MeasureHandlers) {
	r.Post("/metric/", handlers.UpsertMetricHandler)
	r.Get("/metric/{key}", handlers.GetMetricHandler)
	r.Post("/update/", handlers.UpdateHandlerJSON)
	r.Post("/updates/", handlers.BatchUpdateHandler)
	r.Get("/value/{metric}/{component}", handlers.GetValueHandler)
	r.Get("/color/{metric}/{component}", handlers.ColorHandler)
	r.Get("/badge/{metric}/{component}", handlers.BadgeHandler)
	r.Get("/", handlers.RootHandler)
}

func SetDBRoutes(r *chi.Mux, handlers *handlers.DBBaseHandler) {
	r.Get("/ping", handlers.PingDBHandler)
}

func cleanupLimiter(ctx context.Context, rl *ratelimitmiddleware.RateLimiter) {
	ticker := time.NewTicker(limiterCleanupEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.Cleanup(limiterCleanupEvery)
		}
	}
}
