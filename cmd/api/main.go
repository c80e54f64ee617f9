package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"gasthof/internal/api"
	"gasthof/internal/config"
	"gasthof/internal/database"
	"gasthof/internal/domain"
	"gasthof/internal/events"
	"gasthof/internal/export"
	"gasthof/internal/extract"
	"gasthof/internal/google"
	"gasthof/internal/logging"
	"gasthof/internal/metrics"
	"gasthof/internal/notify"
	"gasthof/internal/pricing"
	"gasthof/internal/repository"
	"gasthof/internal/search"
	"gasthof/internal/service"
	"gasthof/internal/worker"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	cfg, logger, closer, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer (func() { _ = closer.Close() })()
	}

	if err := prepareDirectories(cfg, &logger); err != nil {
		return err
	}

	db, err := database.NewDB(cfg.Database.Path, &logger)
	if err != nil {
		logger.Error().Err(err).Str("db_path", cfg.Database.Path).Msg("init database")
		return err
	}
	defer db.Close()

	catalog, err := pricing.NewCatalog(cfg.Hotel.Rooms, cfg.Hotel.MeetingRooms)
	if err != nil {
		logger.Error().Err(err).Msg("build room catalog")
		return err
	}

	if !cfg.API.Enabled {
		logger.Warn().Msg("API is disabled in config, but starting API application. Check your config.")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	extractor, err := extract.NewGeminiExtractor(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, &logger)
	if err != nil {
		logger.Error().Err(err).Msg("init gemini extractor")
		return err
	}
	defer extractor.Close()

	index, embedderCloser, err := initSearchIndex(ctx, cfg, &logger)
	if err != nil {
		return err
	}
	if embedderCloser != nil {
		defer (func() { _ = embedderCloser.Close() })()
	}

	redisClient := initRedis(ctx, cfg, &logger)
	if redisClient != nil {
		defer redisClient.Close()
	}
	resultCache := buildResultCache(cfg, redisClient, &logger)

	sheetsService := initGoogleSheets(cfg, &logger)

	var sheetsWorker *worker.SheetsWorker
	if sheetsService != nil {
		retryPolicy := worker.RetryPolicy{MaxRetries: 5, InitialDelay: 2 * time.Second, MaxDelay: time.Minute, BackoffFactor: 2}
		sheetsWorker = worker.NewSheetsWorker(db, sheetsService, redisClient, retryPolicy, &logger)
		go sheetsWorker.Start(ctx)
	}

	eventBus := events.NewEventBus()
	if cfg.Telegram.Enabled {
		if err := registerTelegramNotifier(cfg, eventBus, &logger); err != nil {
			return err
		}
	}

	var syncWorker domain.SyncWorker
	if sheetsWorker != nil {
		syncWorker = sheetsWorker
	}
	bookingService := service.NewBookingService(db, catalog, extractor, eventBus, syncWorker, &logger)

	exporter := export.NewExporter(cfg.Exports.Path, &logger)

	httpServer := api.NewHTTPServer(cfg.API, bookingService, index, resultCache, exporter, &logger)

	if cfg.Backup.Enabled {
		backupService := database.NewBackupService(cfg.Database.Path, cfg.Backup, &logger)
		go backupService.Start(ctx)
	}

	startMetrics(ctx, cfg, &logger)

	return startServer(ctx, httpServer, cfg, &logger)
}

func loadConfigAndLogger() (*config.Config, zerolog.Logger, io.Closer, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("load config: %w", err)
	}

	baseLogger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("init logger: %w", err)
	}
	logger := baseLogger.With().Str("component", "api-main").Logger()

	return cfg, logger, closer, nil
}

func prepareDirectories(cfg *config.Config, logger *zerolog.Logger) error {
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		logger.Error().Err(err).Msg("create database directory")
		return err
	}
	if cfg.Exports.Path != "" {
		if err := os.MkdirAll(cfg.Exports.Path, 0o755); err != nil {
			logger.Error().Err(err).Msg("create exports directory")
			return err
		}
	}
	return nil
}

func initSearchIndex(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*search.Index, io.Closer, error) {
	embedder, err := search.NewGeminiEmbedder(ctx, cfg.Gemini.APIKey, cfg.Gemini.EmbeddingModel)
	if err != nil {
		logger.Error().Err(err).Msg("init gemini embedder")
		return nil, nil, err
	}

	index := search.NewIndex(embedder, cfg.Hotel.ProfilePath, cfg.Search.TopK, cfg.Search.SimilarityThreshold, logger)
	if err := index.Rebuild(ctx); err != nil {
		logger.Warn().Err(err).Msg("initial search index build failed, continuing with empty index")
	}
	return index, embedder, nil
}

func initRedis(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) *redis.Client {
	if cfg.Redis.Address == "" {
		return nil
	}

	redisClient := repository.NewRedisClient(cfg.Redis)
	if err := repository.Ping(ctx, redisClient); err != nil {
		logger.Warn().Err(err).Msg("redis connection failed, continuing without redis")
		return nil
	}

	logger.Info().Str("addr", cfg.Redis.Address).Msg("redis connected")
	return redisClient
}

func buildResultCache(cfg *config.Config, redisClient *redis.Client, logger *zerolog.Logger) *repository.FailoverResultCache {
	ttl := time.Duration(cfg.Search.CacheTTLMinutes) * time.Minute
	primary := repository.NewRedisResultCache(redisClient, ttl)
	fallback := repository.NewMemoryResultCache(ttl)
	return repository.NewFailoverResultCache(primary, fallback, logger)
}

func initGoogleSheets(cfg *config.Config, logger *zerolog.Logger) *google.SheetsService {
	if cfg.Google.GoogleCredentialsFile == "" || cfg.Google.BookingSpreadSheetID == "" {
		return nil
	}

	sheetsService, err := google.NewSheetsService(cfg.Google.GoogleCredentialsFile, cfg.Google.BookingSpreadSheetID)
	if err != nil {
		logger.Warn().Err(err).Msg("google sheets init failed, continuing without sheets")
		return nil
	}

	logger.Info().Msg("google sheets connected")
	return sheetsService
}

func registerTelegramNotifier(cfg *config.Config, bus *events.EventBus, logger *zerolog.Logger) error {
	botAPI, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		logger.Error().Err(err).Msg("init telegram bot")
		return err
	}
	botAPI.Debug = cfg.Telegram.Debug

	notifier := notify.NewTelegramNotifier(botAPI, cfg.Telegram.StaffChatID, logger)
	notifier.Register(bus)
	logger.Info().Int64("chat_id", cfg.Telegram.StaffChatID).Msg("telegram notifications enabled")
	return nil
}

func startMetrics(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) {
	if !cfg.Monitoring.PrometheusEnabled {
		return
	}

	metrics.Register()
	port := cfg.Monitoring.PrometheusPort
	if port == 0 {
		port = 9090
	}
	go startMetricsServer(ctx, port, logger)
}

func startServer(ctx context.Context, httpServer *api.HTTPServer, cfg *config.Config, logger *zerolog.Logger) error {
	go func() {
		if !cfg.API.HTTP.Enabled {
			return
		}
		if err := httpServer.Start(); err != nil {
			logger.Error().Err(err).Msg("http server stopped")
		}
	}()

	logger.Info().Int("http_port", cfg.API.HTTP.Port).Msg("API server started")

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = httpServer.Shutdown(shutdownCtx)

	logger.Info().Msg("API server stopped")
	return nil
}

func startMetricsServer(ctx context.Context, port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("metrics server error")
	}
}
