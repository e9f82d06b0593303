package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	"news-contracts/internal/config"
	"news-contracts/internal/infra/source"
	workerPkg "news-contracts/internal/infra/worker"
	"news-contracts/internal/observability/logging"
	"news-contracts/internal/usecase/news"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("failed to load .env", slog.Any("error", err))
		os.Exit(1)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := initLogger(cfg)
	logger.Info("worker configuration loaded",
		slog.String("config", cfg.String()),
		slog.Duration("job_timeout", cfg.JobTimeout),
		slog.Int("metrics_port", cfg.MetricsPort))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := setupNewsService(logger, cfg)

	workerMetrics := workerPkg.NewMetrics(prometheus.DefaultRegisterer)
	healthServer := startMetricsServer(ctx, logger, cfg.MetricsPort)

	job, err := workerPkg.NewJob(cfg.PageSize, cfg.JobTimeout, workerMetrics, healthServer, logger, svc)
	if err != nil {
		logger.Error("failed to create retrieval job", slog.Any("error", err))
		os.Exit(1)
	}

	runCronWorker(ctx, logger, cfg, job, healthServer)
}

// initLogger initializes the default structured logger from configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	logger := logging.New(os.Stdout, cfg.LogFormat, cfg.LogLevel)
	slog.SetDefault(logger)
	return logger
}

// setupNewsService builds the configured news source wrapped in a Service.
func setupNewsService(logger *slog.Logger, cfg *config.Config) *news.Service {
	contracts, err := source.New(cfg.Source, cfg.APIKey, cfg.HTTPConfig(),
		source.WithLogger(logger),
		source.WithSeed(uint64(cfg.SyntheticSeed)))
	if err != nil {
		logger.Error("failed to create news source", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("news source initialized", slog.String("news_source", string(cfg.Source)))
	return news.NewService(string(cfg.Source), contracts, logger)
}

// runCronWorker schedules the retrieval job and blocks until ctx is canceled.
func runCronWorker(ctx context.Context, logger *slog.Logger, cfg *config.Config, job *workerPkg.Job, healthServer *workerPkg.HealthServer) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone, using UTC", slog.String("timezone", cfg.Timezone), slog.Any("error", err))
		loc = time.UTC
	}

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	_, err = c.AddFunc(cfg.CronSchedule, func() {
		// Errors are logged and counted by the job.
		_, _ = job.Run(ctx)
	})
	if err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()

	healthServer.SetReady(true)
	logger.Info("worker started", slog.String("schedule", cfg.CronSchedule), slog.String("timezone", loc.String()))

	<-ctx.Done()
	logger.Info("shutdown signal received")
	healthServer.SetReady(false)

	// Wait for a running job to finish.
	stopped := c.Stop()
	select {
	case <-stopped.Done():
	case <-time.After(cfg.JobTimeout):
		logger.Warn("timed out waiting for running job")
	}
	logger.Info("worker stopped")
}
