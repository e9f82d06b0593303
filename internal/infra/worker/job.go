// Package worker runs scheduled news retrieval and exposes its health and
// Prometheus metrics.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"news-contracts/internal/domain/entity"
	"news-contracts/internal/observability/logging"
	"news-contracts/internal/usecase/news"
)

// RunRecorder receives the outcome of every run. HealthServer implements it.
type RunRecorder interface {
	RecordRun(items int, err error)
}

// Job collects News from one or more sources on each run.
type Job struct {
	services []*news.Service
	size     int
	timeout  time.Duration
	metrics  *Metrics
	recorder RunRecorder
	logger   *slog.Logger
}

// NewJob creates a job asking every service for size items per run.
// recorder may be nil.
func NewJob(size int, timeout time.Duration, metrics *Metrics, recorder RunRecorder, logger *slog.Logger, services ...*news.Service) (*Job, error) {
	if len(services) == 0 {
		return nil, fmt.Errorf("%w: at least one service is required", news.ErrInvalidArgument)
	}
	if err := news.CheckSize(size); err != nil {
		return nil, err
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive, got %v", news.ErrInvalidArgument, timeout)
	}
	if metrics == nil {
		return nil, fmt.Errorf("%w: metrics must not be nil", news.ErrInvalidArgument)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Job{
		services: services,
		size:     size,
		timeout:  timeout,
		metrics:  metrics,
		recorder: recorder,
		logger:   logger,
	}, nil
}

// Run executes one collection bounded by the job timeout.
func (j *Job) Run(ctx context.Context) ([]*entity.News, error) {
	start := time.Now()
	j.logger.Info("retrieval run started", slog.Int("size", j.size), slog.Int("sources", len(j.services)))

	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	items, err := news.Collect(ctx, j.size, j.services...)
	j.metrics.RecordDuration(time.Since(start).Seconds())
	if j.recorder != nil {
		j.recorder.RecordRun(len(items), err)
	}
	if err != nil {
		j.metrics.RecordRun("failure")
		j.logger.Error("retrieval run failed",
			slog.String("kind", news.ErrorKind(err)),
			slog.String("error", logging.SanitizeError(err)),
			slog.Duration("duration", time.Since(start)))
		return nil, err
	}

	j.metrics.RecordRun("success")
	j.metrics.RecordItems(len(items))
	j.metrics.RecordLastSuccess()

	for _, n := range items {
		j.logger.Debug("headline",
			slog.Int64("id", n.ID()),
			slog.String("news_source", n.Source()),
			slog.String("title", n.Title()))
	}
	j.logger.Info("retrieval run completed",
		slog.Int("items", len(items)),
		slog.Duration("duration", time.Since(start)))
	return items, nil
}
