package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	workerPkg "news-contracts/internal/infra/worker"
)

// startMetricsServer serves Prometheus metrics and health probes on port in a
// background goroutine. The server shuts down when ctx is canceled.
//
// Endpoints:
//   - GET /metrics - Prometheus metrics
//   - GET /health - liveness with the last run outcome
//   - GET /health/ready - readiness, 503 until the scheduler is running
func startMetricsServer(ctx context.Context, logger *slog.Logger, port int) *workerPkg.HealthServer {
	server := workerPkg.NewHealthServer(fmt.Sprintf(":%d", port), logger)
	server.Handle("/metrics", promhttp.Handler())

	go func() {
		if err := server.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", slog.Any("error", err))
		}
	}()
	return server
}
