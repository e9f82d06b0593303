// Package observability provides the observability infrastructure of the news
// retrieval service: structured logging, Prometheus metrics and OpenTelemetry tracing.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus metrics for news retrieval and upstream calls
//   - tracing: OpenTelemetry spans for retrieval and outgoing HTTP requests
//
// Example usage:
//
//	import (
//	    "news-contracts/internal/observability/logging"
//	    "news-contracts/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("application started")
//
//	    metrics.RecordNewsRetrieved("newsapi", 10)
//	}
package observability
