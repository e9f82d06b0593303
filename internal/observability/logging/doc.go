// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the application.
//
// Key features:
//   - JSON and text output formats
//   - Retrieval ID propagation
//   - Context-aware logging
//   - Configurable log levels
//
// Example usage:
//
//	import "news-contracts/internal/observability/logging"
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("application started", slog.String("version", "1.0"))
//	}
//
//	func retrieve(ctx context.Context) {
//	    ctx = logging.WithRetrievalID(ctx, uuid.NewString())
//	    logger := logging.WithContextFields(ctx, slog.Default())
//	    logger.Info("retrieving news")
//	}
package logging
