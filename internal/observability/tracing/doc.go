// Package tracing provides OpenTelemetry tracing integration.
//
// Spans are created through the globally registered tracer provider, so the
// application decides at startup whether spans are exported. Without a provider
// every span is a no-op.
//
// Example usage:
//
//	import "news-contracts/internal/observability/tracing"
//
//	func retrieve(ctx context.Context) {
//	    ctx, span := tracing.Tracer().Start(ctx, "news.retrieve")
//	    defer span.End()
//	}
//
//	client := &http.Client{Transport: tracing.NewTransport(http.DefaultTransport)}
package tracing
