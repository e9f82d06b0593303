// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - News retrieval metrics (calls, items, duration) per source
//   - News save metrics per source and outcome
//   - Upstream provider HTTP metrics (status, duration)
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
package metrics
