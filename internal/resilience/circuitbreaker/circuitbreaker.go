// Package circuitbreaker stops calls to the news provider after repeated failures.
// It uses github.com/sony/gobreaker and publishes the breaker state as the
// news_upstream_circuit_open gauge.
package circuitbreaker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"news-contracts/internal/observability/metrics"
)

// ErrOpen is returned while the breaker rejects calls. The returned error also
// matches the gobreaker sentinel that caused the rejection.
var ErrOpen = errors.New("circuit open")

// Config holds the configuration for a circuit breaker.
type Config struct {
	// Name labels log lines and the circuit gauge
	Name string

	// MaxRequests is the number of trial calls allowed while half-open
	MaxRequests uint32

	// Interval clears the closed-state counts; 0 never clears them
	Interval time.Duration

	// Timeout is how long the breaker stays open before a trial call
	Timeout time.Duration

	// FailureThreshold is the failure ratio that trips the breaker, in (0, 1]
	FailureThreshold float64

	// MinRequests is the number of calls seen before the ratio is evaluated
	MinRequests uint32
}

// NewsAPIConfig returns the breaker settings for the news provider transport.
// Five consecutive 5xx or I/O failures are enough to open it.
func NewsAPIConfig() Config {
	return Config{
		Name:             "newsapi",
		MaxRequests:      1,
		Interval:         60 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 0.7,
		MinRequests:      5,
	}
}

// Validate checks that the configuration can trip and recover.
func (c Config) Validate() error {
	var errs []error
	if c.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if c.FailureThreshold <= 0 || c.FailureThreshold > 1 {
		errs = append(errs, fmt.Errorf("failure threshold must be in (0, 1], got %v", c.FailureThreshold))
	}
	if c.MinRequests < 1 {
		errs = append(errs, errors.New("min requests must be at least 1"))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %v", c.Timeout))
	}
	return errors.Join(errs...)
}

// Breaker guards one upstream dependency.
type Breaker struct {
	cb   *gobreaker.CircuitBreaker
	name string
}

// New creates a closed breaker. State changes are logged on logger and
// recorded on the circuit gauge. A nil logger uses slog.Default().
func New(cfg Config, logger *slog.Logger) (*Breaker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid circuit breaker config: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureThreshold
		},
		// A caller giving up says nothing about the provider.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
			metrics.RecordCircuitState(name, to == gobreaker.StateOpen)
		},
	}

	metrics.RecordCircuitState(cfg.Name, false)
	return &Breaker{
		cb:   gobreaker.NewCircuitBreaker(settings),
		name: cfg.Name,
	}, nil
}

// Do runs fn through b. fn's result is returned even when fn also fails, so a
// response can count as a failure and still reach the caller. Rejected calls
// return the zero T and an error matching ErrOpen.
func Do[T any](b *Breaker, fn func() (T, error)) (T, error) {
	v, err := b.cb.Execute(func() (interface{}, error) {
		return fn()
	})
	res, _ := v.(T)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return res, fmt.Errorf("%w: %s: %w", ErrOpen, b.name, err)
	}
	return res, err
}
