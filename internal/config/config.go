// Package config loads the runtime configuration shared by the news binaries.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"news-contracts/internal/infra/newsapi"
	"news-contracts/internal/infra/source"
	envcfg "news-contracts/pkg/config"
)

// Config holds settings for selecting and tuning a news source and for the
// worker that polls it.
type Config struct {
	// Source selects the Contracts implementation: "remote" or "synthetic".
	// Env: NEWS_SOURCE. Default: "synthetic"
	Source source.Kind

	// APIKey authenticates against NewsAPI. Required when Source is "remote".
	// Env: NEWSAPI_KEY
	APIKey string

	// BaseURL is the provider root. Env: NEWSAPI_BASE_URL. Default: https://newsapi.org
	BaseURL string

	// Timeout bounds one provider request. Env: NEWSAPI_TIMEOUT. Default: 15s
	Timeout time.Duration

	// RateLimit is requests per second towards the provider; 0 disables throttling.
	// Env: NEWSAPI_RATE_LIMIT
	RateLimit float64

	// RateBurst is the token bucket size. Env: NEWSAPI_RATE_BURST. Default: 1
	RateBurst int

	// CircuitBreaker enables the provider circuit breaker.
	// Env: NEWSAPI_CIRCUIT_BREAKER. Default: true
	CircuitBreaker bool

	// PageSize is how many items one retrieval asks for.
	// Env: NEWS_PAGE_SIZE. Default: 20
	PageSize int

	// SyntheticSeed fixes synthetic output; 0 means random. Env: SYNTHETIC_SEED
	SyntheticSeed int64

	// CronSchedule is the worker polling schedule (5-field cron).
	// Env: WORKER_CRON_SCHEDULE. Default: "*/30 * * * *"
	CronSchedule string

	// Timezone for the cron schedule. Env: WORKER_TIMEZONE. Default: "UTC"
	Timezone string

	// JobTimeout bounds a single worker run. Env: WORKER_JOB_TIMEOUT. Default: 2m
	JobTimeout time.Duration

	// MetricsPort serves /metrics and /health. Env: METRICS_PORT. Default: 9090
	MetricsPort int

	// LogLevel is debug, info, warn or error. Env: LOG_LEVEL. Default: info
	LogLevel string

	// LogFormat is json or text. Env: LOG_FORMAT. Default: json
	LogFormat string
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return Config{
		Source:         source.KindSynthetic,
		BaseURL:        newsapi.DefaultBaseURL,
		Timeout:        15 * time.Second,
		RateBurst:      1,
		CircuitBreaker: true,
		PageSize:       20,
		CronSchedule:   "*/30 * * * *",
		Timezone:       "UTC",
		JobTimeout:     2 * time.Minute,
		MetricsPort:    9090,
		LogLevel:       "info",
		LogFormat:      "json",
	}
}

// LoadFromEnv overlays environment variables on DefaultConfig and validates
// the result. Malformed numbers and durations fall back to their defaults with
// a warning; values that parse but break a rule are reported by Validate.
func LoadFromEnv() (*Config, error) {
	d := DefaultConfig()
	cfg := &Config{
		Source:         source.Kind(strings.ToLower(envcfg.GetEnvString("NEWS_SOURCE", string(d.Source)))),
		APIKey:         envcfg.GetEnvString("NEWSAPI_KEY", ""),
		BaseURL:        envcfg.GetEnvString("NEWSAPI_BASE_URL", d.BaseURL),
		Timeout:        envcfg.GetEnvDuration("NEWSAPI_TIMEOUT", d.Timeout),
		RateLimit:      envcfg.GetEnvFloat("NEWSAPI_RATE_LIMIT", d.RateLimit),
		RateBurst:      envcfg.GetEnvInt("NEWSAPI_RATE_BURST", d.RateBurst),
		CircuitBreaker: envcfg.GetEnvBool("NEWSAPI_CIRCUIT_BREAKER", d.CircuitBreaker),
		PageSize:       envcfg.GetEnvInt("NEWS_PAGE_SIZE", d.PageSize),
		SyntheticSeed:  envcfg.GetEnvInt64("SYNTHETIC_SEED", d.SyntheticSeed),
		CronSchedule:   envcfg.GetEnvString("WORKER_CRON_SCHEDULE", d.CronSchedule),
		Timezone:       envcfg.GetEnvString("WORKER_TIMEZONE", d.Timezone),
		JobTimeout:     envcfg.GetEnvDuration("WORKER_JOB_TIMEOUT", d.JobTimeout),
		MetricsPort:    envcfg.GetEnvInt("METRICS_PORT", d.MetricsPort),
		LogLevel:       strings.ToLower(envcfg.GetEnvString("LOG_LEVEL", d.LogLevel)),
		LogFormat:      strings.ToLower(envcfg.GetEnvString("LOG_FORMAT", d.LogFormat)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and reports all violations together.
func (c *Config) Validate() error {
	var errs []error

	if !c.Source.IsValid() {
		errs = append(errs, fmt.Errorf("source: must be %q or %q, got %q", source.KindRemote, source.KindSynthetic, c.Source))
	}
	if c.Source == source.KindRemote && strings.TrimSpace(c.APIKey) == "" {
		errs = append(errs, errors.New("api key: NEWSAPI_KEY is required for the remote source"))
	}
	if err := envcfg.ValidateHTTPURL(c.BaseURL); err != nil {
		errs = append(errs, fmt.Errorf("base url: %w", err))
	}
	if err := envcfg.ValidateDurationRange(c.Timeout, time.Second, 2*time.Minute); err != nil {
		errs = append(errs, fmt.Errorf("timeout: %w", err))
	}
	if c.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("rate limit: must be >= 0, got %v", c.RateLimit))
	}
	if err := envcfg.ValidateIntRange(c.RateBurst, 1, 100); err != nil {
		errs = append(errs, fmt.Errorf("rate burst: %w", err))
	}
	// NewsAPI caps pageSize at 100.
	if err := envcfg.ValidateIntRange(c.PageSize, 1, 100); err != nil {
		errs = append(errs, fmt.Errorf("page size: %w", err))
	}
	if c.SyntheticSeed < 0 {
		errs = append(errs, fmt.Errorf("synthetic seed: must be >= 0, got %d", c.SyntheticSeed))
	}
	if err := envcfg.ValidateCronSchedule(c.CronSchedule); err != nil {
		errs = append(errs, fmt.Errorf("cron schedule: %w", err))
	}
	if err := envcfg.ValidateTimezone(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if err := envcfg.ValidatePositiveDuration(c.JobTimeout); err != nil {
		errs = append(errs, fmt.Errorf("job timeout: %w", err))
	}
	if err := envcfg.ValidateIntRange(c.MetricsPort, 1024, 65535); err != nil {
		errs = append(errs, fmt.Errorf("metrics port: %w", err))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log level: unknown level %q", c.LogLevel))
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log format: unknown format %q", c.LogFormat))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// HTTPConfig derives the provider transport settings.
func (c *Config) HTTPConfig() newsapi.HTTPConfig {
	hc := newsapi.DefaultHTTPConfig()
	hc.BaseURL = c.BaseURL
	hc.Timeout = c.Timeout
	hc.RateLimit = c.RateLimit
	hc.RateBurst = c.RateBurst
	hc.CircuitBreaker = c.CircuitBreaker
	return hc
}

// String renders the configuration for logs with the API key masked.
func (c Config) String() string {
	key := ""
	if c.APIKey != "" {
		key = "****"
	}
	return fmt.Sprintf("source=%s api_key=%s base_url=%s page_size=%d schedule=%q timezone=%s",
		c.Source, key, c.BaseURL, c.PageSize, c.CronSchedule, c.Timezone)
}
