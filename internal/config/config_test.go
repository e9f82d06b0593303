package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-contracts/internal/infra/source"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, source.KindSynthetic, cfg.Source)
	assert.Equal(t, "https://newsapi.org", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, 20, cfg.PageSize)
	assert.True(t, cfg.CircuitBreaker)
	assert.Equal(t, "*/30 * * * *", cfg.CronSchedule)
	assert.Equal(t, 9090, cfg.MetricsPort)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"NEWS_SOURCE", "NEWSAPI_KEY", "NEWSAPI_BASE_URL", "NEWSAPI_TIMEOUT",
		"NEWSAPI_RATE_LIMIT", "NEWSAPI_RATE_BURST", "NEWSAPI_CIRCUIT_BREAKER",
		"NEWS_PAGE_SIZE", "SYNTHETIC_SEED", "WORKER_CRON_SCHEDULE", "WORKER_TIMEZONE",
		"WORKER_JOB_TIMEOUT", "METRICS_PORT", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoadFromEnv_CustomValues(t *testing.T) {
	t.Setenv("NEWS_SOURCE", "Remote")
	t.Setenv("NEWSAPI_KEY", "abc123")
	t.Setenv("NEWSAPI_BASE_URL", "http://localhost:8081")
	t.Setenv("NEWSAPI_TIMEOUT", "5s")
	t.Setenv("NEWSAPI_RATE_LIMIT", "0.5")
	t.Setenv("NEWSAPI_RATE_BURST", "2")
	t.Setenv("NEWSAPI_CIRCUIT_BREAKER", "false")
	t.Setenv("NEWS_PAGE_SIZE", "50")
	t.Setenv("SYNTHETIC_SEED", "99")
	t.Setenv("WORKER_CRON_SCHEDULE", "0 * * * *")
	t.Setenv("WORKER_TIMEZONE", "Asia/Tokyo")
	t.Setenv("WORKER_JOB_TIMEOUT", "30s")
	t.Setenv("METRICS_PORT", "9100")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, source.KindRemote, cfg.Source)
	assert.Equal(t, "abc123", cfg.APIKey)
	assert.Equal(t, "http://localhost:8081", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.InDelta(t, 0.5, cfg.RateLimit, 1e-9)
	assert.Equal(t, 2, cfg.RateBurst)
	assert.False(t, cfg.CircuitBreaker)
	assert.Equal(t, 50, cfg.PageSize)
	assert.Equal(t, int64(99), cfg.SyntheticSeed)
	assert.Equal(t, "0 * * * *", cfg.CronSchedule)
	assert.Equal(t, "Asia/Tokyo", cfg.Timezone)
	assert.Equal(t, 30*time.Second, cfg.JobTimeout)
	assert.Equal(t, 9100, cfg.MetricsPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)

	hc := cfg.HTTPConfig()
	assert.Equal(t, "http://localhost:8081", hc.BaseURL)
	assert.Equal(t, 5*time.Second, hc.Timeout)
	assert.InDelta(t, 0.5, hc.RateLimit, 1e-9)
	assert.Equal(t, 2, hc.RateBurst)
	assert.False(t, hc.CircuitBreaker)
}

func TestLoadFromEnv_RemoteRequiresKey(t *testing.T) {
	t.Setenv("NEWS_SOURCE", "remote")
	t.Setenv("NEWSAPI_KEY", "")

	cfg, err := LoadFromEnv()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "NEWSAPI_KEY")
}

func TestLoadFromEnv_MalformedFallsBack(t *testing.T) {
	t.Setenv("NEWS_SOURCE", "synthetic")
	t.Setenv("NEWS_PAGE_SIZE", "lots")
	t.Setenv("NEWSAPI_TIMEOUT", "forever")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.PageSize)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(c *Config) {}, ""},
		{"unknown source", func(c *Config) { c.Source = "kafka" }, "source"},
		{"bad base url", func(c *Config) { c.BaseURL = "newsapi.org" }, "base url"},
		{"timeout too short", func(c *Config) { c.Timeout = time.Millisecond }, "timeout"},
		{"negative rate", func(c *Config) { c.RateLimit = -1 }, "rate limit"},
		{"zero burst", func(c *Config) { c.RateBurst = 0 }, "rate burst"},
		{"page size zero", func(c *Config) { c.PageSize = 0 }, "page size"},
		{"page size over cap", func(c *Config) { c.PageSize = 101 }, "page size"},
		{"negative seed", func(c *Config) { c.SyntheticSeed = -1 }, "synthetic seed"},
		{"bad cron", func(c *Config) { c.CronSchedule = "every day" }, "cron schedule"},
		{"bad timezone", func(c *Config) { c.Timezone = "Nowhere/City" }, "timezone"},
		{"zero job timeout", func(c *Config) { c.JobTimeout = 0 }, "job timeout"},
		{"privileged port", func(c *Config) { c.MetricsPort = 80 }, "metrics port"},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, "log level"},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, "log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Validate_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PageSize = 0
	cfg.LogFormat = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page size")
	assert.Contains(t, err.Error(), "log format")
}

func TestConfig_String_MasksKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIKey = "very-secret"

	s := cfg.String()
	assert.NotContains(t, s, "very-secret")
	assert.Contains(t, s, "api_key=****")
}
