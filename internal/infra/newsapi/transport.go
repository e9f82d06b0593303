package newsapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"news-contracts/internal/observability/metrics"
	"news-contracts/internal/observability/tracing"
	"news-contracts/internal/resilience/circuitbreaker"
)

// Response is the raw outcome of a provider request.
type Response struct {
	StatusCode int
	Body       []byte
}

// Successful reports whether the status code is in the 2xx range.
func (r *Response) Successful() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Transport issues parameterized GET requests against the provider.
// An error means no usable response was obtained; any HTTP status, including
// 4xx and 5xx, is a Response.
type Transport interface {
	Get(ctx context.Context, path string, query url.Values) (*Response, error)
}

// HTTPConfig configures HTTPTransport.
type HTTPConfig struct {
	// BaseURL is the provider root, e.g. "https://newsapi.org"
	BaseURL string

	// Timeout bounds a whole request including reading the body
	Timeout time.Duration

	// UserAgent is sent with every request
	UserAgent string

	// MaxBodyBytes caps how much of a response body is read
	MaxBodyBytes int64

	// RateLimit is the sustained requests per second; 0 disables throttling
	RateLimit float64

	// RateBurst is the token bucket size used when RateLimit > 0
	RateBurst int

	// CircuitBreaker enables a breaker that opens on repeated 5xx or I/O failures
	CircuitBreaker bool
}

// DefaultHTTPConfig returns the configuration used when nothing is overridden.
func DefaultHTTPConfig() HTTPConfig {
	return HTTPConfig{
		BaseURL:      DefaultBaseURL,
		Timeout:      15 * time.Second,
		UserAgent:    "news-contracts/1.0",
		MaxBodyBytes: 5 << 20, // 5MB
	}
}

// errUpstreamUnavailable marks a 5xx response as a breaker failure without
// turning it into a transport error for the caller.
var errUpstreamUnavailable = errors.New("upstream unavailable")

// HTTPTransport is the net/http implementation of Transport.
// Timeouts, throttling and circuit breaking are policies of this collaborator only.
type HTTPTransport struct {
	baseURL      *url.URL
	client       *http.Client
	userAgent    string
	maxBodyBytes int64
	limiter      *RateLimiter
	breaker      *circuitbreaker.Breaker
}

// NewHTTPTransport builds a transport from cfg. Outgoing requests are traced.
func NewHTTPTransport(cfg HTTPConfig) (*HTTPTransport, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("base URL must use http or https scheme, got %q", cfg.BaseURL)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("base URL must have a host, got %q", cfg.BaseURL)
	}

	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultHTTPConfig().MaxBodyBytes
	}

	t := &HTTPTransport{
		baseURL: base,
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: tracing.NewTransport(http.DefaultTransport),
		},
		userAgent:    cfg.UserAgent,
		maxBodyBytes: maxBody,
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		t.limiter = NewRateLimiter(cfg.RateLimit, burst)
	}
	if cfg.CircuitBreaker {
		breaker, err := circuitbreaker.New(circuitbreaker.NewsAPIConfig(), nil)
		if err != nil {
			return nil, fmt.Errorf("create circuit breaker: %w", err)
		}
		t.breaker = breaker
	}
	return t, nil
}

// Get implements Transport.
func (t *HTTPTransport) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	if t.limiter != nil {
		if err := t.limiter.Allow(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	if t.breaker == nil {
		return t.do(ctx, path, query)
	}

	resp, err := circuitbreaker.Do(t.breaker, func() (*Response, error) {
		resp, err := t.do(ctx, path, query)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= 500 {
			return resp, errUpstreamUnavailable
		}
		return resp, nil
	})
	if errors.Is(err, errUpstreamUnavailable) {
		return resp, nil
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// do performs one request without throttling or circuit breaking.
func (t *HTTPTransport) do(ctx context.Context, path string, query url.Values) (*Response, error) {
	u := t.baseURL.JoinPath(path)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create http request: %w", redact(err, path))
	}
	req.Header.Set("Accept", "application/json")
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}

	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest(path, 0, time.Since(start))
		return nil, fmt.Errorf("send http request: %w", redact(err, path))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, t.maxBodyBytes))
	metrics.RecordUpstreamRequest(path, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// redact strips the query string, which carries the API key, from URL errors.
func redact(err error, path string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = path
	}
	return err
}
