package worker

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"news-contracts/internal/observability/logging"
)

// HealthServer serves liveness and readiness probes plus any extra handlers
// registered before Start, such as /metrics.
//
//   - GET /health: liveness, always 200
//   - GET /health/ready: 200 once SetReady(true) was called, 503 otherwise
//
// Both responses include the outcome of the most recent run.
type HealthServer struct {
	addr    string
	logger  *slog.Logger
	mux     *http.ServeMux
	isReady atomic.Bool

	mu      sync.RWMutex
	lastRun *RunStatus

	server *http.Server
}

// RunStatus summarizes the latest scheduled run.
type RunStatus struct {
	Status   string    `json:"status"`
	Items    int       `json:"items"`
	Error    string    `json:"error,omitempty"`
	Finished time.Time `json:"finished_at"`
}

type healthResponse struct {
	Status  string     `json:"status"`
	LastRun *RunStatus `json:"last_run,omitempty"`
}

// NewHealthServer creates a server listening on addr. It starts not ready.
func NewHealthServer(addr string, logger *slog.Logger) *HealthServer {
	if logger == nil {
		logger = slog.Default()
	}
	h := &HealthServer{
		addr:   addr,
		logger: logger,
		mux:    http.NewServeMux(),
	}
	h.mux.HandleFunc("/health", h.handleLiveness)
	h.mux.HandleFunc("/health/ready", h.handleReadiness)
	return h
}

// Handle registers an additional handler. It must be called before Start.
func (h *HealthServer) Handle(pattern string, handler http.Handler) {
	h.mux.Handle(pattern, handler)
}

// Handler returns the routing handler, for embedding or tests.
func (h *HealthServer) Handler() http.Handler {
	return h.mux
}

// Start serves until ctx is canceled, then shuts down gracefully within
// 5 seconds and returns http.ErrServerClosed.
func (h *HealthServer) Start(ctx context.Context) error {
	h.server = &http.Server{
		Addr:         h.addr,
		Handler:      h.mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		h.logger.Info("health server starting", slog.String("addr", h.addr))
		if err := h.server.ListenAndServe(); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		h.logger.Info("health server shutting down")
		if err := h.server.Shutdown(shutdownCtx); err != nil {
			h.logger.Error("health server shutdown failed", slog.Any("error", err))
			return err
		}
		h.logger.Info("health server stopped")
		return http.ErrServerClosed

	case err := <-errChan:
		if !errors.Is(err, http.ErrServerClosed) {
			h.logger.Error("health server failed", slog.Any("error", err))
		}
		return err
	}
}

// SetReady sets the readiness state reported by /health/ready.
func (h *HealthServer) SetReady(ready bool) {
	h.isReady.Store(ready)
	h.logger.Info("health server readiness changed", slog.Bool("ready", ready))
}

// RecordRun stores the outcome of a run for the probe responses.
func (h *HealthServer) RecordRun(items int, err error) {
	status := &RunStatus{Status: "success", Items: items, Finished: time.Now()}
	if err != nil {
		status.Status = "failure"
		status.Items = 0
		status.Error = logging.SanitizeError(err)
	}

	h.mu.Lock()
	h.lastRun = status
	h.mu.Unlock()
}

func (h *HealthServer) snapshot() *RunStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.lastRun == nil {
		return nil
	}
	cp := *h.lastRun
	return &cp
}

func (h *HealthServer) handleLiveness(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, healthResponse{Status: "ok", LastRun: h.snapshot()})
}

func (h *HealthServer) handleReadiness(w http.ResponseWriter, r *http.Request) {
	if !h.isReady.Load() {
		h.writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "not ready"})
		return
	}
	h.writeJSON(w, http.StatusOK, healthResponse{Status: "ok", LastRun: h.snapshot()})
}

func (h *HealthServer) writeJSON(w http.ResponseWriter, status int, body healthResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode health response", slog.Any("error", err))
	}
}
