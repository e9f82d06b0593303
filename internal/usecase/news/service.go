package news

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"news-contracts/internal/domain/entity"
	"news-contracts/internal/observability/logging"
	"news-contracts/internal/observability/metrics"
	"news-contracts/internal/observability/tracing"
)

// Service is the caller-side handle on one news source.
// It delegates to the wrapped Contracts with unchanged semantics and adds a retrieval ID,
// structured logs, Prometheus metrics and a span around every call.
type Service struct {
	name      string
	contracts Contracts
	logger    *slog.Logger
}

// NewService wraps contracts under name, the label used in logs and metrics.
// A nil logger falls back to slog.Default().
func NewService(name string, contracts Contracts, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		name:      name,
		contracts: contracts,
		logger:    logger,
	}
}

// Name returns the source label.
func (s *Service) Name() string {
	return s.name
}

// Retrieve calls RetrieveNews on the wrapped source.
// Errors are returned unchanged so callers can still use errors.Is / errors.As.
func (s *Service) Retrieve(ctx context.Context, size int) ([]*entity.News, error) {
	ctx = logging.WithRetrievalID(ctx, uuid.NewString())
	logger := logging.WithContextFields(ctx, s.logger).With(slog.String("news_source", s.name))

	ctx, span := tracing.Tracer().Start(ctx, "news.retrieve",
		trace.WithAttributes(
			attribute.String("news.source", s.name),
			attribute.Int("news.size", size),
		),
	)
	defer span.End()

	logger.Debug("retrieving news", slog.Int("size", size))

	start := time.Now()
	var items []*entity.News
	err := CheckSize(size)
	if err == nil {
		items, err = s.contracts.RetrieveNews(ctx, size)
	}
	duration := time.Since(start)
	metrics.RecordRetrieveDuration(s.name, duration)

	if err != nil {
		kind := ErrorKind(err)
		metrics.RecordNewsRetrieveFailure(s.name, kind)
		span.RecordError(err)
		span.SetStatus(codes.Error, kind)
		logger.Error("news retrieval failed",
			slog.Int("size", size),
			slog.String("kind", kind),
			slog.Duration("duration", duration),
			slog.String("error", logging.SanitizeError(err)))
		return nil, err
	}

	if len(items) > size {
		logger.Warn("source returned more news than requested, truncating",
			slog.Int("size", size),
			slog.Int("returned", len(items)))
		items = items[:size]
	}

	metrics.RecordNewsRetrieved(s.name, len(items))
	span.SetAttributes(attribute.Int("news.count", len(items)))
	logger.Info("news retrieved",
		slog.Int("size", size),
		slog.Int("count", len(items)),
		slog.Duration("duration", duration))

	return items, nil
}

// Save calls SaveNews on the wrapped source.
func (s *Service) Save(ctx context.Context, n *entity.News) error {
	logger := s.logger.With(slog.String("news_source", s.name))

	ctx, span := tracing.Tracer().Start(ctx, "news.save",
		trace.WithAttributes(attribute.String("news.source", s.name)),
	)
	defer span.End()

	err := s.contracts.SaveNews(ctx, n)
	if err != nil {
		kind := ErrorKind(err)
		metrics.RecordNewsSave(s.name, kind)
		span.RecordError(err)
		span.SetStatus(codes.Error, kind)

		// A read-only source is an expected outcome, not a failure of this process
		if kind == "unsupported" {
			logger.Warn("news source does not support saving", slog.String("error", logging.SanitizeError(err)))
		} else {
			logger.Error("news save failed", slog.String("kind", kind), slog.String("error", logging.SanitizeError(err)))
		}
		return err
	}

	metrics.RecordNewsSave(s.name, "success")
	logger.Info("news saved", slog.Int64("news_id", n.ID()))
	return nil
}

// ErrorKind classifies err into the taxonomy used for metric and log labels.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrUnsupportedOperation):
		return "unsupported"
	case errors.Is(err, entity.ErrValidationFailed):
		return "validation"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case errors.Is(err, ErrRemoteService):
		return "remote"
	default:
		return "error"
	}
}
