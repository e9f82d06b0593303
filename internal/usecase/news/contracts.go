// Package news defines the Contracts surface shared by every news source, the error
// taxonomy of that surface, and the Service that callers use to drive a source with
// logging, metrics and tracing.
package news

import (
	"context"
	"fmt"

	"news-contracts/internal/domain/entity"
)

// Contracts is the retrieval/persistence capability every news source implements.
// Callers hold a Contracts chosen once at construction and never depend on the
// concrete source.
type Contracts interface {
	// RetrieveNews returns at most size validated News in provider-defined order.
	// size must be >= 0; size 0 returns an empty slice without doing any work.
	//
	// Errors:
	//   - ErrInvalidArgument: size < 0
	//   - *entity.ValidationError: a mapped item failed validation (whole call fails)
	//   - *RemoteServiceError: the provider failed or could not be reached
	RetrieveNews(ctx context.Context, size int) ([]*entity.News, error)

	// SaveNews stores one News.
	//
	// Errors:
	//   - ErrInvalidArgument: n is nil
	//   - ErrUnsupportedOperation: the source is read-only
	SaveNews(ctx context.Context, n *entity.News) error
}

// CheckSize returns ErrInvalidArgument for a negative size.
// Sources call it first so every implementation rejects the same inputs.
func CheckSize(size int) error {
	if size < 0 {
		return fmt.Errorf("%w: size must be >= 0, got %d", ErrInvalidArgument, size)
	}
	return nil
}

// CheckNews returns ErrInvalidArgument for a nil News.
func CheckNews(n *entity.News) error {
	if n == nil {
		return fmt.Errorf("%w: news must not be nil", ErrInvalidArgument)
	}
	return nil
}
