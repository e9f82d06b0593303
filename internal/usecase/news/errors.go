package news

import (
	"errors"
	"fmt"
)

// Sentinel errors for the Contracts surface.
var (
	// ErrInvalidArgument indicates a caller error: an empty credential,
	// a nil News passed to SaveNews, or a negative size.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedOperation indicates that the source does not implement the
	// requested operation, e.g. SaveNews on a read-only provider.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrRemoteService matches every *RemoteServiceError with errors.Is.
	ErrRemoteService = errors.New("remote service error")
)

// RemoteServiceError reports a failed call to the news provider.
// StatusCode and Body are set for non-success HTTP responses; Err is set when the
// request failed before a usable response was available (I/O, decoding).
type RemoteServiceError struct {
	StatusCode int
	Body       string
	Err        error
}

// Error returns a message carrying the status code and the raw error body.
func (e *RemoteServiceError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("remote service error: %v", e.Err)
	}
	return fmt.Sprintf("remote service error: %d --> %s", e.StatusCode, e.Body)
}

// Unwrap returns the underlying transport error, if any.
func (e *RemoteServiceError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrRemoteService.
func (e *RemoteServiceError) Is(target error) bool {
	return target == ErrRemoteService
}
