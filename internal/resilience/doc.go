// Package resilience provides fault isolation for calls to the news provider.
//
// The package supports:
//   - Circuit breakers around the upstream HTTP transport
//
// There is no retry: every failure surfaces to the caller as one failed call.
//
// Usage Example:
//
//	b, err := circuitbreaker.New(circuitbreaker.NewsAPIConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	resp, err := circuitbreaker.Do(b, func() (*Response, error) {
//	    return callProvider(ctx)
//	})
package resilience
