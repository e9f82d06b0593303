// Package source provides the news.Contracts implementations.
//
// RemoteSource reads top headlines from the NewsAPI provider through a
// newsapi.Transport and is read-only. SyntheticSource fabricates valid News
// for development and load testing; it accepts saves but keeps nothing.
//
// Both adapters share the same argument rules:
//   - RetrieveNews(ctx, 0) returns an empty slice without doing any work
//   - RetrieveNews with a negative size returns news.ErrInvalidArgument
//   - SaveNews(ctx, nil) returns news.ErrInvalidArgument
package source
