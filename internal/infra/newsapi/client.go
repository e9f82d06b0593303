// Package newsapi is the adapter to the NewsAPI provider: query construction,
// the HTTP transport collaborator and JSON decoding of provider responses.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"news-contracts/internal/usecase/news"
)

// DefaultBaseURL is the public NewsAPI endpoint.
const DefaultBaseURL = "https://newsapi.org"

// TopHeadlinesPath is the top-headlines endpoint.
const TopHeadlinesPath = "/v2/top-headlines"

// CategoryGeneral is the only category requested by the remote source.
const CategoryGeneral = "general"

// Query parameters of the top-headlines endpoint.
const (
	ParamAPIKey   = "apiKey"
	ParamCategory = "category"
	ParamPageSize = "pageSize"

	// Recognized upstream but not sent yet.
	ParamCountry  = "country"
	ParamLanguage = "language"
	ParamSources  = "sources"
	ParamQuery    = "q"
	ParamPage     = "page"
)

// Client is a synchronous NewsAPI client bound to one API key.
type Client struct {
	apiKey    string
	transport Transport
}

// NewClient returns a client that authenticates with apiKey.
// An empty apiKey or nil transport yields news.ErrInvalidArgument.
func NewClient(apiKey string, transport Transport) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: api key must not be empty", news.ErrInvalidArgument)
	}
	if transport == nil {
		return nil, fmt.Errorf("%w: transport must not be nil", news.ErrInvalidArgument)
	}
	return &Client{apiKey: apiKey, transport: transport}, nil
}

// TopHeadlines fetches up to pageSize headlines of category.
//
// Errors:
//   - news.ErrInvalidArgument: empty category or pageSize < 1
//   - *news.RemoteServiceError: non-2xx status (StatusCode and raw Body set),
//     provider-reported error, transport failure or undecodable body (Err set)
func (c *Client) TopHeadlines(ctx context.Context, category string, pageSize int) ([]Article, error) {
	if category == "" {
		return nil, fmt.Errorf("%w: category must not be empty", news.ErrInvalidArgument)
	}
	if pageSize < 1 {
		return nil, fmt.Errorf("%w: pageSize must be > 0, got %d", news.ErrInvalidArgument, pageSize)
	}

	query := url.Values{}
	query.Set(ParamAPIKey, c.apiKey)
	query.Set(ParamCategory, category)
	query.Set(ParamPageSize, strconv.Itoa(pageSize))

	resp, err := c.transport.Get(ctx, TopHeadlinesPath, query)
	if err != nil {
		return nil, &news.RemoteServiceError{Err: err}
	}

	if !resp.Successful() {
		return nil, &news.RemoteServiceError{
			StatusCode: resp.StatusCode,
			Body:       string(resp.Body),
		}
	}

	var body ArticleResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, &news.RemoteServiceError{Err: fmt.Errorf("decode top-headlines response: %w", err)}
	}

	if body.Status == "error" {
		return nil, &news.RemoteServiceError{
			StatusCode: resp.StatusCode,
			Body:       string(resp.Body),
		}
	}

	return body.Articles, nil
}
