package source

import (
	"context"
	"fmt"
	"log/slog"

	"news-contracts/internal/domain/entity"
	"news-contracts/internal/infra/newsapi"
	"news-contracts/internal/usecase/news"
)

// RemoteSource retrieves top headlines from NewsAPI.
// It holds only immutable configuration and is safe for concurrent use.
type RemoteSource struct {
	client   *newsapi.Client
	category string
	logger   *slog.Logger
}

var _ news.Contracts = (*RemoteSource)(nil)

// NewRemoteSource creates an adapter authenticating with apiKey.
// A blank apiKey or nil transport yields news.ErrInvalidArgument.
func NewRemoteSource(apiKey string, transport newsapi.Transport, opts ...Option) (*RemoteSource, error) {
	client, err := newsapi.NewClient(apiKey, transport)
	if err != nil {
		return nil, err
	}
	o := applyOptions(opts)
	return &RemoteSource{
		client:   client,
		category: o.category,
		logger:   o.logger,
	}, nil
}

// RetrieveNews fetches up to size headlines in provider order.
// If any article fails validation the whole call fails with the wrapped
// *entity.ValidationError; no partial result is returned.
func (s *RemoteSource) RetrieveNews(ctx context.Context, size int) ([]*entity.News, error) {
	if err := news.CheckSize(size); err != nil {
		return nil, err
	}
	if size == 0 {
		return []*entity.News{}, nil
	}

	articles, err := s.client.TopHeadlines(ctx, s.category, size)
	if err != nil {
		return nil, fmt.Errorf("fetch top headlines: %w", err)
	}

	items := make([]*entity.News, 0, len(articles))
	for i, a := range articles {
		n, err := toNews(a)
		if err != nil {
			s.logger.Debug("article rejected",
				slog.Int("index", i),
				slog.String("title", a.Title),
				slog.Any("error", err))
			return nil, fmt.Errorf("map article %d: %w", i, err)
		}
		items = append(items, n)
	}
	if len(items) > size {
		items = items[:size]
	}

	s.logger.Debug("top headlines retrieved",
		slog.String("category", s.category),
		slog.Int("requested", size),
		slog.Int("count", len(items)))
	return items, nil
}

// SaveNews always fails: the provider is read-only.
func (s *RemoteSource) SaveNews(ctx context.Context, n *entity.News) error {
	if err := news.CheckNews(n); err != nil {
		return err
	}
	return fmt.Errorf("%w: remote source is read-only", news.ErrUnsupportedOperation)
}

// toNews maps a provider article onto the entity.
// The provider truncates content, so the description is used for both
// description and content.
func toNews(a newsapi.Article) (*entity.News, error) {
	return entity.NewNews(
		a.Title,
		a.Source.Name,
		a.Author,
		a.URL,
		a.URLToImage,
		a.Description,
		a.Description,
		a.PublishedAt,
	)
}
