package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"news-contracts/internal/domain/entity"
	"news-contracts/internal/usecase/news"
)

// maxSyntheticAttempts bounds regeneration when a fabricated field
// happens to fall below a minimum length.
const maxSyntheticAttempts = 10

// syntheticWindow is how far back fabricated publication times reach.
const syntheticWindow = 7 * 24 * time.Hour

// SyntheticSource fabricates valid News. Saves succeed but nothing is stored.
type SyntheticSource struct {
	mu     sync.Mutex
	faker  *gofakeit.Faker
	now    func() time.Time
	logger *slog.Logger
}

var _ news.Contracts = (*SyntheticSource)(nil)

// NewSyntheticSource creates a generator. Use WithSeed for reproducible output.
func NewSyntheticSource(opts ...Option) *SyntheticSource {
	o := applyOptions(opts)
	return &SyntheticSource{
		faker:  gofakeit.New(o.seed),
		now:    time.Now,
		logger: o.logger,
	}
}

// RetrieveNews returns exactly size freshly generated News.
func (s *SyntheticSource) RetrieveNews(ctx context.Context, size int) ([]*entity.News, error) {
	if err := news.CheckSize(size); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]*entity.News, 0, size)
	for len(items) < size {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := s.generate()
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, nil
}

// SaveNews accepts any non-nil News and discards it.
func (s *SyntheticSource) SaveNews(ctx context.Context, n *entity.News) error {
	if err := news.CheckNews(n); err != nil {
		return err
	}
	s.logger.Info("synthetic news accepted",
		slog.Int64("news_id", n.ID()),
		slog.String("title", n.Title()))
	return nil
}

// generate must be called with s.mu held.
func (s *SyntheticSource) generate() (*entity.News, error) {
	var lastErr error
	for attempt := 0; attempt < maxSyntheticAttempts; attempt++ {
		f := s.faker
		now := s.now()
		title := f.HackerPhrase()
		description := f.HackerPhrase() + " " + f.HackerPhrase()
		content := strings.Join([]string{description, f.HackerPhrase(), f.HackerPhrase()}, " ")

		n, err := entity.NewNews(
			title,
			f.Company(),
			f.Name(),
			f.URL(),
			f.URL()+"/image.jpg",
			description,
			content,
			f.DateRange(now.Add(-syntheticWindow), now),
		)
		if err == nil {
			return n, nil
		}
		if !errors.Is(err, entity.ErrValidationFailed) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("generate synthetic news after %d attempts: %w", maxSyntheticAttempts, lastErr)
}
