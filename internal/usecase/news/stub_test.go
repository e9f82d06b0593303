package news

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"news-contracts/internal/domain/entity"
)

// stubContracts is a Contracts test double returning canned results.
type stubContracts struct {
	items    []*entity.News
	err      error
	saveErr  error
	calls    atomic.Int32
	lastSize atomic.Int32
}

func (s *stubContracts) RetrieveNews(ctx context.Context, size int) ([]*entity.News, error) {
	s.calls.Add(1)
	s.lastSize.Store(int32(size))
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

func (s *stubContracts) SaveNews(ctx context.Context, n *entity.News) error {
	if err := CheckNews(n); err != nil {
		return err
	}
	return s.saveErr
}

func makeNews(t *testing.T, title string) *entity.News {
	t.Helper()
	n, err := entity.NewNews(
		title,
		"The Source",
		"The Author",
		"https://example.com/"+title,
		"",
		fmt.Sprintf("Description of %s", title),
		"",
		time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return n
}
