package news

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"news-contracts/internal/domain/entity"
	"news-contracts/internal/observability/metrics"
)

// Collect retrieves up to size news from every service concurrently and merges the
// results in service order, dropping news whose id was already seen.
// Any failing service fails the whole collection; there is no partial result.
func Collect(ctx context.Context, size int, services ...*Service) ([]*entity.News, error) {
	if err := CheckSize(size); err != nil {
		return nil, err
	}

	results := make([][]*entity.News, len(services))

	g, gctx := errgroup.WithContext(ctx)
	for i, svc := range services {
		g.Go(func() error {
			items, err := svc.Retrieve(gctx, size)
			if err != nil {
				return fmt.Errorf("collect from %s: %w", svc.Name(), err)
			}
			results[i] = items
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, items := range results {
		total += len(items)
	}

	merged := make([]*entity.News, 0, total)
	for _, items := range results {
		merged = append(merged, items...)
	}
	return Dedupe(merged), nil
}

// Dedupe returns items without repeated ids, keeping the first occurrence and the
// original order. nil entries are dropped.
func Dedupe(items []*entity.News) []*entity.News {
	seen := make(map[int64]struct{}, len(items))
	out := make([]*entity.News, 0, len(items))
	duplicates := 0

	for _, n := range items {
		if n == nil {
			continue
		}
		if _, ok := seen[n.ID()]; ok {
			duplicates++
			continue
		}
		seen[n.ID()] = struct{}{}
		out = append(out, n)
	}

	metrics.RecordDuplicates(duplicates)
	return out
}
