package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-contracts/internal/domain/entity"
	"news-contracts/internal/infra/source"
	"news-contracts/internal/usecase/news"
)

type failingContracts struct {
	err error
}

func (f failingContracts) RetrieveNews(ctx context.Context, size int) ([]*entity.News, error) {
	return nil, f.err
}

func (f failingContracts) SaveNews(ctx context.Context, n *entity.News) error {
	return news.ErrUnsupportedOperation
}

// blockingContracts waits for cancellation.
type blockingContracts struct{}

func (blockingContracts) RetrieveNews(ctx context.Context, size int) ([]*entity.News, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingContracts) SaveNews(ctx context.Context, n *entity.News) error {
	return nil
}

type recorderSpy struct {
	items int
	err   error
	calls int
}

func (r *recorderSpy) RecordRun(items int, err error) {
	r.calls++
	r.items = items
	r.err = err
}

func TestNewJob_Validation(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	svc := news.NewService("synthetic", source.NewSyntheticSource(), discardLogger())

	_, err := NewJob(5, time.Second, m, nil, nil)
	assert.ErrorIs(t, err, news.ErrInvalidArgument, "no services")

	_, err = NewJob(-1, time.Second, m, nil, nil, svc)
	assert.ErrorIs(t, err, news.ErrInvalidArgument, "negative size")

	_, err = NewJob(5, 0, m, nil, nil, svc)
	assert.ErrorIs(t, err, news.ErrInvalidArgument, "zero timeout")

	_, err = NewJob(5, time.Second, nil, nil, nil, svc)
	assert.ErrorIs(t, err, news.ErrInvalidArgument, "nil metrics")

	job, err := NewJob(5, time.Second, m, nil, nil, svc)
	require.NoError(t, err)
	assert.NotNil(t, job)
}

func TestJob_Run_Success(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	spy := &recorderSpy{}
	svc := news.NewService("synthetic", source.NewSyntheticSource(source.WithSeed(11)), discardLogger())

	job, err := NewJob(5, time.Second, m, spy, discardLogger(), svc)
	require.NoError(t, err)

	items, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 5)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("success")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.LastRunItems))
	assert.Greater(t, testutil.ToFloat64(m.LastSuccessTimestamp), 0.0)
	assert.Equal(t, 1, spy.calls)
	assert.Equal(t, 5, spy.items)
	assert.NoError(t, spy.err)
}

func TestJob_Run_Failure(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	spy := &recorderSpy{}
	upstream := &news.RemoteServiceError{StatusCode: 401, Body: "unauthorized"}
	svc := news.NewService("remote", failingContracts{err: upstream}, discardLogger())

	job, err := NewJob(5, time.Second, m, spy, discardLogger(), svc)
	require.NoError(t, err)

	items, err := job.Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, items)
	assert.ErrorIs(t, err, news.ErrRemoteService)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("failure")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.LastSuccessTimestamp))
	assert.Equal(t, 1, spy.calls)

	var remoteErr *news.RemoteServiceError
	require.True(t, errors.As(spy.err, &remoteErr), "recorder receives the upstream error")
	assert.Equal(t, 401, remoteErr.StatusCode)
}

func TestJob_Run_Timeout(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	svc := news.NewService("slow", blockingContracts{}, discardLogger())

	job, err := NewJob(5, 50*time.Millisecond, m, nil, discardLogger(), svc)
	require.NoError(t, err)

	_, err = job.Run(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestJob_Run_MultipleSourcesDeduplicates(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	a := news.NewService("a", source.NewSyntheticSource(source.WithSeed(5)), discardLogger())
	b := news.NewService("b", source.NewSyntheticSource(source.WithSeed(6)), discardLogger())

	job, err := NewJob(3, time.Second, m, nil, discardLogger(), a, b)
	require.NoError(t, err)

	items, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.LessOrEqual(t, len(items), 6)
	assert.GreaterOrEqual(t, len(items), 3)
}
