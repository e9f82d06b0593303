package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-contracts/internal/domain/entity"
	"news-contracts/internal/infra/newsapi"
	"news-contracts/internal/usecase/news"
)

func TestNewRemoteSource_InvalidArguments(t *testing.T) {
	_, err := NewRemoteSource("", &fakeTransport{})
	assert.ErrorIs(t, err, news.ErrInvalidArgument)

	_, err = NewRemoteSource("  ", &fakeTransport{})
	assert.ErrorIs(t, err, news.ErrInvalidArgument)

	_, err = NewRemoteSource("key", nil)
	assert.ErrorIs(t, err, news.ErrInvalidArgument)
}

func TestRemoteSource_RetrieveNews_Query(t *testing.T) {
	ft := &fakeTransport{resp: okResponse(threeArticles)}
	src, err := NewRemoteSource("my-key", ft)
	require.NoError(t, err)

	_, err = src.RetrieveNews(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, "my-key", ft.lastQuery.Get(newsapi.ParamAPIKey))
	assert.Equal(t, newsapi.CategoryGeneral, ft.lastQuery.Get(newsapi.ParamCategory))
	assert.Equal(t, "3", ft.lastQuery.Get(newsapi.ParamPageSize))
}

func TestRemoteSource_RetrieveNews_WithCategory(t *testing.T) {
	ft := &fakeTransport{resp: okResponse(threeArticles)}
	src, err := NewRemoteSource("my-key", ft, WithCategory("science"))
	require.NoError(t, err)

	_, err = src.RetrieveNews(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "science", ft.lastQuery.Get(newsapi.ParamCategory))
}

func TestRemoteSource_RetrieveNews_ZeroSkipsUpstream(t *testing.T) {
	ft := &fakeTransport{resp: okResponse(threeArticles)}
	src, err := NewRemoteSource("key", ft)
	require.NoError(t, err)

	items, err := src.RetrieveNews(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, ft.calls)
}

func TestRemoteSource_RetrieveNews_Mapping(t *testing.T) {
	src, err := NewRemoteSource("key", &fakeTransport{resp: okResponse(threeArticles)})
	require.NoError(t, err)

	items, err := src.RetrieveNews(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, items, 3)

	got := items[0]
	assert.Equal(t, "City saved again", got.Title())
	assert.Equal(t, "Daily Planet", got.Source())
	assert.Equal(t, "Lois Lane", got.Author())
	assert.Equal(t, "https://example.com/1", got.URL())
	assert.Equal(t, "https://example.com/1.jpg", got.URLImage())
	assert.Equal(t, "A flying man intervened downtown.", got.Description())
	assert.Equal(t, got.Description(), got.Content(), "content is populated from description")
	assert.True(t, got.PublishedAt().Equal(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)))

	titles := make([]string, 0, len(items))
	for _, n := range items {
		titles = append(titles, n.Title())
	}
	want := []string{"City saved again", "Photo of the year", "Bats spotted at night"}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Errorf("provider order not preserved (-want +got):\n%s", diff)
	}
}

func TestRemoteSource_RetrieveNews_Truncates(t *testing.T) {
	src, err := NewRemoteSource("key", &fakeTransport{resp: okResponse(threeArticles)})
	require.NoError(t, err)

	items, err := src.RetrieveNews(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestRemoteSource_RetrieveNews_IDRoundTrip(t *testing.T) {
	assert.Equal(t, int64(xxhash.Sum64String("T|S|Auth")), entity.NewsID("T", "S", "Auth"))

	body := `{"status":"ok","articles":[{"source":{"name":"Src"},"author":"Auth","title":"Ttl","description":"Description","url":"","urlToImage":null,"publishedAt":"2024-01-01T00:00:00Z"}]}`
	src, err := NewRemoteSource("key", &fakeTransport{resp: okResponse(body)})
	require.NoError(t, err)

	items, err := src.RetrieveNews(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(xxhash.Sum64String("Ttl|Src|Auth")), items[0].ID())
}

func TestRemoteSource_RetrieveNews_InvalidArticleFailsCall(t *testing.T) {
	body := `{"status":"ok","articles":[
	  {"source":{"name":"Daily Planet"},"author":"Lois Lane","title":"Fine headline","description":"Long enough description","publishedAt":"2024-05-01T08:00:00Z"},
	  {"source":{"name":"Daily Planet"},"author":"Lois Lane","title":"Hi","description":"Long enough description","publishedAt":"2024-05-01T08:00:00Z"}
	]}`
	src, err := NewRemoteSource("key", &fakeTransport{resp: okResponse(body)})
	require.NoError(t, err)

	items, err := src.RetrieveNews(context.Background(), 2)
	require.Error(t, err)
	assert.Nil(t, items)

	var valErr *entity.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "title", valErr.Field)
}

func TestRemoteSource_RetrieveNews_MissingDescription(t *testing.T) {
	body := `{"status":"ok","articles":[{"source":{"name":"Daily Planet"},"author":"Lois Lane","title":"Fine headline","description":null,"publishedAt":"2024-05-01T08:00:00Z"}]}`
	src, err := NewRemoteSource("key", &fakeTransport{resp: okResponse(body)})
	require.NoError(t, err)

	_, err = src.RetrieveNews(context.Background(), 1)
	assert.ErrorIs(t, err, entity.ErrValidationFailed)
}

func TestRemoteSource_RetrieveNews_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":"error","code":"apiKeyInvalid"}`))
	}))
	defer server.Close()

	cfg := newsapi.DefaultHTTPConfig()
	cfg.BaseURL = server.URL
	transport, err := newsapi.NewHTTPTransport(cfg)
	require.NoError(t, err)

	src, err := NewRemoteSource("wrong-key", transport)
	require.NoError(t, err)

	items, err := src.RetrieveNews(context.Background(), 5)
	require.Error(t, err)
	assert.Nil(t, items)
	assert.ErrorIs(t, err, news.ErrRemoteService)

	var remoteErr *news.RemoteServiceError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusUnauthorized, remoteErr.StatusCode)
	assert.Equal(t, `{"status":"error","code":"apiKeyInvalid"}`, remoteErr.Body)
}

func TestRemoteSource_RetrieveNews_TransportFailure(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	src, err := NewRemoteSource("key", &fakeTransport{err: cause})
	require.NoError(t, err)

	_, err = src.RetrieveNews(context.Background(), 5)
	var remoteErr *news.RemoteServiceError
	require.ErrorAs(t, err, &remoteErr)
	assert.Zero(t, remoteErr.StatusCode)
	assert.ErrorIs(t, err, cause)
}

func TestRemoteSource_SaveNews_Unsupported(t *testing.T) {
	src, err := NewRemoteSource("key", &fakeTransport{})
	require.NoError(t, err)

	err = src.SaveNews(context.Background(), validNews(t))
	assert.ErrorIs(t, err, news.ErrUnsupportedOperation)
}
