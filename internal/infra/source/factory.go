package source

import (
	"fmt"

	"news-contracts/internal/infra/newsapi"
	"news-contracts/internal/usecase/news"
)

// New builds the adapter named by kind. apiKey and httpCfg are used only by
// the remote adapter.
func New(kind Kind, apiKey string, httpCfg newsapi.HTTPConfig, opts ...Option) (news.Contracts, error) {
	switch kind {
	case KindRemote:
		transport, err := newsapi.NewHTTPTransport(httpCfg)
		if err != nil {
			return nil, fmt.Errorf("create newsapi transport: %w", err)
		}
		remote, err := NewRemoteSource(apiKey, transport, opts...)
		if err != nil {
			return nil, err
		}
		return remote, nil
	case KindSynthetic:
		return NewSyntheticSource(opts...), nil
	default:
		return nil, fmt.Errorf("%w: unknown source kind %q", news.ErrInvalidArgument, kind)
	}
}
