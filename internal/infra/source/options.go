package source

import "log/slog"

// Kind names a Contracts implementation selectable from configuration.
type Kind string

const (
	// KindRemote selects RemoteSource.
	KindRemote Kind = "remote"
	// KindSynthetic selects SyntheticSource.
	KindSynthetic Kind = "synthetic"
)

// IsValid reports whether k names a known adapter.
func (k Kind) IsValid() bool {
	return k == KindRemote || k == KindSynthetic
}

type options struct {
	logger   *slog.Logger
	category string
	seed     uint64
}

// Option configures an adapter.
type Option func(*options)

// WithLogger sets the logger used by the adapter. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCategory overrides the provider category requested by RemoteSource.
func WithCategory(category string) Option {
	return func(o *options) {
		if category != "" {
			o.category = category
		}
	}
}

// WithSeed fixes the SyntheticSource random seed so output is reproducible.
// Zero keeps a random seed.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

func applyOptions(opts []Option) options {
	o := options{
		logger:   slog.Default(),
		category: "general",
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
