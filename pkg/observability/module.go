package observability

import (
	"go.uber.org/fx"
)

type options struct {
	conf *Config
}

type ObservabilityOption func(*options)

// WithConfig skips loading the otel section from viper and uses the
// provided config instead. Intended for tests.
func WithConfig(conf Config) ObservabilityOption {
	return func(o *options) {
		o.conf = &conf
	}
}

func NewObservabilityModule(opts ...ObservabilityOption) fx.Option {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	providers := []any{
		provideTracerProvider,
		provideMeterProvider,
	}

	if o.conf != nil {
		conf := *o.conf
		providers = append(providers, func() (Config, error) { return conf, nil })
	} else {
		providers = append(providers, newConfig)
	}

	return fx.Options(
		fx.Provide(providers...),
	)
}
