package email

import (
	"go.uber.org/fx"
)

// emailOptions holds internal configuration for the email module.
type emailOptions struct {
	config  *Config
	logOnly bool
}

// EmailOption is a functional option for configuring the email module.
type EmailOption func(*emailOptions)

// WithConfig provides a static Config instead of loading it from viper
// (useful for tests).
func WithConfig(cfg Config) EmailOption {
	return func(opts *emailOptions) {
		opts.config = &cfg
	}
}

// WithLogOnly swaps the SMTP transport for the log-only gateway. Used by the
// standalone environment.
func WithLogOnly() EmailOption {
	return func(opts *emailOptions) {
		opts.logOnly = true
	}
}

// NewEmailModule provides the email gateway.
func NewEmailModule(opts ...EmailOption) fx.Option {
	cfg := &emailOptions{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logOnly {
		return fx.Provide(
			fx.Annotate(NewLogGateway, fx.As(new(Gateway))),
		)
	}

	return fx.Options(
		configModule(cfg),
		fx.Provide(
			fx.Annotate(NewSMTPGateway, fx.As(new(Gateway))),
		),
	)
}

func configModule(cfg *emailOptions) fx.Option {
	if cfg.config != nil {
		static := *cfg.config
		return fx.Provide(func() Config { return static })
	}
	return fx.Provide(newConfig)
}
