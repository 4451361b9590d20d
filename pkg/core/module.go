package core

import (
	"time"

	"github.com/Sokol111/crm-commons/pkg/core/config"
	"github.com/Sokol111/crm-commons/pkg/core/health"
	"github.com/Sokol111/crm-commons/pkg/core/logger"
	"go.uber.org/fx"
)

// coreOptions holds internal configuration for the core module.
type coreOptions struct {
	appConfig  *config.AppConfig
	configPath *string
	noConfig   bool
}

// Option is a functional option for configuring the core module.
type Option func(*coreOptions)

// WithAppConfig provides a static AppConfig instead of reading it from
// environment variables. Useful for tests.
func WithAppConfig(cfg config.AppConfig) Option {
	return func(opts *coreOptions) {
		opts.appConfig = &cfg
	}
}

// WithConfigPath sets a direct path to the configuration file.
func WithConfigPath(path string) Option {
	return func(opts *coreOptions) {
		opts.configPath = &path
	}
}

// WithoutConfigFile disables loading of a config file. Viper is still
// provided for DI but carries no file-based configuration.
func WithoutConfigFile() Option {
	return func(opts *coreOptions) {
		opts.noConfig = true
	}
}

// NewCoreModule provides config, logger and readiness tracking, the
// baseline every service composition starts from. It also raises the fx
// startup and shutdown timeouts so slow infrastructure connections do
// not abort the application.
func NewCoreModule(opts ...Option) fx.Option {
	cfg := &coreOptions{}
	for _, opt := range opts {
		opt(cfg)
	}

	return fx.Options(
		fx.StartTimeout(5*time.Minute),
		fx.StopTimeout(5*time.Minute),

		viperModule(cfg),
		appConfigModule(cfg),
		logger.NewZapLoggingModule(),
		health.NewReadinessModule(),
	)
}

func viperModule(cfg *coreOptions) fx.Option {
	if cfg.noConfig {
		return config.NewViperModule(config.WithoutConfigFile())
	}
	if cfg.configPath != nil {
		return config.NewViperModule(config.WithConfigPath(*cfg.configPath))
	}
	return config.NewViperModule()
}

func appConfigModule(cfg *coreOptions) fx.Option {
	if cfg.appConfig != nil {
		conf := *cfg.appConfig
		return fx.Supply(conf)
	}
	return config.NewAppConfigModule()
}
