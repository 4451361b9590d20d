package mongo

import (
	"context"

	"github.com/Sokol111/crm-commons/pkg/core/health"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// mongoOptions holds internal configuration for the mongo module.
type mongoOptions struct {
	config *Config
}

// MongoOption is a functional option for configuring the mongo module.
type MongoOption func(*mongoOptions)

// WithConfig provides a static Config instead of loading it from viper
// (useful for tests).
func WithConfig(cfg Config) MongoOption {
	return func(opts *mongoOptions) {
		opts.config = &cfg
	}
}

// NewMongoModule provides the MongoDB client, the bulkhead and runs
// migrations on startup.
func NewMongoModule(opts ...MongoOption) fx.Option {
	cfg := &mongoOptions{}
	for _, opt := range opts {
		opt(cfg)
	}

	return fx.Options(
		configModule(cfg),
		fx.Provide(
			provideMongo,
			newBulkheadFromConfig,
		),
	)
}

func configModule(cfg *mongoOptions) fx.Option {
	if cfg.config != nil {
		static := *cfg.config
		return fx.Provide(func() (Config, error) {
			return static, nil
		})
	}
	return fx.Provide(newConfig)
}

func newBulkheadFromConfig(conf Config, log *zap.Logger) *Bulkhead {
	return NewBulkhead(conf.BulkheadLimit, conf.BulkheadTimeout, log)
}

func provideMongo(lc fx.Lifecycle, log *zap.Logger, conf Config, readiness health.ComponentManager) (Mongo, error) {
	m, err := newMongo(log, conf)
	if err != nil {
		return nil, err
	}

	markReady := readiness.AddComponent("mongo")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := m.connect(ctx); err != nil {
				return err
			}
			if err := runMigrations(conf, log); err != nil {
				return err
			}
			markReady()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return m.disconnect(ctx)
		},
	})

	return m, nil
}
