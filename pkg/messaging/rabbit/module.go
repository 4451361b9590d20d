package rabbit

import (
	"context"

	"github.com/Sokol111/crm-commons/pkg/core/health"
	"github.com/Sokol111/crm-commons/pkg/core/worker"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// rabbitOptions holds internal configuration for the rabbit module.
type rabbitOptions struct {
	config *Config
}

// RabbitOption is a functional option for configuring the rabbit module.
type RabbitOption func(*rabbitOptions)

// WithConfig provides a static Config instead of loading it from viper
// (useful for tests).
func WithConfig(cfg Config) RabbitOption {
	return func(opts *rabbitOptions) {
		opts.config = &cfg
	}
}

// NewRabbitModule provides the RabbitMQ event fabric: the shared connection,
// the publisher and one consumer worker driving every registered
// subscription.
func NewRabbitModule(opts ...RabbitOption) fx.Option {
	cfg := &rabbitOptions{}
	for _, opt := range opts {
		opt(cfg)
	}

	return fx.Options(
		configModule(cfg),
		fx.Provide(
			newConnection,
			newPublisher,
			fx.Annotate(
				newConsumerRunner,
				fx.ParamTags(``, ``, `group:"subscriptions"`, ``),
			),
			worker.Register[*consumerRunner]("rabbit-consumer", worker.WithShutdown()),
		),
		fx.Invoke(manageConnection),
	)
}

func configModule(cfg *rabbitOptions) fx.Option {
	if cfg.config != nil {
		static := *cfg.config
		return fx.Provide(func() Config { return static })
	}
	return fx.Provide(newConfig)
}

func manageConnection(lc fx.Lifecycle, conn *Connection, manager health.ComponentManager, log *zap.Logger) {
	ready := manager.AddComponent("rabbitmq")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := conn.Connect(ctx); err != nil {
				return err
			}
			ready()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("closing rabbitmq connection")
			return conn.Close()
		},
	})
}
