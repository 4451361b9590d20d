package membus

import (
	"context"

	"github.com/Sokol111/crm-commons/pkg/core/health"
	"github.com/Sokol111/crm-commons/pkg/messaging"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewMemBusModule provides the in-process bus as the event fabric and wires
// every registered subscription on startup.
func NewMemBusModule() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				New,
				fx.As(new(messaging.Bus)),
				fx.As(new(messaging.Publisher)),
			),
		),
		fx.Invoke(
			fx.Annotate(
				registerSubscriptions,
				fx.ParamTags(``, ``, `group:"subscriptions"`, ``, ``),
			),
		),
	)
}

func registerSubscriptions(
	lc fx.Lifecycle,
	bus messaging.Bus,
	subs []messaging.Subscription,
	manager health.ComponentManager,
	log *zap.Logger,
) {
	ready := manager.AddComponent("membus")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			for _, sub := range subs {
				if err := bus.Subscribe(sub.Queue, sub.Handler); err != nil {
					return err
				}
				log.Info("subscribed to queue", zap.String("queue", sub.Queue))
			}
			ready()
			return nil
		},
	})
}
