package notification

import (
	"github.com/Sokol111/crm-commons/pkg/messaging"
	"go.uber.org/fx"
)

// NewNotificationModule provides the notification service, the consumers and
// their queue subscriptions. The opportunity queue deliberately has no
// subscriber: events accumulate there for a future consumer.
func NewNotificationModule() fx.Option {
	return fx.Options(
		fx.Provide(
			NewService,
			NewEventHandler,
			NewWelcomeHandler,
		),
		fx.Provide(
			fx.Annotate(
				newEventSubscriptions,
				fx.ResultTags(`group:"subscriptions,flatten"`),
			),
			fx.Annotate(
				newWelcomeSubscription,
				fx.ResultTags(`group:"subscriptions"`),
			),
		),
	)
}

func newEventSubscriptions(h *EventHandler) []messaging.Subscription {
	return []messaging.Subscription{
		{Queue: messaging.QueueCustomerEvents, Handler: h},
		{Queue: messaging.QueueLeadEvents, Handler: h},
		{Queue: messaging.QueueTaskEvents, Handler: h},
	}
}

func newWelcomeSubscription(h *WelcomeHandler) messaging.Subscription {
	return messaging.Subscription{Queue: messaging.QueueUserRegistered, Handler: h}
}
