// Package membus is an in-process implementation of the event fabric. It
// routes through the same topology table and topic matching as the broker
// transport and backs the standalone environment and tests.
package membus

import (
	"context"
	"fmt"
	"sync"

	"github.com/Sokol111/crm-commons/pkg/events"
	"github.com/Sokol111/crm-commons/pkg/messaging"
	"go.uber.org/zap"
)

type subscriber struct {
	mu      sync.Mutex
	handler messaging.Handler
}

// Bus delivers published events inline on the publisher goroutine. A
// per-queue mutex keeps handler execution sequential per queue, matching the
// broker transport's one-consumer-per-queue model.
type Bus struct {
	log      *zap.Logger
	bindings []messaging.Binding

	mu          sync.RWMutex
	subscribers map[string]*subscriber
}

func New(log *zap.Logger) *Bus {
	return &Bus{
		log:         log.Named("membus"),
		bindings:    messaging.Bindings(),
		subscribers: make(map[string]*subscriber),
	}
}

// Subscribe attaches a handler to a queue from the topology table.
func (b *Bus) Subscribe(queue string, handler messaging.Handler) error {
	known := false
	for _, binding := range b.bindings {
		if binding.Queue == queue {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown queue: %s", queue)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subscribers[queue]; ok {
		return fmt.Errorf("queue %s already has a subscriber", queue)
	}
	b.subscribers[queue] = &subscriber{handler: handler}
	return nil
}

// Publish routes the event to every subscribed queue whose binding pattern
// matches the routing key. Failures are logged and swallowed; a handler
// error on one queue does not stop delivery to the others.
func (b *Bus) Publish(ctx context.Context, event events.Event) {
	body, err := events.Marshal(event)
	if err != nil {
		b.log.Error("failed to publish event", zap.String("event_type", event.Meta().EventType), zap.Error(err))
		return
	}

	key := messaging.RoutingKey(event.Domain(), event.Meta().EventType)
	msg := messaging.Message{RoutingKey: key, Body: body}

	for _, binding := range b.bindings {
		if !messaging.MatchTopic(binding.Pattern, key) {
			continue
		}

		b.mu.RLock()
		sub := b.subscribers[binding.Queue]
		b.mu.RUnlock()
		if sub == nil {
			continue
		}

		sub.mu.Lock()
		err := sub.handler.HandleMessage(ctx, msg)
		sub.mu.Unlock()
		if err != nil {
			b.log.Error("failed to handle message",
				zap.String("queue", binding.Queue),
				zap.String("routing_key", key),
				zap.Error(err))
		}
	}

	b.log.Debug("published event", zap.String("routing_key", key), zap.String("event_id", event.Meta().EventID))
}
