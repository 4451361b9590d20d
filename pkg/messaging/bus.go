// Package messaging defines the publish/subscribe contracts of the event
// fabric and the routing topology shared by every transport implementation.
package messaging

import (
	"context"

	"github.com/Sokol111/crm-commons/pkg/events"
)

// Message is the transport-level unit delivered to a queue.
type Message struct {
	// RoutingKey is the dotted topic the message was published with.
	RoutingKey string
	// Body is the JSON wire document of the event.
	Body []byte
	// Headers carries transport metadata, e.g. trace propagation fields.
	Headers map[string]string
}

// Handler processes one delivered message. A non-nil error is logged by the
// queue runner and the message is dropped; there is no redelivery.
type Handler interface {
	HandleMessage(ctx context.Context, msg Message) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, msg Message) error

func (f HandlerFunc) HandleMessage(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}

// Publisher sends domain events to the topic exchange. Delivery is
// at-most-once: a failed publish is logged and swallowed, never surfaced to
// the originating business operation and never retried.
type Publisher interface {
	Publish(ctx context.Context, event events.Event)
}

// Subscription binds a handler to a queue. The full set of subscriptions is
// assembled at startup and handed to the transport, so the consumer topology
// stays visible in one place.
type Subscription struct {
	Queue   string
	Handler Handler
}

// Bus is a transport that can both publish and drive subscriptions.
type Bus interface {
	Publisher
	// Subscribe attaches a handler to a queue. Messages arriving on the
	// queue are dispatched to the handler sequentially.
	Subscribe(queue string, handler Handler) error
}
