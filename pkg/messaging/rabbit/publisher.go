package rabbit

import (
	"context"
	"sync"

	"github.com/Sokol111/crm-commons/pkg/events"
	"github.com/Sokol111/crm-commons/pkg/messaging"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// publisher sends events to the topic exchange over a single lazily opened
// channel. Delivery is at-most-once: every failure path logs and returns,
// nothing is surfaced to the caller and nothing is retried.
type publisher struct {
	log  *zap.Logger
	conn *Connection

	mu sync.Mutex
	ch *amqp.Channel
}

func newPublisher(conn *Connection, log *zap.Logger) messaging.Publisher {
	return &publisher{
		log:  log.Named("rabbit-publisher"),
		conn: conn,
	}
}

func (p *publisher) Publish(ctx context.Context, event events.Event) {
	meta := event.Meta()
	key := messaging.RoutingKey(event.Domain(), meta.EventType)

	body, err := events.Marshal(event)
	if err != nil {
		p.log.Error("failed to publish event", zap.String("routing_key", key), zap.Error(err))
		return
	}

	headers := amqp.Table{}
	injectTraceContext(ctx, headers)

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		p.log.Error("failed to publish event", zap.String("routing_key", key), zap.Error(err))
		return
	}

	err = ch.PublishWithContext(ctx, messaging.ExchangeName, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    meta.EventID,
		Type:         meta.EventType,
		Timestamp:    meta.Timestamp,
		Headers:      headers,
		Body:         body,
	})
	if err != nil {
		p.dropChannel()
		p.log.Error("failed to publish event", zap.String("routing_key", key), zap.Error(err))
		return
	}

	p.log.Debug("published event",
		zap.String("routing_key", key),
		zap.String("event_id", meta.EventID))
}

// channel returns the cached publish channel, opening a fresh one when the
// previous was dropped. Callers hold p.mu.
func (p *publisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return nil, err
	}
	p.ch = ch
	return ch, nil
}

func (p *publisher) dropChannel() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
}
