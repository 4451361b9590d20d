package rabbit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Sokol111/crm-commons/pkg/messaging"
	"github.com/cenkalti/backoff/v4"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Connection wraps a single AMQP connection shared by the publisher and the
// queue consumers. Topology is declared on every successful dial, so a fresh
// broker comes up with the full exchange/queue/binding set.
type Connection struct {
	log *zap.Logger
	cfg Config

	mu   sync.Mutex
	conn *amqp.Connection
}

func newConnection(cfg Config, log *zap.Logger) *Connection {
	return &Connection{
		log: log.Named("rabbit"),
		cfg: cfg,
	}
}

// Connect dials the broker with exponential backoff and declares the
// topology. It is a no-op when the connection is already open, so concurrent
// consumers recovering from the same outage dial only once.
func (c *Connection) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil && !c.conn.IsClosed() {
		return nil
	}

	operation := func() error {
		conn, err := amqp.DialConfig(c.cfg.URI, amqp.Config{
			Dial: amqp.DefaultDial(c.cfg.ConnectTimeout),
		})
		if err != nil {
			c.log.Warn("failed to connect to rabbitmq, retrying", zap.Error(err))
			return err
		}

		ch, err := conn.Channel()
		if err != nil {
			conn.Close()
			return err
		}
		defer ch.Close()

		if err := declareTopology(ch); err != nil {
			conn.Close()
			return backoff.Permanent(err)
		}

		c.conn = conn
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxInterval = c.cfg.ReconnectMaxInterval
	b.MaxElapsedTime = c.cfg.ReconnectMaxElapsed

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	c.log.Info("connected to rabbitmq")
	return nil
}

// Channel opens a new channel on the current connection.
func (c *Connection) Channel() (*amqp.Channel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil || c.conn.IsClosed() {
		return nil, errors.New("rabbitmq connection is not open")
	}
	return c.conn.Channel()
}

func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil || c.conn.IsClosed() {
		return nil
	}
	return c.conn.Close()
}

func declareTopology(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(messaging.ExchangeName, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", messaging.ExchangeName, err)
	}

	for _, b := range messaging.Bindings() {
		if _, err := ch.QueueDeclare(b.Queue, true, false, false, false, nil); err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", b.Queue, err)
		}
		if err := ch.QueueBind(b.Queue, brokerPattern(b.Pattern), messaging.ExchangeName, false, nil); err != nil {
			return fmt.Errorf("failed to bind queue %s: %w", b.Queue, err)
		}
	}
	return nil
}

// brokerPattern widens a trailing "*" to "#" for the broker-side binding.
// AMQP "*" matches a single word, but event types are dotted, so a literal
// "customer.events.*" binding would silently drop "customer.events.customer.created".
func brokerPattern(pattern string) string {
	if strings.HasSuffix(pattern, ".*") {
		return strings.TrimSuffix(pattern, ".*") + ".#"
	}
	return pattern
}
