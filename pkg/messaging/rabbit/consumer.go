package rabbit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Sokol111/crm-commons/pkg/core/logger"
	"github.com/Sokol111/crm-commons/pkg/messaging"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// consumerRunner drives one consuming goroutine per subscribed queue. A
// handler error is logged and the message is acknowledged anyway: delivery
// is at-most-once and a failed side effect for one event is dropped rather
// than blocking the queue.
type consumerRunner struct {
	log       *zap.Logger
	throttler *logger.LogThrottler
	cfg       Config
	conn      *Connection
	subs      []messaging.Subscription
}

func newConsumerRunner(cfg Config, conn *Connection, subs []messaging.Subscription, log *zap.Logger) *consumerRunner {
	log = log.Named("rabbit-consumer")
	return &consumerRunner{
		log:       log,
		throttler: logger.NewLogThrottler(log, time.Minute),
		cfg:       cfg,
		conn:      conn,
		subs:      subs,
	}
}

// Run blocks until every consume loop stops. A loop that exhausts its
// reconnect budget is fatal: the error cancels the sibling loops and is
// returned, so the owning worker can shut the application down instead of
// leaving a queue silently unconsumed.
func (r *consumerRunner) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, sub := range r.subs {
		g.Go(func() error {
			return r.consumeLoop(ctx, sub)
		})
	}
	return g.Wait()
}

func (r *consumerRunner) consumeLoop(ctx context.Context, sub messaging.Subscription) error {
	for ctx.Err() == nil {
		if err := r.consume(ctx, sub); err != nil {
			r.throttler.Warn(sub.Queue, "consumer disconnected, reconnecting",
				zap.String("queue", sub.Queue),
				zap.Error(err))

			if err := r.conn.Connect(ctx); err != nil && ctx.Err() == nil {
				return fmt.Errorf("consumer for queue %s gave up reconnecting: %w", sub.Queue, err)
			}
		}
	}
	r.log.Info("consumer stopped", zap.String("queue", sub.Queue))
	return nil
}

// consume reads deliveries from the queue until the context is cancelled or
// the channel breaks. A nil return means a clean shutdown.
func (r *consumerRunner) consume(ctx context.Context, sub messaging.Subscription) error {
	ch, err := r.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := ch.Qos(r.cfg.PrefetchCount, 0, false); err != nil {
		return err
	}

	deliveries, err := ch.Consume(sub.Queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}
	r.log.Info("consuming queue", zap.String("queue", sub.Queue))

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("delivery channel closed")
			}

			msg := messaging.Message{
				RoutingKey: d.RoutingKey,
				Body:       d.Body,
				Headers:    headerMap(d.Headers),
			}

			msgCtx := extractTraceContext(ctx, msg.Headers)
			msgCtx = logger.WithLogger(msgCtx, r.log.With(
				zap.String("queue", sub.Queue),
				zap.String("routing_key", d.RoutingKey),
			))
			if err := sub.Handler.HandleMessage(msgCtx, msg); err != nil {
				r.log.Error("failed to handle message",
					zap.String("queue", sub.Queue),
					zap.String("routing_key", d.RoutingKey),
					zap.Error(err))
			}

			if err := d.Ack(false); err != nil {
				return err
			}
		}
	}
}
