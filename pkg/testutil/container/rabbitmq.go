package container

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// RabbitMQContainer wraps a testcontainers RabbitMQ broker.
type RabbitMQContainer struct {
	Container testcontainers.Container
	URI       string
}

// RabbitMQOption configures the RabbitMQ container.
type RabbitMQOption func(*rabbitMQOptions)

type rabbitMQOptions struct {
	image string
}

// WithRabbitMQImage sets the RabbitMQ image to use.
func WithRabbitMQImage(image string) RabbitMQOption {
	return func(o *rabbitMQOptions) {
		o.image = image
	}
}

// StartRabbitMQContainer starts a RabbitMQ broker and waits until it
// accepts AMQP connections.
func StartRabbitMQContainer(ctx context.Context, opts ...RabbitMQOption) (*RabbitMQContainer, error) {
	options := &rabbitMQOptions{
		image: "rabbitmq:3.13-alpine",
	}
	for _, opt := range opts {
		opt(options)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        options.image,
			ExposedPorts: []string{"5672/tcp"},
			WaitingFor: wait.ForListeningPort("5672/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start rabbitmq container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx) //nolint:errcheck // best effort cleanup
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5672")
	if err != nil {
		_ = container.Terminate(ctx) //nolint:errcheck // best effort cleanup
		return nil, fmt.Errorf("failed to get amqp port: %w", err)
	}

	uri := fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port())

	if err := waitForBroker(ctx, uri, 30*time.Second); err != nil {
		_ = container.Terminate(ctx) //nolint:errcheck // best effort cleanup
		return nil, fmt.Errorf("rabbitmq not ready: %w", err)
	}

	return &RabbitMQContainer{
		Container: container,
		URI:       uri,
	}, nil
}

// Terminate terminates the container.
func (r *RabbitMQContainer) Terminate(ctx context.Context) error {
	if r.Container != nil {
		return r.Container.Terminate(ctx)
	}
	return nil
}

func waitForBroker(ctx context.Context, uri string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for rabbitmq at %s", uri)
		default:
			conn, err := amqp.Dial(uri)
			if err == nil {
				return conn.Close()
			}
			time.Sleep(500 * time.Millisecond)
		}
	}
}
