package container

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/v2/mongo"
	mongooptions "go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DefaultDatabase is the database name used by tests that do not care
// which database they run against.
const DefaultDatabase = "crm-test"

// MongoDBContainer wraps a testcontainers MongoDB instance together with a
// connected client.
type MongoDBContainer struct {
	Container        *mongodb.MongoDBContainer
	Client           *mongo.Client
	ConnectionString string
}

// MongoDBOption configures the MongoDB container.
type MongoDBOption func(*mongoDBOptions)

type mongoDBOptions struct {
	image      string
	replicaSet string
}

// WithMongoDBImage sets the MongoDB image to use.
func WithMongoDBImage(image string) MongoDBOption {
	return func(o *mongoDBOptions) {
		o.image = image
	}
}

// WithReplicaSet enables a replica set with the given name. Needed for
// tests exercising transactions or change streams.
func WithReplicaSet(name string) MongoDBOption {
	return func(o *mongoDBOptions) {
		o.replicaSet = name
	}
}

// StartMongoDBContainer starts a MongoDB container and returns a wrapper
// with a connected, ping-verified client.
func StartMongoDBContainer(ctx context.Context, opts ...MongoDBOption) (*MongoDBContainer, error) {
	options := &mongoDBOptions{
		image: "mongo:7",
	}
	for _, opt := range opts {
		opt(options)
	}

	var tcOpts []testcontainers.ContainerCustomizer
	if options.replicaSet != "" {
		tcOpts = append(tcOpts, mongodb.WithReplicaSet(options.replicaSet))
	}

	mongoContainer, err := mongodb.Run(ctx, options.image, tcOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to start mongodb container: %w", err)
	}

	connectionString, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		_ = testcontainers.TerminateContainer(mongoContainer)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	client, err := mongo.Connect(mongooptions.Client().ApplyURI(connectionString))
	if err != nil {
		_ = testcontainers.TerminateContainer(mongoContainer)
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		_ = testcontainers.TerminateContainer(mongoContainer)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBContainer{
		Container:        mongoContainer,
		Client:           client,
		ConnectionString: connectionString,
	}, nil
}

// Database returns a handle for the given database name.
func (m *MongoDBContainer) Database(name string) *mongo.Database {
	return m.Client.Database(name)
}

// TestDatabase returns a handle for the shared test database.
func (m *MongoDBContainer) TestDatabase() *mongo.Database {
	return m.Database(DefaultDatabase)
}

// Terminate disconnects the client and terminates the container.
func (m *MongoDBContainer) Terminate(ctx context.Context) error {
	var errs []error

	if m.Client != nil {
		if err := m.Client.Disconnect(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to disconnect from mongodb: %w", err))
		}
	}

	if m.Container != nil {
		if err := testcontainers.TerminateContainer(m.Container); err != nil {
			errs = append(errs, fmt.Errorf("failed to terminate mongodb container: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during termination: %v", errs)
	}
	return nil
}
