package mongo

import (
	"context"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/ValoreSposi/crm-backend/platform/logger"
	"github.com/ValoreSposi/crm-backend/platform/testcontainers"
)

const (
	mongoStartupTimeout = 1 * time.Minute

	mongoEnvUsernameKey = "MONGO_INITDB_ROOT_USERNAME"
	mongoEnvPasswordKey = "MONGO_INITDB_ROOT_PASSWORD" //nolint:gosec
)

type Container struct {
	container tc.Container
	client    *mongo.Client
	cfg       *Config
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := buildConfig(opts...)

	container, err := startMongoContainer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	success := false
	defer func() {
		if !success {
			if err = container.Terminate(ctx); err != nil {
				cfg.Logger.Error(ctx, "failed to terminate mongo container", logger.ErrorF(err))
			}
		}
	}()

	cfg.Host, cfg.Port, err = getContainerHostPort(ctx, container)
	if err != nil {
		return nil, err
	}

	client, err := connectMongoClient(ctx, buildMongoURI(cfg, cfg.Host, cfg.Port))
	if err != nil {
		return nil, err
	}

	cfg.Logger.Info(ctx, "Mongo container started",
		logger.String("host", cfg.Host),
		logger.String("port", cfg.Port),
	)
	success = true

	return &Container{
		container: container,
		client:    client,
		cfg:       cfg,
	}, nil
}

func (c *Container) Client() *mongo.Client {
	return c.client
}

func (c *Container) Config() *Config {
	return c.cfg
}

func (c *Container) Database() *mongo.Database {
	return c.client.Database(c.cfg.Database)
}

// URI is reachable from the test process through the mapped port.
func (c *Container) URI() string {
	return buildMongoURI(c.cfg, c.cfg.Host, c.cfg.Port)
}

// NetworkURI is reachable from other containers on the same docker network.
func (c *Container) NetworkURI() string {
	return buildMongoURI(c.cfg, testcontainers.MongoNetworkAlias, testcontainers.MongoPort)
}

// Seed inserts docs into collection. An empty docs list is a no-op.
func (c *Container) Seed(ctx context.Context, collection string, docs ...any) error {
	if len(docs) == 0 {
		return nil
	}
	_, err := c.Database().Collection(collection).InsertMany(ctx, docs)
	return err
}

// Reset empties every collection of the test database.
func (c *Container) Reset(ctx context.Context) error {
	names, err := c.Database().ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return err
	}
	for _, name := range names {
		if _, err = c.Database().Collection(name).DeleteMany(ctx, bson.D{}); err != nil {
			return err
		}
	}
	return nil
}

func (c *Container) Terminate(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		c.cfg.Logger.Error(ctx, "failed to disconnect mongo client", logger.ErrorF(err))
	}

	if err := c.container.Terminate(ctx); err != nil {
		c.cfg.Logger.Error(ctx, "failed to terminate mongo container", logger.ErrorF(err))
	}

	c.cfg.Logger.Info(ctx, "Mongo container terminated")

	return nil
}
