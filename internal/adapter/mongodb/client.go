// Package mongodb owns the MongoDB client used by the repositories. The client
// is created once at process start and shared; the driver's connection pool is
// safe for concurrent use.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/TGiulio/nightlog/internal/config"
)

// DB bundles the client with the collection holding observation logs.
type DB struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// Connect creates a MongoDB client configured from DatabaseConfig. It applies
// the connection string, optionally pins the Stable API v1, pings the primary
// for fail-fast validation (bounded by ConnectTimeout), and returns the ready
// handle.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	opts := options.Client().ApplyURI(cfg.URL)
	if cfg.StableAPI {
		opts.SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	}
	opts.SetConnectTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("create mongo client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{
		client:     client,
		collection: client.Database(cfg.Name).Collection(cfg.Collection),
	}, nil
}

// Collection returns the observation log collection.
func (d *DB) Collection() *mongo.Collection {
	return d.collection
}

// Ping checks that the primary is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client, waiting for in-use connections until ctx ends.
func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
