// Package mongodb holds the MongoDB connection and helpers shared by the
// document repositories.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/heartmarshall/usergraph-backend/internal/config"
)

// DB is a connected MongoDB client bound to one database.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewClient connects to MongoDB with the settings from MongoConfig, pings
// the primary for fail-fast validation, and returns the ready DB.
func NewClient(ctx context.Context, cfg config.MongoConfig) (*DB, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize)
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &DB{client: client, db: client.Database(cfg.Database)}, nil
}

// Collection returns a handle for the named collection.
func (d *DB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// Ping checks that the primary is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client, waiting for in-flight operations until ctx expires.
func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
