package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultConnectTimeout         = 10 * time.Second
	defaultServerSelectionTimeout = 5 * time.Second
	defaultMaxPoolSize            = 100
	defaultMinPoolSize            = 10
)

// Options tunes the client pool. Zero values take the defaults above.
type Options struct {
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	MaxPoolSize            uint64
	MinPoolSize            uint64
}

func (o Options) withDefaults() Options {
	if o.ConnectTimeout == 0 {
		o.ConnectTimeout = defaultConnectTimeout
	}
	if o.ServerSelectionTimeout == 0 {
		o.ServerSelectionTimeout = defaultServerSelectionTimeout
	}
	if o.MaxPoolSize == 0 {
		o.MaxPoolSize = defaultMaxPoolSize
	}
	if o.MinPoolSize == 0 {
		o.MinPoolSize = defaultMinPoolSize
	}
	return o
}

// ConnectMongoDB opens a pooled client with the default sizing.
func ConnectMongoDB(ctx context.Context, uri, database string) (*mongo.Database, error) {
	return Connect(ctx, uri, database, Options{})
}

// Connect opens a client tuned by opts and verifies it with a ping.
func Connect(ctx context.Context, uri, database string, opts Options) (*mongo.Database, error) {
	opts = opts.withDefaults()

	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(opts.ConnectTimeout).
		SetServerSelectionTimeout(opts.ServerSelectionTimeout).
		SetMaxPoolSize(opts.MaxPoolSize).
		SetMinPoolSize(opts.MinPoolSize)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client.Database(database), nil
}
