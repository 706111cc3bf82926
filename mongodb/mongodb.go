package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	MoviesCollection   = "movies"
	CommentsCollection = "comments"
)

type Options struct {
	URI              string
	Database         string
	ConnectTimeout   time.Duration
	OperationTimeout time.Duration
}

// Connection is the process-wide handle to the catalog database. It is
// created once at startup and shared read-only by every request.
type Connection struct {
	client    *mongo.Client
	db        *mongo.Database
	opTimeout time.Duration
}

func NewConnection(opts Options) (*Connection, error) {
	if opts.URI == "" {
		return nil, fmt.Errorf("mongodb uri is required")
	}
	if opts.Database == "" {
		return nil, fmt.Errorf("mongodb database is required")
	}
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &Connection{
		client:    client,
		db:        client.Database(opts.Database),
		opTimeout: opts.OperationTimeout,
	}, nil
}

func (c *Connection) Database() *mongo.Database {
	return c.db
}

func (c *Connection) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

func (c *Connection) Ping(ctx context.Context) error {
	ctx, cancel := c.withOperationTimeout(ctx)
	defer cancel()
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *Connection) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// withOperationTimeout bounds ctx by the configured operation timeout
// unless the caller already set a deadline.
func (c *Connection) withOperationTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.opTimeout <= 0 {
		return ctx, func() {}
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.opTimeout)
}
