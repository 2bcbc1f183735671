package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/hosteleats/backend/config"
)

// Mongo owns the process-scoped MongoDB client. It is created once at
// startup, injected into the stores, and closed on shutdown.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes the client and verifies the deployment is
// reachable with a ping before the server starts accepting requests.
func Connect(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Mongo{
		client: client,
		db:     client.Database(cfg.DBName),
	}, nil
}

// Database returns the application database handle.
func (m *Mongo) Database() *mongo.Database {
	return m.db
}

// Ping confirms the deployment is still reachable.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

// Close disconnects the client. Call on shutdown only.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
