package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Database owns the MongoDB client for the life of the process.
type Database struct {
	Client *mongo.Client
	name   string
}

func ConnectDB(ctx context.Context, cfg mongoConfig, logger logrus.FieldLogger) (*Database, error) {
	logger.WithField("database", cfg.Database).Info("connecting to MongoDB")

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("MongoDB is not reachable: %w", err)
	}

	logger.Info("connected to MongoDB")
	return &Database{Client: client, name: cfg.Database}, nil
}

func (d *Database) DB() *mongo.Database {
	return d.Client.Database(d.name)
}

func (d *Database) OpenCollection(collectionName string) *mongo.Collection {
	return d.DB().Collection(collectionName)
}

func (d *Database) Close(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}
