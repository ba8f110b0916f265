package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/darshanrk18/kambaz-server-go/config"
)

// Client is the global Mongo client
var Client *mongo.Client

// DB is the global database handle
var DB *mongo.Database

// InitDatabaseConnection connects to MongoDB and prepares indexes
func InitDatabaseConnection() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.ConfigInstance.DatabaseURL))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping database: %v", err)
	}

	Client = client
	DB = client.Database(config.ConfigInstance.DatabaseName)

	if err := ensureIndexes(ctx, DB); err != nil {
		return fmt.Errorf("failed to create indexes: %v", err)
	}

	return nil
}

// ensureIndexes creates the indexes the application relies on. The unique
// compound index on enrollments makes concurrent enrolls for the same
// (user, course) pair converge on a single document.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("enrollments").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}, {Key: "course", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// CloseConnection closes the database connection
func CloseConnection() error {
	if Client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return Client.Disconnect(ctx)
	}
	return nil
}
