package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB holds the database connection
type DB struct {
	Mongo *mongo.Client
}

// InitDB initializes and returns the database connection
func InitDB() (*DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	cfg := Load()

	mongoClient, err := initMongo(cfg.MongoURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	return &DB{Mongo: mongoClient}, nil
}

// initMongo initializes the MongoDB connection
func initMongo(uri string) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(uri)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping the primary to verify connection
	if err = client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	log.Println("Successfully connected to MongoDB!")
	return client, nil
}

// EnsureIndexes creates the indexes the application relies on. The unique
// compound index on likes is what makes the like toggle race-safe.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	type indexSpec struct {
		collection string
		model      mongo.IndexModel
	}
	specs := []indexSpec{
		{"users", mongo.IndexModel{
			Keys:    bson.D{{Key: "universityEmail", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		}},
		{"users", mongo.IndexModel{
			Keys:    bson.D{{Key: "studentId", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		}},
		{"posts", mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}}}},
		{"likes", mongo.IndexModel{
			Keys:    bson.D{{Key: "postId", Value: 1}, {Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{"comments", mongo.IndexModel{Keys: bson.D{{Key: "postId", Value: 1}}}},
		{"comments", mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: 1}}}},
		{"chatMessages", mongo.IndexModel{Keys: bson.D{{Key: "senderId", Value: 1}, {Key: "receiverId", Value: 1}}}},
		{"chatMessages", mongo.IndexModel{Keys: bson.D{{Key: "timestamp", Value: -1}}}},
		{"notifications", mongo.IndexModel{Keys: bson.D{{Key: "userId", Value: 1}}}},
		{"notifications", mongo.IndexModel{Keys: bson.D{{Key: "timestamp", Value: -1}}}},
		{"marketplaceItems", mongo.IndexModel{Keys: bson.D{{Key: "sellerId", Value: 1}}}},
		{"marketplaceItems", mongo.IndexModel{Keys: bson.D{{Key: "category", Value: 1}}}},
		{"marketplaceItems", mongo.IndexModel{Keys: bson.D{{Key: "isActive", Value: 1}}}},
	}

	for _, spec := range specs {
		if _, err := db.Collection(spec.collection).Indexes().CreateOne(ctx, spec.model); err != nil {
			return fmt.Errorf("creating index on %s: %w", spec.collection, err)
		}
	}
	log.Println("MongoDB indexes ensured.")
	return nil
}

// CloseDB closes the database connection
func (db *DB) CloseDB() {
	if db.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Mongo.Disconnect(ctx); err != nil {
			log.Printf("Error closing MongoDB connection: %v\n", err)
		} else {
			log.Println("MongoDB connection closed.")
		}
	}
}
