package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/unilink-et/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MarketplaceRepository defines the interface for listing data operations
type MarketplaceRepository interface {
	CreateItem(ctx context.Context, item *models.MarketplaceItem) error
	GetItemByID(ctx context.Context, id string) (*models.MarketplaceItem, error)
	GetActiveItems(ctx context.Context, category string) ([]models.MarketplaceItem, error)
	UpdateItem(ctx context.Context, id string, updates bson.M) error
	DeactivateItem(ctx context.Context, id string) error
}

// MongoMarketplaceRepository implements MarketplaceRepository for MongoDB
type MongoMarketplaceRepository struct {
	collection *mongo.Collection
}

// NewMongoMarketplaceRepository creates a new MongoMarketplaceRepository
func NewMongoMarketplaceRepository(db *mongo.Database) *MongoMarketplaceRepository {
	return &MongoMarketplaceRepository{collection: db.Collection("marketplaceItems")}
}

// CreateItem creates a new marketplace listing
func (r *MongoMarketplaceRepository) CreateItem(ctx context.Context, item *models.MarketplaceItem) error {
	item.ID = primitive.NewObjectID()
	item.PostedDate = time.Now()
	item.IsActive = true
	_, err := r.collection.InsertOne(ctx, item)
	return err
}

// GetItemByID retrieves a listing by ID
func (r *MongoMarketplaceRepository) GetItemByID(ctx context.Context, id string) (*models.MarketplaceItem, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid item ID format: %w", models.ErrNotFound)
	}

	var item models.MarketplaceItem
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("marketplace item: %w", models.ErrNotFound)
		}
		return nil, err
	}
	return &item, nil
}

// GetActiveItems retrieves active listings, newest first, optionally
// filtered by category.
func (r *MongoMarketplaceRepository) GetActiveItems(ctx context.Context, category string) ([]models.MarketplaceItem, error) {
	filter := bson.M{"isActive": true}
	if category != "" {
		filter["category"] = category
	}
	var items []models.MarketplaceItem
	findOptions := options.Find().SetSort(bson.D{{Key: "postedDate", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateItem applies a partial update to a listing
func (r *MongoMarketplaceRepository) UpdateItem(ctx context.Context, id string, updates bson.M) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid item ID format: %w", models.ErrNotFound)
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": updates})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("marketplace item: %w", models.ErrNotFound)
	}
	return nil
}

// DeactivateItem soft-deletes a listing
func (r *MongoMarketplaceRepository) DeactivateItem(ctx context.Context, id string) error {
	return r.UpdateItem(ctx, id, bson.M{"isActive": false})
}
