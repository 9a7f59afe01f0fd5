package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/unilink-et/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	CreateLike(ctx context.Context, like *models.Like) error
	DeleteLike(ctx context.Context, postID, userID string) error
	HasUserLikedPost(ctx context.Context, postID, userID string) (bool, error)
	GetLikesCountByPostID(ctx context.Context, postID string) (int64, error)
	GetLikesByPostIDs(ctx context.Context, postIDs []string) ([]models.Like, error)
}

// MongoLikeRepository implements LikeRepository for MongoDB
type MongoLikeRepository struct {
	collection *mongo.Collection
}

// NewMongoLikeRepository creates a new MongoLikeRepository
func NewMongoLikeRepository(db *mongo.Database) *MongoLikeRepository {
	return &MongoLikeRepository{collection: db.Collection("likes")}
}

// CreateLike inserts a like. The unique index on (postId, userId) makes a
// concurrent duplicate insert fail; that is surfaced as ErrConflict so the
// toggle can collapse it into "already liked".
func (r *MongoLikeRepository) CreateLike(ctx context.Context, like *models.Like) error {
	like.ID = primitive.NewObjectID()
	like.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, like)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("post already liked: %w", models.ErrConflict)
	}
	return err
}

// DeleteLike removes the like of a user on a post
func (r *MongoLikeRepository) DeleteLike(ctx context.Context, postID, userID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"postId": postID, "userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("like: %w", models.ErrNotFound)
	}
	return nil
}

// HasUserLikedPost checks if a user has liked a specific post
func (r *MongoLikeRepository) HasUserLikedPost(ctx context.Context, postID, userID string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"postId": postID, "userId": userID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetLikesCountByPostID counts the likes of a post
func (r *MongoLikeRepository) GetLikesCountByPostID(ctx context.Context, postID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"postId": postID})
}

// GetLikesByPostIDs retrieves all likes whose postId is in the given set,
// in one round trip. Used by the feed to fold counts and liked state.
func (r *MongoLikeRepository) GetLikesByPostIDs(ctx context.Context, postIDs []string) ([]models.Like, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var likes []models.Like
	cursor, err := r.collection.Find(ctx, bson.M{"postId": bson.M{"$in": postIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &likes); err != nil {
		return nil, err
	}
	return likes, nil
}
