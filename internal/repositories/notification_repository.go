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

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
	GetByUserID(ctx context.Context, userID string, limit int64) ([]models.Notification, error)
	GetUnreadCount(ctx context.Context, userID string) (int64, error)
	MarkAsRead(ctx context.Context, notificationID string) error
	MarkAllAsRead(ctx context.Context, userID string) error
	DeleteLikeNotification(ctx context.Context, postID, actorID string) error
}

// MongoNotificationRepository implements NotificationRepository for MongoDB
type MongoNotificationRepository struct {
	collection *mongo.Collection
}

// NewMongoNotificationRepository creates a new MongoNotificationRepository
func NewMongoNotificationRepository(db *mongo.Database) *MongoNotificationRepository {
	return &MongoNotificationRepository{collection: db.Collection("notifications")}
}

// CreateNotification creates a new notification
func (r *MongoNotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) error {
	notification.ID = primitive.NewObjectID()
	notification.CreatedAt = time.Now()
	notification.IsRead = false
	_, err := r.collection.InsertOne(ctx, notification)
	return err
}

// GetByUserID retrieves the recipient's notifications, newest first
func (r *MongoNotificationRepository) GetByUserID(ctx context.Context, userID string, limit int64) ([]models.Notification, error) {
	var notifications []models.Notification
	findOptions := options.Find().
		SetLimit(limit).
		SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// GetUnreadCount counts the recipient's unread notifications
func (r *MongoNotificationRepository) GetUnreadCount(ctx context.Context, userID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"userId": userID, "isRead": false})
}

// MarkAsRead flips isRead on one notification
func (r *MongoNotificationRepository) MarkAsRead(ctx context.Context, notificationID string) error {
	objID, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return fmt.Errorf("invalid notification ID format: %w", models.ErrNotFound)
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"isRead": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("notification: %w", models.ErrNotFound)
	}
	return nil
}

// MarkAllAsRead flips isRead on every unread notification of the
// recipient. Zero matches is not an error.
func (r *MongoNotificationRepository) MarkAllAsRead(ctx context.Context, userID string) error {
	filter := bson.M{"userId": userID, "isRead": false}
	_, err := r.collection.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"isRead": true}})
	return err
}

// DeleteLikeNotification removes the like notification an actor produced
// on a post, so unliking also retracts its fan-out. Zero deletes is fine.
func (r *MongoNotificationRepository) DeleteLikeNotification(ctx context.Context, postID, actorID string) error {
	filter := bson.M{"type": models.NotificationTypeLike, "postId": postID, "actorId": actorID}
	_, err := r.collection.DeleteMany(ctx, filter)
	return err
}
