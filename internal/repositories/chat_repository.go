package repositories

import (
	"context"
	"time"

	"github.com/unilink-et/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ChatRepository defines the interface for chat message data operations
type ChatRepository interface {
	CreateMessage(ctx context.Context, msg *models.ChatMessage) error
	GetThread(ctx context.Context, userID, otherID string) ([]models.ChatMessage, error)
	GetRecentByUser(ctx context.Context, userID string, limit int64) ([]models.ChatMessage, error)
	MarkThreadRead(ctx context.Context, senderID, receiverID string) error
	CountUnreadFrom(ctx context.Context, senderID, receiverID string) (int64, error)
}

// MongoChatRepository implements ChatRepository for MongoDB
type MongoChatRepository struct {
	collection *mongo.Collection
}

// NewMongoChatRepository creates a new MongoChatRepository
func NewMongoChatRepository(db *mongo.Database) *MongoChatRepository {
	return &MongoChatRepository{collection: db.Collection("chatMessages")}
}

// CreateMessage appends a new chat message
func (r *MongoChatRepository) CreateMessage(ctx context.Context, msg *models.ChatMessage) error {
	msg.ID = primitive.NewObjectID()
	msg.CreatedAt = time.Now()
	msg.IsRead = false
	_, err := r.collection.InsertOne(ctx, msg)
	return err
}

// GetThread retrieves the full two-party message history, oldest first
func (r *MongoChatRepository) GetThread(ctx context.Context, userID, otherID string) ([]models.ChatMessage, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"senderId": userID, "receiverId": otherID},
		bson.M{"senderId": otherID, "receiverId": userID},
	}}
	var messages []models.ChatMessage
	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// GetRecentByUser retrieves the most recent messages where the user is
// sender or receiver, newest first, capped at limit.
func (r *MongoChatRepository) GetRecentByUser(ctx context.Context, userID string, limit int64) ([]models.ChatMessage, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"senderId": userID},
		bson.M{"receiverId": userID},
	}}
	var messages []models.ChatMessage
	findOptions := options.Find().
		SetLimit(limit).
		SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkThreadRead flips isRead on every unread message from sender to
// receiver. Zero matches is not an error.
func (r *MongoChatRepository) MarkThreadRead(ctx context.Context, senderID, receiverID string) error {
	filter := bson.M{"senderId": senderID, "receiverId": receiverID, "isRead": false}
	_, err := r.collection.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"isRead": true}})
	return err
}

// CountUnreadFrom counts unread messages from sender to receiver
func (r *MongoChatRepository) CountUnreadFrom(ctx context.Context, senderID, receiverID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"senderId": senderID, "receiverId": receiverID, "isRead": false})
}
