package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification types produced by the fan-out of primary actions.
const (
	NotificationTypeLike    = "like"
	NotificationTypeComment = "comment"
	NotificationTypeMessage = "message"
)

// Notification is a secondary record derived from a like, comment or
// message. Never created when the actor is the recipient; mutated only
// to flip isRead. The bson field for the creation time is "timestamp"
// to match the existing collection index.
type Notification struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID      string             `json:"userId" bson:"userId"` // recipient
	Type        string             `json:"type" bson:"type"`
	Title       string             `json:"title" bson:"title"`
	Message     string             `json:"message" bson:"message"`
	ActorID     string             `json:"actorId" bson:"actorId"`
	ActorName   string             `json:"actorName" bson:"actorName"`
	ActorAvatar string             `json:"actorAvatar,omitempty" bson:"actorAvatar,omitempty"`
	PostID      string             `json:"postId,omitempty" bson:"postId,omitempty"`
	ItemID      string             `json:"itemId,omitempty" bson:"itemId,omitempty"`
	IsRead      bool               `json:"isRead" bson:"isRead"`
	CreatedAt   time.Time          `json:"timestamp" bson:"timestamp"`
}
