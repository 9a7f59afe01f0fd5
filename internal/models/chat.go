package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatMessage represents one directional message stored in the
// chatMessages collection. The bson field is "timestamp" to match the
// existing collection index.
type ChatMessage struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SenderID   string             `json:"senderId" bson:"senderId"`
	ReceiverID string             `json:"receiverId" bson:"receiverId"`
	Content    string             `json:"content" bson:"content"`
	IsRead     bool               `json:"isRead" bson:"isRead"`
	CreatedAt  time.Time          `json:"timestamp" bson:"timestamp"`
}

// SendMessageRequest defines the request body for sending a direct message
type SendMessageRequest struct {
	ReceiverID string `json:"receiverId" validate:"required"`
	Content    string `json:"content" validate:"required,min=1,max=2000"`
}

// Conversation is one aggregated entry per counterpart, holding only the
// most recent message exchanged with them. The PascalCase keys are part
// of the existing client contract.
type Conversation struct {
	UserID          string    `json:"UserId"`
	UserName        string    `json:"UserName"`
	UserAvatar      string    `json:"UserAvatar,omitempty"`
	LastMessage     string    `json:"LastMessage"`
	LastMessageTime time.Time `json:"LastMessageTime"`
	UnreadCount     int64     `json:"UnreadCount"`
}
