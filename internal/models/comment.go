package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment represents a comment on a post. Append-only; reads are ordered
// by creation time ascending. postOwnerId is denormalized at write time
// so notification cleanup never needs a post lookup.
type Comment struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PostID      string             `json:"postId" bson:"postId"`
	UserID      string             `json:"userId" bson:"userId"`
	PostOwnerID string             `json:"postOwnerId" bson:"postOwnerId"`
	Content     string             `json:"content" bson:"content"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}
