package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like represents a like on a post. The unique index on (postId, userId)
// guarantees at most one active like per user per post; its existence is
// the sole source of truth for liked state.
type Like struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PostID    string             `json:"postId" bson:"postId"`
	UserID    string             `json:"userId" bson:"userId"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// ToggleLikeResult is the response body of the like toggle.
// The PascalCase keys are part of the existing client contract.
type ToggleLikeResult struct {
	PostID    string `json:"PostId"`
	Liked     bool   `json:"Liked"`
	LikeCount int64  `json:"LikeCount"`
}
