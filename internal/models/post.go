package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VisibilityPublic is the default post visibility.
const VisibilityPublic = "public"

// Post represents a social post stored in the posts collection.
// Like and comment counts are never stored on the post; they are derived
// by counting likes/comments at read time.
type Post struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID     string             `json:"userId" bson:"userId"`
	Content    string             `json:"content" bson:"content"`
	ImageURL   string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Visibility string             `json:"visibility" bson:"visibility"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Content  string `json:"content" validate:"required,min=1,max=1000"`
	ImageURL string `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

// FeedPost is a post decorated with author info and derived counts.
// The PascalCase keys are part of the existing client contract.
type FeedPost struct {
	PostID       string    `json:"PostId"`
	UserID       string    `json:"UserId"`
	UserName     string    `json:"UserName"`
	UserAvatar   string    `json:"UserAvatar,omitempty"`
	Content      string    `json:"Content"`
	ImageURL     string    `json:"ImageUrl,omitempty"`
	LikeCount    int64     `json:"LikeCount"`
	CommentCount int64     `json:"CommentCount"`
	IsLiked      bool      `json:"IsLiked"`
	CreatedAt    time.Time `json:"CreatedAt"`
}
