package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MarketplaceItem represents a listing in the marketplaceItems collection.
// Items are never hard-deleted; isActive is flipped instead so old chats
// referencing an item keep resolving.
type MarketplaceItem struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SellerID     string             `json:"sellerId" bson:"sellerId"`
	Title        string             `json:"title" bson:"title"`
	Description  string             `json:"description" bson:"description"`
	Price        float64            `json:"price" bson:"price"`
	ImageURL     string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Category     string             `json:"category" bson:"category"`
	Condition    string             `json:"condition" bson:"condition"`
	IsNegotiable bool               `json:"isNegotiable" bson:"isNegotiable"`
	IsActive     bool               `json:"isActive" bson:"isActive"`
	PostedDate   time.Time          `json:"postedDate" bson:"postedDate"`
}

// CreateItemRequest defines the request body for creating a listing
type CreateItemRequest struct {
	Title        string  `json:"title" validate:"required,min=2,max=120"`
	Description  string  `json:"description" validate:"required,min=1,max=2000"`
	Price        float64 `json:"price" validate:"required,gte=0"`
	ImageURL     string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Category     string  `json:"category" validate:"required"`
	Condition    string  `json:"condition" validate:"required"`
	IsNegotiable bool    `json:"isNegotiable"`
}

// UpdateItemRequest defines the request body for updating a listing
type UpdateItemRequest struct {
	Title        string   `json:"title,omitempty" validate:"omitempty,min=2,max=120"`
	Description  string   `json:"description,omitempty" validate:"omitempty,min=1,max=2000"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	ImageURL     string   `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Category     string   `json:"category,omitempty"`
	Condition    string   `json:"condition,omitempty"`
	IsNegotiable *bool    `json:"isNegotiable,omitempty"`
}
