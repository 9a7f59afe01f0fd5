package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered student stored in the users collection.
// Older documents carry a plain string id in the userId field; newer ones
// are referenced by their ObjectID hex. Key() picks the canonical form.
type User struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID          string             `json:"userId,omitempty" bson:"userId,omitempty"` // legacy string id
	FullName        string             `json:"fullName" bson:"fullName"`
	UniversityEmail string             `json:"universityEmail" bson:"universityEmail"`
	StudentID       string             `json:"studentId,omitempty" bson:"studentId,omitempty"`
	AvatarURL       string             `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	PasswordHash    string             `json:"-" bson:"passwordHash"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
}

// Key returns the identifier other documents reference this user by.
func (u *User) Key() string {
	if u.UserID != "" {
		return u.UserID
	}
	return u.ID.Hex()
}

// UserCompact is the display projection embedded in enriched responses.
type UserCompact struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// ToCompact converts a User to its compact display form.
func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:        u.Key(),
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
	}
}

// SignupRequest defines the request body for registering a new account
type SignupRequest struct {
	FullName  string `json:"fullName" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	StudentID string `json:"studentId" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
}

// LoginRequest defines the request body for signing in. Identifier may be
// the university email or the student id.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// UpdateProfileRequest defines the request body for updating display fields
type UpdateProfileRequest struct {
	FullName string `json:"fullName" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}
