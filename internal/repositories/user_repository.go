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

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByUserID(ctx context.Context, userID string) (*models.User, error)
	GetUserByStudentID(ctx context.Context, studentID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, fullName, email string) error
	DeleteUser(ctx context.Context, id string) error
}

// MongoUserRepository implements UserRepository for MongoDB
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new MongoUserRepository
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection("users")}
}

// CreateUser creates a new user in MongoDB
func (r *MongoUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("email or student id already registered: %w", models.ErrConflict)
	}
	return err
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user: %w", models.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user by ObjectID hex
func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", models.ErrNotFound)
	}
	return r.findOne(ctx, bson.M{"_id": objID})
}

// GetUserByUserID retrieves a user by the legacy string id field
func (r *MongoUserRepository) GetUserByUserID(ctx context.Context, userID string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"userId": userID})
}

// GetUserByStudentID retrieves a user by student id
func (r *MongoUserRepository) GetUserByStudentID(ctx context.Context, studentID string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"studentId": studentID})
}

// GetUserByEmail retrieves a user by university email
func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"universityEmail": email})
}

// GetUserByIdentifier retrieves a user by university email or student id,
// whichever matches. Used by login, where the client sends either form.
func (r *MongoUserRepository) GetUserByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"universityEmail": identifier},
		bson.M{"studentId": identifier},
	}})
}

// UpdateUser updates the mutable display fields of a user
func (r *MongoUserRepository) UpdateUser(ctx context.Context, id string, fullName, email string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid user ID format: %w", models.ErrNotFound)
	}
	update := bson.M{"$set": bson.M{"fullName": fullName, "universityEmail": email}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("email already registered: %w", models.ErrConflict)
		}
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user: %w", models.ErrNotFound)
	}
	return nil
}

// DeleteUser deletes a user by ObjectID hex
func (r *MongoUserRepository) DeleteUser(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid user ID format: %w", models.ErrNotFound)
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("user: %w", models.ErrNotFound)
	}
	return nil
}
