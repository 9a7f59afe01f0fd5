package services

import (
	"context"

	"github.com/unilink-et/backend/internal/models"
	"github.com/unilink-et/backend/internal/repositories"
)

// IdentityResolver normalizes the identifier forms in circulation —
// ObjectID hex, legacy string id, student id — into one user lookup.
// All coercion lives here; business logic never probes id shapes itself.
type IdentityResolver struct {
	userRepository repositories.UserRepository
}

// NewIdentityResolver creates a new IdentityResolver
func NewIdentityResolver(userRepo repositories.UserRepository) *IdentityResolver {
	return &IdentityResolver{userRepository: userRepo}
}

// Resolve tries each identifier form in order and returns nil when none
// match. A miss is never an error: callers substitute a placeholder
// ("Someone", "User <id>") instead of failing the enclosing request.
func (r *IdentityResolver) Resolve(ctx context.Context, id string) *models.User {
	if id == "" {
		return nil
	}
	if user, err := r.userRepository.GetUserByID(ctx, id); err == nil {
		return user
	}
	if user, err := r.userRepository.GetUserByUserID(ctx, id); err == nil {
		return user
	}
	if user, err := r.userRepository.GetUserByStudentID(ctx, id); err == nil {
		return user
	}
	return nil
}
