package ports

import (
	"context"

	"github.com/profilehub/profile-service/internal/core/domain"
)

// UserRepository defines persistence operations for users. Mutations are
// atomic: either the full update is committed or nothing is.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// FindByToken retrieves the single user whose bearer token matches exactly.
	FindByToken(ctx context.Context, token string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// UpdateProfile applies all three profile fields to the user's row in one
	// transaction and returns the updated record.
	UpdateProfile(ctx context.Context, id int64, name, bio, location string) (*domain.User, error)
	// SetProfessionalStatus flips the professional flag in one transaction and
	// returns the updated record.
	SetProfessionalStatus(ctx context.Context, id int64, professional bool) (*domain.User, error)
}
