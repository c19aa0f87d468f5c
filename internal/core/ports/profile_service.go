package ports

import (
	"context"

	"github.com/profilehub/profile-service/internal/core/domain"
)

// UpdateProfileInput carries a profile update for the acting user. The target
// is always the actor's own record; there is no path to update another user.
type UpdateProfileInput struct {
	ActorID  int64
	Name     string
	Bio      string
	Location string
}

// ProfileService defines use-case operations on user profiles.
type ProfileService interface {
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error)
	GetProfile(ctx context.Context, userID int64) (*domain.User, error)
}
