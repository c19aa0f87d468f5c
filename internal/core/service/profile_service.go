package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/profilehub/profile-service/internal/core/domain"
	"github.com/profilehub/profile-service/internal/core/ports"
)

// ProfileService implements profile reads and updates.
type ProfileService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewProfileService(users ports.UserRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{users: users, logger: logger}
}

// UpdateProfile applies name/bio/location to the acting user's own record.
// All three fields are checked in a single pass before any write, so a
// validation failure leaves the stored record untouched.
func (s *ProfileService) UpdateProfile(ctx context.Context, input ports.UpdateProfileInput) (*domain.User, error) {
	if input.Name == "" || input.Bio == "" || input.Location == "" {
		return nil, domain.ErrMissingProfileFields
	}

	user, err := s.users.UpdateProfile(ctx, input.ActorID, input.Name, input.Bio, input.Location)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", input.ActorID).Msg("profile update failed")
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("profile updated")
	return user, nil
}

func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}
