package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/profilehub/profile-service/internal/core/domain"
	"github.com/profilehub/profile-service/internal/core/ports"
)

// UpgradeService elevates a user to professional status and emits the
// corresponding notification.
type UpgradeService struct {
	users         ports.UserRepository
	notifications ports.NotificationRepository
	logger        zerolog.Logger
}

func NewUpgradeService(users ports.UserRepository, notifications ports.NotificationRepository, logger zerolog.Logger) *UpgradeService {
	return &UpgradeService{users: users, notifications: notifications, logger: logger}
}

// Upgrade sets professional_status on the target user, then records the
// notification as a second write. The notification insert is non-fatal: the
// status flip has already committed, so a failure here is logged and the
// upgraded user is still returned.
func (s *UpgradeService) Upgrade(ctx context.Context, targetID int64) (*domain.User, error) {
	user, err := s.users.SetProfessionalStatus(ctx, targetID, true)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", targetID).Msg("professional upgrade failed")
		return nil, err
	}

	notification := &domain.Notification{
		UserID:  user.ID,
		Message: domain.UpgradeNotificationMessage,
	}
	if _, err := s.notifications.Create(ctx, notification); err != nil {
		s.logger.Warn().Err(err).Int64("user_id", user.ID).Msg("failed to record upgrade notification")
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user upgraded to professional")
	return user, nil
}
