package ports

import (
	"context"

	"github.com/profilehub/profile-service/internal/core/domain"
)

// NotificationRepository persists upgrade notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) (*domain.Notification, error)
}
