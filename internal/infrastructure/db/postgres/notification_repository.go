package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/profilehub/profile-service/internal/api/metrics"
	"github.com/profilehub/profile-service/internal/core/domain"
)

// NotificationRepository is the GORM-backed implementation of
// ports.NotificationRepository. Notifications are insert-only.
type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *domain.Notification) (*domain.Notification, error) {
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return nil, &domain.PersistenceError{Op: "create notification", Err: err}
	}

	metrics.NotificationsCreatedTotal.Inc()
	return notification, nil
}
