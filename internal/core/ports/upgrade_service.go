package ports

import (
	"context"

	"github.com/profilehub/profile-service/internal/core/domain"
)

// UpgradeService elevates users to professional status. Role authorization
// happens at the transport layer before the service is reached.
type UpgradeService interface {
	Upgrade(ctx context.Context, targetID int64) (*domain.User, error)
}
