package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/profilehub/profile-service/internal/core/domain"
)

// EnsureBootstrapAdmin creates the configured admin user when its token is
// not stored yet, so a fresh deployment has at least one elevated actor
// without a token issuance endpoint. A no-op when token is empty.
func EnsureBootstrapAdmin(db *gorm.DB, name, token string) error {
	if token == "" {
		return nil
	}

	var count int64
	if err := db.Model(&domain.User{}).Where("token = ?", token).Count(&count).Error; err != nil {
		return fmt.Errorf("bootstrap admin lookup: %w", err)
	}
	if count > 0 {
		return nil
	}

	admin := domain.User{Name: name, Role: domain.RoleAdmin, Token: token}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("bootstrap admin create: %w", err)
	}
	return nil
}
