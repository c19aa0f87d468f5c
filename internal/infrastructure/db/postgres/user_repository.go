package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/profilehub/profile-service/internal/core/domain"
)

// UserRepository is the GORM-backed implementation of ports.UserRepository.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindByToken(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by token: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.Role == "" {
		user.Role = domain.RoleUser
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, &domain.PersistenceError{Op: "create user", Err: err}
	}
	return user, nil
}

// UpdateProfile applies all three fields inside one transaction. GORM rolls
// the transaction back when the closure returns an error, so a failed commit
// leaves the row untouched.
func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, name, bio, location string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}
		return tx.Model(&user).Updates(map[string]any{
			"name":     name,
			"bio":      bio,
			"location": location,
		}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, &domain.PersistenceError{Op: "update profile", Err: err}
	}

	user.Name, user.Bio, user.Location = name, bio, location
	return &user, nil
}

func (r *UserRepository) SetProfessionalStatus(ctx context.Context, id int64, professional bool) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}
		return tx.Model(&user).Update("professional_status", professional).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, &domain.PersistenceError{Op: "update professional status", Err: err}
	}

	user.ProfessionalStatus = professional
	return &user, nil
}
