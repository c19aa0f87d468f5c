package domain

import "errors"

const (
	RoleUser    = "user"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

var (
	// ErrUnauthenticated is returned when a request carries no Authorization header.
	ErrUnauthenticated = errors.New("missing bearer token")
	// ErrInvalidToken is returned when a bearer token matches no stored user.
	ErrInvalidToken = errors.New("token matches no user")
	ErrForbidden    = errors.New("access forbidden")
	ErrUserNotFound = errors.New("user not found")
	// ErrMissingProfileFields is returned when any of name/bio/location is
	// absent or empty on a profile update.
	ErrMissingProfileFields = errors.New("missing required profile fields")
)

// User models an account in the system. Token is the opaque bearer credential
// identifying the acting user; it is never serialized.
type User struct {
	ID                 int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name               string `json:"name" gorm:"size:50"`
	Bio                string `json:"bio" gorm:"size:200"`
	Location           string `json:"location" gorm:"size:100"`
	ProfessionalStatus bool   `json:"professional_status" gorm:"not null;default:false"`
	Token              string `json:"-" gorm:"size:191;uniqueIndex"`
	Role               string `json:"role" gorm:"size:16;not null;default:'user'"`
}

func (User) TableName() string {
	return "users"
}
