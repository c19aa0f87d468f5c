package handler

import "github.com/profilehub/profile-service/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type updateProfileRequest struct {
	Name     string `json:"name"     validate:"required"`
	Bio      string `json:"bio"      validate:"required"`
	Location string `json:"location" validate:"required"`
}

// userResponse is the serialized user shape. Token and role are internal and
// intentionally excluded from the wire contract.
type userResponse struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Bio                string `json:"bio"`
	Location           string `json:"location"`
	ProfessionalStatus bool   `json:"professional_status"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:                 u.ID,
		Name:               u.Name,
		Bio:                u.Bio,
		Location:           u.Location,
		ProfessionalStatus: u.ProfessionalStatus,
	}
}
