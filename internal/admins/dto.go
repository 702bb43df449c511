package admins

import (
	"time"

	"github.com/cardlinkhq/cardlink-backend/pkg/db/models"
	"github.com/cardlinkhq/cardlink-backend/pkg/enums"
	"github.com/google/uuid"
)

// AdminDTO is the transport shape for an admin account. The password hash
// never leaves the persistence layer.
type AdminDTO struct {
	ID              uuid.UUID           `json:"id"`
	Email           string              `json:"email"`
	FullName        string              `json:"full_name"`
	ProfileImageURL string              `json:"profile_image_url"`
	Status          enums.AccountStatus `json:"status"`
	Role            enums.AdminRole     `json:"role"`
	LastLoginAt     *time.Time          `json:"last_login_at,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func FromModel(a *models.AdminAccount) *AdminDTO {
	if a == nil {
		return nil
	}

	return &AdminDTO{
		ID:              a.ID,
		Email:           a.Email,
		FullName:        a.FullName,
		ProfileImageURL: a.ProfileImageURL,
		Status:          a.Status,
		Role:            a.Role,
		LastLoginAt:     a.LastLoginAt,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// CreateAdminInput holds the fields the registry accepts on create.
type CreateAdminInput struct {
	FullName        string              `json:"full_name" validate:"required"`
	Email           string              `json:"email" validate:"required,email"`
	Password        string              `json:"password" validate:"required,min=8"`
	ProfileImageURL string              `json:"profile_image_url"`
	Status          enums.AccountStatus `json:"status"`
	Role            enums.AdminRole     `json:"role"`
}

// UpdateAdminInput is a partial update; nil fields are left untouched.
type UpdateAdminInput struct {
	FullName        *string          `json:"full_name"`
	Email           *string          `json:"email" validate:"omitempty,email"`
	ProfileImageURL *string          `json:"profile_image_url"`
	Role            *enums.AdminRole `json:"role"`
}

// UpdateSelfInput is the self-service subset: an admin may not change their
// own role or status.
type UpdateSelfInput struct {
	FullName        *string `json:"full_name"`
	Email           *string `json:"email" validate:"omitempty,email"`
	ProfileImageURL *string `json:"profile_image_url"`
}
