package profiles

import (
	"time"

	"github.com/cardlinkhq/cardlink-backend/pkg/db/models"
	"github.com/cardlinkhq/cardlink-backend/pkg/enums"
	"github.com/google/uuid"
)

// ProfileDTO is the wire shape for a business-card profile. It is returned
// verbatim on both the admin and public surfaces.
type ProfileDTO struct {
	ID              uuid.UUID           `json:"id"`
	FullName        string              `json:"full_name"`
	CompanyName     string              `json:"company_name"`
	Designation     string              `json:"designation"`
	Username        string              `json:"username"`
	Email           string              `json:"email"`
	Phone           string              `json:"phone"`
	Location        string              `json:"location"`
	Bio             string              `json:"bio"`
	ProfileImageURL string              `json:"profile_image_url"`
	LinkedinURL     string              `json:"linkedin_url"`
	FacebookURL     string              `json:"facebook_url"`
	InstagramURL    string              `json:"instagram_url"`
	TwitterURL      string              `json:"twitter_url"`
	WhatsappURL     string              `json:"whatsapp_url"`
	NFCUID          string              `json:"nfc_uid"`
	QRImageURL      string              `json:"qr_image_url"`
	PublicTheme     enums.PublicTheme   `json:"public_theme"`
	Status          enums.AccountStatus `json:"status"`
	OwnerAdminID    *uuid.UUID          `json:"owner_admin_id,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func FromModel(p *models.Profile) *ProfileDTO {
	if p == nil {
		return nil
	}

	return &ProfileDTO{
		ID:              p.ID,
		FullName:        p.FullName,
		CompanyName:     p.CompanyName,
		Designation:     p.Designation,
		Username:        p.Username,
		Email:           p.Email,
		Phone:           p.Phone,
		Location:        p.Location,
		Bio:             p.Bio,
		ProfileImageURL: p.ProfileImageURL,
		LinkedinURL:     p.LinkedinURL,
		FacebookURL:     p.FacebookURL,
		InstagramURL:    p.InstagramURL,
		TwitterURL:      p.TwitterURL,
		WhatsappURL:     p.WhatsappURL,
		NFCUID:          p.NFCUID,
		QRImageURL:      p.QRImageURL,
		PublicTheme:     p.PublicTheme,
		Status:          p.Status,
		OwnerAdminID:    p.OwnerAdminID,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ProfileInput carries the mutable fields for create and full update. Status
// and ownership have their own endpoints and are never set through here.
type ProfileInput struct {
	FullName        string            `json:"full_name" validate:"required"`
	CompanyName     string            `json:"company_name"`
	Designation     string            `json:"designation"`
	Username        string            `json:"username" validate:"required,username"`
	Email           string            `json:"email" validate:"required,email"`
	Phone           string            `json:"phone" validate:"required"`
	Location        string            `json:"location"`
	Bio             string            `json:"bio"`
	ProfileImageURL string            `json:"profile_image_url"`
	LinkedinURL     string            `json:"linkedin_url"`
	FacebookURL     string            `json:"facebook_url"`
	InstagramURL    string            `json:"instagram_url"`
	TwitterURL      string            `json:"twitter_url"`
	WhatsappURL     string            `json:"whatsapp_url"`
	NFCUID          string            `json:"nfc_uid"`
	PublicTheme     enums.PublicTheme `json:"public_theme"`
}

// AssignOwnerInput sets or clears a profile's owning admin.
type AssignOwnerInput struct {
	OwnerAdminID *uuid.UUID `json:"owner_admin_id"`
}

// Stats is the dashboard aggregate. The four counts are taken independently,
// not in one transaction.
type Stats struct {
	TotalProfiles    int64 `json:"total_profiles"`
	ActiveProfiles   int64 `json:"active_profiles"`
	DisabledProfiles int64 `json:"disabled_profiles"`
	NFCAssignedCount int64 `json:"nfc_assigned_count"`
}
