package models

import (
	"time"

	"github.com/cardlinkhq/cardlink-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is a public digital business-card record keyed by unique username.
// OwnerAdminID is a weak reference: reassignment just overwrites the value and
// disabling the owner leaves the profile untouched.
type Profile struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey"`
	FullName        string              `gorm:"column:full_name;not null"`
	CompanyName     string              `gorm:"column:company_name;not null;default:''"`
	Designation     string              `gorm:"column:designation;not null;default:''"`
	Username        string              `gorm:"type:text;not null;uniqueIndex:uq_profiles_username"`
	Email           string              `gorm:"type:text;not null"`
	Phone           string              `gorm:"type:text;not null"`
	Location        string              `gorm:"not null;default:''"`
	Bio             string              `gorm:"not null;default:''"`
	ProfileImageURL string              `gorm:"column:profile_image_url;not null;default:''"`
	LinkedinURL     string              `gorm:"column:linkedin_url;not null;default:''"`
	FacebookURL     string              `gorm:"column:facebook_url;not null;default:''"`
	InstagramURL    string              `gorm:"column:instagram_url;not null;default:''"`
	TwitterURL      string              `gorm:"column:twitter_url;not null;default:''"`
	WhatsappURL     string              `gorm:"column:whatsapp_url;not null;default:''"`
	NFCUID          string              `gorm:"column:nfc_uid;not null;default:''"`
	QRImageURL      string              `gorm:"column:qr_image_url;not null;default:''"`
	PublicTheme     enums.PublicTheme   `gorm:"column:public_theme;type:text;not null;default:'DARK_MINIMAL'"`
	Status          enums.AccountStatus `gorm:"type:text;not null;default:'ACTIVE'"`
	OwnerAdminID    *uuid.UUID          `gorm:"column:owner_admin_id;type:uuid"`
	CreatedAt       time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

// BeforeCreate assigns the primary key client-side so the model works on both
// Postgres and SQLite.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
