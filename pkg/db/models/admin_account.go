package models

import (
	"time"

	"github.com/cardlinkhq/cardlink-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminAccount represents a back-office login identity. Accounts are never
// hard-deleted; they are disabled instead.
type AdminAccount struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Email           string              `gorm:"type:text;not null;uniqueIndex:uq_admin_accounts_email"`
	PasswordHash    string              `gorm:"column:password_hash;not null"`
	FullName        string              `gorm:"column:full_name;not null"`
	ProfileImageURL string              `gorm:"column:profile_image_url;not null;default:''"`
	Status          enums.AccountStatus `gorm:"type:text;not null;default:'ACTIVE'"`
	Role            enums.AdminRole     `gorm:"type:text;not null;default:'ADMIN'"`
	LastLoginAt     *time.Time          `gorm:"column:last_login_at"`
	CreatedAt       time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

// BeforeCreate assigns the primary key client-side so the model works on both
// Postgres and SQLite.
func (a *AdminAccount) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
