package admins

import (
	"context"
	"time"

	"github.com/cardlinkhq/cardlink-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes admin-account persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an admins repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new admin account and returns the persisted model.
func (r *Repository) Create(ctx context.Context, account *models.AdminAccount) (*models.AdminAccount, error) {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

// FindByEmail retrieves the account matching the provided normalized email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.AdminAccount, error) {
	var account models.AdminAccount
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByID loads an account by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.AdminAccount, error) {
	var account models.AdminAccount
	if err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// List returns all accounts, newest first.
func (r *Repository) List(ctx context.Context) ([]models.AdminAccount, error) {
	var rows []models.AdminAccount
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Update persists the full mutable state of the account.
func (r *Repository) Update(ctx context.Context, account *models.AdminAccount) error {
	return r.db.WithContext(ctx).Save(account).Error
}

// UpdatePassword overwrites the stored hash.
func (r *Repository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&models.AdminAccount{}).
		Where("id = ?", id).
		UpdateColumn("password_hash", passwordHash).Error
}

// UpdateLastLogin refreshes the account's last_login_at timestamp.
func (r *Repository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.AdminAccount{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at).Error
}
