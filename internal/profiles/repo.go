package profiles

import (
	"context"
	"strings"

	"github.com/cardlinkhq/cardlink-backend/pkg/db/models"
	"github.com/cardlinkhq/cardlink-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes profile persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a profiles repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new profile and returns the persisted model.
func (r *Repository) Create(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// FindByID loads a profile by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByUsername retrieves the profile matching an already-normalized
// username.
func (r *Repository) FindByUsername(ctx context.Context, username string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByOwner returns the profile linked to an admin account, if any.
func (r *Repository) FindByOwner(ctx context.Context, ownerAdminID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Where("owner_admin_id = ?", ownerAdminID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update persists the full mutable state of the profile.
func (r *Repository) Update(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// Search applies the text/status filter with offset pagination and returns
// the matching page plus the total match count, newest first.
func (r *Repository) Search(ctx context.Context, params SearchParams) ([]models.Profile, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Profile{})

	if status, ok := params.statusFilter(); ok {
		query = query.Where("status = ?", status)
	}
	if text := strings.TrimSpace(params.Text); text != "" {
		needle := "%" + strings.ToLower(text) + "%"
		query = query.Where(
			"LOWER(full_name) LIKE ? OR LOWER(username) LIKE ? OR LOWER(email) LIKE ?",
			needle, needle, needle,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Profile
	err := query.
		Order("created_at DESC").
		Offset(params.Page.Offset()).
		Limit(params.Page.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Count returns the total number of profiles.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Profile{}).Count(&total).Error
	return total, err
}

// CountByStatus returns the number of profiles in the given status.
func (r *Repository) CountByStatus(ctx context.Context, status enums.AccountStatus) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("status = ?", status).
		Count(&total).Error
	return total, err
}

// CountNFCAssigned returns the number of profiles with a non-empty NFC UID.
func (r *Repository) CountNFCAssigned(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("nfc_uid <> ''").
		Count(&total).Error
	return total, err
}
