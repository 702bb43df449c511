package admins

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cardlinkhq/cardlink-backend/pkg/config"
	pkgdb "github.com/cardlinkhq/cardlink-backend/pkg/db"
	"github.com/cardlinkhq/cardlink-backend/pkg/db/models"
	"github.com/cardlinkhq/cardlink-backend/pkg/enums"
	pkgerrors "github.com/cardlinkhq/cardlink-backend/pkg/errors"
	"github.com/cardlinkhq/cardlink-backend/pkg/security"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const emailConflictMessage = "Email already exists"

// Service is the admin account registry: CRUD over back-office accounts plus
// the self-service surface. Accounts are disabled, never deleted.
type Service interface {
	CreateAdmin(ctx context.Context, input CreateAdminInput) (*AdminDTO, error)
	ListAdmins(ctx context.Context) ([]AdminDTO, error)
	UpdateAdmin(ctx context.Context, id uuid.UUID, input UpdateAdminInput) (*AdminDTO, error)
	SetStatus(ctx context.Context, id uuid.UUID, status enums.AccountStatus) (*AdminDTO, error)
	ResetPassword(ctx context.Context, id uuid.UUID, newPassword string) error
	GetSelf(ctx context.Context, adminID uuid.UUID) (*AdminDTO, error)
	UpdateSelf(ctx context.Context, adminID uuid.UUID, input UpdateSelfInput) (*AdminDTO, error)
	ChangeOwnPassword(ctx context.Context, adminID uuid.UUID, currentPassword, newPassword string) error
}

type accountsRepository interface {
	Create(ctx context.Context, account *models.AdminAccount) (*models.AdminAccount, error)
	FindByEmail(ctx context.Context, email string) (*models.AdminAccount, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.AdminAccount, error)
	List(ctx context.Context) ([]models.AdminAccount, error)
	Update(ctx context.Context, account *models.AdminAccount) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type service struct {
	repo        accountsRepository
	passwordCfg config.PasswordConfig
}

// NewService constructs the registry with the provided dependencies.
func NewService(repo accountsRepository, passwordCfg config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("admins repository is required")
	}
	return &service{repo: repo, passwordCfg: passwordCfg}, nil
}

// NormalizeEmail trims and lowercases an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *service) CreateAdmin(ctx context.Context, input CreateAdminInput) (*AdminDTO, error) {
	email := NormalizeEmail(input.Email)
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if strings.TrimSpace(input.FullName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "full_name is required")
	}
	if input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password is required")
	}

	status := input.Status
	if status == "" {
		status = enums.AccountStatusActive
	}
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid status value")
	}
	role := input.Role
	if role == "" {
		role = enums.AdminRoleAdmin
	}
	if !role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid role value")
	}

	if err := s.ensureEmailFree(ctx, email); err != nil {
		return nil, err
	}

	hash, err := security.HashPassword(input.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	account := &models.AdminAccount{
		Email:           email,
		PasswordHash:    hash,
		FullName:        strings.TrimSpace(input.FullName),
		ProfileImageURL: input.ProfileImageURL,
		Status:          status,
		Role:            role,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		if pkgdb.IsUniqueViolation(err, "email") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, emailConflictMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create admin")
	}
	return FromModel(created), nil
}

func (s *service) ListAdmins(ctx context.Context) ([]AdminDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list admins")
	}
	items := make([]AdminDTO, len(rows))
	for i := range rows {
		items[i] = *FromModel(&rows[i])
	}
	return items, nil
}

func (s *service) UpdateAdmin(ctx context.Context, id uuid.UUID, input UpdateAdminInput) (*AdminDTO, error) {
	account, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		email := NormalizeEmail(*input.Email)
		if email == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
		}
		if email != account.Email {
			if err := s.ensureEmailFree(ctx, email); err != nil {
				return nil, err
			}
			account.Email = email
		}
	}
	if input.FullName != nil {
		name := strings.TrimSpace(*input.FullName)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "full_name is required")
		}
		account.FullName = name
	}
	if input.ProfileImageURL != nil {
		account.ProfileImageURL = *input.ProfileImageURL
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid role value")
		}
		account.Role = *input.Role
	}

	if err := s.repo.Update(ctx, account); err != nil {
		if pkgdb.IsUniqueViolation(err, "email") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, emailConflictMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update admin")
	}
	return FromModel(account), nil
}

func (s *service) SetStatus(ctx context.Context, id uuid.UUID, status enums.AccountStatus) (*AdminDTO, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid status value")
	}
	account, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	account.Status = status
	if err := s.repo.Update(ctx, account); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update admin status")
	}
	return FromModel(account), nil
}

func (s *service) ResetPassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	if newPassword == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "password is required")
	}
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	hash, err := security.HashPassword(newPassword, s.passwordCfg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}
	if err := s.repo.UpdatePassword(ctx, id, hash); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reset password")
	}
	return nil
}

func (s *service) GetSelf(ctx context.Context, adminID uuid.UUID) (*AdminDTO, error) {
	account, err := s.load(ctx, adminID)
	if err != nil {
		return nil, err
	}
	return FromModel(account), nil
}

func (s *service) UpdateSelf(ctx context.Context, adminID uuid.UUID, input UpdateSelfInput) (*AdminDTO, error) {
	return s.UpdateAdmin(ctx, adminID, UpdateAdminInput{
		FullName:        input.FullName,
		Email:           input.Email,
		ProfileImageURL: input.ProfileImageURL,
	})
}

// ChangeOwnPassword requires the current password, unlike the registry-level
// reset.
func (s *service) ChangeOwnPassword(ctx context.Context, adminID uuid.UUID, currentPassword, newPassword string) error {
	if newPassword == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "password is required")
	}
	account, err := s.load(ctx, adminID)
	if err != nil {
		return err
	}

	valid, err := security.VerifyPassword(currentPassword, account.PasswordHash)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !valid {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid credentials")
	}

	hash, err := security.HashPassword(newPassword, s.passwordCfg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}
	if err := s.repo.UpdatePassword(ctx, adminID, hash); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "change password")
	}
	return nil
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*models.AdminAccount, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "admin id is required")
	}
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Admin not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup admin")
	}
	return account, nil
}

// ensureEmailFree is advisory; the unique index on admin_accounts.email is the
// final arbiter under concurrent writes.
func (s *service) ensureEmailFree(ctx context.Context, email string) error {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return pkgerrors.New(pkgerrors.CodeConflict, emailConflictMessage)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check email uniqueness")
}
