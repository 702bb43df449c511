package profiles

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/cardlinkhq/cardlink-backend/pkg/config"
	pkgdb "github.com/cardlinkhq/cardlink-backend/pkg/db"
	"github.com/cardlinkhq/cardlink-backend/pkg/db/models"
	"github.com/cardlinkhq/cardlink-backend/pkg/enums"
	pkgerrors "github.com/cardlinkhq/cardlink-backend/pkg/errors"
	"github.com/cardlinkhq/cardlink-backend/pkg/pagination"
	"github.com/cardlinkhq/cardlink-backend/pkg/qr"
	"github.com/cardlinkhq/cardlink-backend/pkg/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	usernameConflictMessage = "Username already exists"
	profileNotFoundMessage  = "Profile not found"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Actor identifies the admin performing a directory operation. Ownership
// checks compare its AdminID against the profile's owner; SUPER_ADMIN
// bypasses them.
type Actor struct {
	AdminID uuid.UUID
	Role    enums.AdminRole
}

func (a Actor) canAccess(profile *models.Profile) bool {
	if a.Role == enums.AdminRoleSuperAdmin {
		return true
	}
	return profile.OwnerAdminID != nil && *profile.OwnerAdminID == a.AdminID
}

// Service is the profile directory: CRUD over card records, status toggling,
// ownership assignment, search, and the dashboard aggregate.
type Service interface {
	Create(ctx context.Context, input ProfileInput) (*ProfileDTO, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, input ProfileInput) (*ProfileDTO, error)
	SetStatus(ctx context.Context, actor Actor, id uuid.UUID, status enums.AccountStatus) (*ProfileDTO, error)
	AssignOwner(ctx context.Context, id uuid.UUID, ownerAdminID *uuid.UUID) (*ProfileDTO, error)
	GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*ProfileDTO, error)
	GetByOwner(ctx context.Context, ownerAdminID uuid.UUID) (*ProfileDTO, error)
	UpdateByOwner(ctx context.Context, actor Actor, input ProfileInput) (*ProfileDTO, error)
	Search(ctx context.Context, params SearchParams) (*types.ListPage[ProfileDTO], error)
	DashboardStats(ctx context.Context) (*Stats, error)
}

type profilesRepository interface {
	Create(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	FindByUsername(ctx context.Context, username string) (*models.Profile, error)
	FindByOwner(ctx context.Context, ownerAdminID uuid.UUID) (*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
	Search(ctx context.Context, params SearchParams) ([]models.Profile, int64, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status enums.AccountStatus) (int64, error)
	CountNFCAssigned(ctx context.Context) (int64, error)
}

type adminsFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.AdminAccount, error)
}

type service struct {
	repo         profilesRepository
	admins       adminsFinder
	qrGen        qr.Generator
	defaultTheme enums.PublicTheme
}

// ServiceParams bundles the directory's dependencies.
type ServiceParams struct {
	Repo      profilesRepository
	Admins    adminsFinder
	QRGen     qr.Generator
	PublicCfg config.PublicConfig
}

func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("profiles repository is required")
	}
	if params.Admins == nil {
		return nil, fmt.Errorf("admins finder is required")
	}
	if params.QRGen == nil {
		return nil, fmt.Errorf("qr generator is required")
	}
	theme, err := enums.ParsePublicTheme(params.PublicCfg.DefaultTheme)
	if err != nil {
		return nil, fmt.Errorf("default public theme: %w", err)
	}
	return &service{
		repo:         params.Repo,
		admins:       params.Admins,
		qrGen:        params.QRGen,
		defaultTheme: theme,
	}, nil
}

func (s *service) Create(ctx context.Context, input ProfileInput) (*ProfileDTO, error) {
	username, err := validateInput(&input, "Unable to create profile")
	if err != nil {
		return nil, err
	}
	if err := s.ensureUsernameFree(ctx, username); err != nil {
		return nil, err
	}

	profile := &models.Profile{Status: enums.AccountStatusActive}
	applyInput(profile, input, username)
	if profile.PublicTheme == "" {
		profile.PublicTheme = s.defaultTheme
	}
	// The QR reference is composed once at creation and never refetched.
	profile.QRImageURL = s.qrGen.ImageURL(username)

	created, err := s.repo.Create(ctx, profile)
	if err != nil {
		if pkgdb.IsUniqueViolation(err, "username") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, usernameConflictMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create profile")
	}
	return FromModel(created), nil
}

func (s *service) Update(ctx context.Context, actor Actor, id uuid.UUID, input ProfileInput) (*ProfileDTO, error) {
	profile, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.canAccess(profile) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "Forbidden")
	}
	return s.applyUpdate(ctx, profile, input)
}

func (s *service) SetStatus(ctx context.Context, actor Actor, id uuid.UUID, status enums.AccountStatus) (*ProfileDTO, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid status value")
	}
	profile, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.canAccess(profile) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "Forbidden")
	}
	profile.Status = status
	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update profile status")
	}
	return FromModel(profile), nil
}

// AssignOwner sets or clears the owning admin. The reference is weak, but a
// set always verifies the admin exists to avoid dangling links.
func (s *service) AssignOwner(ctx context.Context, id uuid.UUID, ownerAdminID *uuid.UUID) (*ProfileDTO, error) {
	profile, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if ownerAdminID != nil {
		if _, err := s.admins.FindByID(ctx, *ownerAdminID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "Admin not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup owner admin")
		}
	}
	profile.OwnerAdminID = ownerAdminID
	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "assign profile owner")
	}
	return FromModel(profile), nil
}

func (s *service) GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*ProfileDTO, error) {
	profile, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.canAccess(profile) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "Forbidden")
	}
	return FromModel(profile), nil
}

func (s *service) GetByOwner(ctx context.Context, ownerAdminID uuid.UUID) (*ProfileDTO, error) {
	profile, err := s.repo.FindByOwner(ctx, ownerAdminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, profileNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup profile by owner")
	}
	return FromModel(profile), nil
}

func (s *service) UpdateByOwner(ctx context.Context, actor Actor, input ProfileInput) (*ProfileDTO, error) {
	profile, err := s.repo.FindByOwner(ctx, actor.AdminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, profileNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup profile by owner")
	}
	return s.applyUpdate(ctx, profile, input)
}

func (s *service) Search(ctx context.Context, params SearchParams) (*types.ListPage[ProfileDTO], error) {
	params.Page = pagination.Normalize(params.Page.Page, params.Page.Limit)

	rows, total, err := s.repo.Search(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "search profiles")
	}

	items := make([]ProfileDTO, len(rows))
	for i := range rows {
		items[i] = *FromModel(&rows[i])
	}
	return &types.ListPage[ProfileDTO]{
		Items:      items,
		Page:       params.Page.Page,
		Total:      total,
		TotalPages: params.Page.TotalPages(total),
	}, nil
}

func (s *service) DashboardStats(ctx context.Context) (*Stats, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count profiles")
	}
	active, err := s.repo.CountByStatus(ctx, enums.AccountStatusActive)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count active profiles")
	}
	disabled, err := s.repo.CountByStatus(ctx, enums.AccountStatusDisabled)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count disabled profiles")
	}
	nfc, err := s.repo.CountNFCAssigned(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count nfc profiles")
	}
	return &Stats{
		TotalProfiles:    total,
		ActiveProfiles:   active,
		DisabledProfiles: disabled,
		NFCAssignedCount: nfc,
	}, nil
}

// applyUpdate is a full replace of the mutable fields, re-checking username
// uniqueness and refreshing the QR reference when the username changes.
func (s *service) applyUpdate(ctx context.Context, profile *models.Profile, input ProfileInput) (*ProfileDTO, error) {
	username, err := validateInput(&input, "Unable to update profile")
	if err != nil {
		return nil, err
	}
	if username != profile.Username {
		if err := s.ensureUsernameFree(ctx, username); err != nil {
			return nil, err
		}
		profile.QRImageURL = s.qrGen.ImageURL(username)
	}
	applyInput(profile, input, username)
	if profile.PublicTheme == "" {
		profile.PublicTheme = s.defaultTheme
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		if pkgdb.IsUniqueViolation(err, "username") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, usernameConflictMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update profile")
	}
	return FromModel(profile), nil
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "profile id is required")
	}
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, profileNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup profile")
	}
	return profile, nil
}

// ensureUsernameFree is advisory; the unique index on profiles.username is
// the final arbiter under concurrent writes.
func (s *service) ensureUsernameFree(ctx context.Context, username string) error {
	_, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		return pkgerrors.New(pkgerrors.CodeConflict, usernameConflictMessage)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check username uniqueness")
}

// validateInput normalizes the username and enforces the required fields,
// returning the normalized username. failureMessage keeps the create and
// update surfaces' distinct wordings.
func validateInput(input *ProfileInput, failureMessage string) (string, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))
	switch {
	case strings.TrimSpace(input.FullName) == "":
		return "", inputError(failureMessage, "full_name is required")
	case username == "":
		return "", inputError(failureMessage, "username is required")
	case !usernamePattern.MatchString(username):
		return "", inputError(failureMessage, "username may only contain lowercase letters, numbers, and hyphens")
	case strings.TrimSpace(input.Email) == "":
		return "", inputError(failureMessage, "email is required")
	case strings.TrimSpace(input.Phone) == "":
		return "", inputError(failureMessage, "phone is required")
	}
	if input.PublicTheme != "" && !input.PublicTheme.IsValid() {
		return "", inputError(failureMessage, "Invalid public_theme value")
	}
	return username, nil
}

func inputError(message, detail string) error {
	return pkgerrors.New(pkgerrors.CodeValidation, message).WithDetails(detail)
}

func applyInput(profile *models.Profile, input ProfileInput, username string) {
	profile.FullName = strings.TrimSpace(input.FullName)
	profile.CompanyName = input.CompanyName
	profile.Designation = input.Designation
	profile.Username = username
	profile.Email = strings.TrimSpace(input.Email)
	profile.Phone = strings.TrimSpace(input.Phone)
	profile.Location = input.Location
	profile.Bio = input.Bio
	profile.ProfileImageURL = input.ProfileImageURL
	profile.LinkedinURL = input.LinkedinURL
	profile.FacebookURL = input.FacebookURL
	profile.InstagramURL = input.InstagramURL
	profile.TwitterURL = input.TwitterURL
	profile.WhatsappURL = input.WhatsappURL
	profile.NFCUID = strings.TrimSpace(input.NFCUID)
	profile.PublicTheme = input.PublicTheme
}
