package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cardlinkhq/cardlink-backend/internal/admins"
	pkgauth "github.com/cardlinkhq/cardlink-backend/pkg/auth"
	"github.com/cardlinkhq/cardlink-backend/pkg/config"
	"github.com/cardlinkhq/cardlink-backend/pkg/db/models"
	"github.com/cardlinkhq/cardlink-backend/pkg/enums"
	pkgerrors "github.com/cardlinkhq/cardlink-backend/pkg/errors"
	"github.com/cardlinkhq/cardlink-backend/pkg/logger"
	"github.com/cardlinkhq/cardlink-backend/pkg/security"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// invalidCredentialsMessage is deliberately shared across unknown-email,
// wrong-password, and disabled-account failures so the endpoint does not
// leak which accounts exist.
const invalidCredentialsMessage = "Invalid credentials"

// Service authenticates back-office admins and mints access tokens.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
}

type accountsRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.AdminAccount, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type service struct {
	repo   accountsRepository
	jwtCfg config.JWTConfig
	logg   *logger.Logger
	clock  func() time.Time
}

// ServiceParams bundles the login service's dependencies.
type ServiceParams struct {
	Repo      accountsRepository
	JWTConfig config.JWTConfig
	Logger    *logger.Logger

	// Clock overrides time.Now in tests.
	Clock func() time.Time
}

func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("accounts repository is required")
	}
	if params.JWTConfig.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	clock := params.Clock
	if clock == nil {
		clock = time.Now
	}
	return &service{
		repo:   params.Repo,
		jwtCfg: params.JWTConfig,
		logg:   params.Logger,
		clock:  clock,
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := admins.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup admin by email")
	}

	valid, err := security.VerifyPassword(req.Password, account.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !valid {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	if account.Status != enums.AccountStatusActive {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	now := s.clock().UTC()
	token, err := pkgauth.MintAccessToken(s.jwtCfg, now, pkgauth.AccessTokenPayload{
		AdminID: account.ID,
		Email:   account.Email,
		Role:    account.Role,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	// Last-login bookkeeping is best effort; a failed write must not block
	// the login itself.
	if err := s.repo.UpdateLastLogin(ctx, account.ID, now); err != nil && s.logg != nil {
		lctx := s.logg.WithAdminID(ctx, account.ID.String())
		s.logg.Warn(lctx, fmt.Sprintf("update last login: %v", err))
	}
	account.LastLoginAt = &now

	return &LoginResponse{
		Token: token,
		Admin: admins.FromModel(account),
	}, nil
}
