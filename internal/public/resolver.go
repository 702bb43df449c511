package public

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/cardlinkhq/cardlink-backend/internal/profiles"
	"github.com/cardlinkhq/cardlink-backend/pkg/config"
	"github.com/cardlinkhq/cardlink-backend/pkg/db/models"
	"github.com/cardlinkhq/cardlink-backend/pkg/enums"
	pkgerrors "github.com/cardlinkhq/cardlink-backend/pkg/errors"
	"gorm.io/gorm"
)

// Resolver is the unauthenticated read path: it maps a raw username from a
// public card URL to its profile record.
type Resolver interface {
	ResolveByUsername(ctx context.Context, raw string) (*profiles.ProfileDTO, error)
}

type profileLookup interface {
	FindByUsername(ctx context.Context, username string) (*models.Profile, error)
}

type resolver struct {
	repo profileLookup

	// hideDisabled switches the resolver from "return the record with its
	// status" to a blanket 404 for DISABLED profiles.
	hideDisabled bool
}

func NewResolver(repo profileLookup, cfg config.PublicConfig) (Resolver, error) {
	if repo == nil {
		return nil, fmt.Errorf("profile lookup is required")
	}
	return &resolver{repo: repo, hideDisabled: cfg.HideDisabled}, nil
}

// NormalizeUsername canonicalizes raw path input: URL-decode, trim, strip a
// single leading @ and any trailing slashes, lowercase.
func NormalizeUsername(raw string) string {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		decoded = raw
	}
	username := strings.TrimSpace(decoded)
	username = strings.TrimPrefix(username, "@")
	username = strings.TrimRight(username, "/")
	return strings.ToLower(username)
}

func (r *resolver) ResolveByUsername(ctx context.Context, raw string) (*profiles.ProfileDTO, error) {
	username := NormalizeUsername(raw)
	if username == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Username is required")
	}

	profile, err := r.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Profile not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup profile")
	}
	if r.hideDisabled && profile.Status == enums.AccountStatusDisabled {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Profile not found")
	}
	return profiles.FromModel(profile), nil
}
