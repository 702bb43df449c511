package controllers

import (
	"net/http"

	"github.com/cardlinkhq/cardlink-backend/api/middleware"
	"github.com/cardlinkhq/cardlink-backend/api/responses"
	"github.com/cardlinkhq/cardlink-backend/api/validators"
	"github.com/cardlinkhq/cardlink-backend/internal/admins"
	"github.com/cardlinkhq/cardlink-backend/internal/profiles"
	pkgerrors "github.com/cardlinkhq/cardlink-backend/pkg/errors"
	"github.com/cardlinkhq/cardlink-backend/pkg/logger"
)

// Self-service endpoints operate on the identity attached by the auth
// middleware, never on a path id.

func AccountGet(svc admins.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "admins service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		account, err := svc.GetSelf(r.Context(), middleware.AdminIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, account)
	}
}

func AccountUpdate(svc admins.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "admins service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body admins.UpdateSelfInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.UpdateSelf(r.Context(), middleware.AdminIDFromContext(r.Context()), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

func AccountChangePassword(svc admins.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "admins service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body changePasswordRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		adminID := middleware.AdminIDFromContext(r.Context())
		if err := svc.ChangeOwnPassword(r.Context(), adminID, body.CurrentPassword, body.NewPassword); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "password changed"})
	}
}

// AccountProfileGet returns the card profile linked to the caller, if any.
func AccountProfileGet(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "profiles service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := svc.GetByOwner(r.Context(), middleware.AdminIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, profile)
	}
}

func AccountProfileUpdate(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "profiles service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body profiles.ProfileInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.UpdateByOwner(r.Context(), actorFrom(r), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}
