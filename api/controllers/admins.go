package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cardlinkhq/cardlink-backend/api/responses"
	"github.com/cardlinkhq/cardlink-backend/api/validators"
	"github.com/cardlinkhq/cardlink-backend/internal/admins"
	"github.com/cardlinkhq/cardlink-backend/pkg/enums"
	pkgerrors "github.com/cardlinkhq/cardlink-backend/pkg/errors"
	"github.com/cardlinkhq/cardlink-backend/pkg/logger"
	"github.com/google/uuid"
)

func adminIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "adminId"))
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid admin id")
	}
	return id, nil
}

func AdminsList(svc admins.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "admins service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := svc.ListAdmins(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

func AdminCreate(svc admins.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "admins service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body admins.CreateAdminInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.CreateAdmin(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func AdminUpdate(svc admins.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "admins service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := adminIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body admins.UpdateAdminInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.UpdateAdmin(r.Context(), id, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

type adminStatusRequest struct {
	Status string `json:"status"`
}

func AdminSetStatus(svc admins.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "admins service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := adminIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body adminStatusRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.SetStatus(r.Context(), id, enums.AccountStatus(body.Status))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

type resetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// AdminResetPassword overwrites an account's password without requiring the
// old one. The self-service change lives on /admin/me/password instead.
func AdminResetPassword(svc admins.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "admins service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := adminIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body resetPasswordRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.ResetPassword(r.Context(), id, body.Password); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "password reset"})
	}
}
