package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cardlinkhq/cardlink-backend/api/middleware"
	"github.com/cardlinkhq/cardlink-backend/api/responses"
	"github.com/cardlinkhq/cardlink-backend/api/validators"
	"github.com/cardlinkhq/cardlink-backend/internal/profiles"
	"github.com/cardlinkhq/cardlink-backend/pkg/enums"
	pkgerrors "github.com/cardlinkhq/cardlink-backend/pkg/errors"
	"github.com/cardlinkhq/cardlink-backend/pkg/logger"
	"github.com/cardlinkhq/cardlink-backend/pkg/pagination"
	"github.com/google/uuid"
)

func actorFrom(r *http.Request) profiles.Actor {
	identity := middleware.IdentityFromContext(r.Context())
	return profiles.Actor{AdminID: identity.AdminID, Role: identity.Role}
}

func profileIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid profile id")
	}
	return id, nil
}

// ProfilesSearch serves the global directory listing with text/status
// filters and page/limit pagination.
func ProfilesSearch(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "profiles service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params := profiles.SearchParams{
			Text:   validators.QueryString(r, "search"),
			Status: enums.AccountStatus(validators.QueryString(r, "status")),
			Page: pagination.Normalize(
				validators.QueryIntOrDefault(r, "page", pagination.DefaultPage),
				validators.QueryIntOrDefault(r, "limit", pagination.DefaultLimit),
			),
		}

		page, err := svc.Search(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

func ProfileByID(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "profiles service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := profileIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := svc.GetByID(r.Context(), actorFrom(r), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, profile)
	}
}

func ProfileCreate(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
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

		created, err := svc.Create(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func ProfileUpdate(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "profiles service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := profileIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body profiles.ProfileInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.Update(r.Context(), actorFrom(r), id, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

type profileStatusRequest struct {
	Status string `json:"status"`
}

func ProfileSetStatus(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "profiles service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := profileIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body profileStatusRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.SetStatus(r.Context(), actorFrom(r), id, enums.AccountStatus(body.Status))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

func ProfileAssignOwner(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "profiles service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := profileIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body profiles.AssignOwnerInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.AssignOwner(r.Context(), id, body.OwnerAdminID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}
