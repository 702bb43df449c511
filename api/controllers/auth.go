package controllers

import (
	"net/http"

	"github.com/cardlinkhq/cardlink-backend/api/responses"
	"github.com/cardlinkhq/cardlink-backend/api/validators"
	"github.com/cardlinkhq/cardlink-backend/internal/auth"
	pkgerrors "github.com/cardlinkhq/cardlink-backend/pkg/errors"
	"github.com/cardlinkhq/cardlink-backend/pkg/logger"
)

// AdminLogin wires the login endpoint into the HTTP layer.
func AdminLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
