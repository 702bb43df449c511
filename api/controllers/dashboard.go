package controllers

import (
	"net/http"

	"github.com/cardlinkhq/cardlink-backend/api/responses"
	"github.com/cardlinkhq/cardlink-backend/internal/profiles"
	pkgerrors "github.com/cardlinkhq/cardlink-backend/pkg/errors"
	"github.com/cardlinkhq/cardlink-backend/pkg/logger"
)

// DashboardStats serves the four-count aggregate for the admin dashboard.
func DashboardStats(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "profiles service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		stats, err := svc.DashboardStats(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stats)
	}
}
