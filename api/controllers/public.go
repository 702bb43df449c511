package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cardlinkhq/cardlink-backend/api/responses"
	"github.com/cardlinkhq/cardlink-backend/internal/public"
	pkgerrors "github.com/cardlinkhq/cardlink-backend/pkg/errors"
	"github.com/cardlinkhq/cardlink-backend/pkg/logger"
)

// PublicProfile serves the unauthenticated card lookup. The raw path segment
// goes to the resolver as-is; all normalization happens there.
func PublicProfile(resolver public.Resolver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if resolver == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "public resolver unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := resolver.ResolveByUsername(r.Context(), chi.URLParam(r, "username"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, profile)
	}
}
