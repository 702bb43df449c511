package controllers

import (
	"context"
	"net/http"

	"github.com/cardlinkhq/cardlink-backend/api/responses"
	"github.com/cardlinkhq/cardlink-backend/pkg/config"
	"github.com/cardlinkhq/cardlink-backend/pkg/logger"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Cardlink-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the hard dependencies. Redis is optional; a nil client
// reports "disabled" instead of failing readiness.
func HealthReady(cfg *config.Config, logg *logger.Logger, database pinger, cache pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Cardlink-Env", cfg.App.Env)

		checks := map[string]string{"database": "ok", "redis": "disabled"}
		healthy := true

		if database == nil {
			checks["database"] = "unavailable"
			healthy = false
		} else if err := database.Ping(r.Context()); err != nil {
			logg.Error(r.Context(), "database readiness check failed", err)
			checks["database"] = "unavailable"
			healthy = false
		}

		if cache != nil {
			if err := cache.Ping(r.Context()); err != nil {
				logg.Error(r.Context(), "redis readiness check failed", err)
				checks["redis"] = "unavailable"
				healthy = false
			} else {
				checks["redis"] = "ok"
			}
		}

		status := "ready"
		code := http.StatusOK
		if !healthy {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		responses.WriteSuccessStatus(w, code, map[string]any{
			"status": status,
			"checks": checks,
		})
	}
}
