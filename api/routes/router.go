package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/cardlinkhq/cardlink-backend/api/controllers"
	"github.com/cardlinkhq/cardlink-backend/api/middleware"
	"github.com/cardlinkhq/cardlink-backend/internal/admins"
	"github.com/cardlinkhq/cardlink-backend/internal/auth"
	"github.com/cardlinkhq/cardlink-backend/internal/profiles"
	"github.com/cardlinkhq/cardlink-backend/internal/public"
	"github.com/cardlinkhq/cardlink-backend/pkg/config"
	"github.com/cardlinkhq/cardlink-backend/pkg/db"
	"github.com/cardlinkhq/cardlink-backend/pkg/enums"
	"github.com/cardlinkhq/cardlink-backend/pkg/logger"
	"github.com/cardlinkhq/cardlink-backend/pkg/redis"
)

// NewRouter assembles the full HTTP surface: the public card resolver, the
// login endpoint, and the token-guarded admin API.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	database *db.Client,
	redisClient *redis.Client,
	authService auth.Service,
	adminsService admins.Service,
	profilesService profiles.Service,
	publicResolver public.Resolver,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		// Tolerate trailing slashes so /profile/john-doe/ resolves the same
		// card as /profile/john-doe.
		chimiddleware.StripSlashes,
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins...),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/", controllers.HealthLive(cfg))
		r.Get("/live", controllers.HealthLive(cfg))
		if redisClient != nil {
			r.Get("/ready", controllers.HealthReady(cfg, logg, database, redisClient))
		} else {
			r.Get("/ready", controllers.HealthReady(cfg, logg, database, nil))
		}
	})

	r.Get("/profile/{username}", controllers.PublicProfile(publicResolver, logg))

	r.Route("/admin", func(r chi.Router) {
		login := controllers.AdminLogin(authService, logg)
		if redisClient != nil {
			r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", login)
		} else {
			r.Post("/login", login)
		}

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))

			// Self-service: any authenticated admin.
			r.Route("/me", func(r chi.Router) {
				r.Get("/", controllers.AccountGet(adminsService, logg))
				r.Put("/", controllers.AccountUpdate(adminsService, logg))
				r.Patch("/password", controllers.AccountChangePassword(adminsService, logg))
				r.Get("/profile", controllers.AccountProfileGet(profilesService, logg))
				r.Put("/profile", controllers.AccountProfileUpdate(profilesService, logg))
			})

			// Per-profile routes run their own owner-or-SUPER_ADMIN check in
			// the directory service.
			r.Route("/profiles", func(r chi.Router) {
				r.Get("/{profileId}", controllers.ProfileByID(profilesService, logg))
				r.Put("/{profileId}", controllers.ProfileUpdate(profilesService, logg))
				r.Patch("/{profileId}/status", controllers.ProfileSetStatus(profilesService, logg))

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(enums.AdminRoleSuperAdmin, logg))
					r.Get("/", controllers.ProfilesSearch(profilesService, logg))
					r.Post("/", controllers.ProfileCreate(profilesService, logg))
					r.Patch("/{profileId}/owner", controllers.ProfileAssignOwner(profilesService, logg))
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(enums.AdminRoleSuperAdmin, logg))

				r.Get("/dashboard", controllers.DashboardStats(profilesService, logg))

				r.Route("/users", func(r chi.Router) {
					r.Get("/", controllers.AdminsList(adminsService, logg))
					r.Post("/", controllers.AdminCreate(adminsService, logg))
					r.Put("/{adminId}", controllers.AdminUpdate(adminsService, logg))
					r.Patch("/{adminId}/status", controllers.AdminSetStatus(adminsService, logg))
					r.Post("/{adminId}/reset-password", controllers.AdminResetPassword(adminsService, logg))
				})
			})
		})
	})

	return r
}
