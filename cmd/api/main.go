package main

import (
	"context"
	"net/http"
	"os"

	"github.com/cardlinkhq/cardlink-backend/api/routes"
	"github.com/cardlinkhq/cardlink-backend/internal/admins"
	"github.com/cardlinkhq/cardlink-backend/internal/auth"
	"github.com/cardlinkhq/cardlink-backend/internal/profiles"
	"github.com/cardlinkhq/cardlink-backend/internal/public"
	"github.com/cardlinkhq/cardlink-backend/pkg/config"
	"github.com/cardlinkhq/cardlink-backend/pkg/db"
	"github.com/cardlinkhq/cardlink-backend/pkg/logger"
	"github.com/cardlinkhq/cardlink-backend/pkg/migrate"
	"github.com/cardlinkhq/cardlink-backend/pkg/qr"
	"github.com/cardlinkhq/cardlink-backend/pkg/redis"
	"github.com/joho/godotenv"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	// Redis only backs the login rate limiter; the API runs without it.
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(context.Background(), "redis not configured, login rate limiting disabled")
	}

	adminsRepo := admins.NewRepository(dbClient.DB())
	profilesRepo := profiles.NewRepository(dbClient.DB())

	qrGen, err := qr.NewURLGenerator(cfg.QR, cfg.Public)
	if err != nil {
		logg.Error(context.Background(), "failed to build qr generator", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		Repo:      adminsRepo,
		JWTConfig: cfg.JWT,
		Logger:    logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	adminsService, err := admins.NewService(adminsRepo, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create admins service", err)
		os.Exit(1)
	}

	profilesService, err := profiles.NewService(profiles.ServiceParams{
		Repo:      profilesRepo,
		Admins:    adminsRepo,
		QRGen:     qrGen,
		PublicCfg: cfg.Public,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create profiles service", err)
		os.Exit(1)
	}

	publicResolver, err := public.NewResolver(profilesRepo, cfg.Public)
	if err != nil {
		logg.Error(context.Background(), "failed to create public resolver", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg, logg, dbClient, redisClient,
			authService, adminsService, profilesService, publicResolver,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
