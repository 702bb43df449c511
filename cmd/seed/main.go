package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/cardlinkhq/cardlink-backend/internal/admins"
	"github.com/cardlinkhq/cardlink-backend/pkg/config"
	"github.com/cardlinkhq/cardlink-backend/pkg/db"
	"github.com/cardlinkhq/cardlink-backend/pkg/db/models"
	"github.com/cardlinkhq/cardlink-backend/pkg/enums"
	"github.com/cardlinkhq/cardlink-backend/pkg/logger"
	"github.com/cardlinkhq/cardlink-backend/pkg/qr"
	"github.com/cardlinkhq/cardlink-backend/pkg/security"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func demoProfiles(qrGen *qr.URLGenerator) []models.Profile {
	return []models.Profile{
		{
			FullName:        "John Doe",
			CompanyName:     "BlueWave Technologies",
			Designation:     "Business Development Manager",
			Username:        "john-doe",
			Email:           "john.doe@bluewave.com",
			Phone:           "+1-202-555-0101",
			Location:        "San Francisco, CA",
			Bio:             "Helping brands grow through strategic partnerships and NFC-enabled networking.",
			ProfileImageURL: "https://i.pravatar.cc/300?img=12",
			LinkedinURL:     "https://www.linkedin.com/in/john-doe",
			FacebookURL:     "https://www.facebook.com/john.doe",
			InstagramURL:    "https://www.instagram.com/johndoe",
			TwitterURL:      "https://x.com/johndoe",
			WhatsappURL:     "https://wa.me/12025550101",
			NFCUID:          "NFC-UID-1001",
			QRImageURL:      qrGen.ImageURL("john-doe"),
			PublicTheme:     enums.PublicThemeDarkMinimal,
			Status:          enums.AccountStatusActive,
		},
		{
			FullName:        "Jane Smith",
			CompanyName:     "Nova Retail Group",
			Designation:     "Marketing Director",
			Username:        "jane-smith",
			Email:           "jane.smith@novaretail.com",
			Phone:           "+1-202-555-0102",
			Location:        "Austin, TX",
			Bio:             "Driving omnichannel campaigns and customer engagement strategies.",
			ProfileImageURL: "https://i.pravatar.cc/300?img=25",
			LinkedinURL:     "https://www.linkedin.com/in/jane-smith",
			FacebookURL:     "https://www.facebook.com/jane.smith",
			InstagramURL:    "https://www.instagram.com/janesmith",
			TwitterURL:      "https://x.com/janesmith",
			WhatsappURL:     "https://wa.me/12025550102",
			NFCUID:          "NFC-UID-1002",
			QRImageURL:      qrGen.ImageURL("jane-smith"),
			PublicTheme:     enums.PublicThemeLightGlass,
			Status:          enums.AccountStatusActive,
		},
		{
			FullName:        "Alex Lee",
			CompanyName:     "Vertex Consulting",
			Designation:     "Senior Consultant",
			Username:        "alex-lee",
			Email:           "alex.lee@vertexconsulting.com",
			Phone:           "+1-202-555-0103",
			Location:        "Seattle, WA",
			Bio:             "Advising startups on growth, operations, and product-market fit.",
			ProfileImageURL: "https://i.pravatar.cc/300?img=33",
			LinkedinURL:     "https://www.linkedin.com/in/alex-lee",
			FacebookURL:     "https://www.facebook.com/alex.lee",
			InstagramURL:    "https://www.instagram.com/alexlee",
			TwitterURL:      "https://x.com/alexlee",
			WhatsappURL:     "https://wa.me/12025550103",
			NFCUID:          "NFC-UID-1003",
			QRImageURL:      qrGen.ImageURL("alex-lee"),
			PublicTheme:     enums.PublicThemeClassicBlue,
			Status:          enums.AccountStatusDisabled,
		},
	}
}

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	qrGen, err := qr.NewURLGenerator(cfg.QR, cfg.Public)
	if err != nil {
		logg.Error(ctx, "failed to build qr generator", err)
		os.Exit(1)
	}

	if err := seedAdmin(ctx, dbClient.DB(), cfg); err != nil {
		logg.Error(ctx, "failed to seed admin", err)
		os.Exit(1)
	}

	profiles := demoProfiles(qrGen)
	for i := range profiles {
		if err := upsertProfile(ctx, dbClient.DB(), &profiles[i]); err != nil {
			logg.Error(ctx, fmt.Sprintf("failed to seed profile %s", profiles[i].Username), err)
			os.Exit(1)
		}
	}

	logg.Info(ctx, fmt.Sprintf("seed complete: upserted 1 admin and %d profiles", len(profiles)))
}

// seedAdmin upserts the bootstrap SUPER_ADMIN keyed by the configured email,
// re-hashing the configured password on every run.
func seedAdmin(ctx context.Context, gdb *gorm.DB, cfg *config.Config) error {
	email := admins.NormalizeEmail(cfg.Seed.AdminEmail)
	hash, err := security.HashPassword(cfg.Seed.AdminPassword, cfg.Password)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	var account models.AdminAccount
	err = gdb.WithContext(ctx).Where("email = ?", email).First(&account).Error
	switch {
	case err == nil:
		account.PasswordHash = hash
		account.Status = enums.AccountStatusActive
		account.Role = enums.AdminRoleSuperAdmin
		return gdb.WithContext(ctx).Save(&account).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		account = models.AdminAccount{
			Email:        email,
			PasswordHash: hash,
			FullName:     "Demo Admin",
			Status:       enums.AccountStatusActive,
			Role:         enums.AdminRoleSuperAdmin,
		}
		return gdb.WithContext(ctx).Create(&account).Error
	default:
		return err
	}
}

func upsertProfile(ctx context.Context, gdb *gorm.DB, profile *models.Profile) error {
	var existing models.Profile
	err := gdb.WithContext(ctx).Where("username = ?", profile.Username).First(&existing).Error
	switch {
	case err == nil:
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
		return gdb.WithContext(ctx).Save(profile).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return gdb.WithContext(ctx).Create(profile).Error
	default:
		return err
	}
}
