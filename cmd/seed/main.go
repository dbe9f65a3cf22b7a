package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/HarryCarrig/Trimmute/internal/cache"
	"github.com/HarryCarrig/Trimmute/internal/config"
	dbpkg "github.com/HarryCarrig/Trimmute/internal/db"
	infraRepo "github.com/HarryCarrig/Trimmute/internal/infra/repository"
	"github.com/HarryCarrig/Trimmute/internal/logging"
	"github.com/HarryCarrig/Trimmute/internal/models"
	ucBooking "github.com/HarryCarrig/Trimmute/internal/usecase/booking"
)

func ptr[T any](v T) *T { return &v }

var shops = []models.Shop{
	{
		ID:             1,
		Name:           "Silent Snips",
		Address:        "12 Quiet Lane, London SW1A 1AA",
		Postcode:       "SW1A 1AA",
		Lat:            ptr(51.5014),
		Lng:            ptr(-0.1419),
		BasePricePence: 2500,
		Styles:         []string{"Silent cut available", "Skin fade"},
		SupportsSilent: true,
		ImageURL:       ptr("https://placehold.co/600x400?text=Trimmute+Barbers"),
	},
	{
		ID:             2,
		Name:           "Trim & Chill",
		Address:        "44 Mute Street, Manchester M1 1AE",
		Postcode:       "M1 1AE",
		Lat:            ptr(53.4794),
		Lng:            ptr(-2.2453),
		BasePricePence: 2000,
		Styles:         []string{"Silent cut available", "Buzz cut"},
		SupportsSilent: true,
	},
	{
		ID:             3,
		Name:           "Quiet Cuts",
		Address:        "8 Whisper Road, Leeds LS1 4HT",
		Postcode:       "LS1 4HT",
		Lat:            ptr(53.8008),
		Lng:            ptr(-1.5491),
		BasePricePence: 1800,
		Styles:         []string{"Standard cut"},
		SupportsSilent: false,
	},
	{
		ID:             4,
		Name:           "No-Chatter Clippers",
		Address:        "3 Stillwater Road, Birmingham B1 1AA",
		Postcode:       "B1 1AA",
		Lat:            ptr(52.4797),
		Lng:            ptr(-1.9027),
		BasePricePence: 2200,
		Styles:         []string{"Silent cut available", "Beard trim"},
		SupportsSilent: true,
	},
	{
		ID:             5,
		Name:           "Mute & Fade",
		Address:        "19 Calm Crescent, Bristol BS1 3LP",
		Postcode:       "BS1 3LP",
		Lat:            ptr(51.4545),
		Lng:            ptr(-2.5879),
		BasePricePence: 2300,
		Styles:         []string{"Skin fade", "Standard cut"},
		SupportsSilent: false,
	},
}

func main() {
	cfg := config.Load()
	logging.Init(cfg.IsProd())

	db := dbpkg.NewDB(cfg)
	ctx := context.Background()

	if err := seedShops(db); err != nil {
		logrus.Fatalf("seed shops: %v", err)
	}

	if err := seedBarber(db); err != nil {
		logrus.Fatalf("seed barber: %v", err)
	}

	repo := infraRepo.NewBookingGormRepository(db)
	materialize := ucBooking.NewMaterializeSlots(repo)

	created, err := materialize.Execute(ctx, ucBooking.MaterializeSlotsInput{
		ShopID:    1,
		Date:      time.Now().UTC().Format("2006-01-02"),
		OpenHour:  10,
		CloseHour: 16,
		Mins:      45,
	})
	if err != nil {
		logrus.Fatalf("materialize slots: %v", err)
	}

	cache.NewShopCache(cfg.RedisURL).Invalidate(ctx)

	logrus.WithFields(logrus.Fields{
		"shops": len(shops),
		"slots": len(created),
	}).Info("seed complete")
}

func seedShops(db *gorm.DB) error {
	return db.
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&shops).Error
}

func seedBarber(db *gorm.DB) error {
	email := envOr("SEED_BARBER_EMAIL", "barber@trimmute.local")
	password := envOr("SEED_BARBER_PASSWORD", "changeme")

	var count int64
	if err := db.Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Create(&models.User{
		Name:         "Trimmute Barber",
		Email:        email,
		PasswordHash: string(hashed),
		Role:         "barber",
	}).Error
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
