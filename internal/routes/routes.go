package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HarryCarrig/Trimmute/internal/audit"
	"github.com/HarryCarrig/Trimmute/internal/cache"
	"github.com/HarryCarrig/Trimmute/internal/config"
	"github.com/HarryCarrig/Trimmute/internal/handlers"
	"github.com/HarryCarrig/Trimmute/internal/images"
	infraRepo "github.com/HarryCarrig/Trimmute/internal/infra/repository"
	"github.com/HarryCarrig/Trimmute/internal/middleware"
	ucBooking "github.com/HarryCarrig/Trimmute/internal/usecase/booking"
	ucShop "github.com/HarryCarrig/Trimmute/internal/usecase/shop"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewBookingGormRepository(db)
	shopCache := cache.NewShopCache(cfg.RedisURL)
	uploader := images.NewUploader(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	listShopsUC := ucShop.NewListShops(repo, shopCache)
	nearShopsUC := ucShop.NewNearShops(repo, shopCache)

	createBookingUC := ucBooking.NewCreateBooking(repo, auditDispatcher)
	cancelBookingUC := ucBooking.NewCancelBooking(repo, auditDispatcher)
	listBookingsUC := ucBooking.NewListBookings(repo)
	myBookingsUC := ucBooking.NewMyBookings(repo)
	availabilityUC := ucBooking.NewGetAvailability(repo)
	openSlotsUC := ucBooking.NewListOpenSlots(repo)
	materializeUC := ucBooking.NewMaterializeSlots(repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	shopHandler := handlers.NewShopHandler(listShopsUC, nearShopsUC)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUC)
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		cancelBookingUC,
		listBookingsUC,
		myBookingsUC,
	)
	slotHandler := handlers.NewSlotHandler(openSlotsUC)
	authHandler := handlers.NewAuthHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, uploader, shopCache, materializeUC)
	debugHandler := handlers.NewDebugHandler(db, cfg)

	// ======================================================
	// PUBLIC ROUTES
	// ======================================================
	r.GET("/barbers", shopHandler.List)
	r.GET("/barbers/near", shopHandler.Near)
	r.GET("/availability", availabilityHandler.Get)
	r.GET("/slots", slotHandler.List)

	r.POST("/bookings", bookingHandler.Create)
	r.GET("/my-bookings", bookingHandler.MyBookings)

	r.POST("/auth/login", authHandler.Login)

	// ======================================================
	// BARBER ROUTES (API key or JWT)
	// ======================================================
	barber := r.Group("/")
	barber.Use(middleware.BarberAuth(cfg))
	{
		barber.GET("/bookings", bookingHandler.List)
		barber.DELETE("/bookings/:id", bookingHandler.Delete)

		barber.POST("/admin/shops/:id/image", adminHandler.UploadShopImage)
		barber.POST("/admin/shops/:id/slots", adminHandler.MaterializeSlots)
	}

	// ======================================================
	// DIAGNOSTICS (env-gated, not part of the contract)
	// ======================================================
	if cfg.AllowDebug {
		r.GET("/debug", debugHandler.Debug)
		r.GET("/bookings-db-test", debugHandler.BookingsDBTest)
	}
	if cfg.EnableDBTest {
		r.GET("/db-test", debugHandler.DBTest)
	}
}
