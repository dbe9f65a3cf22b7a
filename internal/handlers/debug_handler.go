package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/HarryCarrig/Trimmute/internal/config"
	"github.com/HarryCarrig/Trimmute/internal/dto"
	"github.com/HarryCarrig/Trimmute/internal/httperr"
	"github.com/HarryCarrig/Trimmute/internal/httpresp"
	"github.com/HarryCarrig/Trimmute/internal/models"
)

// DebugHandler serves the env-gated diagnostic routes. Not part of the
// stable contract.
type DebugHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewDebugHandler(db *gorm.DB, cfg *config.Config) *DebugHandler {
	return &DebugHandler{db: db, config: cfg}
}

func (h *DebugHandler) Debug(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"ok": true,
		"env": gin.H{
			"isProd":       h.config.IsProd(),
			"enableDBTest": h.config.EnableDBTest,
			"allowDebug":   h.config.AllowDebug,
			"hasRedis":     h.config.RedisURL != "",
			"hasS3":        h.config.S3Bucket != "",
		},
		"routes": []string{
			"GET /",
			"GET /health",
			"GET /barbers",
			"GET /barbers/near",
			"GET /availability",
			"GET /slots",
			"POST /bookings",
			"GET /bookings",
			"GET /my-bookings",
			"DELETE /bookings/:id",
			"POST /auth/login",
		},
		"time": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *DebugHandler) DBTest(c *gin.Context) {
	var ok int
	if err := h.db.Raw("select 1 as ok").Scan(&ok).Error; err != nil {
		logrus.WithError(err).Error("db test failed")
		httperr.Internal(c, "db_unreachable", err.Error())
		return
	}

	httpresp.OK(c, gin.H{"connected": true, "ok": ok})
}

func (h *DebugHandler) BookingsDBTest(c *gin.Context) {
	var bookings []models.Booking
	if err := h.db.
		Order("id DESC").
		Limit(10).
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "db_unreachable", err.Error())
		return
	}

	httpresp.OK(c, gin.H{"ok": true, "rows": dto.FromBookings(bookings)})
}
