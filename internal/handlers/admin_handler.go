package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/HarryCarrig/Trimmute/internal/cache"
	"github.com/HarryCarrig/Trimmute/internal/httperr"
	"github.com/HarryCarrig/Trimmute/internal/httpresp"
	"github.com/HarryCarrig/Trimmute/internal/images"
	"github.com/HarryCarrig/Trimmute/internal/models"
	ucBooking "github.com/HarryCarrig/Trimmute/internal/usecase/booking"
)

// AdminHandler groups barber-authenticated maintenance operations on the
// shop directory.
type AdminHandler struct {
	db       *gorm.DB
	uploader *images.Uploader
	cache    *cache.ShopCache
	slotsUC  *ucBooking.MaterializeSlots
}

func NewAdminHandler(
	db *gorm.DB,
	uploader *images.Uploader,
	c *cache.ShopCache,
	slotsUC *ucBooking.MaterializeSlots,
) *AdminHandler {
	return &AdminHandler{
		db:       db,
		uploader: uploader,
		cache:    c,
		slotsUC:  slotsUC,
	}
}

// ======================================================
// SHOP IMAGE
// ======================================================

func (h *AdminHandler) UploadShopImage(c *gin.Context) {
	if !h.uploader.Enabled() {
		httperr.Internal(c, "uploads_disabled", "Image uploads are not configured")
		return
	}

	shopID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found")
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop, uint(shopID)).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Multipart field 'image' is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Could not read uploaded file")
		return
	}
	defer file.Close()

	url, err := h.uploader.UploadShopImage(c.Request.Context(), shop.ID, file)
	if err != nil {
		logrus.WithError(err).Error("shop image upload failed")
		httperr.Internal(c, "upload_failed", "Failed to store image")
		return
	}

	shop.ImageURL = &url
	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_shop", "Failed to update shop")
		return
	}

	h.cache.Invalidate(c.Request.Context())

	httpresp.OK(c, shop)
}

// ======================================================
// SLOT MATERIALIZATION
// ======================================================

type MaterializeSlotsRequest struct {
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	OpenHour  int    `json:"openHour"`
	CloseHour int    `json:"closeHour"`
	Mins      int    `json:"mins"`
}

func (h *AdminHandler) MaterializeSlots(c *gin.Context) {
	shopID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found")
		return
	}

	var req MaterializeSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "date is required")
		return
	}

	// Defaults mirror the seeded calendar: 10:00-16:00, 45-minute cuts.
	if req.OpenHour == 0 && req.CloseHour == 0 {
		req.OpenHour, req.CloseHour = 10, 16
	}
	if req.Mins == 0 {
		req.Mins = 45
	}

	slots, err := h.slotsUC.Execute(c.Request.Context(), ucBooking.MaterializeSlotsInput{
		ShopID:    uint(shopID),
		Date:      req.Date,
		OpenHour:  req.OpenHour,
		CloseHour: req.CloseHour,
		Mins:      req.Mins,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "shop_not_found"):
			httperr.NotFound(c, "shop_not_found", "Shop not found")
		case httperr.IsBusiness(err, "invalid_date"),
			httperr.IsBusiness(err, "invalid_hours"),
			httperr.IsBusiness(err, "invalid_slot_duration"):
			httperr.BadRequest(c, "invalid_request", "Invalid slot parameters")
		default:
			logrus.WithError(err).Error("slot materialization failed")
			httperr.Internal(c, "failed_to_materialize_slots", "Failed to materialize slots")
		}
		return
	}

	httpresp.Created(c, gin.H{
		"shopId":  uint(shopID),
		"date":    req.Date,
		"created": len(slots),
	})
}
