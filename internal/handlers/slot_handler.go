package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/HarryCarrig/Trimmute/internal/httperr"
	"github.com/HarryCarrig/Trimmute/internal/httpresp"
	ucBooking "github.com/HarryCarrig/Trimmute/internal/usecase/booking"
)

type SlotHandler struct {
	uc *ucBooking.ListOpenSlots
}

func NewSlotHandler(uc *ucBooking.ListOpenSlots) *SlotHandler {
	return &SlotHandler{uc: uc}
}

// List handles GET /slots?shopId=: unbooked pre-materialized slots, ascending
// by start time.
func (h *SlotHandler) List(c *gin.Context) {
	shopIDStr := c.Query("shopId")
	if shopIDStr == "" {
		httperr.BadRequest(c, "missing_shop_id", "shopId required")
		return
	}

	shopID, err := strconv.ParseUint(shopIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_shop_id", "shopId must be numeric")
		return
	}

	slots, err := h.uc.Execute(c.Request.Context(), uint(shopID))
	if err != nil {
		logrus.WithError(err).Error("list slots failed")
		httperr.Internal(c, "failed_to_list_slots", "Failed to list slots.")
		return
	}

	httpresp.OK(c, slots)
}
