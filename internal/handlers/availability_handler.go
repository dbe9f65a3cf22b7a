package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/HarryCarrig/Trimmute/internal/httperr"
	"github.com/HarryCarrig/Trimmute/internal/httpresp"
	ucBooking "github.com/HarryCarrig/Trimmute/internal/usecase/booking"
)

type AvailabilityHandler struct {
	uc *ucBooking.GetAvailability
}

func NewAvailabilityHandler(uc *ucBooking.GetAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{uc: uc}
}

// Get handles GET /availability?barberId=&date=. Returns booked times only,
// no personal data.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	barberID := c.Query("barberId")
	date := c.Query("date")

	if barberID == "" || date == "" {
		httperr.BadRequest(c, "missing_params", "barberId and date are required")
		return
	}

	times, err := h.uc.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		logrus.WithError(err).Error("availability query failed")
		httperr.Internal(c, "availability_failed", "server error")
		return
	}

	httpresp.OK(c, gin.H{
		"barberId":    barberID,
		"date":        date,
		"bookedTimes": times,
	})
}
