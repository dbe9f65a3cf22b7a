package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	domain "github.com/HarryCarrig/Trimmute/internal/domain/booking"
	"github.com/HarryCarrig/Trimmute/internal/dto"
	"github.com/HarryCarrig/Trimmute/internal/httperr"
	"github.com/HarryCarrig/Trimmute/internal/httpresp"
	"github.com/HarryCarrig/Trimmute/internal/middleware"
	ucBooking "github.com/HarryCarrig/Trimmute/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
	cancelUC *ucBooking.CancelBooking
	listUC   *ucBooking.ListBookings
	mineUC   *ucBooking.MyBookings
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	cancelUC *ucBooking.CancelBooking,
	listUC *ucBooking.ListBookings,
	mineUC *ucBooking.MyBookings,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		cancelUC: cancelUC,
		listUC:   listUC,
		mineUC:   mineUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BarberID      string  `json:"barberId" binding:"required"`
	BarberName    *string `json:"barberName"`
	CustomerName  string  `json:"customerName"`
	Date          string  `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string  `json:"time" binding:"required"` // HH:MM
	IsSilent      bool    `json:"isSilent"`
	Requirements  *string `json:"requirements"`
	CustomerToken string  `json:"customerToken"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Missing required fields")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		BarberID:      req.BarberID,
		BarberName:    req.BarberName,
		CustomerName:  req.CustomerName,
		Date:          req.Date,
		Time:          req.Time,
		IsSilent:      req.IsSilent,
		Requirements:  req.Requirements,
		CustomerToken: req.CustomerToken,
	})

	if err != nil {
		h.mapCreateError(c, err)
		return
	}

	// The only response that carries the customer token; the client is
	// expected to persist it locally.
	httpresp.Created(c, b)
}

func (h *BookingHandler) mapCreateError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "missing_fields"):
		httperr.BadRequest(c, "missing_fields", "Missing required fields")
	case httperr.IsBusiness(err, "missing_customer_name"):
		httperr.BadRequest(c, "missing_customer_name", "Customer name is required")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Invalid date, expected YYYY-MM-DD")
	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "invalid_time", "Invalid time, expected HH:MM")
	case httperr.IsBusiness(err, "barber_not_found"):
		httperr.NotFound(c, "barber_not_found", "Barber not found")
	case httperr.IsBusiness(err, "slot_taken"):
		httperr.Conflict(c, "slot_taken", "That time slot is already booked")
	default:
		logrus.WithError(err).Error("create booking failed")
		httperr.Internal(c, "failed_to_create_booking", "Failed to create booking.")
	}
}

// ======================================================
// LIST (barber view)
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	filter := domain.ListFilter{
		Date:     c.Query("date"),
		BarberID: c.Query("barberId"),
	}

	bookings, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		logrus.WithError(err).Error("list bookings failed")
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	httpresp.OK(c, dto.FromBookings(bookings))
}

// ======================================================
// MY BOOKINGS (customer view)
// ======================================================

func (h *BookingHandler) MyBookings(c *gin.Context) {
	token := middleware.BearerToken(c)
	if token == "" {
		httperr.Unauthorized(c, "missing_token", "Unauthorized")
		return
	}

	bookings, err := h.mineUC.Execute(c.Request.Context(), token)
	if err != nil {
		logrus.WithError(err).Error("my-bookings lookup failed")
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	httpresp.OK(c, dto.FromBookings(bookings))
}

// ======================================================
// DELETE (barber-only cancellation)
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found")
		return
	}

	if err := h.cancelUC.Execute(c.Request.Context(), uint(id)); err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Booking not found")
			return
		}
		logrus.WithError(err).Error("delete booking failed")
		httperr.Internal(c, "failed_to_delete_booking", "Failed to delete booking.")
		return
	}

	httpresp.NoContent(c)
}
