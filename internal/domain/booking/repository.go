package booking

import (
	"context"

	"github.com/HarryCarrig/Trimmute/internal/models"
)

// ListFilter narrows the barber-facing booking listing. Zero values mean
// "no filter".
type ListFilter struct {
	Date     string
	BarberID string
}

type Repository interface {
	// -------- Shop directory --------
	GetShopByID(ctx context.Context, id uint) (*models.Shop, error)

	ListShops(ctx context.Context) ([]models.Shop, error)

	// -------- Booking ledger --------

	// CreateBooking inserts b, failing with the slot_taken business error if
	// the (barber, date, time) slot is already occupied. A matching
	// pre-materialized slot, if any, is flagged booked in the same
	// transaction.
	CreateBooking(ctx context.Context, b *models.Booking) error

	// DeleteBooking removes a booking by id, failing with the
	// booking_not_found business error for unknown ids, and frees any
	// matching slot.
	DeleteBooking(ctx context.Context, id uint) error

	ListBookings(ctx context.Context, f ListFilter) ([]models.Booking, error)

	ListBookingsByToken(ctx context.Context, token string) ([]models.Booking, error)

	// -------- Availability --------

	// ListBookedTimes returns the distinct booked times for a barber and
	// date, ascending.
	ListBookedTimes(ctx context.Context, barberID, date string) ([]string, error)

	// -------- Slots --------
	ListOpenSlots(ctx context.Context, shopID uint) ([]models.Slot, error)

	MaterializeSlots(ctx context.Context, slots []models.Slot) error
}
