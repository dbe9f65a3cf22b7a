package booking

import (
	"context"

	"github.com/HarryCarrig/Trimmute/internal/audit"
	domain "github.com/HarryCarrig/Trimmute/internal/domain/booking"
)

// CancelBooking removes a booking and frees its slot for re-booking.
// Cancellation is a barber-only operation; customers hold a read-only view.
type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(repo domain.Repository, audit *audit.Dispatcher) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelBooking) Execute(ctx context.Context, id uint) error {
	if err := uc.repo.DeleteBooking(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &id,
	})

	return nil
}
