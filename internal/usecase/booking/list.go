package booking

import (
	"context"

	domain "github.com/HarryCarrig/Trimmute/internal/domain/booking"
	"github.com/HarryCarrig/Trimmute/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Booking, error) {
	return uc.repo.ListBookings(ctx, f)
}

// MyBookings is the customer-facing view: only rows whose stored token
// matches the presented one.
type MyBookings struct {
	repo domain.Repository
}

func NewMyBookings(repo domain.Repository) *MyBookings {
	return &MyBookings{repo: repo}
}

func (uc *MyBookings) Execute(
	ctx context.Context,
	token string,
) ([]models.Booking, error) {
	return uc.repo.ListBookingsByToken(ctx, token)
}
