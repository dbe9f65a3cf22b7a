package booking

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/HarryCarrig/Trimmute/internal/audit"
	domain "github.com/HarryCarrig/Trimmute/internal/domain/booking"
	"github.com/HarryCarrig/Trimmute/internal/httperr"
	"github.com/HarryCarrig/Trimmute/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BarberID   string
	BarberName *string

	CustomerName string

	Date string // YYYY-MM-DD
	Time string // HH:MM

	IsSilent     bool
	Requirements *string

	// Optional idempotency token supplied by a returning client.
	CustomerToken string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(repo domain.Repository, audit *audit.Dispatcher) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Required fields
	// --------------------------------------------------
	if strings.TrimSpace(in.BarberID) == "" ||
		strings.TrimSpace(in.Date) == "" ||
		strings.TrimSpace(in.Time) == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	customerName := strings.TrimSpace(in.CustomerName)
	if customerName == "" {
		return nil, httperr.ErrBusiness("missing_customer_name")
	}

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	// --------------------------------------------------
	// Shop lookup; the directory is authoritative for
	// the silent-cut capability, never the client.
	// --------------------------------------------------
	shopID, err := strconv.ParseUint(in.BarberID, 10, 64)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	shop, err := uc.repo.GetShopByID(ctx, uint(shopID))
	if err != nil {
		if httperr.IsBusiness(err, "shop_not_found") {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		return nil, err
	}

	isSilent := in.IsSilent
	requirements := in.Requirements
	if !shop.SupportsSilent {
		isSilent = false
		requirements = nil
	}

	// --------------------------------------------------
	// Customer token: keep the client's, or mint one.
	// --------------------------------------------------
	token := strings.TrimSpace(in.CustomerToken)
	if token == "" {
		token = uuid.NewString()
	}

	b := &models.Booking{
		BarberID:      in.BarberID,
		BarberName:    in.BarberName,
		CustomerName:  customerName,
		Date:          in.Date,
		Time:          in.Time,
		IsSilent:      isSilent,
		Requirements:  requirements,
		CustomerToken: token,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			uc.audit.Dispatch(audit.Event{
				Action: "booking_conflict",
				Entity: "booking",
				Metadata: map[string]any{
					"barberId": in.BarberID,
					"date":     in.Date,
					"time":     in.Time,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
