package dto

import (
	"time"

	"github.com/HarryCarrig/Trimmute/internal/models"
)

// BookingListDTO is the listing shape for both the barber and customer views.
// It never carries the customer token; that is only returned once, at
// creation time.
type BookingListDTO struct {
	ID           uint      `json:"id"`
	BarberID     string    `json:"barberId"`
	BarberName   *string   `json:"barberName"`
	CustomerName string    `json:"customerName"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	IsSilent     bool      `json:"isSilent"`
	Requirements *string   `json:"requirements"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromBooking(b models.Booking) BookingListDTO {
	return BookingListDTO{
		ID:           b.ID,
		BarberID:     b.BarberID,
		BarberName:   b.BarberName,
		CustomerName: b.CustomerName,
		Date:         b.Date,
		Time:         b.Time,
		IsSilent:     b.IsSilent,
		Requirements: b.Requirements,
		CreatedAt:    b.CreatedAt,
	}
}

func FromBookings(bs []models.Booking) []BookingListDTO {
	out := make([]BookingListDTO, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBooking(b))
	}
	return out
}
