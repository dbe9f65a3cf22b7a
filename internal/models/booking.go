package models

import "time"

// Booking occupies one (barber, date, time) slot. The composite unique index
// is the storage-level backstop behind the pre-insert conflict check.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID   string  `gorm:"size:32;not null;uniqueIndex:idx_bookings_slot,priority:1" json:"barberId"`
	BarberName *string `gorm:"size:100" json:"barberName"`

	CustomerName string `gorm:"size:100;not null" json:"customerName"`

	Date string `gorm:"size:10;not null;uniqueIndex:idx_bookings_slot,priority:2" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5;not null;uniqueIndex:idx_bookings_slot,priority:3" json:"time"`  // HH:MM

	IsSilent     bool    `json:"isSilent"`
	Requirements *string `gorm:"size:500" json:"requirements"`

	// Opaque token held client-side; authorizes /my-bookings lookups.
	CustomerToken string `gorm:"size:64;index" json:"customerToken,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
