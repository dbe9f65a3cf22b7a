package models

import (
	"time"

	"github.com/lib/pq"
)

// Shop is immutable reference data: created by cmd/seed, read by customers.
type Shop struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Address  string `gorm:"size:255" json:"address"`
	Postcode string `gorm:"size:12" json:"postcode"`

	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`

	BasePricePence int            `json:"basePricePence"`
	Styles         pq.StringArray `gorm:"type:text[]" json:"styles"`
	SupportsSilent bool           `json:"supportsSilent"`
	ImageURL       *string        `gorm:"size:255" json:"imageUrl"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// HasCoordinates reports whether the shop can take part in proximity search.
func (s *Shop) HasCoordinates() bool {
	return s.Lat != nil && s.Lng != nil
}
