package models

import "time"

// Slot is a pre-materialized bookable interval. The bookings table remains
// the source of truth; IsBooked is kept in sync on create and cancel.
type Slot struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `gorm:"not null;uniqueIndex:idx_slots_shop_start,priority:1" json:"shopId"`

	StartsAt time.Time `gorm:"not null;uniqueIndex:idx_slots_shop_start,priority:2" json:"startsAt"`
	Mins     int       `gorm:"default:30" json:"mins"`
	IsBooked bool      `gorm:"default:false" json:"isBooked"`

	CreatedAt time.Time `json:"-"`
}
