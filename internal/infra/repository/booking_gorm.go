package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/HarryCarrig/Trimmute/internal/domain/booking"
	"github.com/HarryCarrig/Trimmute/internal/httperr"
	"github.com/HarryCarrig/Trimmute/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Shop directory
// --------------------------------------------------

func (r *BookingGormRepository) GetShopByID(
	ctx context.Context,
	id uint,
) (*models.Shop, error) {

	var shop models.Shop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("shop_not_found")
		}
		return nil, err
	}
	return &shop, nil
}

func (r *BookingGormRepository) ListShops(
	ctx context.Context,
) ([]models.Shop, error) {

	var shops []models.Shop
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

// --------------------------------------------------
// Booking ledger
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var existing []models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barber_id = ? AND date = ? AND time = ?",
				b.BarberID, b.Date, b.Time,
			).
			Find(&existing).Error; err != nil {
			return err
		}

		if len(existing) > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		if err := tx.Create(b).Error; err != nil {
			// Race between check and insert; the unique index wins.
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrBusiness("slot_taken")
			}
			return err
		}

		return r.syncSlot(tx, b, true)
	})
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var b models.Booking
		if err := tx.First(&b, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("booking_not_found")
			}
			return err
		}

		if err := tx.Delete(&b).Error; err != nil {
			return err
		}

		return r.syncSlot(tx, &b, false)
	})
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).Model(&models.Booking{})

	if f.Date != "" {
		q = q.Where("date = ?", f.Date)
	}
	if f.BarberID != "" {
		q = q.Where("barber_id = ?", f.BarberID)
	}

	var bookings []models.Booking
	if err := q.Order("date ASC, time ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsByToken(
	ctx context.Context,
	token string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("customer_token = ?", token).
		Order("date DESC, time DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListBookedTimes(
	ctx context.Context,
	barberID, date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Distinct("time").
		Where("barber_id = ? AND date = ?", barberID, date).
		Order("time ASC").
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}

// --------------------------------------------------
// Slots
// --------------------------------------------------

func (r *BookingGormRepository) ListOpenSlots(
	ctx context.Context,
	shopID uint,
) ([]models.Slot, error) {

	var slots []models.Slot
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND is_booked = false", shopID).
		Order("starts_at ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *BookingGormRepository) MaterializeSlots(
	ctx context.Context,
	slots []models.Slot,
) error {

	if len(slots) == 0 {
		return nil
	}

	// Re-materializing a day must not clobber already-booked slots.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&slots).Error
}

// syncSlot mirrors the ledger change onto a matching pre-materialized slot,
// when one exists. Slot times are stored in UTC.
func (r *BookingGormRepository) syncSlot(
	tx *gorm.DB,
	b *models.Booking,
	booked bool,
) error {

	shopID, err := strconv.ParseUint(b.BarberID, 10, 64)
	if err != nil {
		return nil
	}

	startsAt, err := time.Parse("2006-01-02 15:04", b.Date+" "+b.Time)
	if err != nil {
		return nil
	}

	return tx.Model(&models.Slot{}).
		Where("shop_id = ? AND starts_at = ?", uint(shopID), startsAt).
		Update("is_booked", booked).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
