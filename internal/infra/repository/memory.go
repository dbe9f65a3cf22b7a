package repository

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	domain "github.com/HarryCarrig/Trimmute/internal/domain/booking"
	"github.com/HarryCarrig/Trimmute/internal/httperr"
	"github.com/HarryCarrig/Trimmute/internal/models"
)

// MemoryRepository is an in-memory Repository used by tests. It mirrors the
// GORM repository's semantics, including the slot-conflict business error and
// slot syncing.
type MemoryRepository struct {
	mu       sync.Mutex
	shops    map[uint]models.Shop
	bookings []models.Booking
	slots    []models.Slot
	nextID   uint
}

func NewMemoryRepository(shops ...models.Shop) *MemoryRepository {
	m := &MemoryRepository{
		shops:  make(map[uint]models.Shop),
		nextID: 1,
	}
	for _, s := range shops {
		m.shops[s.ID] = s
	}
	return m
}

func (m *MemoryRepository) GetShopByID(_ context.Context, id uint) (*models.Shop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.shops[id]
	if !ok {
		return nil, httperr.ErrBusiness("shop_not_found")
	}
	return &s, nil
}

func (m *MemoryRepository) ListShops(_ context.Context) ([]models.Shop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	shops := make([]models.Shop, 0, len(m.shops))
	for _, s := range m.shops {
		shops = append(shops, s)
	}
	sort.Slice(shops, func(i, j int) bool { return shops[i].ID < shops[j].ID })
	return shops, nil
}

func (m *MemoryRepository) CreateBooking(_ context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.bookings {
		if existing.BarberID == b.BarberID &&
			existing.Date == b.Date &&
			existing.Time == b.Time {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	b.ID = m.nextID
	m.nextID++
	b.CreatedAt = time.Now()
	m.bookings = append(m.bookings, *b)

	m.syncSlot(b, true)
	return nil
}

func (m *MemoryRepository) DeleteBooking(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, b := range m.bookings {
		if b.ID == id {
			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)
			m.syncSlot(&b, false)
			return nil
		}
	}
	return httperr.ErrBusiness("booking_not_found")
}

func (m *MemoryRepository) ListBookings(_ context.Context, f domain.ListFilter) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Booking
	for _, b := range m.bookings {
		if f.Date != "" && b.Date != f.Date {
			continue
		}
		if f.BarberID != "" && b.BarberID != f.BarberID {
			continue
		}
		out = append(out, b)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func (m *MemoryRepository) ListBookingsByToken(_ context.Context, token string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Booking
	for _, b := range m.bookings {
		if b.CustomerToken == token {
			out = append(out, b)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Time > out[j].Time
	})
	return out, nil
}

func (m *MemoryRepository) ListBookedTimes(_ context.Context, barberID, date string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	seen := make(map[string]bool)
	var times []string
	for _, b := range m.bookings {
		if b.BarberID == barberID && b.Date == date && !seen[b.Time] {
			seen[b.Time] = true
			times = append(times, b.Time)
		}
	}

	sort.Strings(times)
	return times, nil
}

func (m *MemoryRepository) ListOpenSlots(_ context.Context, shopID uint) ([]models.Slot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Slot
	for _, s := range m.slots {
		if s.ShopID == shopID && !s.IsBooked {
			out = append(out, s)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	return out, nil
}

func (m *MemoryRepository) MaterializeSlots(_ context.Context, slots []models.Slot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range slots {
		if m.hasSlot(s.ShopID, s.StartsAt) {
			continue
		}
		s.ID = m.nextID
		m.nextID++
		m.slots = append(m.slots, s)
	}
	return nil
}

func (m *MemoryRepository) hasSlot(shopID uint, startsAt time.Time) bool {
	for _, s := range m.slots {
		if s.ShopID == shopID && s.StartsAt.Equal(startsAt) {
			return true
		}
	}
	return false
}

func (m *MemoryRepository) syncSlot(b *models.Booking, booked bool) {
	shopID, err := strconv.ParseUint(b.BarberID, 10, 64)
	if err != nil {
		return
	}

	startsAt, err := time.Parse("2006-01-02 15:04", b.Date+" "+b.Time)
	if err != nil {
		return
	}

	for i := range m.slots {
		if m.slots[i].ShopID == uint(shopID) && m.slots[i].StartsAt.Equal(startsAt) {
			m.slots[i].IsBooked = booked
		}
	}
}

var _ domain.Repository = (*MemoryRepository)(nil)
