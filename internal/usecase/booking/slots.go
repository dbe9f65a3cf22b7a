package booking

import (
	"context"
	"time"

	domain "github.com/HarryCarrig/Trimmute/internal/domain/booking"
	"github.com/HarryCarrig/Trimmute/internal/httperr"
	"github.com/HarryCarrig/Trimmute/internal/models"
)

type ListOpenSlots struct {
	repo domain.Repository
}

func NewListOpenSlots(repo domain.Repository) *ListOpenSlots {
	return &ListOpenSlots{repo: repo}
}

func (uc *ListOpenSlots) Execute(
	ctx context.Context,
	shopID uint,
) ([]models.Slot, error) {
	slots, err := uc.repo.ListOpenSlots(ctx, shopID)
	if err != nil {
		return nil, err
	}

	if slots == nil {
		slots = []models.Slot{}
	}
	return slots, nil
}

// ======================================================
// MATERIALIZE
// ======================================================

type MaterializeSlotsInput struct {
	ShopID    uint
	Date      string // YYYY-MM-DD
	OpenHour  int
	CloseHour int
	Mins      int
}

// MaterializeSlots pre-generates the bookable calendar for one shop and day:
// every interval of Mins minutes whose whole span fits inside
// [OpenHour, CloseHour).
type MaterializeSlots struct {
	repo domain.Repository
}

func NewMaterializeSlots(repo domain.Repository) *MaterializeSlots {
	return &MaterializeSlots{repo: repo}
}

func (uc *MaterializeSlots) Execute(
	ctx context.Context,
	in MaterializeSlotsInput,
) ([]models.Slot, error) {

	if in.Mins <= 0 {
		return nil, httperr.ErrBusiness("invalid_slot_duration")
	}
	if in.OpenHour < 0 || in.CloseHour > 24 || in.OpenHour >= in.CloseHour {
		return nil, httperr.ErrBusiness("invalid_hours")
	}

	day, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if _, err := uc.repo.GetShopByID(ctx, in.ShopID); err != nil {
		return nil, err
	}

	openAt := day.Add(time.Duration(in.OpenHour) * time.Hour)
	closeAt := day.Add(time.Duration(in.CloseHour) * time.Hour)
	step := time.Duration(in.Mins) * time.Minute

	var slots []models.Slot
	for cur := openAt; !cur.Add(step).After(closeAt); cur = cur.Add(step) {
		slots = append(slots, models.Slot{
			ShopID:   in.ShopID,
			StartsAt: cur,
			Mins:     in.Mins,
		})
	}

	if err := uc.repo.MaterializeSlots(ctx, slots); err != nil {
		return nil, err
	}

	return slots, nil
}
