package booking

import (
	"context"

	domain "github.com/HarryCarrig/Trimmute/internal/domain/booking"
)

// GetAvailability reads the booked times for a barber and date straight from
// the ledger. No caching: the result must reflect current state at request
// time, since it drives which time-slot buttons the client disables.
type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	barberID, date string,
) ([]string, error) {

	times, err := uc.repo.ListBookedTimes(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	if times == nil {
		times = []string{}
	}
	return times, nil
}
