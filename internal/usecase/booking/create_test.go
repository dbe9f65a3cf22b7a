package booking_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HarryCarrig/Trimmute/internal/httperr"
	infraRepo "github.com/HarryCarrig/Trimmute/internal/infra/repository"
	"github.com/HarryCarrig/Trimmute/internal/models"
	ucBooking "github.com/HarryCarrig/Trimmute/internal/usecase/booking"
)

// downShopStore simulates a store outage on the shop lookup only.
type downShopStore struct {
	*infraRepo.MemoryRepository
}

func (s *downShopStore) GetShopByID(context.Context, uint) (*models.Shop, error) {
	return nil, errors.New("connection refused")
}

func ptr[T any](v T) *T { return &v }

func newRepo() *infraRepo.MemoryRepository {
	return infraRepo.NewMemoryRepository(
		models.Shop{ID: 1, Name: "Silent Snips", SupportsSilent: true},
		models.Shop{ID: 3, Name: "Quiet Cuts", SupportsSilent: false},
	)
}

func validInput() ucBooking.CreateBookingInput {
	return ucBooking.CreateBookingInput{
		BarberID:     "1",
		CustomerName: "Alex",
		Date:         "2025-06-01",
		Time:         "10:00",
	}
}

func TestCreateBooking(t *testing.T) {
	t.Run("issues a token when the client supplies none", func(t *testing.T) {
		uc := ucBooking.NewCreateBooking(newRepo(), nil)

		b, err := uc.Execute(context.Background(), validInput())
		require.NoError(t, err)

		assert.NotEmpty(t, b.CustomerToken)
		assert.Equal(t, "1", b.BarberID)
		assert.Equal(t, "2025-06-01", b.Date)
		assert.Equal(t, "10:00", b.Time)
		assert.NotZero(t, b.ID)
	})

	t.Run("keeps a client-supplied token", func(t *testing.T) {
		uc := ucBooking.NewCreateBooking(newRepo(), nil)

		in := validInput()
		in.CustomerToken = "  my-token  "

		b, err := uc.Execute(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, "my-token", b.CustomerToken)
	})

	t.Run("second booking for the same slot conflicts", func(t *testing.T) {
		repo := newRepo()
		uc := ucBooking.NewCreateBooking(repo, nil)

		_, err := uc.Execute(context.Background(), validInput())
		require.NoError(t, err)

		in := validInput()
		in.CustomerName = "Sam"
		_, err = uc.Execute(context.Background(), in)
		assert.True(t, httperr.IsBusiness(err, "slot_taken"))

		// No duplicate row either.
		times, err := repo.ListBookedTimes(context.Background(), "1", "2025-06-01")
		require.NoError(t, err)
		assert.Equal(t, []string{"10:00"}, times)
	})

	t.Run("silent flags coerced off when shop does not support them", func(t *testing.T) {
		uc := ucBooking.NewCreateBooking(newRepo(), nil)

		in := validInput()
		in.BarberID = "3"
		in.IsSilent = true
		in.Requirements = ptr("no small talk please")

		b, err := uc.Execute(context.Background(), in)
		require.NoError(t, err)
		assert.False(t, b.IsSilent)
		assert.Nil(t, b.Requirements)
	})

	t.Run("silent flags honored when shop supports them", func(t *testing.T) {
		uc := ucBooking.NewCreateBooking(newRepo(), nil)

		in := validInput()
		in.IsSilent = true
		in.Requirements = ptr("no small talk please")

		b, err := uc.Execute(context.Background(), in)
		require.NoError(t, err)
		assert.True(t, b.IsSilent)
		require.NotNil(t, b.Requirements)
		assert.Equal(t, "no small talk please", *b.Requirements)
	})

	t.Run("customer name must survive trimming", func(t *testing.T) {
		uc := ucBooking.NewCreateBooking(newRepo(), nil)

		in := validInput()
		in.CustomerName = "   "

		_, err := uc.Execute(context.Background(), in)
		assert.True(t, httperr.IsBusiness(err, "missing_customer_name"))
	})

	t.Run("rejects malformed date and time", func(t *testing.T) {
		uc := ucBooking.NewCreateBooking(newRepo(), nil)

		in := validInput()
		in.Date = "01-06-2025"
		_, err := uc.Execute(context.Background(), in)
		assert.True(t, httperr.IsBusiness(err, "invalid_date"))

		in = validInput()
		in.Time = "10am"
		_, err = uc.Execute(context.Background(), in)
		assert.True(t, httperr.IsBusiness(err, "invalid_time"))
	})

	t.Run("unknown shop", func(t *testing.T) {
		uc := ucBooking.NewCreateBooking(newRepo(), nil)

		in := validInput()
		in.BarberID = "99"
		_, err := uc.Execute(context.Background(), in)
		assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
	})

	t.Run("store outage on shop lookup is not a not-found", func(t *testing.T) {
		uc := ucBooking.NewCreateBooking(&downShopStore{newRepo()}, nil)

		_, err := uc.Execute(context.Background(), validInput())
		require.Error(t, err)
		assert.False(t, httperr.IsBusiness(err, "barber_not_found"))
		assert.EqualError(t, err, "connection refused")
	})
}

func TestCancelBooking(t *testing.T) {
	repo := newRepo()
	createUC := ucBooking.NewCreateBooking(repo, nil)
	cancelUC := ucBooking.NewCancelBooking(repo, nil)

	b, err := createUC.Execute(context.Background(), validInput())
	require.NoError(t, err)

	t.Run("unknown id", func(t *testing.T) {
		err := cancelUC.Execute(context.Background(), 9999)
		assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
	})

	t.Run("frees the slot for re-booking", func(t *testing.T) {
		require.NoError(t, cancelUC.Execute(context.Background(), b.ID))

		_, err := createUC.Execute(context.Background(), validInput())
		assert.NoError(t, err)
	})
}

func TestGetAvailability(t *testing.T) {
	repo := newRepo()
	createUC := ucBooking.NewCreateBooking(repo, nil)
	availUC := ucBooking.NewGetAvailability(repo)

	t.Run("empty ledger yields empty, not nil", func(t *testing.T) {
		times, err := availUC.Execute(context.Background(), "1", "2025-06-01")
		require.NoError(t, err)
		assert.Equal(t, []string{}, times)
	})

	t.Run("exactly the booked times, ascending", func(t *testing.T) {
		for _, tm := range []string{"14:00", "10:00", "11:30"} {
			in := validInput()
			in.Time = tm
			_, err := createUC.Execute(context.Background(), in)
			require.NoError(t, err)
		}

		// A different date must not leak in.
		other := validInput()
		other.Date = "2025-06-02"
		other.Time = "09:00"
		_, err := createUC.Execute(context.Background(), other)
		require.NoError(t, err)

		times, err := availUC.Execute(context.Background(), "1", "2025-06-01")
		require.NoError(t, err)
		assert.Equal(t, []string{"10:00", "11:30", "14:00"}, times)
	})
}
