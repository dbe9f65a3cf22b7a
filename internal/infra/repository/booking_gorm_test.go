package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/HarryCarrig/Trimmute/internal/httperr"
	infraRepo "github.com/HarryCarrig/Trimmute/internal/infra/repository"
	"github.com/HarryCarrig/Trimmute/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestGetShopByID(t *testing.T) {
	t.Run("missing shop is a business error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := infraRepo.NewBookingGormRepository(db)

		mock.ExpectQuery(`SELECT .* FROM "shops"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetShopByID(context.Background(), 99)
		assert.True(t, httperr.IsBusiness(err, "shop_not_found"))

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("store errors pass through untouched", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := infraRepo.NewBookingGormRepository(db)

		boom := errors.New("connection refused")
		mock.ExpectQuery(`SELECT .* FROM "shops"`).WillReturnError(boom)

		_, err := repo.GetShopByID(context.Background(), 1)
		require.Error(t, err)
		assert.False(t, httperr.IsBusiness(err, "shop_not_found"))
		assert.ErrorIs(t, err, boom)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListBookedTimes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := infraRepo.NewBookingGormRepository(db)

	mock.ExpectQuery(`SELECT DISTINCT .?time.? FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"time"}).
			AddRow("10:00").
			AddRow("11:30"))

	times, err := repo.ListBookedTimes(context.Background(), "1", "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "11:30"}, times)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingConflictShortCircuitsInsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := infraRepo.NewBookingGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "bookings" .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "barber_id", "date", "time"}).
			AddRow(1, "1", "2025-06-01", "10:00"))
	mock.ExpectRollback()

	err := repo.CreateBooking(context.Background(), &models.Booking{
		BarberID:     "1",
		CustomerName: "Alex",
		Date:         "2025-06-01",
		Time:         "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingUniqueIndexBackstop(t *testing.T) {
	db, mock := newMockDB(t)
	repo := infraRepo.NewBookingGormRepository(db)

	// Pre-check sees a free slot, but a concurrent insert won the race and
	// the unique index rejects ours.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "bookings" .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err := repo.CreateBooking(context.Background(), &models.Booking{
		BarberID:     "1",
		CustomerName: "Alex",
		Date:         "2025-06-01",
		Time:         "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingInsertsAndSyncsSlot(t *testing.T) {
	db, mock := newMockDB(t)
	repo := infraRepo.NewBookingGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "bookings" .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec(`UPDATE "slots"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	b := &models.Booking{
		BarberID:     "1",
		CustomerName: "Alex",
		Date:         "2025-06-01",
		Time:         "10:00",
	}
	require.NoError(t, repo.CreateBooking(context.Background(), b))
	assert.Equal(t, uint(7), b.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBookingNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := infraRepo.NewBookingGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := repo.DeleteBooking(context.Background(), 42)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))

	require.NoError(t, mock.ExpectationsWereMet())
}
