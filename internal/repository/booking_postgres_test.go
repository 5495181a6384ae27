package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psybook/internal/domain"
)

func strPtr(s string) *string { return &s }

func newBookingMock(t *testing.T) (pgxmock.PgxPoolIface, *BookingRepo) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewBookingRepository(mock)
}

func validCreateBookingDTO(timeSlotID int64) domain.CreateBookingDTO {
	return domain.CreateBookingDTO{
		ClientName:        "Anna Client",
		ClientEmail:       "anna@example.com",
		ClientPhone:       strPtr("+15550102030"),
		Notes:             strPtr("first session"),
		TimeSlotID:        timeSlotID,
		SpecializationID:  1,
		AppointmentTypeID: 1,
	}
}

func TestBookingRepoCreate(t *testing.T) {
	t.Run("reserves the slot and inserts in one transaction", func(t *testing.T) {
		mock, repo := newBookingMock(t)
		dto := validCreateBookingDTO(7)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE time_slots").
			WithArgs(dto.TimeSlotID, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery("INSERT INTO bookings").
			WithArgs(
				dto.ClientName,
				dto.ClientEmail,
				dto.ClientPhone,
				dto.ClientAddress,
				dto.Notes,
				domain.BookingStatusPending,
				dto.TimeSlotID,
				dto.SpecializationID,
				dto.AppointmentTypeID,
				pgxmock.AnyArg(),
			).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))
		mock.ExpectCommit()

		id, err := repo.Create(context.Background(), dto)
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows from the conditional update aborts the booking", func(t *testing.T) {
		mock, repo := newBookingMock(t)
		dto := validCreateBookingDTO(7)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE time_slots").
			WithArgs(dto.TimeSlotID, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()

		_, err := repo.Create(context.Background(), dto)
		require.Error(t, err)
		assert.True(t, domain.IsBadRequest(err))
		assert.EqualError(t, err, "time slot is not available")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation on the slot maps to a conflict", func(t *testing.T) {
		mock, repo := newBookingMock(t)
		dto := validCreateBookingDTO(7)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE time_slots").
			WithArgs(dto.TimeSlotID, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery("INSERT INTO bookings").
			WithArgs(
				dto.ClientName,
				dto.ClientEmail,
				dto.ClientPhone,
				dto.ClientAddress,
				dto.Notes,
				domain.BookingStatusPending,
				dto.TimeSlotID,
				dto.SpecializationID,
				dto.AppointmentTypeID,
				pgxmock.AnyArg(),
			).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "bookings_active_slot_idx"})
		mock.ExpectRollback()

		_, err := repo.Create(context.Background(), dto)
		require.Error(t, err)
		assert.True(t, domain.IsConflict(err))
		assert.EqualError(t, err, "time slot is already booked")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepoGetByID(t *testing.T) {
	t.Run("scans a full row", func(t *testing.T) {
		mock, repo := newBookingMock(t)
		now := time.Now()

		mock.ExpectQuery(`FROM bookings WHERE id = \$1`).
			WithArgs(int64(42)).
			WillReturnRows(pgxmock.NewRows([]string{
				"id", "client_name", "client_email", "client_phone", "client_address", "notes", "status",
				"time_slot_id", "specialization_id", "appointment_type_id", "created_at", "updated_at",
			}).AddRow(
				int64(42), "Anna Client", "anna@example.com", strPtr("+15550102030"), (*string)(nil),
				strPtr("first session"), domain.BookingStatusPending,
				int64(7), int64(1), int64(1), now, now,
			))

		booking, err := repo.GetByID(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), booking.ID)
		assert.Equal(t, "anna@example.com", booking.ClientEmail)
		assert.Equal(t, domain.BookingStatusPending, booking.Status)
		assert.Equal(t, int64(7), booking.TimeSlotID)
		assert.Nil(t, booking.ClientAddress)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing booking", func(t *testing.T) {
		mock, repo := newBookingMock(t)

		mock.ExpectQuery(`FROM bookings WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetByID(context.Background(), 99)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
		assert.EqualError(t, err, "booking not found")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepoCancel(t *testing.T) {
	t.Run("releases the slot in the same transaction", func(t *testing.T) {
		mock, repo := newBookingMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE bookings").
			WithArgs(domain.BookingStatusCancelled, pgxmock.AnyArg(), int64(42)).
			WillReturnRows(pgxmock.NewRows([]string{"time_slot_id"}).AddRow(int64(7)))
		mock.ExpectExec("UPDATE time_slots").
			WithArgs(int64(7), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Cancel(context.Background(), 42))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing booking", func(t *testing.T) {
		mock, repo := newBookingMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE bookings").
			WithArgs(domain.BookingStatusCancelled, pgxmock.AnyArg(), int64(99)).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		err := repo.Cancel(context.Background(), 99)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
		assert.EqualError(t, err, "booking not found")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepoDelete(t *testing.T) {
	t.Run("releases the slot before removing the row", func(t *testing.T) {
		mock, repo := newBookingMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT time_slot_id FROM bookings").
			WithArgs(int64(42)).
			WillReturnRows(pgxmock.NewRows([]string{"time_slot_id"}).AddRow(int64(7)))
		mock.ExpectExec("UPDATE time_slots").
			WithArgs(int64(7), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec("DELETE FROM bookings").
			WithArgs(int64(42)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Delete(context.Background(), 42))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing booking deletes silently", func(t *testing.T) {
		mock, repo := newBookingMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT time_slot_id FROM bookings").
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectCommit()

		require.NoError(t, repo.Delete(context.Background(), 99))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepoGetActiveByTimeSlot(t *testing.T) {
	t.Run("cancelled bookings are excluded", func(t *testing.T) {
		mock, repo := newBookingMock(t)

		mock.ExpectQuery(`WHERE time_slot_id = \$1 AND status != \$2`).
			WithArgs(int64(7), domain.BookingStatusCancelled).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetActiveByTimeSlot(context.Background(), 7)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepoUpdate(t *testing.T) {
	t.Run("only patched columns are written", func(t *testing.T) {
		mock, repo := newBookingMock(t)

		mock.ExpectExec("UPDATE bookings").
			WithArgs("better hours please", pgxmock.AnyArg(), int64(42)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.Update(context.Background(), 42, domain.UpdateBookingDTO{
			Notes: strPtr("better hours please"),
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty patch is a no-op", func(t *testing.T) {
		mock, repo := newBookingMock(t)

		require.NoError(t, repo.Update(context.Background(), 42, domain.UpdateBookingDTO{}))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepoFindByStatus(t *testing.T) {
	mock, repo := newBookingMock(t)
	now := time.Now()

	mock.ExpectQuery(`WHERE status = \$1`).
		WithArgs(domain.BookingStatusConfirmed).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "client_name", "client_email", "client_phone", "client_address", "notes", "status",
			"time_slot_id", "specialization_id", "appointment_type_id", "created_at", "updated_at",
		}).AddRow(
			int64(1), "Anna Client", "anna@example.com", (*string)(nil), (*string)(nil),
			(*string)(nil), domain.BookingStatusConfirmed,
			int64(7), int64(1), int64(1), now, now,
		))

	bookings, err := repo.FindByStatus(context.Background(), domain.BookingStatusConfirmed)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, domain.BookingStatusConfirmed, bookings[0].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}
