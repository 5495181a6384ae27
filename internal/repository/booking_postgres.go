package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"psybook/internal/domain"
)

const bookingColumns = `id, client_name, client_email, client_phone, client_address, notes, status,
		time_slot_id, specialization_id, appointment_type_id, created_at, updated_at`

type BookingRepo struct {
	db DB
}

func NewBookingRepository(db DB) *BookingRepo {
	return &BookingRepo{
		db: db,
	}
}

func (r *BookingRepo) Create(ctx context.Context, dto domain.CreateBookingDTO) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()

	// The conditional update is the authoritative availability check: zero
	// rows affected means another booking claimed the slot first, no matter
	// what an earlier read said.
	tag, err := tx.Exec(ctx, `
		UPDATE time_slots
		SET is_available = FALSE, updated_at = $2
		WHERE id = $1 AND is_available = TRUE
	`, dto.TimeSlotID, now)
	if err != nil {
		return 0, fmt.Errorf("reserving time slot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return 0, domain.NewBadRequest("time slot is not available")
	}

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO bookings (client_name, client_email, client_phone, client_address, notes, status,
			time_slot_id, specialization_id, appointment_type_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING id
	`,
		dto.ClientName,
		dto.ClientEmail,
		dto.ClientPhone,
		dto.ClientAddress,
		dto.Notes,
		domain.BookingStatusPending,
		dto.TimeSlotID,
		dto.SpecializationID,
		dto.AppointmentTypeID,
		now,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, domain.NewConflict("time slot is already booked")
		}
		return 0, fmt.Errorf("inserting booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}

	return id, nil
}

func (r *BookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1`, bookingColumns)

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("booking not found")
		}
		return nil, fmt.Errorf("getting booking: %w", err)
	}

	return booking, nil
}

func (r *BookingRepo) GetByTimeSlot(ctx context.Context, timeSlotID int64) (*domain.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		WHERE time_slot_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, bookingColumns)

	booking, err := scanBooking(r.db.QueryRow(ctx, query, timeSlotID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("booking not found")
		}
		return nil, fmt.Errorf("getting booking by time slot: %w", err)
	}

	return booking, nil
}

func (r *BookingRepo) GetActiveByTimeSlot(ctx context.Context, timeSlotID int64) (*domain.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		WHERE time_slot_id = $1 AND status != $2
	`, bookingColumns)

	booking, err := scanBooking(r.db.QueryRow(ctx, query, timeSlotID, domain.BookingStatusCancelled))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("booking not found")
		}
		return nil, fmt.Errorf("getting active booking by time slot: %w", err)
	}

	return booking, nil
}

func (r *BookingRepo) Update(ctx context.Context, id int64, dto domain.UpdateBookingDTO) error {
	var updateFields []string
	var args []any

	argCount := 1

	if dto.ClientName != nil {
		updateFields = append(updateFields, fmt.Sprintf("client_name = $%d", argCount))
		args = append(args, *dto.ClientName)
		argCount++
	}

	if dto.ClientEmail != nil {
		updateFields = append(updateFields, fmt.Sprintf("client_email = $%d", argCount))
		args = append(args, *dto.ClientEmail)
		argCount++
	}

	if dto.ClientPhone != nil {
		updateFields = append(updateFields, fmt.Sprintf("client_phone = $%d", argCount))
		args = append(args, *dto.ClientPhone)
		argCount++
	}

	if dto.ClientAddress != nil {
		updateFields = append(updateFields, fmt.Sprintf("client_address = $%d", argCount))
		args = append(args, *dto.ClientAddress)
		argCount++
	}

	if dto.Notes != nil {
		updateFields = append(updateFields, fmt.Sprintf("notes = $%d", argCount))
		args = append(args, *dto.Notes)
		argCount++
	}

	if dto.TimeSlotID != nil {
		updateFields = append(updateFields, fmt.Sprintf("time_slot_id = $%d", argCount))
		args = append(args, *dto.TimeSlotID)
		argCount++
	}

	if dto.SpecializationID != nil {
		updateFields = append(updateFields, fmt.Sprintf("specialization_id = $%d", argCount))
		args = append(args, *dto.SpecializationID)
		argCount++
	}

	if dto.AppointmentTypeID != nil {
		updateFields = append(updateFields, fmt.Sprintf("appointment_type_id = $%d", argCount))
		args = append(args, *dto.AppointmentTypeID)
		argCount++
	}

	if len(updateFields) == 0 {
		return nil
	}

	updateFields = append(updateFields, fmt.Sprintf("updated_at = $%d", argCount))
	args = append(args, time.Now())
	argCount++

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE bookings
		SET %s
		WHERE id = $%d
	`, strings.Join(updateFields, ", "), argCount)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating booking: %w", err)
	}

	return nil
}

func (r *BookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = $2
		WHERE id = $3
	`

	_, err := r.db.Exec(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("updating booking status: %w", err)
	}

	return nil
}

func (r *BookingRepo) Cancel(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()

	var timeSlotID int64
	err = tx.QueryRow(ctx, `
		UPDATE bookings
		SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING time_slot_id
	`, domain.BookingStatusCancelled, now, id).Scan(&timeSlotID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewNotFound("booking not found")
		}
		return fmt.Errorf("cancelling booking: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE time_slots
		SET is_available = TRUE, updated_at = $2
		WHERE id = $1
	`, timeSlotID, now)
	if err != nil {
		return fmt.Errorf("releasing time slot: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (r *BookingRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var timeSlotID int64
	err = tx.QueryRow(ctx, `SELECT time_slot_id FROM bookings WHERE id = $1`, id).Scan(&timeSlotID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Missing bookings delete silently without touching any slot.
			return tx.Commit(ctx)
		}
		return fmt.Errorf("getting booking for deletion: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE time_slots
		SET is_available = TRUE, updated_at = $2
		WHERE id = $1
	`, timeSlotID, time.Now())
	if err != nil {
		return fmt.Errorf("releasing time slot: %w", err)
	}

	_, err = tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (r *BookingRepo) List(ctx context.Context) ([]domain.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings ORDER BY created_at DESC`, bookingColumns)
	return r.queryBookings(ctx, query)
}

func (r *BookingRepo) FindByClientEmail(ctx context.Context, clientEmail string) ([]domain.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		WHERE client_email = $1
		ORDER BY created_at DESC
	`, bookingColumns)
	return r.queryBookings(ctx, query, clientEmail)
}

func (r *BookingRepo) FindByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		WHERE status = $1
		ORDER BY created_at DESC
	`, bookingColumns)
	return r.queryBookings(ctx, query, status)
}

func (r *BookingRepo) queryBookings(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning booking row: %w", err)
		}
		bookings = append(bookings, *booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating booking rows: %w", err)
	}

	return bookings, nil
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var booking domain.Booking
	err := row.Scan(
		&booking.ID,
		&booking.ClientName,
		&booking.ClientEmail,
		&booking.ClientPhone,
		&booking.ClientAddress,
		&booking.Notes,
		&booking.Status,
		&booking.TimeSlotID,
		&booking.SpecializationID,
		&booking.AppointmentTypeID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
