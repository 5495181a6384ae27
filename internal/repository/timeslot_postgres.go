package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"psybook/internal/domain"
)

const timeSlotColumns = `ts.id, ts.start_time, ts.end_time, ts.is_available, ts.psychologist_id,
		ts.appointment_type_id, ts.meeting_link, ts.address, ts.notes, ts.created_at, ts.updated_at`

type TimeSlotRepo struct {
	db DB
}

func NewTimeSlotRepository(db DB) *TimeSlotRepo {
	return &TimeSlotRepo{
		db: db,
	}
}

func (r *TimeSlotRepo) Create(ctx context.Context, dto domain.CreateTimeSlotDTO) (int64, error) {
	query := `
		INSERT INTO time_slots (start_time, end_time, is_available, psychologist_id, appointment_type_id,
			meeting_link, address, notes, created_at, updated_at)
		VALUES ($1, $2, TRUE, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		dto.StartTime,
		dto.EndTime,
		dto.PsychologistID,
		dto.AppointmentTypeID,
		dto.MeetingLink,
		dto.Address,
		dto.Notes,
		time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting time slot: %w", err)
	}

	return id, nil
}

func (r *TimeSlotRepo) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	query := fmt.Sprintf(`SELECT %s FROM time_slots ts WHERE ts.id = $1`, timeSlotColumns)

	slot, err := scanTimeSlot(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("time slot not found")
		}
		return nil, fmt.Errorf("getting time slot: %w", err)
	}

	return slot, nil
}

func (r *TimeSlotRepo) Update(ctx context.Context, id int64, dto domain.UpdateTimeSlotDTO) error {
	var updateFields []string
	var args []any

	argCount := 1

	if dto.StartTime != nil {
		updateFields = append(updateFields, fmt.Sprintf("start_time = $%d", argCount))
		args = append(args, *dto.StartTime)
		argCount++
	}

	if dto.EndTime != nil {
		updateFields = append(updateFields, fmt.Sprintf("end_time = $%d", argCount))
		args = append(args, *dto.EndTime)
		argCount++
	}

	if dto.PsychologistID != nil {
		updateFields = append(updateFields, fmt.Sprintf("psychologist_id = $%d", argCount))
		args = append(args, *dto.PsychologistID)
		argCount++
	}

	if dto.AppointmentTypeID != nil {
		updateFields = append(updateFields, fmt.Sprintf("appointment_type_id = $%d", argCount))
		args = append(args, *dto.AppointmentTypeID)
		argCount++
	}

	if dto.MeetingLink != nil {
		updateFields = append(updateFields, fmt.Sprintf("meeting_link = $%d", argCount))
		args = append(args, *dto.MeetingLink)
		argCount++
	}

	if dto.Address != nil {
		updateFields = append(updateFields, fmt.Sprintf("address = $%d", argCount))
		args = append(args, *dto.Address)
		argCount++
	}

	if dto.Notes != nil {
		updateFields = append(updateFields, fmt.Sprintf("notes = $%d", argCount))
		args = append(args, *dto.Notes)
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
		UPDATE time_slots
		SET %s
		WHERE id = $%d
	`, strings.Join(updateFields, ", "), argCount)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating time slot: %w", err)
	}

	return nil
}

func (r *TimeSlotRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM time_slots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting time slot: %w", err)
	}

	return nil
}

func (r *TimeSlotRepo) SetAvailability(ctx context.Context, id int64, isAvailable bool) error {
	query := `
		UPDATE time_slots
		SET is_available = $1, updated_at = $2
		WHERE id = $3
	`

	_, err := r.db.Exec(ctx, query, isAvailable, time.Now(), id)
	if err != nil {
		return fmt.Errorf("setting time slot availability: %w", err)
	}

	return nil
}

func (r *TimeSlotRepo) List(ctx context.Context, filter domain.TimeSlotFilter) ([]domain.TimeSlot, error) {
	baseQuery := fmt.Sprintf(`SELECT %s FROM time_slots ts`, timeSlotColumns)

	var conditions []string
	var args []any
	argCount := 1

	// Specialization is a capability of the owning psychologist, not an
	// attribute of the slot.
	if filter.SpecializationID != nil {
		baseQuery += ` JOIN psychologist_specializations ps ON ps.psychologist_id = ts.psychologist_id`
		conditions = append(conditions, fmt.Sprintf("ps.specialization_id = $%d", argCount))
		args = append(args, *filter.SpecializationID)
		argCount++
	}

	if filter.PsychologistID != nil {
		conditions = append(conditions, fmt.Sprintf("ts.psychologist_id = $%d", argCount))
		args = append(args, *filter.PsychologistID)
		argCount++
	}

	if filter.AppointmentTypeID != nil {
		conditions = append(conditions, fmt.Sprintf("ts.appointment_type_id = $%d", argCount))
		args = append(args, *filter.AppointmentTypeID)
		argCount++
	}

	if filter.IsAvailable != nil {
		conditions = append(conditions, fmt.Sprintf("ts.is_available = $%d", argCount))
		args = append(args, *filter.IsAvailable)
		argCount++
	}

	if filter.FutureOnly {
		conditions = append(conditions, fmt.Sprintf("ts.start_time > $%d", argCount))
		args = append(args, time.Now())
		argCount++
	}

	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("ts.start_time >= $%d", argCount))
		args = append(args, *filter.StartDate)
		argCount++
	}

	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("ts.start_time <= $%d", argCount))
		args = append(args, *filter.EndDate)
		argCount++
	}

	query := baseQuery
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY ts.start_time ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying time slots: %w", err)
	}
	defer rows.Close()

	slots := make([]domain.TimeSlot, 0)
	for rows.Next() {
		slot, err := scanTimeSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning time slot row: %w", err)
		}
		slots = append(slots, *slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time slot rows: %w", err)
	}

	return slots, nil
}

func scanTimeSlot(row pgx.Row) (*domain.TimeSlot, error) {
	var slot domain.TimeSlot
	err := row.Scan(
		&slot.ID,
		&slot.StartTime,
		&slot.EndTime,
		&slot.IsAvailable,
		&slot.PsychologistID,
		&slot.AppointmentTypeID,
		&slot.MeetingLink,
		&slot.Address,
		&slot.Notes,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &slot, nil
}
