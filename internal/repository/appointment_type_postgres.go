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

const appointmentTypeColumns = `id, name, code, description, is_active, created_at, updated_at`

type AppointmentTypeRepo struct {
	db DB
}

func NewAppointmentTypeRepository(db DB) *AppointmentTypeRepo {
	return &AppointmentTypeRepo{
		db: db,
	}
}

func (r *AppointmentTypeRepo) Create(ctx context.Context, dto domain.CreateAppointmentTypeDTO) (int64, error) {
	isActive := true
	if dto.IsActive != nil {
		isActive = *dto.IsActive
	}

	query := `
		INSERT INTO appointment_types (name, code, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, dto.Name, dto.Code, dto.Description, isActive, time.Now()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting appointment type: %w", err)
	}

	return id, nil
}

func (r *AppointmentTypeRepo) GetByID(ctx context.Context, id int64) (*domain.AppointmentType, error) {
	query := fmt.Sprintf(`SELECT %s FROM appointment_types WHERE id = $1`, appointmentTypeColumns)

	at, err := scanAppointmentType(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("appointment type not found")
		}
		return nil, fmt.Errorf("getting appointment type: %w", err)
	}

	return at, nil
}

func (r *AppointmentTypeRepo) GetActiveByID(ctx context.Context, id int64) (*domain.AppointmentType, error) {
	query := fmt.Sprintf(`SELECT %s FROM appointment_types WHERE id = $1 AND is_active = TRUE`, appointmentTypeColumns)

	at, err := scanAppointmentType(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("appointment type not found")
		}
		return nil, fmt.Errorf("getting active appointment type: %w", err)
	}

	return at, nil
}

func (r *AppointmentTypeRepo) GetByCode(ctx context.Context, code domain.AppointmentTypeCode) (*domain.AppointmentType, error) {
	query := fmt.Sprintf(`SELECT %s FROM appointment_types WHERE code = $1 AND is_active = TRUE`, appointmentTypeColumns)

	at, err := scanAppointmentType(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("appointment type not found")
		}
		return nil, fmt.Errorf("getting appointment type by code: %w", err)
	}

	return at, nil
}

func (r *AppointmentTypeRepo) Update(ctx context.Context, id int64, dto domain.UpdateAppointmentTypeDTO) error {
	var updateFields []string
	var args []any

	argCount := 1

	if dto.Name != nil {
		updateFields = append(updateFields, fmt.Sprintf("name = $%d", argCount))
		args = append(args, *dto.Name)
		argCount++
	}

	if dto.Description != nil {
		updateFields = append(updateFields, fmt.Sprintf("description = $%d", argCount))
		args = append(args, *dto.Description)
		argCount++
	}

	if dto.IsActive != nil {
		updateFields = append(updateFields, fmt.Sprintf("is_active = $%d", argCount))
		args = append(args, *dto.IsActive)
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
		UPDATE appointment_types
		SET %s
		WHERE id = $%d
	`, strings.Join(updateFields, ", "), argCount)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating appointment type: %w", err)
	}

	return nil
}

// Deactivate is the soft delete: types referenced by slots and bookings are
// never removed, only withdrawn from new use.
func (r *AppointmentTypeRepo) Deactivate(ctx context.Context, id int64) error {
	query := `
		UPDATE appointment_types
		SET is_active = FALSE, updated_at = $1
		WHERE id = $2
	`

	_, err := r.db.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("deactivating appointment type: %w", err)
	}

	return nil
}

func (r *AppointmentTypeRepo) List(ctx context.Context, includeInactive bool) ([]domain.AppointmentType, error) {
	query := fmt.Sprintf(`SELECT %s FROM appointment_types`, appointmentTypeColumns)
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying appointment types: %w", err)
	}
	defer rows.Close()

	types := make([]domain.AppointmentType, 0)
	for rows.Next() {
		at, err := scanAppointmentType(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning appointment type row: %w", err)
		}
		types = append(types, *at)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating appointment type rows: %w", err)
	}

	return types, nil
}

func (r *AppointmentTypeRepo) PsychologistsByType(ctx context.Context, appointmentTypeID int64) ([]domain.Psychologist, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM psychologists p
		JOIN psychologist_appointment_types pat ON pat.psychologist_id = p.id
		WHERE pat.appointment_type_id = $1 AND p.is_active = TRUE
		ORDER BY p.last_name, p.first_name
	`, psychologistColumns)

	rows, err := r.db.Query(ctx, query, appointmentTypeID)
	if err != nil {
		return nil, fmt.Errorf("querying psychologists by appointment type: %w", err)
	}
	defer rows.Close()

	psychologists := make([]domain.Psychologist, 0)
	for rows.Next() {
		psychologist, err := scanPsychologist(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning psychologist row: %w", err)
		}
		psychologists = append(psychologists, *psychologist)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating psychologist rows: %w", err)
	}

	return psychologists, nil
}

func scanAppointmentType(row pgx.Row) (*domain.AppointmentType, error) {
	var at domain.AppointmentType
	err := row.Scan(
		&at.ID,
		&at.Name,
		&at.Code,
		&at.Description,
		&at.IsActive,
		&at.CreatedAt,
		&at.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &at, nil
}
