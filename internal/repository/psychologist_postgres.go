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

const psychologistColumns = `p.id, p.email, p.first_name, p.last_name, p.phone, p.license_number,
		p.photo_url, p.is_active, p.created_at, p.updated_at`

type PsychologistRepo struct {
	db DB
}

func NewPsychologistRepository(db DB) *PsychologistRepo {
	return &PsychologistRepo{
		db: db,
	}
}

func (r *PsychologistRepo) Create(ctx context.Context, dto domain.CreatePsychologistDTO) (int64, error) {
	isActive := true
	if dto.IsActive != nil {
		isActive = *dto.IsActive
	}

	query := `
		INSERT INTO psychologists (email, first_name, last_name, phone, license_number, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		dto.Email,
		dto.FirstName,
		dto.LastName,
		dto.Phone,
		dto.LicenseNumber,
		isActive,
		time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting psychologist: %w", err)
	}

	return id, nil
}

func (r *PsychologistRepo) GetByID(ctx context.Context, id int64) (*domain.Psychologist, error) {
	query := fmt.Sprintf(`SELECT %s FROM psychologists p WHERE p.id = $1`, psychologistColumns)

	psychologist, err := scanPsychologist(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("psychologist not found")
		}
		return nil, fmt.Errorf("getting psychologist: %w", err)
	}

	return psychologist, nil
}

func (r *PsychologistRepo) GetByEmail(ctx context.Context, email string) (*domain.Psychologist, error) {
	query := fmt.Sprintf(`SELECT %s FROM psychologists p WHERE p.email = $1`, psychologistColumns)

	psychologist, err := scanPsychologist(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("psychologist not found")
		}
		return nil, fmt.Errorf("getting psychologist by email: %w", err)
	}

	return psychologist, nil
}

func (r *PsychologistRepo) Update(ctx context.Context, id int64, dto domain.UpdatePsychologistDTO) error {
	var updateFields []string
	var args []any

	argCount := 1

	if dto.Email != nil {
		updateFields = append(updateFields, fmt.Sprintf("email = $%d", argCount))
		args = append(args, *dto.Email)
		argCount++
	}

	if dto.FirstName != nil {
		updateFields = append(updateFields, fmt.Sprintf("first_name = $%d", argCount))
		args = append(args, *dto.FirstName)
		argCount++
	}

	if dto.LastName != nil {
		updateFields = append(updateFields, fmt.Sprintf("last_name = $%d", argCount))
		args = append(args, *dto.LastName)
		argCount++
	}

	if dto.Phone != nil {
		updateFields = append(updateFields, fmt.Sprintf("phone = $%d", argCount))
		args = append(args, *dto.Phone)
		argCount++
	}

	if dto.LicenseNumber != nil {
		updateFields = append(updateFields, fmt.Sprintf("license_number = $%d", argCount))
		args = append(args, *dto.LicenseNumber)
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
		UPDATE psychologists
		SET %s
		WHERE id = $%d
	`, strings.Join(updateFields, ", "), argCount)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating psychologist: %w", err)
	}

	return nil
}

func (r *PsychologistRepo) UpdatePhoto(ctx context.Context, id int64, photoURL *string) error {
	query := `
		UPDATE psychologists
		SET photo_url = $1, updated_at = $2
		WHERE id = $3
	`

	_, err := r.db.Exec(ctx, query, photoURL, time.Now(), id)
	if err != nil {
		return fmt.Errorf("updating psychologist photo: %w", err)
	}

	return nil
}

func (r *PsychologistRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM psychologists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting psychologist: %w", err)
	}

	return nil
}

func (r *PsychologistRepo) List(ctx context.Context, filter domain.PsychologistFilter) ([]domain.Psychologist, error) {
	baseQuery := fmt.Sprintf(`SELECT DISTINCT %s FROM psychologists p`, psychologistColumns)

	var conditions []string
	var args []any
	argCount := 1

	if filter.SpecializationID != nil {
		baseQuery += ` JOIN psychologist_specializations ps ON ps.psychologist_id = p.id`
		conditions = append(conditions, fmt.Sprintf("ps.specialization_id = $%d", argCount))
		args = append(args, *filter.SpecializationID)
		argCount++
	}

	if filter.AppointmentTypeID != nil {
		baseQuery += ` JOIN psychologist_appointment_types pat ON pat.psychologist_id = p.id`
		conditions = append(conditions, fmt.Sprintf("pat.appointment_type_id = $%d", argCount))
		args = append(args, *filter.AppointmentTypeID)
		argCount++
	}

	if filter.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("p.is_active = $%d", argCount))
		args = append(args, *filter.IsActive)
		argCount++
	}

	query := baseQuery
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY p.last_name, p.first_name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying psychologists: %w", err)
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

func (r *PsychologistRepo) AddSpecialization(ctx context.Context, psychologistID, specializationID int64) error {
	query := `
		INSERT INTO psychologist_specializations (psychologist_id, specialization_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (psychologist_id, specialization_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, psychologistID, specializationID, time.Now())
	if err != nil {
		return fmt.Errorf("adding specialization: %w", err)
	}

	return nil
}

func (r *PsychologistRepo) RemoveSpecialization(ctx context.Context, psychologistID, specializationID int64) error {
	query := `
		DELETE FROM psychologist_specializations
		WHERE psychologist_id = $1 AND specialization_id = $2
	`

	_, err := r.db.Exec(ctx, query, psychologistID, specializationID)
	if err != nil {
		return fmt.Errorf("removing specialization: %w", err)
	}

	return nil
}

func (r *PsychologistRepo) AddAppointmentType(ctx context.Context, psychologistID, appointmentTypeID int64) error {
	query := `
		INSERT INTO psychologist_appointment_types (psychologist_id, appointment_type_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (psychologist_id, appointment_type_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, psychologistID, appointmentTypeID, time.Now())
	if err != nil {
		return fmt.Errorf("adding appointment type: %w", err)
	}

	return nil
}

func (r *PsychologistRepo) RemoveAppointmentType(ctx context.Context, psychologistID, appointmentTypeID int64) error {
	query := `
		DELETE FROM psychologist_appointment_types
		WHERE psychologist_id = $1 AND appointment_type_id = $2
	`

	_, err := r.db.Exec(ctx, query, psychologistID, appointmentTypeID)
	if err != nil {
		return fmt.Errorf("removing appointment type: %w", err)
	}

	return nil
}

func (r *PsychologistRepo) HasSpecialization(ctx context.Context, psychologistID, specializationID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM psychologist_specializations
			WHERE psychologist_id = $1 AND specialization_id = $2
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, psychologistID, specializationID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking specialization capability: %w", err)
	}

	return exists, nil
}

func (r *PsychologistRepo) SupportsAppointmentType(ctx context.Context, psychologistID, appointmentTypeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM psychologist_appointment_types
			WHERE psychologist_id = $1 AND appointment_type_id = $2
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, psychologistID, appointmentTypeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking appointment type capability: %w", err)
	}

	return exists, nil
}

func (r *PsychologistRepo) GetSpecializations(ctx context.Context, psychologistID int64) ([]domain.Specialization, error) {
	query := `
		SELECT s.id, s.name, s.description, s.created_at, s.updated_at
		FROM specializations s
		JOIN psychologist_specializations ps ON s.id = ps.specialization_id
		WHERE ps.psychologist_id = $1
		ORDER BY s.name
	`

	rows, err := r.db.Query(ctx, query, psychologistID)
	if err != nil {
		return nil, fmt.Errorf("querying psychologist specializations: %w", err)
	}
	defer rows.Close()

	specializations := make([]domain.Specialization, 0)
	for rows.Next() {
		var spec domain.Specialization
		if err := rows.Scan(
			&spec.ID,
			&spec.Name,
			&spec.Description,
			&spec.CreatedAt,
			&spec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning specialization row: %w", err)
		}
		specializations = append(specializations, spec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating specialization rows: %w", err)
	}

	return specializations, nil
}

func (r *PsychologistRepo) GetAppointmentTypes(ctx context.Context, psychologistID int64) ([]domain.AppointmentType, error) {
	query := `
		SELECT at.id, at.name, at.code, at.description, at.is_active, at.created_at, at.updated_at
		FROM appointment_types at
		JOIN psychologist_appointment_types pat ON at.id = pat.appointment_type_id
		WHERE pat.psychologist_id = $1
		ORDER BY at.name
	`

	rows, err := r.db.Query(ctx, query, psychologistID)
	if err != nil {
		return nil, fmt.Errorf("querying psychologist appointment types: %w", err)
	}
	defer rows.Close()

	types := make([]domain.AppointmentType, 0)
	for rows.Next() {
		var at domain.AppointmentType
		if err := rows.Scan(
			&at.ID,
			&at.Name,
			&at.Code,
			&at.Description,
			&at.IsActive,
			&at.CreatedAt,
			&at.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning appointment type row: %w", err)
		}
		types = append(types, at)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating appointment type rows: %w", err)
	}

	return types, nil
}

func scanPsychologist(row pgx.Row) (*domain.Psychologist, error) {
	var p domain.Psychologist
	err := row.Scan(
		&p.ID,
		&p.Email,
		&p.FirstName,
		&p.LastName,
		&p.Phone,
		&p.LicenseNumber,
		&p.PhotoURL,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
