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

type SpecializationRepo struct {
	db DB
}

func NewSpecializationRepository(db DB) *SpecializationRepo {
	return &SpecializationRepo{
		db: db,
	}
}

func (r *SpecializationRepo) Create(ctx context.Context, dto domain.CreateSpecializationDTO) (int64, error) {
	query := `
		INSERT INTO specializations (name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, dto.Name, dto.Description, time.Now()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting specialization: %w", err)
	}

	return id, nil
}

func (r *SpecializationRepo) GetByID(ctx context.Context, id int64) (*domain.Specialization, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM specializations
		WHERE id = $1
	`

	spec, err := scanSpecialization(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("specialization not found")
		}
		return nil, fmt.Errorf("getting specialization: %w", err)
	}

	return spec, nil
}

func (r *SpecializationRepo) GetByName(ctx context.Context, name string) (*domain.Specialization, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM specializations
		WHERE name = $1
	`

	spec, err := scanSpecialization(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("specialization not found")
		}
		return nil, fmt.Errorf("getting specialization by name: %w", err)
	}

	return spec, nil
}

func (r *SpecializationRepo) Update(ctx context.Context, id int64, dto domain.UpdateSpecializationDTO) error {
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

	if len(updateFields) == 0 {
		return nil
	}

	updateFields = append(updateFields, fmt.Sprintf("updated_at = $%d", argCount))
	args = append(args, time.Now())
	argCount++

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE specializations
		SET %s
		WHERE id = $%d
	`, strings.Join(updateFields, ", "), argCount)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating specialization: %w", err)
	}

	return nil
}

func (r *SpecializationRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM specializations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting specialization: %w", err)
	}

	return nil
}

func (r *SpecializationRepo) List(ctx context.Context) ([]domain.Specialization, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM specializations
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying specializations: %w", err)
	}
	defer rows.Close()

	specializations := make([]domain.Specialization, 0)
	for rows.Next() {
		spec, err := scanSpecialization(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning specialization row: %w", err)
		}
		specializations = append(specializations, *spec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating specialization rows: %w", err)
	}

	return specializations, nil
}

func scanSpecialization(row pgx.Row) (*domain.Specialization, error) {
	var spec domain.Specialization
	err := row.Scan(
		&spec.ID,
		&spec.Name,
		&spec.Description,
		&spec.CreatedAt,
		&spec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
