package service

import (
	"context"

	"go.uber.org/zap"

	"psybook/internal/domain"
	"psybook/internal/repository"
)

type AppointmentTypeServiceImpl struct {
	repo   repository.AppointmentTypeRepository
	logger *zap.Logger
}

func NewAppointmentTypeService(repo repository.AppointmentTypeRepository, logger *zap.Logger) *AppointmentTypeServiceImpl {
	return &AppointmentTypeServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *AppointmentTypeServiceImpl) Create(ctx context.Context, dto domain.CreateAppointmentTypeDTO) (int64, error) {
	// The code must be one the field-requirement policy knows about; a type
	// with an unknown code would make every slot validation fail later.
	if _, err := dto.Code.Requirements(); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("creating appointment type", zap.String("code", string(dto.Code)), zap.Error(err))
		return 0, err
	}

	s.logger.Info("appointment type created", zap.Int64("id", id), zap.String("code", string(dto.Code)))

	return id, nil
}

func (s *AppointmentTypeServiceImpl) GetByID(ctx context.Context, id int64) (*domain.AppointmentType, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AppointmentTypeServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateAppointmentTypeDTO) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, dto); err != nil {
		s.logger.Error("updating appointment type", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return nil
}

// Deactivate withdraws the type from new slots and bookings. Existing rows
// keep their reference.
func (s *AppointmentTypeServiceImpl) Deactivate(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		s.logger.Error("deactivating appointment type", zap.Int64("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("appointment type deactivated", zap.Int64("id", id))

	return nil
}

func (s *AppointmentTypeServiceImpl) List(ctx context.Context, includeInactive bool) ([]domain.AppointmentType, error) {
	return s.repo.List(ctx, includeInactive)
}

// RequirementsFor exposes the field-requirement policy of a type so clients
// can shape their forms before submitting a slot or booking.
func (s *AppointmentTypeServiceImpl) RequirementsFor(ctx context.Context, id int64) (domain.FieldRequirement, error) {
	appointmentType, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.FieldRequirement{}, err
	}

	return appointmentType.Code.Requirements()
}

func (s *AppointmentTypeServiceImpl) PsychologistsByType(ctx context.Context, id int64) ([]domain.Psychologist, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	return s.repo.PsychologistsByType(ctx, id)
}
