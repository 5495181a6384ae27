package service

import (
	"context"

	"go.uber.org/zap"

	"psybook/internal/domain"
	"psybook/internal/repository"
	"psybook/internal/storage"
	"psybook/pkg/validator"
)

type PsychologistServiceImpl struct {
	repo                repository.PsychologistRepository
	specializationRepo  repository.SpecializationRepository
	appointmentTypeRepo repository.AppointmentTypeRepository
	fileStorage         storage.FileStorage
	logger              *zap.Logger
}

func NewPsychologistService(
	repo repository.PsychologistRepository,
	specializationRepo repository.SpecializationRepository,
	appointmentTypeRepo repository.AppointmentTypeRepository,
	fileStorage storage.FileStorage,
	logger *zap.Logger,
) *PsychologistServiceImpl {
	return &PsychologistServiceImpl{
		repo:                repo,
		specializationRepo:  specializationRepo,
		appointmentTypeRepo: appointmentTypeRepo,
		fileStorage:         fileStorage,
		logger:              logger,
	}
}

func (s *PsychologistServiceImpl) Create(ctx context.Context, dto domain.CreatePsychologistDTO) (int64, error) {
	if !validator.ValidateEmail(dto.Email) {
		return 0, domain.NewBadRequest("invalid email format")
	}

	if dto.Phone != nil && *dto.Phone != "" {
		if !validator.ValidatePhone(*dto.Phone) {
			return 0, domain.NewBadRequest("invalid phone format")
		}
		formatted := validator.FormatPhone(*dto.Phone)
		dto.Phone = &formatted
	}

	existing, err := s.repo.GetByEmail(ctx, dto.Email)
	if err != nil && !domain.IsNotFound(err) {
		s.logger.Error("checking psychologist email", zap.String("email", dto.Email), zap.Error(err))
		return 0, err
	}
	if existing != nil {
		return 0, domain.NewConflict("psychologist with this email already exists")
	}

	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("creating psychologist", zap.Error(err))
		return 0, err
	}

	s.logger.Info("psychologist created", zap.Int64("id", id), zap.String("email", dto.Email))

	return id, nil
}

// GetByID returns the psychologist together with their capability sets.
func (s *PsychologistServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Psychologist, error) {
	psychologist, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	specializations, err := s.repo.GetSpecializations(ctx, id)
	if err != nil {
		s.logger.Error("getting psychologist specializations", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	psychologist.Specializations = specializations

	appointmentTypes, err := s.repo.GetAppointmentTypes(ctx, id)
	if err != nil {
		s.logger.Error("getting psychologist appointment types", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	psychologist.AppointmentTypes = appointmentTypes

	return psychologist, nil
}

func (s *PsychologistServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdatePsychologistDTO) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if dto.Email != nil {
		if !validator.ValidateEmail(*dto.Email) {
			return domain.NewBadRequest("invalid email format")
		}

		existing, err := s.repo.GetByEmail(ctx, *dto.Email)
		if err != nil && !domain.IsNotFound(err) {
			s.logger.Error("checking psychologist email", zap.String("email", *dto.Email), zap.Error(err))
			return err
		}
		if existing != nil && existing.ID != id {
			return domain.NewConflict("psychologist with this email already exists")
		}
	}

	if dto.Phone != nil && *dto.Phone != "" {
		if !validator.ValidatePhone(*dto.Phone) {
			return domain.NewBadRequest("invalid phone format")
		}
		formatted := validator.FormatPhone(*dto.Phone)
		dto.Phone = &formatted
	}

	if err := s.repo.Update(ctx, id, dto); err != nil {
		s.logger.Error("updating psychologist", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return nil
}

func (s *PsychologistServiceImpl) Delete(ctx context.Context, id int64) error {
	psychologist, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if psychologist.PhotoURL != nil && s.fileStorage != nil {
		if err := s.fileStorage.DeleteFile(ctx, *psychologist.PhotoURL); err != nil {
			// A dangling object is preferable to a blocked delete.
			s.logger.Warn("deleting psychologist photo", zap.Int64("id", id), zap.Error(err))
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("deleting psychologist", zap.Int64("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("psychologist deleted", zap.Int64("id", id))

	return nil
}

// ListByCapability filters psychologists by what they offer. Absent filter
// fields are ignored, so an empty filter lists everyone.
func (s *PsychologistServiceImpl) ListByCapability(ctx context.Context, filter domain.PsychologistFilter) ([]domain.Psychologist, error) {
	return s.repo.List(ctx, filter)
}

func (s *PsychologistServiceImpl) AddSpecialization(ctx context.Context, psychologistID, specializationID int64) error {
	if _, err := s.repo.GetByID(ctx, psychologistID); err != nil {
		return err
	}
	if _, err := s.specializationRepo.GetByID(ctx, specializationID); err != nil {
		return err
	}

	if err := s.repo.AddSpecialization(ctx, psychologistID, specializationID); err != nil {
		s.logger.Error("adding specialization", zap.Int64("psychologistID", psychologistID), zap.Int64("specializationID", specializationID), zap.Error(err))
		return err
	}

	return nil
}

func (s *PsychologistServiceImpl) RemoveSpecialization(ctx context.Context, psychologistID, specializationID int64) error {
	if _, err := s.repo.GetByID(ctx, psychologistID); err != nil {
		return err
	}

	if err := s.repo.RemoveSpecialization(ctx, psychologistID, specializationID); err != nil {
		s.logger.Error("removing specialization", zap.Int64("psychologistID", psychologistID), zap.Int64("specializationID", specializationID), zap.Error(err))
		return err
	}

	return nil
}

func (s *PsychologistServiceImpl) AddAppointmentType(ctx context.Context, psychologistID, appointmentTypeID int64) error {
	if _, err := s.repo.GetByID(ctx, psychologistID); err != nil {
		return err
	}
	if _, err := s.appointmentTypeRepo.GetActiveByID(ctx, appointmentTypeID); err != nil {
		return err
	}

	if err := s.repo.AddAppointmentType(ctx, psychologistID, appointmentTypeID); err != nil {
		s.logger.Error("adding appointment type", zap.Int64("psychologistID", psychologistID), zap.Int64("appointmentTypeID", appointmentTypeID), zap.Error(err))
		return err
	}

	return nil
}

func (s *PsychologistServiceImpl) RemoveAppointmentType(ctx context.Context, psychologistID, appointmentTypeID int64) error {
	if _, err := s.repo.GetByID(ctx, psychologistID); err != nil {
		return err
	}

	if err := s.repo.RemoveAppointmentType(ctx, psychologistID, appointmentTypeID); err != nil {
		s.logger.Error("removing appointment type", zap.Int64("psychologistID", psychologistID), zap.Int64("appointmentTypeID", appointmentTypeID), zap.Error(err))
		return err
	}

	return nil
}

func (s *PsychologistServiceImpl) HasSpecialization(ctx context.Context, psychologistID, specializationID int64) (bool, error) {
	return s.repo.HasSpecialization(ctx, psychologistID, specializationID)
}

func (s *PsychologistServiceImpl) SupportsAppointmentType(ctx context.Context, psychologistID, appointmentTypeID int64) (bool, error) {
	return s.repo.SupportsAppointmentType(ctx, psychologistID, appointmentTypeID)
}

func (s *PsychologistServiceImpl) UploadPhoto(ctx context.Context, psychologistID int64, photo []byte, filename string) (string, error) {
	psychologist, err := s.repo.GetByID(ctx, psychologistID)
	if err != nil {
		return "", err
	}

	if s.fileStorage == nil {
		return "", domain.NewBadRequest("file storage is not configured")
	}

	url, err := s.fileStorage.UploadFile(ctx, photo, filename)
	if err != nil {
		s.logger.Error("uploading psychologist photo", zap.Int64("id", psychologistID), zap.Error(err))
		return "", domain.NewBadRequest("failed to upload photo")
	}

	if psychologist.PhotoURL != nil {
		if err := s.fileStorage.DeleteFile(ctx, *psychologist.PhotoURL); err != nil {
			s.logger.Warn("deleting previous psychologist photo", zap.Int64("id", psychologistID), zap.Error(err))
		}
	}

	if err := s.repo.UpdatePhoto(ctx, psychologistID, &url); err != nil {
		s.logger.Error("saving psychologist photo URL", zap.Int64("id", psychologistID), zap.Error(err))
		return "", err
	}

	return url, nil
}

func (s *PsychologistServiceImpl) DeletePhoto(ctx context.Context, psychologistID int64) error {
	psychologist, err := s.repo.GetByID(ctx, psychologistID)
	if err != nil {
		return err
	}

	if psychologist.PhotoURL == nil {
		return nil
	}

	if s.fileStorage != nil {
		if err := s.fileStorage.DeleteFile(ctx, *psychologist.PhotoURL); err != nil {
			s.logger.Warn("deleting psychologist photo", zap.Int64("id", psychologistID), zap.Error(err))
		}
	}

	if err := s.repo.UpdatePhoto(ctx, psychologistID, nil); err != nil {
		s.logger.Error("clearing psychologist photo URL", zap.Int64("id", psychologistID), zap.Error(err))
		return err
	}

	return nil
}
