package service

import (
	"context"

	"go.uber.org/zap"

	"psybook/internal/domain"
	"psybook/internal/repository"
)

type SpecializationServiceImpl struct {
	repo   repository.SpecializationRepository
	logger *zap.Logger
}

func NewSpecializationService(repo repository.SpecializationRepository, logger *zap.Logger) *SpecializationServiceImpl {
	return &SpecializationServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *SpecializationServiceImpl) Create(ctx context.Context, dto domain.CreateSpecializationDTO) (int64, error) {
	existing, err := s.repo.GetByName(ctx, dto.Name)
	if err != nil && !domain.IsNotFound(err) {
		s.logger.Error("checking specialization name", zap.String("name", dto.Name), zap.Error(err))
		return 0, err
	}
	if existing != nil {
		return 0, domain.NewConflict("specialization with this name already exists")
	}

	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("creating specialization", zap.Error(err))
		return 0, err
	}

	s.logger.Info("specialization created", zap.Int64("id", id), zap.String("name", dto.Name))

	return id, nil
}

func (s *SpecializationServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Specialization, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *SpecializationServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateSpecializationDTO) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if dto.Name != nil {
		existing, err := s.repo.GetByName(ctx, *dto.Name)
		if err != nil && !domain.IsNotFound(err) {
			s.logger.Error("checking specialization name", zap.String("name", *dto.Name), zap.Error(err))
			return err
		}
		if existing != nil && existing.ID != id {
			return domain.NewConflict("specialization with this name already exists")
		}
	}

	if err := s.repo.Update(ctx, id, dto); err != nil {
		s.logger.Error("updating specialization", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return nil
}

func (s *SpecializationServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("deleting specialization", zap.Int64("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("specialization deleted", zap.Int64("id", id))

	return nil
}

func (s *SpecializationServiceImpl) List(ctx context.Context) ([]domain.Specialization, error) {
	return s.repo.List(ctx)
}
