package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"psybook/internal/domain"
	"psybook/internal/repository"
)

type BookingServiceImpl struct {
	repo                repository.BookingRepository
	timeSlotRepo        repository.TimeSlotRepository
	psychologistRepo    repository.PsychologistRepository
	appointmentTypeRepo repository.AppointmentTypeRepository
	logger              *zap.Logger
}

func NewBookingService(
	repo repository.BookingRepository,
	timeSlotRepo repository.TimeSlotRepository,
	psychologistRepo repository.PsychologistRepository,
	appointmentTypeRepo repository.AppointmentTypeRepository,
	logger *zap.Logger,
) *BookingServiceImpl {
	return &BookingServiceImpl{
		repo:                repo,
		timeSlotRepo:        timeSlotRepo,
		psychologistRepo:    psychologistRepo,
		appointmentTypeRepo: appointmentTypeRepo,
		logger:              logger,
	}
}

// Create validates the draft against the target slot and persists it. The
// checks run in a fixed order and the first failure wins; the storage layer
// repeats the exclusivity check atomically, so a stale read here can only
// produce a clean rejection, never a double booking.
func (s *BookingServiceImpl) Create(ctx context.Context, dto domain.CreateBookingDTO) (*domain.Booking, error) {
	slot, err := s.timeSlotRepo.GetByID(ctx, dto.TimeSlotID)
	if err != nil {
		s.logger.Warn("time slot lookup failed while creating booking", zap.Int64("timeSlotID", dto.TimeSlotID), zap.Error(err))
		return nil, err
	}

	if !slot.IsAvailable {
		return nil, domain.NewBadRequest("time slot is not available")
	}

	if dto.AppointmentTypeID != slot.AppointmentTypeID {
		slotType, err := s.appointmentTypeRepo.GetByID(ctx, slot.AppointmentTypeID)
		if err != nil {
			s.logger.Error("appointment type lookup failed while creating booking", zap.Int64("appointmentTypeID", slot.AppointmentTypeID), zap.Error(err))
			return nil, err
		}
		return nil, domain.NewBadRequest(fmt.Sprintf("appointment type mismatch: time slot is for appointment type %q", slotType.Name))
	}

	// Explicit exclusivity check on top of the availability flag: the flag
	// and the presence of a live booking can drift, and both must block.
	existing, err := s.repo.GetActiveByTimeSlot(ctx, dto.TimeSlotID)
	if err != nil && !domain.IsNotFound(err) {
		s.logger.Error("active booking lookup failed while creating booking", zap.Int64("timeSlotID", dto.TimeSlotID), zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewBadRequest("time slot is already booked")
	}

	hasSpecialization, err := s.psychologistRepo.HasSpecialization(ctx, slot.PsychologistID, dto.SpecializationID)
	if err != nil {
		s.logger.Error("specialization check failed while creating booking", zap.Int64("psychologistID", slot.PsychologistID), zap.Error(err))
		return nil, err
	}
	if !hasSpecialization {
		return nil, domain.NewBadRequest("psychologist does not have the requested specialization")
	}

	if err := s.checkClientAddress(ctx, slot.AppointmentTypeID, dto.ClientAddress); err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Warn("booking create rejected by storage", zap.Int64("timeSlotID", dto.TimeSlotID), zap.Error(err))
		return nil, err
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("fetching booking after create", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("booking created",
		zap.Int64("id", booking.ID),
		zap.Int64("timeSlotID", booking.TimeSlotID),
		zap.String("clientEmail", booking.ClientEmail),
	)

	return booking, nil
}

// checkClientAddress enforces the at-home requirement: the booking itself must
// carry the client's address, not just the slot.
func (s *BookingServiceImpl) checkClientAddress(ctx context.Context, appointmentTypeID int64, clientAddress *string) error {
	appointmentType, err := s.appointmentTypeRepo.GetByID(ctx, appointmentTypeID)
	if err != nil {
		s.logger.Error("appointment type lookup failed during address check", zap.Int64("appointmentTypeID", appointmentTypeID), zap.Error(err))
		return err
	}

	req, err := appointmentType.Code.Requirements()
	if err != nil {
		return err
	}

	if req.ClientAddress && (clientAddress == nil || *clientAddress == "") {
		return domain.NewBadRequest("client address is required for at-home appointments")
	}

	return nil
}

func (s *BookingServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.repo.GetByID(ctx, id)
}

// Update patches booking fields. When the patch moves the booking to another
// slot or changes its appointment type, the type-match rule is re-validated
// against the resulting pair; capability and field-completeness are checked
// at creation only.
func (s *BookingServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateBookingDTO) (*domain.Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.TimeSlotID != nil || dto.AppointmentTypeID != nil {
		slotID := booking.TimeSlotID
		if dto.TimeSlotID != nil {
			slotID = *dto.TimeSlotID
		}

		typeID := booking.AppointmentTypeID
		if dto.AppointmentTypeID != nil {
			typeID = *dto.AppointmentTypeID
		}

		slot, err := s.timeSlotRepo.GetByID(ctx, slotID)
		if err != nil {
			return nil, err
		}

		if typeID != slot.AppointmentTypeID {
			slotType, err := s.appointmentTypeRepo.GetByID(ctx, slot.AppointmentTypeID)
			if err != nil {
				return nil, err
			}
			return nil, domain.NewBadRequest(fmt.Sprintf("appointment type mismatch: time slot is for appointment type %q", slotType.Name))
		}
	}

	if err := s.repo.Update(ctx, id, dto); err != nil {
		s.logger.Error("updating booking", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

// UpdateStatus is the administrative escape hatch: it sets the status field
// directly and never touches the slot's availability. Releasing a slot goes
// through Cancel or Remove.
func (s *BookingServiceImpl) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error("updating booking status", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("booking status updated", zap.Int64("id", id), zap.String("status", string(status)))

	return s.repo.GetByID(ctx, id)
}

// Cancel marks the booking cancelled and releases its slot in one
// transaction.
func (s *BookingServiceImpl) Cancel(ctx context.Context, id int64) (*domain.Booking, error) {
	if err := s.repo.Cancel(ctx, id); err != nil {
		s.logger.Warn("cancelling booking", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("booking cancelled", zap.Int64("id", id))

	return s.repo.GetByID(ctx, id)
}

// Remove deletes the booking row and releases its slot. Removing a booking
// that does not exist is a no-op.
func (s *BookingServiceImpl) Remove(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("removing booking", zap.Int64("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("booking removed", zap.Int64("id", id))

	return nil
}

func (s *BookingServiceImpl) List(ctx context.Context) ([]domain.Booking, error) {
	return s.repo.List(ctx)
}

func (s *BookingServiceImpl) FindByClientEmail(ctx context.Context, clientEmail string) ([]domain.Booking, error) {
	return s.repo.FindByClientEmail(ctx, clientEmail)
}

func (s *BookingServiceImpl) FindByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error) {
	return s.repo.FindByStatus(ctx, status)
}

// FindByTimeSlot returns the latest booking for the slot regardless of its
// status.
func (s *BookingServiceImpl) FindByTimeSlot(ctx context.Context, timeSlotID int64) (*domain.Booking, error) {
	return s.repo.GetByTimeSlot(ctx, timeSlotID)
}
