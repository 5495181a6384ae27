package service

import (
	"context"

	"go.uber.org/zap"

	"psybook/internal/domain"
	"psybook/internal/repository"
)

type TimeSlotServiceImpl struct {
	repo                repository.TimeSlotRepository
	appointmentTypeRepo repository.AppointmentTypeRepository
	bookingRepo         repository.BookingRepository
	logger              *zap.Logger
}

func NewTimeSlotService(
	repo repository.TimeSlotRepository,
	appointmentTypeRepo repository.AppointmentTypeRepository,
	bookingRepo repository.BookingRepository,
	logger *zap.Logger,
) *TimeSlotServiceImpl {
	return &TimeSlotServiceImpl{
		repo:                repo,
		appointmentTypeRepo: appointmentTypeRepo,
		bookingRepo:         bookingRepo,
		logger:              logger,
	}
}

func (s *TimeSlotServiceImpl) Create(ctx context.Context, dto domain.CreateTimeSlotDTO) (*domain.TimeSlot, error) {
	if !dto.StartTime.Before(dto.EndTime) {
		return nil, domain.NewBadRequest("start time must be before end time")
	}

	// Inactive types are withdrawn from new use, so the lookup is restricted
	// to active rows.
	appointmentType, err := s.appointmentTypeRepo.GetActiveByID(ctx, dto.AppointmentTypeID)
	if err != nil {
		s.logger.Warn("appointment type lookup failed while creating time slot", zap.Int64("appointmentTypeID", dto.AppointmentTypeID), zap.Error(err))
		return nil, err
	}

	if err := checkSlotFields(appointmentType.Code, dto.MeetingLink, dto.Address); err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("creating time slot", zap.Error(err))
		return nil, err
	}

	slot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("fetching time slot after create", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("time slot created",
		zap.Int64("id", slot.ID),
		zap.Int64("psychologistID", slot.PsychologistID),
		zap.Time("startTime", slot.StartTime),
	)

	return slot, nil
}

func (s *TimeSlotServiceImpl) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	return s.repo.GetByID(ctx, id)
}

// Update patches slot fields. Field-completeness is re-validated whenever the
// patch touches the appointment type, the meeting link, the address, or the
// slot times.
func (s *TimeSlotServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateTimeSlotDTO) (*domain.TimeSlot, error) {
	slot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	startTime := slot.StartTime
	if dto.StartTime != nil {
		startTime = *dto.StartTime
	}
	endTime := slot.EndTime
	if dto.EndTime != nil {
		endTime = *dto.EndTime
	}
	if !startTime.Before(endTime) {
		return nil, domain.NewBadRequest("start time must be before end time")
	}

	if dto.AppointmentTypeID != nil || dto.MeetingLink != nil || dto.Address != nil {
		typeID := slot.AppointmentTypeID
		if dto.AppointmentTypeID != nil {
			typeID = *dto.AppointmentTypeID
		}

		meetingLink := slot.MeetingLink
		if dto.MeetingLink != nil {
			meetingLink = dto.MeetingLink
		}

		address := slot.Address
		if dto.Address != nil {
			address = dto.Address
		}

		appointmentType, err := s.appointmentTypeRepo.GetActiveByID(ctx, typeID)
		if err != nil {
			return nil, err
		}

		if err := checkSlotFields(appointmentType.Code, meetingLink, address); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, id, dto); err != nil {
		s.logger.Error("updating time slot", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

// Delete refuses to remove a slot that a live booking still references;
// cancelling or removing the booking first releases the slot for deletion.
func (s *TimeSlotServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	active, err := s.bookingRepo.GetActiveByTimeSlot(ctx, id)
	if err != nil && !domain.IsNotFound(err) {
		s.logger.Error("active booking lookup failed while deleting time slot", zap.Int64("id", id), zap.Error(err))
		return err
	}
	if active != nil {
		return domain.NewConflict("time slot has an active booking")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("deleting time slot", zap.Int64("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("time slot deleted", zap.Int64("id", id))

	return nil
}

// MarkAvailable is a direct administrative toggle with no side effects on
// bookings.
func (s *TimeSlotServiceImpl) MarkAvailable(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	return s.setAvailability(ctx, id, true)
}

// MarkUnavailable is a direct administrative toggle with no side effects on
// bookings.
func (s *TimeSlotServiceImpl) MarkUnavailable(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	return s.setAvailability(ctx, id, false)
}

func (s *TimeSlotServiceImpl) setAvailability(ctx context.Context, id int64, isAvailable bool) (*domain.TimeSlot, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.SetAvailability(ctx, id, isAvailable); err != nil {
		s.logger.Error("setting time slot availability", zap.Int64("id", id), zap.Bool("isAvailable", isAvailable), zap.Error(err))
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

// FindWithFilters lists slots ordered by start time. When the caller omits
// isAvailable, the query defaults to available-only; unavailable slots are
// returned only on explicit request.
func (s *TimeSlotServiceImpl) FindWithFilters(ctx context.Context, filter domain.TimeSlotFilter) ([]domain.TimeSlot, error) {
	if filter.IsAvailable == nil {
		available := true
		filter.IsAvailable = &available
	}
	return s.repo.List(ctx, filter)
}

// FindBookable is the hot path for client-facing booking UIs: available
// future slots only, whatever the caller put in the filter.
func (s *TimeSlotServiceImpl) FindBookable(ctx context.Context, filter domain.TimeSlotFilter) ([]domain.TimeSlot, error) {
	available := true
	filter.IsAvailable = &available
	filter.FutureOnly = true
	return s.repo.List(ctx, filter)
}

// checkSlotFields enforces the appointment type's field-requirement policy on
// a slot's optional fields.
func checkSlotFields(code domain.AppointmentTypeCode, meetingLink, address *string) error {
	req, err := code.Requirements()
	if err != nil {
		return err
	}

	if req.MeetingLink && (meetingLink == nil || *meetingLink == "") {
		return domain.NewBadRequest("meeting link is required for online appointments")
	}

	if req.Address && (address == nil || *address == "") {
		return domain.NewBadRequest("address is required for on-site and at-home appointments")
	}

	return nil
}
