package service

import (
	"context"

	"go.uber.org/zap"

	"psybook/config"
	"psybook/internal/domain"
	"psybook/internal/repository"
	"psybook/internal/storage"
)

type Deps struct {
	Repos       *repository.Repositories
	Logger      *zap.Logger
	Config      *config.Config
	FileStorage storage.FileStorage
}

type Services struct {
	Psychologist    PsychologistService
	Specialization  SpecializationService
	AppointmentType AppointmentTypeService
	TimeSlot        TimeSlotService
	Booking         BookingService
}

func NewServices(deps Deps) *Services {
	return &Services{
		Psychologist:    NewPsychologistService(deps.Repos.Psychologist, deps.Repos.Specialization, deps.Repos.AppointmentType, deps.FileStorage, deps.Logger),
		Specialization:  NewSpecializationService(deps.Repos.Specialization, deps.Logger),
		AppointmentType: NewAppointmentTypeService(deps.Repos.AppointmentType, deps.Logger),
		TimeSlot:        NewTimeSlotService(deps.Repos.TimeSlot, deps.Repos.AppointmentType, deps.Repos.Booking, deps.Logger),
		Booking:         NewBookingService(deps.Repos.Booking, deps.Repos.TimeSlot, deps.Repos.Psychologist, deps.Repos.AppointmentType, deps.Logger),
	}
}

type PsychologistService interface {
	Create(ctx context.Context, dto domain.CreatePsychologistDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Psychologist, error)
	Update(ctx context.Context, id int64, dto domain.UpdatePsychologistDTO) error
	Delete(ctx context.Context, id int64) error
	ListByCapability(ctx context.Context, filter domain.PsychologistFilter) ([]domain.Psychologist, error)

	AddSpecialization(ctx context.Context, psychologistID, specializationID int64) error
	RemoveSpecialization(ctx context.Context, psychologistID, specializationID int64) error
	AddAppointmentType(ctx context.Context, psychologistID, appointmentTypeID int64) error
	RemoveAppointmentType(ctx context.Context, psychologistID, appointmentTypeID int64) error
	HasSpecialization(ctx context.Context, psychologistID, specializationID int64) (bool, error)
	SupportsAppointmentType(ctx context.Context, psychologistID, appointmentTypeID int64) (bool, error)

	UploadPhoto(ctx context.Context, psychologistID int64, photo []byte, filename string) (string, error)
	DeletePhoto(ctx context.Context, psychologistID int64) error
}

type SpecializationService interface {
	Create(ctx context.Context, dto domain.CreateSpecializationDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Specialization, error)
	Update(ctx context.Context, id int64, dto domain.UpdateSpecializationDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Specialization, error)
}

type AppointmentTypeService interface {
	Create(ctx context.Context, dto domain.CreateAppointmentTypeDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.AppointmentType, error)
	Update(ctx context.Context, id int64, dto domain.UpdateAppointmentTypeDTO) error
	Deactivate(ctx context.Context, id int64) error
	List(ctx context.Context, includeInactive bool) ([]domain.AppointmentType, error)
	RequirementsFor(ctx context.Context, id int64) (domain.FieldRequirement, error)
	PsychologistsByType(ctx context.Context, id int64) ([]domain.Psychologist, error)
}

type TimeSlotService interface {
	Create(ctx context.Context, dto domain.CreateTimeSlotDTO) (*domain.TimeSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	Update(ctx context.Context, id int64, dto domain.UpdateTimeSlotDTO) (*domain.TimeSlot, error)
	Delete(ctx context.Context, id int64) error
	MarkAvailable(ctx context.Context, id int64) (*domain.TimeSlot, error)
	MarkUnavailable(ctx context.Context, id int64) (*domain.TimeSlot, error)
	FindWithFilters(ctx context.Context, filter domain.TimeSlotFilter) ([]domain.TimeSlot, error)
	FindBookable(ctx context.Context, filter domain.TimeSlotFilter) ([]domain.TimeSlot, error)
}

type BookingService interface {
	Create(ctx context.Context, dto domain.CreateBookingDTO) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, id int64, dto domain.UpdateBookingDTO) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)
	Cancel(ctx context.Context, id int64) (*domain.Booking, error)
	Remove(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Booking, error)
	FindByClientEmail(ctx context.Context, clientEmail string) ([]domain.Booking, error)
	FindByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error)
	FindByTimeSlot(ctx context.Context, timeSlotID int64) (*domain.Booking, error)
}
