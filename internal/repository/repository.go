package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"psybook/internal/domain"
)

// DB is the subset of pgxpool.Pool the repositories need. pgxmock satisfies
// it as well, so repository SQL can be tested without a live database.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repositories struct {
	Psychologist    PsychologistRepository
	Specialization  SpecializationRepository
	AppointmentType AppointmentTypeRepository
	TimeSlot        TimeSlotRepository
	Booking         BookingRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Psychologist:    NewPsychologistRepository(db),
		Specialization:  NewSpecializationRepository(db),
		AppointmentType: NewAppointmentTypeRepository(db),
		TimeSlot:        NewTimeSlotRepository(db),
		Booking:         NewBookingRepository(db),
	}
}

type PsychologistRepository interface {
	Create(ctx context.Context, dto domain.CreatePsychologistDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Psychologist, error)
	GetByEmail(ctx context.Context, email string) (*domain.Psychologist, error)
	Update(ctx context.Context, id int64, dto domain.UpdatePsychologistDTO) error
	UpdatePhoto(ctx context.Context, id int64, photoURL *string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.PsychologistFilter) ([]domain.Psychologist, error)

	AddSpecialization(ctx context.Context, psychologistID, specializationID int64) error
	RemoveSpecialization(ctx context.Context, psychologistID, specializationID int64) error
	AddAppointmentType(ctx context.Context, psychologistID, appointmentTypeID int64) error
	RemoveAppointmentType(ctx context.Context, psychologistID, appointmentTypeID int64) error

	HasSpecialization(ctx context.Context, psychologistID, specializationID int64) (bool, error)
	SupportsAppointmentType(ctx context.Context, psychologistID, appointmentTypeID int64) (bool, error)
	GetSpecializations(ctx context.Context, psychologistID int64) ([]domain.Specialization, error)
	GetAppointmentTypes(ctx context.Context, psychologistID int64) ([]domain.AppointmentType, error)
}

type SpecializationRepository interface {
	Create(ctx context.Context, dto domain.CreateSpecializationDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Specialization, error)
	GetByName(ctx context.Context, name string) (*domain.Specialization, error)
	Update(ctx context.Context, id int64, dto domain.UpdateSpecializationDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Specialization, error)
}

type AppointmentTypeRepository interface {
	Create(ctx context.Context, dto domain.CreateAppointmentTypeDTO) (int64, error)
	// GetByID returns the type regardless of its active flag; GetActiveByID
	// is the lookup new bookings and slots must use.
	GetByID(ctx context.Context, id int64) (*domain.AppointmentType, error)
	GetActiveByID(ctx context.Context, id int64) (*domain.AppointmentType, error)
	GetByCode(ctx context.Context, code domain.AppointmentTypeCode) (*domain.AppointmentType, error)
	Update(ctx context.Context, id int64, dto domain.UpdateAppointmentTypeDTO) error
	Deactivate(ctx context.Context, id int64) error
	List(ctx context.Context, includeInactive bool) ([]domain.AppointmentType, error)
	PsychologistsByType(ctx context.Context, appointmentTypeID int64) ([]domain.Psychologist, error)
}

type TimeSlotRepository interface {
	Create(ctx context.Context, dto domain.CreateTimeSlotDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	Update(ctx context.Context, id int64, dto domain.UpdateTimeSlotDTO) error
	Delete(ctx context.Context, id int64) error
	SetAvailability(ctx context.Context, id int64, isAvailable bool) error
	List(ctx context.Context, filter domain.TimeSlotFilter) ([]domain.TimeSlot, error)
}

type BookingRepository interface {
	// Create persists the booking and flips the slot unavailable in one
	// transaction. It returns a BadRequest error when the conditional slot
	// update affects no rows and a Conflict error when a concurrent booking
	// wins the unique index on the slot.
	Create(ctx context.Context, dto domain.CreateBookingDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByTimeSlot(ctx context.Context, timeSlotID int64) (*domain.Booking, error)
	GetActiveByTimeSlot(ctx context.Context, timeSlotID int64) (*domain.Booking, error)
	Update(ctx context.Context, id int64, dto domain.UpdateBookingDTO) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	// Cancel and Delete release the booking's slot transactionally.
	Cancel(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Booking, error)
	FindByClientEmail(ctx context.Context, clientEmail string) ([]domain.Booking, error)
	FindByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error)
}
