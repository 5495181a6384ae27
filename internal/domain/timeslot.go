package domain

import (
	"time"
)

type TimeSlot struct {
	ID                int64     `json:"id"`
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	IsAvailable       bool      `json:"is_available"`
	PsychologistID    int64     `json:"psychologist_id"`
	AppointmentTypeID int64     `json:"appointment_type_id"`
	MeetingLink       *string   `json:"meeting_link"`
	Address           *string   `json:"address"`
	Notes             *string   `json:"notes"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type CreateTimeSlotDTO struct {
	StartTime         time.Time `json:"start_time" binding:"required"`
	EndTime           time.Time `json:"end_time" binding:"required"`
	PsychologistID    int64     `json:"psychologist_id" binding:"required"`
	AppointmentTypeID int64     `json:"appointment_type_id" binding:"required"`
	MeetingLink       *string   `json:"meeting_link"`
	Address           *string   `json:"address"`
	Notes             *string   `json:"notes"`
}

type UpdateTimeSlotDTO struct {
	StartTime         *time.Time `json:"start_time,omitempty"`
	EndTime           *time.Time `json:"end_time,omitempty"`
	PsychologistID    *int64     `json:"psychologist_id,omitempty"`
	AppointmentTypeID *int64     `json:"appointment_type_id,omitempty"`
	MeetingLink       *string    `json:"meeting_link,omitempty"`
	Address           *string    `json:"address,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
}

// TimeSlotFilter is an AND filter over slots; nil fields are ignored.
// SpecializationID filters through the owning psychologist's capability set,
// not a slot-level attribute. A nil IsAvailable means the caller gets the
// available-only default applied by the service.
type TimeSlotFilter struct {
	PsychologistID    *int64     `json:"psychologist_id"`
	SpecializationID  *int64     `json:"specialization_id"`
	AppointmentTypeID *int64     `json:"appointment_type_id"`
	IsAvailable       *bool      `json:"is_available"`
	FutureOnly        bool       `json:"future_only"`
	StartDate         *time.Time `json:"start_date"`
	EndDate           *time.Time `json:"end_date"`
}
