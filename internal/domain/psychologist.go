package domain

import (
	"time"
)

type Psychologist struct {
	ID               int64             `json:"id"`
	Email            string            `json:"email"`
	FirstName        string            `json:"first_name"`
	LastName         string            `json:"last_name"`
	Phone            *string           `json:"phone"`
	LicenseNumber    *string           `json:"license_number"`
	PhotoURL         *string           `json:"photo_url"`
	IsActive         bool              `json:"is_active"`
	Specializations  []Specialization  `json:"specializations,omitempty"`
	AppointmentTypes []AppointmentType `json:"appointment_types,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

type CreatePsychologistDTO struct {
	Email         string  `json:"email" binding:"required,email"`
	FirstName     string  `json:"first_name" binding:"required"`
	LastName      string  `json:"last_name" binding:"required"`
	Phone         *string `json:"phone"`
	LicenseNumber *string `json:"license_number"`
	IsActive      *bool   `json:"is_active"`
}

type UpdatePsychologistDTO struct {
	Email         *string `json:"email,omitempty" binding:"omitempty,email"`
	FirstName     *string `json:"first_name,omitempty"`
	LastName      *string `json:"last_name,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	LicenseNumber *string `json:"license_number,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

// PsychologistFilter is a combinatorial AND filter; nil fields are ignored.
type PsychologistFilter struct {
	AppointmentTypeID *int64 `json:"appointment_type_id"`
	SpecializationID  *int64 `json:"specialization_id"`
	IsActive          *bool  `json:"is_active"`
}
