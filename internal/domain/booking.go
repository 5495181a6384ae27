package domain

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

type Booking struct {
	ID                int64         `json:"id"`
	ClientName        string        `json:"client_name"`
	ClientEmail       string        `json:"client_email"`
	ClientPhone       *string       `json:"client_phone"`
	ClientAddress     *string       `json:"client_address"`
	Notes             *string       `json:"notes"`
	Status            BookingStatus `json:"status"`
	TimeSlotID        int64         `json:"time_slot_id"`
	SpecializationID  int64         `json:"specialization_id"`
	AppointmentTypeID int64         `json:"appointment_type_id"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

type CreateBookingDTO struct {
	ClientName        string  `json:"client_name" binding:"required"`
	ClientEmail       string  `json:"client_email" binding:"required,email"`
	ClientPhone       *string `json:"client_phone"`
	ClientAddress     *string `json:"client_address"`
	Notes             *string `json:"notes"`
	TimeSlotID        int64   `json:"time_slot_id" binding:"required"`
	SpecializationID  int64   `json:"specialization_id" binding:"required"`
	AppointmentTypeID int64   `json:"appointment_type_id" binding:"required"`
}

type UpdateBookingDTO struct {
	ClientName        *string `json:"client_name,omitempty"`
	ClientEmail       *string `json:"client_email,omitempty" binding:"omitempty,email"`
	ClientPhone       *string `json:"client_phone,omitempty"`
	ClientAddress     *string `json:"client_address,omitempty"`
	Notes             *string `json:"notes,omitempty"`
	TimeSlotID        *int64  `json:"time_slot_id,omitempty"`
	SpecializationID  *int64  `json:"specialization_id,omitempty"`
	AppointmentTypeID *int64  `json:"appointment_type_id,omitempty"`
}

type UpdateBookingStatusDTO struct {
	Status BookingStatus `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}
