package domain

import (
	"fmt"
	"time"
)

// AppointmentTypeCode identifies the delivery format of a session. Codes are
// stable identifiers; display names live on the AppointmentType row.
type AppointmentTypeCode string

const (
	AppointmentTypeOnline AppointmentTypeCode = "online"
	AppointmentTypeOnSite AppointmentTypeCode = "on_site"
	AppointmentTypeAtHome AppointmentTypeCode = "at_home"
)

// FieldRequirement says which location fields a slot and its booking must
// carry for a given appointment type.
type FieldRequirement struct {
	MeetingLink   bool `json:"meeting_link"`
	Address       bool `json:"address"`
	ClientAddress bool `json:"client_address"`
}

// Requirements maps a code to the fields it demands. Unknown codes are a
// configuration error and fail loudly rather than defaulting to no
// requirements.
func (c AppointmentTypeCode) Requirements() (FieldRequirement, error) {
	switch c {
	case AppointmentTypeOnline:
		return FieldRequirement{MeetingLink: true}, nil
	case AppointmentTypeOnSite:
		return FieldRequirement{Address: true}, nil
	case AppointmentTypeAtHome:
		return FieldRequirement{Address: true, ClientAddress: true}, nil
	default:
		return FieldRequirement{}, NewBadRequest(fmt.Sprintf("unsupported appointment type code %q", string(c)))
	}
}

type AppointmentType struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Code        AppointmentTypeCode `json:"code"`
	Description *string             `json:"description"`
	IsActive    bool                `json:"is_active"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type CreateAppointmentTypeDTO struct {
	Name        string              `json:"name" binding:"required"`
	Code        AppointmentTypeCode `json:"code" binding:"required,oneof=online on_site at_home"`
	Description *string             `json:"description"`
	IsActive    *bool               `json:"is_active"`
}

type UpdateAppointmentTypeDTO struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
