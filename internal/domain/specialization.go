package domain

import (
	"time"
)

type Specialization struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateSpecializationDTO struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type UpdateSpecializationDTO struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}
