package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateServiceRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=255"`
	Description     string `json:"description" validate:"omitempty"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=1,max=480"`
	Price           string `json:"price" validate:"omitempty"`
	IsActive        *bool  `json:"is_active" validate:"omitempty"`
	Position        int    `json:"position" validate:"omitempty,min=0"`
	Icon            string `json:"icon" validate:"omitempty,max=50"`
}

type UpdateServiceRequest struct {
	Name            string  `json:"name" validate:"omitempty,min=2,max=255"`
	Description     *string `json:"description" validate:"omitempty"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,min=1,max=480"`
	Price           *string `json:"price" validate:"omitempty"`
	IsActive        *bool   `json:"is_active" validate:"omitempty"`
	Position        *int    `json:"position" validate:"omitempty,min=0"`
	Icon            *string `json:"icon" validate:"omitempty,max=50"`
}

// Response DTOs

type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           string    `json:"price"`
	IsActive        bool      `json:"is_active"`
	Position        int       `json:"position"`
	Icon            string    `json:"icon,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}
