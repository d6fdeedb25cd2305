package dto

import "github.com/google/uuid"

// Request DTOs

// CreateAppointmentRequest books one slot. Patient contact fields are
// snapshotted onto the appointment; an account is optional.
type CreateAppointmentRequest struct {
	ServiceID    uuid.UUID `json:"service_id" validate:"required"`
	Date         string    `json:"date" validate:"required"`       // YYYY-MM-DD
	StartTime    string    `json:"start_time" validate:"required"` // HH:MM
	PatientName  string    `json:"patient_name" validate:"required,min=2,max=255"`
	PatientEmail string    `json:"patient_email" validate:"required,email"`
	PatientPhone string    `json:"patient_phone" validate:"omitempty,min=7,max=20"`
	Notes        string    `json:"notes" validate:"omitempty,max=2000"`
}
