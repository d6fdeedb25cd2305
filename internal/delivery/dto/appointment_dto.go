package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

// Response DTOs

type AppointmentResponse struct {
	ID           uuid.UUID `json:"id"`
	ServiceID    uuid.UUID `json:"service_id"`
	ServiceName  string    `json:"service_name,omitempty"`
	Date         string    `json:"date,omitempty"`
	StartTime    string    `json:"start_time,omitempty"`
	EndTime      string    `json:"end_time,omitempty"`
	PatientName  string    `json:"patient_name"`
	PatientEmail string    `json:"patient_email"`
	PatientPhone string    `json:"patient_phone,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	Status       string    `json:"status"`
	WhatsAppLink string    `json:"whatsapp_link,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int64                 `json:"total"`
}
