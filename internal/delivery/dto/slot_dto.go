package dto

import "github.com/google/uuid"

// Response DTOs

// SlotResponse is one bookable window within a day
type SlotResponse struct {
	Start string `json:"start"` // HH:MM
	End   string `json:"end"`   // HH:MM
}

type SlotListResponse struct {
	ServiceID uuid.UUID      `json:"service_id"`
	Date      string         `json:"date"`
	Slots     []SlotResponse `json:"slots"`
	Total     int            `json:"total"`
}
