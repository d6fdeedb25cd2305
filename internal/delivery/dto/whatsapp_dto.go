package dto

// Request DTOs

type WhatsAppContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Phone   string `json:"phone" validate:"required,min=7,max=20"`
	Message string `json:"message" validate:"omitempty,max=1000"`
	Purpose string `json:"purpose" validate:"omitempty,oneof=appointment follow_up general"`
}

// Response DTOs

type WhatsAppLinkResponse struct {
	Link string `json:"link"`
}
