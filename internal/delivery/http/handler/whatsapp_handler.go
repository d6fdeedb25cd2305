package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Abdudhi100/dr-olaosebikan/internal/delivery/dto"
	"github.com/Abdudhi100/dr-olaosebikan/internal/usecase"
	"github.com/Abdudhi100/dr-olaosebikan/pkg/response"
	"github.com/Abdudhi100/dr-olaosebikan/pkg/validator"
)

type WhatsAppHandler struct {
	contactUsecase usecase.ContactUsecase
	validator      *validator.CustomValidator
}

func NewWhatsAppHandler(contactUsecase usecase.ContactUsecase, validator *validator.CustomValidator) *WhatsAppHandler {
	return &WhatsAppHandler{
		contactUsecase: contactUsecase,
		validator:      validator,
	}
}

// CreateLink records the contact intent and hands back the wa.me deep link
// the frontend redirects to
func (h *WhatsAppHandler) CreateLink(w http.ResponseWriter, r *http.Request) {
	var req dto.WhatsAppContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	link, err := h.contactUsecase.CreateWhatsAppLink(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create WhatsApp link")
		return
	}

	response.Success(w, http.StatusOK, "WhatsApp link created successfully", link)
}
