package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Abdudhi100/dr-olaosebikan/internal/delivery/dto"
	"github.com/Abdudhi100/dr-olaosebikan/internal/delivery/http/middleware"
	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/entity"
	"github.com/Abdudhi100/dr-olaosebikan/internal/usecase"
	"github.com/Abdudhi100/dr-olaosebikan/pkg/response"
	"github.com/Abdudhi100/dr-olaosebikan/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// AppointmentHandler is the doctor's side of appointment management
type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	appointments, err := h.appointmentUsecase.GetDoctorAppointments(r.Context(), doctorID, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// UpdateStatus moves an appointment along its lifecycle. Illegal transitions
// (e.g. reopening a cancelled appointment) are rejected with 422.
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateStatus(r.Context(), appointmentID, doctorID, entity.AppointmentStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, usecase.ErrUnknownStatus):
			response.Error(w, http.StatusBadRequest, "Unknown appointment status", nil)
		case errors.Is(err, usecase.ErrInvalidTransition):
			response.Error(w, http.StatusUnprocessableEntity, "Illegal status transition", nil)
		case errors.Is(err, usecase.ErrSlotUnavailable):
			response.Error(w, http.StatusConflict, "Appointment is being modified, please retry", nil)
		default:
			response.InternalServerError(w, "Failed to update appointment status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", appointment)
}
