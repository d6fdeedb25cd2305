package converter

import (
	"github.com/Abdudhi100/dr-olaosebikan/internal/delivery/dto"
	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// Service and Availability fields are filled when the relations are preloaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:           appointment.ID,
		ServiceID:    appointment.ServiceID,
		PatientName:  appointment.PatientName,
		PatientEmail: appointment.PatientEmail,
		PatientPhone: appointment.PatientPhone,
		Notes:        appointment.Notes,
		Status:       string(appointment.Status),
		CreatedAt:    appointment.CreatedAt,
		UpdatedAt:    appointment.UpdatedAt,
	}

	if appointment.Service.ID != uuid.Nil {
		response.ServiceName = appointment.Service.Name
	}
	if appointment.Availability.ID != 0 {
		response.Date = appointment.Availability.DateString()
		response.StartTime = appointment.Availability.StartTime
		response.EndTime = appointment.Availability.EndTime
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
