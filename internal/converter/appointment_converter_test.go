package converter

import (
	"testing"
	"time"

	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentToResponse_FormatsSlotDate(t *testing.T) {
	appointment := &entity.Appointment{
		ID:          uuid.New(),
		PatientName: "Ada Obi",
		Status:      entity.AppointmentStatusPending,
		Service:     entity.Service{ID: uuid.New(), Name: "General Consultation"},
		Availability: entity.Availability{
			ID:        7,
			Date:      time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
			StartTime: "09:00",
			EndTime:   "09:30",
		},
	}

	resp := AppointmentToResponse(appointment)
	require.NotNil(t, resp)

	// The API talks in "YYYY-MM-DD", regardless of how the store hands the
	// date back
	assert.Equal(t, "2026-03-15", resp.Date)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "09:30", resp.EndTime)
	assert.Equal(t, "General Consultation", resp.ServiceName)
}

func TestAppointmentToResponse_Nil(t *testing.T) {
	assert.Nil(t, AppointmentToResponse(nil))
}
