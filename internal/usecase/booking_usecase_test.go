package usecase

import (
	"context"
	"testing"

	"github.com/Abdudhi100/dr-olaosebikan/internal/delivery/http/middleware"
	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCancelTestDeps(patientID uuid.UUID, statusReads ...entity.AppointmentStatus) (*scriptedAppointmentRepo, *stubAvailabilityRepo, *countingAuditService) {
	appointments, slots, audit := newStatusTestDeps(statusReads...)
	appointments.appointment.PatientID = &patientID
	return appointments, slots, audit
}

func patientContext(patientID uuid.UUID) context.Context {
	return context.WithValue(context.Background(), middleware.UserIDKey, patientID)
}

func newCancelUsecase(t *testing.T, appointments *scriptedAppointmentRepo, slots *stubAvailabilityRepo, audit *countingAuditService) BookingUsecase {
	t.Helper()
	return NewBookingUsecase(openBareDB(t), discardLog(),
		nil, nil, nil, slots, appointments, nil, audit, nil, nil)
}

func TestCancelMyAppointment_ReleasesSlot(t *testing.T) {
	patientID := uuid.New()
	appointments, slots, audit := newCancelTestDeps(patientID,
		entity.AppointmentStatusPending,
		entity.AppointmentStatusPending,
		entity.AppointmentStatusCancelled,
	)
	uc := newCancelUsecase(t, appointments, slots, audit)

	resp, err := uc.CancelMyAppointment(patientContext(patientID), appointments.appointment.ID)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, []entity.AppointmentStatus{entity.AppointmentStatusCancelled}, appointments.updated)
	assert.Equal(t, []bool{true}, slots.flagCalls)
	assert.Equal(t, 1, audit.entries)
	assert.Equal(t, string(entity.AppointmentStatusCancelled), resp.Status)
}

// Same race as the doctor-side status update: a writer that commits between
// the first read and the slot lock must not be overwritten from a stale
// snapshot. A cancel racing a completion loses cleanly.
func TestCancelMyAppointment_RevalidatesUnderLock(t *testing.T) {
	patientID := uuid.New()
	appointments, slots, audit := newCancelTestDeps(patientID,
		entity.AppointmentStatusConfirmed,
		entity.AppointmentStatusCompleted,
	)
	uc := newCancelUsecase(t, appointments, slots, audit)

	_, err := uc.CancelMyAppointment(patientContext(patientID), appointments.appointment.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	assert.Empty(t, appointments.updated)
	assert.Empty(t, slots.flagCalls)
	assert.Zero(t, audit.entries)
}

func TestCancelMyAppointment_RejectsForeignAppointment(t *testing.T) {
	owner := uuid.New()
	appointments, slots, audit := newCancelTestDeps(owner, entity.AppointmentStatusPending)
	uc := newCancelUsecase(t, appointments, slots, audit)

	_, err := uc.CancelMyAppointment(patientContext(uuid.New()), appointments.appointment.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.Empty(t, appointments.updated)
}

func TestCancelMyAppointment_AlreadyCancelled(t *testing.T) {
	patientID := uuid.New()
	appointments, slots, audit := newCancelTestDeps(patientID, entity.AppointmentStatusCancelled)
	uc := newCancelUsecase(t, appointments, slots, audit)

	_, err := uc.CancelMyAppointment(patientContext(patientID), appointments.appointment.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, slots.flagCalls)
}
