package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusValid(t *testing.T) {
	assert.True(t, AppointmentStatusPending.Valid())
	assert.True(t, AppointmentStatusConfirmed.Valid())
	assert.True(t, AppointmentStatusCancelled.Valid())
	assert.True(t, AppointmentStatusCompleted.Valid())

	assert.False(t, AppointmentStatus("rescheduled").Valid())
	assert.False(t, AppointmentStatus("").Valid())
}

func TestAppointmentStatusTransitions(t *testing.T) {
	tests := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{AppointmentStatusPending, AppointmentStatusConfirmed, true},
		{AppointmentStatusPending, AppointmentStatusCancelled, true},
		{AppointmentStatusPending, AppointmentStatusCompleted, false},
		{AppointmentStatusPending, AppointmentStatusPending, false},
		{AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{AppointmentStatusConfirmed, AppointmentStatusPending, false},
		{AppointmentStatusCancelled, AppointmentStatusPending, false},
		{AppointmentStatusCancelled, AppointmentStatusConfirmed, false},
		{AppointmentStatusCompleted, AppointmentStatusCancelled, false},
	}

	for _, tc := range tests {
		got := tc.from.CanTransitionTo(tc.to)
		assert.Equal(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)
	}
}

func TestAppointmentStatusLocks(t *testing.T) {
	assert.True(t, AppointmentStatusPending.Locks())
	assert.True(t, AppointmentStatusConfirmed.Locks())
	assert.True(t, AppointmentStatusCompleted.Locks())

	// Cancellation is the only state that releases the slot
	assert.False(t, AppointmentStatusCancelled.Locks())
}

func TestAppointmentIsTerminal(t *testing.T) {
	assert.False(t, (&Appointment{Status: AppointmentStatusPending}).IsTerminal())
	assert.False(t, (&Appointment{Status: AppointmentStatusConfirmed}).IsTerminal())
	assert.True(t, (&Appointment{Status: AppointmentStatusCancelled}).IsTerminal())
	assert.True(t, (&Appointment{Status: AppointmentStatusCompleted}).IsTerminal())
}
