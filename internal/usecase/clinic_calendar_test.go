package usecase

import (
	"testing"
	"time"

	"github.com/Abdudhi100/dr-olaosebikan/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCalendar(t *testing.T) *ClinicCalendar {
	t.Helper()
	calendar, err := NewClinicCalendar(config.ClinicConfig{
		DayStart:      "09:00",
		DayEnd:        "17:00",
		LookaheadDays: 60,
		Timezone:      "UTC",
	})
	require.NoError(t, err)

	// Tuesday 2026-03-10 10:30 UTC
	return calendar.WithClock(func() time.Time {
		return time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC)
	})
}

func TestNewClinicCalendar_InvalidConfig(t *testing.T) {
	_, err := NewClinicCalendar(config.ClinicConfig{
		DayStart: "09:00",
		DayEnd:   "17:00",
		Timezone: "Mars/Olympus",
	})
	assert.Error(t, err)

	_, err = NewClinicCalendar(config.ClinicConfig{
		DayStart: "9am",
		DayEnd:   "17:00",
		Timezone: "UTC",
	})
	assert.Error(t, err)

	_, err = NewClinicCalendar(config.ClinicConfig{
		DayStart: "09:00",
		DayEnd:   "25:00",
		Timezone: "UTC",
	})
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	calendar := newTestCalendar(t)

	date, err := calendar.ParseDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2026, date.Year())
	assert.Equal(t, time.March, date.Month())
	assert.Equal(t, 15, date.Day())

	_, err = calendar.ParseDate("15-03-2026")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	_, err = calendar.ParseDate("not-a-date")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestValidateDate(t *testing.T) {
	calendar := newTestCalendar(t)
	today := calendar.Today()

	tests := []struct {
		name    string
		date    time.Time
		wantErr error
	}{
		{"today is bookable", today, nil},
		{"tomorrow is bookable", today.AddDate(0, 0, 1), nil},
		{"horizon day is bookable", today.AddDate(0, 0, 60), nil},
		{"day past horizon rejected", today.AddDate(0, 0, 61), ErrDateBeyondHorizon},
		{"yesterday rejected", today.AddDate(0, 0, -1), ErrDateInPast},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := calendar.ValidateDate(tc.date)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, ErrBookingWindow)
		})
	}
}

func TestValidateSlotNotPast(t *testing.T) {
	calendar := newTestCalendar(t)
	today := calendar.Today()
	tomorrow := today.AddDate(0, 0, 1)

	// Clock reads 10:30, so the 10:30 slot has already started
	err := calendar.ValidateSlotNotPast(today, "10:30")
	assert.ErrorIs(t, err, ErrSlotInPast)

	err = calendar.ValidateSlotNotPast(today, "09:00")
	assert.ErrorIs(t, err, ErrSlotInPast)

	assert.NoError(t, calendar.ValidateSlotNotPast(today, "10:31"))
	assert.NoError(t, calendar.ValidateSlotNotPast(tomorrow, "09:00"))

	err = calendar.ValidateSlotNotPast(today, "10am")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestSlotCandidates(t *testing.T) {
	calendar := newTestCalendar(t)

	slots := calendar.SlotCandidates(30)
	require.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "09:30", slots[0].EndTime)
	assert.Equal(t, "16:30", slots[15].StartTime)
	assert.Equal(t, "17:00", slots[15].EndTime)
}

func TestSlotCandidates_DropsTrailingRemainder(t *testing.T) {
	calendar := newTestCalendar(t)

	// 480 minutes / 45 leaves a 30 minute tail that must not become a slot
	slots := calendar.SlotCandidates(45)
	require.Len(t, slots, 10)
	assert.Equal(t, "15:45", slots[9].StartTime)
	assert.Equal(t, "16:30", slots[9].EndTime)
}

func TestSlotCandidates_ClampsTinyStep(t *testing.T) {
	calendar := newTestCalendar(t)

	// A step below 5 minutes is floored at 5
	slots := calendar.SlotCandidates(1)
	require.NotEmpty(t, slots)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "09:05", slots[0].EndTime)
	assert.Len(t, slots, 96)
}

func TestSlotCandidates_InvertedWindow(t *testing.T) {
	calendar, err := NewClinicCalendar(config.ClinicConfig{
		DayStart:      "17:00",
		DayEnd:        "09:00",
		LookaheadDays: 60,
		Timezone:      "UTC",
	})
	require.NoError(t, err)

	assert.Empty(t, calendar.SlotCandidates(30))
}
