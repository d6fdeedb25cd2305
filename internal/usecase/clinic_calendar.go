package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/Abdudhi100/dr-olaosebikan/config"
	domainRepo "github.com/Abdudhi100/dr-olaosebikan/internal/domain/repository"
)

var (
	// ErrBookingWindow is the parent kind for both window failures below;
	// errors.Is matches it for either sub-kind.
	ErrBookingWindow     = errors.New("date outside booking window")
	ErrDateInPast        = fmt.Errorf("%w: cannot book a past date", ErrBookingWindow)
	ErrDateBeyondHorizon = fmt.Errorf("%w: date is beyond the booking horizon", ErrBookingWindow)

	ErrSlotInPast        = errors.New("time slot is already in the past")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
)

// ClinicCalendar is the clinic's booking calendar: the daily slot window, the
// lookahead horizon, and the clinic timezone. It is built once at bootstrap
// from configuration and injected wherever dates and slots are validated.
type ClinicCalendar struct {
	dayStart  string
	dayEnd    string
	lookahead int
	location  *time.Location
	now       func() time.Time
}

func NewClinicCalendar(cfg config.ClinicConfig) (*ClinicCalendar, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load clinic timezone %q: %w", cfg.Timezone, err)
	}
	if _, err := parseHHMM(cfg.DayStart); err != nil {
		return nil, fmt.Errorf("clinic day start %q: %w", cfg.DayStart, err)
	}
	if _, err := parseHHMM(cfg.DayEnd); err != nil {
		return nil, fmt.Errorf("clinic day end %q: %w", cfg.DayEnd, err)
	}

	return &ClinicCalendar{
		dayStart:  cfg.DayStart,
		dayEnd:    cfg.DayEnd,
		lookahead: cfg.LookaheadDays,
		location:  loc,
		now:       time.Now,
	}, nil
}

// WithClock replaces the calendar's clock. Test hook.
func (c *ClinicCalendar) WithClock(now func() time.Time) *ClinicCalendar {
	clone := *c
	clone.now = now
	return &clone
}

func (c *ClinicCalendar) LookaheadDays() int {
	return c.lookahead
}

// ParseDate interprets a "YYYY-MM-DD" value in the clinic timezone
func (c *ClinicCalendar) ParseDate(value string) (time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", value, c.location)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return date, nil
}

// Today returns midnight of the current day in the clinic timezone
func (c *ClinicCalendar) Today() time.Time {
	now := c.now().In(c.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.location)
}

// ValidateDate enforces today <= date <= today+lookahead. The horizon day
// itself is bookable.
func (c *ClinicCalendar) ValidateDate(date time.Time) error {
	today := c.Today()
	if date.Before(today) {
		return ErrDateInPast
	}
	if date.After(today.AddDate(0, 0, c.lookahead)) {
		return ErrDateBeyondHorizon
	}
	return nil
}

// ValidateSlotNotPast rejects a slot whose start has already elapsed in the
// clinic timezone. A date can pass ValidateDate ("today") while its morning
// slots are long gone, so this check is separate. Minute precision: a slot
// starting exactly now counts as past.
func (c *ClinicCalendar) ValidateSlotNotPast(date time.Time, startTime string) error {
	minutes, err := parseHHMM(startTime)
	if err != nil {
		return ErrInvalidTimeFormat
	}

	slotStart := time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, c.location)
	if !slotStart.After(c.now().In(c.location).Truncate(time.Minute)) {
		return ErrSlotInPast
	}
	return nil
}

// SlotCandidates walks the configured day window in stepMinutes increments and
// returns the candidate slots for one day, in start order. A trailing remainder
// shorter than the step is dropped, and a misconfigured window (start >= end)
// yields an empty set rather than an error.
func (c *ClinicCalendar) SlotCandidates(stepMinutes int) []domainRepo.SlotKey {
	if stepMinutes < 5 {
		stepMinutes = 5
	}

	dayStart, _ := parseHHMM(c.dayStart)
	dayEnd, _ := parseHHMM(c.dayEnd)

	var slots []domainRepo.SlotKey
	for cursor := dayStart; cursor+stepMinutes <= dayEnd; cursor += stepMinutes {
		slots = append(slots, domainRepo.SlotKey{
			StartTime: formatHHMM(cursor),
			EndTime:   formatHHMM(cursor + stepMinutes),
		})
	}
	return slots
}

func parseHHMM(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatHHMM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
