package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidSlotTimes = errors.New("slot start time must be earlier than end time")

// Availability is a single bookable time slot for the doctor on a given date.
// Rows are materialized lazily by the slot generator and are never deleted by
// the booking flow; IsAvailable is flipped exclusively through the appointment
// lifecycle, driven by the appointment status.
type Availability struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID    uuid.UUID `gorm:"type:uuid;not null;index:idx_avail_doctor_date;uniqueIndex:uniq_doctor_time_slot" json:"doctor_id"`
	Date        time.Time `gorm:"type:date;not null;index:idx_avail_doctor_date;uniqueIndex:uniq_doctor_time_slot" json:"date"`
	StartTime   string    `gorm:"type:varchar(5);not null;uniqueIndex:uniq_doctor_time_slot" json:"start_time"` // "HH:MM"
	EndTime     string    `gorm:"type:varchar(5);not null;uniqueIndex:uniq_doctor_time_slot" json:"end_time"`   // "HH:MM"
	IsAvailable *bool     `gorm:"not null;default:true;index" json:"is_available"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Availability) TableName() string {
	return "availabilities"
}

func (a *Availability) BeforeCreate(tx *gorm.DB) error {
	if a.StartTime >= a.EndTime {
		return ErrInvalidSlotTimes
	}
	return nil
}

// Available reports the slot flag, treating a nil pointer as unavailable.
func (a *Availability) Available() bool {
	return a.IsAvailable != nil && *a.IsAvailable
}

// DateString renders the slot date in the "YYYY-MM-DD" form used by the API
// and in outbound messages.
func (a *Availability) DateString() string {
	return a.Date.Format("2006-01-02")
}
