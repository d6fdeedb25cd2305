package repository

import (
	"time"

	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SlotKey identifies one slot inside a day by its "HH:MM" bounds
type SlotKey struct {
	StartTime string
	EndTime   string
}

type AvailabilityRepository interface {
	// BulkCreateIgnoreConflicts inserts the given slots, silently skipping any
	// that violate the (doctor, date, start, end) unique index. Safe under
	// concurrent generators for the same day.
	BulkCreateIgnoreConflicts(db *gorm.DB, slots []entity.Availability) error
	FindByID(db *gorm.DB, id uint) (*entity.Availability, error)
	// FindByIDForUpdate loads the slot under an exclusive row lock. Must be
	// called inside a transaction.
	FindByIDForUpdate(db *gorm.DB, id uint) (*entity.Availability, error)
	FindSlotKeys(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]SlotKey, error)
	FindAvailableByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.Availability, error)
	UpdateFlag(db *gorm.DB, id uint, available bool) error
}
