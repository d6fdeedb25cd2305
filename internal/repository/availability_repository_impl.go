package repository

import (
	"errors"
	"time"

	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/entity"
	domainRepo "github.com/Abdudhi100/dr-olaosebikan/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type availabilityRepository struct{}

func NewAvailabilityRepository() domainRepo.AvailabilityRepository {
	return &availabilityRepository{}
}

// BulkCreateIgnoreConflicts relies on ON CONFLICT DO NOTHING so that two
// requests materializing the same day race harmlessly; the unique index on
// (doctor, date, start, end) is the source of truth, not the caller's diff.
func (r *availabilityRepository) BulkCreateIgnoreConflicts(db *gorm.DB, slots []entity.Availability) error {
	if len(slots) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&slots).Error
}

func (r *availabilityRepository) FindByID(db *gorm.DB, id uint) (*entity.Availability, error) {
	var slot entity.Availability
	err := db.Where("id = ?", id).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *availabilityRepository) FindByIDForUpdate(db *gorm.DB, id uint) (*entity.Availability, error) {
	var slot entity.Availability
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *availabilityRepository) FindSlotKeys(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]domainRepo.SlotKey, error) {
	var keys []domainRepo.SlotKey
	err := db.Model(&entity.Availability{}).
		Select("start_time, end_time").
		Where("doctor_id = ? AND date = ?", doctorID, date).
		Scan(&keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}

func (r *availabilityRepository) FindAvailableByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.Availability, error) {
	var slots []entity.Availability
	err := db.Where("doctor_id = ? AND date = ? AND is_available = ?", doctorID, date, true).
		Order("start_time ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *availabilityRepository) UpdateFlag(db *gorm.DB, id uint, available bool) error {
	return db.Model(&entity.Availability{}).
		Where("id = ?", id).
		UpdateColumn("is_available", available).Error
}
