package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service represents a bookable consultation type offered by the doctor.
// DurationMinutes doubles as the slot length when availabilities are generated
// for this service; changing it does not resize slots that already exist.
type Service struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	DoctorID        uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:uniq_service_per_doctor" json:"doctor_id"`
	Name            string          `gorm:"type:varchar(255);not null;uniqueIndex:uniq_service_per_doctor" json:"name"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	DurationMinutes int             `gorm:"not null" json:"duration_minutes"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	IsActive        *bool           `gorm:"not null;default:true;index" json:"is_active"`
	Position        int             `gorm:"not null;default:0;index" json:"position"`
	Icon            string          `gorm:"type:varchar(50);default:'shield-check'" json:"icon,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Service) TableName() string {
	return "services"
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// SlotMinutes returns the slot step for this service, floored at 5 minutes.
func (s *Service) SlotMinutes() int {
	if s.DurationMinutes < 5 {
		return 5
	}
	return s.DurationMinutes
}
