package repository

import (
	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PublicationRepository interface {
	Create(db *gorm.DB, publication *entity.Publication) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Publication, error)
	FindPublished(db *gorm.DB, featuredOnly bool) ([]entity.Publication, error)
	Update(db *gorm.DB, publication *entity.Publication) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}

type AchievementRepository interface {
	Create(db *gorm.DB, achievement *entity.Achievement) error
	FindPublished(db *gorm.DB) ([]entity.Achievement, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
