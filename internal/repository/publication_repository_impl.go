package repository

import (
	"errors"

	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/entity"
	domainRepo "github.com/Abdudhi100/dr-olaosebikan/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type publicationRepository struct{}

func NewPublicationRepository() domainRepo.PublicationRepository {
	return &publicationRepository{}
}

func (r *publicationRepository) Create(db *gorm.DB, publication *entity.Publication) error {
	return db.Create(publication).Error
}

func (r *publicationRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Publication, error) {
	var publication entity.Publication
	err := db.Where("id = ?", id).First(&publication).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &publication, nil
}

func (r *publicationRepository) FindPublished(db *gorm.DB, featuredOnly bool) ([]entity.Publication, error) {
	var publications []entity.Publication
	query := db.Where("is_published = ?", true).Order("year DESC, created_at DESC")
	if featuredOnly {
		query = query.Where("is_featured = ?", true)
	}
	if err := query.Find(&publications).Error; err != nil {
		return nil, err
	}
	return publications, nil
}

func (r *publicationRepository) Update(db *gorm.DB, publication *entity.Publication) error {
	return db.Omit("Doctor").Save(publication).Error
}

func (r *publicationRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Publication{})
	return result.RowsAffected, result.Error
}

type achievementRepository struct{}

func NewAchievementRepository() domainRepo.AchievementRepository {
	return &achievementRepository{}
}

func (r *achievementRepository) Create(db *gorm.DB, achievement *entity.Achievement) error {
	return db.Create(achievement).Error
}

func (r *achievementRepository) FindPublished(db *gorm.DB) ([]entity.Achievement, error) {
	var achievements []entity.Achievement
	err := db.Where("is_published = ?", true).
		Order("year DESC, created_at DESC").
		Find(&achievements).Error
	if err != nil {
		return nil, err
	}
	return achievements, nil
}

func (r *achievementRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Achievement{})
	return result.RowsAffected, result.Error
}
