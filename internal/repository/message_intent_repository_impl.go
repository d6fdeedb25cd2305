package repository

import (
	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/entity"
	domainRepo "github.com/Abdudhi100/dr-olaosebikan/internal/domain/repository"

	"gorm.io/gorm"
)

type messageIntentRepository struct{}

func NewMessageIntentRepository() domainRepo.MessageIntentRepository {
	return &messageIntentRepository{}
}

func (r *messageIntentRepository) Create(db *gorm.DB, intent *entity.MessageIntent) error {
	return db.Create(intent).Error
}

func (r *messageIntentRepository) FindRecent(db *gorm.DB, limit int) ([]entity.MessageIntent, error) {
	var intents []entity.MessageIntent
	err := db.Order("created_at DESC").Limit(limit).Find(&intents).Error
	if err != nil {
		return nil, err
	}
	return intents, nil
}
