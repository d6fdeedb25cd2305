package repository

import (
	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/entity"

	"gorm.io/gorm"
)

type MessageIntentRepository interface {
	Create(db *gorm.DB, intent *entity.MessageIntent) error
	FindRecent(db *gorm.DB, limit int) ([]entity.MessageIntent, error)
}
