package converter

import (
	"github.com/Abdudhi100/dr-olaosebikan/internal/delivery/dto"
	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/entity"
)

// PublicationToResponse converts a Publication entity to PublicationResponse DTO
func PublicationToResponse(publication *entity.Publication) *dto.PublicationResponse {
	if publication == nil {
		return nil
	}

	return &dto.PublicationResponse{
		ID:          publication.ID,
		Title:       publication.Title,
		Journal:     publication.Journal,
		Year:        publication.Year,
		Authors:     publication.Authors,
		Abstract:    publication.Abstract,
		DOILink:     publication.DOILink,
		IsFeatured:  publication.IsFeatured,
		PublishedAt: publication.PublishedAt,
		CreatedAt:   publication.CreatedAt,
	}
}

// PublicationsToResponses converts a slice of Publication entities to PublicationResponse DTOs
func PublicationsToResponses(publications []entity.Publication) []dto.PublicationResponse {
	responses := make([]dto.PublicationResponse, len(publications))
	for i := range publications {
		responses[i] = *PublicationToResponse(&publications[i])
	}
	return responses
}

// AchievementToResponse converts an Achievement entity to AchievementResponse DTO
func AchievementToResponse(achievement *entity.Achievement) *dto.AchievementResponse {
	if achievement == nil {
		return nil
	}

	return &dto.AchievementResponse{
		ID:           achievement.ID,
		Title:        achievement.Title,
		Description:  achievement.Description,
		Year:         achievement.Year,
		Organization: achievement.Organization,
		CreatedAt:    achievement.CreatedAt,
	}
}

// AchievementsToResponses converts a slice of Achievement entities to AchievementResponse DTOs
func AchievementsToResponses(achievements []entity.Achievement) []dto.AchievementResponse {
	responses := make([]dto.AchievementResponse, len(achievements))
	for i := range achievements {
		responses[i] = *AchievementToResponse(&achievements[i])
	}
	return responses
}
