package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePublicationRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=255"`
	Journal     string `json:"journal" validate:"required,min=2,max=255"`
	Year        int    `json:"year" validate:"required,min=1900,max=2100"`
	Authors     string `json:"authors" validate:"omitempty,max=500"`
	Abstract    string `json:"abstract" validate:"omitempty"`
	DOILink     string `json:"doi_link" validate:"omitempty,url,max=500"`
	IsFeatured  bool   `json:"is_featured" validate:"omitempty"`
	IsPublished *bool  `json:"is_published" validate:"omitempty"`
}

type CreateAchievementRequest struct {
	Title        string `json:"title" validate:"required,min=2,max=255"`
	Description  string `json:"description" validate:"omitempty"`
	Year         int    `json:"year" validate:"required,min=1900,max=2100"`
	Organization string `json:"organization" validate:"omitempty,max=255"`
	IsPublished  *bool  `json:"is_published" validate:"omitempty"`
}

// Response DTOs

type PublicationResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Journal     string     `json:"journal"`
	Year        int        `json:"year"`
	Authors     string     `json:"authors,omitempty"`
	Abstract    string     `json:"abstract,omitempty"`
	DOILink     string     `json:"doi_link,omitempty"`
	IsFeatured  bool       `json:"is_featured"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type PublicationListResponse struct {
	Publications []PublicationResponse `json:"publications"`
	Total        int                   `json:"total"`
}

type AchievementResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Year         int       `json:"year"`
	Organization string    `json:"organization,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type AchievementListResponse struct {
	Achievements []AchievementResponse `json:"achievements"`
	Total        int                   `json:"total"`
}
