package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Publication is a journal article or paper shown on the doctor's profile
type Publication struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	DoctorID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_pub_doctor_year" json:"doctor_id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Journal     string     `gorm:"type:varchar(255);not null" json:"journal"`
	Year        int        `gorm:"not null;index:idx_pub_doctor_year" json:"year"`
	Authors     string     `gorm:"type:varchar(500)" json:"authors,omitempty"`
	Abstract    string     `gorm:"type:text" json:"abstract,omitempty"`
	DOILink     string     `gorm:"column:doi_link;type:varchar(500)" json:"doi_link,omitempty"`
	IsFeatured  bool       `gorm:"not null;default:false" json:"is_featured"`
	IsPublished *bool      `gorm:"not null;default:true;index" json:"is_published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Publication) TableName() string {
	return "publications"
}

func (p *Publication) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.IsPublished != nil && *p.IsPublished && p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}
	return nil
}

// Achievement is an award or recognition entry on the doctor's profile
type Achievement struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DoctorID     uuid.UUID `gorm:"type:uuid;not null;index:idx_ach_doctor_year" json:"doctor_id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	Year         int       `gorm:"not null;index:idx_ach_doctor_year" json:"year"`
	Organization string    `gorm:"type:varchar(255)" json:"organization,omitempty"`
	IsPublished  *bool     `gorm:"not null;default:true;index" json:"is_published"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Achievement) TableName() string {
	return "achievements"
}

func (a *Achievement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
