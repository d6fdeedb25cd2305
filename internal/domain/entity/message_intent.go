package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageIntentPurpose categorizes why the patient reached out
type MessageIntentPurpose string

const (
	PurposeAppointment MessageIntentPurpose = "appointment"
	PurposeFollowUp    MessageIntentPurpose = "follow_up"
	PurposeGeneral     MessageIntentPurpose = "general"
)

// MessageIntentStatus tracks what happened to the contact attempt
type MessageIntentStatus string

const (
	IntentInitiated  MessageIntentStatus = "initiated"
	IntentRedirected MessageIntentStatus = "redirected"
	IntentCompleted  MessageIntentStatus = "completed"
)

// MessageIntent records a patient's intent to contact the clinic, optionally
// tied to a booking. Used for the WhatsApp deep-link flow and follow-ups.
type MessageIntent struct {
	ID            uuid.UUID            `gorm:"type:uuid;primaryKey" json:"id"`
	AppointmentID *uuid.UUID           `gorm:"type:uuid;index" json:"appointment_id,omitempty"`
	PatientName   string               `gorm:"type:varchar(255);not null" json:"patient_name"`
	Phone         string               `gorm:"type:varchar(20);not null" json:"phone"`
	Purpose       MessageIntentPurpose `gorm:"type:varchar(20);not null;index" json:"purpose"`
	Status        MessageIntentStatus  `gorm:"type:varchar(20);not null;default:'initiated'" json:"status"`
	CreatedAt     time.Time            `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (MessageIntent) TableName() string {
	return "message_intents"
}

func (m *MessageIntent) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
