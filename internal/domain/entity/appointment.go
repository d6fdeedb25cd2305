package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// legalTransitions is the explicit edge set of the appointment state machine.
// Cancelled and completed are terminal.
var legalTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending:   {AppointmentStatusConfirmed, AppointmentStatusCancelled},
	AppointmentStatusConfirmed: {AppointmentStatusCancelled, AppointmentStatusCompleted},
	AppointmentStatusCancelled: {},
	AppointmentStatusCompleted: {},
}

// Valid reports whether the status is one of the four known values
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCancelled, AppointmentStatusCompleted:
		return true
	}
	return false
}

// Locks reports whether an appointment in this status keeps its availability
// slot locked. Only cancellation releases the slot.
func (s AppointmentStatus) Locks() bool {
	return s != AppointmentStatusCancelled
}

// CanTransitionTo reports whether status -> next is a legal edge
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range legalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Appointment links a patient request to exactly one availability slot.
// DoctorID is denormalized from the service for query convenience and is
// re-derived on every write; the availability's unique index guarantees a slot
// backs at most one appointment ever, even across cancellations.
type Appointment struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	DoctorID       uuid.UUID         `gorm:"type:uuid;not null;index:idx_appt_doctor_status" json:"doctor_id"`
	ServiceID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"service_id"`
	AvailabilityID uint              `gorm:"not null;uniqueIndex" json:"availability_id"`
	PatientID      *uuid.UUID        `gorm:"type:uuid;index" json:"patient_id,omitempty"`
	PatientName    string            `gorm:"type:varchar(255);not null" json:"patient_name"`
	PatientEmail   string            `gorm:"type:varchar(255);not null;index" json:"patient_email"`
	PatientPhone   string            `gorm:"type:varchar(20)" json:"patient_phone,omitempty"`
	Notes          string            `gorm:"type:text" json:"notes,omitempty"`
	Status         AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index:idx_appt_doctor_status" json:"status"`
	CreatedAt      time.Time         `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Service      Service      `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Availability Availability `gorm:"foreignKey:AvailabilityID" json:"availability,omitempty"`
	Patient      *User        `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// IsPending checks if the appointment is awaiting confirmation
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsCancelled checks if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsTerminal checks if the appointment can no longer change status
func (a *Appointment) IsTerminal() bool {
	return len(legalTransitions[a.Status]) == 0
}
