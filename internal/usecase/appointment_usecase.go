package usecase

import (
	"context"
	"errors"

	"github.com/Abdudhi100/dr-olaosebikan/internal/converter"
	"github.com/Abdudhi100/dr-olaosebikan/internal/delivery/dto"
	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/entity"
	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/repository"
	"github.com/Abdudhi100/dr-olaosebikan/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrUnknownStatus       = errors.New("unknown appointment status")
	ErrInvalidTransition   = errors.New("illegal appointment status transition")
)

type AppointmentUsecase interface {
	GetDoctorAppointments(ctx context.Context, doctorID uuid.UUID, page, limit int) (*dto.AppointmentListResponse, error)
	// UpdateStatus transitions an appointment along a legal state-machine edge
	// and re-derives the availability lock flag from the new status, all in
	// one transaction.
	UpdateStatus(ctx context.Context, appointmentID, doctorID uuid.UUID, status entity.AppointmentStatus) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	availability    repository.AvailabilityRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	availabilityRepo repository.AvailabilityRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		availability:    availabilityRepo,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) GetDoctorAppointments(ctx context.Context, doctorID uuid.UUID, page, limit int) (*dto.AppointmentListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	appointments, total, err := u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID, limit, (page-1)*limit)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        total,
	}, nil
}

func (u *appointmentUsecase) UpdateStatus(ctx context.Context, appointmentID, doctorID uuid.UUID, status entity.AppointmentStatus) (*dto.AppointmentResponse, error) {
	if !status.Valid() {
		return nil, ErrUnknownStatus
	}

	var previous entity.AppointmentStatus

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := setLockTimeout(tx); err != nil {
			return err
		}

		appointment, err := u.appointmentRepo.FindByIDAndDoctor(tx, appointmentID, doctorID)
		if err != nil {
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}

		// Same lock discipline as booking: the slot row serializes every
		// mutation that can change its availability flag.
		slot, err := u.availability.FindByIDForUpdate(tx, appointment.AvailabilityID)
		if err != nil {
			if isLockTimeout(err) {
				return ErrSlotUnavailable
			}
			return err
		}
		if slot == nil {
			u.log.Errorf("Appointment %s references missing availability %d", appointmentID, appointment.AvailabilityID)
			return ErrAppointmentNotFound
		}

		// The first read ran before the slot lock; a racing writer may have
		// committed another status in between. Validate the edge against a
		// fresh read under the lock, never the stale snapshot.
		appointment, err = u.appointmentRepo.FindByIDAndDoctor(tx, appointmentID, doctorID)
		if err != nil {
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}
		if !appointment.Status.CanTransitionTo(status) {
			return ErrInvalidTransition
		}
		previous = appointment.Status

		if err := u.appointmentRepo.UpdateStatus(tx, appointmentID, status); err != nil {
			return err
		}

		// Confirming keeps the slot locked, cancelling releases it; there is
		// no separate unlock operation.
		if err := u.availability.UpdateFlag(tx, slot.ID, !status.Locks()); err != nil {
			return err
		}

		return u.auditService.LogUpdate(ctx, tx, &doctorID, entity.AuditActionAppointmentStatus,
			"appointment", appointmentID.String(),
			map[string]interface{}{"status": previous},
			map[string]interface{}{"status": status})
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Appointment %s: %s -> %s", appointmentID, previous, status)

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if full == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(full), nil
}
