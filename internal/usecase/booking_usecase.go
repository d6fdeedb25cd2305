package usecase

import (
	"context"
	"errors"

	"github.com/Abdudhi100/dr-olaosebikan/internal/converter"
	"github.com/Abdudhi100/dr-olaosebikan/internal/delivery/dto"
	"github.com/Abdudhi100/dr-olaosebikan/internal/delivery/http/middleware"
	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/entity"
	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/repository"
	"github.com/Abdudhi100/dr-olaosebikan/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSlotUnavailable = errors.New("time slot is no longer available")
	ErrDoctorMismatch  = errors.New("service and availability belong to different doctors")
)

// lockWaitTimeout bounds how long a booking transaction waits for the
// availability row lock before giving up with a retryable ErrSlotUnavailable.
const lockWaitTimeout = "3s"

type BookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	// CancelMyAppointment lets the owning patient cancel their own booking,
	// releasing the slot.
	CancelMyAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
}

type bookingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	calendar        *ClinicCalendar
	slots           SlotUsecase
	serviceRepo     repository.ServiceRepository
	availability    repository.AvailabilityRepository
	appointmentRepo repository.AppointmentRepository
	intentRepo      repository.MessageIntentRepository
	auditService    service.AuditService
	notifier        service.BookingNotifier
	links           *service.WhatsAppLinkBuilder
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	calendar *ClinicCalendar,
	slots SlotUsecase,
	serviceRepo repository.ServiceRepository,
	availabilityRepo repository.AvailabilityRepository,
	appointmentRepo repository.AppointmentRepository,
	intentRepo repository.MessageIntentRepository,
	auditService service.AuditService,
	notifier service.BookingNotifier,
	links *service.WhatsAppLinkBuilder,
) BookingUsecase {
	return &bookingUsecase{
		db:              db,
		log:             log,
		calendar:        calendar,
		slots:           slots,
		serviceRepo:     serviceRepo,
		availability:    availabilityRepo,
		appointmentRepo: appointmentRepo,
		intentRepo:      intentRepo,
		auditService:    auditService,
		notifier:        notifier,
		links:           links,
	}
}

// CreateBooking books one availability slot for a patient.
//
// Flow:
// 1. Resolve the active service; the doctor is always derived from it
// 2. Validate the booking window and that the slot hasn't already elapsed
// 3. Re-materialize the day and confirm the requested start is still offered
// 4. In one transaction: lock the availability row (bounded wait), re-check
//    doctor consistency and the availability flag under the lock, insert the
//    appointment, and flip the slot flag from the new status
// 5. After commit: record the audit trail and hand the appointment to the
//    notification dispatcher (best effort, never unwinds the booking)
//
// Concurrent bookings of the same slot are serialized by the row lock: the
// first transaction wins, later ones observe is_available=false and fail with
// ErrSlotUnavailable.
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	svc, err := u.serviceRepo.FindActiveByID(u.db.WithContext(ctx), req.ServiceID)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", req.ServiceID, err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	chosenDate, err := u.calendar.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := u.calendar.ValidateDate(chosenDate); err != nil {
		return nil, err
	}
	if err := u.calendar.ValidateSlotNotPast(chosenDate, req.StartTime); err != nil {
		return nil, err
	}

	// Guard against the slot vanishing between page render and submit.
	daySlots, err := u.slots.EnsureAndListSlots(ctx, svc, chosenDate)
	if err != nil {
		return nil, err
	}
	var target *entity.Availability
	for i := range daySlots {
		if daySlots[i].StartTime == req.StartTime {
			target = &daySlots[i]
			break
		}
	}
	if target == nil {
		return nil, ErrSlotUnavailable
	}

	// Anonymous bookings are allowed; link the account when one is logged in.
	var patientID *uuid.UUID
	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		patientID = &userID
	}

	appointment := &entity.Appointment{
		DoctorID:       svc.DoctorID,
		ServiceID:      svc.ID,
		AvailabilityID: target.ID,
		PatientID:      patientID,
		PatientName:    req.PatientName,
		PatientEmail:   req.PatientEmail,
		PatientPhone:   req.PatientPhone,
		Notes:          req.Notes,
		Status:         entity.AppointmentStatusPending,
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := setLockTimeout(tx); err != nil {
			return err
		}

		slot, err := u.availability.FindByIDForUpdate(tx, target.ID)
		if err != nil {
			if isLockTimeout(err) {
				return ErrSlotUnavailable
			}
			return err
		}
		if slot == nil {
			return ErrSlotUnavailable
		}

		// Cross-entity consistency: a mismatch here is a data bug, not a
		// user-recoverable condition.
		if slot.DoctorID != svc.DoctorID {
			u.log.Errorf("Doctor mismatch: service %s belongs to %s, slot %d to %s",
				svc.ID, svc.DoctorID, slot.ID, slot.DoctorID)
			return ErrDoctorMismatch
		}

		if !slot.Available() {
			return ErrSlotUnavailable
		}

		if err := u.appointmentRepo.Create(tx, appointment); err != nil {
			if isUniqueViolation(err) {
				// Only reachable via a logic bug: the row lock should have
				// serialized us. Reject cleanly but make noise.
				u.log.Errorf("Unique violation booking slot %d despite row lock: %+v", slot.ID, err)
				return ErrSlotUnavailable
			}
			return err
		}

		// Lock state is a pure function of status; pending locks the slot.
		if err := u.availability.UpdateFlag(tx, slot.ID, !appointment.Status.Locks()); err != nil {
			return err
		}

		intent := &entity.MessageIntent{
			AppointmentID: &appointment.ID,
			PatientName:   appointment.PatientName,
			Phone:         appointment.PatientPhone,
			Purpose:       entity.PurposeAppointment,
			Status:        entity.IntentInitiated,
		}
		if err := u.intentRepo.Create(tx, intent); err != nil {
			return err
		}

		// Audit trail commits or rolls back with the booking itself.
		return u.auditService.LogCreate(ctx, tx, patientID, entity.AuditActionAppointmentCreate,
			"appointment", appointment.ID.String(), appointment)
	})
	if err != nil {
		return nil, err
	}

	// Post-commit, fire-and-forget. A slow or failing notification never
	// affects the booking response.
	u.notifier.NotifyBookingCreated(appointment)

	u.log.Infof("Appointment created: id=%s, service=%s, slot=%d, status=%s",
		appointment.ID, svc.ID, appointment.AvailabilityID, appointment.Status)

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	resp := converter.AppointmentToResponse(full)
	// Follow-up chat link shown on the confirmation page.
	resp.WhatsAppLink = u.links.BuildAppointmentLink(full)
	return resp, nil
}

// GetMyAppointments returns the bookings linked to the logged-in patient account
func (u *bookingUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", userID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        int64(len(appointments)),
	}, nil
}

func (u *bookingUsecase) CancelMyAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	var previous entity.AppointmentStatus

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := setLockTimeout(tx); err != nil {
			return err
		}

		appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
		if err != nil {
			return err
		}
		if appointment == nil || appointment.PatientID == nil || *appointment.PatientID != userID {
			return ErrAppointmentNotFound
		}

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

		// The first read ran before the slot lock; a racing status writer may
		// have committed in between. Re-read and validate the edge under the
		// lock so a stale snapshot can never apply an illegal transition.
		appointment, err = u.appointmentRepo.FindByID(tx, appointmentID)
		if err != nil {
			return err
		}
		if appointment == nil || appointment.PatientID == nil || *appointment.PatientID != userID {
			return ErrAppointmentNotFound
		}
		if !appointment.Status.CanTransitionTo(entity.AppointmentStatusCancelled) {
			return ErrInvalidTransition
		}
		previous = appointment.Status

		if err := u.appointmentRepo.UpdateStatus(tx, appointmentID, entity.AppointmentStatusCancelled); err != nil {
			return err
		}

		if err := u.availability.UpdateFlag(tx, slot.ID, !entity.AppointmentStatusCancelled.Locks()); err != nil {
			return err
		}

		return u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionAppointmentStatus,
			"appointment", appointmentID.String(),
			map[string]interface{}{"status": previous},
			map[string]interface{}{"status": entity.AppointmentStatusCancelled})
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Appointment %s cancelled by patient %s", appointmentID, userID)

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

// setLockTimeout bounds the wait for the availability row lock inside the
// current transaction. SET LOCAL is postgres-specific; other dialects have no
// lock wait to bound and skip it.
func setLockTimeout(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	return tx.Exec("SET LOCAL lock_timeout = '" + lockWaitTimeout + "'").Error
}

// isLockTimeout checks for PostgreSQL 55P03 (lock_not_available), raised when
// lock_timeout expires while waiting on the availability row
func isLockTimeout(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "55P03"
}

// isUniqueViolation checks for PostgreSQL 23505 (unique_violation)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
