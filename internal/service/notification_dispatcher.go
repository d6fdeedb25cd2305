package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/entity"
	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// BookingNotifier is the post-commit hook for new bookings. Implementations
// must never block the caller and must never propagate delivery failures back
// into the booking flow.
type BookingNotifier interface {
	NotifyBookingCreated(appointment *entity.Appointment)
}

const (
	// Queue depth before NotifyBookingCreated starts dropping. Dropped
	// notifications are logged; the booking itself is already committed.
	notificationQueueSize = 256

	// Delivery retries per email, with a flat pause between attempts.
	notificationMaxAttempts = 3
	notificationRetryDelay  = 5 * time.Second
)

// NotificationDispatcher delivers booking emails on a background worker.
//
// The booking usecase hands over just the appointment ID; the worker reloads
// the row with its service and slot so the emails always reflect committed
// state. Call Stop() during graceful shutdown to drain the queue.
type NotificationDispatcher struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	mailer          BookingMailer

	queue    chan uuid.UUID
	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

func NewNotificationDispatcher(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	mailer BookingMailer,
) *NotificationDispatcher {
	d := &NotificationDispatcher{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		mailer:          mailer,
		queue:           make(chan uuid.UUID, notificationQueueSize),
		stopChan:        make(chan struct{}),
	}

	d.wg.Add(1)
	go d.workerLoop()

	return d
}

// NotifyBookingCreated enqueues the appointment for email delivery. Never
// blocks: if the queue is full the notification is dropped with a log line.
func (d *NotificationDispatcher) NotifyBookingCreated(appointment *entity.Appointment) {
	if d.stopped.Load() {
		return
	}

	select {
	case d.queue <- appointment.ID:
	default:
		d.log.Warnf("Notification queue full, dropping emails for appointment %s", appointment.ID)
	}
}

// Stop drains queued notifications and shuts the worker down.
// Safe to call multiple times.
func (d *NotificationDispatcher) Stop() {
	if d.stopped.CompareAndSwap(false, true) {
		close(d.stopChan)
		d.wg.Wait()
		d.log.Info("NotificationDispatcher stopped")
	}
}

func (d *NotificationDispatcher) workerLoop() {
	defer d.wg.Done()

	for {
		select {
		case id := <-d.queue:
			d.deliver(id)
		case <-d.stopChan:
			// Drain whatever is already queued before exiting.
			for {
				select {
				case id := <-d.queue:
					d.deliver(id)
				default:
					return
				}
			}
		}
	}
}

func (d *NotificationDispatcher) deliver(id uuid.UUID) {
	appointment, err := d.appointmentRepo.FindByID(d.db, id)
	if err != nil {
		d.log.Warnf("Failed to load appointment %s for notification: %+v", id, err)
		return
	}
	if appointment == nil {
		d.log.Warnf("Appointment %s vanished before notification", id)
		return
	}

	d.sendWithRetry("patient confirmation", appointment, d.mailer.SendPatientConfirmation)
	d.sendWithRetry("doctor alert", appointment, d.mailer.SendDoctorAlert)
}

func (d *NotificationDispatcher) sendWithRetry(kind string, appointment *entity.Appointment, send func(*entity.Appointment) error) {
	var err error
	for attempt := 1; attempt <= notificationMaxAttempts; attempt++ {
		if err = send(appointment); err == nil {
			d.log.Debugf("Sent %s email for appointment %s", kind, appointment.ID)
			return
		}
		d.log.Warnf("Failed to send %s email for appointment %s (attempt %d/%d): %+v",
			kind, appointment.ID, attempt, notificationMaxAttempts, err)

		if attempt < notificationMaxAttempts {
			select {
			case <-time.After(notificationRetryDelay):
			case <-d.stopChan:
				// One last immediate try on shutdown, then give up.
				if err = send(appointment); err != nil {
					d.log.Warnf("Giving up on %s email for appointment %s: %+v", kind, appointment.ID, err)
				}
				return
			}
		}
	}
	d.log.Warnf("Giving up on %s email for appointment %s after %d attempts", kind, appointment.ID, notificationMaxAttempts)
}
