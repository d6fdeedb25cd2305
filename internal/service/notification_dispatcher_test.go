package service

import (
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubAppointmentRepo struct {
	mu           sync.Mutex
	appointments map[uuid.UUID]*entity.Appointment
}

func newStubAppointmentRepo(appointments ...*entity.Appointment) *stubAppointmentRepo {
	repo := &stubAppointmentRepo{appointments: map[uuid.UUID]*entity.Appointment{}}
	for _, a := range appointments {
		repo.appointments[a.ID] = a
	}
	return repo
}

func (r *stubAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appointments[appointment.ID] = appointment
	return nil
}

func (r *stubAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.appointments[id], nil
}

func (r *stubAppointmentRepo) FindByIDAndDoctor(db *gorm.DB, id, doctorID uuid.UUID) (*entity.Appointment, error) {
	return nil, nil
}

func (r *stubAppointmentRepo) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID, limit, offset int) ([]entity.Appointment, int64, error) {
	return nil, 0, nil
}

func (r *stubAppointmentRepo) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	return nil, nil
}

func (r *stubAppointmentRepo) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error {
	return nil
}

type recordingMailer struct {
	mu            sync.Mutex
	patientMails  []uuid.UUID
	doctorMails   []uuid.UUID
	patientErr    error
	patientErrsAt int
}

func (m *recordingMailer) SendPatientConfirmation(appointment *entity.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.patientErr != nil && len(m.patientMails) < m.patientErrsAt {
		m.patientMails = append(m.patientMails, appointment.ID)
		return m.patientErr
	}
	m.patientMails = append(m.patientMails, appointment.ID)
	return nil
}

func (m *recordingMailer) SendDoctorAlert(appointment *entity.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doctorMails = append(m.doctorMails, appointment.ID)
	return nil
}

func (m *recordingMailer) counts() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.patientMails), len(m.doctorMails)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testAppointment() *entity.Appointment {
	return &entity.Appointment{
		ID:           uuid.New(),
		PatientName:  "Ada Obi",
		PatientEmail: "ada@example.com",
		Service:      entity.Service{Name: "General Consultation"},
		Availability: entity.Availability{Date: time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), StartTime: "09:00", EndTime: "09:30"},
	}
}

func TestDispatcherDeliversBothEmails(t *testing.T) {
	appointment := testAppointment()
	repo := newStubAppointmentRepo(appointment)
	mailer := &recordingMailer{}

	d := NewNotificationDispatcher(nil, testLogger(), repo, mailer)
	d.NotifyBookingCreated(appointment)
	d.Stop()

	patient, doctor := mailer.counts()
	assert.Equal(t, 1, patient)
	assert.Equal(t, 1, doctor)
}

func TestDispatcherStopDrainsQueue(t *testing.T) {
	var appointments []*entity.Appointment
	for i := 0; i < 10; i++ {
		appointments = append(appointments, testAppointment())
	}
	repo := newStubAppointmentRepo(appointments...)
	mailer := &recordingMailer{}

	d := NewNotificationDispatcher(nil, testLogger(), repo, mailer)
	for _, a := range appointments {
		d.NotifyBookingCreated(a)
	}
	d.Stop()

	patient, doctor := mailer.counts()
	assert.Equal(t, 10, patient)
	assert.Equal(t, 10, doctor)
}

func TestDispatcherIgnoresVanishedAppointment(t *testing.T) {
	repo := newStubAppointmentRepo()
	mailer := &recordingMailer{}

	d := NewNotificationDispatcher(nil, testLogger(), repo, mailer)
	d.NotifyBookingCreated(testAppointment())
	d.Stop()

	patient, doctor := mailer.counts()
	assert.Zero(t, patient)
	assert.Zero(t, doctor)
}

func TestDispatcherDropsAfterStop(t *testing.T) {
	appointment := testAppointment()
	repo := newStubAppointmentRepo(appointment)
	mailer := &recordingMailer{}

	d := NewNotificationDispatcher(nil, testLogger(), repo, mailer)
	d.Stop()
	d.NotifyBookingCreated(appointment)

	// Stop is idempotent and nothing is delivered after shutdown
	d.Stop()
	patient, doctor := mailer.counts()
	assert.Zero(t, patient)
	assert.Zero(t, doctor)
}

func TestDispatcherRetriesOnShutdown(t *testing.T) {
	appointment := testAppointment()
	repo := newStubAppointmentRepo(appointment)
	mailer := &recordingMailer{
		patientErr:    errors.New("smtp unavailable"),
		patientErrsAt: 1,
	}

	d := NewNotificationDispatcher(nil, testLogger(), repo, mailer)
	d.NotifyBookingCreated(appointment)

	// Give the worker time to hit the first failure and enter its retry wait,
	// then Stop triggers the final immediate attempt which succeeds.
	require.Eventually(t, func() bool {
		patient, _ := mailer.counts()
		return patient >= 1
	}, 2*time.Second, 10*time.Millisecond)
	d.Stop()

	patient, doctor := mailer.counts()
	assert.Equal(t, 2, patient)
	assert.Equal(t, 1, doctor)
}
