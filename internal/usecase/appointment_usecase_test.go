package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/entity"
	domainRepo "github.com/Abdudhi100/dr-olaosebikan/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openBareDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db
}

func discardLog() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// scriptedAppointmentRepo returns the same appointment with a scripted status
// per read, so a test can make the row change between two reads the way a
// racing writer would. The last status repeats once the script runs out.
type scriptedAppointmentRepo struct {
	appointment entity.Appointment
	statusReads []entity.AppointmentStatus
	updated     []entity.AppointmentStatus
}

func (r *scriptedAppointmentRepo) nextStatus() entity.AppointmentStatus {
	status := r.statusReads[0]
	if len(r.statusReads) > 1 {
		r.statusReads = r.statusReads[1:]
	}
	return status
}

func (r *scriptedAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return nil
}

func (r *scriptedAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	if id != r.appointment.ID {
		return nil, nil
	}
	appointment := r.appointment
	appointment.Status = r.nextStatus()
	return &appointment, nil
}

func (r *scriptedAppointmentRepo) FindByIDAndDoctor(db *gorm.DB, id, doctorID uuid.UUID) (*entity.Appointment, error) {
	if doctorID != r.appointment.DoctorID {
		return nil, nil
	}
	return r.FindByID(db, id)
}

func (r *scriptedAppointmentRepo) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID, limit, offset int) ([]entity.Appointment, int64, error) {
	return nil, 0, nil
}

func (r *scriptedAppointmentRepo) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	return nil, nil
}

func (r *scriptedAppointmentRepo) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error {
	r.updated = append(r.updated, status)
	return nil
}

type stubAvailabilityRepo struct {
	slot      entity.Availability
	flagCalls []bool
}

func (r *stubAvailabilityRepo) BulkCreateIgnoreConflicts(db *gorm.DB, slots []entity.Availability) error {
	return nil
}

func (r *stubAvailabilityRepo) FindByID(db *gorm.DB, id uint) (*entity.Availability, error) {
	slot := r.slot
	return &slot, nil
}

func (r *stubAvailabilityRepo) FindByIDForUpdate(db *gorm.DB, id uint) (*entity.Availability, error) {
	return r.FindByID(db, id)
}

func (r *stubAvailabilityRepo) FindSlotKeys(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]domainRepo.SlotKey, error) {
	return nil, nil
}

func (r *stubAvailabilityRepo) FindAvailableByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.Availability, error) {
	return nil, nil
}

func (r *stubAvailabilityRepo) UpdateFlag(db *gorm.DB, id uint, available bool) error {
	r.flagCalls = append(r.flagCalls, available)
	return nil
}

type countingAuditService struct {
	entries int
}

func (s *countingAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action, entityName, entityID string, newValue interface{}) error {
	s.entries++
	return nil
}

func (s *countingAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action, entityName, entityID string, oldValue, newValue interface{}) error {
	s.entries++
	return nil
}

func (s *countingAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action, entityName, entityID string, oldValue interface{}) error {
	s.entries++
	return nil
}

func newStatusTestDeps(statusReads ...entity.AppointmentStatus) (*scriptedAppointmentRepo, *stubAvailabilityRepo, *countingAuditService) {
	available := false
	appointments := &scriptedAppointmentRepo{
		appointment: entity.Appointment{
			ID:             uuid.New(),
			DoctorID:       uuid.New(),
			AvailabilityID: 7,
		},
		statusReads: statusReads,
	}
	slots := &stubAvailabilityRepo{
		slot: entity.Availability{
			ID:          7,
			DoctorID:    appointments.appointment.DoctorID,
			Date:        bookingDay(15),
			StartTime:   "09:00",
			EndTime:     "09:30",
			IsAvailable: &available,
		},
	}
	return appointments, slots, &countingAuditService{}
}

func TestUpdateStatus_ConfirmKeepsSlotLocked(t *testing.T) {
	appointments, slots, audit := newStatusTestDeps(
		entity.AppointmentStatusPending,
		entity.AppointmentStatusPending,
		entity.AppointmentStatusConfirmed,
	)
	uc := NewAppointmentUsecase(openBareDB(t), discardLog(), appointments, slots, audit)

	resp, err := uc.UpdateStatus(context.Background(),
		appointments.appointment.ID, appointments.appointment.DoctorID, entity.AppointmentStatusConfirmed)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, []entity.AppointmentStatus{entity.AppointmentStatusConfirmed}, appointments.updated)
	assert.Equal(t, []bool{false}, slots.flagCalls)
	assert.Equal(t, 1, audit.entries)
	assert.Equal(t, string(entity.AppointmentStatusConfirmed), resp.Status)
}

func TestUpdateStatus_CancelReleasesSlot(t *testing.T) {
	appointments, slots, audit := newStatusTestDeps(
		entity.AppointmentStatusPending,
		entity.AppointmentStatusPending,
		entity.AppointmentStatusCancelled,
	)
	uc := NewAppointmentUsecase(openBareDB(t), discardLog(), appointments, slots, audit)

	_, err := uc.UpdateStatus(context.Background(),
		appointments.appointment.ID, appointments.appointment.DoctorID, entity.AppointmentStatusCancelled)
	require.NoError(t, err)

	assert.Equal(t, []entity.AppointmentStatus{entity.AppointmentStatusCancelled}, appointments.updated)
	assert.Equal(t, []bool{true}, slots.flagCalls)
	assert.Equal(t, 1, audit.entries)
}

// A racing writer can commit a different status between the first read and the
// slot lock. The edge must be validated against a fresh read under the lock,
// so a confirm that raced a cancel is rejected instead of resurrecting a
// terminal appointment.
func TestUpdateStatus_RevalidatesUnderLock(t *testing.T) {
	appointments, slots, audit := newStatusTestDeps(
		entity.AppointmentStatusPending,
		entity.AppointmentStatusCancelled,
	)
	uc := NewAppointmentUsecase(openBareDB(t), discardLog(), appointments, slots, audit)

	_, err := uc.UpdateStatus(context.Background(),
		appointments.appointment.ID, appointments.appointment.DoctorID, entity.AppointmentStatusConfirmed)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	assert.Empty(t, appointments.updated)
	assert.Empty(t, slots.flagCalls)
	assert.Zero(t, audit.entries)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	appointments, slots, audit := newStatusTestDeps(entity.AppointmentStatusPending)
	uc := NewAppointmentUsecase(openBareDB(t), discardLog(), appointments, slots, audit)

	_, err := uc.UpdateStatus(context.Background(),
		appointments.appointment.ID, appointments.appointment.DoctorID, entity.AppointmentStatus("archived"))
	assert.ErrorIs(t, err, ErrUnknownStatus)
	assert.Empty(t, appointments.updated)
}
