package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/Abdudhi100/dr-olaosebikan/config"
	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/entity"
	"github.com/Abdudhi100/dr-olaosebikan/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func bookingDay(day int) time.Time {
	return time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
}

func newSlotTestDeps(t *testing.T) (*gorm.DB, SlotUsecase) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Availability{}))

	log := logrus.New()
	log.SetOutput(io.Discard)

	calendar, err := NewClinicCalendar(config.ClinicConfig{
		DayStart:      "09:00",
		DayEnd:        "17:00",
		LookaheadDays: 60,
		Timezone:      "UTC",
	})
	require.NoError(t, err)
	calendar = calendar.WithClock(func() time.Time {
		return time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC)
	})

	uc := NewSlotUsecase(db, log, calendar,
		repository.NewServiceRepository(),
		repository.NewAvailabilityRepository())
	return db, uc
}

func TestEnsureAndListSlots_MaterializesDay(t *testing.T) {
	db, uc := newSlotTestDeps(t)

	service := &entity.Service{
		ID:              uuid.New(),
		DoctorID:        uuid.New(),
		DurationMinutes: 30,
	}

	slots, err := uc.EnsureAndListSlots(context.Background(), service, bookingDay(15))
	require.NoError(t, err)
	require.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "09:30", slots[0].EndTime)
	assert.Equal(t, "16:30", slots[15].StartTime)

	var count int64
	require.NoError(t, db.Model(&entity.Availability{}).Count(&count).Error)
	assert.EqualValues(t, 16, count)
}

func TestEnsureAndListSlots_Idempotent(t *testing.T) {
	db, uc := newSlotTestDeps(t)

	service := &entity.Service{
		ID:              uuid.New(),
		DoctorID:        uuid.New(),
		DurationMinutes: 30,
	}

	first, err := uc.EnsureAndListSlots(context.Background(), service, bookingDay(15))
	require.NoError(t, err)

	second, err := uc.EnsureAndListSlots(context.Background(), service, bookingDay(15))
	require.NoError(t, err)
	require.Len(t, second, len(first))

	// A second pass reuses the persisted rows instead of inserting new ones
	var count int64
	require.NoError(t, db.Model(&entity.Availability{}).Count(&count).Error)
	assert.EqualValues(t, 16, count)
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestEnsureAndListSlots_SkipsBookedSlots(t *testing.T) {
	db, uc := newSlotTestDeps(t)

	service := &entity.Service{
		ID:              uuid.New(),
		DoctorID:        uuid.New(),
		DurationMinutes: 60,
	}

	slots, err := uc.EnsureAndListSlots(context.Background(), service, bookingDay(15))
	require.NoError(t, err)
	require.Len(t, slots, 8)

	// Booking flips the flag; the slot must drop out of the listing without
	// being re-materialized
	err = db.Model(&entity.Availability{}).
		Where("id = ?", slots[0].ID).
		UpdateColumn("is_available", false).Error
	require.NoError(t, err)

	remaining, err := uc.EnsureAndListSlots(context.Background(), service, bookingDay(15))
	require.NoError(t, err)
	require.Len(t, remaining, 7)
	assert.Equal(t, "10:00", remaining[0].StartTime)

	var count int64
	require.NoError(t, db.Model(&entity.Availability{}).Count(&count).Error)
	assert.EqualValues(t, 8, count)
}

func TestEnsureAndListSlots_DaysAreIndependent(t *testing.T) {
	_, uc := newSlotTestDeps(t)

	service := &entity.Service{
		ID:              uuid.New(),
		DoctorID:        uuid.New(),
		DurationMinutes: 30,
	}

	day1, err := uc.EnsureAndListSlots(context.Background(), service, bookingDay(15))
	require.NoError(t, err)
	day2, err := uc.EnsureAndListSlots(context.Background(), service, bookingDay(16))
	require.NoError(t, err)

	assert.Len(t, day1, 16)
	assert.Len(t, day2, 16)
	assert.NotEqual(t, day1[0].ID, day2[0].ID)
}
