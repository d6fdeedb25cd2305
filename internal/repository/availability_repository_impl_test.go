package repository

import (
	"testing"
	"time"

	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Availability{}))
	return db
}

func marchDay(day int) time.Time {
	return time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
}

func makeSlot(doctorID uuid.UUID, date time.Time, start, end string) entity.Availability {
	available := true
	return entity.Availability{
		DoctorID:    doctorID,
		Date:        date,
		StartTime:   start,
		EndTime:     end,
		IsAvailable: &available,
	}
}

func TestBulkCreateIgnoreConflicts(t *testing.T) {
	db := openTestDB(t)
	repo := NewAvailabilityRepository()
	doctorID := uuid.New()

	slots := []entity.Availability{
		makeSlot(doctorID, marchDay(15), "09:00", "09:30"),
		makeSlot(doctorID, marchDay(15), "09:30", "10:00"),
	}
	require.NoError(t, repo.BulkCreateIgnoreConflicts(db, slots))

	// Re-inserting the same keys must not error and must not duplicate rows
	duplicate := []entity.Availability{
		makeSlot(doctorID, marchDay(15), "09:00", "09:30"),
		makeSlot(doctorID, marchDay(15), "10:00", "10:30"),
	}
	require.NoError(t, repo.BulkCreateIgnoreConflicts(db, duplicate))

	var count int64
	require.NoError(t, db.Model(&entity.Availability{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestBulkCreateIgnoreConflicts_Empty(t *testing.T) {
	db := openTestDB(t)
	repo := NewAvailabilityRepository()

	assert.NoError(t, repo.BulkCreateIgnoreConflicts(db, nil))
}

func TestAvailabilityRejectsInvertedTimes(t *testing.T) {
	db := openTestDB(t)

	slot := makeSlot(uuid.New(), marchDay(15), "10:00", "09:30")
	err := db.Create(&slot).Error
	assert.ErrorIs(t, err, entity.ErrInvalidSlotTimes)
}

func TestFindSlotKeys(t *testing.T) {
	db := openTestDB(t)
	repo := NewAvailabilityRepository()
	doctorID := uuid.New()

	slots := []entity.Availability{
		makeSlot(doctorID, marchDay(15), "09:00", "09:30"),
		makeSlot(doctorID, marchDay(15), "09:30", "10:00"),
		makeSlot(doctorID, marchDay(16), "09:00", "09:30"),
		makeSlot(uuid.New(), marchDay(15), "09:00", "09:30"),
	}
	require.NoError(t, repo.BulkCreateIgnoreConflicts(db, slots))

	keys, err := repo.FindSlotKeys(db, doctorID, marchDay(15))
	require.NoError(t, err)
	assert.Len(t, keys, 2)
}

func TestFindAvailableByDoctorAndDate(t *testing.T) {
	db := openTestDB(t)
	repo := NewAvailabilityRepository()
	doctorID := uuid.New()

	// Inserted out of order; a booked slot and another doctor's slot must be
	// filtered out of the listing
	booked := makeSlot(doctorID, marchDay(15), "11:00", "11:30")
	unavailable := false
	booked.IsAvailable = &unavailable

	slots := []entity.Availability{
		makeSlot(doctorID, marchDay(15), "10:00", "10:30"),
		makeSlot(doctorID, marchDay(15), "09:00", "09:30"),
		booked,
		makeSlot(uuid.New(), marchDay(15), "09:00", "09:30"),
	}
	require.NoError(t, repo.BulkCreateIgnoreConflicts(db, slots))

	found, err := repo.FindAvailableByDoctorAndDate(db, doctorID, marchDay(15))
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "09:00", found[0].StartTime)
	assert.Equal(t, "10:00", found[1].StartTime)
}

func TestUpdateFlag(t *testing.T) {
	db := openTestDB(t)
	repo := NewAvailabilityRepository()
	doctorID := uuid.New()

	slot := makeSlot(doctorID, marchDay(15), "09:00", "09:30")
	require.NoError(t, db.Create(&slot).Error)

	require.NoError(t, repo.UpdateFlag(db, slot.ID, false))

	reloaded, err := repo.FindByID(db, slot.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.False(t, reloaded.Available())

	require.NoError(t, repo.UpdateFlag(db, slot.ID, true))

	reloaded, err = repo.FindByID(db, slot.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Available())
}

func TestFindByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewAvailabilityRepository()

	slot, err := repo.FindByID(db, 12345)
	require.NoError(t, err)
	assert.Nil(t, slot)
}
