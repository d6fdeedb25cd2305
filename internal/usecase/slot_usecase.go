package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/Abdudhi100/dr-olaosebikan/internal/converter"
	"github.com/Abdudhi100/dr-olaosebikan/internal/delivery/dto"
	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/entity"
	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrServiceNotFound = errors.New("service not found")

type SlotUsecase interface {
	// GetSlots is the public slot listing: validates the booking window, then
	// materializes and returns the available slots for (service, date).
	GetSlots(ctx context.Context, serviceID uuid.UUID, date string) (*dto.SlotListResponse, error)
	// EnsureAndListSlots materializes any missing slots for the service's day
	// and returns all currently-available ones, ascending by start time.
	EnsureAndListSlots(ctx context.Context, service *entity.Service, day time.Time) ([]entity.Availability, error)
}

type slotUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	calendar     *ClinicCalendar
	serviceRepo  repository.ServiceRepository
	availability repository.AvailabilityRepository
}

func NewSlotUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	calendar *ClinicCalendar,
	serviceRepo repository.ServiceRepository,
	availabilityRepo repository.AvailabilityRepository,
) SlotUsecase {
	return &slotUsecase{
		db:           db,
		log:          log,
		calendar:     calendar,
		serviceRepo:  serviceRepo,
		availability: availabilityRepo,
	}
}

func (u *slotUsecase) GetSlots(ctx context.Context, serviceID uuid.UUID, date string) (*dto.SlotListResponse, error) {
	service, err := u.serviceRepo.FindActiveByID(u.db.WithContext(ctx), serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", serviceID, err)
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	chosenDate, err := u.calendar.ParseDate(date)
	if err != nil {
		return nil, err
	}
	if err := u.calendar.ValidateDate(chosenDate); err != nil {
		return nil, err
	}

	slots, err := u.EnsureAndListSlots(ctx, service, chosenDate)
	if err != nil {
		return nil, err
	}

	return &dto.SlotListResponse{
		ServiceID: service.ID,
		Date:      date,
		Slots:     converter.AvailabilitiesToSlotResponses(slots),
		Total:     len(slots),
	}, nil
}

// EnsureAndListSlots is idempotent materialization: N concurrent calls for the
// same (doctor, date) converge to one row per distinct (start, end) and never
// error the caller on conflicts. The post-insert re-query reflects true DB
// state, including rows a racing request created first.
func (u *slotUsecase) EnsureAndListSlots(ctx context.Context, service *entity.Service, day time.Time) ([]entity.Availability, error) {
	db := u.db.WithContext(ctx)

	candidates := u.calendar.SlotCandidates(service.SlotMinutes())
	if len(candidates) == 0 {
		return nil, nil
	}

	existing, err := u.availability.FindSlotKeys(db, service.DoctorID, day)
	if err != nil {
		u.log.Warnf("Failed to load slot keys for doctor %s on %s: %+v", service.DoctorID, day.Format("2006-01-02"), err)
		return nil, err
	}

	persisted := make(map[repository.SlotKey]struct{}, len(existing))
	for _, key := range existing {
		persisted[key] = struct{}{}
	}

	var missing []entity.Availability
	available := true
	for _, candidate := range candidates {
		if _, ok := persisted[candidate]; ok {
			continue
		}
		missing = append(missing, entity.Availability{
			DoctorID:    service.DoctorID,
			Date:        day,
			StartTime:   candidate.StartTime,
			EndTime:     candidate.EndTime,
			IsAvailable: &available,
		})
	}

	if err := u.availability.BulkCreateIgnoreConflicts(db, missing); err != nil {
		u.log.Warnf("Failed to materialize %d slots for doctor %s on %s: %+v", len(missing), service.DoctorID, day.Format("2006-01-02"), err)
		return nil, err
	}

	return u.availability.FindAvailableByDoctorAndDate(db, service.DoctorID, day)
}
