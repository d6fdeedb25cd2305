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
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrServiceNameTaken = errors.New("a service with this name already exists")
	ErrInvalidDuration  = errors.New("service duration must be at least 1 minute")
)

type ServiceUsecase interface {
	ListServices(ctx context.Context, activeOnly bool) (*dto.ServiceListResponse, error)
	GetService(ctx context.Context, id uuid.UUID) (*dto.ServiceResponse, error)
	CreateService(ctx context.Context, doctorID uuid.UUID, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	UpdateService(ctx context.Context, doctorID, id uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	DeleteService(ctx context.Context, doctorID, id uuid.UUID) error
}

type serviceUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	serviceRepo  repository.ServiceRepository
	auditService service.AuditService
}

func NewServiceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	serviceRepo repository.ServiceRepository,
	auditService service.AuditService,
) ServiceUsecase {
	return &serviceUsecase{
		db:           db,
		log:          log,
		serviceRepo:  serviceRepo,
		auditService: auditService,
	}
}

func (u *serviceUsecase) ListServices(ctx context.Context, activeOnly bool) (*dto.ServiceListResponse, error) {
	services, err := u.serviceRepo.FindAll(u.db.WithContext(ctx), activeOnly)
	if err != nil {
		u.log.Warnf("Failed to list services: %+v", err)
		return nil, err
	}

	return &dto.ServiceListResponse{
		Services: converter.ServicesToResponses(services),
		Total:    len(services),
	}, nil
}

func (u *serviceUsecase) GetService(ctx context.Context, id uuid.UUID) (*dto.ServiceResponse, error) {
	svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", id, err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	return converter.ServiceToResponse(svc), nil
}

func (u *serviceUsecase) CreateService(ctx context.Context, doctorID uuid.UUID, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if req.DurationMinutes < 1 {
		return nil, ErrInvalidDuration
	}

	price := decimal.Zero
	if req.Price != "" {
		parsed, err := decimal.NewFromString(req.Price)
		if err != nil {
			return nil, errors.New("invalid price value")
		}
		price = parsed
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	svc := &entity.Service{
		DoctorID:        doctorID,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           price,
		IsActive:        &active,
		Position:        req.Position,
		Icon:            req.Icon,
	}

	if err := u.serviceRepo.Create(u.db.WithContext(ctx), svc); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrServiceNameTaken
		}
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &doctorID, entity.AuditActionServiceCreate,
		"service", svc.ID.String(), svc)

	return converter.ServiceToResponse(svc), nil
}

func (u *serviceUsecase) UpdateService(ctx context.Context, doctorID, id uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", id, err)
		return nil, err
	}
	if svc == nil || svc.DoctorID != doctorID {
		return nil, ErrServiceNotFound
	}

	if req.Name != "" {
		svc.Name = req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes < 1 {
			return nil, ErrInvalidDuration
		}
		// Existing slots keep their original length; new days pick this up.
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.Price != nil {
		parsed, err := decimal.NewFromString(*req.Price)
		if err != nil {
			return nil, errors.New("invalid price value")
		}
		svc.Price = parsed
	}
	if req.IsActive != nil {
		svc.IsActive = req.IsActive
	}
	if req.Position != nil {
		svc.Position = *req.Position
	}
	if req.Icon != nil {
		svc.Icon = *req.Icon
	}

	if err := u.serviceRepo.Update(u.db.WithContext(ctx), svc); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrServiceNameTaken
		}
		u.log.Warnf("Failed to update service %s: %+v", id, err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &doctorID, entity.AuditActionServiceUpdate,
		"service", svc.ID.String(), nil, svc)

	return converter.ServiceToResponse(svc), nil
}

func (u *serviceUsecase) DeleteService(ctx context.Context, doctorID, id uuid.UUID) error {
	svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", id, err)
		return err
	}
	if svc == nil || svc.DoctorID != doctorID {
		return ErrServiceNotFound
	}

	affected, err := u.serviceRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete service %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrServiceNotFound
	}

	u.auditService.LogDelete(ctx, u.db.WithContext(ctx), &doctorID, entity.AuditActionServiceDelete,
		"service", id.String(), svc)

	return nil
}
