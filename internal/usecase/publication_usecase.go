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

var ErrPublicationNotFound = errors.New("publication not found")

type PublicationUsecase interface {
	ListPublications(ctx context.Context, featuredOnly bool) (*dto.PublicationListResponse, error)
	ListAchievements(ctx context.Context) (*dto.AchievementListResponse, error)
	CreatePublication(ctx context.Context, doctorID uuid.UUID, req *dto.CreatePublicationRequest) (*dto.PublicationResponse, error)
	DeletePublication(ctx context.Context, doctorID, id uuid.UUID) error
	CreateAchievement(ctx context.Context, doctorID uuid.UUID, req *dto.CreateAchievementRequest) (*dto.AchievementResponse, error)
}

type publicationUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	publicationRepo repository.PublicationRepository
	achievementRepo repository.AchievementRepository
	auditService    service.AuditService
}

func NewPublicationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	publicationRepo repository.PublicationRepository,
	achievementRepo repository.AchievementRepository,
	auditService service.AuditService,
) PublicationUsecase {
	return &publicationUsecase{
		db:              db,
		log:             log,
		publicationRepo: publicationRepo,
		achievementRepo: achievementRepo,
		auditService:    auditService,
	}
}

func (u *publicationUsecase) ListPublications(ctx context.Context, featuredOnly bool) (*dto.PublicationListResponse, error) {
	publications, err := u.publicationRepo.FindPublished(u.db.WithContext(ctx), featuredOnly)
	if err != nil {
		u.log.Warnf("Failed to list publications: %+v", err)
		return nil, err
	}

	return &dto.PublicationListResponse{
		Publications: converter.PublicationsToResponses(publications),
		Total:        len(publications),
	}, nil
}

func (u *publicationUsecase) ListAchievements(ctx context.Context) (*dto.AchievementListResponse, error) {
	achievements, err := u.achievementRepo.FindPublished(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list achievements: %+v", err)
		return nil, err
	}

	return &dto.AchievementListResponse{
		Achievements: converter.AchievementsToResponses(achievements),
		Total:        len(achievements),
	}, nil
}

func (u *publicationUsecase) CreatePublication(ctx context.Context, doctorID uuid.UUID, req *dto.CreatePublicationRequest) (*dto.PublicationResponse, error) {
	published := true
	if req.IsPublished != nil {
		published = *req.IsPublished
	}

	publication := &entity.Publication{
		DoctorID:    doctorID,
		Title:       req.Title,
		Journal:     req.Journal,
		Year:        req.Year,
		Authors:     req.Authors,
		Abstract:    req.Abstract,
		DOILink:     req.DOILink,
		IsFeatured:  req.IsFeatured,
		IsPublished: &published,
	}

	if err := u.publicationRepo.Create(u.db.WithContext(ctx), publication); err != nil {
		u.log.Warnf("Failed to create publication: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &doctorID, entity.AuditActionPublicationCreate,
		"publication", publication.ID.String(), publication)

	return converter.PublicationToResponse(publication), nil
}

func (u *publicationUsecase) DeletePublication(ctx context.Context, doctorID, id uuid.UUID) error {
	publication, err := u.publicationRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find publication %s: %+v", id, err)
		return err
	}
	if publication == nil || publication.DoctorID != doctorID {
		return ErrPublicationNotFound
	}

	affected, err := u.publicationRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete publication %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrPublicationNotFound
	}

	u.auditService.LogDelete(ctx, u.db.WithContext(ctx), &doctorID, entity.AuditActionPublicationDelete,
		"publication", id.String(), publication)

	return nil
}

func (u *publicationUsecase) CreateAchievement(ctx context.Context, doctorID uuid.UUID, req *dto.CreateAchievementRequest) (*dto.AchievementResponse, error) {
	published := true
	if req.IsPublished != nil {
		published = *req.IsPublished
	}

	achievement := &entity.Achievement{
		DoctorID:     doctorID,
		Title:        req.Title,
		Description:  req.Description,
		Year:         req.Year,
		Organization: req.Organization,
		IsPublished:  &published,
	}

	if err := u.achievementRepo.Create(u.db.WithContext(ctx), achievement); err != nil {
		u.log.Warnf("Failed to create achievement: %+v", err)
		return nil, err
	}

	return converter.AchievementToResponse(achievement), nil
}
