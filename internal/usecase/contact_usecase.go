package usecase

import (
	"context"

	"github.com/Abdudhi100/dr-olaosebikan/internal/delivery/dto"
	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/entity"
	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/repository"
	"github.com/Abdudhi100/dr-olaosebikan/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ContactUsecase interface {
	// CreateWhatsAppLink records the contact intent and returns a wa.me deep
	// link that opens a chat with the clinic, pre-filled with the message.
	CreateWhatsAppLink(ctx context.Context, req *dto.WhatsAppContactRequest) (*dto.WhatsAppLinkResponse, error)
}

type contactUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	intentRepo repository.MessageIntentRepository
	links      *service.WhatsAppLinkBuilder
}

func NewContactUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	intentRepo repository.MessageIntentRepository,
	links *service.WhatsAppLinkBuilder,
) ContactUsecase {
	return &contactUsecase{
		db:         db,
		log:        log,
		intentRepo: intentRepo,
		links:      links,
	}
}

func (u *contactUsecase) CreateWhatsAppLink(ctx context.Context, req *dto.WhatsAppContactRequest) (*dto.WhatsAppLinkResponse, error) {
	purpose := entity.MessageIntentPurpose(req.Purpose)
	switch purpose {
	case entity.PurposeAppointment, entity.PurposeFollowUp, entity.PurposeGeneral:
	default:
		purpose = entity.PurposeGeneral
	}

	intent := &entity.MessageIntent{
		PatientName: req.Name,
		Phone:       req.Phone,
		Purpose:     purpose,
		Status:      entity.IntentRedirected,
	}

	// The redirect still happens if recording the intent fails; the intent
	// trail is analytics, not a gate.
	if err := u.intentRepo.Create(u.db.WithContext(ctx), intent); err != nil {
		u.log.Warnf("Failed to record message intent: %+v", err)
	}

	return &dto.WhatsAppLinkResponse{
		Link: u.links.BuildLink(req.Message),
	}, nil
}
