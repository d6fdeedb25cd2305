package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Abdudhi100/dr-olaosebikan/internal/delivery/dto"
	"github.com/Abdudhi100/dr-olaosebikan/internal/delivery/http/middleware"
	"github.com/Abdudhi100/dr-olaosebikan/internal/usecase"
	"github.com/Abdudhi100/dr-olaosebikan/pkg/response"
	"github.com/Abdudhi100/dr-olaosebikan/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PublicationHandler struct {
	publicationUsecase usecase.PublicationUsecase
	validator          *validator.CustomValidator
}

func NewPublicationHandler(publicationUsecase usecase.PublicationUsecase, validator *validator.CustomValidator) *PublicationHandler {
	return &PublicationHandler{
		publicationUsecase: publicationUsecase,
		validator:          validator,
	}
}

func (h *PublicationHandler) ListPublications(w http.ResponseWriter, r *http.Request) {
	featuredOnly := r.URL.Query().Get("featured") == "true"

	publications, err := h.publicationUsecase.ListPublications(r.Context(), featuredOnly)
	if err != nil {
		response.InternalServerError(w, "Failed to get publications")
		return
	}

	response.Success(w, http.StatusOK, "Publications retrieved successfully", publications)
}

func (h *PublicationHandler) ListAchievements(w http.ResponseWriter, r *http.Request) {
	achievements, err := h.publicationUsecase.ListAchievements(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get achievements")
		return
	}

	response.Success(w, http.StatusOK, "Achievements retrieved successfully", achievements)
}

func (h *PublicationHandler) CreatePublication(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreatePublicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	publication, err := h.publicationUsecase.CreatePublication(r.Context(), doctorID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create publication")
		return
	}

	response.Success(w, http.StatusCreated, "Publication created successfully", publication)
}

func (h *PublicationHandler) DeletePublication(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	publicationID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid publication ID", nil)
		return
	}

	if err := h.publicationUsecase.DeletePublication(r.Context(), doctorID, publicationID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrPublicationNotFound):
			response.NotFound(w, "Publication not found")
		default:
			response.InternalServerError(w, "Failed to delete publication")
		}
		return
	}

	response.Success(w, http.StatusOK, "Publication deleted successfully", nil)
}

func (h *PublicationHandler) CreateAchievement(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateAchievementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	achievement, err := h.publicationUsecase.CreateAchievement(r.Context(), doctorID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create achievement")
		return
	}

	response.Success(w, http.StatusCreated, "Achievement created successfully", achievement)
}
