package adaptor

import (
	"encoding/json"
	"net/http"

	"tourvista/internal/dto/request"
	"tourvista/internal/usecase"
	"tourvista/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SavedTourHandler struct {
	service usecase.SavedTourService
	log     *zap.Logger
}

func NewSavedTourHandler(service usecase.SavedTourService, log *zap.Logger) *SavedTourHandler {
	return &SavedTourHandler{
		service: service,
		log:     log.With(zap.String("handler", "saved_tour")),
	}
}

// ListSaved handles GET /api/saved/{userId} (protected)
func (h *SavedTourHandler) ListSaved(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	callerRole, _ := utils.GetRoleFromContext(r.Context())

	targetUserID := chi.URLParam(r, "userId")
	if targetUserID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	tours, err := h.service.ListSaved(r.Context(), callerID, callerRole, targetUserID)
	if err != nil {
		handleServiceError(w, h.log, err, "list saved tours")
		return
	}

	utils.ResponseSuccess(w, "success", tours)
}

// SaveTour handles POST /api/saved (protected)
func (h *SavedTourHandler) SaveTour(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.SaveTourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.SaveTour(r.Context(), userID, req.TourID); err != nil {
		handleServiceError(w, h.log, err, "save tour")
		return
	}

	utils.ResponseCreated(w, "success", nil)
}

// RemoveSaved handles DELETE /api/saved/{userId}/{tourId} (protected)
func (h *SavedTourHandler) RemoveSaved(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	targetUserID := chi.URLParam(r, "userId")
	tourID := chi.URLParam(r, "tourId")
	if targetUserID == "" || tourID == "" {
		utils.ResponseBadRequest(w, "User ID and tour ID are required", nil)
		return
	}

	if err := h.service.RemoveSaved(r.Context(), callerID, targetUserID, tourID); err != nil {
		handleServiceError(w, h.log, err, "remove saved tour")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
