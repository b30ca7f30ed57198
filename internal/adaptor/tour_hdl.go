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

type TourHandler struct {
	service usecase.TourService
	log     *zap.Logger
}

func NewTourHandler(service usecase.TourService, log *zap.Logger) *TourHandler {
	return &TourHandler{
		service: service,
		log:     log.With(zap.String("handler", "tour")),
	}
}

// ListTours handles GET /api/tours (public)
func (h *TourHandler) ListTours(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 50),
	}

	tours, err := h.service.ListTours(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list tours")
		return
	}

	utils.ResponseSuccess(w, "success", tours)
}

// GetTour handles GET /api/tours/{id} (public)
func (h *TourHandler) GetTour(w http.ResponseWriter, r *http.Request) {
	tourID := chi.URLParam(r, "id")
	if tourID == "" {
		utils.ResponseBadRequest(w, "Tour ID is required", nil)
		return
	}

	tour, err := h.service.GetTour(r.Context(), tourID)
	if err != nil {
		handleServiceError(w, h.log, err, "get tour")
		return
	}

	utils.ResponseSuccess(w, "success", tour)
}

// CreateTour handles POST /api/tours (admin only)
func (h *TourHandler) CreateTour(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	tour, err := h.service.CreateTour(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create tour")
		return
	}

	utils.ResponseCreated(w, "success", tour)
}

// UpdateTour handles PUT /api/tours/{id} (admin only)
func (h *TourHandler) UpdateTour(w http.ResponseWriter, r *http.Request) {
	tourID := chi.URLParam(r, "id")
	if tourID == "" {
		utils.ResponseBadRequest(w, "Tour ID is required", nil)
		return
	}

	var req request.UpdateTourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	tour, err := h.service.UpdateTour(r.Context(), tourID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update tour")
		return
	}

	utils.ResponseSuccess(w, "success", tour)
}

// DeleteTour handles DELETE /api/tours/{id} (admin only)
func (h *TourHandler) DeleteTour(w http.ResponseWriter, r *http.Request) {
	tourID := chi.URLParam(r, "id")
	if tourID == "" {
		utils.ResponseBadRequest(w, "Tour ID is required", nil)
		return
	}

	if err := h.service.DeleteTour(r.Context(), tourID); err != nil {
		handleServiceError(w, h.log, err, "delete tour")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// RateTour handles POST /api/tours/{id}/rate (protected)
func (h *TourHandler) RateTour(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	tourID := chi.URLParam(r, "id")
	if tourID == "" {
		utils.ResponseBadRequest(w, "Tour ID is required", nil)
		return
	}

	var req request.RateTourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	stats, err := h.service.RateTour(r.Context(), userID, tourID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "rate tour")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

// ListRatings handles GET /api/tours/{id}/ratings (public)
func (h *TourHandler) ListRatings(w http.ResponseWriter, r *http.Request) {
	tourID := chi.URLParam(r, "id")
	if tourID == "" {
		utils.ResponseBadRequest(w, "Tour ID is required", nil)
		return
	}

	ratings, err := h.service.ListRatings(r.Context(), tourID)
	if err != nil {
		handleServiceError(w, h.log, err, "list ratings")
		return
	}

	utils.ResponseSuccess(w, "success", ratings)
}

// GetUserRating handles GET /api/tours/{id}/rating/{userId} (public)
func (h *TourHandler) GetUserRating(w http.ResponseWriter, r *http.Request) {
	tourID := chi.URLParam(r, "id")
	userID := chi.URLParam(r, "userId")
	if tourID == "" || userID == "" {
		utils.ResponseBadRequest(w, "Tour ID and user ID are required", nil)
		return
	}

	rating, err := h.service.GetUserRating(r.Context(), tourID, userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user rating")
		return
	}

	utils.ResponseSuccess(w, "success", rating)
}
