package wire

import (
	"tourvista/internal/adaptor"
	"tourvista/internal/data/repository"
	"tourvista/pkg/middleware"
	"tourvista/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTour(
	r chi.Router,
	tourHandler *adaptor.TourHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/tours", tourHandler.ListTours)
	r.Get("/api/tours/{id}", tourHandler.GetTour)
	r.Get("/api/tours/{id}/ratings", tourHandler.ListRatings)
	r.Get("/api/tours/{id}/rating/{userId}", tourHandler.GetUserRating)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AuthJWT(config.JWT, log)).
		Post("/api/tours/{id}/rate", tourHandler.RateTour)

	// ==================== ADMIN ROUTES ====================
	// Catalog management requires authentication AND admin role
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/api/tours", tourHandler.CreateTour)
		r.Put("/api/tours/{id}", tourHandler.UpdateTour)
		r.Delete("/api/tours/{id}", tourHandler.DeleteTour)
	})
}
