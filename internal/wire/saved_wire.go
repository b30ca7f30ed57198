package wire

import (
	"tourvista/internal/adaptor"
	"tourvista/pkg/middleware"
	"tourvista/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSaved(
	r chi.Router,
	savedHandler *adaptor.SavedTourHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))

		// GET /api/saved/{userId} - List saved tours (own, or any as admin)
		r.Get("/api/saved/{userId}", savedHandler.ListSaved)

		// POST /api/saved - Save a tour for the authenticated user
		r.Post("/api/saved", savedHandler.SaveTour)

		// DELETE /api/saved/{userId}/{tourId} - Remove a saved tour
		r.Delete("/api/saved/{userId}/{tourId}", savedHandler.RemoveSaved)
	})
}
