package wire

import (
	"tourvista/internal/adaptor"
	"tourvista/internal/data/repository"
	"tourvista/pkg/middleware"
	"tourvista/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	// Require both authentication AND admin role
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/admin/users - List all users
		r.Get("/users", adminHandler.ListUsers)

		// DELETE /api/admin/users/{id} - Remove a user account
		r.Delete("/users/{id}", adminHandler.DeleteUser)

		// GET /api/admin/bookings - List all bookings
		r.Get("/bookings", adminHandler.ListBookings)

		// PATCH /api/admin/bookings/{id}/status - Set any booking status.
		// PUT is kept as an alias for older clients.
		r.Patch("/bookings/{id}/status", adminHandler.UpdateBookingStatus)
		r.Put("/bookings/{id}/status", adminHandler.UpdateBookingStatus)

		// GET /api/admin/stats - Dashboard summary numbers
		r.Get("/stats", adminHandler.GetStats)
	})
}
