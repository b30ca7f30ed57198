package wire

import (
	"tourvista/internal/adaptor"
	"tourvista/pkg/middleware"
	"tourvista/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))

		// POST /api/bookings - Create new booking
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/bookings/user/{userId} - Booking history (own, or any as admin)
		r.Get("/api/bookings/user/{userId}", bookingHandler.GetUserBookings)

		// PATCH /api/bookings/{id}/status - Cancel own booking, any change as admin.
		// PUT on the resource is kept as an alias for older clients.
		r.Patch("/api/bookings/{id}/status", bookingHandler.UpdateStatus)
		r.Put("/api/bookings/{id}", bookingHandler.UpdateStatus)
		r.Put("/api/bookings/{id}/status", bookingHandler.UpdateStatus)

		// DELETE /api/bookings/{id} - Remove a booking record
		r.Delete("/api/bookings/{id}", bookingHandler.DeleteBooking)
	})
}
