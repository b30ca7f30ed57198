package wire

import (
	"tourvista/internal/adaptor"
	"tourvista/internal/data/repository"
	"tourvista/internal/usecase"
	"tourvista/pkg/database"
	"tourvista/pkg/middleware"
	"tourvista/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(db database.PgxIface, repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, db, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	db database.PgxIface,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, config, logger)
	wireTour(r, handler.Tour, repo, config, logger)
	wireBooking(r, handler.Booking, config, logger)
	wireSaved(r, handler.Saved, config, logger)
	wireAdmin(r, handler.Admin, repo, config, logger)

	// Health and debug endpoints
	health := adaptor.NewHealthHandler(db, config, logger)
	r.Get("/api/health", health.Health)
	r.Get("/api/debug", health.Debug)

	return r
}
