package adaptor

import (
	"context"
	"net/http"
	"time"

	"tourvista/pkg/database"
	"tourvista/pkg/utils"

	"go.uber.org/zap"
)

var startTime = time.Now()

type HealthHandler struct {
	db     database.PgxIface
	config *utils.Config
	log    *zap.Logger
}

func NewHealthHandler(db database.PgxIface, config *utils.Config, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		config: config,
		log:    log.With(zap.String("handler", "health")),
	}
}

// Health handles GET /api/health (public). Reports liveness and whether
// the database answers a ping.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	dbStatus := "up"
	if err := h.db.Ping(ctx); err != nil {
		h.log.Error("Database ping failed", zap.Error(err))
		dbStatus = "down"
	}

	utils.ResponseSuccess(w, "success", map[string]string{
		"status":   "ok",
		"database": dbStatus,
	})
}

// Debug handles GET /api/debug (public). Basic runtime info for smoke
// checks, nothing sensitive is exposed here.
func (h *HealthHandler) Debug(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", map[string]any{
		"app":    h.config.App.Name,
		"debug":  h.config.App.Debug,
		"uptime": time.Since(startTime).Round(time.Second).String(),
	})
}
