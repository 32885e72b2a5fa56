package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mydocmaker/api/internal/logger"
	"github.com/mydocmaker/api/internal/models"
)

//go:generate mockgen -source=health.go -destination=health_mock_test.go -package=handlers

// Pinger checks the database connection
type Pinger interface {
	PingContext(ctx context.Context) error
}

const healthTimeout = 2 * time.Second

// NewHealthHandler reports whether Postgres is reachable
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.HealthResponse
// @Router /healthz [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Log.Errorw("health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, models.HealthResponse{OK: false})
			return
		}
		writeJSON(w, http.StatusOK, models.HealthResponse{OK: true})
	}
}

// RegisterHealthHandler registers the health route
func RegisterHealthHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/healthz", h)
}
