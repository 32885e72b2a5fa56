package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mydocmaker/api/internal/logger"
	"github.com/mydocmaker/api/internal/models"
)

//go:generate mockgen -source=usage.go -destination=usage_mock_test.go -package=handlers

// UsageReporter defines the interface for reading today's usage
type UsageReporter interface {
	Today(ctx context.Context, user *models.AuthUser) (*models.UsageResponse, error)
}

// NewUsageHandler returns today's usage
// @Summary Get today's usage
// @Description Returns the caller's counters for the current UTC day together with the tier limits
// @Tags usage
// @Produce json
// @Success 200 {object} models.UsageResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /usage [get]
// @Security FirebaseToken
func NewUsageHandler(svc UsageReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		resp, err := svc.Today(r.Context(), user)
		if err != nil {
			logger.Log.Errorw("failed to load usage", "userID", user.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// RegisterUsageHandler registers the usage route
func RegisterUsageHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/usage", h)
}
