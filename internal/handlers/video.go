package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mydocmaker/api/internal/models"
)

//go:generate mockgen -source=video.go -destination=video_mock_test.go -package=handlers

// VideoGenerator defines the interface for video previews
type VideoGenerator interface {
	GenerateVideo(ctx context.Context, user *models.AuthUser, req models.VideoRequest) (*models.VideoResponse, error)
}

// NewGenerateVideoHandler generates a storyboard video preview
// @Summary Generate a video preview
// @Description Generates a storyboard with one keyframe per scene. Consumes one videos_generated credit.
// @Tags generation
// @Accept json
// @Produce json
// @Param request body models.VideoRequest true "Video Request"
// @Success 200 {object} models.VideoResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 402 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /generate-video [post]
// @Security FirebaseToken
func NewGenerateVideoHandler(svc VideoGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req models.VideoRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		resp, err := svc.GenerateVideo(r.Context(), user, req)
		if err != nil {
			writeGenerationError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// RegisterGenerateVideoHandler registers the video generation route
func RegisterGenerateVideoHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/generate-video", h)
}
