package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mydocmaker/api/internal/models"
)

//go:generate mockgen -source=image.go -destination=image_mock_test.go -package=handlers

// ImageGenerator defines the interface for image generation
type ImageGenerator interface {
	GenerateImages(ctx context.Context, user *models.AuthUser, req models.ImageRequest) (*models.ImageResponse, error)
}

// NewGenerateImageHandler generates images
// @Summary Generate images
// @Description Generates 1 to 4 images. Consumes one images_generated credit per image.
// @Tags generation
// @Accept json
// @Produce json
// @Param request body models.ImageRequest true "Image Request"
// @Success 200 {object} models.ImageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 402 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /generate-image [post]
// @Security FirebaseToken
func NewGenerateImageHandler(svc ImageGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req models.ImageRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		resp, err := svc.GenerateImages(r.Context(), user, req)
		if err != nil {
			writeGenerationError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// RegisterGenerateImageHandler registers the image generation route
func RegisterGenerateImageHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/generate-image", h)
}
