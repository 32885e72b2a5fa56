package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mydocmaker/api/internal/models"
)

//go:generate mockgen -source=voiceover.go -destination=voiceover_mock_test.go -package=handlers

// VoiceoverGenerator defines the interface for text-to-speech
type VoiceoverGenerator interface {
	GenerateVoiceover(ctx context.Context, user *models.AuthUser, req models.VoiceoverRequest) (*models.VoiceoverResponse, error)
}

// NewGenerateVoiceoverHandler synthesizes speech
// @Summary Generate a voiceover
// @Description Converts text to speech with ElevenLabs. Consumes one voiceovers_generated credit.
// @Tags generation
// @Accept json
// @Produce json
// @Param request body models.VoiceoverRequest true "Voiceover Request"
// @Success 200 {object} models.VoiceoverResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /generate-voiceover [post]
// @Security FirebaseToken
func NewGenerateVoiceoverHandler(svc VoiceoverGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req models.VoiceoverRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		resp, err := svc.GenerateVoiceover(r.Context(), user, req)
		if err != nil {
			writeGenerationError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// RegisterGenerateVoiceoverHandler registers the voiceover route
func RegisterGenerateVoiceoverHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/generate-voiceover", h)
}
