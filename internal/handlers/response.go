package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mydocmaker/api/internal/facades"
	"github.com/mydocmaker/api/internal/logger"
	"github.com/mydocmaker/api/internal/middlewares"
	"github.com/mydocmaker/api/internal/models"
	"github.com/mydocmaker/api/internal/services"
)

const (
	maxBodyBytes = 1 << 20

	msgInvalidBody    = "invalid request body"
	msgInternal       = "Internal server error"
	msgRateLimited    = "Rate limit exceeded. Please try again in a moment."
	msgCreditsOut     = "AI credits exhausted. Please add funds to your workspace."
	msgAIServiceError = "AI service error"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

// decodeJSON reads a bounded JSON body. Numbers are kept as json.Number.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%s: %w", msgInvalidBody, err)
	}
	return nil
}

// currentUser returns the authenticated caller or answers 401.
func currentUser(w http.ResponseWriter, r *http.Request) (*models.AuthUser, bool) {
	user := middlewares.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, middlewares.AuthRequiredMessage)
		return nil, false
	}
	return user, true
}

// writeGenerationError maps quota, validation and provider failures to responses.
func writeGenerationError(w http.ResponseWriter, r *http.Request, err error) {
	var limitErr *services.LimitError
	var upstream *facades.UpstreamError

	switch {
	case errors.Is(err, services.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &limitErr):
		writeError(w, http.StatusForbidden, limitErr.Message())
	case errors.As(err, &upstream):
		switch upstream.StatusCode {
		case http.StatusTooManyRequests:
			writeError(w, http.StatusTooManyRequests, msgRateLimited)
		case http.StatusPaymentRequired:
			writeError(w, http.StatusPaymentRequired, msgCreditsOut)
		default:
			writeError(w, http.StatusBadGateway, msgAIServiceError)
		}
	case errors.Is(err, services.ErrInvalidModelOutput),
		errors.Is(err, facades.ErrEmptyResponse),
		errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusBadGateway, msgAIServiceError)
	default:
		logger.Log.Errorw("generation failed", "uri", r.RequestURI, "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}
