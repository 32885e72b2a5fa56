package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mydocmaker/api/internal/models"
	"github.com/mydocmaker/api/internal/services"
)

//go:generate mockgen -source=proxy.go -destination=proxy_mock_test.go -package=handlers

// ProxyRunner defines the interface for the database proxy
type ProxyRunner interface {
	Execute(ctx context.Context, userID string, req models.ProxyRequest) (json.RawMessage, error)
}

// NewDatabaseProxyHandler runs a user-scoped query
// @Summary Database proxy
// @Description Runs a select, insert, update, delete or rpc against an allowlisted table or function, always scoped to the caller
// @Tags database
// @Accept json
// @Produce json
// @Param request body models.ProxyRequest true "Proxy Request"
// @Success 200 {object} models.ProxyResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /database-proxy [post]
// @Security FirebaseToken
func NewDatabaseProxyHandler(svc ProxyRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req models.ProxyRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		data, err := svc.Execute(r.Context(), user.UserID, req)
		if err != nil {
			if errors.Is(err, services.ErrInvalidProxyRequest) || errors.Is(err, services.ErrProxyQueryFailed) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}

		writeJSON(w, http.StatusOK, models.ProxyResponse{Data: data})
	}
}

// RegisterDatabaseProxyHandler registers the database proxy route
func RegisterDatabaseProxyHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/database-proxy", h)
}
