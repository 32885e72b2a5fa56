package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mydocmaker/api/internal/models"
)

//go:generate mockgen -source=account.go -destination=account_mock_test.go -package=handlers

// AccountRemover defines the interface for deleting the caller's account
type AccountRemover interface {
	Delete(ctx context.Context, userID string) (map[string]int64, error)
}

// NewDeleteAccountHandler deletes the caller's account
// @Summary Delete account
// @Description Deletes every row owned by the caller in one transaction, then the stored media and the Firebase user
// @Tags account
// @Produce json
// @Success 200 {object} models.DeleteAccountResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /delete-account [post]
// @Security FirebaseToken
func NewDeleteAccountHandler(svc AccountRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		deleted, err := svc.Delete(r.Context(), user.UserID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}

		writeJSON(w, http.StatusOK, models.DeleteAccountResponse{Success: true, Deleted: deleted})
	}
}

// RegisterDeleteAccountHandler registers the account deletion route
func RegisterDeleteAccountHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/delete-account", h)
}
