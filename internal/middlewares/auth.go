package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mydocmaker/api/internal/logger"
	"github.com/mydocmaker/api/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock_test.go -package=middlewares

// AuthRequiredMessage is returned with every 401.
const AuthRequiredMessage = "Authentication required. Please sign in to continue."

// Authenticator defines the minimal interface needed by the middleware
type Authenticator interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Authenticate(ctx context.Context, token string) (*models.AuthUser, error)
}

type userKey struct{}

// AuthMiddleware returns a middleware that verifies the Firebase ID token and
// stores the caller in the request context.
func AuthMiddleware(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, err := auth.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "uri", r.RequestURI, "err", err)
				unauthorized(w)
				return
			}

			user, err := auth.Authenticate(ctx, token)
			if err != nil {
				logger.Log.Infow("authorization failed", "uri", r.RequestURI, "err", err)
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: AuthRequiredMessage})
}

// WithUser stores the authenticated user in ctx.
func WithUser(ctx context.Context, user *models.AuthUser) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext returns the authenticated user, or nil outside AuthMiddleware.
func UserFromContext(ctx context.Context) *models.AuthUser {
	user, _ := ctx.Value(userKey{}).(*models.AuthUser)
	return user
}
