package services

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/mydocmaker/api/internal/firebase"
	"github.com/mydocmaker/api/internal/logger"
	"github.com/mydocmaker/api/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock_test.go -package=services

// TokenVerifier verifies a Firebase ID token and returns its owner.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*models.AuthUser, error)
}

// RoleReader defines read-only access to user_roles.
type RoleReader interface {
	GetByUserID(ctx context.Context, userID string) (*models.UserRoleDB, error)
}

// RoleCache caches resolved tiers. Readers Fill on a miss, which never replaces a tier
// a writer Set after its commit, so a slow read cannot cache a stale role.
type RoleCache interface {
	Get(ctx context.Context, userID string) (models.Tier, error)
	Fill(ctx context.Context, userID string, tier models.Tier) (bool, error)
	Set(ctx context.Context, userID string, tier models.Tier) error
}

// AuthService resolves the caller of a request.
type AuthService struct {
	verifier TokenVerifier
	roles    RoleReader
	cache    RoleCache
}

// NewAuthService creates a new AuthService. cache may be nil.
func NewAuthService(verifier TokenVerifier, roles RoleReader, cache RoleCache) *AuthService {
	return &AuthService{
		verifier: verifier,
		roles:    roles,
		cache:    cache,
	}
}

// GetTokenFromRequest extracts the Firebase ID token from the request headers.
func (svc *AuthService) GetTokenFromRequest(_ context.Context, r *http.Request) (string, error) {
	return firebase.TokenFromRequest(r)
}

// Authenticate verifies the token and attaches the caller's tier.
func (svc *AuthService) Authenticate(ctx context.Context, token string) (*models.AuthUser, error) {
	user, err := svc.verifier.Verify(ctx, token)
	if err != nil {
		return nil, err
	}
	if user == nil || user.UserID == "" {
		return nil, firebase.ErrTokenRejected
	}

	user.Tier = svc.GetRole(ctx, user.UserID)
	return user, nil
}

// GetRole returns the user's tier. It never fails: any lookup problem yields free.
func (svc *AuthService) GetRole(ctx context.Context, userID string) models.Tier {
	if svc.cache != nil {
		if tier, err := svc.cache.Get(ctx, userID); err == nil {
			return tier
		}
	}

	role, err := svc.roles.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Log.Warnw("role lookup failed, defaulting to free", "userID", userID, "error", err)
		}
		return models.TierFree
	}

	tier, ok := models.ParseTier(role.Role)
	if !ok {
		logger.Log.Warnw("unknown stored role, defaulting to free", "userID", userID, "role", role.Role)
		return models.TierFree
	}

	if svc.cache != nil {
		stored, err := svc.cache.Fill(ctx, userID, tier)
		if err != nil {
			logger.Log.Warnw("failed to cache role", "userID", userID, "error", err)
		} else if !stored {
			logger.Log.Debugw("role changed during lookup, keeping cached value", "userID", userID)
		}
	}
	return tier
}
