package services

import (
	"context"
	"fmt"

	"github.com/mydocmaker/api/internal/logger"
	"github.com/mydocmaker/api/internal/models"
)

//go:generate mockgen -source=account.go -destination=account_mock_test.go -package=services

// AccountDeleter removes every row owned by a user. It returns the row count per
// table and the URLs of the deleted gallery items.
type AccountDeleter interface {
	DeleteByUserID(ctx context.Context, userID string) (map[string]int64, []string, error)
}

// MediaRemover deletes stored media objects.
type MediaRemover interface {
	Delete(ctx context.Context, url string) error
}

// IdentityDeleter deletes the identity provider account.
type IdentityDeleter interface {
	DeleteUser(ctx context.Context, uid string) error
}

// AccountService deletes a user's account and everything it owns.
type AccountService struct {
	accounts    AccountDeleter
	objects     MediaRemover
	identities  IdentityDeleter
	cache       RoleCache
	afterCommit CommitHook
}

// NewAccountService creates a new AccountService. identities, cache and afterCommit may be nil.
func NewAccountService(
	accounts AccountDeleter,
	objects MediaRemover,
	identities IdentityDeleter,
	cache RoleCache,
	afterCommit CommitHook,
) *AccountService {
	if afterCommit == nil {
		afterCommit = runNow
	}
	return &AccountService{
		accounts:    accounts,
		objects:     objects,
		identities:  identities,
		cache:       cache,
		afterCommit: afterCommit,
	}
}

// Delete removes the user's rows and returns the deleted row count per table.
// After commit the stored media and the identity account are removed and the cached role reset to free.
func (svc *AccountService) Delete(ctx context.Context, userID string) (map[string]int64, error) {
	deleted, urls, err := svc.accounts.DeleteByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete account rows", "userID", userID, "error", err)
		return nil, fmt.Errorf("delete account: %w", err)
	}

	svc.afterCommit(ctx, func(ctx context.Context) {
		svc.cleanup(ctx, userID, urls)
	})

	logger.Log.Infow("account deleted", "userID", userID, "rows", deleted)
	return deleted, nil
}

func (svc *AccountService) cleanup(ctx context.Context, userID string, urls []string) {
	for _, url := range urls {
		if err := svc.objects.Delete(ctx, url); err != nil {
			logger.Log.Warnw("failed to delete stored media", "userID", userID, "url", url, "error", err)
		}
	}

	// Without a user_roles row the user is free.
	if svc.cache != nil {
		if err := svc.cache.Set(ctx, userID, models.TierFree); err != nil {
			logger.Log.Warnw("failed to reset cached role", "userID", userID, "error", err)
		}
	}

	if svc.identities != nil {
		if err := svc.identities.DeleteUser(ctx, userID); err != nil {
			logger.Log.Errorw("failed to delete firebase user", "userID", userID, "error", err)
		}
	}
}
