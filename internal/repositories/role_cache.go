package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mydocmaker/api/internal/logger"
	"github.com/mydocmaker/api/internal/models"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when no role is cached for a user.
var ErrCacheMiss = errors.New("role not found in cache")

// RoleCacheRepository caches resolved tiers in Redis.
type RoleCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached roles
}

// NewRoleCacheRepository creates a new repository instance with the given TTL.
func NewRoleCacheRepository(client *redis.Client, expiration time.Duration) *RoleCacheRepository {
	return &RoleCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func roleKey(userID string) string {
	return fmt.Sprintf("user_role:%s", userID)
}

// Get returns the cached tier of a user.
func (r *RoleCacheRepository) Get(ctx context.Context, userID string) (models.Tier, error) {
	key := roleKey(userID)

	val, err := r.client.Get(ctx, key).Result()
	logger.Log.Debugw("role cache get",
		"key", key,
		"result", val,
		"error", err,
	)
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}

	tier, ok := models.ParseTier(val)
	if !ok {
		return "", ErrCacheMiss
	}
	return tier, nil
}

// Fill caches a tier read from the database unless a newer value was written meanwhile.
// It reports whether the tier was stored.
func (r *RoleCacheRepository) Fill(ctx context.Context, userID string, tier models.Tier) (bool, error) {
	key := roleKey(userID)
	stored, err := r.client.SetNX(ctx, key, string(tier), r.exp).Result()

	logger.Log.Debugw("role cache fill",
		"key", key,
		"tier", tier,
		"stored", stored,
		"error", err,
	)

	return stored, err
}

// Set overwrites the cached tier of a user. Writers call it after their change committed.
func (r *RoleCacheRepository) Set(ctx context.Context, userID string, tier models.Tier) error {
	key := roleKey(userID)
	err := r.client.Set(ctx, key, string(tier), r.exp).Err()

	logger.Log.Infow("role cache set",
		"key", key,
		"tier", tier,
		"error", err,
	)

	return err
}
