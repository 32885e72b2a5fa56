package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mydocmaker/api/internal/logger"
	"github.com/mydocmaker/api/internal/models"
)

//go:generate mockgen -source=usage.go -destination=usage_mock_test.go -package=services

// UsageWriter defines atomic updates of usage_tracking counters.
type UsageWriter interface {
	Increment(ctx context.Context, userID, date string, counter models.Counter, n, limit int) (int, error)
	Decrement(ctx context.Context, userID, date string, counter models.Counter, n int) error
}

// UsageReader defines read-only access to usage_tracking.
type UsageReader interface {
	GetByUserAndDate(ctx context.Context, userID, date string) (*models.UsageTrackingDB, error)
}

var (
	ErrLimitReached  = errors.New("daily limit reached")
	ErrInvalidAmount = errors.New("amount must be positive")
)

// LimitError reports a rejected consume together with the caller's quota.
type LimitError struct {
	Tier      models.Tier
	Counter   models.Counter
	Limit     int
	Requested int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s: %s %d of %d for tier %s", ErrLimitReached, e.Counter, e.Requested, e.Limit, e.Tier)
}

func (e *LimitError) Unwrap() error {
	return ErrLimitReached
}

// Message is the user-facing explanation of the limit.
func (e *LimitError) Message() string {
	if e.Tier.IsPaid() {
		return fmt.Sprintf("Daily limit reached for your %s plan. Your limit resets tomorrow.", e.Tier)
	}
	return "Daily limit reached for your free plan. Upgrade to Premium to generate more."
}

// UsageService enforces daily per-tier quotas.
type UsageService struct {
	writer UsageWriter
	reader UsageReader
	limits models.Limits
	now    func() time.Time
}

// NewUsageService creates a new UsageService. A nil limits uses models.DefaultLimits.
func NewUsageService(writer UsageWriter, reader UsageReader, limits models.Limits) *UsageService {
	if limits == nil {
		limits = models.DefaultLimits
	}
	return &UsageService{
		writer: writer,
		reader: reader,
		limits: limits,
		now:    time.Now,
	}
}

// WithClock replaces the time source. Used in tests.
func (svc *UsageService) WithClock(now func() time.Time) *UsageService {
	svc.now = now
	return svc
}

func (svc *UsageService) today() string {
	return svc.now().UTC().Format("2006-01-02")
}

// Consume takes n credits of counter from the user's daily quota in one atomic statement.
// The returned Consumption pins the UTC day the credits were taken from.
func (svc *UsageService) Consume(ctx context.Context, user *models.AuthUser, counter models.Counter, n int) (models.Consumption, error) {
	if n <= 0 {
		return models.Consumption{}, ErrInvalidAmount
	}

	limit := svc.limits.For(user.Tier, counter)
	limitErr := &LimitError{Tier: user.Tier, Counter: counter, Limit: limit, Requested: n}
	if n > limit {
		return models.Consumption{}, limitErr
	}

	consumed := models.Consumption{Date: svc.today(), Counter: counter, N: n}
	used, err := svc.writer.Increment(ctx, user.UserID, consumed.Date, counter, n, limit)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Infow("daily limit reached", "userID", user.UserID, "tier", user.Tier, "counter", counter, "limit", limit)
			return models.Consumption{}, limitErr
		}
		logger.Log.Errorw("failed to consume usage", "userID", user.UserID, "counter", counter, "error", err)
		return models.Consumption{}, fmt.Errorf("consume %s: %w", counter, err)
	}

	logger.Log.Debugw("usage consumed", "userID", user.UserID, "counter", counter, "date", consumed.Date, "used", used, "limit", limit)
	return consumed, nil
}

// Refund gives back credits on the day they were consumed. Counters never go below zero.
func (svc *UsageService) Refund(ctx context.Context, userID string, c models.Consumption) error {
	if c.N <= 0 {
		return nil
	}
	if err := svc.writer.Decrement(ctx, userID, c.Date, c.Counter, c.N); err != nil {
		logger.Log.Errorw("failed to refund usage", "userID", userID, "counter", c.Counter, "date", c.Date, "amount", c.N, "error", err)
		return fmt.Errorf("refund %s: %w", c.Counter, err)
	}
	return nil
}

// Today returns the user's counters for the current UTC day with their limits.
func (svc *UsageService) Today(ctx context.Context, user *models.AuthUser) (*models.UsageResponse, error) {
	date := svc.today()

	row, err := svc.reader.GetByUserAndDate(ctx, user.UserID, date)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load usage: %w", err)
	}

	resp := &models.UsageResponse{
		Date:  date,
		Tier:  user.Tier,
		Usage: make(map[models.Counter]models.CounterUsage, len(models.Counters)),
	}
	for _, c := range models.Counters {
		resp.Usage[c] = models.CounterUsage{
			Used:  row.Get(c),
			Limit: svc.limits.For(user.Tier, c),
		}
	}
	return resp, nil
}
