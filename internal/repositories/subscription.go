package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/mydocmaker/api/internal/models"
)

// SubscriptionWriteRepository writes subscriptions, one row per user.
type SubscriptionWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewSubscriptionWriteRepository(db *sqlx.DB, txGetter TxGetter) *SubscriptionWriteRepository {
	return &SubscriptionWriteRepository{db: db, txGetter: txGetter}
}

// Save upserts the user's subscription from a billing event.
// An event without a period end keeps the stored one for the same provider subscription.
func (r *SubscriptionWriteRepository) Save(ctx context.Context, c models.SubscriptionChange) error {
	const query = `
		INSERT INTO subscriptions (user_id, provider, external_id, status, plan_type, current_period_end, canceled_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET provider = EXCLUDED.provider,
		              external_id = EXCLUDED.external_id,
		              status = EXCLUDED.status,
		              plan_type = EXCLUDED.plan_type,
		              current_period_end = CASE
		                  WHEN EXCLUDED.current_period_end IS NULL AND subscriptions.external_id = EXCLUDED.external_id
		                  THEN subscriptions.current_period_end
		                  ELSE EXCLUDED.current_period_end
		              END,
		              canceled_at = EXCLUDED.canceled_at,
		              updated_at = NOW()
	`
	args := []any{c.UserID, c.Provider, c.ExternalID, c.Status, c.PlanType, c.CurrentPeriodEnd, c.CanceledAt}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return err
}
