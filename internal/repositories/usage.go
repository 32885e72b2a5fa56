package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/mydocmaker/api/internal/models"
)

// ErrUnknownCounter is returned for a counter that is not a usage_tracking column.
var ErrUnknownCounter = errors.New("unknown usage counter")

// UsageWriteRepository changes usage_tracking counters.
type UsageWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUsageWriteRepository(db *sqlx.DB, txGetter TxGetter) *UsageWriteRepository {
	return &UsageWriteRepository{db: db, txGetter: txGetter}
}

// Increment adds n to the counter of (userID, date) in a single statement, creating the row if needed.
// When the result would exceed limit nothing is written and sql.ErrNoRows is returned.
func (r *UsageWriteRepository) Increment(ctx context.Context, userID, date string, counter models.Counter, n, limit int) (int, error) {
	if !counter.Valid() {
		return 0, ErrUnknownCounter
	}

	query := fmt.Sprintf(`
		INSERT INTO usage_tracking (user_id, date, %[1]s, created_at, updated_at)
		VALUES ($1, $2::date, $3, NOW(), NOW())
		ON CONFLICT (user_id, date)
		DO UPDATE SET %[1]s = usage_tracking.%[1]s + EXCLUDED.%[1]s, updated_at = NOW()
		WHERE usage_tracking.%[1]s + EXCLUDED.%[1]s <= $4
		RETURNING %[1]s
	`, counter)
	args := []any{userID, date, n, limit}

	var used int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &used, query, args...)

	logQuery(query, args, used, err)

	return used, err
}

// Decrement subtracts n from the counter of (userID, date), never going below zero.
func (r *UsageWriteRepository) Decrement(ctx context.Context, userID, date string, counter models.Counter, n int) error {
	if !counter.Valid() {
		return ErrUnknownCounter
	}

	query := fmt.Sprintf(`
		UPDATE usage_tracking
		SET %[1]s = GREATEST(%[1]s - $3, 0), updated_at = NOW()
		WHERE user_id = $1 AND date = $2::date
	`, counter)
	args := []any{userID, date, n}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return err
}

// UsageReadRepository reads usage_tracking.
type UsageReadRepository struct {
	db *sqlx.DB
}

func NewUsageReadRepository(db *sqlx.DB) *UsageReadRepository {
	return &UsageReadRepository{db: db}
}

// GetByUserAndDate returns the counters of one day, or sql.ErrNoRows when nothing was used.
func (r *UsageReadRepository) GetByUserAndDate(ctx context.Context, userID, date string) (*models.UsageTrackingDB, error) {
	const query = `
		SELECT id, user_id, date::text AS date,
		       documents_generated, images_generated, videos_generated, voiceovers_generated,
		       created_at, updated_at
		FROM usage_tracking
		WHERE user_id = $1 AND date = $2::date
	`

	var usage models.UsageTrackingDB
	err := r.db.GetContext(ctx, &usage, query, userID, date)

	logQuery(query, []any{userID, date}, usage, err)

	if err != nil {
		return nil, err
	}
	return &usage, nil
}
