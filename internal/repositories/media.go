package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// MediaWriteRepository stores gallery items.
type MediaWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewMediaWriteRepository(db *sqlx.DB, txGetter TxGetter) *MediaWriteRepository {
	return &MediaWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a generated_media row and returns its id.
func (r *MediaWriteRepository) Save(ctx context.Context, userID, mediaType, url, prompt string) (uuid.UUID, error) {
	const query = `
		INSERT INTO generated_media (user_id, media_type, url, prompt, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`
	args := []any{userID, mediaType, url, prompt}

	var id uuid.UUID
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)

	// Data URLs can be megabytes; log the prompt only.
	logQuery(query, []any{userID, mediaType, prompt}, id, err)

	return id, err
}
