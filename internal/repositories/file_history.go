package repositories

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// FileHistoryWriteRepository stores generated documents.
type FileHistoryWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFileHistoryWriteRepository(db *sqlx.DB, txGetter TxGetter) *FileHistoryWriteRepository {
	return &FileHistoryWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a document and returns its id.
func (r *FileHistoryWriteRepository) Save(ctx context.Context, userID, title, fileType string, content json.RawMessage) (uuid.UUID, error) {
	const query = `
		INSERT INTO file_history (user_id, title, content, file_type, created_at)
		VALUES ($1, $2, $3::jsonb, $4, NOW())
		RETURNING id
	`
	args := []any{userID, title, string(content), fileType}

	var id uuid.UUID
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)

	logQuery(query, []any{userID, title, fileType}, id, err)

	return id, err
}
