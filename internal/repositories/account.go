package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const mediaTable = "generated_media"

// accountTables are cleared on account deletion, children first.
var accountTables = []string{
	mediaTable,
	"file_history",
	"usage_tracking",
	"subscriptions",
	"user_roles",
	"profiles",
}

// AccountWriteRepository removes everything stored for a user.
type AccountWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAccountWriteRepository(db *sqlx.DB, txGetter TxGetter) *AccountWriteRepository {
	return &AccountWriteRepository{db: db, txGetter: txGetter}
}

// DeleteByUserID deletes the user's rows from every table and returns the count per table
// together with the URLs of the deleted gallery items.
// Run it inside a transaction so a partial failure leaves nothing deleted.
func (r *AccountWriteRepository) DeleteByUserID(ctx context.Context, userID string) (map[string]int64, []string, error) {
	exec := executor(ctx, r.db, r.txGetter)
	deleted := make(map[string]int64, len(accountTables))
	var mediaURLs []string

	for _, table := range accountTables {
		var (
			rowsAffected int64
			err          error
		)
		query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1`, table)

		if table == mediaTable {
			// Stored objects are removed after commit, so collect their URLs in the same statement.
			query += ` RETURNING url`
			err = sqlx.SelectContext(ctx, exec, &mediaURLs, query, userID)
			rowsAffected = int64(len(mediaURLs))
		} else {
			var res sql.Result
			res, err = exec.ExecContext(ctx, query, userID)
			if res != nil {
				rowsAffected, _ = res.RowsAffected()
			}
		}

		logQuery(query, []any{userID}, rowsAffected, err)

		if err != nil {
			return nil, nil, fmt.Errorf("delete from %s: %w", table, err)
		}
		deleted[table] = rowsAffected
	}

	return deleted, mediaURLs, nil
}
