package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mydocmaker/api/internal/logger"
)

// TxGetter returns the request-scoped transaction, or nil outside of one.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor runs statements inside the request transaction when there is one.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// logQuery logs a statement on a single line together with its outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
