package middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/mydocmaker/api/internal/logger"
	"github.com/mydocmaker/api/internal/models"
)

// TxMiddleware wraps an HTTP handler with a database transaction.
// The response is buffered: it is committed when the handler answered below 400,
// rolled back otherwise, and only then sent to the client.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				internalError(w)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			hooks := &commitHooks{}
			ctx := setTxToContext(r.Context(), tx)
			ctx = context.WithValue(ctx, hooksKey, hooks)

			buf := &bufferedWriter{header: w.Header(), statusCode: http.StatusOK}
			next.ServeHTTP(buf, r.WithContext(ctx))

			if buf.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				buf.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				w.Header().Del("Content-Length")
				internalError(w)
				return
			}

			hooks.run(context.WithoutCancel(r.Context()))
			buf.flush(w)
		})
	}
}

func internalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Internal server error"})
}

// contextKey is an unexported type for keys in context
type contextKey struct{ name string }

var (
	txKey    = contextKey{"tx"}
	hooksKey = contextKey{"hooks"}
)

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// AfterCommit schedules fn to run once the request transaction commits.
// Outside TxMiddleware fn runs immediately. Rolled back requests never run fn.
func AfterCommit(ctx context.Context, fn func(context.Context)) {
	hooks, _ := ctx.Value(hooksKey).(*commitHooks)
	if hooks == nil {
		fn(ctx)
		return
	}
	hooks.add(fn)
}

type commitHooks struct {
	mu  sync.Mutex
	fns []func(context.Context)
}

func (h *commitHooks) add(fn func(context.Context)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fns = append(h.fns, fn)
}

func (h *commitHooks) run(ctx context.Context) {
	h.mu.Lock()
	fns := h.fns
	h.fns = nil
	h.mu.Unlock()

	for _, fn := range fns {
		fn(ctx)
	}
}

// bufferedWriter holds the response until the transaction outcome is known.
type bufferedWriter struct {
	header      http.Header
	statusCode  int
	wroteHeader bool
	body        bytes.Buffer
}

func (b *bufferedWriter) Header() http.Header {
	return b.header
}

func (b *bufferedWriter) WriteHeader(code int) {
	if b.wroteHeader {
		return
	}
	b.wroteHeader = true
	b.statusCode = code
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	b.WriteHeader(http.StatusOK)
	return b.body.Write(p)
}

func (b *bufferedWriter) flush(w http.ResponseWriter) {
	w.WriteHeader(b.statusCode)
	if _, err := w.Write(b.body.Bytes()); err != nil {
		logger.Log.Warnw("failed to write response", "error", err)
	}
}
