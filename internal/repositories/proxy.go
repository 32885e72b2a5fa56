package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jmoiron/sqlx"
	"github.com/mydocmaker/api/internal/models"
)

var (
	// ErrSingleRowExpected is returned by select_single when zero or several rows match.
	ErrSingleRowExpected = errors.New("expected exactly one row")
	// ErrUnsupportedAction is returned for an action the builder does not know.
	ErrUnsupportedAction = errors.New("unsupported proxy action")
)

// ProxyRepository executes validated database proxy queries.
// Identifiers in a ProxyQuery must already be validated against the allowlists;
// they are still quoted here, and every value is bound as a parameter.
type ProxyRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewProxyRepository(db *sqlx.DB, txGetter TxGetter) *ProxyRepository {
	return &ProxyRepository{db: db, txGetter: txGetter}
}

// Execute runs the query and returns its rows as JSON built by Postgres.
// select_single returns one object instead of an array.
func (r *ProxyRepository) Execute(ctx context.Context, q models.ProxyQuery) (json.RawMessage, error) {
	query, args, err := buildProxyQuery(q)
	if err != nil {
		return nil, err
	}

	var raw []byte
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &raw, query, args...)

	logQuery(query, args, len(raw), err)

	if err != nil {
		return nil, err
	}

	if q.Action != models.ActionSelectSingle {
		return json.RawMessage(raw), nil
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	if len(rows) != 1 {
		return nil, fmt.Errorf("%w, got %d", ErrSingleRowExpected, len(rows))
	}
	return rows[0], nil
}

type sqlBuilder struct {
	args []any
}

func (b *sqlBuilder) bind(v any) string {
	b.args = append(b.args, proxyValue(v))
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *sqlBuilder) where(filters []models.Filter) string {
	if len(filters) == 0 {
		return ""
	}
	conds := make([]string, 0, len(filters))
	for _, f := range filters {
		if f.Value == nil {
			conds = append(conds, ident(f.Column)+" IS NULL")
			continue
		}
		conds = append(conds, ident(f.Column)+" = "+b.bind(f.Value))
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func columnList(cols []string) string {
	if len(cols) == 0 {
		return "*"
	}
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = ident(c)
	}
	return strings.Join(quoted, ", ")
}

// aggregate wraps a row source so Postgres returns the rows as one JSON array.
func aggregate(source string) string {
	return "SELECT COALESCE(json_agg(t), '[]'::json) FROM " + source
}

func buildProxyQuery(q models.ProxyQuery) (string, []any, error) {
	b := &sqlBuilder{}
	table := ident(q.Table)

	switch q.Action {
	case models.ActionSelect, models.ActionSelectSingle:
		inner := "SELECT " + columnList(q.Columns) + " FROM " + table + b.where(q.Filters)
		if q.Order != nil {
			dir := "DESC"
			if q.Order.Ascending {
				dir = "ASC"
			}
			inner += " ORDER BY " + ident(q.Order.Column) + " " + dir
		}
		switch {
		case q.Action == models.ActionSelectSingle:
			inner += " LIMIT 2"
		case q.Limit > 0:
			inner += fmt.Sprintf(" LIMIT %d", q.Limit)
		}
		return aggregate("(" + inner + ") t"), b.args, nil

	case models.ActionInsert:
		cols := make([]string, len(q.Values))
		vals := make([]string, len(q.Values))
		for i, v := range q.Values {
			cols[i] = ident(v.Column)
			vals[i] = b.bind(v.Value)
		}
		inner := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
			table, strings.Join(cols, ", "), strings.Join(vals, ", "), columnList(q.Columns))
		return "WITH t AS (" + inner + ") " + aggregate("t"), b.args, nil

	case models.ActionUpdate:
		sets := make([]string, len(q.Values))
		for i, v := range q.Values {
			sets[i] = ident(v.Column) + " = " + b.bind(v.Value)
		}
		inner := fmt.Sprintf("UPDATE %s SET %s%s RETURNING %s",
			table, strings.Join(sets, ", "), b.where(q.Filters), columnList(q.Columns))
		return "WITH t AS (" + inner + ") " + aggregate("t"), b.args, nil

	case models.ActionDelete:
		inner := fmt.Sprintf("DELETE FROM %s%s RETURNING %s", table, b.where(q.Filters), columnList(q.Columns))
		return "WITH t AS (" + inner + ") " + aggregate("t"), b.args, nil

	case models.ActionRPC:
		named := make([]string, len(q.Params))
		for i, p := range q.Params {
			named[i] = ident(p.Column) + " => " + b.bind(p.Value)
		}
		return aggregate(fmt.Sprintf("%s(%s) t", ident(q.Function), strings.Join(named, ", "))), b.args, nil
	}

	return "", nil, fmt.Errorf("%w: %q", ErrUnsupportedAction, q.Action)
}

// proxyValue converts a decoded JSON value into a driver argument.
// Numbers travel as text so Postgres casts them to the column type;
// objects and arrays are sent as JSON text for jsonb columns.
func proxyValue(v any) any {
	switch val := v.(type) {
	case json.Number:
		return val.String()
	case map[string]any, []any:
		data, err := json.Marshal(val)
		if err != nil {
			return nil
		}
		return string(data)
	}
	return v
}
