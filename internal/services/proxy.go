package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mydocmaker/api/internal/logger"
	"github.com/mydocmaker/api/internal/models"
	"github.com/mydocmaker/api/internal/repositories"
)

//go:generate mockgen -source=proxy.go -destination=proxy_mock_test.go -package=services

// ProxyExecutor runs validated proxy queries.
type ProxyExecutor interface {
	Execute(ctx context.Context, q models.ProxyQuery) (json.RawMessage, error)
}

var (
	// ErrInvalidProxyRequest marks a request rejected before any query runs.
	ErrInvalidProxyRequest = errors.New("invalid proxy request")
	// ErrProxyQueryFailed marks a query that Postgres rejected.
	ErrProxyQueryFailed = errors.New("query failed")
)

const (
	userIDColumn  = "user_id"
	userIDParam   = "_user_id"
	maxProxyLimit = 1000
)

var identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// proxyTables maps every allowlisted table to whether it is writable.
var proxyTables = map[string]bool{
	"file_history":   true,
	"profiles":       true,
	"usage_tracking": false,
	"user_roles":     false,
	"subscriptions":  false,
}

var proxyFunctions = map[string]bool{
	"get_usage_history":      true,
	"get_file_history_stats": true,
}

// ProxyService validates and scopes database proxy requests to the caller.
type ProxyService struct {
	repo ProxyExecutor
}

// NewProxyService creates a new ProxyService.
func NewProxyService(repo ProxyExecutor) *ProxyService {
	return &ProxyService{repo: repo}
}

// Execute validates req, scopes it to userID and runs it.
func (svc *ProxyService) Execute(ctx context.Context, userID string, req models.ProxyRequest) (json.RawMessage, error) {
	q, err := BuildProxyQuery(userID, req)
	if err != nil {
		return nil, err
	}

	data, err := svc.repo.Execute(ctx, q)
	if err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			logger.Log.Infow("proxy query rejected", "userID", userID, "action", q.Action, "table", q.Table, "code", pgErr.Code, "error", pgErr.Message)
			return nil, fmt.Errorf("%w: %s", ErrProxyQueryFailed, pgErr.Message)
		case errors.Is(err, repositories.ErrSingleRowExpected):
			return nil, fmt.Errorf("%w: %v", ErrProxyQueryFailed, err)
		}
		logger.Log.Errorw("proxy query failed", "userID", userID, "action", q.Action, "table", q.Table, "error", err)
		return nil, err
	}
	return data, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidProxyRequest, fmt.Sprintf(format, args...))
}

// BuildProxyQuery turns a client request into a ProxyQuery that only touches userID's rows.
func BuildProxyQuery(userID string, req models.ProxyRequest) (models.ProxyQuery, error) {
	if userID == "" {
		return models.ProxyQuery{}, invalid("missing user")
	}

	action := strings.ToLower(strings.TrimSpace(req.Action))
	if action == models.ActionRPC {
		return buildRPC(userID, req)
	}

	q := models.ProxyQuery{Action: action, Table: req.Table}

	writable, ok := proxyTables[req.Table]
	if !ok {
		return q, invalid("table %q is not allowed", req.Table)
	}

	columns, err := parseSelect(req.Select)
	if err != nil {
		return q, err
	}
	q.Columns = columns

	filters, err := scopedFilters(userID, req.Filters)
	if err != nil {
		return q, err
	}
	q.Filters = filters

	switch action {
	case models.ActionSelect, models.ActionSelectSingle:
		if req.Order != nil {
			if !identifierPattern.MatchString(req.Order.Column) {
				return q, invalid("invalid order column %q", req.Order.Column)
			}
			order := *req.Order
			q.Order = &order
		}
		if action == models.ActionSelect {
			q.Limit = req.Limit
			if q.Limit <= 0 || q.Limit > maxProxyLimit {
				q.Limit = maxProxyLimit
			}
		}
		return q, nil

	case models.ActionInsert, models.ActionUpdate, models.ActionDelete:
		if !writable {
			return q, invalid("table %q is read-only", req.Table)
		}
	default:
		return q, invalid("unsupported action %q", req.Action)
	}

	if action != models.ActionInsert && !narrowed(q.Filters) {
		return q, invalid("%s requires at least one filter besides %s", action, userIDColumn)
	}

	if action == models.ActionDelete {
		return q, nil
	}

	values, err := assignments(req.Data, userIDColumn)
	if err != nil {
		return q, err
	}
	if len(values) == 0 {
		return q, invalid("%s requires data", action)
	}
	if action == models.ActionInsert {
		values = append(values, models.Assignment{Column: userIDColumn, Value: userID})
		sortAssignments(values)
	}
	q.Values = values
	return q, nil
}

func buildRPC(userID string, req models.ProxyRequest) (models.ProxyQuery, error) {
	q := models.ProxyQuery{Action: models.ActionRPC, Function: req.Function}
	if !proxyFunctions[req.Function] {
		return q, invalid("function %q is not allowed", req.Function)
	}

	params, err := assignments(req.Params, userIDParam)
	if err != nil {
		return q, err
	}
	params = append(params, models.Assignment{Column: userIDParam, Value: userID})
	sortAssignments(params)
	q.Params = params
	return q, nil
}

func parseSelect(sel string) ([]string, error) {
	sel = strings.TrimSpace(sel)
	if sel == "" || sel == "*" {
		return nil, nil
	}
	parts := strings.Split(sel, ",")
	columns := make([]string, 0, len(parts))
	for _, p := range parts {
		c := strings.TrimSpace(p)
		if !identifierPattern.MatchString(c) {
			return nil, invalid("invalid select column %q", c)
		}
		columns = append(columns, c)
	}
	return columns, nil
}

// scopedFilters validates client filters and always adds the caller's user_id.
// A client user_id filter is kept as an extra condition, so another user's id matches nothing.
func scopedFilters(userID string, in map[string]any) ([]models.Filter, error) {
	filters := make([]models.Filter, 0, len(in)+1)
	for col, v := range in {
		if !identifierPattern.MatchString(col) {
			return nil, invalid("invalid filter column %q", col)
		}
		if !isScalar(v) {
			return nil, invalid("filter %q must be a scalar or null", col)
		}
		if col == userIDColumn && v == userID {
			continue
		}
		filters = append(filters, models.Filter{Column: col, Value: v})
	}
	filters = append(filters, models.Filter{Column: userIDColumn, Value: userID})
	// Stable: the caller's scope stays after a client user_id.
	sort.SliceStable(filters, func(i, j int) bool { return filters[i].Column < filters[j].Column })
	return filters, nil
}

// narrowed reports whether filters constrain more than the caller's ownership.
func narrowed(filters []models.Filter) bool {
	for _, f := range filters {
		if f.Column != userIDColumn {
			return true
		}
	}
	return false
}

// assignments validates column/value pairs, skipping the forced column.
func assignments(in map[string]any, forced string) ([]models.Assignment, error) {
	out := make([]models.Assignment, 0, len(in)+1)
	for col, v := range in {
		if !identifierPattern.MatchString(col) {
			return nil, invalid("invalid column %q", col)
		}
		if col == forced {
			continue
		}
		out = append(out, models.Assignment{Column: col, Value: v})
	}
	sortAssignments(out)
	return out, nil
}

func sortAssignments(a []models.Assignment) {
	sort.Slice(a, func(i, j int) bool { return a[i].Column < a[j].Column })
}

func isScalar(v any) bool {
	switch v.(type) {
	case nil, string, bool, json.Number, float64, int, int64:
		return true
	}
	return false
}
