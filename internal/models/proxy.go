package models

import "encoding/json"

// Proxy actions
const (
	ActionSelect       = "select"
	ActionSelectSingle = "select_single"
	ActionInsert       = "insert"
	ActionUpdate       = "update"
	ActionDelete       = "delete"
	ActionRPC          = "rpc"
)

// ProxyOrder is the ordering clause of a proxied select
// swagger:model ProxyOrder
type ProxyOrder struct {
	// Column to order by
	// example: created_at
	Column string `json:"column"`

	// Ascending order, descending when false
	// example: false
	Ascending bool `json:"ascending"`
}

// ProxyRequest represents the JSON body of the database proxy
// swagger:model ProxyRequest
type ProxyRequest struct {
	// Action: select, select_single, insert, update, delete or rpc
	// required: true
	// example: select
	Action string `json:"action"`

	// Target table, ignored for rpc
	// example: file_history
	Table string `json:"table"`

	// Row values for insert and update
	Data map[string]any `json:"data,omitempty"`

	// Equality filters
	Filters map[string]any `json:"filters,omitempty"`

	// Comma separated column list
	// example: id,title,created_at
	Select string `json:"select,omitempty"`

	// Ordering for select
	Order *ProxyOrder `json:"order,omitempty"`

	// Row limit for select
	// example: 20
	Limit int `json:"limit,omitempty"`

	// Function name for rpc
	// example: get_usage_history
	Function string `json:"function,omitempty"`

	// Named arguments for rpc
	Params map[string]any `json:"params,omitempty"`
}

// Filter is a single equality condition. A nil Value matches NULL.
type Filter struct {
	Column string
	Value  any
}

// Assignment is a column/value pair of an insert or update.
type Assignment struct {
	Column string
	Value  any
}

// ProxyQuery is a validated, user-scoped proxy request ready for execution.
// Slices are sorted by column so the generated SQL is deterministic.
type ProxyQuery struct {
	Action   string
	Table    string
	Columns  []string     // nil means every column
	Filters  []Filter     // always contains user_id
	Values   []Assignment // insert and update
	Order    *ProxyOrder
	Limit    int
	Function string
	Params   []Assignment // rpc named arguments, always contains _user_id
}

// ProxyResponse represents a successful proxy call
// swagger:model ProxyResponse
type ProxyResponse struct {
	// Query result: an array of rows, or one row for select_single
	Data json.RawMessage `json:"data" swaggertype:"object"`
}
