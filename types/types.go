package types

import "encoding/json"

// PermittedSet is the full universe of queryable tables, derived from the
// catalog. Tables preserves catalog declaration order.
type PermittedSet struct {
	Database string   `json:"database"`
	Schema   string   `json:"schema"`
	Tables   []string `json:"tables"`
}

// QueryRequest is a structured query intent: which table, which columns,
// equality filters and a row limit.
type QueryRequest struct {
	Table   string         `json:"table"`
	Columns []string       `json:"columns"`
	Filters map[string]any `json:"filters,omitempty"`
	Limit   int            `json:"limit,omitempty"`
}

// QueryResult is the result envelope handed back to callers: either rows or
// an error message, never both. Build one with RowsResult or ErrorResult so
// the invariant holds by construction.
type QueryResult struct {
	rows []map[string]any
	err  string
}

func RowsResult(rows []map[string]any) QueryResult {
	if rows == nil {
		rows = []map[string]any{}
	}
	return QueryResult{rows: rows}
}

func ErrorResult(msg string) QueryResult {
	return QueryResult{err: msg}
}

// Rows returns the materialized result rows, nil for an error result.
func (r QueryResult) Rows() []map[string]any { return r.rows }

// Err returns the error message, empty for a rows result.
func (r QueryResult) Err() string { return r.err }

// MarshalJSON emits exactly one envelope key: {"rows": [...]} or
// {"error": "..."}. Rows marshal as [] rather than null.
func (r QueryResult) MarshalJSON() ([]byte, error) {
	if r.err != "" {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{r.err})
	}
	rows := r.rows
	if rows == nil {
		rows = []map[string]any{}
	}
	return json.Marshal(struct {
		Rows []map[string]any `json:"rows"`
	}{rows})
}
