package query

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/catalog"
	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/types"
)

// DefaultLimit is the row limit applied when a request carries none.
const DefaultLimit = 10

// Builder turns a structured query intent into a SELECT statement, checking
// every requested column against the catalog before anything is emitted.
type Builder struct {
	catalog      *catalog.Catalog
	schema       string
	defaultLimit int
}

func NewBuilder(cat *catalog.Catalog, schema string, defaultLimit int) *Builder {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	return &Builder{catalog: cat, schema: schema, defaultLimit: defaultLimit}
}

// Build validates the request and returns the SELECT statement for it. The
// statement is schema-qualified; callers still route it through the Guard
// before execution.
func (b *Builder) Build(req types.QueryRequest) (string, error) {
	if req.Table == "" {
		return "", errors.New("Table is missing.")
	}
	if len(req.Columns) == 0 || isWildcardOnly(req.Columns) {
		return "", errors.New("Columns cannot be empty.")
	}

	declared := make(map[string]bool)
	if table, ok := b.catalog.Lookup(req.Table); ok {
		for _, c := range table.Columns {
			declared[c.Name] = true
		}
	}
	for _, col := range req.Columns {
		if !declared[col] {
			return "", fmt.Errorf("Invalid column '%s' for table '%s'", col, req.Table)
		}
	}

	limit := req.Limit
	if limit <= 0 {
		limit = b.defaultLimit
	}

	var where string
	if len(req.Filters) > 0 {
		// Filter columns in sorted order so generated SQL is deterministic.
		cols := make([]string, 0, len(req.Filters))
		for col := range req.Filters {
			cols = append(cols, col)
		}
		sort.Strings(cols)
		parts := make([]string, len(cols))
		for i, col := range cols {
			// Values are interpolated as quoted literals with no escaping.
			// Filters are trusted input; escaping is the caller's problem.
			parts[i] = fmt.Sprintf("%s = '%v'", col, req.Filters[col])
		}
		where = " WHERE " + strings.Join(parts, " AND ")
	}

	return fmt.Sprintf("SELECT %s FROM %s.%s%s LIMIT %d;",
		strings.Join(req.Columns, ", "), b.schema, req.Table, where, limit), nil
}

// isWildcardOnly reports whether the request asks for nothing but "*", which
// is rejected the same as an empty column list.
func isWildcardOnly(columns []string) bool {
	return len(columns) == 1 && columns[0] == "*"
}
