package query

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/catalog"
	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/types"
)

var limitPattern = regexp.MustCompile(`\blimit\s+(\d+)\b`)

// Resolver derives a structured query intent from free text by substring
// matching against the catalog. First matching table wins, in catalog
// declaration order; no ranking is attempted. Filter extraction from natural
// language is out of scope, so the produced request carries empty filters.
type Resolver struct {
	catalog      *catalog.Catalog
	defaultLimit int
}

func NewResolver(cat *catalog.Catalog, defaultLimit int) *Resolver {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	return &Resolver{catalog: cat, defaultLimit: defaultLimit}
}

// Resolve picks the table and columns mentioned in the prompt and builds a
// QueryRequest for them. An explicit "limit N" in the prompt overrides the
// default row limit.
func (r *Resolver) Resolve(prompt string) (types.QueryRequest, error) {
	lower := strings.ToLower(prompt)

	var table string
	for _, t := range r.catalog.Tables() {
		if strings.Contains(lower, strings.ToLower(t)) {
			table = t
			break
		}
	}
	if table == "" {
		slog.Warn("no permitted table found in prompt")
		return types.QueryRequest{}, errors.New("No permitted table found in prompt.")
	}

	schema, ok := r.catalog.Lookup(table)
	if !ok || len(schema.Columns) == 0 {
		return types.QueryRequest{}, fmt.Errorf("No schema found for table %s.", table)
	}

	var columns []string
	for _, c := range schema.Columns {
		if strings.Contains(lower, strings.ToLower(c.Name)) {
			columns = append(columns, c.Name)
		}
	}
	if len(columns) == 0 {
		slog.Warn("no valid columns found in prompt", "table", table)
		return types.QueryRequest{}, errors.New("No valid columns found in prompt. Please specify valid columns.")
	}

	limit := r.defaultLimit
	if m := limitPattern.FindStringSubmatch(lower); m != nil {
		limit, _ = strconv.Atoi(m[1])
	}

	req := types.QueryRequest{
		Table:   table,
		Columns: columns,
		Limit:   limit,
		Filters: map[string]any{},
	}
	slog.Info("resolved intent", "table", table, "columns", columns, "limit", limit)
	return req, nil
}
