// Package query implements the gate between a query request and the live
// database connection: the SQL guard, the structured query builder and the
// natural-language intent resolver.
package query

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/catalog"
)

// Keywords that mark a statement as mutating. Checked as substrings of the
// uppercased statement; statements starting with SELECT are exempt. This is
// a deliberate heuristic, not a SQL parser: a SELECT carrying one of these
// words in a string literal passes, and that behavior is pinned by tests.
var blacklist = []string{"INSERT", "DROP", "DELETE", "TRUNCATE", "ALTER"}

// Guard is the sole gate a SQL string passes through before reaching the
// database. It rejects mutating statements and resolves unqualified table
// references against the permitted set. Stateless and safe for concurrent
// use.
type Guard struct {
	catalog *catalog.Catalog
	schema  string
}

func NewGuard(cat *catalog.Catalog, schema string) *Guard {
	return &Guard{catalog: cat, schema: schema}
}

// Vet validates a candidate statement and returns it ready for execution,
// with the table after the first FROM rewritten to its schema-qualified
// form. A rejection is terminal for the request; there are no retries.
func (g *Guard) Vet(sql string) (string, error) {
	upper := strings.ToUpper(sql)
	for _, keyword := range blacklist {
		if strings.Contains(upper, keyword) && !strings.HasPrefix(upper, "SELECT") {
			slog.Warn("blocked query", "keyword", keyword)
			return "", fmt.Errorf("Query contains blacklisted keyword: %s", keyword)
		}
	}

	// Only an uppercase FROM is recognized; statements without one pass
	// through unrewritten (utility queries like SELECT version()).
	from := strings.Index(sql, "FROM")
	if from < 0 {
		return sql, nil
	}
	fields := strings.Fields(sql[from+len("FROM"):])
	if len(fields) == 0 {
		return sql, nil
	}
	token := fields[0]
	table := strings.ReplaceAll(token, ";", "")
	if strings.Contains(table, ".") {
		// Already schema-qualified, leave it alone.
		return sql, nil
	}

	if !g.permitted(table) {
		slog.Warn("table not permitted", "table", table)
		return "", fmt.Errorf("Table %s is not permitted.", table)
	}

	rewritten := strings.ReplaceAll(sql, token, g.schema+"."+table)
	slog.Debug("rewrote query with schema prefix", "sql", rewritten)
	return rewritten, nil
}

func (g *Guard) permitted(table string) bool {
	lower := strings.ToLower(table)
	for _, t := range g.catalog.Tables() {
		if strings.ToLower(t) == lower {
			return true
		}
	}
	return false
}
