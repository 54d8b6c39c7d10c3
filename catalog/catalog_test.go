package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	names := cat.Tables()
	require.NotEmpty(t, names)
	assert.Equal(t, "api__intermediate__orders", names[0], "declaration order must survive decoding")
	assert.Contains(t, names, "api__analytics__summery")
	assert.Contains(t, names, "api__analytics__orders")

	summery, ok := cat.Lookup("api__analytics__summery")
	require.True(t, ok)
	assert.NotEmpty(t, summery.Description)

	cols := make(map[string]ColumnSpec)
	for _, c := range summery.Columns {
		cols[c.Name] = c
	}
	assert.Contains(t, cols, "store_id")
	assert.Contains(t, cols, "activity_date")
}

func TestLookupStripsSchemaQualifier(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	bare, ok := cat.Lookup("api__analytics__orders")
	require.True(t, ok)
	qualified, ok := cat.Lookup("platinum.api__analytics__orders")
	require.True(t, ok)
	assert.Equal(t, bare, qualified)
}

func TestSchemasRoundTrip(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	// Prefix stripping is idempotent: qualified and bare names resolve to
	// identical results.
	qualified, err := cat.Schemas([]string{"platinum.api__analytics__orders"})
	require.NoError(t, err)
	bare, err := cat.Schemas([]string{"api__analytics__orders"})
	require.NoError(t, err)
	assert.Equal(t, bare, qualified)
}

func TestSchemasNoMatch(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	_, err = cat.Schemas([]string{"no_such_table", "also_missing"})
	require.Error(t, err)
	assert.Equal(t, "No matching tables found", err.Error())
}

func TestSchemasSkipsUnknownNames(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	result, err := cat.Schemas([]string{"api__analytics__orders", "no_such_table"})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Contains(t, result, "api__analytics__orders")
}

func TestPermittedMatchesCatalog(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	permitted := cat.Permitted("dev", "platinum")
	assert.Equal(t, "dev", permitted.Database)
	assert.Equal(t, "platinum", permitted.Schema)
	assert.Equal(t, cat.Tables(), permitted.Tables)
}

func TestPermittedComputedFresh(t *testing.T) {
	cat := New([]TableSchema{
		{Name: "orders", Columns: []ColumnSpec{{Name: "order_id", Type: "bigint"}}},
		{Name: "visits", Columns: []ColumnSpec{{Name: "visit_id", Type: "bigint"}}},
	})

	first := cat.Permitted("dev", "platinum")
	first.Tables[0] = "mangled"

	second := cat.Permitted("dev", "platinum")
	assert.Equal(t, []string{"orders", "visits"}, second.Tables,
		"each call must derive a fresh copy from the catalog")
}
