package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTableAndColumns(t *testing.T) {
	resolver := NewResolver(testCatalog(), 10)

	req, err := resolver.Resolve("Help me to get store_id and activity_date from api__analytics__summery")
	require.NoError(t, err)
	assert.Equal(t, "api__analytics__summery", req.Table)
	assert.Equal(t, []string{"store_id", "activity_date"}, req.Columns)
	assert.Equal(t, 10, req.Limit)
	assert.Empty(t, req.Filters)
	assert.NotNil(t, req.Filters, "filters are empty, not absent")
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	resolver := NewResolver(testCatalog(), 10)

	req, err := resolver.Resolve("show ORDER_ID from API__ANALYTICS__ORDERS")
	require.NoError(t, err)
	assert.Equal(t, "api__analytics__orders", req.Table)
	assert.Equal(t, []string{"order_id"}, req.Columns)
}

func TestResolveFirstTableWins(t *testing.T) {
	resolver := NewResolver(testCatalog(), 10)

	// Both tables are named; the first in catalog order wins, no ranking.
	req, err := resolver.Resolve("compare store_id in api__analytics__summery and api__analytics__orders")
	require.NoError(t, err)
	assert.Equal(t, "api__analytics__summery", req.Table)
}

func TestResolveLimitOverride(t *testing.T) {
	resolver := NewResolver(testCatalog(), 10)

	req, err := resolver.Resolve("get store_id from api__analytics__summery limit 25")
	require.NoError(t, err)
	assert.Equal(t, 25, req.Limit)

	req, err = resolver.Resolve("get store_id from api__analytics__summery LIMIT 3 please")
	require.NoError(t, err)
	assert.Equal(t, 3, req.Limit)
}

func TestResolveNoTable(t *testing.T) {
	resolver := NewResolver(testCatalog(), 10)

	_, err := resolver.Resolve("what is the weather today")
	require.Error(t, err)
	assert.Equal(t, "No permitted table found in prompt.", err.Error())
}

func TestResolveNoColumns(t *testing.T) {
	resolver := NewResolver(testCatalog(), 10)

	_, err := resolver.Resolve("tell me about api__analytics__summery")
	require.Error(t, err)
	assert.Equal(t, "No valid columns found in prompt. Please specify valid columns.", err.Error())
}
