package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryResultMarshalsExactlyOneKey(t *testing.T) {
	out, err := json.Marshal(RowsResult([]map[string]any{{"store_id": 1}}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"rows": [{"store_id": 1}]}`, string(out))

	out, err = json.Marshal(ErrorResult("Table is missing."))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error": "Table is missing."}`, string(out))
}

func TestRowsResultNeverNull(t *testing.T) {
	out, err := json.Marshal(RowsResult(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"rows": []}`, string(out))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	_, hasError := decoded["error"]
	assert.False(t, hasError)
}
