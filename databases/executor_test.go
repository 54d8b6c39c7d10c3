package databases

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDatabase struct {
	rows []map[string]any
	err  error
}

func (s *stubDatabase) Ping(ctx context.Context) error { return s.err }

func (s *stubDatabase) Query(ctx context.Context, sql string) ([]map[string]any, error) {
	return s.rows, s.err
}

func (s *stubDatabase) Close() error { return nil }

func TestExecuteReturnsRows(t *testing.T) {
	rows := []map[string]any{
		{"store_id": int64(1), "activity_date": "2024-01-01"},
		{"store_id": int64(2), "activity_date": "2024-01-02"},
	}
	exec := NewExecutor(&stubDatabase{rows: rows})

	result := exec.Execute(context.Background(), "SELECT store_id, activity_date FROM platinum.api__analytics__summery LIMIT 3;")
	assert.Empty(t, result.Err())
	assert.Equal(t, rows, result.Rows())
}

// Every execution failure collapses into the same opaque message; the
// underlying fault must never reach the caller.
func TestExecuteCollapsesFailures(t *testing.T) {
	faults := []error{
		errors.New("dial tcp 127.0.0.1:5439: connect: connection refused"),
		errors.New(`pq: permission denied for relation api__analytics__orders`),
		errors.New(`syntax error at or near "FORM"`),
	}
	for _, fault := range faults {
		exec := NewExecutor(&stubDatabase{err: fault})
		result := exec.Execute(context.Background(), "SELECT 1")
		assert.Equal(t, "could not connect to server", result.Err())
		assert.Nil(t, result.Rows())
	}
}

func TestExecuteEnvelopeShape(t *testing.T) {
	exec := NewExecutor(&stubDatabase{})
	result := exec.Execute(context.Background(), "SELECT 1")

	out, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rows": []}`, string(out), "empty success is rows, not an error")

	exec = NewExecutor(&stubDatabase{err: errors.New("boom")})
	out, err = json.Marshal(exec.Execute(context.Background(), "SELECT 1"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error": "could not connect to server"}`, string(out))
}

func TestNewConnectorRejectsUnknownType(t *testing.T) {
	_, err := NewConnector("oracle", "oracle://nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported Database type: oracle")
}
