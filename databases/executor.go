package databases

import (
	"context"
	"log/slog"

	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/types"
)

// execFailureMsg is the only execution failure callers ever see. Real error
// detail goes to the operational log and nowhere else.
const execFailureMsg = "could not connect to server"

// Executor is the execution adapter: it runs a vetted statement and folds
// the outcome into the result envelope. Every execution-time failure,
// whatever the underlying fault, collapses into one opaque message so
// database internals never leak to the caller.
type Executor struct {
	db Database
}

func NewExecutor(db Database) *Executor {
	return &Executor{db: db}
}

func (e *Executor) Execute(ctx context.Context, sql string) types.QueryResult {
	rows, err := e.db.Query(ctx, sql)
	if err != nil {
		slog.Error("query execution failed", "error", err)
		return types.ErrorResult(execFailureMsg)
	}
	slog.Info("query executed", "rows", len(rows))
	return types.RowsResult(rows)
}
