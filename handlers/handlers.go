package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/catalog"
	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/config"
	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/databases"
	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/query"
	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/types"
)

type toolHandler = func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

// PermittedTablesHandler creates a handler for the database_permitted_tables
// tool. The permitted set is derived from the catalog on every call.
func PermittedTablesHandler(cat *catalog.Catalog, wh config.WarehouseConfig) toolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		permitted := cat.Permitted(wh.Database, wh.Schema)
		slog.Info("permitted tables listed", "count", len(permitted.Tables))
		return jsonResult(permitted)
	}
}

// TableSchemaHandler creates a handler for the get_tables_schema tool.
func TableSchemaHandler(cat *catalog.Catalog) toolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tables := stringListArg(request, "tables")
		if len(tables) == 0 {
			return mcp.NewToolResultError("Missing tables parameter"), nil
		}

		schemas, err := cat.Schemas(tables)
		if err != nil {
			return jsonResult(types.ErrorResult(err.Error()))
		}
		return jsonResult(schemas)
	}
}

// RunQueryHandler creates a handler for the run_sql_query tool: the raw SQL
// path through the guard and the execution adapter.
func RunQueryHandler(guard *query.Guard, exec *databases.Executor) toolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sql, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Missing query parameter: %v", err)), nil
		}
		return jsonResult(runGuarded(ctx, guard, exec, sql))
	}
}

// StructuredQueryHandler creates a handler for the query_structured tool:
// builder, then guard, then execution adapter.
func StructuredQueryHandler(builder *query.Builder, guard *query.Guard, exec *databases.Executor) toolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		table, err := request.RequireString("table")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Missing table parameter: %v", err)), nil
		}

		req := types.QueryRequest{
			Table:   table,
			Columns: stringListArg(request, "columns"),
			Filters: objectArg(request, "filters"),
			Limit:   intArg(request, "limit"),
		}

		sql, err := builder.Build(req)
		if err != nil {
			return jsonResult(types.ErrorResult(err.Error()))
		}
		return jsonResult(runGuarded(ctx, guard, exec, sql))
	}
}

// AskHandler creates a handler for the safe_nl_query tool: free text through
// the intent resolver, the builder, the guard and the execution adapter.
func AskHandler(resolver *query.Resolver, builder *query.Builder, guard *query.Guard, exec *databases.Executor) toolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		prompt, err := request.RequireString("prompt")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Missing prompt parameter: %v", err)), nil
		}

		req, err := resolver.Resolve(prompt)
		if err != nil {
			return jsonResult(types.ErrorResult(err.Error()))
		}
		sql, err := builder.Build(req)
		if err != nil {
			return jsonResult(types.ErrorResult(err.Error()))
		}
		return jsonResult(runGuarded(ctx, guard, exec, sql))
	}
}

// runGuarded vets the statement and executes it, emitting the status
// checkpoints the chat front end listens for.
func runGuarded(ctx context.Context, guard *query.Guard, exec *databases.Executor, sql string) types.QueryResult {
	notify(ctx, "Connecting to the database...", false)
	vetted, err := guard.Vet(sql)
	if err != nil {
		return types.ErrorResult(err.Error())
	}
	notify(ctx, "Querying the database...", false)
	result := exec.Execute(ctx, vetted)
	notify(ctx, "Returning response...", true)
	return result
}

// notify sends a fire-and-forget status notification to the connected
// client. Delivery failures are logged and dropped; the core never waits for
// an acknowledgement.
func notify(ctx context.Context, description string, done bool) {
	srv := server.ServerFromContext(ctx)
	if srv == nil {
		return
	}
	err := srv.SendNotificationToClient(ctx, "status", map[string]any{
		"description": description,
		"done":        done,
	})
	if err != nil {
		slog.Debug("status notification dropped", "error", err)
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal results: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func stringListArg(request mcp.CallToolRequest, name string) []string {
	args, ok := request.Params.Arguments.(map[string]any)
	if !ok {
		return nil
	}
	raw, ok := args[name].([]interface{})
	if !ok {
		return nil
	}
	var values []string
	for _, v := range raw {
		if s, ok := v.(string); ok {
			values = append(values, s)
		}
	}
	return values
}

func objectArg(request mcp.CallToolRequest, name string) map[string]any {
	args, ok := request.Params.Arguments.(map[string]any)
	if !ok {
		return nil
	}
	obj, _ := args[name].(map[string]any)
	return obj
}

func intArg(request mcp.CallToolRequest, name string) int {
	args, ok := request.Params.Arguments.(map[string]any)
	if !ok {
		return 0
	}
	// JSON numbers arrive as float64.
	if f, ok := args[name].(float64); ok {
		return int(f)
	}
	return 0
}
