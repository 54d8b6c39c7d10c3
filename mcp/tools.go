package mcp

import (
	goMCP "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/catalog"
	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/config"
	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/databases"
	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/handlers"
	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/query"
)

// RegisterTools wires the warehouse tools onto the MCP server. Every query
// path runs through the guard before the database sees it.
func RegisterTools(s *server.MCPServer, cat *catalog.Catalog, wh config.WarehouseConfig, db databases.Database) {
	guard := query.NewGuard(cat, wh.Schema)
	builder := query.NewBuilder(cat, wh.Schema, wh.DefaultLimit)
	resolver := query.NewResolver(cat, wh.DefaultLimit)
	exec := databases.NewExecutor(db)

	// Permitted tables tool
	permittedTool := goMCP.NewTool("database_permitted_tables",
		goMCP.WithDescription("List the database, schema and tables permitted for querying"),
	)

	// Schema tool
	schemaTool := goMCP.NewTool("get_tables_schema",
		goMCP.WithDescription("Get column metadata for the given warehouse tables"),
		goMCP.WithArray("tables",
			goMCP.Required(),
			goMCP.Description("Table names to describe; a schema prefix like 'platinum.' is stripped"),
		),
	)

	// Raw query tool
	queryTool := goMCP.NewTool("run_sql_query",
		goMCP.WithDescription("Run a read-only SQL query against the permitted warehouse tables"),
		goMCP.WithString("query",
			goMCP.Required(),
			goMCP.Description("SQL query to execute (SELECT statements only)"),
		),
	)

	// Structured query tool
	structuredTool := goMCP.NewTool("query_structured",
		goMCP.WithDescription("Build and run a SELECT from a structured table/columns/filters/limit request"),
		goMCP.WithString("table",
			goMCP.Required(),
			goMCP.Description("Name of the table to query"),
		),
		goMCP.WithArray("columns",
			goMCP.Required(),
			goMCP.Description("Columns to select; must exist on the table, '*' alone is rejected"),
		),
		goMCP.WithObject("filters",
			goMCP.Description("Equality filters as column -> value"),
		),
		goMCP.WithNumber("limit",
			goMCP.Description("Row limit (default: 10)"),
		),
	)

	// Natural-language tool
	askTool := goMCP.NewTool("safe_nl_query",
		goMCP.WithDescription("Answer a natural-language question by matching a permitted table and its columns"),
		goMCP.WithString("prompt",
			goMCP.Required(),
			goMCP.Description("Free-text question naming a permitted table and at least one of its columns"),
		),
	)

	s.AddTool(permittedTool, handlers.PermittedTablesHandler(cat, wh))
	s.AddTool(schemaTool, handlers.TableSchemaHandler(cat))
	s.AddTool(queryTool, handlers.RunQueryHandler(guard, exec))
	s.AddTool(structuredTool, handlers.StructuredQueryHandler(builder, guard, exec))
	s.AddTool(askTool, handlers.AskHandler(resolver, builder, guard, exec))
}
