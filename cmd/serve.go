package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/catalog"
	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/config"
	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/databases"
	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the warehouse tools over MCP stdio",
	Long: `Serve starts an MCP stdio server exposing the permitted-tables,
schema, raw-SQL, structured-query and natural-language tools.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("catalog error: %w", err)
	}

	connStr, err := cfg.Database.GetConnectionString()
	if err != nil {
		return fmt.Errorf("connection string error: %w", err)
	}

	db, err := databases.NewConnector(cfg.Database.DBType, connStr)
	if err != nil {
		return fmt.Errorf("failed to create connector: %w", err)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Ping(pingCtx); err != nil {
		// Not fatal: connections are acquired per query, the database may
		// come up later.
		slog.Warn("database unreachable at startup", "error", err)
	} else {
		slog.Info("connected", "type", cfg.Database.DBType)
	}

	s := server.NewMCPServer(
		"warehouse-gate",
		Version,
		server.WithToolCapabilities(false),
		server.WithLogging(),
	)

	mcp.RegisterTools(s, cat, cfg.Warehouse, db)
	slog.Info("serving warehouse tools",
		"schema", cfg.Warehouse.Schema, "tables", len(cat.Tables()))

	return server.ServeStdio(s)
}
