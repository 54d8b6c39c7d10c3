package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/catalog"
	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/config"
	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/databases"
	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/query"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a natural-language question against the warehouse",
	Long: `Ask resolves a free-text question to a permitted table and its columns,
builds a SELECT for it, vets it and runs it. The question must mention one
permitted table and at least one of its columns; "limit N" overrides the
default row limit.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	prompt := strings.Join(args, " ")

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("catalog error: %w", err)
	}

	resolver := query.NewResolver(cat, cfg.Warehouse.DefaultLimit)
	builder := query.NewBuilder(cat, cfg.Warehouse.Schema, cfg.Warehouse.DefaultLimit)
	guard := query.NewGuard(cat, cfg.Warehouse.Schema)

	req, err := resolver.Resolve(prompt)
	if err != nil {
		return err
	}
	sql, err := builder.Build(req)
	if err != nil {
		return err
	}
	vetted, err := guard.Vet(sql)
	if err != nil {
		return err
	}
	color.Cyan("SQL: %s", vetted)

	connStr, err := cfg.Database.GetConnectionString()
	if err != nil {
		return fmt.Errorf("connection string error: %w", err)
	}
	db, err := databases.NewConnector(cfg.Database.DBType, connStr)
	if err != nil {
		return fmt.Errorf("failed to create connector: %w", err)
	}
	defer db.Close()

	result := databases.NewExecutor(db).Execute(ctx, vetted)
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	if result.Err() != "" {
		color.Red("%s", out)
		return nil
	}
	fmt.Println(string(out))
	return nil
}
