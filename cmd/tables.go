package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/catalog"
	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/config"
)

var tablesCmd = &cobra.Command{
	Use:   "tables [table...]",
	Short: "List permitted tables or show their column schemas",
	Long: `Tables prints the permitted-table set derived from the catalog. With
table-name arguments it prints each table's description and columns instead.
A schema prefix like 'platinum.' on an argument is stripped.`,
	RunE: runTables,
}

func runTables(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("catalog error: %w", err)
	}

	if len(args) == 0 {
		permitted := cat.Permitted(cfg.Warehouse.Database, cfg.Warehouse.Schema)
		color.Green("%s.%s", permitted.Database, permitted.Schema)
		for _, t := range permitted.Tables {
			fmt.Printf("  %s\n", t)
		}
		return nil
	}

	schemas, err := cat.Schemas(args)
	if err != nil {
		return err
	}

	// Catalog declaration order, not argument order.
	for _, name := range cat.Tables() {
		table, ok := schemas[name]
		if !ok {
			continue
		}
		color.Green("%s.%s", cfg.Warehouse.Schema, table.Name)
		fmt.Printf("  %s\n\n", table.Description)
		for _, c := range table.Columns {
			fmt.Printf("  %-40s %-28s %s\n", c.Name, c.Type, c.Description)
		}
		fmt.Println()
	}
	return nil
}
