// Package cmd implements the command-line interface using Cobra. It defines
// the root command and all subcommands (serve, ask, tables, version).
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the current version, set at build time via ldflags.
var Version = "0.0.1"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "warehouse-gate",
	Short: "Expose a curated analytics warehouse through safe SQL tools",
	Long: `warehouse-gate sits between a natural-language front end and a live
analytics database. It resolves questions and structured requests into SQL,
enforces a fixed allow-list of tables and columns, rejects mutating
statements and schema-qualifies table references before anything executes.`,
}

// Execute runs the root command and returns any error encountered.
// This is called from main.go.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("warehouse-gate v%s\n", Version)
	},
}
