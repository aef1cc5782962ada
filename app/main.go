package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "facility-console",
	Short: "Facility maintenance console API",
	Long: `Facility maintenance console.

Available subcommands:
  serve   - Start the HTTP API
  migrate - Apply database migrations for the configured store
  seed    - Load demo equipment, personnel and work orders
  token   - Issue a development access token`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
