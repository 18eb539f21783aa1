// Package cli implements the kitchenctl command line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:           "kitchenctl",
	Short:         "kitchenctl manages the Our Kitchen database and builds shopping lists",
	Long:          "kitchenctl runs migrations, seeds recipes and catalog ingredients, and builds combined shopping lists from meal plans.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to a SQLite database (overrides DB_DRIVER and DB_PATH)")
}
