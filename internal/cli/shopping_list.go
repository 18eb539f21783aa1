package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pageza/ourkitchen/backend/internal/export"
	"github.com/pageza/ourkitchen/backend/internal/service"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	planFlag string
	unitFlag string
	xlsxOut  string
)

var shoppingListCmd = &cobra.Command{
	Use:   "shopping-list",
	Short: "Build a combined shopping list for a meal plan",
	Example: "  kitchenctl shopping-list --plan 3f0c...=1,9a1d...=2 --unit weight\n" +
		"  kitchenctl shopping-list --plan 3f0c...=2 --xlsx list.xlsx",
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := parsePlan(planFlag)
		if err != nil {
			return err
		}
		return withDB(func(db *gorm.DB) error {
			svc := service.NewShoppingListService(service.NewCatalogService(db))
			list, err := svc.Build(cmd.Context(), plan, service.ParseUnitMode(unitFlag))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, line := range list.Items {
				note := ""
				if line.NonConvertible {
					note = "(not convertible)"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", line.Display, line.Name, note)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintln(out, list.Summary())
			if list.Skipped > 0 {
				fmt.Fprintf(out, "Skipped %d plan entries\n", list.Skipped)
			}

			if xlsxOut == "" {
				return nil
			}
			f, err := os.Create(xlsxOut)
			if err != nil {
				return err
			}
			if err := export.WriteShoppingListXLSX(f, list); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(out, "Wrote %s\n", xlsxOut)
			return nil
		})
	},
}

func init() {
	shoppingListCmd.Flags().StringVar(&planFlag, "plan", "", "Meal plan as <recipe id>=<meals>, comma separated")
	shoppingListCmd.Flags().StringVar(&unitFlag, "unit", "volume", "Unit mode: volume, or weight for grams")
	shoppingListCmd.Flags().StringVar(&xlsxOut, "xlsx", "", "Also write the list to this XLSX file")
	rootCmd.AddCommand(shoppingListCmd)
}
