package cli

import (
	"fmt"
	"os"

	"github.com/pageza/ourkitchen/backend/internal/seed"
	"github.com/pageza/ourkitchen/backend/internal/service"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	recipesFile string
	chartFile   string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load starter data",
}

var seedRecipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Load recipes from a JSON file when the recipe table is empty",
	RunE: func(cmd *cobra.Command, args []string) error {
		if recipesFile == "" {
			return fmt.Errorf("--file is required")
		}
		f, err := os.Open(recipesFile)
		if err != nil {
			return err
		}
		defer f.Close()

		reqs, err := seed.LoadRecipes(f)
		if err != nil {
			return err
		}
		return withDB(func(db *gorm.DB) error {
			created, err := seed.SeedRecipes(cmd.Context(), db, reqs)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d recipes\n", created)
			return nil
		})
	},
}

var seedIngredientsCmd = &cobra.Command{
	Use:   "ingredients",
	Short: "Load catalog ingredients from a saved King Arthur weight chart page",
	RunE: func(cmd *cobra.Command, args []string) error {
		if chartFile == "" {
			return fmt.Errorf("--chart is required")
		}
		f, err := os.Open(chartFile)
		if err != nil {
			return err
		}
		defer f.Close()

		rows, err := seed.ParseWeightChart(f)
		if err != nil {
			return err
		}
		return withDB(func(db *gorm.DB) error {
			inserted, skipped, err := seed.SeedIngredients(cmd.Context(), service.NewIngredientService(db), rows)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d ingredients (%d skipped)\n", inserted, skipped)
			return nil
		})
	},
}

func init() {
	seedRecipesCmd.Flags().StringVar(&recipesFile, "file", "", "Recipes JSON file")
	seedIngredientsCmd.Flags().StringVar(&chartFile, "chart", "", "Saved weight chart HTML file")
	seedCmd.AddCommand(seedRecipesCmd, seedIngredientsCmd)
	rootCmd.AddCommand(seedCmd)
}
