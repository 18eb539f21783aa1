// Package seed loads starter recipes and catalog ingredients.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/pageza/ourkitchen/backend/internal/model"
	"github.com/pageza/ourkitchen/backend/internal/service"
	"github.com/pageza/ourkitchen/backend/internal/types"
	"gorm.io/gorm"
)

// recipeFile is one entry of a recipes JSON file.
type recipeFile struct {
	Title       string                        `json:"title"`
	Image       string                        `json:"image"`
	Servings    int                           `json:"servings"`
	Tags        []string                      `json:"tags"`
	SourceURL   string                        `json:"source_url"`
	Steps       []string                      `json:"steps"`
	Ingredients []types.RecipeIngredientInput `json:"ingredients"`
}

// LoadRecipes decodes a JSON array of recipes into create requests
func LoadRecipes(r io.Reader) ([]types.RecipeRequest, error) {
	var entries []recipeFile
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode recipes: %w", err)
	}

	reqs := make([]types.RecipeRequest, 0, len(entries))
	for i, e := range entries {
		if e.Title == "" {
			return nil, fmt.Errorf("recipe %d has no title", i)
		}
		reqs = append(reqs, types.RecipeRequest{
			Title:       e.Title,
			ImagePath:   e.Image,
			Servings:    e.Servings,
			Tags:        e.Tags,
			SourceURL:   e.SourceURL,
			Steps:       e.Steps,
			Ingredients: e.Ingredients,
		})
	}
	return reqs, nil
}

// SeedRecipes creates reqs through the recipe service, linking lines to the
// catalog by name. Nothing is written when any recipe already exists.
func SeedRecipes(ctx context.Context, db *gorm.DB, reqs []types.RecipeRequest) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Recipe{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	if count > 0 {
		log.Printf("[Seed] Recipe table already has %d rows, skipping", count)
		return 0, nil
	}

	recipes := service.NewRecipeService(db, nil)
	created := 0
	for i := range reqs {
		if _, err := recipes.CreateRecipe(ctx, &reqs[i]); err != nil {
			return created, fmt.Errorf("failed to seed recipe %q: %w", reqs[i].Title, err)
		}
		created++
	}
	log.Printf("[Seed] Seeded %d recipes", created)
	return created, nil
}
