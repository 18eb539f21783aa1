package testhelpers

import (
	"testing"

	"github.com/pageza/ourkitchen/backend/internal/model"
	"gorm.io/gorm"
)

// Float returns a pointer to v, for optional model fields.
func Float(v float64) *float64 {
	return &v
}

// CreateIngredient inserts a catalog ingredient.
func CreateIngredient(t *testing.T, db *gorm.DB, ing *model.Ingredient) *model.Ingredient {
	t.Helper()
	if err := db.Create(ing).Error; err != nil {
		t.Fatalf("failed to create ingredient %q: %v", ing.Name, err)
	}
	return ing
}

// Line describes a recipe ingredient line for CreateRecipe. Ingredient links
// the line to the catalog when set.
type Line struct {
	Name       string
	Amount     float64
	Unit       string
	Ingredient *model.Ingredient
}

// CreateRecipe inserts a recipe with the given lines in order.
func CreateRecipe(t *testing.T, db *gorm.DB, title string, lines ...Line) *model.Recipe {
	t.Helper()

	recipe := &model.Recipe{Title: title, Servings: 4}
	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("failed to create recipe %q: %v", title, err)
	}

	for i, l := range lines {
		ri := &model.RecipeIngredient{
			RecipeID:  recipe.ID,
			Name:      l.Name,
			Amount:    l.Amount,
			Unit:      l.Unit,
			SortOrder: i,
		}
		if l.Ingredient != nil {
			id := l.Ingredient.ID
			ri.IngredientID = &id
		}
		if err := db.Create(ri).Error; err != nil {
			t.Fatalf("failed to create ingredient line %q: %v", l.Name, err)
		}
		recipe.Ingredients = append(recipe.Ingredients, *ri)
	}
	return recipe
}
