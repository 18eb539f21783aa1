package service

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/ourkitchen/backend/internal/model"
	"github.com/pageza/ourkitchen/backend/internal/types"
)

// Catalog is the read path into recipes and ingredients used when building
// shopping lists. Implementations must be safe for concurrent readers.
type Catalog interface {
	// GetRecipeIngredients returns the recipe's lines ordered by sort order,
	// or ErrRecipeNotFound.
	GetRecipeIngredients(ctx context.Context, recipeID uuid.UUID) ([]model.RecipeIngredient, error)
	// GetIngredientDetails returns conversion data for a catalog ingredient,
	// or ErrIngredientNotFound.
	GetIngredientDetails(ctx context.Context, ingredientID uuid.UUID) (*IngredientDetails, error)
}

// IShoppingListService defines the interface for shopping list operations
type IShoppingListService interface {
	Build(ctx context.Context, plan types.MealPlan, mode UnitMode) (*ShoppingList, error)
	RecipeIngredients(ctx context.Context, recipeID uuid.UUID, mode UnitMode) ([]types.RecipeIngredientView, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	ListRecipes(ctx context.Context) ([]*model.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
	CreateRecipe(ctx context.Context, req *types.RecipeRequest) (*model.Recipe, error)
	UpdateRecipe(ctx context.Context, id uuid.UUID, req *types.RecipeRequest) (*model.Recipe, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID) error
	SetRecipeImage(ctx context.Context, id uuid.UUID, filename string, body io.Reader) (*model.Recipe, error)
}

// IIngredientService defines the interface for catalog ingredient operations
type IIngredientService interface {
	ListIngredients(ctx context.Context) ([]*model.Ingredient, error)
	SearchIngredientNames(ctx context.Context, query string) ([]string, error)
	CreateIngredient(ctx context.Context, req *types.IngredientRequest) (*model.Ingredient, error)
	UpdateIngredient(ctx context.Context, id uuid.UUID, req *types.IngredientRequest) (*model.Ingredient, error)
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Login(ctx context.Context, password string) (string, time.Time, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// ImageStore persists uploaded recipe images and returns their public location.
type ImageStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}
