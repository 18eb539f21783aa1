package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pageza/ourkitchen/backend/internal/model"
	"gorm.io/gorm"
)

// IngredientDetails is the slice of a catalog ingredient that drives weight
// conversion.
type IngredientDetails struct {
	ID             uuid.UUID
	Name           string
	UnitType       model.UnitType
	GramsPerCup    *float64
	AvgWeightGrams *float64
}

// CatalogService reads recipe lines and ingredient details from the database.
type CatalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// GetRecipeIngredients returns a recipe's ingredient lines in authored order.
func (s *CatalogService) GetRecipeIngredients(ctx context.Context, recipeID uuid.UUID) ([]model.RecipeIngredient, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Where("id = ?", recipeID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to look up recipe: %w", err)
	}
	if count == 0 {
		return nil, ErrRecipeNotFound
	}

	var lines []model.RecipeIngredient
	if err := s.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("sort_order ASC").
		Find(&lines).Error; err != nil {
		return nil, fmt.Errorf("failed to load recipe ingredients: %w", err)
	}
	return lines, nil
}

// GetIngredientDetails returns the conversion data of one catalog ingredient.
func (s *CatalogService) GetIngredientDetails(ctx context.Context, ingredientID uuid.UUID) (*IngredientDetails, error) {
	var ing model.Ingredient
	if err := s.db.WithContext(ctx).First(&ing, "id = ?", ingredientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, fmt.Errorf("failed to load ingredient: %w", err)
	}
	return &IngredientDetails{
		ID:             ing.ID,
		Name:           ing.Name,
		UnitType:       ing.UnitType,
		GramsPerCup:    ing.GramsPerCup,
		AvgWeightGrams: ing.AvgWeightGrams,
	}, nil
}
