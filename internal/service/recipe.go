package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/ourkitchen/backend/config"
	"github.com/pageza/ourkitchen/backend/internal/model"
	"github.com/pageza/ourkitchen/backend/internal/types"
	"gorm.io/gorm"
)

const (
	defaultServings = 4
	maxImageBytes   = 10 << 20
)

// RecipeService handles recipe operations
type RecipeService struct {
	db     *gorm.DB
	images ImageStore
}

// NewRecipeService creates a new RecipeService instance. images may be nil
// when no object storage is configured.
func NewRecipeService(db *gorm.DB, images ImageStore) *RecipeService {
	return &RecipeService{
		db:     db,
		images: images,
	}
}

// ListRecipes returns all recipes in creation order
func (s *RecipeService) ListRecipes(ctx context.Context) ([]*model.Recipe, error) {
	var recipes []*model.Recipe
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// GetRecipe retrieves a recipe with its steps and ingredient lines
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	return getRecipe(s.db.WithContext(ctx), id)
}

func getRecipe(db *gorm.DB, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	err := db.
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("step_number ASC") }).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		First(&recipe, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return &recipe, nil
}

// CreateRecipe stores a new recipe with its steps and ingredient lines
func (s *RecipeService) CreateRecipe(ctx context.Context, req *types.RecipeRequest) (*model.Recipe, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}

	var id uuid.UUID
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recipe := &model.Recipe{}
		applyRecipeFields(recipe, req)
		if err := tx.Create(recipe).Error; err != nil {
			return fmt.Errorf("failed to create recipe: %w", err)
		}
		id = recipe.ID
		return replaceRecipeContent(tx, recipe.ID, req)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[RecipeService] Created recipe %s (%q)", id, req.Title)
	return s.GetRecipe(ctx, id)
}

// UpdateRecipe replaces a recipe's fields, steps and ingredient lines
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, req *types.RecipeRequest) (*model.Recipe, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe model.Recipe
		if err := tx.First(&recipe, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecipeNotFound
			}
			return fmt.Errorf("failed to get recipe: %w", err)
		}

		imagePath := recipe.ImagePath
		applyRecipeFields(&recipe, req)
		if recipe.ImagePath == "" {
			recipe.ImagePath = imagePath
		}
		if err := tx.Save(&recipe).Error; err != nil {
			return fmt.Errorf("failed to update recipe: %w", err)
		}
		return replaceRecipeContent(tx, id, req)
	})
	if err != nil {
		return nil, err
	}
	return s.GetRecipe(ctx, id)
}

// DeleteRecipe deletes a recipe together with its steps and ingredient lines
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.Recipe{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete recipe: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrRecipeNotFound
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&model.RecipeStep{}).Error; err != nil {
			return fmt.Errorf("failed to delete recipe steps: %w", err)
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&model.RecipeIngredient{}).Error; err != nil {
			return fmt.Errorf("failed to delete recipe ingredients: %w", err)
		}
		return nil
	})
}

// SetRecipeImage uploads an image for the recipe and records its location
func (s *RecipeService) SetRecipeImage(ctx context.Context, id uuid.UUID, filename string, body io.Reader) (*model.Recipe, error) {
	if s.images == nil {
		return nil, ErrImageStoreDisabled
	}
	ext, contentType, ok := imageExtension(filename)
	if !ok {
		return nil, ErrInvalidImageType
	}

	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	key := fmt.Sprintf("%s%s_%d.%s", config.RecipeImagePrefix, id, time.Now().Unix(), ext)
	url, err := s.images.Upload(ctx, key, contentType, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Where("id = ?", id).Update("image_path", url).Error; err != nil {
		return nil, fmt.Errorf("failed to save image path: %w", err)
	}
	recipe.ImagePath = url
	return recipe, nil
}

func applyRecipeFields(recipe *model.Recipe, req *types.RecipeRequest) {
	recipe.Title = strings.TrimSpace(req.Title)
	recipe.ImagePath = strings.TrimSpace(req.ImagePath)
	recipe.Servings = req.Servings
	if recipe.Servings <= 0 {
		recipe.Servings = defaultServings
	}
	recipe.Tags = cleanTags(req.Tags)
	recipe.SourceURL = nil
	if src := strings.TrimSpace(req.SourceURL); src != "" {
		recipe.SourceURL = &src
	}
}

func cleanTags(tags []string) model.JSONBStringArray {
	out := model.JSONBStringArray{}
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// replaceRecipeContent swaps out the recipe's steps and ingredient lines.
// Lines are linked to catalog ingredients whose name matches ignoring case.
func replaceRecipeContent(tx *gorm.DB, recipeID uuid.UUID, req *types.RecipeRequest) error {
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&model.RecipeStep{}).Error; err != nil {
		return fmt.Errorf("failed to clear recipe steps: %w", err)
	}
	steps := RecipeSteps(req.Steps, req.Instructions)
	for i, instruction := range steps {
		step := &model.RecipeStep{RecipeID: recipeID, StepNumber: i + 1, Instruction: instruction}
		if err := tx.Create(step).Error; err != nil {
			return fmt.Errorf("failed to create recipe step: %w", err)
		}
	}

	if err := tx.Where("recipe_id = ?", recipeID).Delete(&model.RecipeIngredient{}).Error; err != nil {
		return fmt.Errorf("failed to clear recipe ingredients: %w", err)
	}
	sortOrder := 0
	for _, in := range req.Ingredients {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			continue
		}
		ingredientID, err := lookupIngredientID(tx, name)
		if err != nil {
			return err
		}
		line := &model.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: ingredientID,
			Name:         name,
			Amount:       in.Amount,
			Unit:         strings.TrimSpace(in.Unit),
			SortOrder:    sortOrder,
		}
		if err := tx.Create(line).Error; err != nil {
			return fmt.Errorf("failed to create recipe ingredient: %w", err)
		}
		sortOrder++
	}
	return nil
}

// lookupIngredientID returns the id of the catalog ingredient named name, or
// nil when the catalog has no such ingredient.
func lookupIngredientID(tx *gorm.DB, name string) (*uuid.UUID, error) {
	var ing model.Ingredient
	err := tx.Select("id").Where("name_key = ?", model.FoldName(name)).Take(&ing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up ingredient %q: %w", name, err)
	}
	return &ing.ID, nil
}

// RecipeSteps returns explicit steps when given, otherwise splits free-form
// instructions on blank lines.
func RecipeSteps(steps []string, instructions string) []string {
	var out []string
	if len(steps) == 0 {
		text := strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(instructions)
		steps = strings.Split(text, "\n\n")
	}
	for _, s := range steps {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
