package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/pageza/ourkitchen/backend/internal/conversion"
	"github.com/pageza/ourkitchen/backend/internal/model"
	"github.com/pageza/ourkitchen/backend/internal/types"
	"gorm.io/gorm"
)

const searchLimit = 10

// IngredientService handles catalog ingredient operations
type IngredientService struct {
	db *gorm.DB
}

// NewIngredientService creates a new IngredientService instance
func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

// ListIngredients returns the whole catalog ordered by name
func (s *IngredientService) ListIngredients(ctx context.Context) ([]*model.Ingredient, error) {
	var ingredients []*model.Ingredient
	if err := s.db.WithContext(ctx).Order("name_key ASC").Find(&ingredients).Error; err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	return ingredients, nil
}

// SearchIngredientNames returns up to ten ingredient names containing query,
// ignoring case.
func (s *IngredientService) SearchIngredientNames(ctx context.Context, query string) ([]string, error) {
	names := []string{}
	query = strings.TrimSpace(query)
	if query == "" {
		return names, nil
	}

	like := "%" + escapeLike(model.FoldName(query)) + "%"
	err := s.db.WithContext(ctx).Model(&model.Ingredient{}).
		Where("name_key LIKE ? ESCAPE '\\'", like).
		Order("name_key ASC").
		Limit(searchLimit).
		Pluck("name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search ingredients: %w", err)
	}
	return names, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// CreateIngredient adds an ingredient to the catalog. Names are unique
// ignoring case.
func (s *IngredientService) CreateIngredient(ctx context.Context, req *types.IngredientRequest) (*model.Ingredient, error) {
	ing := &model.Ingredient{}
	if err := applyIngredientFields(ing, req); err != nil {
		return nil, err
	}

	exists, err := s.nameTaken(ctx, ing.Name, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrIngredientExists
	}

	if err := s.db.WithContext(ctx).Create(ing).Error; err != nil {
		return nil, fmt.Errorf("failed to create ingredient: %w", err)
	}
	log.Printf("[IngredientService] Added ingredient %q", ing.Name)
	return ing, nil
}

// UpdateIngredient overwrites an existing catalog ingredient
func (s *IngredientService) UpdateIngredient(ctx context.Context, id uuid.UUID, req *types.IngredientRequest) (*model.Ingredient, error) {
	var ing model.Ingredient
	if err := s.db.WithContext(ctx).First(&ing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}

	if err := applyIngredientFields(&ing, req); err != nil {
		return nil, err
	}
	exists, err := s.nameTaken(ctx, ing.Name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrIngredientExists
	}

	if err := s.db.WithContext(ctx).Save(&ing).Error; err != nil {
		return nil, fmt.Errorf("failed to update ingredient: %w", err)
	}
	return &ing, nil
}

func (s *IngredientService) nameTaken(ctx context.Context, name string, except uuid.UUID) (bool, error) {
	var count int64
	query := s.db.WithContext(ctx).Model(&model.Ingredient{}).Where("name_key = ?", model.FoldName(name))
	if except != uuid.Nil {
		query = query.Where("id <> ?", except)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check ingredient name: %w", err)
	}
	return count > 0, nil
}

func applyIngredientFields(ing *model.Ingredient, req *types.IngredientRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return ErrNameRequired
	}
	unitType := model.UnitType(strings.ToLower(strings.TrimSpace(req.UnitType)))
	if unitType == "" {
		unitType = model.UnitTypeVolume
	}
	if !unitType.Valid() {
		return ErrInvalidUnitType
	}

	ing.Name = name
	ing.UnitType = unitType
	ing.VolumeAmount = positive(req.VolumeAmount)
	ing.VolumeUnit = strings.TrimSpace(req.VolumeUnit)
	if ing.VolumeUnit == "" {
		ing.VolumeUnit = "cup"
	}
	ing.Ounces = positive(req.Ounces)
	ing.Grams = positive(req.Grams)
	ing.AvgWeightGrams = positive(req.AvgWeightGrams)
	ing.GramsPerCup = DeriveGramsPerCup(ing.VolumeAmount, ing.VolumeUnit, ing.Grams)
	return nil
}

// DeriveGramsPerCup computes a density from a reference measurement, or nil
// when the measurement is incomplete or not in a volume unit.
func DeriveGramsPerCup(volumeAmount *float64, volumeUnit string, grams *float64) *float64 {
	if volumeAmount == nil || grams == nil || volumeUnit == "" {
		return nil
	}
	gpc, ok := conversion.NormalizeToGramsPerCup(*volumeAmount, volumeUnit, *grams)
	if !ok {
		return nil
	}
	return &gpc
}

func positive(v *float64) *float64 {
	if v == nil || *v <= 0 {
		return nil
	}
	out := *v
	return &out
}
