package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/pageza/ourkitchen/backend/internal/model"
	"github.com/pageza/ourkitchen/backend/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockCatalog is a mock implementation of service.Catalog
type MockCatalog struct {
	mock.Mock
}

// GetRecipeIngredients mocks the GetRecipeIngredients method
func (m *MockCatalog) GetRecipeIngredients(ctx context.Context, recipeID uuid.UUID) ([]model.RecipeIngredient, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RecipeIngredient), args.Error(1)
}

// GetIngredientDetails mocks the GetIngredientDetails method
func (m *MockCatalog) GetIngredientDetails(ctx context.Context, ingredientID uuid.UUID) (*service.IngredientDetails, error) {
	args := m.Called(ctx, ingredientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.IngredientDetails), args.Error(1)
}

// MockImageStore is a mock implementation of service.ImageStore
type MockImageStore struct {
	mock.Mock
}

// Upload mocks the Upload method
func (m *MockImageStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, body)
	return args.String(0), args.Error(1)
}
