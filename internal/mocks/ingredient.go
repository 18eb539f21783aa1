package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/ourkitchen/backend/internal/model"
	"github.com/pageza/ourkitchen/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockIngredientService is a mock implementation of the ingredient service
type MockIngredientService struct {
	mock.Mock
}

// ListIngredients mocks the ListIngredients method
func (m *MockIngredientService) ListIngredients(ctx context.Context) ([]*model.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Ingredient), args.Error(1)
}

// SearchIngredientNames mocks the SearchIngredientNames method
func (m *MockIngredientService) SearchIngredientNames(ctx context.Context, query string) ([]string, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// CreateIngredient mocks the CreateIngredient method
func (m *MockIngredientService) CreateIngredient(ctx context.Context, req *types.IngredientRequest) (*model.Ingredient, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ingredient), args.Error(1)
}

// UpdateIngredient mocks the UpdateIngredient method
func (m *MockIngredientService) UpdateIngredient(ctx context.Context, id uuid.UUID, req *types.IngredientRequest) (*model.Ingredient, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ingredient), args.Error(1)
}
