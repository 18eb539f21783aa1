package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/pageza/ourkitchen/backend/internal/model"
	"github.com/pageza/ourkitchen/backend/internal/service"
	"github.com/pageza/ourkitchen/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSearchIngredients(t *testing.T) {
	router, deps := setupTestRouter(t)
	deps.ingredients.On("SearchIngredientNames", anyCtx, "flo").Return([]string{"All-Purpose Flour", "Bread Flour"}, nil)

	w := PerformRequest(router, http.MethodGet, "/api/v1/ingredients/search?q=flo", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"names":["All-Purpose Flour","Bread Flour"]}`, w.Body.String())
}

func TestListIngredients(t *testing.T) {
	router, deps := setupTestRouter(t)
	deps.ingredients.On("ListIngredients", anyCtx).Return([]*model.Ingredient{
		{ID: uuid.New(), Name: "Butter", UnitType: model.UnitTypeVolume},
	}, nil)

	w := PerformRequest(router, http.MethodGet, "/api/v1/ingredients", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Ingredients []model.Ingredient `json:"ingredients"`
	}
	decode(t, w, &resp)
	require.Len(t, resp.Ingredients, 1)
	assert.Equal(t, "Butter", resp.Ingredients[0].Name)
}

func TestCreateIngredient(t *testing.T) {
	router, deps := setupTestRouter(t)
	deps.ingredients.On("CreateIngredient", anyCtx, mock.MatchedBy(func(req *types.IngredientRequest) bool {
		return req.Name == "Butter"
	})).Return(&model.Ingredient{ID: uuid.New(), Name: "Butter"}, nil)
	deps.ingredients.On("CreateIngredient", anyCtx, mock.MatchedBy(func(req *types.IngredientRequest) bool {
		return req.Name == "butter"
	})).Return(nil, service.ErrIngredientExists)
	deps.ingredients.On("CreateIngredient", anyCtx, mock.MatchedBy(func(req *types.IngredientRequest) bool {
		return req.Name == "Eggs"
	})).Return(nil, service.ErrInvalidUnitType)

	w := PerformRequestWithToken(router, http.MethodPost, "/api/v1/ingredients",
		map[string]interface{}{"name": "Butter", "volume_amount": 0.5, "grams": 113}, adminToken)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = PerformRequestWithToken(router, http.MethodPost, "/api/v1/ingredients",
		map[string]interface{}{"name": "butter"}, adminToken)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = PerformRequestWithToken(router, http.MethodPost, "/api/v1/ingredients",
		map[string]interface{}{"name": "Eggs", "unit_type": "dozen"}, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = PerformRequest(router, http.MethodPost, "/api/v1/ingredients", map[string]interface{}{"name": "Salt"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateIngredient(t *testing.T) {
	router, deps := setupTestRouter(t)
	id := uuid.New()
	deps.ingredients.On("UpdateIngredient", anyCtx, id, mock.Anything).Return(&model.Ingredient{ID: id, Name: "Brown Sugar"}, nil)

	w := PerformRequestWithToken(router, http.MethodPut, "/api/v1/ingredients/"+id.String(),
		map[string]interface{}{"name": "Brown Sugar"}, adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = PerformRequestWithToken(router, http.MethodPut, "/api/v1/ingredients/nope",
		map[string]interface{}{"name": "Brown Sugar"}, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
