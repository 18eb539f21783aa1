package api

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/pageza/ourkitchen/backend/internal/model"
	"github.com/pageza/ourkitchen/backend/internal/service"
	"github.com/pageza/ourkitchen/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListRecipes(t *testing.T) {
	router, deps := setupTestRouter(t)
	deps.recipes.On("ListRecipes", anyCtx).Return([]*model.Recipe{
		{ID: uuid.New(), Title: "Pancakes", Servings: 4},
		{ID: uuid.New(), Title: "Waffles", Servings: 2},
	}, nil)

	w := PerformRequest(router, http.MethodGet, "/api/v1/recipes", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recipes []model.Recipe `json:"recipes"`
	}
	decode(t, w, &resp)
	require.Len(t, resp.Recipes, 2)
	assert.Equal(t, "Pancakes", resp.Recipes[0].Title)
}

func TestGetRecipe(t *testing.T) {
	router, deps := setupTestRouter(t)
	id, missing := uuid.New(), uuid.New()
	deps.recipes.On("GetRecipe", anyCtx, id).Return(&model.Recipe{ID: id, Title: "Pancakes"}, nil)
	deps.recipes.On("GetRecipe", anyCtx, missing).Return(nil, service.ErrRecipeNotFound)

	w := PerformRequest(router, http.MethodGet, "/api/v1/recipes/"+id.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Recipe model.Recipe `json:"recipe"`
	}
	decode(t, w, &resp)
	assert.Equal(t, id, resp.Recipe.ID)

	w = PerformRequest(router, http.MethodGet, "/api/v1/recipes/"+missing.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = PerformRequest(router, http.MethodGet, "/api/v1/recipes/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRecipeIngredients(t *testing.T) {
	router, deps := setupTestRouter(t)
	id := uuid.New()
	deps.shoppingList.On("RecipeIngredients", anyCtx, id, service.UnitModeWeight).Return([]types.RecipeIngredientView{
		{Name: "flour", Amount: 2, Unit: "cup", Display: "240 g"},
	}, nil)

	w := PerformRequest(router, http.MethodGet, "/api/v1/recipes/"+id.String()+"/ingredients?unit=weight", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Unit        string                       `json:"unit"`
		Ingredients []types.RecipeIngredientView `json:"ingredients"`
	}
	decode(t, w, &resp)
	assert.Equal(t, "weight", resp.Unit)
	require.Len(t, resp.Ingredients, 1)
	assert.Equal(t, "240 g", resp.Ingredients[0].Display)
}

func TestCreateRecipeRequiresAdmin(t *testing.T) {
	router, deps := setupTestRouter(t)
	deps.auth.On("ValidateToken", "expired").Return(nil, service.ErrInvalidToken)

	body := types.RecipeRequest{Title: "Pancakes"}
	w := PerformRequest(router, http.MethodPost, "/api/v1/recipes", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = PerformRequestWithToken(router, http.MethodPost, "/api/v1/recipes", body, "expired")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	deps.recipes.AssertNotCalled(t, "CreateRecipe", mock.Anything, mock.Anything)
}

func TestCreateRecipe(t *testing.T) {
	router, deps := setupTestRouter(t)
	id := uuid.New()
	deps.recipes.On("CreateRecipe", anyCtx, mock.MatchedBy(func(req *types.RecipeRequest) bool {
		return req.Title == "Pancakes" && len(req.Ingredients) == 1 && req.Ingredients[0].Unit == "cup"
	})).Return(&model.Recipe{ID: id, Title: "Pancakes", Servings: 4}, nil)

	body := map[string]interface{}{
		"title":        "Pancakes",
		"instructions": "Mix.\n\nCook.",
		"ingredients":  []map[string]interface{}{{"name": "flour", "amount": 2, "unit": "cup"}},
	}
	w := PerformRequestWithToken(router, http.MethodPost, "/api/v1/recipes", body, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]interface{}
	decode(t, w, &resp)
	require.Contains(t, resp, "recipe")
	assert.Equal(t, id.String(), resp["recipe"].(map[string]interface{})["id"])

	w = PerformRequestWithToken(router, http.MethodPost, "/api/v1/recipes", map[string]interface{}{"servings": 2}, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAndDeleteRecipe(t *testing.T) {
	router, deps := setupTestRouter(t)
	id, missing := uuid.New(), uuid.New()
	deps.recipes.On("UpdateRecipe", anyCtx, id, mock.Anything).Return(&model.Recipe{ID: id, Title: "Crepes"}, nil)
	deps.recipes.On("UpdateRecipe", anyCtx, missing, mock.Anything).Return(nil, service.ErrRecipeNotFound)
	deps.recipes.On("DeleteRecipe", anyCtx, id).Return(nil)
	deps.recipes.On("DeleteRecipe", anyCtx, missing).Return(service.ErrRecipeNotFound)

	body := types.RecipeRequest{Title: "Crepes"}
	w := PerformRequestWithToken(router, http.MethodPut, "/api/v1/recipes/"+id.String(), body, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	w = PerformRequestWithToken(router, http.MethodPut, "/api/v1/recipes/"+missing.String(), body, adminToken)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = PerformRequestWithToken(router, http.MethodDelete, "/api/v1/recipes/"+id.String(), nil, adminToken)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = PerformRequestWithToken(router, http.MethodDelete, "/api/v1/recipes/"+missing.String(), nil, adminToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func newImageRequest(t *testing.T, path, field, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+adminToken)
	return req
}

func TestUploadRecipeImage(t *testing.T) {
	router, deps := setupTestRouter(t)
	id := uuid.New()
	url := "https://bucket.s3.us-east-1.amazonaws.com/recipe-images/" + id.String() + "_1.png"

	var uploaded []byte
	deps.recipes.On("SetRecipeImage", anyCtx, id, "pancakes.png", mock.Anything).
		Run(func(args mock.Arguments) {
			uploaded, _ = io.ReadAll(args.Get(3).(io.Reader))
		}).
		Return(&model.Recipe{ID: id, Title: "Pancakes", ImagePath: url}, nil)
	deps.recipes.On("SetRecipeImage", anyCtx, id, "notes.txt", mock.Anything).Return(nil, service.ErrInvalidImageType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newImageRequest(t, "/api/v1/recipes/"+id.String()+"/image", "image", "pancakes.png", []byte("png-bytes")))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Recipe model.Recipe `json:"recipe"`
	}
	decode(t, w, &resp)
	assert.Equal(t, url, resp.Recipe.ImagePath)
	assert.Equal(t, "png-bytes", string(uploaded))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, newImageRequest(t, "/api/v1/recipes/"+id.String()+"/image", "image", "notes.txt", []byte("hi")))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, newImageRequest(t, "/api/v1/recipes/"+id.String()+"/image", "photo", "pancakes.png", []byte("x")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"image file is required"}`, w.Body.String())
}

func TestListRecipesFailure(t *testing.T) {
	router, deps := setupTestRouter(t)
	deps.recipes.On("ListRecipes", anyCtx).Return(nil, errors.New("db down"))

	w := PerformRequest(router, http.MethodGet, "/api/v1/recipes", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"failed to fetch recipes"}`, w.Body.String())
}
