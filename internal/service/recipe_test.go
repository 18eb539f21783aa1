package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/pageza/ourkitchen/backend/internal/mocks"
	"github.com/pageza/ourkitchen/backend/internal/model"
	"github.com/pageza/ourkitchen/backend/internal/service"
	"github.com/pageza/ourkitchen/backend/internal/testhelpers"
	"github.com/pageza/ourkitchen/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pancakeRequest() *types.RecipeRequest {
	return &types.RecipeRequest{
		Title:        " Pancakes ",
		Tags:         []string{"breakfast", " ", "sweet "},
		Instructions: "Whisk the dry ingredients.\r\n\r\nAdd milk and eggs.\n\n\n\nCook on a griddle.",
		Ingredients: []types.RecipeIngredientInput{
			{Name: "flour", Amount: 2, Unit: "cup"},
			{Name: "  ", Amount: 1, Unit: "cup"},
			{Name: "Secret Spice", Amount: 1, Unit: " tsp "},
		},
	}
}

func TestRecipeService_CreateLinksCatalog(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	flour := testhelpers.CreateIngredient(t, db, &model.Ingredient{Name: "Flour", GramsPerCup: testhelpers.Float(120)})
	svc := service.NewRecipeService(db, nil)

	recipe, err := svc.CreateRecipe(context.Background(), pancakeRequest())
	require.NoError(t, err)

	assert.Equal(t, "Pancakes", recipe.Title)
	assert.Equal(t, 4, recipe.Servings)
	assert.Equal(t, model.JSONBStringArray{"breakfast", "sweet"}, recipe.Tags)
	assert.Nil(t, recipe.SourceURL)

	require.Len(t, recipe.Steps, 3)
	assert.Equal(t, 1, recipe.Steps[0].StepNumber)
	assert.Equal(t, "Cook on a griddle.", recipe.Steps[2].Instruction)

	require.Len(t, recipe.Ingredients, 2)
	require.NotNil(t, recipe.Ingredients[0].IngredientID)
	assert.Equal(t, flour.ID, *recipe.Ingredients[0].IngredientID)
	assert.Nil(t, recipe.Ingredients[1].IngredientID)
	assert.Equal(t, "tsp", recipe.Ingredients[1].Unit)
	assert.Equal(t, 1, recipe.Ingredients[1].SortOrder)

	_, err = svc.CreateRecipe(context.Background(), &types.RecipeRequest{Title: " "})
	assert.ErrorIs(t, err, service.ErrTitleRequired)
}

func TestRecipeService_UpdateReplacesContent(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewRecipeService(db, nil)
	ctx := context.Background()

	req := pancakeRequest()
	req.ImagePath = "https://img.test/pancakes.png"
	created, err := svc.CreateRecipe(ctx, req)
	require.NoError(t, err)

	updated, err := svc.UpdateRecipe(ctx, created.ID, &types.RecipeRequest{
		Title:     "Buttermilk Pancakes",
		Servings:  6,
		SourceURL: "https://example.test/pancakes",
		Steps:     []string{"Mix.", "Cook."},
		Ingredients: []types.RecipeIngredientInput{
			{Name: "Buttermilk", Amount: 1.5, Unit: "cups"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Buttermilk Pancakes", updated.Title)
	assert.Equal(t, 6, updated.Servings)
	assert.Equal(t, "https://img.test/pancakes.png", updated.ImagePath)
	require.NotNil(t, updated.SourceURL)
	assert.Equal(t, "https://example.test/pancakes", *updated.SourceURL)
	assert.Len(t, updated.Steps, 2)
	require.Len(t, updated.Ingredients, 1)
	assert.Equal(t, "Buttermilk", updated.Ingredients[0].Name)

	var lines int64
	require.NoError(t, db.Model(&model.RecipeIngredient{}).Where("recipe_id = ?", created.ID).Count(&lines).Error)
	assert.Equal(t, int64(1), lines)

	_, err = svc.UpdateRecipe(ctx, uuid.New(), &types.RecipeRequest{Title: "Ghost"})
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
}

func TestRecipeService_ListAndDelete(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewRecipeService(db, nil)
	catalog := service.NewCatalogService(db)
	ctx := context.Background()

	first, err := svc.CreateRecipe(ctx, pancakeRequest())
	require.NoError(t, err)
	_, err = svc.CreateRecipe(ctx, &types.RecipeRequest{Title: "Waffles"})
	require.NoError(t, err)

	recipes, err := svc.ListRecipes(ctx)
	require.NoError(t, err)
	assert.Len(t, recipes, 2)

	require.NoError(t, svc.DeleteRecipe(ctx, first.ID))
	_, err = svc.GetRecipe(ctx, first.ID)
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
	_, err = catalog.GetRecipeIngredients(ctx, first.ID)
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
	assert.ErrorIs(t, svc.DeleteRecipe(ctx, first.ID), service.ErrRecipeNotFound)

	recipes, err = svc.ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Waffles", recipes[0].Title)
}

func TestRecipeService_SetRecipeImage(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	store := new(mocks.MockImageStore)
	svc := service.NewRecipeService(db, store)
	ctx := context.Background()

	recipe, err := svc.CreateRecipe(ctx, &types.RecipeRequest{Title: "Focaccia"})
	require.NoError(t, err)

	keyPrefix := "recipe-images/" + recipe.ID.String() + "_"
	store.On("Upload", mock.Anything,
		mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, keyPrefix) && strings.HasSuffix(key, ".jpeg")
		}),
		"image/jpeg", mock.Anything,
	).Return("https://bucket.test/focaccia.jpeg", nil).Once()

	updated, err := svc.SetRecipeImage(ctx, recipe.ID, "Focaccia.JPEG", strings.NewReader("jpegdata"))
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.test/focaccia.jpeg", updated.ImagePath)

	stored, err := svc.GetRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.test/focaccia.jpeg", stored.ImagePath)
	store.AssertExpectations(t)

	_, err = svc.SetRecipeImage(ctx, recipe.ID, "notes.txt", strings.NewReader("x"))
	assert.ErrorIs(t, err, service.ErrInvalidImageType)

	_, err = svc.SetRecipeImage(ctx, uuid.New(), "a.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)

	noStore := service.NewRecipeService(db, nil)
	_, err = noStore.SetRecipeImage(ctx, recipe.ID, "a.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, service.ErrImageStoreDisabled)
}

func TestRecipeSteps(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, service.RecipeSteps([]string{" a ", "", "b"}, "ignored"))
	assert.Equal(t, []string{"one", "two\nstill two"}, service.RecipeSteps(nil, "one\r\n\r\ntwo\nstill two\n\n"))
	assert.Empty(t, service.RecipeSteps(nil, "   "))
}

func TestCatalogService(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	catalog := service.NewCatalogService(db)
	ctx := context.Background()

	eggs := testhelpers.CreateIngredient(t, db, &model.Ingredient{
		Name: "Eggs", UnitType: model.UnitTypeCount, AvgWeightGrams: testhelpers.Float(50),
	})
	recipe := testhelpers.CreateRecipe(t, db, "Omelette",
		testhelpers.Line{Name: "eggs", Amount: 3, Unit: "large", Ingredient: eggs},
		testhelpers.Line{Name: "chives", Amount: 1, Unit: "tbsp"},
	)

	lines, err := catalog.GetRecipeIngredients(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "eggs", lines[0].Name)
	assert.Equal(t, "chives", lines[1].Name)

	details, err := catalog.GetIngredientDetails(ctx, eggs.ID)
	require.NoError(t, err)
	assert.Equal(t, "Eggs", details.Name)
	assert.Equal(t, model.UnitTypeCount, details.UnitType)
	assert.Nil(t, details.GramsPerCup)
	require.NotNil(t, details.AvgWeightGrams)
	assert.Equal(t, 50.0, *details.AvgWeightGrams)

	_, err = catalog.GetIngredientDetails(ctx, uuid.New())
	assert.ErrorIs(t, err, service.ErrIngredientNotFound)

	empty := testhelpers.CreateRecipe(t, db, "Water")
	lines, err = catalog.GetRecipeIngredients(ctx, empty.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}
