package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/ourkitchen/backend/internal/middleware"
	"github.com/pageza/ourkitchen/backend/internal/service"
	"github.com/pageza/ourkitchen/backend/internal/types"
)

type RecipeHandler struct {
	recipeService service.IRecipeService
	shoppingList  service.IShoppingListService
	authService   middleware.TokenValidator
}

func NewRecipeHandler(recipeService service.IRecipeService, shoppingList service.IShoppingListService, authService middleware.TokenValidator) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		shoppingList:  shoppingList,
		authService:   authService,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := middleware.AuthMiddleware(h.authService)
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.GET("/:id/ingredients", h.GetRecipeIngredients)
		recipes.POST("", admin, h.CreateRecipe)
		recipes.PUT("/:id", admin, h.UpdateRecipe)
		recipes.DELETE("/:id", admin, h.DeleteRecipe)
		recipes.POST("/:id/image", admin, h.UploadRecipeImage)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipeService.ListRecipes(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to fetch recipes")
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := parseID(c, "recipe")
	if !ok {
		return
	}
	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to fetch recipe")
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// GetRecipeIngredients renders one recipe's lines in the unit mode named by
// the unit query parameter.
func (h *RecipeHandler) GetRecipeIngredients(c *gin.Context) {
	id, ok := parseID(c, "recipe")
	if !ok {
		return
	}
	mode := service.ParseUnitMode(c.Query("unit"))
	views, err := h.shoppingList.RecipeIngredients(c.Request.Context(), id, mode)
	if err != nil {
		respondError(c, err, "failed to fetch recipe ingredients")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"recipe_id":   id,
		"unit":        mode,
		"ingredients": views,
	})
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "failed to create recipe")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := parseID(c, "recipe")
	if !ok {
		return
	}
	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "failed to update recipe")
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := parseID(c, "recipe")
	if !ok {
		return
	}
	if err := h.recipeService.DeleteRecipe(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete recipe")
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadRecipeImage stores the multipart "image" file as the recipe's picture
func (h *RecipeHandler) UploadRecipeImage(c *gin.Context) {
	id, ok := parseID(c, "recipe")
	if !ok {
		return
	}
	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image file"})
		return
	}
	defer file.Close()

	recipe, err := h.recipeService.SetRecipeImage(c.Request.Context(), id, header.Filename, file)
	if err != nil {
		respondError(c, err, "failed to upload image")
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}
