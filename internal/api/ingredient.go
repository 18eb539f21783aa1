package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/ourkitchen/backend/internal/middleware"
	"github.com/pageza/ourkitchen/backend/internal/service"
	"github.com/pageza/ourkitchen/backend/internal/types"
)

type IngredientHandler struct {
	ingredientService service.IIngredientService
	authService       middleware.TokenValidator
}

func NewIngredientHandler(ingredientService service.IIngredientService, authService middleware.TokenValidator) *IngredientHandler {
	return &IngredientHandler{
		ingredientService: ingredientService,
		authService:       authService,
	}
}

func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := middleware.AuthMiddleware(h.authService)
	ingredients := router.Group("/ingredients")
	{
		ingredients.GET("", h.ListIngredients)
		ingredients.GET("/search", h.SearchIngredients)
		ingredients.POST("", admin, h.CreateIngredient)
		ingredients.PUT("/:id", admin, h.UpdateIngredient)
	}
}

func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	ingredients, err := h.ingredientService.ListIngredients(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to fetch ingredients")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": ingredients})
}

// SearchIngredients backs the ingredient name autocomplete
func (h *IngredientHandler) SearchIngredients(c *gin.Context) {
	names, err := h.ingredientService.SearchIngredientNames(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err, "failed to search ingredients")
		return
	}
	c.JSON(http.StatusOK, gin.H{"names": names})
}

func (h *IngredientHandler) CreateIngredient(c *gin.Context) {
	var req types.IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	ingredient, err := h.ingredientService.CreateIngredient(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "failed to create ingredient")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ingredient": ingredient})
}

func (h *IngredientHandler) UpdateIngredient(c *gin.Context) {
	id, ok := parseID(c, "ingredient")
	if !ok {
		return
	}
	var req types.IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	ingredient, err := h.ingredientService.UpdateIngredient(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "failed to update ingredient")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredient": ingredient})
}
