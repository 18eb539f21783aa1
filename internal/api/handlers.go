package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageza/ourkitchen/backend/internal/middleware"
	"github.com/pageza/ourkitchen/backend/internal/service"
)

// Dependencies carries everything the HTTP layer calls into. RateLimiter and
// HealthCheck are optional.
type Dependencies struct {
	Auth         service.IAuthService
	Recipes      service.IRecipeService
	Ingredients  service.IIngredientService
	ShoppingList service.IShoppingListService
	RateLimiter  *middleware.RateLimiter
	HealthCheck  func(ctx context.Context) error
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	health := NewHealthHandler(deps.HealthCheck)
	router.GET("/health", health.HealthCheck)
	router.GET("/api/health", health.HealthCheck)

	if deps.RateLimiter == nil {
		log.Printf("[API] Rate limiting disabled for shopping lists")
	}

	v1 := router.Group("/api/v1")
	{
		NewAuthHandler(deps.Auth).RegisterRoutes(v1)
		NewShoppingListHandler(deps.ShoppingList, deps.RateLimiter).RegisterRoutes(v1)
		NewRecipeHandler(deps.Recipes, deps.ShoppingList, deps.Auth).RegisterRoutes(v1)
		NewIngredientHandler(deps.Ingredients, deps.Auth).RegisterRoutes(v1)
	}
}

// HealthHandler reports whether the API and its database are reachable
type HealthHandler struct {
	check func(ctx context.Context) error
}

// NewHealthHandler creates a health handler. A nil check always passes.
func NewHealthHandler(check func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{check: check}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if h.check != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.check(ctx); err != nil {
			log.Printf("[API] Health check failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "database unavailable",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Our Kitchen API is running",
	})
}
