package api

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/ourkitchen/backend/internal/export"
	"github.com/pageza/ourkitchen/backend/internal/middleware"
	"github.com/pageza/ourkitchen/backend/internal/service"
	"github.com/pageza/ourkitchen/backend/internal/types"
)

const exportFilename = "shopping-list.xlsx"

// ShoppingListHandler builds combined shopping lists from meal plans
type ShoppingListHandler struct {
	shoppingList service.IShoppingListService
	rateLimiter  *middleware.RateLimiter
}

// NewShoppingListHandler creates a shopping list handler. rateLimiter may be
// nil to disable limiting.
func NewShoppingListHandler(shoppingList service.IShoppingListService, rateLimiter *middleware.RateLimiter) *ShoppingListHandler {
	return &ShoppingListHandler{
		shoppingList: shoppingList,
		rateLimiter:  rateLimiter,
	}
}

func (h *ShoppingListHandler) RegisterRoutes(router *gin.RouterGroup) {
	lists := router.Group("/shopping-list")
	if h.rateLimiter != nil {
		lists.Use(h.rateLimiter.RateLimitMiddleware())
	}
	{
		lists.POST("", h.CreateShoppingList)
		lists.POST("/export", h.ExportShoppingList)
	}
}

// CreateShoppingList answers a meal plan with the merged shopping list
func (h *ShoppingListHandler) CreateShoppingList(c *gin.Context) {
	list, ok := h.build(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toShoppingListResponse(list))
}

// ExportShoppingList answers a meal plan with the merged list as a workbook
func (h *ShoppingListHandler) ExportShoppingList(c *gin.Context) {
	list, ok := h.build(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteShoppingListXLSX(&buf, list); err != nil {
		respondError(c, err, "failed to export shopping list")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

func (h *ShoppingListHandler) build(c *gin.Context) (*service.ShoppingList, bool) {
	var req types.ShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return nil, false
	}

	list, err := h.shoppingList.Build(c.Request.Context(), req.Plan, service.ParseUnitMode(req.Unit))
	if err != nil {
		respondError(c, err, "failed to build shopping list")
		return nil, false
	}
	return list, true
}

func toShoppingListResponse(list *service.ShoppingList) types.ShoppingListResponse {
	items := make([]types.ShoppingListItem, 0, len(list.Items))
	for _, line := range list.Items {
		item := types.ShoppingListItem{
			Name:           line.Name,
			Display:        line.Display,
			Amount:         line.Amount,
			Unit:           line.Unit,
			NonConvertible: line.NonConvertible,
		}
		if line.Weighed {
			grams := line.Grams
			item.Grams = &grams
		}
		items = append(items, item)
	}
	return types.ShoppingListResponse{
		Items:     items,
		ItemCount: list.ItemCount(),
		MealCount: list.MealCount,
		Skipped:   list.Skipped,
		Unit:      string(list.Mode),
		Summary:   list.Summary(),
	}
}
