package types

// ShoppingListItem is one rendered line of a shopping list.
type ShoppingListItem struct {
	Name           string  `json:"name"`
	Display        string  `json:"display"`
	Amount         float64 `json:"amount"`
	Unit           string  `json:"unit"`
	Grams          *int    `json:"grams,omitempty"`
	NonConvertible bool    `json:"non_convertible,omitempty"`
}

// ShoppingListResponse represents the response body of the shopping list endpoint
type ShoppingListResponse struct {
	Items     []ShoppingListItem `json:"items"`
	ItemCount int                `json:"item_count"`
	MealCount int                `json:"meal_count"`
	Skipped   int                `json:"skipped"`
	Unit      string             `json:"unit"`
	Summary   string             `json:"summary"`
}

// RecipeIngredientView is one line of a single recipe rendered in a unit mode.
type RecipeIngredientView struct {
	Name    string  `json:"name"`
	Amount  float64 `json:"amount"`
	Unit    string  `json:"unit"`
	Display string  `json:"display"`
}
