package types

// LoginRequest carries the shared admin password.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response body for a successful login
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// ShoppingListRequest represents the request body for building a shopping list
type ShoppingListRequest struct {
	Plan MealPlan `json:"plan"`
	Unit string   `json:"unit"`
}

// RecipeIngredientInput is one authored ingredient line.
type RecipeIngredientInput struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// RecipeRequest represents the request body for creating or replacing a recipe.
// Steps wins over Instructions; Instructions is split on blank lines.
type RecipeRequest struct {
	Title        string                  `json:"title" binding:"required"`
	ImagePath    string                  `json:"image_path"`
	Servings     int                     `json:"servings"`
	Tags         []string                `json:"tags"`
	SourceURL    string                  `json:"source_url"`
	Steps        []string                `json:"steps"`
	Instructions string                  `json:"instructions"`
	Ingredients  []RecipeIngredientInput `json:"ingredients"`
}

// IngredientRequest represents the request body for creating or updating a
// catalog ingredient.
type IngredientRequest struct {
	Name           string   `json:"name" binding:"required"`
	VolumeAmount   *float64 `json:"volume_amount"`
	VolumeUnit     string   `json:"volume_unit"`
	Ounces         *float64 `json:"ounces"`
	Grams          *float64 `json:"grams"`
	UnitType       string   `json:"unit_type"`
	AvgWeightGrams *float64 `json:"avg_weight_grams"`
}
