// Package dto provides data transfer objects for the recipe HTTP layer.
package dto

import (
	"time"
)

// IngredientResponse is one ingredient line in a recipe response
type IngredientResponse struct {
	Name        string `json:"name"`
	Amount      string `json:"amount"`
	Measurement string `json:"measurement"`
}

// RecipeResponse represents the API response for a recipe
type RecipeResponse struct {
	ID          int64                `json:"id"`
	AccountID   int64                `json:"account_id"`
	Name        string               `json:"name"`
	Category    string               `json:"category"`
	Country     string               `json:"country"`
	Type        string               `json:"type"`
	Ingredients []IngredientResponse `json:"ingredients"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// RecipeListResponse represents a paginated list of recipes
type RecipeListResponse struct {
	Recipes []RecipeResponse `json:"recipes"`
	Offset  int              `json:"offset"`
	Limit   int              `json:"limit"`
}
