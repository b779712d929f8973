// Package dto provides data transfer objects for the recipe HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/allisson/recipes/internal/validation"
)

// IngredientRequest is one ingredient line in a recipe request
type IngredientRequest struct {
	Name        string `json:"name"`
	Amount      string `json:"amount"`
	Measurement string `json:"measurement"`
}

// RecipeRequest represents the API request for recipe creation and update
type RecipeRequest struct {
	AccountID   int64               `json:"account_id"`
	Name        string              `json:"name"`
	Category    string              `json:"category"`
	Country     string              `json:"country"`
	Type        string              `json:"type"`
	Ingredients []IngredientRequest `json:"ingredients"`
}

// Validate validates the RecipeRequest. Ownership of the embedded account id
// is NOT checked here; that is the guard's job.
func (r *RecipeRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&r.Category, validation.Required.Error("category is required")),
		validation.Field(&r.Country, validation.Required.Error("country is required")),
		validation.Field(&r.Type, validation.Required.Error("type is required")),
	)
	return appValidation.WrapValidationError(err)
}
