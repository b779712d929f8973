// Package dto provides data transfer objects for the pages HTTP layer.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	"github.com/allisson/recipes/internal/pages/domain"
	appValidation "github.com/allisson/recipes/internal/validation"
)

// MarkRequest represents the API request for adding a favorite or do-later mark
type MarkRequest struct {
	AccountID int64 `json:"account_id"`
	RecipeID  int64 `json:"recipe_id"`
}

// Validate validates the MarkRequest
func (r *MarkRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.RecipeID, validation.Required.Error("recipe_id is required")),
	)
	return appValidation.WrapValidationError(err)
}

// ScheduleDayRequest represents the API request for planning a recipe on a date
type ScheduleDayRequest struct {
	AccountID int64  `json:"account_id"`
	Date      string `json:"date"`
	RecipeID  int64  `json:"recipe_id"`
}

// Validate validates the ScheduleDayRequest
func (r *ScheduleDayRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Date,
			validation.Required.Error("date is required"),
			validation.Date(domain.DateLayout).Error("date must be formatted as YYYY-MM-DD"),
		),
		validation.Field(&r.RecipeID, validation.Required.Error("recipe_id is required")),
	)
	return appValidation.WrapValidationError(err)
}

// ParsedDate returns the request date as a time.Time. Call Validate first.
func (r *ScheduleDayRequest) ParsedDate() time.Time {
	date, _ := time.Parse(domain.DateLayout, r.Date)
	return date
}
