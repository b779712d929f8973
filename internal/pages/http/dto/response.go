// Package dto provides data transfer objects for the pages HTTP layer.
package dto

import (
	recipeDTO "github.com/allisson/recipes/internal/recipe/http/dto"
)

// RecipeListResponse represents a paginated list of recipes on a page
type RecipeListResponse struct {
	Recipes []recipeDTO.RecipeResponse `json:"recipes"`
	Offset  int                        `json:"offset"`
	Limit   int                        `json:"limit"`
}

// CalendarDayResponse represents one planned day
type CalendarDayResponse struct {
	Date   string                   `json:"date"`
	Recipe recipeDTO.RecipeResponse `json:"recipe"`
}

// WeekResponse represents the planned days of a week
type WeekResponse struct {
	Start string                `json:"start"`
	Days  []CalendarDayResponse `json:"days"`
}

// StatisticsResponse represents the account's collection summary
type StatisticsResponse struct {
	TotalRecipes   int            `json:"total_recipes"`
	TotalFavorites int            `json:"total_favorites"`
	TotalDoLater   int            `json:"total_do_later"`
	PerCategory    map[string]int `json:"per_category"`
	PerCountry     map[string]int `json:"per_country"`
	PerType        map[string]int `json:"per_type"`
}
