// Package dto provides data transfer objects for the pages HTTP layer.
package dto

import (
	"github.com/allisson/recipes/internal/pages/domain"

	recipeDomain "github.com/allisson/recipes/internal/recipe/domain"
	recipeDTO "github.com/allisson/recipes/internal/recipe/http/dto"
)

// ToRecipeListResponse converts page recipes plus pagination into a RecipeListResponse
func ToRecipeListResponse(recipes []*recipeDomain.Recipe, offset, limit int) RecipeListResponse {
	items := make([]recipeDTO.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		items = append(items, recipeDTO.ToRecipeResponse(recipe))
	}

	return RecipeListResponse{
		Recipes: items,
		Offset:  offset,
		Limit:   limit,
	}
}

// ToCalendarDayResponse converts a domain CalendarDay to a CalendarDayResponse DTO
func ToCalendarDayResponse(day *domain.CalendarDay) CalendarDayResponse {
	return CalendarDayResponse{
		Date:   day.Date.Format(domain.DateLayout),
		Recipe: recipeDTO.ToRecipeResponse(day.Recipe),
	}
}

// ToWeekResponse converts a week's planned days to a WeekResponse DTO
func ToWeekResponse(start string, days []*domain.CalendarDay) WeekResponse {
	items := make([]CalendarDayResponse, 0, len(days))
	for _, day := range days {
		items = append(items, ToCalendarDayResponse(day))
	}

	return WeekResponse{
		Start: start,
		Days:  items,
	}
}

// ToStatisticsResponse converts domain Statistics to a StatisticsResponse DTO
func ToStatisticsResponse(stats *domain.Statistics) StatisticsResponse {
	return StatisticsResponse{
		TotalRecipes:   stats.TotalRecipes,
		TotalFavorites: stats.TotalFavorites,
		TotalDoLater:   stats.TotalDoLater,
		PerCategory:    stats.PerCategory,
		PerCountry:     stats.PerCountry,
		PerType:        stats.PerType,
	}
}
