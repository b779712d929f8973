// Package dto provides data transfer objects for the recipe HTTP layer.
package dto

import (
	"github.com/allisson/recipes/internal/recipe/domain"
	"github.com/allisson/recipes/internal/recipe/usecase"
)

// ToRecipeInput converts a RecipeRequest DTO to a RecipeInput use case input
func ToRecipeInput(req RecipeRequest) usecase.RecipeInput {
	ingredients := make([]usecase.IngredientInput, 0, len(req.Ingredients))
	for _, ingredient := range req.Ingredients {
		ingredients = append(ingredients, usecase.IngredientInput{
			Name:        ingredient.Name,
			Amount:      ingredient.Amount,
			Measurement: ingredient.Measurement,
		})
	}

	return usecase.RecipeInput{
		AccountID:   req.AccountID,
		Name:        req.Name,
		Category:    req.Category,
		Country:     req.Country,
		Type:        req.Type,
		Ingredients: ingredients,
	}
}

// ToRecipeResponse converts a domain Recipe model to a RecipeResponse DTO
func ToRecipeResponse(recipe *domain.Recipe) RecipeResponse {
	ingredients := make([]IngredientResponse, 0, len(recipe.Ingredients))
	for _, ingredient := range recipe.Ingredients {
		ingredients = append(ingredients, IngredientResponse{
			Name:        ingredient.Name,
			Amount:      ingredient.Amount,
			Measurement: ingredient.Measurement,
		})
	}

	return RecipeResponse{
		ID:          recipe.ID,
		AccountID:   recipe.AccountID,
		Name:        recipe.Name,
		Category:    recipe.Category,
		Country:     recipe.Country,
		Type:        recipe.Type,
		Ingredients: ingredients,
		CreatedAt:   recipe.CreatedAt,
		UpdatedAt:   recipe.UpdatedAt,
	}
}

// ToRecipeListResponse converts a list of domain recipes plus pagination into a RecipeListResponse
func ToRecipeListResponse(recipes []*domain.Recipe, offset, limit int) RecipeListResponse {
	items := make([]RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		items = append(items, ToRecipeResponse(recipe))
	}

	return RecipeListResponse{
		Recipes: items,
		Offset:  offset,
		Limit:   limit,
	}
}
