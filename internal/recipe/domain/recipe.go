// Package domain defines the core recipe domain entities and types.
package domain

import (
	"time"

	"github.com/allisson/recipes/internal/errors"
)

// Recipe represents a recipe owned by an account.
type Recipe struct {
	ID          int64
	AccountID   int64
	Name        string
	Category    string
	Country     string
	Type        string
	Ingredients []Ingredient
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	Name        string
	Amount      string
	Measurement string
}

// Domain-specific errors for recipe operations.
var (
	// ErrRecipeNotFound indicates the requested recipe does not exist.
	ErrRecipeNotFound = errors.Wrap(errors.ErrNotFound, "recipe not found")
)
