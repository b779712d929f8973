package usecase

import (
	"context"

	"github.com/allisson/recipes/internal/auth/domain"
)

// Authorizer answers ownership questions for an authenticated principal.
// Every check fails closed: an absent principal or an unresolvable resource
// is never an authorization grant.
type Authorizer interface {
	IsOwnAccount(ctx context.Context, principal *domain.Principal, accountID int64) bool
	IsOwnRecipe(ctx context.Context, principal *domain.Principal, recipeID int64) bool
	AddRecipeIsOwn(principal *domain.Principal, recipeAccountID int64) bool
}

// RecipeOwnerLookup resolves a recipe to its owning account. It is satisfied
// by the recipe repository.
type RecipeOwnerLookup interface {
	FindOwnerID(ctx context.Context, recipeID int64) (int64, error)
}

// OwnershipAuthorizer implements Authorizer against the recipe store
type OwnershipAuthorizer struct {
	recipeOwners RecipeOwnerLookup
}

// NewOwnershipAuthorizer creates a new OwnershipAuthorizer
func NewOwnershipAuthorizer(recipeOwners RecipeOwnerLookup) *OwnershipAuthorizer {
	return &OwnershipAuthorizer{
		recipeOwners: recipeOwners,
	}
}

// IsOwnAccount reports whether the principal is the account itself
func (a *OwnershipAuthorizer) IsOwnAccount(_ context.Context, principal *domain.Principal, accountID int64) bool {
	if principal == nil {
		return false
	}
	return principal.AccountID == accountID
}

// IsOwnRecipe reports whether the principal owns the recipe. A recipe that
// cannot be resolved (missing or lookup failure) is treated as not owned.
func (a *OwnershipAuthorizer) IsOwnRecipe(ctx context.Context, principal *domain.Principal, recipeID int64) bool {
	if principal == nil {
		return false
	}

	ownerID, err := a.recipeOwners.FindOwnerID(ctx, recipeID)
	if err != nil {
		return false
	}

	return ownerID == principal.AccountID
}

// AddRecipeIsOwn reports whether a recipe payload about to be created is
// attributed to the principal's own account
func (a *OwnershipAuthorizer) AddRecipeIsOwn(principal *domain.Principal, recipeAccountID int64) bool {
	if principal == nil {
		return false
	}
	return principal.AccountID == recipeAccountID
}
