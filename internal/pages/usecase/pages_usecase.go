// Package usecase implements the business logic for the personalized pages:
// favorites, do-later marks, the weekly calendar and statistics.
package usecase

import (
	"context"
	"time"

	"github.com/allisson/recipes/internal/pages/domain"

	recipeDomain "github.com/allisson/recipes/internal/recipe/domain"
)

// UseCase defines the interface for page business logic operations
type UseCase interface {
	AddFavorite(ctx context.Context, accountID, recipeID int64) error
	RemoveFavorite(ctx context.Context, accountID, recipeID int64) error
	ListFavorites(ctx context.Context, accountID int64, offset, limit int) ([]*recipeDomain.Recipe, error)

	AddDoLater(ctx context.Context, accountID, recipeID int64) error
	RemoveDoLater(ctx context.Context, accountID, recipeID int64) error
	ListDoLater(ctx context.Context, accountID int64, offset, limit int) ([]*recipeDomain.Recipe, error)

	ScheduleDay(ctx context.Context, accountID int64, date time.Time, recipeID int64) error
	ClearDay(ctx context.Context, accountID int64, date time.Time) error
	GetWeek(ctx context.Context, accountID int64, start time.Time) ([]*domain.CalendarDay, error)
	GetDay(ctx context.Context, accountID int64, date time.Time) (*domain.CalendarDay, error)

	GetStatistics(ctx context.Context, accountID int64) (*domain.Statistics, error)
}

// PagesRepository interface defines page repository operations
type PagesRepository interface {
	AddFavorite(ctx context.Context, accountID, recipeID int64) error
	RemoveFavorite(ctx context.Context, accountID, recipeID int64) error
	ListFavorites(ctx context.Context, accountID int64, offset, limit int) ([]*recipeDomain.Recipe, error)

	AddDoLater(ctx context.Context, accountID, recipeID int64) error
	RemoveDoLater(ctx context.Context, accountID, recipeID int64) error
	ListDoLater(ctx context.Context, accountID int64, offset, limit int) ([]*recipeDomain.Recipe, error)

	ScheduleDay(ctx context.Context, accountID int64, date time.Time, recipeID int64) error
	ClearDay(ctx context.Context, accountID int64, date time.Time) error
	GetWeek(ctx context.Context, accountID int64, start time.Time) ([]*domain.CalendarDay, error)
	GetDay(ctx context.Context, accountID int64, date time.Time) (*domain.CalendarDay, error)

	GetStatistics(ctx context.Context, accountID int64) (*domain.Statistics, error)
}

// RecipeOwnerLookup resolves a recipe to its owning account.
type RecipeOwnerLookup interface {
	FindOwnerID(ctx context.Context, recipeID int64) (int64, error)
}

// PagesUseCase handles page-related business logic. Marks and calendar slots
// may only reference recipes the account owns; the repositories store bare id
// pairs, so the check happens here.
type PagesUseCase struct {
	pagesRepo    PagesRepository
	recipeOwners RecipeOwnerLookup
}

// NewPagesUseCase creates a new PagesUseCase
func NewPagesUseCase(pagesRepo PagesRepository, recipeOwners RecipeOwnerLookup) *PagesUseCase {
	return &PagesUseCase{
		pagesRepo:    pagesRepo,
		recipeOwners: recipeOwners,
	}
}

// requireOwnedRecipe verifies the recipe exists and belongs to the account.
// A recipe owned by someone else reports not-found rather than leaking its
// existence.
func (uc *PagesUseCase) requireOwnedRecipe(ctx context.Context, accountID, recipeID int64) error {
	ownerID, err := uc.recipeOwners.FindOwnerID(ctx, recipeID)
	if err != nil {
		return err
	}
	if ownerID != accountID {
		return recipeDomain.ErrRecipeNotFound
	}
	return nil
}

// AddFavorite marks one of the account's recipes as a favorite
func (uc *PagesUseCase) AddFavorite(ctx context.Context, accountID, recipeID int64) error {
	if err := uc.requireOwnedRecipe(ctx, accountID, recipeID); err != nil {
		return err
	}
	return uc.pagesRepo.AddFavorite(ctx, accountID, recipeID)
}

// RemoveFavorite removes a favorite mark
func (uc *PagesUseCase) RemoveFavorite(ctx context.Context, accountID, recipeID int64) error {
	return uc.pagesRepo.RemoveFavorite(ctx, accountID, recipeID)
}

// ListFavorites retrieves the account's favorite recipes
func (uc *PagesUseCase) ListFavorites(
	ctx context.Context,
	accountID int64,
	offset, limit int,
) ([]*recipeDomain.Recipe, error) {
	return uc.pagesRepo.ListFavorites(ctx, accountID, offset, limit)
}

// AddDoLater marks one of the account's recipes to cook later
func (uc *PagesUseCase) AddDoLater(ctx context.Context, accountID, recipeID int64) error {
	if err := uc.requireOwnedRecipe(ctx, accountID, recipeID); err != nil {
		return err
	}
	return uc.pagesRepo.AddDoLater(ctx, accountID, recipeID)
}

// RemoveDoLater removes a do-later mark
func (uc *PagesUseCase) RemoveDoLater(ctx context.Context, accountID, recipeID int64) error {
	return uc.pagesRepo.RemoveDoLater(ctx, accountID, recipeID)
}

// ListDoLater retrieves the account's do-later recipes
func (uc *PagesUseCase) ListDoLater(
	ctx context.Context,
	accountID int64,
	offset, limit int,
) ([]*recipeDomain.Recipe, error) {
	return uc.pagesRepo.ListDoLater(ctx, accountID, offset, limit)
}

// ScheduleDay plans one of the account's recipes for a date
func (uc *PagesUseCase) ScheduleDay(
	ctx context.Context,
	accountID int64,
	date time.Time,
	recipeID int64,
) error {
	if err := uc.requireOwnedRecipe(ctx, accountID, recipeID); err != nil {
		return err
	}
	return uc.pagesRepo.ScheduleDay(ctx, accountID, date, recipeID)
}

// ClearDay removes the plan for a date
func (uc *PagesUseCase) ClearDay(ctx context.Context, accountID int64, date time.Time) error {
	return uc.pagesRepo.ClearDay(ctx, accountID, date)
}

// GetWeek retrieves the planned days of the week starting at start
func (uc *PagesUseCase) GetWeek(
	ctx context.Context,
	accountID int64,
	start time.Time,
) ([]*domain.CalendarDay, error) {
	return uc.pagesRepo.GetWeek(ctx, accountID, start)
}

// GetDay retrieves the plan for a single date
func (uc *PagesUseCase) GetDay(
	ctx context.Context,
	accountID int64,
	date time.Time,
) (*domain.CalendarDay, error) {
	return uc.pagesRepo.GetDay(ctx, accountID, date)
}

// GetStatistics aggregates the account's recipe collection
func (uc *PagesUseCase) GetStatistics(ctx context.Context, accountID int64) (*domain.Statistics, error) {
	return uc.pagesRepo.GetStatistics(ctx, accountID)
}
