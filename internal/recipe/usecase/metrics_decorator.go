package usecase

import (
	"context"
	"time"

	"github.com/allisson/recipes/internal/metrics"
	"github.com/allisson/recipes/internal/recipe/domain"
)

// recipeUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type recipeUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewRecipeUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewRecipeUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &recipeUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for recipe creation operations.
func (r *recipeUseCaseWithMetrics) Create(ctx context.Context, input RecipeInput) (*domain.Recipe, error) {
	start := time.Now()
	recipe, err := r.next.Create(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "recipe", "create", status)
	r.metrics.RecordDuration(ctx, "recipe", "create", time.Since(start), status)

	return recipe, err
}

// GetByID records metrics for recipe retrieval operations.
func (r *recipeUseCaseWithMetrics) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	start := time.Now()
	recipe, err := r.next.GetByID(ctx, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "recipe", "get", status)
	r.metrics.RecordDuration(ctx, "recipe", "get", time.Since(start), status)

	return recipe, err
}

// ListByAccount records metrics for recipe list operations.
func (r *recipeUseCaseWithMetrics) ListByAccount(
	ctx context.Context,
	accountID int64,
	offset, limit int,
) ([]*domain.Recipe, error) {
	start := time.Now()
	recipes, err := r.next.ListByAccount(ctx, accountID, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "recipe", "list", status)
	r.metrics.RecordDuration(ctx, "recipe", "list", time.Since(start), status)

	return recipes, err
}

// Update records metrics for recipe update operations.
func (r *recipeUseCaseWithMetrics) Update(
	ctx context.Context,
	id int64,
	input RecipeInput,
) (*domain.Recipe, error) {
	start := time.Now()
	recipe, err := r.next.Update(ctx, id, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "recipe", "update", status)
	r.metrics.RecordDuration(ctx, "recipe", "update", time.Since(start), status)

	return recipe, err
}

// Delete records metrics for recipe deletion operations.
func (r *recipeUseCaseWithMetrics) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := r.next.Delete(ctx, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "recipe", "delete", status)
	r.metrics.RecordDuration(ctx, "recipe", "delete", time.Since(start), status)

	return err
}
