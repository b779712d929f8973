// Package repository provides data persistence implementations for recipe entities.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/recipes/internal/database"
	"github.com/allisson/recipes/internal/recipe/domain"

	apperrors "github.com/allisson/recipes/internal/errors"
)

// PostgreSQLRecipeRepository handles recipe persistence for PostgreSQL
type PostgreSQLRecipeRepository struct {
	db *sql.DB
}

// NewPostgreSQLRecipeRepository creates a new PostgreSQLRecipeRepository
func NewPostgreSQLRecipeRepository(db *sql.DB) *PostgreSQLRecipeRepository {
	return &PostgreSQLRecipeRepository{
		db: db,
	}
}

// Create inserts a recipe and its ingredient rows. Callers run it inside a
// transaction so a failed ingredient insert rolls back the recipe row.
func (r *PostgreSQLRecipeRepository) Create(ctx context.Context, recipe *domain.Recipe) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO recipes (account_id, name, category, country, type, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW()) RETURNING id`

	err := querier.QueryRowContext(ctx, query,
		recipe.AccountID, recipe.Name, recipe.Category, recipe.Country, recipe.Type,
	).Scan(&recipe.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create recipe")
	}

	return r.insertIngredients(ctx, recipe.ID, recipe.Ingredients)
}

// GetByID retrieves a recipe with its ingredients
func (r *PostgreSQLRecipeRepository) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	var recipe domain.Recipe
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, account_id, name, category, country, type, created_at, updated_at
			  FROM recipes WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&recipe.ID, &recipe.AccountID, &recipe.Name, &recipe.Category,
		&recipe.Country, &recipe.Type, &recipe.CreatedAt, &recipe.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get recipe by id")
	}

	ingredients, err := r.loadIngredients(ctx, recipe.ID)
	if err != nil {
		return nil, err
	}
	recipe.Ingredients = ingredients

	return &recipe, nil
}

// ListByAccount retrieves an account's recipes with offset/limit pagination
func (r *PostgreSQLRecipeRepository) ListByAccount(
	ctx context.Context,
	accountID int64,
	offset, limit int,
) ([]*domain.Recipe, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, account_id, name, category, country, type, created_at, updated_at
			  FROM recipes WHERE account_id = $1 ORDER BY id LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list recipes")
	}
	defer rows.Close()

	var recipes []*domain.Recipe
	for rows.Next() {
		var recipe domain.Recipe
		err := rows.Scan(
			&recipe.ID, &recipe.AccountID, &recipe.Name, &recipe.Category,
			&recipe.Country, &recipe.Type, &recipe.CreatedAt, &recipe.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan recipe")
		}
		recipes = append(recipes, &recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate recipes")
	}

	for _, recipe := range recipes {
		ingredients, err := r.loadIngredients(ctx, recipe.ID)
		if err != nil {
			return nil, err
		}
		recipe.Ingredients = ingredients
	}

	return recipes, nil
}

// Update replaces the recipe fields and its ingredient list
func (r *PostgreSQLRecipeRepository) Update(ctx context.Context, recipe *domain.Recipe) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE recipes SET name = $1, category = $2, country = $3, type = $4, updated_at = NOW()
			  WHERE id = $5`

	result, err := querier.ExecContext(ctx, query,
		recipe.Name, recipe.Category, recipe.Country, recipe.Type, recipe.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update recipe")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check updated rows")
	}
	if rows == 0 {
		return domain.ErrRecipeNotFound
	}

	// Replace the ingredient list wholesale
	if _, err := querier.ExecContext(ctx, `DELETE FROM ingredients WHERE recipe_id = $1`, recipe.ID); err != nil {
		return apperrors.Wrap(err, "failed to clear ingredients")
	}

	return r.insertIngredients(ctx, recipe.ID, recipe.Ingredients)
}

// Delete removes a recipe; ingredient rows go with it via foreign key
func (r *PostgreSQLRecipeRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete recipe")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check deleted rows")
	}
	if rows == 0 {
		return domain.ErrRecipeNotFound
	}

	return nil
}

// FindOwnerID resolves a recipe to its owning account id
func (r *PostgreSQLRecipeRepository) FindOwnerID(ctx context.Context, recipeID int64) (int64, error) {
	var ownerID int64
	querier := database.GetTx(ctx, r.db)

	err := querier.QueryRowContext(ctx, `SELECT account_id FROM recipes WHERE id = $1`, recipeID).
		Scan(&ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrRecipeNotFound
		}
		return 0, apperrors.Wrap(err, "failed to find recipe owner")
	}

	return ownerID, nil
}

func (r *PostgreSQLRecipeRepository) insertIngredients(
	ctx context.Context,
	recipeID int64,
	ingredients []domain.Ingredient,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO ingredients (recipe_id, name, amount, measurement) VALUES ($1, $2, $3, $4)`

	for _, ingredient := range ingredients {
		_, err := querier.ExecContext(ctx, query,
			recipeID, ingredient.Name, ingredient.Amount, ingredient.Measurement,
		)
		if err != nil {
			return apperrors.Wrap(err, "failed to insert ingredient")
		}
	}

	return nil
}

func (r *PostgreSQLRecipeRepository) loadIngredients(
	ctx context.Context,
	recipeID int64,
) ([]domain.Ingredient, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT name, amount, measurement FROM ingredients WHERE recipe_id = $1 ORDER BY id`

	rows, err := querier.QueryContext(ctx, query, recipeID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load ingredients")
	}
	defer rows.Close()

	var ingredients []domain.Ingredient
	for rows.Next() {
		var ingredient domain.Ingredient
		if err := rows.Scan(&ingredient.Name, &ingredient.Amount, &ingredient.Measurement); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan ingredient")
		}
		ingredients = append(ingredients, ingredient)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate ingredients")
	}

	return ingredients, nil
}
