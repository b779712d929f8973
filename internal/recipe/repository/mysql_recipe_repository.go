package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/recipes/internal/database"
	"github.com/allisson/recipes/internal/recipe/domain"

	apperrors "github.com/allisson/recipes/internal/errors"
)

// MySQLRecipeRepository handles recipe persistence for MySQL
type MySQLRecipeRepository struct {
	db *sql.DB
}

// NewMySQLRecipeRepository creates a new MySQLRecipeRepository
func NewMySQLRecipeRepository(db *sql.DB) *MySQLRecipeRepository {
	return &MySQLRecipeRepository{
		db: db,
	}
}

// Create inserts a recipe and its ingredient rows. Callers run it inside a
// transaction so a failed ingredient insert rolls back the recipe row.
func (r *MySQLRecipeRepository) Create(ctx context.Context, recipe *domain.Recipe) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO recipes (account_id, name, category, country, type, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, NOW(), NOW())`

	result, err := querier.ExecContext(ctx, query,
		recipe.AccountID, recipe.Name, recipe.Category, recipe.Country, recipe.Type,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create recipe")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to read generated recipe id")
	}
	recipe.ID = id

	return r.insertIngredients(ctx, recipe.ID, recipe.Ingredients)
}

// GetByID retrieves a recipe with its ingredients
func (r *MySQLRecipeRepository) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	var recipe domain.Recipe
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, account_id, name, category, country, type, created_at, updated_at
			  FROM recipes WHERE id = ?`

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
func (r *MySQLRecipeRepository) ListByAccount(
	ctx context.Context,
	accountID int64,
	offset, limit int,
) ([]*domain.Recipe, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, account_id, name, category, country, type, created_at, updated_at
			  FROM recipes WHERE account_id = ? ORDER BY id LIMIT ? OFFSET ?`

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
func (r *MySQLRecipeRepository) Update(ctx context.Context, recipe *domain.Recipe) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE recipes SET name = ?, category = ?, country = ?, type = ?, updated_at = NOW()
			  WHERE id = ?`

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
	if _, err := querier.ExecContext(ctx, `DELETE FROM ingredients WHERE recipe_id = ?`, recipe.ID); err != nil {
		return apperrors.Wrap(err, "failed to clear ingredients")
	}

	return r.insertIngredients(ctx, recipe.ID, recipe.Ingredients)
}

// Delete removes a recipe; ingredient rows go with it via foreign key
func (r *MySQLRecipeRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id)
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
func (r *MySQLRecipeRepository) FindOwnerID(ctx context.Context, recipeID int64) (int64, error) {
	var ownerID int64
	querier := database.GetTx(ctx, r.db)

	err := querier.QueryRowContext(ctx, `SELECT account_id FROM recipes WHERE id = ?`, recipeID).
		Scan(&ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrRecipeNotFound
		}
		return 0, apperrors.Wrap(err, "failed to find recipe owner")
	}

	return ownerID, nil
}

func (r *MySQLRecipeRepository) insertIngredients(
	ctx context.Context,
	recipeID int64,
	ingredients []domain.Ingredient,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO ingredients (recipe_id, name, amount, measurement) VALUES (?, ?, ?, ?)`

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

func (r *MySQLRecipeRepository) loadIngredients(
	ctx context.Context,
	recipeID int64,
) ([]domain.Ingredient, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT name, amount, measurement FROM ingredients WHERE recipe_id = ? ORDER BY id`

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
