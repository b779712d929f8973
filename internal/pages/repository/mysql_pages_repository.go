package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/allisson/recipes/internal/database"
	"github.com/allisson/recipes/internal/pages/domain"

	apperrors "github.com/allisson/recipes/internal/errors"
	recipeDomain "github.com/allisson/recipes/internal/recipe/domain"
)

// MySQLPagesRepository handles favorites, do-later marks and the weekly
// calendar for MySQL
type MySQLPagesRepository struct {
	db *sql.DB
}

// NewMySQLPagesRepository creates a new MySQLPagesRepository
func NewMySQLPagesRepository(db *sql.DB) *MySQLPagesRepository {
	return &MySQLPagesRepository{
		db: db,
	}
}

// AddFavorite marks a recipe as a favorite. Adding twice is a no-op.
func (r *MySQLPagesRepository) AddFavorite(ctx context.Context, accountID, recipeID int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT IGNORE INTO favorites (account_id, recipe_id, created_at) VALUES (?, ?, NOW())`

	if _, err := querier.ExecContext(ctx, query, accountID, recipeID); err != nil {
		return apperrors.Wrap(err, "failed to add favorite")
	}
	return nil
}

// RemoveFavorite removes a favorite mark
func (r *MySQLPagesRepository) RemoveFavorite(ctx context.Context, accountID, recipeID int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx,
		`DELETE FROM favorites WHERE account_id = ? AND recipe_id = ?`, accountID, recipeID)
	if err != nil {
		return apperrors.Wrap(err, "failed to remove favorite")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check removed rows")
	}
	if rows == 0 {
		return domain.ErrMarkNotFound
	}

	return nil
}

// ListFavorites retrieves the account's favorite recipes
func (r *MySQLPagesRepository) ListFavorites(
	ctx context.Context,
	accountID int64,
	offset, limit int,
) ([]*recipeDomain.Recipe, error) {
	query := `SELECT r.id, r.account_id, r.name, r.category, r.country, r.type, r.created_at, r.updated_at
			  FROM recipes r
			  JOIN favorites f ON f.recipe_id = r.id
			  WHERE f.account_id = ? ORDER BY f.created_at DESC LIMIT ? OFFSET ?`

	return r.queryRecipes(ctx, query, accountID, limit, offset)
}

// AddDoLater marks a recipe to cook later. Adding twice is a no-op.
func (r *MySQLPagesRepository) AddDoLater(ctx context.Context, accountID, recipeID int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT IGNORE INTO do_later (account_id, recipe_id, created_at) VALUES (?, ?, NOW())`

	if _, err := querier.ExecContext(ctx, query, accountID, recipeID); err != nil {
		return apperrors.Wrap(err, "failed to add do-later mark")
	}
	return nil
}

// RemoveDoLater removes a do-later mark
func (r *MySQLPagesRepository) RemoveDoLater(ctx context.Context, accountID, recipeID int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx,
		`DELETE FROM do_later WHERE account_id = ? AND recipe_id = ?`, accountID, recipeID)
	if err != nil {
		return apperrors.Wrap(err, "failed to remove do-later mark")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check removed rows")
	}
	if rows == 0 {
		return domain.ErrMarkNotFound
	}

	return nil
}

// ListDoLater retrieves the account's do-later recipes
func (r *MySQLPagesRepository) ListDoLater(
	ctx context.Context,
	accountID int64,
	offset, limit int,
) ([]*recipeDomain.Recipe, error) {
	query := `SELECT r.id, r.account_id, r.name, r.category, r.country, r.type, r.created_at, r.updated_at
			  FROM recipes r
			  JOIN do_later d ON d.recipe_id = r.id
			  WHERE d.account_id = ? ORDER BY d.created_at DESC LIMIT ? OFFSET ?`

	return r.queryRecipes(ctx, query, accountID, limit, offset)
}

// ScheduleDay plans a recipe for a date, replacing any previous plan
func (r *MySQLPagesRepository) ScheduleDay(
	ctx context.Context,
	accountID int64,
	date time.Time,
	recipeID int64,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO calendar (account_id, day, recipe_id, created_at) VALUES (?, ?, ?, NOW())
			  ON DUPLICATE KEY UPDATE recipe_id = VALUES(recipe_id)`

	if _, err := querier.ExecContext(ctx, query, accountID, date, recipeID); err != nil {
		return apperrors.Wrap(err, "failed to schedule day")
	}
	return nil
}

// ClearDay removes the plan for a date
func (r *MySQLPagesRepository) ClearDay(ctx context.Context, accountID int64, date time.Time) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx,
		`DELETE FROM calendar WHERE account_id = ? AND day = ?`, accountID, date)
	if err != nil {
		return apperrors.Wrap(err, "failed to clear day")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check removed rows")
	}
	if rows == 0 {
		return domain.ErrDayNotPlanned
	}

	return nil
}

// GetWeek retrieves the planned days in [start, start+7)
func (r *MySQLPagesRepository) GetWeek(
	ctx context.Context,
	accountID int64,
	start time.Time,
) ([]*domain.CalendarDay, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT c.day, r.id, r.account_id, r.name, r.category, r.country, r.type, r.created_at, r.updated_at
			  FROM calendar c
			  JOIN recipes r ON r.id = c.recipe_id
			  WHERE c.account_id = ? AND c.day >= ? AND c.day < ?
			  ORDER BY c.day`

	rows, err := querier.QueryContext(ctx, query, accountID, start, start.AddDate(0, 0, 7))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get week")
	}
	defer rows.Close()

	var days []*domain.CalendarDay
	for rows.Next() {
		day, err := scanCalendarDay(rows)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate week")
	}

	return days, nil
}

// GetDay retrieves the plan for a single date
func (r *MySQLPagesRepository) GetDay(
	ctx context.Context,
	accountID int64,
	date time.Time,
) (*domain.CalendarDay, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT c.day, r.id, r.account_id, r.name, r.category, r.country, r.type, r.created_at, r.updated_at
			  FROM calendar c
			  JOIN recipes r ON r.id = c.recipe_id
			  WHERE c.account_id = ? AND c.day = ?`

	var day domain.CalendarDay
	var recipe recipeDomain.Recipe

	err := querier.QueryRowContext(ctx, query, accountID, date).Scan(
		&day.Date, &recipe.ID, &recipe.AccountID, &recipe.Name, &recipe.Category,
		&recipe.Country, &recipe.Type, &recipe.CreatedAt, &recipe.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDayNotPlanned
		}
		return nil, apperrors.Wrap(err, "failed to get day")
	}

	day.Recipe = &recipe
	return &day, nil
}

// GetStatistics aggregates the account's recipe collection
func (r *MySQLPagesRepository) GetStatistics(ctx context.Context, accountID int64) (*domain.Statistics, error) {
	querier := database.GetTx(ctx, r.db)

	stats := &domain.Statistics{
		PerCategory: make(map[string]int),
		PerCountry:  make(map[string]int),
		PerType:     make(map[string]int),
	}

	err := querier.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM recipes WHERE account_id = ?`, accountID).Scan(&stats.TotalRecipes)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to count recipes")
	}

	err = querier.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM favorites WHERE account_id = ?`, accountID).Scan(&stats.TotalFavorites)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to count favorites")
	}

	err = querier.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM do_later WHERE account_id = ?`, accountID).Scan(&stats.TotalDoLater)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to count do-later marks")
	}

	groupBys := []struct {
		column string
		target map[string]int
	}{
		{"category", stats.PerCategory},
		{"country", stats.PerCountry},
		{"type", stats.PerType},
	}

	for _, group := range groupBys {
		query := `SELECT ` + group.column + `, COUNT(*) FROM recipes WHERE account_id = ? GROUP BY ` + group.column

		rows, err := querier.QueryContext(ctx, query, accountID)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to group recipes")
		}

		for rows.Next() {
			var key string
			var count int
			if err := rows.Scan(&key, &count); err != nil {
				rows.Close()
				return nil, apperrors.Wrap(err, "failed to scan group row")
			}
			group.target[key] = count
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, apperrors.Wrap(err, "failed to iterate group rows")
		}
		rows.Close()
	}

	return stats, nil
}

func (r *MySQLPagesRepository) queryRecipes(
	ctx context.Context,
	query string,
	args ...any,
) ([]*recipeDomain.Recipe, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query recipes")
	}
	defer rows.Close()

	var recipes []*recipeDomain.Recipe
	for rows.Next() {
		var recipe recipeDomain.Recipe
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

	return recipes, nil
}
