// Package domain defines the entities behind the personalized pages:
// favorites, do-later marks, the weekly calendar, and statistics.
package domain

import (
	"time"

	"github.com/allisson/recipes/internal/errors"
	recipeDomain "github.com/allisson/recipes/internal/recipe/domain"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// CalendarDay maps one date to the recipe planned for it.
type CalendarDay struct {
	Date   time.Time
	Recipe *recipeDomain.Recipe
}

// Statistics summarizes an account's recipe collection.
type Statistics struct {
	TotalRecipes   int
	TotalFavorites int
	TotalDoLater   int
	PerCategory    map[string]int
	PerCountry     map[string]int
	PerType        map[string]int
}

// Domain-specific errors for page operations.
var (
	// ErrMarkNotFound indicates the favorite or do-later mark does not exist.
	ErrMarkNotFound = errors.Wrap(errors.ErrNotFound, "mark not found")

	// ErrDayNotPlanned indicates no recipe is scheduled for the requested date.
	ErrDayNotPlanned = errors.Wrap(errors.ErrNotFound, "no recipe planned for this day")
)
