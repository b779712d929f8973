package usecase

import (
	"context"
	"time"

	"github.com/allisson/recipes/internal/metrics"
	"github.com/allisson/recipes/internal/pages/domain"
	recipeDomain "github.com/allisson/recipes/internal/recipe/domain"
)

// pagesUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type pagesUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewPagesUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewPagesUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &pagesUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record emits the operation counter and duration histogram for one call.
func (p *pagesUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "pages", operation, status)
	p.metrics.RecordDuration(ctx, "pages", operation, time.Since(start), status)
}

func (p *pagesUseCaseWithMetrics) AddFavorite(ctx context.Context, accountID, recipeID int64) error {
	start := time.Now()
	err := p.next.AddFavorite(ctx, accountID, recipeID)
	p.record(ctx, "favorite_add", start, err)
	return err
}

func (p *pagesUseCaseWithMetrics) RemoveFavorite(ctx context.Context, accountID, recipeID int64) error {
	start := time.Now()
	err := p.next.RemoveFavorite(ctx, accountID, recipeID)
	p.record(ctx, "favorite_remove", start, err)
	return err
}

func (p *pagesUseCaseWithMetrics) ListFavorites(
	ctx context.Context,
	accountID int64,
	offset, limit int,
) ([]*recipeDomain.Recipe, error) {
	start := time.Now()
	recipes, err := p.next.ListFavorites(ctx, accountID, offset, limit)
	p.record(ctx, "favorite_list", start, err)
	return recipes, err
}

func (p *pagesUseCaseWithMetrics) AddDoLater(ctx context.Context, accountID, recipeID int64) error {
	start := time.Now()
	err := p.next.AddDoLater(ctx, accountID, recipeID)
	p.record(ctx, "do_later_add", start, err)
	return err
}

func (p *pagesUseCaseWithMetrics) RemoveDoLater(ctx context.Context, accountID, recipeID int64) error {
	start := time.Now()
	err := p.next.RemoveDoLater(ctx, accountID, recipeID)
	p.record(ctx, "do_later_remove", start, err)
	return err
}

func (p *pagesUseCaseWithMetrics) ListDoLater(
	ctx context.Context,
	accountID int64,
	offset, limit int,
) ([]*recipeDomain.Recipe, error) {
	start := time.Now()
	recipes, err := p.next.ListDoLater(ctx, accountID, offset, limit)
	p.record(ctx, "do_later_list", start, err)
	return recipes, err
}

func (p *pagesUseCaseWithMetrics) ScheduleDay(
	ctx context.Context,
	accountID int64,
	date time.Time,
	recipeID int64,
) error {
	start := time.Now()
	err := p.next.ScheduleDay(ctx, accountID, date, recipeID)
	p.record(ctx, "calendar_schedule", start, err)
	return err
}

func (p *pagesUseCaseWithMetrics) ClearDay(ctx context.Context, accountID int64, date time.Time) error {
	start := time.Now()
	err := p.next.ClearDay(ctx, accountID, date)
	p.record(ctx, "calendar_clear", start, err)
	return err
}

func (p *pagesUseCaseWithMetrics) GetWeek(
	ctx context.Context,
	accountID int64,
	startDate time.Time,
) ([]*domain.CalendarDay, error) {
	start := time.Now()
	days, err := p.next.GetWeek(ctx, accountID, startDate)
	p.record(ctx, "calendar_week", start, err)
	return days, err
}

func (p *pagesUseCaseWithMetrics) GetDay(
	ctx context.Context,
	accountID int64,
	date time.Time,
) (*domain.CalendarDay, error) {
	start := time.Now()
	day, err := p.next.GetDay(ctx, accountID, date)
	p.record(ctx, "calendar_day", start, err)
	return day, err
}

func (p *pagesUseCaseWithMetrics) GetStatistics(
	ctx context.Context,
	accountID int64,
) (*domain.Statistics, error) {
	start := time.Now()
	stats, err := p.next.GetStatistics(ctx, accountID)
	p.record(ctx, "statistics", start, err)
	return stats, err
}
