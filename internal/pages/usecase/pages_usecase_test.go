package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/recipes/internal/pages/domain"

	recipeDomain "github.com/allisson/recipes/internal/recipe/domain"
)

// MockPagesRepository is a mock implementation of PagesRepository
type MockPagesRepository struct {
	mock.Mock
}

func (m *MockPagesRepository) AddFavorite(ctx context.Context, accountID, recipeID int64) error {
	args := m.Called(ctx, accountID, recipeID)
	return args.Error(0)
}

func (m *MockPagesRepository) RemoveFavorite(ctx context.Context, accountID, recipeID int64) error {
	args := m.Called(ctx, accountID, recipeID)
	return args.Error(0)
}

func (m *MockPagesRepository) ListFavorites(
	ctx context.Context,
	accountID int64,
	offset, limit int,
) ([]*recipeDomain.Recipe, error) {
	args := m.Called(ctx, accountID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recipeDomain.Recipe), args.Error(1)
}

func (m *MockPagesRepository) AddDoLater(ctx context.Context, accountID, recipeID int64) error {
	args := m.Called(ctx, accountID, recipeID)
	return args.Error(0)
}

func (m *MockPagesRepository) RemoveDoLater(ctx context.Context, accountID, recipeID int64) error {
	args := m.Called(ctx, accountID, recipeID)
	return args.Error(0)
}

func (m *MockPagesRepository) ListDoLater(
	ctx context.Context,
	accountID int64,
	offset, limit int,
) ([]*recipeDomain.Recipe, error) {
	args := m.Called(ctx, accountID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recipeDomain.Recipe), args.Error(1)
}

func (m *MockPagesRepository) ScheduleDay(
	ctx context.Context,
	accountID int64,
	date time.Time,
	recipeID int64,
) error {
	args := m.Called(ctx, accountID, date, recipeID)
	return args.Error(0)
}

func (m *MockPagesRepository) ClearDay(ctx context.Context, accountID int64, date time.Time) error {
	args := m.Called(ctx, accountID, date)
	return args.Error(0)
}

func (m *MockPagesRepository) GetWeek(
	ctx context.Context,
	accountID int64,
	start time.Time,
) ([]*domain.CalendarDay, error) {
	args := m.Called(ctx, accountID, start)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CalendarDay), args.Error(1)
}

func (m *MockPagesRepository) GetDay(
	ctx context.Context,
	accountID int64,
	date time.Time,
) (*domain.CalendarDay, error) {
	args := m.Called(ctx, accountID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CalendarDay), args.Error(1)
}

func (m *MockPagesRepository) GetStatistics(ctx context.Context, accountID int64) (*domain.Statistics, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

// MockRecipeOwnerLookup is a mock implementation of RecipeOwnerLookup
type MockRecipeOwnerLookup struct {
	mock.Mock
}

func (m *MockRecipeOwnerLookup) FindOwnerID(ctx context.Context, recipeID int64) (int64, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).(int64), args.Error(1)
}

func TestPagesUseCase_AddFavorite(t *testing.T) {
	t.Run("own recipe", func(t *testing.T) {
		pagesRepo := &MockPagesRepository{}
		recipeOwners := &MockRecipeOwnerLookup{}
		useCase := NewPagesUseCase(pagesRepo, recipeOwners)
		ctx := context.Background()

		recipeOwners.On("FindOwnerID", ctx, int64(10)).Return(int64(42), nil)
		pagesRepo.On("AddFavorite", ctx, int64(42), int64(10)).Return(nil)

		assert.NoError(t, useCase.AddFavorite(ctx, 42, 10))
		pagesRepo.AssertExpectations(t)
	})

	t.Run("someone else's recipe reports not found", func(t *testing.T) {
		pagesRepo := &MockPagesRepository{}
		recipeOwners := &MockRecipeOwnerLookup{}
		useCase := NewPagesUseCase(pagesRepo, recipeOwners)
		ctx := context.Background()

		recipeOwners.On("FindOwnerID", ctx, int64(10)).Return(int64(7), nil)

		err := useCase.AddFavorite(ctx, 42, 10)

		assert.ErrorIs(t, err, recipeDomain.ErrRecipeNotFound)
		pagesRepo.AssertNotCalled(t, "AddFavorite")
	})

	t.Run("missing recipe", func(t *testing.T) {
		pagesRepo := &MockPagesRepository{}
		recipeOwners := &MockRecipeOwnerLookup{}
		useCase := NewPagesUseCase(pagesRepo, recipeOwners)
		ctx := context.Background()

		recipeOwners.On("FindOwnerID", ctx, int64(10)).Return(int64(0), recipeDomain.ErrRecipeNotFound)

		assert.ErrorIs(t, useCase.AddFavorite(ctx, 42, 10), recipeDomain.ErrRecipeNotFound)
	})
}

func TestPagesUseCase_ScheduleDay(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("own recipe", func(t *testing.T) {
		pagesRepo := &MockPagesRepository{}
		recipeOwners := &MockRecipeOwnerLookup{}
		useCase := NewPagesUseCase(pagesRepo, recipeOwners)
		ctx := context.Background()

		recipeOwners.On("FindOwnerID", ctx, int64(10)).Return(int64(42), nil)
		pagesRepo.On("ScheduleDay", ctx, int64(42), date, int64(10)).Return(nil)

		assert.NoError(t, useCase.ScheduleDay(ctx, 42, date, 10))
	})

	t.Run("someone else's recipe", func(t *testing.T) {
		pagesRepo := &MockPagesRepository{}
		recipeOwners := &MockRecipeOwnerLookup{}
		useCase := NewPagesUseCase(pagesRepo, recipeOwners)
		ctx := context.Background()

		recipeOwners.On("FindOwnerID", ctx, int64(10)).Return(int64(7), nil)

		assert.ErrorIs(t, useCase.ScheduleDay(ctx, 42, date, 10), recipeDomain.ErrRecipeNotFound)
		pagesRepo.AssertNotCalled(t, "ScheduleDay")
	})
}

func TestPagesUseCase_GetWeek(t *testing.T) {
	pagesRepo := &MockPagesRepository{}
	useCase := NewPagesUseCase(pagesRepo, &MockRecipeOwnerLookup{})
	ctx := context.Background()

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	days := []*domain.CalendarDay{
		{Date: start, Recipe: &recipeDomain.Recipe{ID: 10, AccountID: 42}},
	}
	pagesRepo.On("GetWeek", ctx, int64(42), start).Return(days, nil)

	got, err := useCase.GetWeek(ctx, 42, start)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestPagesUseCase_GetStatistics(t *testing.T) {
	pagesRepo := &MockPagesRepository{}
	useCase := NewPagesUseCase(pagesRepo, &MockRecipeOwnerLookup{})
	ctx := context.Background()

	stats := &domain.Statistics{
		TotalRecipes: 3,
		PerCategory:  map[string]int{"main": 2, "dessert": 1},
		PerCountry:   map[string]int{"brazil": 3},
		PerType:      map[string]int{"stew": 2, "cake": 1},
	}
	pagesRepo.On("GetStatistics", ctx, int64(42)).Return(stats, nil)

	got, err := useCase.GetStatistics(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalRecipes)
	assert.Equal(t, 2, got.PerCategory["main"])
}
