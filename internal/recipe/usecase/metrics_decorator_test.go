package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/recipes/internal/recipe/domain"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

// mockRecipeUseCase is a local mock for the recipe UseCase interface.
type mockRecipeUseCase struct {
	mock.Mock
}

func (m *mockRecipeUseCase) Create(ctx context.Context, input RecipeInput) (*domain.Recipe, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *mockRecipeUseCase) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *mockRecipeUseCase) ListByAccount(
	ctx context.Context,
	accountID int64,
	offset, limit int,
) ([]*domain.Recipe, error) {
	args := m.Called(ctx, accountID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Recipe), args.Error(1)
}

func (m *mockRecipeUseCase) Update(ctx context.Context, id int64, input RecipeInput) (*domain.Recipe, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *mockRecipeUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestRecipeUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Create success", func(t *testing.T) {
		mockNext := &mockRecipeUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewRecipeUseCaseWithMetrics(mockNext, mockMetrics)

		input := RecipeInput{AccountID: 42, Name: "feijoada"}
		recipe := &domain.Recipe{ID: 1, AccountID: 42, Name: "feijoada"}

		mockNext.On("Create", ctx, input).Return(recipe, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "recipe", "create", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "recipe", "create", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Create(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, recipe, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("GetByID error", func(t *testing.T) {
		mockNext := &mockRecipeUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewRecipeUseCaseWithMetrics(mockNext, mockMetrics)

		expectedErr := errors.New("not found")

		mockNext.On("GetByID", ctx, int64(99)).Return(nil, expectedErr).Once()
		mockMetrics.On("RecordOperation", ctx, "recipe", "get", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "recipe", "get", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		res, err := uc.GetByID(ctx, 99)
		assert.Error(t, err)
		assert.Nil(t, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Delete success", func(t *testing.T) {
		mockNext := &mockRecipeUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewRecipeUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("Delete", ctx, int64(1)).Return(nil).Once()
		mockMetrics.On("RecordOperation", ctx, "recipe", "delete", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "recipe", "delete", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		err := uc.Delete(ctx, 1)
		assert.NoError(t, err)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}
