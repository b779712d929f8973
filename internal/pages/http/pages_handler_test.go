package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/recipes/internal/auth/domain"
	authHTTP "github.com/allisson/recipes/internal/auth/http"
	authUseCase "github.com/allisson/recipes/internal/auth/usecase"
	"github.com/allisson/recipes/internal/pages/domain"
	"github.com/allisson/recipes/internal/pages/usecase"

	recipeDomain "github.com/allisson/recipes/internal/recipe/domain"
)

// mockPagesUseCase is a mock implementation of the pages use case for testing.
type mockPagesUseCase struct {
	mock.Mock
}

func (m *mockPagesUseCase) AddFavorite(ctx context.Context, accountID, recipeID int64) error {
	args := m.Called(ctx, accountID, recipeID)
	return args.Error(0)
}

func (m *mockPagesUseCase) RemoveFavorite(ctx context.Context, accountID, recipeID int64) error {
	args := m.Called(ctx, accountID, recipeID)
	return args.Error(0)
}

func (m *mockPagesUseCase) ListFavorites(
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

func (m *mockPagesUseCase) AddDoLater(ctx context.Context, accountID, recipeID int64) error {
	args := m.Called(ctx, accountID, recipeID)
	return args.Error(0)
}

func (m *mockPagesUseCase) RemoveDoLater(ctx context.Context, accountID, recipeID int64) error {
	args := m.Called(ctx, accountID, recipeID)
	return args.Error(0)
}

func (m *mockPagesUseCase) ListDoLater(
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

func (m *mockPagesUseCase) ScheduleDay(
	ctx context.Context,
	accountID int64,
	date time.Time,
	recipeID int64,
) error {
	args := m.Called(ctx, accountID, date, recipeID)
	return args.Error(0)
}

func (m *mockPagesUseCase) ClearDay(ctx context.Context, accountID int64, date time.Time) error {
	args := m.Called(ctx, accountID, date)
	return args.Error(0)
}

func (m *mockPagesUseCase) GetWeek(
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

func (m *mockPagesUseCase) GetDay(
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

func (m *mockPagesUseCase) GetStatistics(ctx context.Context, accountID int64) (*domain.Statistics, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

// mockOwnerLookup satisfies authUseCase.RecipeOwnerLookup; pages routes only
// use the account ownership check.
type mockOwnerLookup struct {
	mock.Mock
}

func (m *mockOwnerLookup) FindOwnerID(ctx context.Context, recipeID int64) (int64, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).(int64), args.Error(1)
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newPagesRouter(useCase usecase.UseCase) *gin.Engine {
	authorizer := authUseCase.NewOwnershipAuthorizer(&mockOwnerLookup{})
	guard := authHTTP.NewGuard(authorizer, createTestLogger())
	handler := NewPagesHandler(useCase, guard, createTestLogger())

	router := gin.New()
	router.GET("/v1/pages/favorites", handler.ListFavorites)
	router.POST("/v1/pages/favorites", handler.AddFavorite)
	router.DELETE("/v1/pages/favorites/:recipeId", handler.RemoveFavorite)
	router.GET("/v1/pages/do-later", handler.ListDoLater)
	router.POST("/v1/pages/do-later", handler.AddDoLater)
	router.DELETE("/v1/pages/do-later/:recipeId", handler.RemoveDoLater)
	router.GET("/v1/pages/calendar", handler.GetWeek)
	router.PUT("/v1/pages/calendar", handler.ScheduleDay)
	router.DELETE("/v1/pages/calendar/:date", handler.ClearDay)
	router.GET("/v1/pages/day", handler.GetDay)
	router.GET("/v1/pages/statistics", handler.GetStatistics)
	return router
}

func asPrincipal(req *http.Request, principal *authDomain.Principal) *http.Request {
	if principal == nil {
		return req
	}
	return req.WithContext(authHTTP.WithPrincipal(req.Context(), principal))
}

func TestPagesHandler_ListFavorites(t *testing.T) {
	principal := &authDomain.Principal{AccountID: 42, Username: "maria"}

	t.Run("own account", func(t *testing.T) {
		useCase := &mockPagesUseCase{}
		useCase.On("ListFavorites", mock.Anything, int64(42), 0, 50).
			Return([]*recipeDomain.Recipe{{ID: 10, AccountID: 42, Name: "feijoada"}}, nil).Once()

		router := newPagesRouter(useCase)

		w := httptest.NewRecorder()
		req := asPrincipal(httptest.NewRequest(http.MethodGet, "/v1/pages/favorites?accountId=42", nil), principal)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response["recipes"], 1)
	})

	t.Run("missing accountId reports 400 before ownership", func(t *testing.T) {
		router := newPagesRouter(&mockPagesUseCase{})

		w := httptest.NewRecorder()
		req := asPrincipal(httptest.NewRequest(http.MethodGet, "/v1/pages/favorites", nil), principal)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed pagination reports 400 before ownership", func(t *testing.T) {
		for _, path := range []string{
			"/v1/pages/favorites?accountId=7&offset=abc",
			"/v1/pages/favorites?accountId=7&limit=xyz",
			"/v1/pages/do-later?accountId=7&limit=101",
		} {
			useCase := &mockPagesUseCase{}
			router := newPagesRouter(useCase)

			w := httptest.NewRecorder()
			req := asPrincipal(httptest.NewRequest(http.MethodGet, path, nil), principal)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code, path)
			useCase.AssertNotCalled(t, "ListFavorites")
			useCase.AssertNotCalled(t, "ListDoLater")
		}
	})

	t.Run("someone else's account reports 403", func(t *testing.T) {
		useCase := &mockPagesUseCase{}
		router := newPagesRouter(useCase)

		w := httptest.NewRecorder()
		req := asPrincipal(httptest.NewRequest(http.MethodGet, "/v1/pages/favorites?accountId=7", nil), principal)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		useCase.AssertNotCalled(t, "ListFavorites")
	})

	t.Run("anonymous request reports 403", func(t *testing.T) {
		router := newPagesRouter(&mockPagesUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/pages/favorites?accountId=42", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestPagesHandler_AddFavorite(t *testing.T) {
	principal := &authDomain.Principal{AccountID: 42, Username: "maria"}

	t.Run("own account", func(t *testing.T) {
		useCase := &mockPagesUseCase{}
		useCase.On("AddFavorite", mock.Anything, int64(42), int64(10)).Return(nil).Once()

		router := newPagesRouter(useCase)

		body, _ := json.Marshal(map[string]int64{"account_id": 42, "recipe_id": 10})
		w := httptest.NewRecorder()
		req := asPrincipal(
			httptest.NewRequest(http.MethodPost, "/v1/pages/favorites", bytes.NewReader(body)),
			principal,
		)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		useCase.AssertExpectations(t)
	})

	t.Run("payload for another account", func(t *testing.T) {
		useCase := &mockPagesUseCase{}
		router := newPagesRouter(useCase)

		body, _ := json.Marshal(map[string]int64{"account_id": 7, "recipe_id": 10})
		w := httptest.NewRecorder()
		req := asPrincipal(
			httptest.NewRequest(http.MethodPost, "/v1/pages/favorites", bytes.NewReader(body)),
			principal,
		)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		useCase.AssertNotCalled(t, "AddFavorite")
	})

	t.Run("recipe owned by someone else reports 404", func(t *testing.T) {
		useCase := &mockPagesUseCase{}
		useCase.On("AddFavorite", mock.Anything, int64(42), int64(10)).
			Return(recipeDomain.ErrRecipeNotFound).Once()

		router := newPagesRouter(useCase)

		body, _ := json.Marshal(map[string]int64{"account_id": 42, "recipe_id": 10})
		w := httptest.NewRecorder()
		req := asPrincipal(
			httptest.NewRequest(http.MethodPost, "/v1/pages/favorites", bytes.NewReader(body)),
			principal,
		)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPagesHandler_Calendar(t *testing.T) {
	principal := &authDomain.Principal{AccountID: 42, Username: "maria"}
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("week for own account", func(t *testing.T) {
		useCase := &mockPagesUseCase{}
		useCase.On("GetWeek", mock.Anything, int64(42), start).
			Return([]*domain.CalendarDay{
				{Date: start, Recipe: &recipeDomain.Recipe{ID: 10, AccountID: 42, Name: "feijoada"}},
			}, nil).Once()

		router := newPagesRouter(useCase)

		w := httptest.NewRecorder()
		req := asPrincipal(
			httptest.NewRequest(http.MethodGet, "/v1/pages/calendar?accountId=42&start=2026-03-02", nil),
			principal,
		)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "2026-03-02", response["start"])
		assert.Len(t, response["days"], 1)
	})

	t.Run("malformed start reports 400", func(t *testing.T) {
		router := newPagesRouter(&mockPagesUseCase{})

		w := httptest.NewRecorder()
		req := asPrincipal(
			httptest.NewRequest(http.MethodGet, "/v1/pages/calendar?accountId=42&start=03-02-2026", nil),
			principal,
		)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("schedule day", func(t *testing.T) {
		useCase := &mockPagesUseCase{}
		useCase.On("ScheduleDay", mock.Anything, int64(42), start, int64(10)).Return(nil).Once()

		router := newPagesRouter(useCase)

		body, _ := json.Marshal(map[string]any{"account_id": 42, "date": "2026-03-02", "recipe_id": 10})
		w := httptest.NewRecorder()
		req := asPrincipal(
			httptest.NewRequest(http.MethodPut, "/v1/pages/calendar", bytes.NewReader(body)),
			principal,
		)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		useCase.AssertExpectations(t)
	})

	t.Run("schedule with malformed date reports 422", func(t *testing.T) {
		useCase := &mockPagesUseCase{}
		router := newPagesRouter(useCase)

		body, _ := json.Marshal(map[string]any{"account_id": 42, "date": "tomorrow", "recipe_id": 10})
		w := httptest.NewRecorder()
		req := asPrincipal(
			httptest.NewRequest(http.MethodPut, "/v1/pages/calendar", bytes.NewReader(body)),
			principal,
		)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		useCase.AssertNotCalled(t, "ScheduleDay")
	})
}

func TestPagesHandler_GetDay(t *testing.T) {
	principal := &authDomain.Principal{AccountID: 42, Username: "maria"}
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("planned day", func(t *testing.T) {
		useCase := &mockPagesUseCase{}
		useCase.On("GetDay", mock.Anything, int64(42), date).
			Return(&domain.CalendarDay{
				Date:   date,
				Recipe: &recipeDomain.Recipe{ID: 10, AccountID: 42, Name: "feijoada"},
			}, nil).Once()

		router := newPagesRouter(useCase)

		w := httptest.NewRecorder()
		req := asPrincipal(
			httptest.NewRequest(http.MethodGet, "/v1/pages/day?accountId=42&date=2026-03-02", nil),
			principal,
		)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "2026-03-02", response["date"])
	})

	t.Run("unplanned day reports 404", func(t *testing.T) {
		useCase := &mockPagesUseCase{}
		useCase.On("GetDay", mock.Anything, int64(42), date).
			Return(nil, domain.ErrDayNotPlanned).Once()

		router := newPagesRouter(useCase)

		w := httptest.NewRecorder()
		req := asPrincipal(
			httptest.NewRequest(http.MethodGet, "/v1/pages/day?accountId=42&date=2026-03-02", nil),
			principal,
		)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing date reports 400", func(t *testing.T) {
		router := newPagesRouter(&mockPagesUseCase{})

		w := httptest.NewRecorder()
		req := asPrincipal(httptest.NewRequest(http.MethodGet, "/v1/pages/day?accountId=42", nil), principal)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPagesHandler_GetStatistics(t *testing.T) {
	principal := &authDomain.Principal{AccountID: 42, Username: "maria"}

	t.Run("own account", func(t *testing.T) {
		useCase := &mockPagesUseCase{}
		useCase.On("GetStatistics", mock.Anything, int64(42)).
			Return(&domain.Statistics{
				TotalRecipes: 3,
				PerCategory:  map[string]int{"main": 2, "dessert": 1},
				PerCountry:   map[string]int{"brazil": 3},
				PerType:      map[string]int{"stew": 2, "cake": 1},
			}, nil).Once()

		router := newPagesRouter(useCase)

		w := httptest.NewRecorder()
		req := asPrincipal(
			httptest.NewRequest(http.MethodGet, "/v1/pages/statistics?accountId=42", nil),
			principal,
		)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.EqualValues(t, 3, response["total_recipes"])
	})

	t.Run("someone else's account", func(t *testing.T) {
		router := newPagesRouter(&mockPagesUseCase{})

		w := httptest.NewRecorder()
		req := asPrincipal(
			httptest.NewRequest(http.MethodGet, "/v1/pages/statistics?accountId=7", nil),
			principal,
		)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
