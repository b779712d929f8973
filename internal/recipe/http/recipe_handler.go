// Package http provides HTTP handlers for recipe-related operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/recipes/internal/auth/http"
	"github.com/allisson/recipes/internal/httputil"
	"github.com/allisson/recipes/internal/recipe/http/dto"
	"github.com/allisson/recipes/internal/recipe/usecase"
)

// RecipeHandler handles recipe-related HTTP requests
type RecipeHandler struct {
	recipeUseCase usecase.UseCase
	guard         *authHTTP.Guard
	logger        *slog.Logger
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(recipeUseCase usecase.UseCase, guard *authHTTP.Guard, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipeUseCase: recipeUseCase,
		guard:         guard,
		logger:        logger,
	}
}

// Create handles recipe creation. The payload's embedded account id must be
// the authenticated principal's own account.
func (h *RecipeHandler) Create(c *gin.Context) {
	var req dto.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if !h.guard.RequireRecipePayloadOwn(c, req.AccountID) {
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	recipe, err := h.recipeUseCase.Create(c.Request.Context(), dto.ToRecipeInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRecipeResponse(recipe))
}

// Get handles recipe retrieval
func (h *RecipeHandler) Get(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if !h.guard.RequireOwnRecipe(c, id) {
		return
	}

	recipe, err := h.recipeUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToRecipeResponse(recipe))
}

// List handles listing an account's recipes. The accountId query parameter is
// required; parsing it precedes the ownership check so a missing or malformed
// value reports 400, never 403.
func (h *RecipeHandler) List(c *gin.Context) {
	accountID, err := httputil.ParseAccountIDQuery(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if !h.guard.RequireOwnAccount(c, accountID) {
		return
	}

	recipes, err := h.recipeUseCase.ListByAccount(c.Request.Context(), accountID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToRecipeListResponse(recipes, offset, limit))
}

// Update handles recipe updates
func (h *RecipeHandler) Update(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if !h.guard.RequireOwnRecipe(c, id) {
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	recipe, err := h.recipeUseCase.Update(c.Request.Context(), id, dto.ToRecipeInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToRecipeResponse(recipe))
}

// Delete handles recipe removal
func (h *RecipeHandler) Delete(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if !h.guard.RequireOwnRecipe(c, id) {
		return
	}

	if err := h.recipeUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
