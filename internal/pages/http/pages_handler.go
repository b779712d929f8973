// Package http provides HTTP handlers for the personalized pages.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/recipes/internal/auth/http"
	apperrors "github.com/allisson/recipes/internal/errors"
	"github.com/allisson/recipes/internal/httputil"
	"github.com/allisson/recipes/internal/pages/domain"
	"github.com/allisson/recipes/internal/pages/http/dto"
	"github.com/allisson/recipes/internal/pages/usecase"
)

// PagesHandler handles the favorites, do-later, calendar and statistics routes.
// Every route is scoped to the accountId query parameter and guarded by the
// account ownership check; parameter parsing always precedes the guard so a
// malformed request reports 400, never 403.
type PagesHandler struct {
	pagesUseCase usecase.UseCase
	guard        *authHTTP.Guard
	logger       *slog.Logger
}

// NewPagesHandler creates a new PagesHandler
func NewPagesHandler(pagesUseCase usecase.UseCase, guard *authHTTP.Guard, logger *slog.Logger) *PagesHandler {
	return &PagesHandler{
		pagesUseCase: pagesUseCase,
		guard:        guard,
		logger:       logger,
	}
}

// ListFavorites handles GET /pages/favorites
func (h *PagesHandler) ListFavorites(c *gin.Context) {
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

	recipes, err := h.pagesUseCase.ListFavorites(c.Request.Context(), accountID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToRecipeListResponse(recipes, offset, limit))
}

// AddFavorite handles POST /pages/favorites
func (h *PagesHandler) AddFavorite(c *gin.Context) {
	var req dto.MarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if !h.guard.RequireOwnAccount(c, req.AccountID) {
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if err := h.pagesUseCase.AddFavorite(c.Request.Context(), req.AccountID, req.RecipeID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveFavorite handles DELETE /pages/favorites/:recipeId
func (h *PagesHandler) RemoveFavorite(c *gin.Context) {
	recipeID, err := httputil.ParseIDParam(c, "recipeId")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	accountID, err := httputil.ParseAccountIDQuery(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if !h.guard.RequireOwnAccount(c, accountID) {
		return
	}

	if err := h.pagesUseCase.RemoveFavorite(c.Request.Context(), accountID, recipeID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListDoLater handles GET /pages/do-later
func (h *PagesHandler) ListDoLater(c *gin.Context) {
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

	recipes, err := h.pagesUseCase.ListDoLater(c.Request.Context(), accountID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToRecipeListResponse(recipes, offset, limit))
}

// AddDoLater handles POST /pages/do-later
func (h *PagesHandler) AddDoLater(c *gin.Context) {
	var req dto.MarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if !h.guard.RequireOwnAccount(c, req.AccountID) {
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if err := h.pagesUseCase.AddDoLater(c.Request.Context(), req.AccountID, req.RecipeID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveDoLater handles DELETE /pages/do-later/:recipeId
func (h *PagesHandler) RemoveDoLater(c *gin.Context) {
	recipeID, err := httputil.ParseIDParam(c, "recipeId")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	accountID, err := httputil.ParseAccountIDQuery(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if !h.guard.RequireOwnAccount(c, accountID) {
		return
	}

	if err := h.pagesUseCase.RemoveDoLater(c.Request.Context(), accountID, recipeID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetWeek handles GET /pages/calendar. The optional start query parameter
// defaults to the current day.
func (h *PagesHandler) GetWeek(c *gin.Context) {
	accountID, err := httputil.ParseAccountIDQuery(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	start := time.Now().UTC().Truncate(24 * time.Hour)
	if raw := c.Query("start"); raw != "" {
		start, err = time.Parse(domain.DateLayout, raw)
		if err != nil {
			httputil.HandleBadRequestGin(c,
				apperrors.Wrap(apperrors.ErrBadRequest, "start must be formatted as YYYY-MM-DD"), h.logger)
			return
		}
	}

	if !h.guard.RequireOwnAccount(c, accountID) {
		return
	}

	days, err := h.pagesUseCase.GetWeek(c.Request.Context(), accountID, start)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToWeekResponse(start.Format(domain.DateLayout), days))
}

// ScheduleDay handles PUT /pages/calendar
func (h *PagesHandler) ScheduleDay(c *gin.Context) {
	var req dto.ScheduleDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if !h.guard.RequireOwnAccount(c, req.AccountID) {
		return
	}

	err := h.pagesUseCase.ScheduleDay(c.Request.Context(), req.AccountID, req.ParsedDate(), req.RecipeID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetDay handles GET /pages/day. The date query parameter is required.
func (h *PagesHandler) GetDay(c *gin.Context) {
	accountID, err := httputil.ParseAccountIDQuery(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	raw := c.Query("date")
	if raw == "" {
		httputil.HandleBadRequestGin(c,
			apperrors.Wrap(apperrors.ErrBadRequest, "date query parameter is required"), h.logger)
		return
	}

	date, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		httputil.HandleBadRequestGin(c,
			apperrors.Wrap(apperrors.ErrBadRequest, "date must be formatted as YYYY-MM-DD"), h.logger)
		return
	}

	if !h.guard.RequireOwnAccount(c, accountID) {
		return
	}

	day, err := h.pagesUseCase.GetDay(c.Request.Context(), accountID, date)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToCalendarDayResponse(day))
}

// ClearDay handles DELETE /pages/calendar/:date
func (h *PagesHandler) ClearDay(c *gin.Context) {
	date, err := time.Parse(domain.DateLayout, c.Param("date"))
	if err != nil {
		httputil.HandleBadRequestGin(c,
			apperrors.Wrap(apperrors.ErrBadRequest, "date must be formatted as YYYY-MM-DD"), h.logger)
		return
	}

	accountID, err := httputil.ParseAccountIDQuery(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if !h.guard.RequireOwnAccount(c, accountID) {
		return
	}

	if err := h.pagesUseCase.ClearDay(c.Request.Context(), accountID, date); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetStatistics handles GET /pages/statistics
func (h *PagesHandler) GetStatistics(c *gin.Context) {
	accountID, err := httputil.ParseAccountIDQuery(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if !h.guard.RequireOwnAccount(c, accountID) {
		return
	}

	stats, err := h.pagesUseCase.GetStatistics(c.Request.Context(), accountID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatisticsResponse(stats))
}
