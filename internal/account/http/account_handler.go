// Package http provides HTTP handlers for account-related operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/recipes/internal/account/http/dto"
	"github.com/allisson/recipes/internal/account/usecase"
	authHTTP "github.com/allisson/recipes/internal/auth/http"
	"github.com/allisson/recipes/internal/httputil"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountUseCase usecase.UseCase
	guard          *authHTTP.Guard
	logger         *slog.Logger
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountUseCase usecase.UseCase, guard *authHTTP.Guard, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
		guard:          guard,
		logger:         logger,
	}
}

// Register handles account registration. It is the only unauthenticated
// account operation.
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	account, err := h.accountUseCase.Register(c.Request.Context(), dto.ToRegisterAccountInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// Get handles account retrieval. Parameter parsing runs before the ownership
// guard so a malformed id reports 400 rather than 403.
func (h *AccountHandler) Get(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if !h.guard.RequireOwnAccount(c, id) {
		return
	}

	account, err := h.accountUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// Update handles account updates
func (h *AccountHandler) Update(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if !h.guard.RequireOwnAccount(c, id) {
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	account, err := h.accountUseCase.Update(c.Request.Context(), id, dto.ToUpdateAccountInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// Delete handles account removal
func (h *AccountHandler) Delete(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if !h.guard.RequireOwnAccount(c, id) {
		return
	}

	if err := h.accountUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
