package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/recipes/internal/auth/domain"
	authUseCase "github.com/allisson/recipes/internal/auth/usecase"
	"github.com/allisson/recipes/internal/httputil"
)

// Guard wraps the Authorizer with the HTTP-side ownership checks handlers
// call at the top of protected operations. Each check writes the error
// response and aborts the request itself; handlers just return on false.
//
// Guards always run AFTER parameter parsing: a request with a malformed id
// must report 400 before any ownership verdict, so handlers parse first and
// guard second.
type Guard struct {
	authorizer authUseCase.Authorizer
	logger     *slog.Logger
}

// NewGuard creates a new Guard
func NewGuard(authorizer authUseCase.Authorizer, logger *slog.Logger) *Guard {
	return &Guard{
		authorizer: authorizer,
		logger:     logger,
	}
}

// principal pulls the principal from the request context. Anonymous requests
// get a nil principal, which every authorizer check treats as not owning
// anything.
func (g *Guard) principal(c *gin.Context) *authDomain.Principal {
	principal, ok := GetPrincipal(c.Request.Context())
	if !ok {
		return nil
	}
	return principal
}

// RequireOwnAccount aborts with 403 unless the request's principal is the
// account itself. Returns true when the handler may proceed.
func (g *Guard) RequireOwnAccount(c *gin.Context, accountID int64) bool {
	principal := g.principal(c)
	if !g.authorizer.IsOwnAccount(c.Request.Context(), principal, accountID) {
		g.logger.Debug("account ownership check failed",
			slog.Int64("account_id", accountID))
		httputil.HandleErrorGin(c, authDomain.ErrNotOwner, g.logger)
		c.Abort()
		return false
	}
	return true
}

// RequireOwnRecipe aborts with 403 unless the request's principal owns the
// recipe. A recipe that does not exist fails the check.
func (g *Guard) RequireOwnRecipe(c *gin.Context, recipeID int64) bool {
	principal := g.principal(c)
	if !g.authorizer.IsOwnRecipe(c.Request.Context(), principal, recipeID) {
		g.logger.Debug("recipe ownership check failed",
			slog.Int64("recipe_id", recipeID))
		httputil.HandleErrorGin(c, authDomain.ErrNotOwner, g.logger)
		c.Abort()
		return false
	}
	return true
}

// RequireRecipePayloadOwn aborts with 403 unless the recipe payload being
// created is attributed to the principal's own account.
func (g *Guard) RequireRecipePayloadOwn(c *gin.Context, recipeAccountID int64) bool {
	principal := g.principal(c)
	if !g.authorizer.AddRecipeIsOwn(principal, recipeAccountID) {
		g.logger.Debug("recipe payload ownership check failed",
			slog.Int64("payload_account_id", recipeAccountID))
		httputil.HandleErrorGin(c, authDomain.ErrNotOwner, g.logger)
		c.Abort()
		return false
	}
	return true
}
