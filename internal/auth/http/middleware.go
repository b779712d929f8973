// Package http provides HTTP middleware and utilities for authentication.
package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authUseCase "github.com/allisson/recipes/internal/auth/usecase"
	"github.com/allisson/recipes/internal/httputil"
)

// AuthenticationMiddleware resolves the Authorization header to a principal.
//
// The middleware runs on every route and is deliberately tolerant of absent
// credentials: requests without a usable bearer token continue as anonymous,
// and the per-route ownership guards decide whether that is acceptable. A
// token that IS presented, however, must hold up.
//
// Outcomes:
//   - No Authorization header, or one without a bearer token → anonymous, continue
//   - Token fails signature verification → 401 Unauthorized, abort
//   - Token is authentic but its subject has no account → 403 Forbidden, abort
//   - Token is authentic but expired or mismatched → 401 Unauthorized, abort
//   - Token resolves to a principal → stored in context, continue
//
// Authorization header format: "Bearer <token>" (case-insensitive "bearer").
func AuthenticationMiddleware(useCase authUseCase.UseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			// Anonymous request. Ownership guards downstream will reject it
			// wherever a principal is required.
			c.Next()
			return
		}

		principal, err := useCase.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithPrincipal(c.Request.Context(), principal)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.Int64("account_id", principal.AccountID),
			slog.String("username", principal.Username))

		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header value.
// Returns false for a missing header, a non-bearer scheme, or an empty token.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}

	const bearerPrefix = "bearer "
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", false
	}

	return token, true
}
