// Package http provides the Gin HTTP server and route assembly.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	accountHTTP "github.com/allisson/recipes/internal/account/http"
	authHTTP "github.com/allisson/recipes/internal/auth/http"
	"github.com/allisson/recipes/internal/database"
	pagesHTTP "github.com/allisson/recipes/internal/pages/http"
	recipeHTTP "github.com/allisson/recipes/internal/recipe/http"
)

// RouterConfig carries the handlers and optional middlewares SetupRouter
// wires into the route tree. Nil middlewares are skipped.
type RouterConfig struct {
	AuthHandler    *authHTTP.AuthHandler
	AccountHandler *accountHTTP.AccountHandler
	RecipeHandler  *recipeHTTP.RecipeHandler
	PagesHandler   *pagesHTTP.PagesHandler

	// AuthMiddleware resolves the bearer token into a request principal.
	// It never rejects unauthenticated requests on its own; the handlers'
	// ownership guards do that.
	AuthMiddleware gin.HandlerFunc
	// LoginRateLimiter applies only to the login endpoint.
	LoginRateLimiter gin.HandlerFunc
	HTTPMetrics      gin.HandlerFunc

	CORSEnabled      bool
	CORSAllowOrigins string
}

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	db     *sql.DB
	logger *slog.Logger
}

// NewServer creates a new HTTP server. The router is assembled separately via
// SetupRouter so tests can exercise individual handlers without the full
// dependency set.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the route tree with the shared middleware chain.
func (s *Server) SetupRouter(cfg RouterConfig) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}
	if cfg.HTTPMetrics != nil {
		router.Use(cfg.HTTPMetrics)
	}
	if cfg.AuthMiddleware != nil {
		router.Use(cfg.AuthMiddleware)
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	login := v1.Group("/login")
	if cfg.LoginRateLimiter != nil {
		login.Use(cfg.LoginRateLimiter)
	}
	login.POST("", cfg.AuthHandler.Login)

	v1.POST("/accounts", cfg.AccountHandler.Register)
	v1.GET("/accounts/:id", cfg.AccountHandler.Get)
	v1.PUT("/accounts/:id", cfg.AccountHandler.Update)
	v1.DELETE("/accounts/:id", cfg.AccountHandler.Delete)

	v1.POST("/recipes", cfg.RecipeHandler.Create)
	v1.GET("/recipes", cfg.RecipeHandler.List)
	v1.GET("/recipes/:id", cfg.RecipeHandler.Get)
	v1.PUT("/recipes/:id", cfg.RecipeHandler.Update)
	v1.DELETE("/recipes/:id", cfg.RecipeHandler.Delete)

	pages := v1.Group("/pages")
	pages.GET("/favorites", cfg.PagesHandler.ListFavorites)
	pages.POST("/favorites", cfg.PagesHandler.AddFavorite)
	pages.DELETE("/favorites/:recipeId", cfg.PagesHandler.RemoveFavorite)
	pages.GET("/do-later", cfg.PagesHandler.ListDoLater)
	pages.POST("/do-later", cfg.PagesHandler.AddDoLater)
	pages.DELETE("/do-later/:recipeId", cfg.PagesHandler.RemoveDoLater)
	pages.GET("/calendar", cfg.PagesHandler.GetWeek)
	pages.PUT("/calendar", cfg.PagesHandler.ScheduleDay)
	pages.DELETE("/calendar/:date", cfg.PagesHandler.ClearDay)
	pages.GET("/day", cfg.PagesHandler.GetDay)
	pages.GET("/statistics", cfg.PagesHandler.GetStatistics)

	s.router = router
}

// GetHandler returns the assembled router. It is nil until SetupRouter runs.
func (s *Server) GetHandler() http.Handler {
	if s.router == nil {
		return nil
	}
	return s.router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can reach its dependencies.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := database.Health(ctx, s.db); err != nil {
		s.logger.Error("readiness check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}

// Start starts the HTTP server using the router built by SetupRouter.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router is not initialized, call SetupRouter first")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
