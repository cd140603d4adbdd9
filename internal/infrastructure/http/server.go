package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	handlers "github.com/flowpaylabs/paymethod-service/internal/adapter/handler/http"
	"github.com/flowpaylabs/paymethod-service/internal/config"
	"github.com/flowpaylabs/paymethod-service/internal/infrastructure/database"
	"github.com/flowpaylabs/paymethod-service/internal/middleware/auth"
	"github.com/flowpaylabs/paymethod-service/internal/usecase"
)

type Server struct {
	config *config.Config
	logger *zap.Logger
	echo   *echo.Echo
	repos  *database.Repositories
}

func NewServer(cfg *config.Config, logger *zap.Logger, repos *database.Repositories) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewRequestValidator()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.Service.ClientURL},
		AllowMethods: []string{echo.GET, echo.POST, echo.PATCH, echo.DELETE},
	}))

	return &Server{
		config: cfg,
		logger: logger,
		echo:   e,
		repos:  repos,
	}
}

func (s *Server) Start() error {
	// Setup routes
	s.setupRoutes()

	addr := s.config.Server.HTTP.Address()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})

	// Initialize services and handlers
	methodService := usecase.NewPaymentMethodService(s.repos.PaymentMethod, s.logger)
	searchService := usecase.NewSearchService(s.repos.PaymentMethod, s.repos.User, s.logger)
	methodHandler := handlers.NewPaymentMethodHandler(methodService, s.logger)
	adminHandler := handlers.NewAdminHandler(searchService, s.logger)

	// JWT middleware configuration
	jwtConfig := auth.JWTConfig{
		Secret: s.config.JWT.Secret,
		Logger: s.logger,
		SkipPaths: []string{
			"/health",
		},
	}

	// API v1 routes, all behind authentication
	v1 := s.echo.Group("/api/v1", auth.JWTMiddleware(jwtConfig))

	v1.GET("/payment-types", methodHandler.ListTypes)

	methods := v1.Group("/payment-methods")
	methods.POST("", methodHandler.Create)
	methods.GET("", methodHandler.List)
	methods.GET("/:id", methodHandler.Get)
	methods.PATCH("/:id", methodHandler.Update)
	methods.DELETE("/:id", methodHandler.Delete)

	// Admin routes require the stored admin role on top of authentication
	admin := v1.Group("/admin", auth.RequireAdmin(s.repos.User, s.logger))
	admin.GET("/payment-methods", adminHandler.ListAll)
	admin.GET("/payment-methods/search", adminHandler.Search)
}
