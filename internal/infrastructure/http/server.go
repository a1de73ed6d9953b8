package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stripe/stripe-go/v79"
	"go.uber.org/zap"

	handlers "github.com/Apurva130401/syncflo-backend/internal/adapter/handler/http"
	"github.com/Apurva130401/syncflo-backend/internal/config"
	"github.com/Apurva130401/syncflo-backend/internal/infrastructure/database"
	"github.com/Apurva130401/syncflo-backend/internal/infrastructure/nango"
	"github.com/Apurva130401/syncflo-backend/internal/middleware/auth"
	"github.com/Apurva130401/syncflo-backend/internal/usecase"
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
	e.Validator = NewRequestValidator()

	// Initialize Stripe
	stripe.Key = cfg.Service.StripeSecretKey

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
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

	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Backend is running!")
	})

	// Initialize Nango client and services
	nangoClient := nango.NewClient(
		s.config.Service.Nango.BaseURL,
		s.config.Service.Nango.SecretKey,
		s.logger,
	)
	connectionSvc := usecase.NewConnectionService(s.repos.Profile, nangoClient, s.logger)
	userSvc := usecase.NewUserService(s.repos.User, s.logger)

	// Initialize handlers
	connectionHandler := handlers.NewConnectionHandler(s.logger, connectionSvc)
	nangoWebhookHandler := handlers.NewNangoWebhookHandler(s.logger, connectionSvc)
	userHandler := handlers.NewUserHandler(s.logger, userSvc)
	subscriptionHandler := handlers.NewSubscriptionHandler(s.logger, s.repos.Subscription)
	billingHandler := handlers.NewBillingHandler(s.logger, s.repos.Billing)
	plansHandler := handlers.NewPlansHandler(s.logger, s.repos.Plan)
	checkoutHandler := handlers.NewCheckoutHandler(s.logger, s.config.Service.ClientURL)
	stripeWebhookHandler := handlers.NewStripeWebhookHandler(
		s.logger,
		s.config.Service.StripeWebhookSecret,
		s.repos.Subscription,
		s.repos.Billing,
		s.repos.Plan,
		s.repos.User,
	)

	// JWT middleware configuration. With an empty secret the middleware
	// is a no-op and every route stays public.
	jwtConfig := auth.JWTConfig{
		Secret: s.config.Service.JWTSecret,
		Logger: s.logger,
		SkipPaths: []string{
			"/api/webhooks",
			"/api/plans",
			"/api/user/find-or-create",
		},
	}

	api := s.echo.Group("/api", auth.JWTMiddleware(jwtConfig))

	// Users
	api.POST("/user/find-or-create", userHandler.FindOrCreate)

	// Connections
	api.GET("/connections/:userId", connectionHandler.ListConnections)
	api.DELETE("/connections", connectionHandler.DeleteConnection)

	// Subscriptions & billing
	api.GET("/subscription/:userId", subscriptionHandler.GetSubscription)
	api.GET("/billing-history/:userId", billingHandler.GetBillingHistory)
	api.GET("/plans", plansHandler.GetPlans)
	api.POST("/checkout", checkoutHandler.CreateCheckout)

	// Webhooks
	api.POST("/webhooks/nango", nangoWebhookHandler.HandleWebhook)
	api.POST("/webhooks/stripe", stripeWebhookHandler.HandleWebhook)
}
