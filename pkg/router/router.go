package router

import (
	"mindcare/backend/internal/api"
	"mindcare/backend/pkg/config"
	"mindcare/backend/pkg/di"
	"mindcare/backend/pkg/errors"
	"mindcare/backend/pkg/logger"
	"mindcare/backend/pkg/metrics"
	"mindcare/backend/pkg/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Router is the main router for the application
type Router struct {
	Engine    *gin.Engine
	Container *di.Container
	Logger    *logger.Logger
	Config    *config.Config
}

// New creates a new router with the given container
func New(container *di.Container) *Router {
	logger.SetGlobal(container.Logger)

	cfg := config.Get()

	// Configure Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Use the logger middleware first to capture all requests
	engine.Use(logger.Middleware(container.Logger))

	// Add custom error handler middleware
	engine.Use(errors.ErrorHandler())

	// Add custom recovery middleware with structured logging instead of default
	engine.Use(errors.RecoveryWithLogger())

	// Apply rate limiting to all routes
	rateLimiter := middleware.NewRateLimiter(container.Logger, middleware.RateLimiterOptions{
		Limit:          rate.Limit(cfg.Security.RateLimit),
		Burst:          cfg.Security.RateLimitBurst,
		ExpiryDuration: middleware.DefaultRateLimiterOptions().ExpiryDuration,
		KeyFunc:        middleware.DefaultRateLimiterOptions().KeyFunc,
	})
	engine.Use(rateLimiter.Middleware())

	return &Router{
		Engine:    engine,
		Container: container,
		Logger:    container.Logger,
		Config:    cfg,
	}
}

// SetupRoutes registers all application routes
func (r *Router) SetupRoutes() {
	r.Engine.Use(corsMiddleware())

	chatController := api.NewChatController(r.Container.ChatService)
	moodController := api.NewMoodController(r.Container.MoodService)
	pointsController := api.NewPointsController(r.Container.PointsService)
	resourceController := api.NewResourceController(r.Container.ResourceService)
	dashboardController := api.NewDashboardController(r.Container.DashboardService)
	notifyController := api.NewNotifyController(r.Container.Notifier)
	adminController := api.NewAdminController(r.Container.Store)
	healthHandler := &api.Handler{}

	// API version 1 routes
	v1 := r.Engine.Group("/api/v1")
	{
		healthHandler.RegisterHealthRoutes(v1)
		chatController.RegisterRoutes(v1)
		moodController.RegisterRoutes(v1)
		pointsController.RegisterRoutes(v1)
		resourceController.RegisterRoutes(v1)
		dashboardController.RegisterRoutes(v1)
		notifyController.RegisterRoutes(v1)
		adminController.RegisterRoutes(v1)
	}

	r.Engine.GET("/metrics", metrics.Handler())
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept, Accept-Encoding, X-CSRF-Token, Authorization, Origin, Cache-Control")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
