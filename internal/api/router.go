package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tonecraft-ai/tonecraft-api/internal/api/handlers"
	apimiddleware "github.com/tonecraft-ai/tonecraft-api/internal/api/middleware"
	"github.com/tonecraft-ai/tonecraft-api/internal/config"
	"github.com/tonecraft-ai/tonecraft-api/internal/metrics"
	"github.com/tonecraft-ai/tonecraft-api/internal/middleware"
)

func SetupRouter(db *gorm.DB, cfg *config.Config, version string) *gin.Engine {
	router := gin.New()

	// CloudWatch metrics (production only)
	cw, err := metrics.NewClient(context.Background(), cfg.Environment)
	if err != nil {
		cw = nil
	}

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(cw))

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Health check
	router.GET("/health", handlers.HealthCheck(db, cfg))

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version, cfg)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// Auth routes (public)
	authHandler := handlers.NewAuthHandler(db, cfg)
	auth := router.Group("/api/auth")
	{
		auth.POST("/token", authHandler.Token)
		auth.POST("/bootstrap", authHandler.Bootstrap)
	}

	// Auth mode picks the middleware guarding the API groups
	var authMW gin.HandlerFunc
	switch {
	case cfg.IsTokenMode():
		authMW = middleware.JWTAuth(db, cfg)
	case cfg.IsGatewayMode():
		authMW = apimiddleware.GatewayAuth()
	default:
		authMW = apimiddleware.NoAuth()
	}

	// Protected API routes v1
	v1 := router.Group("/api/v1")
	v1.Use(authMW)
	{
		// Style generation endpoints
		styleHandler := handlers.NewStyleHandler(db, cfg, cw)
		v1.POST("/styles/generations", styleHandler.Generate)
		v1.POST("/styles/max-conversions", styleHandler.ConvertToMax)
		v1.POST("/styles/enforce-genres", styleHandler.EnforceGenres)
		v1.GET("/styles/genres", styleHandler.ListGenres)

		// Title endpoint
		titleHandler := handlers.NewTitleHandler(db, cfg, cw)
		v1.POST("/titles", titleHandler.Generate)

		// Generation history
		generationsHandler := handlers.NewGenerationsHandler(db)
		v1.GET("/generations", generationsHandler.List)
		v1.GET("/generations/:uuid", generationsHandler.Get)
	}

	// Admin API routes (admin only)
	admin := router.Group("/api/admin")
	admin.Use(authMW, middleware.AdminRequired())
	{
		adminHandler := handlers.NewAdminHandler(db)
		admin.POST("/keys", adminHandler.CreateKey)
		admin.GET("/keys", adminHandler.ListKeys)
		admin.DELETE("/keys/:key_id", adminHandler.RevokeKey)
		admin.GET("/usage", adminHandler.GetUsage)
	}

	return router
}
