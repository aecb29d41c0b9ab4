package router

import (
	"net/http"
	"time"

	"ketotrack/backend/internal/accounts"
	"ketotrack/backend/internal/auth"
	"ketotrack/backend/internal/database"
	"ketotrack/backend/internal/handlers"
	ktmiddleware "ketotrack/backend/internal/middleware"
	ktlog "ketotrack/backend/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter configures and returns a Gin engine with all routes wired.
func SetupRouter(log *zap.Logger, svc *accounts.Service) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(ktmiddleware.Metrics())
	router.Use(ktmiddleware.GinZap(log, time.RFC3339, true))
	router.Use(ktmiddleware.GinRecovery(log, time.RFC3339, true, true))
	router.Use(ktmiddleware.Locale())

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health routes
	router.GET("/health", healthCheckHandler)

	setupAuthRoutes(router, svc)
	setupV1Routes(router)

	return router
}

func healthCheckHandler(c *gin.Context) {
	sqlDB, err := database.GetDB().DB()
	if err != nil {
		ktlog.L.Error("Failed to get DB instance for health check", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "database instance error"})
		return
	}

	if err := sqlDB.Ping(); err != nil {
		ktlog.L.Error("Database ping failed during health check", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "database ping failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "connected",
	})
}

func setupAuthRoutes(r *gin.Engine, svc *accounts.Service) {
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", handlers.RegisterHandler(svc))
		authRoutes.POST("/login", handlers.LoginHandler(svc))
		authRoutes.POST("/forgot-password", handlers.ForgotPasswordHandler(svc))
		authRoutes.POST("/reset-password", handlers.ResetPasswordHandler(svc))
	}
}

func setupV1Routes(r *gin.Engine) {
	v1 := r.Group("/api/v1")
	v1.Use(auth.AuthMiddleware())
	{
		v1.GET("/me", handlers.MeHandler(database.GetDB()))

		v1.GET("/foods", handlers.ListFoodsHandler(database.GetDB()))
		v1.GET("/vegetables", handlers.ListVegetablesHandler(database.GetDB()))

		v1.GET("/dashboard/summary", handlers.DashboardSummaryHandler(database.GetDB()))
	}
}
