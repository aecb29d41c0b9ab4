package main

import (
	"fmt"
	stdlog "log"

	"ketotrack/backend/internal/accounts"
	"ketotrack/backend/internal/auth"
	"ketotrack/backend/internal/database"
	"ketotrack/backend/internal/notifications"
	"ketotrack/backend/internal/router"
	appconfig "ketotrack/backend/pkg/config"
	ktlog "ketotrack/backend/pkg/log"

	"go.uber.org/zap"
)

func main() {
	defer ktlog.Sync()

	cfg := appconfig.Cfg

	if err := auth.InitializeJWT(); err != nil {
		stdlog.Fatalf("Failed to initialize JWT: %v", err)
	}
	ktlog.L.Info("JWT initialized")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)

	if err := database.ConnectDB(dsn); err != nil {
		ktlog.L.Fatal("Failed to connect to database", zap.Error(err))
	}
	ktlog.L.Info("Database connection established")

	if err := database.MigrateDB(); err != nil {
		ktlog.L.Fatal("Failed to run database migrations", zap.Error(err))
	}

	notifications.InitEmailService()

	svc := accounts.NewService(
		database.GetDB(),
		notifications.DefaultEmailNotifier,
		cfg.AppBaseURL,
		cfg.BcryptCost,
	)

	r := router.SetupRouter(ktlog.L, svc)

	ktlog.L.Info("Starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		ktlog.L.Fatal("Failed to start server", zap.Error(err))
	}
}
