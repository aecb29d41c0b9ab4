package database

import (
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	postgresdriver "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// ConnectDB initializes the database connection.
func ConnectDB(dsn string) error {
	var err error
	logLevel := logger.Silent
	if os.Getenv("ENVIRONMENT") == "development" {
		logLevel = logger.Info
	}

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established.")
	return nil
}

// MigrateDB applies the SQL migrations under internal/database/migrations
// using golang-migrate against the current connection.
func MigrateDB() error {
	if DB == nil {
		return fmt.Errorf("database connection is not initialized. Call ConnectDB first")
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	driver, err := postgresdriver.WithInstance(sqlDB, &postgresdriver.Config{})
	if err != nil {
		return fmt.Errorf("could not create postgres driver for migrate: %w", err)
	}

	// Path is relative to the working directory of the binary; the server is
	// expected to run from the repository root.
	sourceURL := "file://internal/database/migrations"
	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		// Fallback for binaries started from cmd/server or cmd/setup.
		sourceURL = "file://../../internal/database/migrations"
		m, err = migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
		if err != nil {
			return fmt.Errorf("failed to initialize migrate with source %q: %w", sourceURL, err)
		}
	}

	if err := m.Up(); err != nil {
		if err == migrate.ErrNoChange {
			log.Println("No new database migrations to apply.")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		log.Printf("Warning: could not read migration version: %v", err)
	} else {
		log.Printf("Database migrations applied. Current version: %d, dirty: %t", version, dirty)
	}
	return nil
}

// GetDB returns the current database instance.
func GetDB() *gorm.DB {
	return DB
}

// SetDB replaces the current database instance. Used by tests to substitute
// a mocked connection.
func SetDB(db *gorm.DB) {
	DB = db
}
