package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds the application configuration.
type AppConfig struct {
	Port             string
	Environment      string // "development", "staging", "production"
	AppVersion       string
	AppBaseURL       string // base URL used to build password reset links
	JWTSecret        string
	JWTTokenLifespan time.Duration
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSSLMode        string
	AWSRegion        string
	AWSSESSender     string
	BcryptCost       int
	DefaultLocale    string
}

var Cfg AppConfig

// LoadConfig loads the application configuration from environment variables.
func LoadConfig() {
	// Load .env for local development; ignore the error in production where
	// everything comes from the real environment.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded:", err)
	}

	Cfg.Port = getEnv("PORT", "8080")
	Cfg.Environment = getEnv("ENVIRONMENT", "development")
	Cfg.AppVersion = getEnv("APP_VERSION", "")
	Cfg.AppBaseURL = getEnv("APP_BASE_URL", "http://localhost:3000")

	Cfg.JWTSecret = getEnv("JWT_SECRET_KEY", "")
	jwtLifespanHours, err := strconv.Atoi(getEnv("JWT_TOKEN_LIFESPAN_HOURS", "24"))
	if err != nil {
		log.Printf("Invalid JWT_TOKEN_LIFESPAN_HOURS, falling back to 24h: %v", err)
		jwtLifespanHours = 24
	}
	Cfg.JWTTokenLifespan = time.Duration(jwtLifespanHours) * time.Hour

	Cfg.DBHost = getEnv("POSTGRES_HOST", "localhost")
	Cfg.DBPort = getEnv("POSTGRES_PORT", "5432")
	Cfg.DBUser = getEnv("POSTGRES_USER", "ketotrack")
	Cfg.DBPassword = getEnv("POSTGRES_PASSWORD", "ketotrack")
	Cfg.DBName = getEnv("POSTGRES_DB", "ketotrack_db")
	Cfg.DBSSLMode = getEnv("POSTGRES_SSLMODE", "disable")

	Cfg.AWSRegion = getEnv("AWS_REGION", "")
	Cfg.AWSSESSender = getEnv("AWS_SES_EMAIL_SENDER", "")

	bcryptCost, err := strconv.Atoi(getEnv("BCRYPT_COST", "10"))
	if err != nil || bcryptCost < 4 || bcryptCost > 31 {
		log.Printf("Invalid BCRYPT_COST, falling back to 10")
		bcryptCost = 10
	}
	Cfg.BcryptCost = bcryptCost

	Cfg.DefaultLocale = getEnv("DEFAULT_LOCALE", "en")

	log.Printf("Configuration loaded for environment: %s", Cfg.Environment)
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func init() {
	LoadConfig()
}
