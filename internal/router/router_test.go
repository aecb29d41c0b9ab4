package router

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ketotrack/backend/internal/accounts"
	"ketotrack/backend/internal/database"
	"ketotrack/backend/internal/notifications"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouterTest(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, smock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		// Pings are monitored by the mock, so gorm's connect-time ping would
		// need its own expectation; skip it.
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("Failed to open GORM with mock: %v", err)
	}

	originalDB := database.GetDB()
	database.SetDB(gormDB)
	t.Cleanup(func() {
		database.SetDB(originalDB)
		db.Close()
	})

	svc := accounts.NewService(gormDB, notifications.DefaultEmailNotifier, "http://localhost:3000", 4)
	return SetupRouter(zap.NewNop(), svc), smock
}

func TestHealthCheck_OK(t *testing.T) {
	router, smock := setupRouterTest(t)

	smock.ExpectPing()

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"ok"`)
	assert.Contains(t, rr.Body.String(), `"database":"connected"`)
}

func TestHealthCheck_DatabaseDown(t *testing.T) {
	router, smock := setupRouterTest(t)

	smock.ExpectPing().WillReturnError(errors.New("connection refused"))

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Contains(t, rr.Body.String(), "database ping failed")
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	router, _ := setupRouterTest(t)

	for _, path := range []string{"/api/v1/me", "/api/v1/foods", "/api/v1/vegetables", "/api/v1/dashboard/summary"} {
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "expected 401 for %s without a token", path)
	}
}
