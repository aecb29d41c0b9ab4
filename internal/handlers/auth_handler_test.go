package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"ketotrack/backend/internal/auth"
	"ketotrack/backend/internal/i18n"
	"ketotrack/backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestLoginHandler_Success(t *testing.T) {
	svc, smock, _ := newTestService(t)
	router := gin.New()
	router.POST("/auth/login", LoginHandler(svc))

	userID := uuid.New()
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	smock.ExpectQuery(regexp.QuoteMeta(selectUserByEmail)).
		WithArgs("alice@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role"}).
			AddRow(userID, "Alice", "alice@example.com", string(hashed), "starter"))

	rr := postJSON(router, "/auth/login", gin.H{"email": "alice@example.com", "password": "secret1"})

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp LoginResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, userID.String(), resp.User.ID)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.Equal(t, string(models.RoleStarter), resp.User.Role)
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	svc, smock, _ := newTestService(t)
	router := gin.New()
	router.POST("/auth/login", LoginHandler(svc))

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	smock.ExpectQuery(regexp.QuoteMeta(selectUserByEmail)).
		WithArgs("alice@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role"}).
			AddRow(uuid.New(), "Alice", "alice@example.com", string(hashed), "starter"))

	rr := postJSON(router, "/auth/login", gin.H{"email": "alice@example.com", "password": "wrong"})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	var resp struct {
		Error string `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, i18n.T(i18n.LocaleEN, "login.failed"), resp.Error)
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestLoginHandler_UnknownEmail(t *testing.T) {
	svc, smock, _ := newTestService(t)
	router := gin.New()
	router.POST("/auth/login", LoginHandler(svc))

	smock.ExpectQuery(regexp.QuoteMeta(selectUserByEmail)).
		WithArgs("nobody@example.com", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	rr := postJSON(router, "/auth/login", gin.H{"email": "nobody@example.com", "password": "whatever"})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestMeHandler(t *testing.T) {
	db, smock := newMockDB(t)
	router := gin.New()
	router.GET("/api/v1/me", auth.AuthMiddleware(), MeHandler(db))

	userID := uuid.New()
	user := &models.User{
		ID:    userID,
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  models.RoleStarter,
	}
	token, err := auth.GenerateToken(user)
	assert.NoError(t, err)

	smock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE id = $1 ORDER BY "users"."id" LIMIT $2`)).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role"}).
			AddRow(userID, "Alice", "alice@example.com", "$2a$04$notarealhash", "starter"))

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp UserInfo
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, userID.String(), resp.ID)
	assert.Equal(t, "Alice", resp.Name)
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestMeHandler_NoToken(t *testing.T) {
	db, _ := newMockDB(t)
	router := gin.New()
	router.GET("/api/v1/me", auth.AuthMiddleware(), MeHandler(db))

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/me", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
