package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"ketotrack/backend/internal/i18n"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

const (
	selectUserByEmail  = `SELECT * FROM "users" WHERE email = $1 ORDER BY "users"."id" LIMIT $2`
	selectTokenByValue = `SELECT * FROM "password_reset_tokens" WHERE token = $1 ORDER BY "password_reset_tokens"."id" LIMIT $2`
	invalidateTokens   = `UPDATE "password_reset_tokens" SET "used"=$1,"updated_at"=$2 WHERE email = $3 AND used = $4 AND expires > $5`
	insertToken        = `INSERT INTO "password_reset_tokens" ("id","email","token","expires","used","created_at","updated_at") VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING "id"`
	updatePassword     = `UPDATE "users" SET "password_hash"=$1,"updated_at"=$2 WHERE id = $3`
	markTokenUsed      = `UPDATE "password_reset_tokens" SET "used"=$1,"updated_at"=$2 WHERE id = $3`
)

func postJSON(router *gin.Engine, path string, payload gin.H) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func expectResetIssued(smock sqlmock.Sqlmock, email string) {
	smock.ExpectQuery(regexp.QuoteMeta(selectUserByEmail)).
		WithArgs(email, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role"}).
			AddRow(uuid.New(), "Alice", email, "$2a$04$notarealhash", "starter"))

	smock.ExpectBegin()
	smock.ExpectExec(regexp.QuoteMeta(invalidateTokens)).
		WithArgs(true, anyArg(), email, false, testNow).
		WillReturnResult(sqlmock.NewResult(0, 0))
	smock.ExpectCommit()

	smock.ExpectBegin()
	smock.ExpectQuery(regexp.QuoteMeta(insertToken)).
		WithArgs(anyArg(), email, anyArg(), testNow.Add(time.Hour), false, anyArg(), anyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	smock.ExpectCommit()
}

func TestForgotPasswordHandler_Success(t *testing.T) {
	svc, smock, notifier := newTestService(t)
	router := gin.New()
	router.POST("/auth/forgot-password", ForgotPasswordHandler(svc))

	expectResetIssued(smock, "alice@example.com")

	rr := postJSON(router, "/auth/forgot-password", gin.H{"email": "alice@example.com"})

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Success *string           `json:"success"`
		Error   map[string]string `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	if assert.NotNil(t, resp.Success) {
		assert.Equal(t, i18n.T(i18n.LocaleEN, "passwordReset.emailSent"), *resp.Success)
	}
	assert.True(t, notifier.sendCalled)
	assert.NoError(t, smock.ExpectationsWereMet())
}

// A reset request for an unknown address must produce a response that is
// byte-identical to the one for a known address.
func TestForgotPasswordHandler_UnknownEmailLooksIdentical(t *testing.T) {
	svcKnown, smockKnown, _ := newTestService(t)
	routerKnown := gin.New()
	routerKnown.POST("/auth/forgot-password", ForgotPasswordHandler(svcKnown))
	expectResetIssued(smockKnown, "alice@example.com")
	known := postJSON(routerKnown, "/auth/forgot-password", gin.H{"email": "alice@example.com"})

	svcUnknown, smockUnknown, notifier := newTestService(t)
	routerUnknown := gin.New()
	routerUnknown.POST("/auth/forgot-password", ForgotPasswordHandler(svcUnknown))
	smockUnknown.ExpectQuery(regexp.QuoteMeta(selectUserByEmail)).
		WithArgs("nobody@example.com", 1).
		WillReturnError(gorm.ErrRecordNotFound)
	unknown := postJSON(routerUnknown, "/auth/forgot-password", gin.H{"email": "nobody@example.com"})

	assert.Equal(t, known.Code, unknown.Code)
	assert.Equal(t, known.Body.String(), unknown.Body.String())
	assert.False(t, notifier.sendCalled)
	assert.NoError(t, smockUnknown.ExpectationsWereMet())
}

func TestForgotPasswordHandler_InvalidEmail(t *testing.T) {
	svc, smock, _ := newTestService(t)
	router := gin.New()
	router.POST("/auth/forgot-password", ForgotPasswordHandler(svc))

	rr := postJSON(router, "/auth/forgot-password", gin.H{"email": "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var resp struct {
		Error map[string]string `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, i18n.T(i18n.LocaleEN, "shared.invalidEmail"), resp.Error["email"])
	assert.NoError(t, smock.ExpectationsWereMet(), "invalid addresses must not be looked up")
}

func TestResetPasswordHandler_Success(t *testing.T) {
	svc, smock, _ := newTestService(t)
	router := gin.New()
	router.POST("/auth/reset-password", ResetPasswordHandler(svc))

	tokenID := uuid.New()
	userID := uuid.New()
	smock.ExpectQuery(regexp.QuoteMeta(selectTokenByValue)).
		WithArgs("sometoken", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "token", "expires", "used"}).
			AddRow(tokenID, "alice@example.com", "sometoken", testNow.Add(30*time.Minute), false))
	smock.ExpectQuery(regexp.QuoteMeta(selectUserByEmail)).
		WithArgs("alice@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role"}).
			AddRow(userID, "Alice", "alice@example.com", "$2a$04$notarealhash", "starter"))

	smock.ExpectBegin()
	smock.ExpectExec(regexp.QuoteMeta(updatePassword)).
		WithArgs(anyArg(), anyArg(), userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	smock.ExpectExec(regexp.QuoteMeta(markTokenUsed)).
		WithArgs(true, anyArg(), tokenID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	smock.ExpectCommit()

	rr := postJSON(router, "/auth/reset-password", gin.H{"token": "sometoken", "password": "newsecret"})

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Success *string `json:"success"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	if assert.NotNil(t, resp.Success) {
		assert.Equal(t, i18n.T(i18n.LocaleEN, "passwordReset.success"), *resp.Success)
	}
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestResetPasswordHandler_UsedToken(t *testing.T) {
	svc, smock, _ := newTestService(t)
	router := gin.New()
	router.POST("/auth/reset-password", ResetPasswordHandler(svc))

	smock.ExpectQuery(regexp.QuoteMeta(selectTokenByValue)).
		WithArgs("usedtoken", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "token", "expires", "used"}).
			AddRow(uuid.New(), "alice@example.com", "usedtoken", testNow.Add(30*time.Minute), true))

	rr := postJSON(router, "/auth/reset-password", gin.H{"token": "usedtoken", "password": "newsecret"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var resp struct {
		Error string `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, i18n.T(i18n.LocaleEN, "passwordReset.tokenUsed"), resp.Error)
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestResetPasswordHandler_ExpiredToken(t *testing.T) {
	svc, smock, _ := newTestService(t)
	router := gin.New()
	router.POST("/auth/reset-password", ResetPasswordHandler(svc))

	smock.ExpectQuery(regexp.QuoteMeta(selectTokenByValue)).
		WithArgs("oldtoken", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "token", "expires", "used"}).
			AddRow(uuid.New(), "alice@example.com", "oldtoken", testNow.Add(-time.Minute), false))

	rr := postJSON(router, "/auth/reset-password", gin.H{"token": "oldtoken", "password": "newsecret"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var resp struct {
		Error string `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, i18n.T(i18n.LocaleEN, "passwordReset.tokenExpired"), resp.Error)
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestResetPasswordHandler_UnknownToken(t *testing.T) {
	svc, smock, _ := newTestService(t)
	router := gin.New()
	router.POST("/auth/reset-password", ResetPasswordHandler(svc))

	smock.ExpectQuery(regexp.QuoteMeta(selectTokenByValue)).
		WithArgs("nosuchtoken", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	rr := postJSON(router, "/auth/reset-password", gin.H{"token": "nosuchtoken", "password": "newsecret"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var resp struct {
		Error string `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, i18n.T(i18n.LocaleEN, "passwordReset.invalidToken"), resp.Error)
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestResetPasswordHandler_ShortPassword(t *testing.T) {
	svc, smock, _ := newTestService(t)
	router := gin.New()
	router.POST("/auth/reset-password", ResetPasswordHandler(svc))

	rr := postJSON(router, "/auth/reset-password", gin.H{"token": "sometoken", "password": "123"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var resp struct {
		Error map[string]string `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, i18n.T(i18n.LocaleEN, "shared.passwordTooShort"), resp.Error["password"])
	assert.NoError(t, smock.ExpectationsWereMet(), "short passwords must not hit the store")
}
