package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ketotrack/backend/internal/accounts"
	"ketotrack/backend/internal/i18n"
	"ketotrack/backend/internal/middleware"
	"ketotrack/backend/pkg/log"
	"ketotrack/backend/pkg/metrics"
)

type ForgotPasswordPayload struct {
	Email string `json:"email" binding:"required"`
}

type ResetPasswordPayload struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordHandler starts a password reset flow for the given email.
// The response does not reveal whether an account exists for that address.
func ForgotPasswordHandler(svc *accounts.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload ForgotPasswordPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
			return
		}

		locale := middleware.RequestLocale(c)
		msg, formErr, err := svc.RequestReset(c.Request.Context(), locale, payload.Email)
		if err != nil {
			metrics.PasswordResetRequests.WithLabelValues("failed").Inc()
			log.L.Error("Password reset request failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(locale, "passwordReset.failed")})
			return
		}
		if formErr != nil {
			metrics.PasswordResetRequests.WithLabelValues("failed").Inc()
			c.JSON(http.StatusBadRequest, RegistrationResponse{Success: nil, Error: formErr})
			return
		}

		metrics.PasswordResetRequests.WithLabelValues("issued").Inc()
		c.JSON(http.StatusOK, RegistrationResponse{Success: &msg, Error: nil})
	}
}

// ResetPasswordHandler completes a password reset using a single-use token.
func ResetPasswordHandler(svc *accounts.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload ResetPasswordPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
			return
		}

		locale := middleware.RequestLocale(c)
		msg, formErr, err := svc.ConfirmReset(c.Request.Context(), locale, payload.Token, payload.Password)
		if err != nil {
			switch {
			case errors.Is(err, accounts.ErrTokenUsed):
				c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(locale, "passwordReset.tokenUsed")})
			case errors.Is(err, accounts.ErrTokenExpired):
				c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(locale, "passwordReset.tokenExpired")})
			case errors.Is(err, accounts.ErrTokenInvalid):
				c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(locale, "passwordReset.invalidToken")})
			default:
				log.L.Error("Password reset confirmation failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(locale, "passwordReset.failed")})
			}
			return
		}
		if formErr != nil {
			c.JSON(http.StatusBadRequest, RegistrationResponse{Success: nil, Error: formErr})
			return
		}

		c.JSON(http.StatusOK, RegistrationResponse{Success: &msg, Error: nil})
	}
}
