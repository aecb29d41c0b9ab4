package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ketotrack/backend/internal/accounts"
	"ketotrack/backend/internal/middleware"
	"ketotrack/backend/pkg/log"
)

// RegistrationResponse mirrors the form outcome shape the web client expects:
// exactly one of success or error is set.
type RegistrationResponse struct {
	Success *string            `json:"success"`
	Error   accounts.FormError `json:"error"`
}

// RegisterHandler creates a new user account from a registration form.
func RegisterHandler(svc *accounts.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input accounts.RegistrationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
			return
		}

		locale := middleware.RequestLocale(c)
		msg, formErr, err := svc.Register(c.Request.Context(), locale, input)
		if err != nil {
			log.L.Error("Registration failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			return
		}
		if formErr != nil {
			c.JSON(http.StatusBadRequest, RegistrationResponse{Success: nil, Error: formErr})
			return
		}
		c.JSON(http.StatusOK, RegistrationResponse{Success: &msg, Error: nil})
	}
}
