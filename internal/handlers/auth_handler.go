package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ketotrack/backend/internal/accounts"
	"ketotrack/backend/internal/auth"
	"ketotrack/backend/internal/i18n"
	"ketotrack/backend/internal/middleware"
	"ketotrack/backend/internal/models"
	"ketotrack/backend/pkg/log"
)

type LoginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

type UserInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginHandler authenticates a user with email and password and issues a JWT.
func LoginHandler(svc *accounts.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload LoginPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
			return
		}

		locale := middleware.RequestLocale(c)
		user, err := svc.Authenticate(c.Request.Context(), payload.Email, payload.Password)
		if err != nil {
			if errors.Is(err, accounts.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": i18n.T(locale, "login.failed")})
				return
			}
			log.L.Error("Login failed", zap.String("email", payload.Email), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
			return
		}

		token, err := auth.GenerateToken(user)
		if err != nil {
			log.L.Error("Failed to generate token", zap.String("user_id", user.ID.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, LoginResponse{
			Token: token,
			User: UserInfo{
				ID:    user.ID.String(),
				Name:  user.Name,
				Email: user.Email,
				Role:  string(user.Role),
			},
		})
	}
}

// MeHandler returns the profile of the authenticated user.
func MeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		var user models.User
		if err := db.WithContext(c.Request.Context()).First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			log.L.Error("Failed to load user profile", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user profile"})
			return
		}

		c.JSON(http.StatusOK, UserInfo{
			ID:    user.ID.String(),
			Name:  user.Name,
			Email: user.Email,
			Role:  string(user.Role),
		})
	}
}
