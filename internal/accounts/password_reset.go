package accounts

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"ketotrack/backend/internal/i18n"
	"ketotrack/backend/internal/models"
	"ketotrack/backend/internal/notifications"
	ktlog "ketotrack/backend/pkg/log"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RequestReset issues a single-use reset token for the email and mails the
// reset link. The returned message is identical whether or not an account
// exists, so the endpoint cannot be used for account enumeration. Mail
// delivery failures are logged (with the URL as a fallback channel) and do
// not fail the request; the token is already durable at that point.
func (s *Service) RequestReset(ctx context.Context, locale, email string) (string, FormError, error) {
	log := ktlog.L.Named("RequestReset")

	if !validEmail(email) {
		return "", FormError{
			"email": i18n.T(locale, "shared.invalidEmail"),
			General: i18n.T(locale, "passwordReset.failed"),
		}, nil
	}

	successMsg := i18n.T(locale, "passwordReset.emailSent")

	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Do not reveal whether the email exists.
			log.Info("Password reset requested for non-existent email", zap.String("email", email))
			return successMsg, nil, nil
		}
		return "", nil, fmt.Errorf("lookup user: %w", err)
	}

	now := s.now()

	// Supersede any still-valid token before creating the new one, so at
	// most one valid token exists per email after this operation.
	if err := s.db.WithContext(ctx).
		Model(&models.PasswordResetToken{}).
		Where("email = ? AND used = ? AND expires > ?", email, false, now).
		Update("used", true).Error; err != nil {
		return "", nil, fmt.Errorf("invalidate previous tokens: %w", err)
	}

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", nil, fmt.Errorf("generate reset token: %w", err)
	}
	token := hex.EncodeToString(tokenBytes)

	resetToken := models.PasswordResetToken{
		Email:   email,
		Token:   token,
		Expires: now.Add(models.PasswordResetTokenTTL),
	}
	if err := s.db.WithContext(ctx).Create(&resetToken).Error; err != nil {
		return "", nil, fmt.Errorf("save reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", strings.TrimSuffix(s.baseURL, "/"), token)

	bodyHTML, bodyText, err := notifications.BuildResetEmail(resetURL, user.Name)
	if err != nil {
		log.Error("Failed to render password reset email", zap.Error(err),
			zap.String("email", email), zap.String("reset_url", resetURL))
		return successMsg, nil, nil
	}

	subject := i18n.T(locale, "email.reset.subject")
	if err := s.notifier.Send(ctx, email, subject, bodyHTML, bodyText); err != nil {
		// Non-fatal: the token is valid regardless of delivery. Log the URL
		// so operators still have a channel to hand the link over.
		log.Error("Failed to send password reset email", zap.Error(err),
			zap.String("email", email), zap.String("reset_url", resetURL))
	}

	return successMsg, nil, nil
}

// ConfirmReset redeems a token and sets the new password. The password
// update and the used-flag flip commit in one transaction; a token is never
// consumed without the password changing, and vice versa.
func (s *Service) ConfirmReset(ctx context.Context, locale, token, newPassword string) (string, FormError, error) {
	formErr := FormError{}
	if token == "" {
		return "", nil, ErrTokenInvalid
	}
	if len(newPassword) < 6 {
		formErr["password"] = i18n.T(locale, "shared.passwordTooShort")
		formErr[General] = i18n.T(locale, "shared.allInvalid")
		return "", formErr, nil
	}

	var resetToken models.PasswordResetToken
	if err := s.db.WithContext(ctx).Where("token = ?", token).First(&resetToken).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrTokenInvalid
		}
		return "", nil, fmt.Errorf("lookup reset token: %w", err)
	}

	now := s.now()
	if resetToken.Used {
		return "", nil, ErrTokenUsed
	}
	if resetToken.IsExpired(now) {
		return "", nil, ErrTokenExpired
	}

	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", resetToken.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Token references a user that no longer exists.
			return "", nil, ErrTokenInvalid
		}
		return "", nil, fmt.Errorf("lookup user for token: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash new password: %w", err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("id = ?", user.ID).
			Update("password_hash", string(hashed)).Error; err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		if err := tx.Model(&models.PasswordResetToken{}).
			Where("id = ?", resetToken.ID).
			Update("used", true).Error; err != nil {
			return fmt.Errorf("mark token used: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", nil, err
	}

	ktlog.L.Info("Password reset successful", zap.String("email", user.Email))
	return i18n.T(locale, "passwordReset.success"), nil, nil
}
