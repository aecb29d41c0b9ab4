package accounts

import (
	"context"
	"errors"
	"fmt"

	"ketotrack/backend/internal/i18n"
	"ketotrack/backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegistrationInput is the register form as submitted.
type RegistrationInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Register validates the input, enforces email uniqueness and persists a new
// user with the baseline role. Validation problems come back as a FormError
// covering every failing field at once; only infrastructure failures are
// returned as an error.
func (s *Service) Register(ctx context.Context, locale string, in RegistrationInput) (string, FormError, error) {
	formErr := FormError{}

	if in.Name == "" {
		formErr["name"] = i18n.T(locale, "registration.nameRequired")
	} else if len(in.Name) < 3 {
		formErr["name"] = i18n.T(locale, "registration.nameTooShort")
	}
	if in.Email == "" {
		formErr["email"] = i18n.T(locale, "shared.emailRequired")
	} else if !validEmail(in.Email) {
		formErr["email"] = i18n.T(locale, "shared.invalidEmail")
	}
	if in.Password == "" {
		formErr["password"] = i18n.T(locale, "shared.passwordRequired")
	} else if len(in.Password) < 6 {
		formErr["password"] = i18n.T(locale, "shared.passwordTooShort")
	}
	if in.ConfirmPassword == "" {
		formErr["confirmPassword"] = i18n.T(locale, "shared.confirmPasswordRequired")
	} else if in.ConfirmPassword != in.Password {
		formErr["confirmPassword"] = i18n.T(locale, "shared.passwordsDoNotMatch")
	}

	if formErr.HasFieldErrors() {
		formErr[General] = i18n.T(locale, "registration.failed")
		return "", formErr, nil
	}

	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", in.Email).First(&existing).Error
	if err == nil {
		// Duplication is disclosed here; this is an internal registration
		// endpoint, unlike the reset-request flow.
		formErr["email"] = i18n.T(locale, "registration.emailTaken")
		formErr[General] = i18n.T(locale, "registration.failed")
		return "", formErr, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, fmt.Errorf("lookup existing user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hashed),
		Role:         models.RoleStarter,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	return i18n.T(locale, "registration.success"), nil, nil
}

// Authenticate verifies email/password credentials and returns the matching
// user. Session establishment is left to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}
