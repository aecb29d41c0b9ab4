package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PasswordResetTokenTTL is how long a freshly issued token stays valid.
const PasswordResetTokenTTL = time.Hour

// PasswordResetToken is a single-use, time-limited bearer credential proving
// control of an email address. Tokens reference the user by email rather than
// by id; the account may not exist anymore by the time the token is redeemed.
type PasswordResetToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;"`
	Email     string    `gorm:"size:255;not null;index"`
	Token     string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Expires   time.Time `gorm:"not null"`
	Used      bool      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t *PasswordResetToken) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}

// IsExpired reports whether the token is past its expiry at the given time.
func (t PasswordResetToken) IsExpired(now time.Time) bool {
	return !now.Before(t.Expires)
}
