package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleStarter UserRole = "starter"
	RoleAdmin   UserRole = "admin"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;"`
	Name         string    `gorm:"size:255;not null"`
	Email        string    `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `gorm:"size:255;not null"`
	Role         UserRole  `gorm:"type:varchar(20);not null;default:'starter'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return
}

// Food is a row of the keto food reference table shown on the dashboard.
type Food struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	CarbsPer100g float64   `gorm:"type:numeric(6,2);not null;default:0" json:"carbs_per_100g"`
	KetoFriendly bool      `gorm:"not null;default:false" json:"keto_friendly"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (f *Food) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return
}

// Vegetable mirrors Food for the vegetable reference table. The two tables
// are kept separate because the source data sets are curated independently.
type Vegetable struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	CarbsPer100g float64   `gorm:"type:numeric(6,2);not null;default:0" json:"carbs_per_100g"`
	KetoFriendly bool      `gorm:"not null;default:false" json:"keto_friendly"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (v *Vegetable) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return
}
