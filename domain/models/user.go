package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID  `gorm:"primaryKey;type:uuid"`
	GoogleID      *string    `gorm:"size:255;index"` // nullable, set on first Google sign-in
	Email         string     `gorm:"uniqueIndex;not null"`
	Name          string
	Avatar        string
	EmailVerified *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (User) TableName() string {
	return "users"
}

// IsGoogleUser reports whether the user signed in through Google
func (u *User) IsGoogleUser() bool {
	return u.GoogleID != nil && *u.GoogleID != ""
}
