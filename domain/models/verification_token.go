package models

import "time"

// VerificationToken - email verification bookkeeping (schema only, no handler surface)
type VerificationToken struct {
	Identifier string    `gorm:"primaryKey;size:255"`
	Token      string    `gorm:"primaryKey;size:255"`
	Expires    time.Time `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (VerificationToken) TableName() string {
	return "verification_tokens"
}
