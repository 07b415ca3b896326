package models

import (
	"time"

	"github.com/google/uuid"
)

// Account เก็บ OAuth bookkeeping ของ provider (ตอนนี้มีแค่ google)
type Account struct {
	Provider          string    `gorm:"primaryKey;size:50"`
	ProviderAccountID string    `gorm:"primaryKey;size:255"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index"`
	User              User      `gorm:"foreignKey:UserID"`
	Type              string    `gorm:"size:50"`
	AccessToken       string
	RefreshToken      string
	ExpiresAt         *time.Time
	TokenType         string `gorm:"size:50"`
	Scope             string
	IDToken           string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (Account) TableName() string {
	return "accounts"
}
