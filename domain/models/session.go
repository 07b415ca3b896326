package models

import (
	"time"

	"github.com/google/uuid"
)

// Session คือ session ที่ยัง active อยู่ หนึ่ง row ต่อหนึ่ง JWT (key ด้วย jti)
// ลบ row = revoke token
type Session struct {
	TokenID   string    `gorm:"primaryKey;size:64"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	User      User      `gorm:"foreignKey:UserID"`
	Expires   time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Session) TableName() string {
	return "sessions"
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.Expires)
}
