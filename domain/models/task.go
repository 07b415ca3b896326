package models

import (
	"time"

	"github.com/google/uuid"
)

// Priority คือระดับความสำคัญของ task (P1 สูงสุด, P4 ต่ำสุด)
type Priority string

const (
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
	PriorityP4 Priority = "P4"
)

// Rank returns the ordinal of the priority, 1 being the highest.
func (p Priority) Rank() int {
	switch p {
	case PriorityP1:
		return 1
	case PriorityP2:
		return 2
	case PriorityP3:
		return 3
	default:
		return 4
	}
}

type Task struct {
	ID          uuid.UUID  `gorm:"primaryKey;type:uuid"`
	ListID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	List        List       `gorm:"foreignKey:ListID"`
	Title       string     `gorm:"not null"`
	Description string
	DueDate     *time.Time
	IsCompleted bool     `gorm:"not null;default:false"`
	IsImportant bool     `gorm:"not null;default:false"`
	Priority    Priority `gorm:"type:varchar(2);not null;default:'P4'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Task) TableName() string {
	return "tasks"
}
