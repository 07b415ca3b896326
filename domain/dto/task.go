package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	ListID      uuid.UUID  `json:"listId" validate:"required"`
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description" validate:"omitempty,max=1000"`
	DueDate     *time.Time `json:"dueDate" validate:"omitempty"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=P1 P2 P3 P4"`
}

// UpdateTaskRequest ใช้ pointer ทุก field เพื่อแยก "ไม่ส่งมา" ออกจาก zero value
// (PATCH merge เฉพาะ field ที่ส่งมา)
type UpdateTaskRequest struct {
	ListID      *uuid.UUID `json:"listId" validate:"omitempty"`
	Title       *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=1000"`
	DueDate     *time.Time `json:"dueDate" validate:"omitempty"`
	IsCompleted *bool      `json:"isCompleted" validate:"omitempty"`
	IsImportant *bool      `json:"isImportant" validate:"omitempty"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=P1 P2 P3 P4"`
}

type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	ListID      uuid.UUID  `json:"listId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	IsCompleted bool       `json:"isCompleted"`
	IsImportant bool       `json:"isImportant"`
	Priority    string     `json:"priority"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
