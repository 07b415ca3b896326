package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateListRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

type ListResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListTasksResponse คือ task ของ list แยกกลุ่มตามสถานะ (ยังไม่เสร็จ/เสร็จแล้ว)
type ListTasksResponse struct {
	Pending   []TaskResponse `json:"pending"`
	Completed []TaskResponse `json:"completed"`
}

type ListTasksQuery struct {
	SortBy string `query:"sortBy" validate:"omitempty,oneof=importance priority dueDate title"`
	Order  string `query:"order" validate:"omitempty,oneof=asc desc"`
}
