package services

import (
	"context"

	"github.com/google/uuid"
	"tasklist-api/domain/dto"
	"tasklist-api/domain/models"
)

type ListService interface {
	CreateList(ctx context.Context, userID uuid.UUID, req *dto.CreateListRequest) (*models.List, error)
	GetList(ctx context.Context, userID, listID uuid.UUID) (*models.List, error)
	GetUserLists(ctx context.Context, userID uuid.UUID) ([]*models.List, error)
	// DeleteList removes the list and all of its tasks.
	DeleteList(ctx context.Context, userID, listID uuid.UUID) error
	// GetListTasks returns the list's tasks partitioned by completion and sorted
	// by the requested key and direction.
	GetListTasks(ctx context.Context, userID, listID uuid.UUID, sortBy, order string) (pending, completed []*models.Task, err error)
}
