package services

import (
	"context"

	"github.com/google/uuid"
	"tasklist-api/domain/dto"
	"tasklist-api/domain/models"
)

type TaskService interface {
	// CreateTask requires the target list to be owned by userID; otherwise ErrNotFound.
	CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, userID, taskID uuid.UUID) (*models.Task, error)
	// UpdateTask merges only the fields present in req into the stored task.
	UpdateTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
}
