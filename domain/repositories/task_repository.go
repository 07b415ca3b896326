package repositories

import (
	"context"

	"github.com/google/uuid"
	"tasklist-api/domain/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	// GetForUser resolves ownership through the task's list: the task is returned
	// only when lists.user_id matches userID.
	GetForUser(ctx context.Context, id, userID uuid.UUID) (*models.Task, error)
	GetByListID(ctx context.Context, listID uuid.UUID) ([]*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByListID(ctx context.Context, listID uuid.UUID) (int64, error)
}
