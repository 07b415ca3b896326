package repositories

import (
	"context"

	"github.com/google/uuid"
	"tasklist-api/domain/models"
)

type ListRepository interface {
	Create(ctx context.Context, list *models.List) error
	// GetForUser returns the list only when it is owned by userID. A list that
	// exists but belongs to someone else is reported the same way as a missing one.
	GetForUser(ctx context.Context, id, userID uuid.UUID) (*models.List, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.List, error)
	// DeleteWithTasks removes the list and every task referencing it in a single
	// transaction, so no task can be left pointing at a deleted list.
	DeleteWithTasks(ctx context.Context, id uuid.UUID) error
}
