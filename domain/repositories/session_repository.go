package repositories

import (
	"context"

	"tasklist-api/domain/models"
)

type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByTokenID(ctx context.Context, tokenID string) (*models.Session, error)
	Delete(ctx context.Context, tokenID string) error
}
