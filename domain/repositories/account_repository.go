package repositories

import (
	"context"

	"tasklist-api/domain/models"
)

type AccountRepository interface {
	Upsert(ctx context.Context, account *models.Account) error
	GetByProviderAccount(ctx context.Context, provider, providerAccountID string) (*models.Account, error)
}
