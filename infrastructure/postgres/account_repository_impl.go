package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tasklist-api/domain/models"
	"tasklist-api/domain/repositories"
)

type AccountRepositoryImpl struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) repositories.AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

// Upsert keyed on (provider, provider_account_id); repeated sign-ins refresh the row.
func (r *AccountRepositoryImpl) Upsert(ctx context.Context, account *models.Account) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "provider"}, {Name: "provider_account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "scope", "updated_at"}),
	}).Create(account).Error
}

func (r *AccountRepositoryImpl) GetByProviderAccount(ctx context.Context, provider, providerAccountID string) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).
		Where("provider = ? AND provider_account_id = ?", provider, providerAccountID).
		First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}
