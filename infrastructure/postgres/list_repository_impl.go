package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tasklist-api/domain/models"
	"tasklist-api/domain/repositories"
)

type ListRepositoryImpl struct {
	db *gorm.DB
}

func NewListRepository(db *gorm.DB) repositories.ListRepository {
	return &ListRepositoryImpl{db: db}
}

func (r *ListRepositoryImpl) Create(ctx context.Context, list *models.List) error {
	return r.db.WithContext(ctx).Create(list).Error
}

// GetForUser folds the ownership check into the lookup: a foreign list surfaces
// as gorm.ErrRecordNotFound, same as a missing one.
func (r *ListRepositoryImpl) GetForUser(ctx context.Context, id, userID uuid.UUID) (*models.List, error) {
	var list models.List
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&list).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *ListRepositoryImpl) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.List, error) {
	var lists []*models.List
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&lists).Error
	return lists, err
}

// DeleteWithTasks removes the list and its tasks in one transaction so a task is
// never left referencing a deleted list.
func (r *ListRepositoryImpl) DeleteWithTasks(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.List{}).Error
	})
}
