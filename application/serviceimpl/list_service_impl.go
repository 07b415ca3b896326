package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tasklist-api/domain/dto"
	"tasklist-api/domain/models"
	"tasklist-api/domain/ports"
	"tasklist-api/domain/repositories"
	"tasklist-api/domain/services"
	"tasklist-api/pkg/logger"
	"tasklist-api/pkg/tasksort"
)

type ListServiceImpl struct {
	listRepo repositories.ListRepository
	taskRepo repositories.TaskRepository
	events   ports.EventPublisherPort
}

func NewListService(listRepo repositories.ListRepository, taskRepo repositories.TaskRepository, events ports.EventPublisherPort) services.ListService {
	return &ListServiceImpl{
		listRepo: listRepo,
		taskRepo: taskRepo,
		events:   events,
	}
}

func (s *ListServiceImpl) CreateList(ctx context.Context, userID uuid.UUID, req *dto.CreateListRequest) (*models.List, error) {
	now := time.Now()
	list := &models.List{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.listRepo.Create(ctx, list); err != nil {
		logger.ErrorContext(ctx, "Failed to create list", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "List created", "list_id", list.ID, "user_id", userID)
	s.publishEvent(ctx, ports.EventListCreated, userID, list.ID, uuid.Nil)

	return list, nil
}

func (s *ListServiceImpl) GetList(ctx context.Context, userID, listID uuid.UUID) (*models.List, error) {
	list, err := s.listRepo.GetForUser(ctx, listID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return list, nil
}

func (s *ListServiceImpl) GetUserLists(ctx context.Context, userID uuid.UUID) ([]*models.List, error) {
	lists, err := s.listRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get user lists", "user_id", userID, "error", err)
		return nil, err
	}
	return lists, nil
}

func (s *ListServiceImpl) DeleteList(ctx context.Context, userID, listID uuid.UUID) error {
	// ownership check ก่อนลบเสมอ
	if _, err := s.GetList(ctx, userID, listID); err != nil {
		return err
	}

	if err := s.listRepo.DeleteWithTasks(ctx, listID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete list", "list_id", listID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "List deleted with tasks", "list_id", listID, "user_id", userID)
	s.publishEvent(ctx, ports.EventListDeleted, userID, listID, uuid.Nil)

	return nil
}

func (s *ListServiceImpl) GetListTasks(ctx context.Context, userID, listID uuid.UUID, sortBy, order string) ([]*models.Task, []*models.Task, error) {
	if _, err := s.GetList(ctx, userID, listID); err != nil {
		return nil, nil, err
	}

	tasks, err := s.taskRepo.GetByListID(ctx, listID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get list tasks", "list_id", listID, "error", err)
		return nil, nil, err
	}

	pending, completed := tasksort.Apply(tasks, sortBy, order)
	return pending, completed, nil
}

func (s *ListServiceImpl) publishEvent(ctx context.Context, eventType string, userID, entityID, listID uuid.UUID) {
	if s.events == nil {
		return
	}
	event := &ports.EntityEvent{
		Type:     eventType,
		UserID:   userID.String(),
		EntityID: entityID.String(),
	}
	if listID != uuid.Nil {
		event.ListID = listID.String()
	}
	if err := s.events.Publish(ctx, event); err != nil {
		// event เป็น best-effort, ไม่ fail request
		logger.WarnContext(ctx, "Failed to publish event", "type", eventType, "error", err)
	}
}
