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
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	listRepo repositories.ListRepository
	events   ports.EventPublisherPort
}

func NewTaskService(taskRepo repositories.TaskRepository, listRepo repositories.ListRepository, events ports.EventPublisherPort) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		listRepo: listRepo,
		events:   events,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	// list ต้องมีอยู่และเป็นของ caller (list ของคนอื่น = not found)
	if _, err := s.listRepo.GetForUser(ctx, req.ListID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "List not found for task creation", "list_id", req.ListID, "user_id", userID)
			return nil, services.ErrNotFound
		}
		return nil, err
	}

	priority := models.Priority(req.Priority)
	if priority == "" {
		priority = models.PriorityP4
	}

	now := time.Now()
	task := &models.Task{
		ID:          uuid.New(),
		ListID:      req.ListID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		IsCompleted: false,
		IsImportant: false,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "list_id", req.ListID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "list_id", task.ListID)
	s.publishEvent(ctx, ports.EventTaskCreated, userID, task)

	return task, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, userID, taskID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetForUser(ctx, taskID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.GetTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	// ย้าย list ได้เฉพาะไป list ของตัวเอง
	if req.ListID != nil && *req.ListID != task.ListID {
		if _, err := s.listRepo.GetForUser(ctx, *req.ListID, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, services.ErrNotFound
			}
			return nil, err
		}
		task.ListID = *req.ListID
	}

	// merge เฉพาะ field ที่ส่งมา
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.IsCompleted != nil {
		task.IsCompleted = *req.IsCompleted
	}
	if req.IsImportant != nil {
		task.IsImportant = *req.IsImportant
	}
	if req.Priority != nil {
		task.Priority = models.Priority(*req.Priority)
	}

	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID)
	s.publishEvent(ctx, ports.EventTaskUpdated, userID, task)

	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	task, err := s.GetTask(ctx, userID, taskID)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID)
	s.publishEvent(ctx, ports.EventTaskDeleted, userID, task)

	return nil
}

func (s *TaskServiceImpl) publishEvent(ctx context.Context, eventType string, userID uuid.UUID, task *models.Task) {
	if s.events == nil {
		return
	}
	err := s.events.Publish(ctx, &ports.EntityEvent{
		Type:     eventType,
		UserID:   userID.String(),
		EntityID: task.ID.String(),
		ListID:   task.ListID.String(),
	})
	if err != nil {
		logger.WarnContext(ctx, "Failed to publish event", "type", eventType, "error", err)
	}
}
