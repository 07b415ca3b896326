package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist-api/domain/dto"
	"tasklist-api/domain/models"
	"tasklist-api/domain/ports"
	"tasklist-api/domain/services"
)

func seedList(t *testing.T, repo *fakeListRepo, userID uuid.UUID, name string) *models.List {
	t.Helper()
	list := &models.List{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), list))
	return list
}

func TestCreateTaskDefaults(t *testing.T) {
	listRepo, taskRepo, events := newTestRepos()
	svc := NewTaskService(taskRepo, listRepo, events)

	userID := uuid.New()
	list := seedList(t, listRepo, userID, "Groceries")

	task, err := svc.CreateTask(context.Background(), userID, &dto.CreateTaskRequest{
		ListID: list.ID,
		Title:  "Milk",
	})
	require.NoError(t, err)

	assert.Equal(t, "Milk", task.Title)
	assert.False(t, task.IsCompleted)
	assert.False(t, task.IsImportant)
	assert.Equal(t, models.PriorityP4, task.Priority)
	assert.Equal(t, []string{ports.EventTaskCreated}, events.types())
}

func TestCreateTaskWithPriority(t *testing.T) {
	listRepo, taskRepo, events := newTestRepos()
	svc := NewTaskService(taskRepo, listRepo, events)

	userID := uuid.New()
	list := seedList(t, listRepo, userID, "Groceries")

	task, err := svc.CreateTask(context.Background(), userID, &dto.CreateTaskRequest{
		ListID:   list.ID,
		Title:    "Milk",
		Priority: "P1",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PriorityP1, task.Priority)
}

// Creating a task in someone else's list is indistinguishable from creating in
// a list that does not exist.
func TestCreateTaskForeignList(t *testing.T) {
	listRepo, taskRepo, events := newTestRepos()
	svc := NewTaskService(taskRepo, listRepo, events)

	owner := uuid.New()
	intruder := uuid.New()
	list := seedList(t, listRepo, owner, "Private")

	_, errForeign := svc.CreateTask(context.Background(), intruder, &dto.CreateTaskRequest{
		ListID: list.ID,
		Title:  "Sneaky",
	})
	_, errMissing := svc.CreateTask(context.Background(), intruder, &dto.CreateTaskRequest{
		ListID: uuid.New(),
		Title:  "Nowhere",
	})

	assert.ErrorIs(t, errForeign, services.ErrNotFound)
	assert.ErrorIs(t, errMissing, services.ErrNotFound)
	assert.Empty(t, events.types())
}

// A created task reads back field-for-field identical.
func TestCreateTaskRoundTrip(t *testing.T) {
	listRepo, taskRepo, events := newTestRepos()
	svc := NewTaskService(taskRepo, listRepo, events)

	userID := uuid.New()
	list := seedList(t, listRepo, userID, "Groceries")
	due := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	created, err := svc.CreateTask(context.Background(), userID, &dto.CreateTaskRequest{
		ListID:      list.ID,
		Title:       "Milk",
		Description: "2 liters",
		DueDate:     &due,
		Priority:    "P2",
	})
	require.NoError(t, err)

	got, err := svc.GetTask(context.Background(), userID, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.ListID, got.ListID)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Description, got.Description)
	require.NotNil(t, got.DueDate)
	assert.True(t, created.DueDate.Equal(*got.DueDate))
	assert.Equal(t, created.Priority, got.Priority)
	assert.Equal(t, created.IsCompleted, got.IsCompleted)
	assert.Equal(t, created.IsImportant, got.IsImportant)
}

func TestGetTaskNotOwned(t *testing.T) {
	listRepo, taskRepo, events := newTestRepos()
	svc := NewTaskService(taskRepo, listRepo, events)

	owner := uuid.New()
	list := seedList(t, listRepo, owner, "Private")
	task, err := svc.CreateTask(context.Background(), owner, &dto.CreateTaskRequest{
		ListID: list.ID,
		Title:  "Secret",
	})
	require.NoError(t, err)

	_, err = svc.GetTask(context.Background(), uuid.New(), task.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	got, err := svc.GetTask(context.Background(), owner, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)
}

func TestUpdateTaskPartialMerge(t *testing.T) {
	listRepo, taskRepo, events := newTestRepos()
	svc := NewTaskService(taskRepo, listRepo, events)

	userID := uuid.New()
	list := seedList(t, listRepo, userID, "Groceries")
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	task, err := svc.CreateTask(context.Background(), userID, &dto.CreateTaskRequest{
		ListID:      list.ID,
		Title:       "Milk",
		Description: "2 liters",
		DueDate:     &due,
		Priority:    "P3",
	})
	require.NoError(t, err)

	completed := true
	updated, err := svc.UpdateTask(context.Background(), userID, task.ID, &dto.UpdateTaskRequest{
		IsCompleted: &completed,
	})
	require.NoError(t, err)

	// only the sent field changed, and updatedAt never moves backwards
	assert.True(t, updated.IsCompleted)
	assert.False(t, updated.UpdatedAt.Before(task.UpdatedAt))
	assert.Equal(t, "Milk", updated.Title)
	assert.Equal(t, "2 liters", updated.Description)
	require.NotNil(t, updated.DueDate)
	assert.True(t, due.Equal(*updated.DueDate))
	assert.Equal(t, models.PriorityP3, updated.Priority)
	assert.False(t, updated.IsImportant)
}

func TestUpdateTaskMultipleFields(t *testing.T) {
	listRepo, taskRepo, events := newTestRepos()
	svc := NewTaskService(taskRepo, listRepo, events)

	userID := uuid.New()
	list := seedList(t, listRepo, userID, "Groceries")

	task, err := svc.CreateTask(context.Background(), userID, &dto.CreateTaskRequest{
		ListID: list.ID,
		Title:  "Milk",
	})
	require.NoError(t, err)

	title := "Oat milk"
	important := true
	priority := "P1"
	updated, err := svc.UpdateTask(context.Background(), userID, task.ID, &dto.UpdateTaskRequest{
		Title:       &title,
		IsImportant: &important,
		Priority:    &priority,
	})
	require.NoError(t, err)

	assert.Equal(t, "Oat milk", updated.Title)
	assert.True(t, updated.IsImportant)
	assert.Equal(t, models.PriorityP1, updated.Priority)
	assert.False(t, updated.IsCompleted)
}

func TestUpdateTaskMoveBetweenOwnLists(t *testing.T) {
	listRepo, taskRepo, events := newTestRepos()
	svc := NewTaskService(taskRepo, listRepo, events)

	userID := uuid.New()
	src := seedList(t, listRepo, userID, "Inbox")
	dst := seedList(t, listRepo, userID, "Groceries")

	task, err := svc.CreateTask(context.Background(), userID, &dto.CreateTaskRequest{
		ListID: src.ID,
		Title:  "Milk",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateTask(context.Background(), userID, task.ID, &dto.UpdateTaskRequest{
		ListID: &dst.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, dst.ID, updated.ListID)
}

func TestUpdateTaskMoveToForeignList(t *testing.T) {
	listRepo, taskRepo, events := newTestRepos()
	svc := NewTaskService(taskRepo, listRepo, events)

	userID := uuid.New()
	src := seedList(t, listRepo, userID, "Inbox")
	foreign := seedList(t, listRepo, uuid.New(), "Theirs")

	task, err := svc.CreateTask(context.Background(), userID, &dto.CreateTaskRequest{
		ListID: src.ID,
		Title:  "Milk",
	})
	require.NoError(t, err)

	_, err = svc.UpdateTask(context.Background(), userID, task.ID, &dto.UpdateTaskRequest{
		ListID: &foreign.ID,
	})
	assert.ErrorIs(t, err, services.ErrNotFound)

	// task stays in its original list
	got, err := svc.GetTask(context.Background(), userID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, src.ID, got.ListID)
}

func TestUpdateTaskNotOwned(t *testing.T) {
	listRepo, taskRepo, events := newTestRepos()
	svc := NewTaskService(taskRepo, listRepo, events)

	owner := uuid.New()
	list := seedList(t, listRepo, owner, "Private")
	task, err := svc.CreateTask(context.Background(), owner, &dto.CreateTaskRequest{
		ListID: list.ID,
		Title:  "Secret",
	})
	require.NoError(t, err)

	title := "Hijacked"
	_, err = svc.UpdateTask(context.Background(), uuid.New(), task.ID, &dto.UpdateTaskRequest{
		Title: &title,
	})
	assert.ErrorIs(t, err, services.ErrNotFound)

	got, err := svc.GetTask(context.Background(), owner, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Secret", got.Title)
}

func TestDeleteTask(t *testing.T) {
	listRepo, taskRepo, events := newTestRepos()
	svc := NewTaskService(taskRepo, listRepo, events)

	userID := uuid.New()
	list := seedList(t, listRepo, userID, "Groceries")
	task, err := svc.CreateTask(context.Background(), userID, &dto.CreateTaskRequest{
		ListID: list.ID,
		Title:  "Milk",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(context.Background(), userID, task.ID))

	_, err = svc.GetTask(context.Background(), userID, task.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Equal(t, []string{ports.EventTaskCreated, ports.EventTaskDeleted}, events.types())
}

func TestDeleteTaskNotOwned(t *testing.T) {
	listRepo, taskRepo, events := newTestRepos()
	svc := NewTaskService(taskRepo, listRepo, events)

	owner := uuid.New()
	list := seedList(t, listRepo, owner, "Private")
	task, err := svc.CreateTask(context.Background(), owner, &dto.CreateTaskRequest{
		ListID: list.ID,
		Title:  "Secret",
	})
	require.NoError(t, err)

	err = svc.DeleteTask(context.Background(), uuid.New(), task.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = svc.GetTask(context.Background(), owner, task.ID)
	assert.NoError(t, err)
}
