package serviceimpl

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tasklist-api/domain/models"
	"tasklist-api/domain/ports"
)

// In-memory repository fakes. Ownership semantics mirror the postgres
// implementations: a row owned by someone else behaves exactly like a row that
// does not exist.

type fakeListRepo struct {
	mu    sync.Mutex
	lists map[uuid.UUID]*models.List
	tasks *fakeTaskRepo // สำหรับ cascade delete
}

func newFakeListRepo(tasks *fakeTaskRepo) *fakeListRepo {
	return &fakeListRepo{
		lists: make(map[uuid.UUID]*models.List),
		tasks: tasks,
	}
}

func (r *fakeListRepo) Create(ctx context.Context, list *models.List) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *list
	r.lists[list.ID] = &cp
	return nil
}

func (r *fakeListRepo) GetForUser(ctx context.Context, id, userID uuid.UUID) (*models.List, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, ok := r.lists[id]
	if !ok || list.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *list
	return &cp, nil
}

func (r *fakeListRepo) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.List, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.List
	for _, list := range r.lists {
		if list.UserID == userID {
			cp := *list
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeListRepo) DeleteWithTasks(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tasks != nil {
		r.tasks.deleteByListID(id)
	}
	delete(r.lists, id)
	return nil
}

type fakeTaskRepo struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]*models.Task
	owner *fakeListRepo // resolve ownership ผ่าน list เหมือน JOIN
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uuid.UUID]*models.Task)}
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *task
	r.tasks[task.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) GetForUser(ctx context.Context, id, userID uuid.UUID) (*models.Task, error) {
	r.mu.Lock()
	task, ok := r.tasks[id]
	if !ok {
		r.mu.Unlock()
		return nil, gorm.ErrRecordNotFound
	}
	cp := *task
	r.mu.Unlock()

	if r.owner == nil {
		return &cp, nil
	}
	if _, err := r.owner.GetForUser(ctx, cp.ListID, userID); err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &cp, nil
}

func (r *fakeTaskRepo) GetByListID(ctx context.Context, listID uuid.UUID) ([]*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Task
	for _, task := range r.tasks {
		if task.ListID == listID {
			cp := *task
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[task.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *task
	r.tasks[task.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) CountByListID(ctx context.Context, listID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, task := range r.tasks {
		if task.ListID == listID {
			n++
		}
	}
	return n, nil
}

func (r *fakeTaskRepo) deleteByListID(listID uuid.UUID) {
	for id, task := range r.tasks {
		if task.ListID == listID {
			delete(r.tasks, id)
		}
	}
}

type fakeEventPublisher struct {
	mu     sync.Mutex
	events []*ports.EntityEvent
}

func (p *fakeEventPublisher) Publish(ctx context.Context, event *ports.EntityEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *fakeEventPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

// newTestRepos wires the fakes together the way the real schema links tasks to lists.
func newTestRepos() (*fakeListRepo, *fakeTaskRepo, *fakeEventPublisher) {
	taskRepo := newFakeTaskRepo()
	listRepo := newFakeListRepo(taskRepo)
	taskRepo.owner = listRepo
	return listRepo, taskRepo, &fakeEventPublisher{}
}
