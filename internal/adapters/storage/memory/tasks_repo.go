package memory

import (
	"context"
	"sort"
	"sync"

	"pet-adoption-shelter/internal/domain/tasks"
)

type taskRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]tasks.Task
}

func NewTaskRepo() tasks.Repository {
	return &taskRepo{
		byID: make(map[int64]tasks.Task),
	}
}

func (r *taskRepo) Create(ctx context.Context, t tasks.Task) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	t.ID = r.nextID
	r.byID[t.ID] = t
	return t.ID, nil
}

func (r *taskRepo) Update(ctx context.Context, t tasks.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[t.ID]; !exists {
		return tasks.ErrNotFound
	}
	r.byID[t.ID] = t
	return nil
}

func (r *taskRepo) GetByID(ctx context.Context, id int64) (tasks.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	if !ok {
		return tasks.Task{}, tasks.ErrNotFound
	}
	return t, nil
}

func (r *taskRepo) List(ctx context.Context, estado string) ([]tasks.Task, error) {
	return r.filter(func(t tasks.Task) bool { return estado == "" || t.Estado == estado }), nil
}

func (r *taskRepo) ListByVolunteer(ctx context.Context, voluntarioID int64) ([]tasks.Task, error) {
	return r.filter(func(t tasks.Task) bool {
		return t.VoluntarioID != nil && *t.VoluntarioID == voluntarioID
	}), nil
}

func (r *taskRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return tasks.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *taskRepo) filter(keep func(tasks.Task) bool) []tasks.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tasks.Task, 0)
	for _, t := range r.byID {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
