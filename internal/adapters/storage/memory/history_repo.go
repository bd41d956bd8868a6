package memory

import (
	"context"
	"sort"
	"sync"

	"pet-adoption-shelter/internal/domain/history"
)

type historyRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]history.Entry
}

func NewHistoryRepo() history.Repository {
	return &historyRepo{
		byID: make(map[int64]history.Entry),
	}
}

func (r *historyRepo) Create(ctx context.Context, e history.Entry) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	e.ID = r.nextID
	r.byID[e.ID] = e
	return e.ID, nil
}

func (r *historyRepo) Update(ctx context.Context, e history.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[e.ID]; !exists {
		return history.ErrNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *historyRepo) GetByID(ctx context.Context, id int64) (history.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return history.Entry{}, history.ErrNotFound
	}
	return e, nil
}

func (r *historyRepo) List(ctx context.Context) ([]history.Entry, error) {
	return r.filter(func(history.Entry) bool { return true }), nil
}

func (r *historyRepo) ListByAnimal(ctx context.Context, animalID int64) ([]history.Entry, error) {
	return r.filter(func(e history.Entry) bool { return e.AnimalID == animalID }), nil
}

func (r *historyRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return history.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// filter devuelve las entradas que cumplen keep, por fecha desc.
func (r *historyRepo) filter(keep func(history.Entry) bool) []history.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]history.Entry, 0)
	for _, e := range r.byID {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Fecha.Equal(out[j].Fecha) {
			return out[i].ID > out[j].ID
		}
		return out[i].Fecha.After(out[j].Fecha)
	})
	return out
}
