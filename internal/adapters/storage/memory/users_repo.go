package memory

import (
	"context"
	"sort"
	"sync"

	"pet-adoption-shelter/internal/domain/users"
)

type userRepo struct {
	mu       sync.RWMutex
	nextID   int64
	byID     map[int64]users.User
	byCorreo map[string]int64
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byID:     make(map[int64]users.User),
		byCorreo: make(map[string]int64),
	}
}

func (r *userRepo) Create(ctx context.Context, u users.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byCorreo[u.Correo]; exists {
		return 0, users.ErrDuplicateEmail
	}
	r.nextID++
	u.ID = r.nextID
	r.byID[u.ID] = u
	r.byCorreo[u.Correo] = u.ID
	return u.ID, nil
}

func (r *userRepo) Update(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.byID[u.ID]
	if !exists {
		return users.ErrNotFound
	}
	if owner, taken := r.byCorreo[u.Correo]; taken && owner != u.ID {
		return users.ErrDuplicateEmail
	}

	// hash y estado tienen operaciones propias
	u.PasswordHash = current.PasswordHash
	u.Estado = current.Estado
	u.FechaRegistro = current.FechaRegistro

	delete(r.byCorreo, current.Correo)
	r.byCorreo[u.Correo] = u.ID
	r.byID[u.ID] = u
	return nil
}

func (r *userRepo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return users.ErrNotFound
	}
	u.PasswordHash = hash
	r.byID[id] = u
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) GetByCorreo(ctx context.Context, correo string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byCorreo[correo]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *userRepo) ListActive(ctx context.Context) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]users.User, 0)
	for _, u := range r.byID {
		if u.Active() {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *userRepo) Deactivate(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return users.ErrNotFound
	}
	u.Estado = users.EstadoInactivo
	r.byID[id] = u
	return nil
}
