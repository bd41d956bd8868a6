package memory

import (
	"context"
	"sort"
	"sync"

	"pet-adoption-shelter/internal/domain/requests"
)

// requestRepo no re-valida disponibilidad: en memoria alcanza con el chequeo del servicio.
type requestRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]requests.Request
}

func NewRequestRepo() requests.Repository {
	return &requestRepo{
		byID: make(map[int64]requests.Request),
	}
}

func (r *requestRepo) Create(ctx context.Context, req requests.Request) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	req.ID = r.nextID
	r.byID[req.ID] = req
	return req.ID, nil
}

func (r *requestRepo) Update(ctx context.Context, req requests.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.byID[req.ID]
	if !exists {
		return requests.ErrNotFound
	}
	// Igual que pa_actualizar_estado_solicitud: sólo estado y observaciones.
	stored.Estado = req.Estado
	stored.Observaciones = req.Observaciones
	r.byID[req.ID] = stored
	return nil
}

func (r *requestRepo) GetByID(ctx context.Context, id int64) (requests.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.byID[id]
	if !ok {
		return requests.Request{}, requests.ErrNotFound
	}
	return req, nil
}

func (r *requestRepo) ListActive(ctx context.Context, estado requests.Estado) ([]requests.Request, error) {
	return r.filter(func(req requests.Request) bool {
		return estado == "" || req.Estado == estado
	}), nil
}

func (r *requestRepo) ListActiveByUser(ctx context.Context, userID int64) ([]requests.Request, error) {
	return r.filter(func(req requests.Request) bool { return req.UsuarioID == userID }), nil
}

func (r *requestRepo) Deactivate(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.byID[id]
	if !ok {
		return requests.ErrNotFound
	}
	req.Activo = false
	r.byID[id] = req
	return nil
}

// filter sólo considera solicitudes activas, más recientes primero.
func (r *requestRepo) filter(keep func(requests.Request) bool) []requests.Request {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]requests.Request, 0)
	for _, req := range r.byID {
		if req.Activo && keep(req) {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}
