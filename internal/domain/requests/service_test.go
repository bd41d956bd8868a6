package requests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	nextID int64
	byID   map[int64]Request
}

func newTestRepo() *testRepo { return &testRepo{byID: map[int64]Request{}} }

func (r *testRepo) Create(ctx context.Context, req Request) (int64, error) {
	r.nextID++
	req.ID = r.nextID
	r.byID[req.ID] = req
	return req.ID, nil
}

func (r *testRepo) Update(ctx context.Context, req Request) error {
	if _, ok := r.byID[req.ID]; !ok {
		return ErrNotFound
	}
	r.byID[req.ID] = req
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Request, error) {
	req, ok := r.byID[id]
	if !ok {
		return Request{}, ErrNotFound
	}
	return req, nil
}

func (r *testRepo) ListActive(ctx context.Context, estado Estado) ([]Request, error) {
	out := make([]Request, 0)
	for id := int64(1); id <= r.nextID; id++ {
		req, ok := r.byID[id]
		if !ok || !req.Activo || (estado != "" && req.Estado != estado) {
			continue
		}
		out = append(out, req)
	}
	return out, nil
}

func (r *testRepo) ListActiveByUser(ctx context.Context, userID int64) ([]Request, error) {
	all, _ := r.ListActive(ctx, "")
	out := make([]Request, 0)
	for _, req := range all {
		if req.UsuarioID == userID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *testRepo) Deactivate(ctx context.Context, id int64) error {
	req, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	req.Activo = false
	r.byID[id] = req
	return nil
}

type fakeAnimals map[int64]bool

func (f fakeAnimals) IsAvailable(ctx context.Context, id int64) (bool, error) { return f[id], nil }

func newTestService(enforce bool) *Service {
	svc := NewService(newTestRepo(), fakeAnimals{1: true, 2: false}, Options{EnforceTransitions: enforce})
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

// -------------------------
// Tests
// -------------------------

func TestCreate_StartsPendiente(t *testing.T) {
	svc := newTestService(false)

	req, err := svc.Create(context.Background(), 7, 1, " me encantan los perros ")
	require.NoError(t, err)
	assert.Equal(t, int64(1), req.ID)
	assert.Equal(t, int64(7), req.UsuarioID)
	assert.Equal(t, EstadoPendiente, req.Estado)
	assert.True(t, req.Activo)
	assert.Equal(t, "me encantan los perros", req.Observaciones)
	assert.Equal(t, 2025, req.FechaSolicitud.Year())
}

func TestCreate_AnimalNotAvailable(t *testing.T) {
	svc := newTestService(false)
	ctx := context.Background()

	_, err := svc.Create(ctx, 7, 2, "")
	assert.ErrorIs(t, err, ErrAnimalNotAvailable)

	_, err = svc.Create(ctx, 7, 99, "")
	assert.ErrorIs(t, err, ErrAnimalNotAvailable)

	_, err = svc.Create(ctx, 0, 1, "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	mine, err := svc.ListByUser(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestUpdate_LegacyAllowsAnyValidEstado(t *testing.T) {
	svc := newTestService(false)
	ctx := context.Background()

	req, _ := svc.Create(ctx, 7, 1, "obs")

	// RECHAZADA -> APROBADA no respeta el grafo, pero sin enforcement se permite.
	_, err := svc.Update(ctx, req.ID, EstadoRechazada, nil)
	require.NoError(t, err)
	out, err := svc.Update(ctx, req.ID, EstadoAprobada, nil)
	require.NoError(t, err)
	assert.Equal(t, EstadoAprobada, out.Estado)
	assert.Equal(t, "obs", out.Observaciones)

	_, err = svc.Update(ctx, req.ID, "ACEPTADA", nil)
	assert.ErrorIs(t, err, ErrInvalidEstado)

	_, err = svc.Update(ctx, 40, EstadoAprobada, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_EnforcedTransitions(t *testing.T) {
	svc := newTestService(true)
	ctx := context.Background()

	req, _ := svc.Create(ctx, 7, 1, "")
	nota := "visita ok"

	out, err := svc.Update(ctx, req.ID, EstadoAprobada, &nota)
	require.NoError(t, err)
	assert.Equal(t, "visita ok", out.Observaciones)

	_, err = svc.Update(ctx, req.ID, EstadoRechazada, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.Update(ctx, req.ID, EstadoCompletada, nil)
	require.NoError(t, err)

	// terminal
	_, err = svc.Update(ctx, req.ID, EstadoCancelada, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(EstadoPendiente, EstadoAprobada))
	assert.True(t, CanTransition(EstadoPendiente, EstadoCancelada))
	assert.True(t, CanTransition(EstadoAprobada, EstadoCompletada))
	assert.True(t, CanTransition(EstadoRechazada, EstadoRechazada))
	assert.False(t, CanTransition(EstadoPendiente, EstadoCompletada))
	assert.False(t, CanTransition(EstadoCompletada, EstadoPendiente))
	assert.False(t, CanTransition("X", EstadoPendiente))
}

func TestDeactivate_HidesFromLists(t *testing.T) {
	svc := newTestService(false)
	ctx := context.Background()

	a, _ := svc.Create(ctx, 7, 1, "")
	_, _ = svc.Create(ctx, 8, 1, "")

	require.NoError(t, svc.Deactivate(ctx, a.ID))

	got, err := svc.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, got.Activo)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	mine, err := svc.ListByUser(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, mine)

	_, err = svc.List(ctx, "nope")
	assert.ErrorIs(t, err, ErrInvalidEstado)
}
