package tasks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	nextID int64
	byID   map[int64]Task
}

func newTestRepo() *testRepo { return &testRepo{byID: map[int64]Task{}} }

func (r *testRepo) Create(ctx context.Context, t Task) (int64, error) {
	r.nextID++
	t.ID = r.nextID
	r.byID[t.ID] = t
	return t.ID, nil
}

func (r *testRepo) Update(ctx context.Context, t Task) error {
	if _, ok := r.byID[t.ID]; !ok {
		return ErrNotFound
	}
	r.byID[t.ID] = t
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Task, error) {
	t, ok := r.byID[id]
	if !ok {
		return Task{}, ErrNotFound
	}
	return t, nil
}

func (r *testRepo) List(ctx context.Context, estado string) ([]Task, error) {
	out := make([]Task, 0)
	for id := int64(1); id <= r.nextID; id++ {
		t, ok := r.byID[id]
		if !ok || (estado != "" && t.Estado != estado) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *testRepo) ListByVolunteer(ctx context.Context, voluntarioID int64) ([]Task, error) {
	all, _ := r.List(ctx, "")
	out := make([]Task, 0)
	for _, t := range all {
		if t.VoluntarioID != nil && *t.VoluntarioID == voluntarioID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func ptr[T any](v T) *T { return &v }

func TestCreate_DefaultEstado(t *testing.T) {
	svc := NewService(newTestRepo())

	task, err := svc.Create(context.Background(), Input{Titulo: " Limpiar caniles "})
	require.NoError(t, err)
	assert.Equal(t, "Limpiar caniles", task.Titulo)
	assert.Equal(t, EstadoPendiente, task.Estado)

	_, err = svc.Create(context.Background(), Input{Titulo: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), Input{Titulo: "x", VoluntarioID: ptr(int64(0))})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListByVolunteerAndEstado(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	_, _ = svc.Create(ctx, Input{Titulo: "a", VoluntarioID: ptr(int64(3))})
	_, _ = svc.Create(ctx, Input{Titulo: "b", VoluntarioID: ptr(int64(4)), Estado: "EN_PROCESO"})
	_, _ = svc.Create(ctx, Input{Titulo: "c", VoluntarioID: ptr(int64(3)), Estado: "EN_PROCESO"})

	mine, err := svc.ListByVolunteer(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	enProceso, err := svc.List(ctx, "EN_PROCESO")
	require.NoError(t, err)
	assert.Len(t, enProceso, 2)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdateAndDelete(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	task, _ := svc.Create(ctx, Input{Titulo: "a"})

	updated, err := svc.Update(ctx, task.ID, Input{Titulo: "a2", Estado: "COMPLETADA"})
	require.NoError(t, err)
	assert.Equal(t, "COMPLETADA", updated.Estado)

	require.NoError(t, svc.Delete(ctx, task.ID))
	_, err = svc.Get(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, task.ID), ErrNotFound)
}
