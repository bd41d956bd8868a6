package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	nextID int64
	byID   map[int64]Entry
}

func newTestRepo() *testRepo { return &testRepo{byID: map[int64]Entry{}} }

func (r *testRepo) Create(ctx context.Context, e Entry) (int64, error) {
	r.nextID++
	e.ID = r.nextID
	r.byID[e.ID] = e
	return e.ID, nil
}

func (r *testRepo) Update(ctx context.Context, e Entry) error {
	if _, ok := r.byID[e.ID]; !ok {
		return ErrNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Entry, error) {
	e, ok := r.byID[id]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return e, nil
}

func (r *testRepo) List(ctx context.Context) ([]Entry, error) {
	out := make([]Entry, 0, len(r.byID))
	for id := int64(1); id <= r.nextID; id++ {
		if e, ok := r.byID[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *testRepo) ListByAnimal(ctx context.Context, animalID int64) ([]Entry, error) {
	all, _ := r.List(ctx)
	out := make([]Entry, 0)
	for _, e := range all {
		if e.AnimalID == animalID {
			out = append(out, e)
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

type fakeAnimals map[int64]bool

func (f fakeAnimals) Exists(ctx context.Context, id int64) (bool, error) { return f[id], nil }

func date(s string) *time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return &t
}

func TestCreate_RequiresExistingAnimal(t *testing.T) {
	svc := NewService(newTestRepo(), fakeAnimals{1: true})
	ctx := context.Background()

	e, err := svc.Create(ctx, Input{AnimalID: 1, Fecha: date("2025-01-02"), Diagnostico: " Otitis "})
	require.NoError(t, err)
	assert.Equal(t, int64(1), e.ID)
	assert.Equal(t, "Otitis", e.Diagnostico)

	_, err = svc.Create(ctx, Input{AnimalID: 9, Fecha: date("2025-01-02"), Diagnostico: "x"})
	assert.ErrorIs(t, err, ErrAnimalNotFound)
}

func TestCreate_RequiredFields(t *testing.T) {
	svc := NewService(newTestRepo(), fakeAnimals{1: true})

	for name, in := range map[string]Input{
		"sin animal":      {Fecha: date("2025-01-02"), Diagnostico: "x"},
		"sin fecha":       {AnimalID: 1, Diagnostico: "x"},
		"sin diagnostico": {AnimalID: 1, Fecha: date("2025-01-02"), Diagnostico: "  "},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestListByAnimal_AndHardDelete(t *testing.T) {
	svc := NewService(newTestRepo(), fakeAnimals{1: true, 2: true})
	ctx := context.Background()

	a, _ := svc.Create(ctx, Input{AnimalID: 1, Fecha: date("2025-01-02"), Diagnostico: "a"})
	_, _ = svc.Create(ctx, Input{AnimalID: 2, Fecha: date("2025-01-03"), Diagnostico: "b"})
	_, _ = svc.Create(ctx, Input{AnimalID: 1, Fecha: date("2025-01-04"), Diagnostico: "c"})

	items, err := svc.ListByAnimal(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	require.NoError(t, svc.Delete(ctx, a.ID))
	_, err = svc.Get(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	items, _ = svc.ListByAnimal(ctx, 1)
	assert.Len(t, items, 1)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(newTestRepo(), fakeAnimals{1: true})
	_, err := svc.Update(context.Background(), 5, Input{AnimalID: 1, Fecha: date("2025-01-02"), Diagnostico: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}
