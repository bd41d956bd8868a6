package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"pet-adoption-shelter/internal/domain/animals"
	"pet-adoption-shelter/internal/domain/history"
	"pet-adoption-shelter/internal/domain/requests"
	"pet-adoption-shelter/internal/domain/tasks"
	"pet-adoption-shelter/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_UniqueCorreoUnderConcurrency(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		ok, dup int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, users.User{Correo: "a@a.com", Estado: users.EstadoActivo})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else {
				assert.ErrorIs(t, err, users.ErrDuplicateEmail)
				dup++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, 19, dup)
}

func TestUserRepo_UpdateKeepsHashAndReindexesCorreo(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	id, err := repo.Create(ctx, users.User{Correo: "a@a.com", PasswordHash: "h", Estado: users.EstadoActivo})
	require.NoError(t, err)
	_, err = repo.Create(ctx, users.User{Correo: "b@b.com", Estado: users.EstadoActivo})
	require.NoError(t, err)

	require.ErrorIs(t, repo.Update(ctx, users.User{ID: id, Correo: "b@b.com"}), users.ErrDuplicateEmail)
	require.NoError(t, repo.Update(ctx, users.User{ID: id, Correo: "c@c.com", Nombre: "Ana"}))

	got, err := repo.GetByCorreo(ctx, "c@c.com")
	require.NoError(t, err)
	assert.Equal(t, "h", got.PasswordHash)
	assert.Equal(t, users.EstadoActivo, got.Estado)

	_, err = repo.GetByCorreo(ctx, "a@a.com")
	assert.ErrorIs(t, err, users.ErrNotFound)
}

func TestAnimalRepo_SoftDelete(t *testing.T) {
	repo := NewAnimalRepo()
	ctx := context.Background()

	id, _ := repo.Create(ctx, animals.Animal{Nombre: "A", Estado: animals.EstadoDisponible, Activo: true})
	_, _ = repo.Create(ctx, animals.Animal{Nombre: "B", Estado: animals.EstadoAdoptado, Activo: true})

	require.NoError(t, repo.Deactivate(ctx, id))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, got.Activo)

	list, err := repo.ListActive(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "B", list[0].Nombre)

	assert.ErrorIs(t, repo.Deactivate(ctx, 99), animals.ErrNotFound)
}

func TestRequestRepo_ActiveByUser(t *testing.T) {
	repo := NewRequestRepo()
	ctx := context.Background()

	a, _ := repo.Create(ctx, requests.Request{UsuarioID: 1, Estado: requests.EstadoPendiente, Activo: true})
	_, _ = repo.Create(ctx, requests.Request{UsuarioID: 1, Estado: requests.EstadoAprobada, Activo: true})
	_, _ = repo.Create(ctx, requests.Request{UsuarioID: 2, Estado: requests.EstadoPendiente, Activo: true})

	require.NoError(t, repo.Deactivate(ctx, a))

	mine, err := repo.ListActiveByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, requests.EstadoAprobada, mine[0].Estado)

	pend, err := repo.ListActive(ctx, requests.EstadoPendiente)
	require.NoError(t, err)
	assert.Len(t, pend, 1)
}

func TestRequestRepo_UpdateKeepsActivo(t *testing.T) {
	repo := NewRequestRepo()
	ctx := context.Background()

	id, err := repo.Create(ctx, requests.Request{UsuarioID: 1, AnimalID: 7, Estado: requests.EstadoPendiente, Activo: true})
	require.NoError(t, err)

	// lectura previa a una baja concurrente
	stale, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NoError(t, repo.Deactivate(ctx, id))

	stale.Estado = requests.EstadoAprobada
	stale.Observaciones = "ok"
	stale.AnimalID = 99
	require.NoError(t, repo.Update(ctx, stale))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, got.Activo)
	assert.Equal(t, requests.EstadoAprobada, got.Estado)
	assert.Equal(t, "ok", got.Observaciones)
	assert.Equal(t, int64(7), got.AnimalID)

	mine, err := repo.ListActiveByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestHistoryRepo_OrderAndDelete(t *testing.T) {
	repo := NewHistoryRepo()
	ctx := context.Background()
	d := func(s string) time.Time { t, _ := time.Parse("2006-01-02", s); return t }

	old, _ := repo.Create(ctx, history.Entry{AnimalID: 1, Fecha: d("2024-01-01")})
	_, _ = repo.Create(ctx, history.Entry{AnimalID: 1, Fecha: d("2025-01-01")})

	items, err := repo.ListByAnimal(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 2025, items[0].Fecha.Year())

	require.NoError(t, repo.Delete(ctx, old))
	assert.ErrorIs(t, repo.Delete(ctx, old), history.ErrNotFound)
}

func TestTaskRepo_Filters(t *testing.T) {
	repo := NewTaskRepo()
	ctx := context.Background()
	vol := int64(7)

	_, _ = repo.Create(ctx, tasks.Task{Titulo: "a", Estado: "PENDIENTE", VoluntarioID: &vol})
	_, _ = repo.Create(ctx, tasks.Task{Titulo: "b", Estado: "COMPLETADA"})

	byVol, err := repo.ListByVolunteer(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, byVol, 1)

	done, err := repo.List(ctx, "COMPLETADA")
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, "b", done[0].Titulo)
}
