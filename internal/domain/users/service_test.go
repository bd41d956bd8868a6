package users

import (
	"context"
	"testing"
	"time"

	"pet-adoption-shelter/internal/platform/password"
	"pet-adoption-shelter/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	nextID int64
	byID   map[int64]User
}

func newTestRepo() *testRepo { return &testRepo{byID: map[int64]User{}} }

func (r *testRepo) Create(ctx context.Context, u User) (int64, error) {
	for _, existing := range r.byID {
		if existing.Correo == u.Correo {
			return 0, ErrDuplicateEmail
		}
	}
	r.nextID++
	u.ID = r.nextID
	r.byID[u.ID] = u
	return u.ID, nil
}

func (r *testRepo) Update(ctx context.Context, u User) error {
	cur, ok := r.byID[u.ID]
	if !ok {
		return ErrNotFound
	}
	u.PasswordHash = cur.PasswordHash
	u.Estado = cur.Estado
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	u, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	u.PasswordHash = hash
	r.byID[id] = u
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) GetByCorreo(ctx context.Context, correo string) (User, error) {
	for _, u := range r.byID {
		if u.Correo == correo {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *testRepo) ListActive(ctx context.Context) ([]User, error) {
	out := make([]User, 0)
	for id := int64(1); id <= r.nextID; id++ {
		if u, ok := r.byID[id]; ok && u.Active() {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *testRepo) Deactivate(ctx context.Context, id int64) error {
	u, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	u.Estado = EstadoInactivo
	r.byID[id] = u
	return nil
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2025, 12, 1, 10, 30, 0, 0, time.UTC) }
	return svc, repo
}

// -------------------------
// Tests
// -------------------------

func TestRegister_DefaultRoleAndHash(t *testing.T) {
	svc, _ := newTestService()

	u, err := svc.Register(context.Background(), CreateInput{
		Nombre: "Ana", Correo: "a@a.com", Password: "secreta1",
	})
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdoptante, u.Rol)
	assert.Equal(t, EstadoActivo, u.Estado)
	assert.NotEqual(t, "secreta1", u.PasswordHash)
	assert.NoError(t, password.Compare(u.PasswordHash, "secreta1"))
}

func TestRegister_RoleRestrictions(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, CreateInput{Nombre: "X", Correo: "x@x.com", Password: "p", Rol: "ADMIN"})
	assert.ErrorIs(t, err, ErrRoleNotAllowed)

	_, err = svc.Register(ctx, CreateInput{Nombre: "X", Correo: "x@x.com", Password: "p", Rol: "admin"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	u, err := svc.Register(ctx, CreateInput{Nombre: "X", Correo: "x@x.com", Password: "p", Rol: "VISITANTE"})
	require.NoError(t, err)
	assert.Equal(t, auth.RoleVisitante, u.Rol)
}

func TestRegister_DuplicateAndMissingFields(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, CreateInput{Nombre: "Ana", Correo: "a@a.com", Password: "p"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, CreateInput{Nombre: "Otra", Correo: "a@a.com", Password: "p"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	_, err = svc.Register(ctx, CreateInput{Nombre: "Ana", Correo: "b@b.com"})
	assert.ErrorIs(t, err, ErrPasswordRequired)

	_, err = svc.Register(ctx, CreateInput{Correo: "c@c.com", Password: "p"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateByAdmin_AnyRole(t *testing.T) {
	svc, _ := newTestService()

	u, err := svc.CreateByAdmin(context.Background(), CreateInput{
		Nombre: "Vol", Correo: "v@v.com", Password: "p", Rol: "VOLUNTARIO",
	})
	require.NoError(t, err)
	assert.Equal(t, auth.RoleVoluntario, u.Rol)
}

func TestChangePassword_Rehashes(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	u, _ := svc.Register(ctx, CreateInput{Nombre: "Ana", Correo: "a@a.com", Password: "vieja"})
	old := repo.byID[u.ID].PasswordHash

	require.NoError(t, svc.ChangePassword(ctx, u.ID, "nueva"))
	stored := repo.byID[u.ID].PasswordHash
	assert.NotEqual(t, old, stored)
	assert.NoError(t, password.Compare(stored, "nueva"))

	assert.ErrorIs(t, svc.ChangePassword(ctx, u.ID, "  "), ErrPasswordRequired)
	assert.ErrorIs(t, svc.ChangePassword(ctx, 99, "x"), ErrNotFound)
}

func TestUpdate_KeepsPasswordAndRole(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	u, _ := svc.Register(ctx, CreateInput{Nombre: "Ana", Correo: "a@a.com", Password: "p"})
	hash := repo.byID[u.ID].PasswordHash

	out, err := svc.Update(ctx, u.ID, UpdateInput{Nombre: "Ana María", Correo: "a@a.com", Telefono: "45803695"})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", out.Nombre)
	assert.Equal(t, auth.RoleAdoptante, out.Rol)
	assert.Equal(t, hash, repo.byID[u.ID].PasswordHash)

	_, err = svc.Update(ctx, u.ID, UpdateInput{Nombre: "Ana", Correo: "a@a.com", Rol: "JEFE"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeactivate_ReadableButNotListed(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	u, _ := svc.Register(ctx, CreateInput{Nombre: "Ana", Correo: "a@a.com", Password: "p"})
	require.NoError(t, svc.Deactivate(ctx, u.ID))

	got, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, EstadoInactivo, got.Estado)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	u, created, err := svc.EnsureAdmin(ctx, "Admin", "admin@refugio.org", "cambiar")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, auth.RoleAdmin, u.Rol)

	again, created, err := svc.EnsureAdmin(ctx, "Admin", "admin@refugio.org", "otra")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, u.ID, again.ID)
}

func TestGetByCorreo_CaseAsStored(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, _ = svc.Register(ctx, CreateInput{Nombre: "Ana", Correo: "Ana@a.com", Password: "p"})

	_, err := svc.GetByCorreo(ctx, " Ana@a.com ")
	require.NoError(t, err)

	_, err = svc.GetByCorreo(ctx, "ana@a.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
