package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-adoption-shelter/internal/domain/users"
	"pet-adoption-shelter/internal/ports/auth"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

const userColumns = `id_usuario, nombre, correo, telefono, direccion, rol, password_hash, estado, fecha_registro`

func (r *UsersRepo) Create(ctx context.Context, u users.User) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`SELECT pa_insertar_usuario($1,$2,$3,$4,$5,$6,$7)`,
		u.Nombre, u.Correo, u.Telefono, u.Direccion, string(u.Rol), u.PasswordHash, u.FechaRegistro,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, users.ErrDuplicateEmail
		}
		return 0, fmt.Errorf("postgres: insertar usuario: %w", err)
	}
	return id, nil
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT pa_actualizar_usuario($1,$2,$3,$4,$5,$6)`,
		u.ID, u.Nombre, u.Correo, u.Telefono, u.Direccion, string(u.Rol),
	).Scan(&n)
	if err != nil {
		if isUniqueViolation(err) {
			return users.ErrDuplicateEmail
		}
		return fmt.Errorf("postgres: actualizar usuario: %w", err)
	}
	return affected(n, users.ErrNotFound)
}

func (r *UsersRepo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT pa_actualizar_contrasena($1,$2)`, id, hash).Scan(&n); err != nil {
		return fmt.Errorf("postgres: actualizar contraseña: %w", err)
	}
	return affected(n, users.ErrNotFound)
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM usuarios WHERE id_usuario = $1`, id)
}

// GetByCorreo compara exacto: el correo se busca tal como fue guardado.
func (r *UsersRepo) GetByCorreo(ctx context.Context, correo string) (users.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM usuarios WHERE correo = $1`, correo)
}

func (r *UsersRepo) ListActive(ctx context.Context) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM vw_usuarios_activos ORDER BY id_usuario`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UsersRepo) Deactivate(ctx context.Context, id int64) error {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT pa_desactivar_usuario($1)`, id).Scan(&n); err != nil {
		return fmt.Errorf("postgres: desactivar usuario: %w", err)
	}
	return affected(n, users.ErrNotFound)
}

func (r *UsersRepo) getOne(ctx context.Context, q string, arg any) (users.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, q, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return u, nil
}

func scanUser(s scanner) (users.User, error) {
	var (
		u      users.User
		rol    string
		estado string
	)
	if err := s.Scan(&u.ID, &u.Nombre, &u.Correo, &u.Telefono, &u.Direccion, &rol, &u.PasswordHash, &estado, &u.FechaRegistro); err != nil {
		return users.User{}, err
	}
	u.Rol = auth.Role(rol)
	u.Estado = users.Estado(estado)
	return u, nil
}
