package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-adoption-shelter/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

const animalColumns = `
	id_animal, nombre, especie, raza, edad, sexo,
	descripcion, estado, foto_url, fecha_ingreso, activo`

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`SELECT pa_insertar_animal($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		a.Nombre,
		a.Especie,
		a.Raza,
		toNullInt(a.Edad),
		a.Sexo,
		a.Descripcion,
		string(a.Estado),
		a.FotoURL,
		toNullDate(a.FechaIngreso),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("postgres: insertar animal: %w", err)
	}
	return id, nil
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT pa_editar_animal($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		a.ID,
		a.Nombre,
		a.Especie,
		a.Raza,
		toNullInt(a.Edad),
		a.Sexo,
		a.Descripcion,
		string(a.Estado),
		a.FotoURL,
		toNullDate(a.FechaIngreso),
	).Scan(&n)
	if err != nil {
		return fmt.Errorf("postgres: editar animal: %w", err)
	}
	return affected(n, animals.ErrNotFound)
}

// GetByID lee de la tabla (no de la vista) para que los inactivos sigan accesibles.
func (r *AnimalsRepo) GetByID(ctx context.Context, id int64) (animals.Animal, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+animalColumns+` FROM animales WHERE id_animal = $1`, id)

	a, err := scanAnimal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, err
	}
	return a, nil
}

func (r *AnimalsRepo) ListActive(ctx context.Context, estado animals.Estado) ([]animals.Animal, error) {
	query := `SELECT ` + animalColumns + ` FROM vw_animales_activos`
	args := []any{}
	if estado != "" {
		query += ` WHERE estado = $1`
		args = append(args, string(estado))
	}
	query += ` ORDER BY id_animal ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AnimalsRepo) Deactivate(ctx context.Context, id int64) error {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT pa_desactivar_animal($1)`, id).Scan(&n); err != nil {
		return fmt.Errorf("postgres: desactivar animal: %w", err)
	}
	return affected(n, animals.ErrNotFound)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnimal(s scanner) (animals.Animal, error) {
	var (
		a      animals.Animal
		edad   sql.NullInt32
		estado string
		fecha  sql.NullTime
	)
	if err := s.Scan(
		&a.ID,
		&a.Nombre,
		&a.Especie,
		&a.Raza,
		&edad,
		&a.Sexo,
		&a.Descripcion,
		&estado,
		&a.FotoURL,
		&fecha,
		&a.Activo,
	); err != nil {
		return animals.Animal{}, err
	}

	a.Estado = animals.Estado(estado)
	a.FechaIngreso = fromNullDate(fecha)
	if edad.Valid {
		v := int(edad.Int32)
		a.Edad = &v
	}
	return a, nil
}

func toNullInt(v *int) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*v), Valid: true}
}
