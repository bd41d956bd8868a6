package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-adoption-shelter/internal/domain/history"
)

type HistoryRepo struct {
	db *sql.DB
}

func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

const historyColumns = `id_historial, id_animal, fecha, diagnostico, tratamiento, veterinario, notas`

func (r *HistoryRepo) Create(ctx context.Context, e history.Entry) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`SELECT pa_insertar_historial_medico($1,$2,$3,$4,$5,$6)`,
		e.AnimalID, e.Fecha, e.Diagnostico, e.Tratamiento, e.Veterinario, e.Notas,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("postgres: insertar historial: %w", err)
	}
	return id, nil
}

func (r *HistoryRepo) Update(ctx context.Context, e history.Entry) error {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT pa_editar_historial_medico($1,$2,$3,$4,$5,$6,$7)`,
		e.ID, e.AnimalID, e.Fecha, e.Diagnostico, e.Tratamiento, e.Veterinario, e.Notas,
	).Scan(&n)
	if err != nil {
		return fmt.Errorf("postgres: editar historial: %w", err)
	}
	return affected(n, history.ErrNotFound)
}

func (r *HistoryRepo) GetByID(ctx context.Context, id int64) (history.Entry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+historyColumns+` FROM vw_historial WHERE id_historial = $1`, id)

	var e history.Entry
	if err := row.Scan(&e.ID, &e.AnimalID, &e.Fecha, &e.Diagnostico, &e.Tratamiento, &e.Veterinario, &e.Notas); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return history.Entry{}, history.ErrNotFound
		}
		return history.Entry{}, err
	}
	return e, nil
}

func (r *HistoryRepo) List(ctx context.Context) ([]history.Entry, error) {
	return r.query(ctx, `SELECT `+historyColumns+` FROM vw_historial ORDER BY fecha DESC, id_historial DESC`)
}

func (r *HistoryRepo) ListByAnimal(ctx context.Context, animalID int64) ([]history.Entry, error) {
	return r.query(ctx,
		`SELECT `+historyColumns+` FROM vw_historial WHERE id_animal = $1 ORDER BY fecha DESC, id_historial DESC`,
		animalID)
}

func (r *HistoryRepo) Delete(ctx context.Context, id int64) error {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT pa_eliminar_historial_medico($1)`, id).Scan(&n); err != nil {
		return fmt.Errorf("postgres: eliminar historial: %w", err)
	}
	return affected(n, history.ErrNotFound)
}

func (r *HistoryRepo) query(ctx context.Context, q string, args ...any) ([]history.Entry, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]history.Entry, 0)
	for rows.Next() {
		var e history.Entry
		if err := rows.Scan(&e.ID, &e.AnimalID, &e.Fecha, &e.Diagnostico, &e.Tratamiento, &e.Veterinario, &e.Notas); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
