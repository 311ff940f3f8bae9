package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/patoshub/directorio-api/internal/domain"
	"github.com/patoshub/directorio-api/internal/domain/entity"
	"github.com/patoshub/directorio-api/internal/domain/repository"
)

var _ repository.DisponibilidadRepository = (*DisponibilidadRepo)(nil)

const disponibilidadColumns = `id, negocio_id, dia_semana, hora_inicio, hora_fin, disponible, created_at, updated_at`

// DisponibilidadRepo implementación del puerto DisponibilidadRepository sobre PostgreSQL.
type DisponibilidadRepo struct {
	pool *pgxpool.Pool
}

// NewDisponibilidadRepository construye el adaptador de persistencia para disponibilidades.
func NewDisponibilidadRepository(pool *pgxpool.Pool) *DisponibilidadRepo {
	return &DisponibilidadRepo{pool: pool}
}

func scanDisponibilidad(row pgx.Row) (*entity.Disponibilidad, error) {
	var d entity.Disponibilidad
	err := row.Scan(
		&d.ID, &d.NegocioID, &d.DiaSemana, &d.HoraInicio, &d.HoraFin,
		&d.Disponible, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create persiste una disponibilidad y devuelve la fila resultante (RETURNING).
func (r *DisponibilidadRepo) Create(d *entity.Disponibilidad) (*entity.Disponibilidad, error) {
	query := `
		INSERT INTO disponibilidades (id, negocio_id, dia_semana, hora_inicio, hora_fin, disponible)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + disponibilidadColumns
	created, err := scanDisponibilidad(r.pool.QueryRow(context.Background(), query,
		d.ID, d.NegocioID, d.DiaSemana, d.HoraInicio, d.HoraFin, d.Disponible,
	))
	if err != nil {
		return nil, fmt.Errorf("insert disponibilidad: %w", err)
	}
	return created, nil
}

// List devuelve todas las disponibilidades.
func (r *DisponibilidadRepo) List() ([]*entity.Disponibilidad, error) {
	return r.queryMany(`SELECT ` + disponibilidadColumns + ` FROM disponibilidades`)
}

// GetByID obtiene una disponibilidad por ID. Devuelve nil, nil si no existe.
func (r *DisponibilidadRepo) GetByID(id string) (*entity.Disponibilidad, error) {
	d, err := scanDisponibilidad(r.pool.QueryRow(context.Background(),
		`SELECT `+disponibilidadColumns+` FROM disponibilidades WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get disponibilidad: %w", err)
	}
	return d, nil
}

// ListByNegocio lista las disponibilidades de un negocio.
func (r *DisponibilidadRepo) ListByNegocio(negocioID string) ([]*entity.Disponibilidad, error) {
	return r.queryMany(`SELECT `+disponibilidadColumns+` FROM disponibilidades WHERE negocio_id = $1`, negocioID)
}

func (r *DisponibilidadRepo) queryMany(query string, args ...any) ([]*entity.Disponibilidad, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list disponibilidades: %w", err)
	}
	defer rows.Close()
	var list []*entity.Disponibilidad
	for rows.Next() {
		d, err := scanDisponibilidad(rows)
		if err != nil {
			return nil, fmt.Errorf("scan disponibilidad: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Update aplica el patch sobre la fila y devuelve la representación resultante.
func (r *DisponibilidadRepo) Update(id string, p entity.DisponibilidadPatch) (*entity.Disponibilidad, error) {
	b := &updateBuilder{}
	setField(b, "negocio_id", p.NegocioID)
	setField(b, "dia_semana", p.DiaSemana)
	setField(b, "hora_inicio", p.HoraInicio)
	setField(b, "hora_fin", p.HoraFin)
	setField(b, "disponible", p.Disponible)
	if b.empty() {
		return nil, domain.ErrSinCampos
	}
	query, args := b.sql("disponibilidades", id, disponibilidadColumns)
	d, err := scanDisponibilidad(r.pool.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update disponibilidad: %w", err)
	}
	return d, nil
}

// Delete elimina una disponibilidad por ID. Devuelve false si no existía.
func (r *DisponibilidadRepo) Delete(id string) (bool, error) {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM disponibilidades WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete disponibilidad: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
