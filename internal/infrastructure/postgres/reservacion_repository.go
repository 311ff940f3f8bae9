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

var _ repository.ReservacionRepository = (*ReservacionRepo)(nil)

const reservacionColumns = `id, cliente_id, negocio_id, fecha, hora, estado, notas, created_at, updated_at`

// ReservacionRepo implementación del puerto ReservacionRepository sobre PostgreSQL.
type ReservacionRepo struct {
	pool *pgxpool.Pool
}

// NewReservacionRepository construye el adaptador de persistencia para reservaciones.
func NewReservacionRepository(pool *pgxpool.Pool) *ReservacionRepo {
	return &ReservacionRepo{pool: pool}
}

func scanReservacion(row pgx.Row) (*entity.Reservacion, error) {
	var rv entity.Reservacion
	err := row.Scan(
		&rv.ID, &rv.ClienteID, &rv.NegocioID, &rv.Fecha, &rv.Hora,
		&rv.Estado, &rv.Notas, &rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

// Create persiste una reservación y devuelve la fila resultante (RETURNING).
func (r *ReservacionRepo) Create(rv *entity.Reservacion) (*entity.Reservacion, error) {
	query := `
		INSERT INTO reservaciones (id, cliente_id, negocio_id, fecha, hora, estado, notas)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + reservacionColumns
	created, err := scanReservacion(r.pool.QueryRow(context.Background(), query,
		rv.ID, rv.ClienteID, rv.NegocioID, rv.Fecha, rv.Hora, rv.Estado, rv.Notas,
	))
	if err != nil {
		return nil, fmt.Errorf("insert reservacion: %w", err)
	}
	return created, nil
}

// List devuelve todas las reservaciones.
func (r *ReservacionRepo) List() ([]*entity.Reservacion, error) {
	return r.queryMany(`SELECT ` + reservacionColumns + ` FROM reservaciones`)
}

// GetByID obtiene una reservación por ID. Devuelve nil, nil si no existe.
func (r *ReservacionRepo) GetByID(id string) (*entity.Reservacion, error) {
	rv, err := scanReservacion(r.pool.QueryRow(context.Background(),
		`SELECT `+reservacionColumns+` FROM reservaciones WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reservacion: %w", err)
	}
	return rv, nil
}

// ListByCliente lista las reservaciones de un cliente.
func (r *ReservacionRepo) ListByCliente(clienteID string) ([]*entity.Reservacion, error) {
	return r.queryMany(`SELECT `+reservacionColumns+` FROM reservaciones WHERE cliente_id = $1`, clienteID)
}

// ListByNegocio lista las reservaciones de un negocio.
func (r *ReservacionRepo) ListByNegocio(negocioID string) ([]*entity.Reservacion, error) {
	return r.queryMany(`SELECT `+reservacionColumns+` FROM reservaciones WHERE negocio_id = $1`, negocioID)
}

func (r *ReservacionRepo) queryMany(query string, args ...any) ([]*entity.Reservacion, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Reservacion
	for rows.Next() {
		rv, err := scanReservacion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservacion: %w", err)
		}
		list = append(list, rv)
	}
	return list, rows.Err()
}

// Update aplica el patch sobre la fila y devuelve la representación resultante.
func (r *ReservacionRepo) Update(id string, p entity.ReservacionPatch) (*entity.Reservacion, error) {
	b := &updateBuilder{}
	setField(b, "cliente_id", p.ClienteID)
	setField(b, "negocio_id", p.NegocioID)
	setField(b, "fecha", p.Fecha)
	setField(b, "hora", p.Hora)
	setField(b, "estado", p.Estado)
	setField(b, "notas", p.Notas)
	if b.empty() {
		return nil, domain.ErrSinCampos
	}
	query, args := b.sql("reservaciones", id, reservacionColumns)
	rv, err := scanReservacion(r.pool.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update reservacion: %w", err)
	}
	return rv, nil
}

// Delete elimina una reservación por ID. Devuelve false si no existía.
func (r *ReservacionRepo) Delete(id string) (bool, error) {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM reservaciones WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete reservacion: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
