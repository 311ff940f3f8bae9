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

var _ repository.NegocioRepository = (*NegocioRepo)(nil)

const negocioColumns = `id, nombre, direccion, telefono, pagina_web, latitud, longitud,
	icono_uri, banner_uri, dueno_id, categoria, categoria2, estado, descripcion, email,
	horarios, color_primario, color_secundario, redes_sociales, informacion_adicional,
	destacado, fecha_inicio_activacion, fecha_fin_activacion, ocultar_al_cumplir_mes,
	visible_en_directorio, fecha_inicio_suscripcion, fecha_fin_suscripcion,
	suscripcion_activa, created_at, updated_at`

// NegocioRepo implementación del puerto NegocioRepository sobre PostgreSQL.
type NegocioRepo struct {
	pool *pgxpool.Pool
}

// NewNegocioRepository construye el adaptador de persistencia para negocios.
func NewNegocioRepository(pool *pgxpool.Pool) *NegocioRepo {
	return &NegocioRepo{pool: pool}
}

func scanNegocio(row pgx.Row) (*entity.Negocio, error) {
	var n entity.Negocio
	err := row.Scan(
		&n.ID, &n.Nombre, &n.Direccion, &n.Telefono, &n.PaginaWeb, &n.Latitud, &n.Longitud,
		&n.IconoURI, &n.BannerURI, &n.DuenoID, &n.Categoria, &n.Categoria2, &n.Estado,
		&n.Descripcion, &n.Email, &n.Horarios, &n.ColorPrimario, &n.ColorSecundario,
		&n.RedesSociales, &n.InformacionAdicional, &n.Destacado, &n.FechaInicioActivacion,
		&n.FechaFinActivacion, &n.OcultarAlCumplirMes, &n.VisibleEnDirectorio,
		&n.FechaInicioSuscripcion, &n.FechaFinSuscripcion, &n.SuscripcionActiva,
		&n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Create persiste un negocio y devuelve la fila resultante (RETURNING).
func (r *NegocioRepo) Create(n *entity.Negocio) (*entity.Negocio, error) {
	query := `
		INSERT INTO negocios (
			id, nombre, direccion, telefono, pagina_web, latitud, longitud, icono_uri, banner_uri,
			dueno_id, categoria, categoria2, estado, descripcion, email, horarios,
			color_primario, color_secundario, redes_sociales, informacion_adicional, destacado,
			fecha_inicio_activacion, fecha_fin_activacion, ocultar_al_cumplir_mes, visible_en_directorio,
			fecha_inicio_suscripcion, fecha_fin_suscripcion, suscripcion_activa
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23, $24, $25, $26, $27, $28
		) RETURNING ` + negocioColumns
	created, err := scanNegocio(r.pool.QueryRow(context.Background(), query,
		n.ID, n.Nombre, n.Direccion, n.Telefono, n.PaginaWeb, n.Latitud, n.Longitud,
		n.IconoURI, n.BannerURI, n.DuenoID, n.Categoria, n.Categoria2, n.Estado,
		n.Descripcion, n.Email, n.Horarios, n.ColorPrimario, n.ColorSecundario,
		n.RedesSociales, n.InformacionAdicional, n.Destacado, n.FechaInicioActivacion,
		n.FechaFinActivacion, n.OcultarAlCumplirMes, n.VisibleEnDirectorio,
		n.FechaInicioSuscripcion, n.FechaFinSuscripcion, n.SuscripcionActiva,
	))
	if err != nil {
		return nil, fmt.Errorf("insert negocio: %w", err)
	}
	return created, nil
}

// List devuelve todos los negocios.
func (r *NegocioRepo) List() ([]*entity.Negocio, error) {
	return r.queryMany(`SELECT ` + negocioColumns + ` FROM negocios`)
}

// GetByID obtiene un negocio por ID. Devuelve nil, nil si no existe.
func (r *NegocioRepo) GetByID(id string) (*entity.Negocio, error) {
	n, err := scanNegocio(r.pool.QueryRow(context.Background(),
		`SELECT `+negocioColumns+` FROM negocios WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get negocio: %w", err)
	}
	return n, nil
}

// ListByDueno lista los negocios de un dueño.
func (r *NegocioRepo) ListByDueno(duenoID string) ([]*entity.Negocio, error) {
	return r.queryMany(`SELECT `+negocioColumns+` FROM negocios WHERE dueno_id = $1`, duenoID)
}

func (r *NegocioRepo) queryMany(query string, args ...any) ([]*entity.Negocio, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list negocios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Negocio
	for rows.Next() {
		n, err := scanNegocio(rows)
		if err != nil {
			return nil, fmt.Errorf("scan negocio: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// Update aplica el patch sobre la fila y devuelve la representación resultante.
func (r *NegocioRepo) Update(id string, p entity.NegocioPatch) (*entity.Negocio, error) {
	b := &updateBuilder{}
	setField(b, "nombre", p.Nombre)
	setField(b, "direccion", p.Direccion)
	setField(b, "telefono", p.Telefono)
	setField(b, "pagina_web", p.PaginaWeb)
	setField(b, "latitud", p.Latitud)
	setField(b, "longitud", p.Longitud)
	setField(b, "icono_uri", p.IconoURI)
	setField(b, "banner_uri", p.BannerURI)
	setField(b, "dueno_id", p.DuenoID)
	setField(b, "categoria", p.Categoria)
	setField(b, "categoria2", p.Categoria2)
	setField(b, "estado", p.Estado)
	setField(b, "descripcion", p.Descripcion)
	setField(b, "email", p.Email)
	setField(b, "horarios", p.Horarios)
	setField(b, "color_primario", p.ColorPrimario)
	setField(b, "color_secundario", p.ColorSecundario)
	setField(b, "redes_sociales", p.RedesSociales)
	setField(b, "informacion_adicional", p.InformacionAdicional)
	setField(b, "destacado", p.Destacado)
	setField(b, "fecha_inicio_activacion", p.FechaInicioActivacion)
	setField(b, "fecha_fin_activacion", p.FechaFinActivacion)
	setField(b, "ocultar_al_cumplir_mes", p.OcultarAlCumplirMes)
	setField(b, "visible_en_directorio", p.VisibleEnDirectorio)
	setField(b, "fecha_inicio_suscripcion", p.FechaInicioSuscripcion)
	setField(b, "fecha_fin_suscripcion", p.FechaFinSuscripcion)
	setField(b, "suscripcion_activa", p.SuscripcionActiva)
	if b.empty() {
		return nil, domain.ErrSinCampos
	}
	query, args := b.sql("negocios", id, negocioColumns)
	n, err := scanNegocio(r.pool.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update negocio: %w", err)
	}
	return n, nil
}

// Delete elimina un negocio por ID. Devuelve false si no existía.
// No cascada: productos, reservaciones y disponibilidades quedan huérfanos.
func (r *NegocioRepo) Delete(id string) (bool, error) {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM negocios WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete negocio: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
