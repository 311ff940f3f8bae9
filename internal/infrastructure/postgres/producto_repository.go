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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoColumns = `id, negocio_id, nombre, descripcion, precio, imagen_uri, stock, categoria, created_at, updated_at`

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL.
type ProductoRepo struct {
	pool *pgxpool.Pool
}

// NewProductoRepository construye el adaptador de persistencia para productos.
func NewProductoRepository(pool *pgxpool.Pool) *ProductoRepo {
	return &ProductoRepo{pool: pool}
}

func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(
		&p.ID, &p.NegocioID, &p.Nombre, &p.Descripcion, &p.Precio,
		&p.ImagenURI, &p.Stock, &p.Categoria, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un producto y devuelve la fila resultante (RETURNING).
func (r *ProductoRepo) Create(p *entity.Producto) (*entity.Producto, error) {
	query := `
		INSERT INTO productos (id, negocio_id, nombre, descripcion, precio, imagen_uri, stock, categoria)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + productoColumns
	created, err := scanProducto(r.pool.QueryRow(context.Background(), query,
		p.ID, p.NegocioID, p.Nombre, p.Descripcion, p.Precio, p.ImagenURI, p.Stock, p.Categoria,
	))
	if err != nil {
		return nil, fmt.Errorf("insert producto: %w", err)
	}
	return created, nil
}

// List devuelve todos los productos.
func (r *ProductoRepo) List() ([]*entity.Producto, error) {
	return r.queryMany(`SELECT ` + productoColumns + ` FROM productos`)
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	p, err := scanProducto(r.pool.QueryRow(context.Background(),
		`SELECT `+productoColumns+` FROM productos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// ListByNegocio lista los productos de un negocio.
func (r *ProductoRepo) ListByNegocio(negocioID string) ([]*entity.Producto, error) {
	return r.queryMany(`SELECT `+productoColumns+` FROM productos WHERE negocio_id = $1`, negocioID)
}

func (r *ProductoRepo) queryMany(query string, args ...any) ([]*entity.Producto, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update aplica el patch sobre la fila y devuelve la representación resultante.
func (r *ProductoRepo) Update(id string, patch entity.ProductoPatch) (*entity.Producto, error) {
	b := &updateBuilder{}
	setField(b, "negocio_id", patch.NegocioID)
	setField(b, "nombre", patch.Nombre)
	setField(b, "descripcion", patch.Descripcion)
	setField(b, "precio", patch.Precio)
	setField(b, "imagen_uri", patch.ImagenURI)
	setField(b, "stock", patch.Stock)
	setField(b, "categoria", patch.Categoria)
	if b.empty() {
		return nil, domain.ErrSinCampos
	}
	query, args := b.sql("productos", id, productoColumns)
	p, err := scanProducto(r.pool.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update producto: %w", err)
	}
	return p, nil
}

// Delete elimina un producto por ID. Devuelve false si no existía.
func (r *ProductoRepo) Delete(id string) (bool, error) {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete producto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
