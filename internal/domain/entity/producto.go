package entity

import (
	"time"

	"github.com/patoshub/directorio-api/pkg/patch"
)

// Producto artículo ofrecido por un negocio.
type Producto struct {
	ID          string
	NegocioID   string
	Nombre      string
	Descripcion *string
	Precio      float64
	ImagenURI   *string
	Stock       *int
	Categoria   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductoPatch campos actualizables de un producto; solo los presentes se aplican.
type ProductoPatch struct {
	NegocioID   patch.Field[string]
	Nombre      patch.Field[string]
	Descripcion patch.Field[string]
	Precio      patch.Field[float64]
	ImagenURI   patch.Field[string]
	Stock       patch.Field[int]
	Categoria   patch.Field[string]
}
