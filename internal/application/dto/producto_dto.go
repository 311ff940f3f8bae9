package dto

import "github.com/patoshub/directorio-api/pkg/patch"

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID          string  `json:"id"`
	NegocioID   string  `json:"negocioId"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Precio      float64 `json:"precio"`
	ImagenURI   *string `json:"imagenUri"`
	Stock       *int    `json:"stock"`
	Categoria   *string `json:"categoria"`
}

// CreateProductoRequest alta de un producto. precio va por puntero para
// distinguir "ausente" de 0: es obligatorio.
type CreateProductoRequest struct {
	NegocioID   string   `json:"negocioId" validate:"required"`
	Nombre      string   `json:"nombre" validate:"required"`
	Descripcion *string  `json:"descripcion"`
	Precio      *float64 `json:"precio" validate:"required"`
	ImagenURI   *string  `json:"imagenUri"`
	Stock       *int     `json:"stock"`
	Categoria   *string  `json:"categoria"`
}

// UpdateProductoRequest actualización parcial de un producto.
type UpdateProductoRequest struct {
	NegocioID   patch.Field[string]  `json:"negocioId"`
	Nombre      patch.Field[string]  `json:"nombre"`
	Descripcion patch.Field[string]  `json:"descripcion"`
	Precio      patch.Field[float64] `json:"precio"`
	ImagenURI   patch.Field[string]  `json:"imagenUri"`
	Stock       patch.Field[int]     `json:"stock"`
	Categoria   patch.Field[string]  `json:"categoria"`
}
