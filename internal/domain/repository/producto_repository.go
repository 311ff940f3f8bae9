package repository

import "github.com/patoshub/directorio-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto.
type ProductoRepository interface {
	Create(p *entity.Producto) (*entity.Producto, error)
	List() ([]*entity.Producto, error)
	GetByID(id string) (*entity.Producto, error)
	ListByNegocio(negocioID string) ([]*entity.Producto, error)
	Update(id string, patch entity.ProductoPatch) (*entity.Producto, error)
	Delete(id string) (bool, error)
}
