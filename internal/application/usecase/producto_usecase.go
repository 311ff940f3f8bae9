package usecase

import (
	"github.com/google/uuid"

	"github.com/patoshub/directorio-api/internal/application/dto"
	"github.com/patoshub/directorio-api/internal/domain"
	"github.com/patoshub/directorio-api/internal/domain/entity"
	"github.com/patoshub/directorio-api/internal/domain/repository"
)

// ProductoUseCase gestión del catálogo de productos de cada negocio.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase crea el caso de uso de productos.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// List devuelve todos los productos.
func (uc *ProductoUseCase) List() ([]dto.ProductoResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toProductoResponse(p))
	}
	return out, nil
}

// GetByID devuelve un producto por id, o nil si no existe.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil || p == nil {
		return nil, err
	}
	resp := toProductoResponse(p)
	return &resp, nil
}

// ListByNegocio devuelve los productos de un negocio.
func (uc *ProductoUseCase) ListByNegocio(negocioID string) ([]dto.ProductoResponse, error) {
	items, err := uc.repo.ListByNegocio(negocioID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toProductoResponse(p))
	}
	return out, nil
}

// Create da de alta un producto. stock default 0.
func (uc *ProductoUseCase) Create(req dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if req.Precio == nil {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Producto{
		ID:          uuid.New().String(),
		NegocioID:   req.NegocioID,
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Precio:      *req.Precio,
		ImagenURI:   req.ImagenURI,
		Stock:       defaultInt(req.Stock, 0),
		Categoria:   req.Categoria,
	}
	created, err := uc.repo.Create(p)
	if err != nil {
		return nil, err
	}
	resp := toProductoResponse(created)
	return &resp, nil
}

// Update aplica una actualización parcial de un producto.
func (uc *ProductoUseCase) Update(id string, req dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	p := entity.ProductoPatch{
		NegocioID:   req.NegocioID,
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Precio:      req.Precio,
		ImagenURI:   req.ImagenURI,
		Stock:       req.Stock,
		Categoria:   req.Categoria,
	}
	updated, err := uc.repo.Update(id, p)
	if err != nil || updated == nil {
		return nil, err
	}
	resp := toProductoResponse(updated)
	return &resp, nil
}

// Delete elimina un producto; false si no existía.
func (uc *ProductoUseCase) Delete(id string) (bool, error) {
	return uc.repo.Delete(id)
}

func toProductoResponse(p *entity.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:          p.ID,
		NegocioID:   p.NegocioID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
		ImagenURI:   p.ImagenURI,
		Stock:       p.Stock,
		Categoria:   p.Categoria,
	}
}
