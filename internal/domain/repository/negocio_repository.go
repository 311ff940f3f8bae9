package repository

import "github.com/patoshub/directorio-api/internal/domain/entity"

// NegocioRepository define el puerto de persistencia para Negocio.
type NegocioRepository interface {
	Create(n *entity.Negocio) (*entity.Negocio, error)
	List() ([]*entity.Negocio, error)
	GetByID(id string) (*entity.Negocio, error)
	ListByDueno(duenoID string) ([]*entity.Negocio, error)
	Update(id string, p entity.NegocioPatch) (*entity.Negocio, error)
	Delete(id string) (bool, error)
}
