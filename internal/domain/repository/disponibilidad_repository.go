package repository

import "github.com/patoshub/directorio-api/internal/domain/entity"

// DisponibilidadRepository define el puerto de persistencia para Disponibilidad.
type DisponibilidadRepository interface {
	Create(d *entity.Disponibilidad) (*entity.Disponibilidad, error)
	List() ([]*entity.Disponibilidad, error)
	GetByID(id string) (*entity.Disponibilidad, error)
	ListByNegocio(negocioID string) ([]*entity.Disponibilidad, error)
	Update(id string, p entity.DisponibilidadPatch) (*entity.Disponibilidad, error)
	Delete(id string) (bool, error)
}
