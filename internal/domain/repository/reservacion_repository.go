package repository

import "github.com/patoshub/directorio-api/internal/domain/entity"

// ReservacionRepository define el puerto de persistencia para Reservacion.
type ReservacionRepository interface {
	Create(r *entity.Reservacion) (*entity.Reservacion, error)
	List() ([]*entity.Reservacion, error)
	GetByID(id string) (*entity.Reservacion, error)
	ListByCliente(clienteID string) ([]*entity.Reservacion, error)
	ListByNegocio(negocioID string) ([]*entity.Reservacion, error)
	Update(id string, p entity.ReservacionPatch) (*entity.Reservacion, error)
	Delete(id string) (bool, error)
}
