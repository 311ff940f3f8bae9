package usecase

import (
	"github.com/google/uuid"

	"github.com/patoshub/directorio-api/internal/application/dto"
	"github.com/patoshub/directorio-api/internal/domain/entity"
	"github.com/patoshub/directorio-api/internal/domain/repository"
)

// ReservacionUseCase gestión de reservaciones de clientes en negocios.
type ReservacionUseCase struct {
	repo repository.ReservacionRepository
}

// NewReservacionUseCase crea el caso de uso de reservaciones.
func NewReservacionUseCase(repo repository.ReservacionRepository) *ReservacionUseCase {
	return &ReservacionUseCase{repo: repo}
}

// List devuelve todas las reservaciones.
func (uc *ReservacionUseCase) List() ([]dto.ReservacionResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReservacionResponse, 0, len(items))
	for _, r := range items {
		out = append(out, toReservacionResponse(r))
	}
	return out, nil
}

// GetByID devuelve una reservación por id, o nil si no existe.
func (uc *ReservacionUseCase) GetByID(id string) (*dto.ReservacionResponse, error) {
	r, err := uc.repo.GetByID(id)
	if err != nil || r == nil {
		return nil, err
	}
	resp := toReservacionResponse(r)
	return &resp, nil
}

// ListByCliente devuelve las reservaciones hechas por un cliente.
func (uc *ReservacionUseCase) ListByCliente(clienteID string) ([]dto.ReservacionResponse, error) {
	items, err := uc.repo.ListByCliente(clienteID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReservacionResponse, 0, len(items))
	for _, r := range items {
		out = append(out, toReservacionResponse(r))
	}
	return out, nil
}

// ListByNegocio devuelve las reservaciones recibidas por un negocio.
func (uc *ReservacionUseCase) ListByNegocio(negocioID string) ([]dto.ReservacionResponse, error) {
	items, err := uc.repo.ListByNegocio(negocioID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReservacionResponse, 0, len(items))
	for _, r := range items {
		out = append(out, toReservacionResponse(r))
	}
	return out, nil
}

// Create da de alta una reservación. estado default PENDIENTE.
func (uc *ReservacionUseCase) Create(req dto.CreateReservacionRequest) (*dto.ReservacionResponse, error) {
	r := &entity.Reservacion{
		ID:        uuid.New().String(),
		ClienteID: req.ClienteID,
		NegocioID: req.NegocioID,
		Fecha:     req.Fecha,
		Hora:      req.Hora,
		Estado:    defaultString(req.Estado, entity.EstadoPendiente),
		Notas:     req.Notas,
	}
	created, err := uc.repo.Create(r)
	if err != nil {
		return nil, err
	}
	resp := toReservacionResponse(created)
	return &resp, nil
}

// Update aplica una actualización parcial de una reservación.
func (uc *ReservacionUseCase) Update(id string, req dto.UpdateReservacionRequest) (*dto.ReservacionResponse, error) {
	p := entity.ReservacionPatch{
		ClienteID: req.ClienteID,
		NegocioID: req.NegocioID,
		Fecha:     req.Fecha,
		Hora:      req.Hora,
		Estado:    req.Estado,
		Notas:     req.Notas,
	}
	updated, err := uc.repo.Update(id, p)
	if err != nil || updated == nil {
		return nil, err
	}
	resp := toReservacionResponse(updated)
	return &resp, nil
}

// Delete elimina una reservación; false si no existía.
func (uc *ReservacionUseCase) Delete(id string) (bool, error) {
	return uc.repo.Delete(id)
}

func toReservacionResponse(r *entity.Reservacion) dto.ReservacionResponse {
	return dto.ReservacionResponse{
		ID:        r.ID,
		ClienteID: r.ClienteID,
		NegocioID: r.NegocioID,
		Fecha:     r.Fecha,
		Hora:      r.Hora,
		Estado:    r.Estado,
		Notas:     r.Notas,
	}
}
