package usecase

import (
	"github.com/google/uuid"

	"github.com/patoshub/directorio-api/internal/application/dto"
	"github.com/patoshub/directorio-api/internal/domain"
	"github.com/patoshub/directorio-api/internal/domain/entity"
	"github.com/patoshub/directorio-api/internal/domain/repository"
)

// DisponibilidadUseCase gestión de franjas horarias semanales de los negocios.
type DisponibilidadUseCase struct {
	repo repository.DisponibilidadRepository
}

// NewDisponibilidadUseCase crea el caso de uso de disponibilidades.
func NewDisponibilidadUseCase(repo repository.DisponibilidadRepository) *DisponibilidadUseCase {
	return &DisponibilidadUseCase{repo: repo}
}

// List devuelve todas las franjas.
func (uc *DisponibilidadUseCase) List() ([]dto.DisponibilidadResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.DisponibilidadResponse, 0, len(items))
	for _, d := range items {
		out = append(out, toDisponibilidadResponse(d))
	}
	return out, nil
}

// GetByID devuelve una franja por id, o nil si no existe.
func (uc *DisponibilidadUseCase) GetByID(id string) (*dto.DisponibilidadResponse, error) {
	d, err := uc.repo.GetByID(id)
	if err != nil || d == nil {
		return nil, err
	}
	resp := toDisponibilidadResponse(d)
	return &resp, nil
}

// ListByNegocio devuelve las franjas de un negocio.
func (uc *DisponibilidadUseCase) ListByNegocio(negocioID string) ([]dto.DisponibilidadResponse, error) {
	items, err := uc.repo.ListByNegocio(negocioID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DisponibilidadResponse, 0, len(items))
	for _, d := range items {
		out = append(out, toDisponibilidadResponse(d))
	}
	return out, nil
}

// Create da de alta una franja. disponible default true.
func (uc *DisponibilidadUseCase) Create(req dto.CreateDisponibilidadRequest) (*dto.DisponibilidadResponse, error) {
	if req.DiaSemana == nil {
		return nil, domain.ErrInvalidInput
	}
	d := &entity.Disponibilidad{
		ID:         uuid.New().String(),
		NegocioID:  req.NegocioID,
		DiaSemana:  *req.DiaSemana,
		HoraInicio: req.HoraInicio,
		HoraFin:    req.HoraFin,
		Disponible: defaultBool(req.Disponible, true),
	}
	created, err := uc.repo.Create(d)
	if err != nil {
		return nil, err
	}
	resp := toDisponibilidadResponse(created)
	return &resp, nil
}

// Update aplica una actualización parcial de una franja.
func (uc *DisponibilidadUseCase) Update(id string, req dto.UpdateDisponibilidadRequest) (*dto.DisponibilidadResponse, error) {
	p := entity.DisponibilidadPatch{
		NegocioID:  req.NegocioID,
		DiaSemana:  req.DiaSemana,
		HoraInicio: req.HoraInicio,
		HoraFin:    req.HoraFin,
		Disponible: req.Disponible,
	}
	updated, err := uc.repo.Update(id, p)
	if err != nil || updated == nil {
		return nil, err
	}
	resp := toDisponibilidadResponse(updated)
	return &resp, nil
}

// Delete elimina una franja; false si no existía.
func (uc *DisponibilidadUseCase) Delete(id string) (bool, error) {
	return uc.repo.Delete(id)
}

func toDisponibilidadResponse(d *entity.Disponibilidad) dto.DisponibilidadResponse {
	return dto.DisponibilidadResponse{
		ID:         d.ID,
		NegocioID:  d.NegocioID,
		DiaSemana:  d.DiaSemana,
		HoraInicio: d.HoraInicio,
		HoraFin:    d.HoraFin,
		Disponible: d.Disponible,
	}
}
