package usecase

import (
	"github.com/google/uuid"

	"github.com/patoshub/directorio-api/internal/application/dto"
	"github.com/patoshub/directorio-api/internal/domain/entity"
	"github.com/patoshub/directorio-api/internal/domain/repository"
)

// NegocioUseCase gestión de negocios del directorio.
type NegocioUseCase struct {
	repo repository.NegocioRepository
}

// NewNegocioUseCase crea el caso de uso de negocios.
func NewNegocioUseCase(repo repository.NegocioRepository) *NegocioUseCase {
	return &NegocioUseCase{repo: repo}
}

// List devuelve todos los negocios.
func (uc *NegocioUseCase) List() ([]dto.NegocioResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.NegocioResponse, 0, len(items))
	for _, n := range items {
		out = append(out, toNegocioResponse(n))
	}
	return out, nil
}

// GetByID devuelve un negocio por id, o nil si no existe.
func (uc *NegocioUseCase) GetByID(id string) (*dto.NegocioResponse, error) {
	n, err := uc.repo.GetByID(id)
	if err != nil || n == nil {
		return nil, err
	}
	resp := toNegocioResponse(n)
	return &resp, nil
}

// ListByDueno devuelve los negocios de un dueño.
func (uc *NegocioUseCase) ListByDueno(duenoID string) ([]dto.NegocioResponse, error) {
	items, err := uc.repo.ListByDueno(duenoID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NegocioResponse, 0, len(items))
	for _, n := range items {
		out = append(out, toNegocioResponse(n))
	}
	return out, nil
}

// Create da de alta un negocio aplicando los defaults del directorio:
// coordenadas en 0, categoría General, visible y sin destacar.
func (uc *NegocioUseCase) Create(req dto.CreateNegocioRequest) (*dto.NegocioResponse, error) {
	n := &entity.Negocio{
		ID:                     uuid.New().String(),
		Nombre:                 req.Nombre,
		Direccion:              req.Direccion,
		Telefono:               req.Telefono,
		PaginaWeb:              req.PaginaWeb,
		Latitud:                defaultFloat(req.Latitud, 0),
		Longitud:               defaultFloat(req.Longitud, 0),
		IconoURI:               req.IconoURI,
		BannerURI:              req.BannerURI,
		DuenoID:                req.DuenoID,
		Categoria:              defaultString(req.Categoria, entity.CategoriaGeneral),
		Categoria2:             req.Categoria2,
		Estado:                 req.Estado,
		Descripcion:            req.Descripcion,
		Email:                  req.Email,
		Horarios:               req.Horarios,
		ColorPrimario:          req.ColorPrimario,
		ColorSecundario:        req.ColorSecundario,
		RedesSociales:          req.RedesSociales,
		InformacionAdicional:   req.InformacionAdicional,
		Destacado:              defaultBool(req.Destacado, false),
		FechaInicioActivacion:  req.FechaInicioActivacion,
		FechaFinActivacion:     req.FechaFinActivacion,
		OcultarAlCumplirMes:    defaultBool(req.OcultarAlCumplirMes, false),
		VisibleEnDirectorio:    defaultBool(req.VisibleEnDirectorio, true),
		FechaInicioSuscripcion: req.FechaInicioSuscripcion,
		FechaFinSuscripcion:    req.FechaFinSuscripcion,
		SuscripcionActiva:      defaultBool(req.SuscripcionActiva, false),
	}
	created, err := uc.repo.Create(n)
	if err != nil {
		return nil, err
	}
	resp := toNegocioResponse(created)
	return &resp, nil
}

// Update aplica una actualización parcial de un negocio.
func (uc *NegocioUseCase) Update(id string, req dto.UpdateNegocioRequest) (*dto.NegocioResponse, error) {
	p := entity.NegocioPatch{
		Nombre:                 req.Nombre,
		Direccion:              req.Direccion,
		Telefono:               req.Telefono,
		PaginaWeb:              req.PaginaWeb,
		Latitud:                req.Latitud,
		Longitud:               req.Longitud,
		IconoURI:               req.IconoURI,
		BannerURI:              req.BannerURI,
		DuenoID:                req.DuenoID,
		Categoria:              req.Categoria,
		Categoria2:             req.Categoria2,
		Estado:                 req.Estado,
		Descripcion:            req.Descripcion,
		Email:                  req.Email,
		Horarios:               req.Horarios,
		ColorPrimario:          req.ColorPrimario,
		ColorSecundario:        req.ColorSecundario,
		RedesSociales:          req.RedesSociales,
		InformacionAdicional:   req.InformacionAdicional,
		Destacado:              req.Destacado,
		FechaInicioActivacion:  req.FechaInicioActivacion,
		FechaFinActivacion:     req.FechaFinActivacion,
		OcultarAlCumplirMes:    req.OcultarAlCumplirMes,
		VisibleEnDirectorio:    req.VisibleEnDirectorio,
		FechaInicioSuscripcion: req.FechaInicioSuscripcion,
		FechaFinSuscripcion:    req.FechaFinSuscripcion,
		SuscripcionActiva:      req.SuscripcionActiva,
	}
	n, err := uc.repo.Update(id, p)
	if err != nil || n == nil {
		return nil, err
	}
	resp := toNegocioResponse(n)
	return &resp, nil
}

// Delete elimina un negocio; false si no existía.
func (uc *NegocioUseCase) Delete(id string) (bool, error) {
	return uc.repo.Delete(id)
}

func toNegocioResponse(n *entity.Negocio) dto.NegocioResponse {
	return dto.NegocioResponse{
		ID:                     n.ID,
		Nombre:                 n.Nombre,
		Direccion:              n.Direccion,
		Telefono:               n.Telefono,
		PaginaWeb:              n.PaginaWeb,
		Latitud:                n.Latitud,
		Longitud:               n.Longitud,
		IconoURI:               n.IconoURI,
		BannerURI:              n.BannerURI,
		DuenoID:                n.DuenoID,
		Categoria:              n.Categoria,
		Categoria2:             n.Categoria2,
		Estado:                 n.Estado,
		Descripcion:            n.Descripcion,
		Email:                  n.Email,
		Horarios:               n.Horarios,
		ColorPrimario:          n.ColorPrimario,
		ColorSecundario:        n.ColorSecundario,
		RedesSociales:          n.RedesSociales,
		InformacionAdicional:   n.InformacionAdicional,
		Destacado:              n.Destacado,
		FechaInicioActivacion:  n.FechaInicioActivacion,
		FechaFinActivacion:     n.FechaFinActivacion,
		OcultarAlCumplirMes:    n.OcultarAlCumplirMes,
		VisibleEnDirectorio:    n.VisibleEnDirectorio,
		FechaInicioSuscripcion: n.FechaInicioSuscripcion,
		FechaFinSuscripcion:    n.FechaFinSuscripcion,
		SuscripcionActiva:      n.SuscripcionActiva,
	}
}
