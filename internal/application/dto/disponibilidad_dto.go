package dto

import "github.com/patoshub/directorio-api/pkg/patch"

// DisponibilidadResponse salida de una franja de disponibilidad.
type DisponibilidadResponse struct {
	ID         string  `json:"id"`
	NegocioID  string  `json:"negocioId"`
	DiaSemana  int     `json:"diaSemana"`
	HoraInicio *string `json:"horaInicio"`
	HoraFin    *string `json:"horaFin"`
	Disponible *bool   `json:"disponible"`
}

// CreateDisponibilidadRequest alta de una franja. diaSemana va por puntero
// para distinguir "ausente" de 0 (domingo/lunes según convención del cliente).
type CreateDisponibilidadRequest struct {
	NegocioID  string  `json:"negocioId" validate:"required"`
	DiaSemana  *int    `json:"diaSemana" validate:"required"`
	HoraInicio *string `json:"horaInicio"`
	HoraFin    *string `json:"horaFin"`
	Disponible *bool   `json:"disponible"`
}

// UpdateDisponibilidadRequest actualización parcial de una franja.
type UpdateDisponibilidadRequest struct {
	NegocioID  patch.Field[string] `json:"negocioId"`
	DiaSemana  patch.Field[int]    `json:"diaSemana"`
	HoraInicio patch.Field[string] `json:"horaInicio"`
	HoraFin    patch.Field[string] `json:"horaFin"`
	Disponible patch.Field[bool]   `json:"disponible"`
}
