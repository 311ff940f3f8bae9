package entity

import (
	"time"

	"github.com/patoshub/directorio-api/pkg/patch"
)

// Disponibilidad franja horaria semanal de un negocio. DiaSemana es un índice
// de día sin rango verificado (el cliente decide la convención).
type Disponibilidad struct {
	ID         string
	NegocioID  string
	DiaSemana  int
	HoraInicio *string
	HoraFin    *string
	Disponible *bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DisponibilidadPatch campos actualizables de una disponibilidad; solo los presentes se aplican.
type DisponibilidadPatch struct {
	NegocioID  patch.Field[string]
	DiaSemana  patch.Field[int]
	HoraInicio patch.Field[string]
	HoraFin    patch.Field[string]
	Disponible patch.Field[bool]
}
