package dto

import (
	"time"

	"github.com/patoshub/directorio-api/pkg/patch"
)

// ReservacionResponse salida de una reservación.
type ReservacionResponse struct {
	ID        string    `json:"id"`
	ClienteID string    `json:"clienteId"`
	NegocioID string    `json:"negocioId"`
	Fecha     time.Time `json:"fecha"`
	Hora      *string   `json:"hora"`
	Estado    *string   `json:"estado"`
	Notas     *string   `json:"notas"`
}

// CreateReservacionRequest alta de una reservación. estado default PENDIENTE.
type CreateReservacionRequest struct {
	ClienteID string    `json:"clienteId" validate:"required"`
	NegocioID string    `json:"negocioId" validate:"required"`
	Fecha     time.Time `json:"fecha" validate:"required"`
	Hora      *string   `json:"hora"`
	Estado    *string   `json:"estado"`
	Notas     *string   `json:"notas"`
}

// UpdateReservacionRequest actualización parcial de una reservación.
type UpdateReservacionRequest struct {
	ClienteID patch.Field[string]    `json:"clienteId"`
	NegocioID patch.Field[string]    `json:"negocioId"`
	Fecha     patch.Field[time.Time] `json:"fecha"`
	Hora      patch.Field[string]    `json:"hora"`
	Estado    patch.Field[string]    `json:"estado"`
	Notas     patch.Field[string]    `json:"notas"`
}
