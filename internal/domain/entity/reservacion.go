package entity

import (
	"time"

	"github.com/patoshub/directorio-api/pkg/patch"
)

// EstadoPendiente estado inicial de una reservación. La columna estado es una
// cadena abierta: los negocios manejan sus propios flujos.
const EstadoPendiente = "PENDIENTE"

// Reservacion cita de un cliente en un negocio.
type Reservacion struct {
	ID        string
	ClienteID string
	NegocioID string
	Fecha     time.Time
	Hora      *string
	Estado    *string
	Notas     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReservacionPatch campos actualizables de una reservación; solo los presentes se aplican.
type ReservacionPatch struct {
	ClienteID patch.Field[string]
	NegocioID patch.Field[string]
	Fecha     patch.Field[time.Time]
	Hora      patch.Field[string]
	Estado    patch.Field[string]
	Notas     patch.Field[string]
}
