package entity

import (
	"time"

	"github.com/patoshub/directorio-api/pkg/patch"
)

// CategoriaGeneral bucket por defecto cuando el negocio no declara categoría.
const CategoriaGeneral = "General"

// Negocio comercio local del directorio. DuenoID referencia a un User por id;
// no hay foreign key: la integridad es responsabilidad de la aplicación.
type Negocio struct {
	ID                     string
	Nombre                 string
	Direccion              *string
	Telefono               *string
	PaginaWeb              *string
	Latitud                *float64
	Longitud               *float64
	IconoURI               *string
	BannerURI              *string
	DuenoID                string
	Categoria              *string
	Categoria2             *string
	Estado                 *string
	Descripcion            *string
	Email                  *string
	Horarios               *string
	ColorPrimario          *string
	ColorSecundario        *string
	RedesSociales          *string
	InformacionAdicional   *string
	Destacado              *bool
	FechaInicioActivacion  *int64 // epoch millis
	FechaFinActivacion     *int64
	OcultarAlCumplirMes    *bool
	VisibleEnDirectorio    *bool
	FechaInicioSuscripcion *int64
	FechaFinSuscripcion    *int64
	SuscripcionActiva      *bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// NegocioPatch campos actualizables de un negocio; solo los presentes se aplican.
type NegocioPatch struct {
	Nombre                 patch.Field[string]
	Direccion              patch.Field[string]
	Telefono               patch.Field[string]
	PaginaWeb              patch.Field[string]
	Latitud                patch.Field[float64]
	Longitud               patch.Field[float64]
	IconoURI               patch.Field[string]
	BannerURI              patch.Field[string]
	DuenoID                patch.Field[string]
	Categoria              patch.Field[string]
	Categoria2             patch.Field[string]
	Estado                 patch.Field[string]
	Descripcion            patch.Field[string]
	Email                  patch.Field[string]
	Horarios               patch.Field[string]
	ColorPrimario          patch.Field[string]
	ColorSecundario        patch.Field[string]
	RedesSociales          patch.Field[string]
	InformacionAdicional   patch.Field[string]
	Destacado              patch.Field[bool]
	FechaInicioActivacion  patch.Field[int64]
	FechaFinActivacion     patch.Field[int64]
	OcultarAlCumplirMes    patch.Field[bool]
	VisibleEnDirectorio    patch.Field[bool]
	FechaInicioSuscripcion patch.Field[int64]
	FechaFinSuscripcion    patch.Field[int64]
	SuscripcionActiva      patch.Field[bool]
}
