package dto

import "github.com/patoshub/directorio-api/pkg/patch"

// NegocioResponse salida de un negocio con la convención externa camelCase.
type NegocioResponse struct {
	ID                     string   `json:"id"`
	Nombre                 string   `json:"nombre"`
	Direccion              *string  `json:"direccion"`
	Telefono               *string  `json:"telefono"`
	PaginaWeb              *string  `json:"paginaWeb"`
	Latitud                *float64 `json:"latitud"`
	Longitud               *float64 `json:"longitud"`
	IconoURI               *string  `json:"iconoUri"`
	BannerURI              *string  `json:"bannerUri"`
	DuenoID                string   `json:"duenoId"`
	Categoria              *string  `json:"categoria"`
	Categoria2             *string  `json:"categoria2"`
	Estado                 *string  `json:"estado"`
	Descripcion            *string  `json:"descripcion"`
	Email                  *string  `json:"email"`
	Horarios               *string  `json:"horarios"`
	ColorPrimario          *string  `json:"colorPrimario"`
	ColorSecundario        *string  `json:"colorSecundario"`
	RedesSociales          *string  `json:"redesSociales"`
	InformacionAdicional   *string  `json:"informacionAdicional"`
	Destacado              *bool    `json:"destacado"`
	FechaInicioActivacion  *int64   `json:"fechaInicioActivacion"`
	FechaFinActivacion     *int64   `json:"fechaFinActivacion"`
	OcultarAlCumplirMes    *bool    `json:"ocultarAlCumplirMes"`
	VisibleEnDirectorio    *bool    `json:"visibleEnDirectorio"`
	FechaInicioSuscripcion *int64   `json:"fechaInicioSuscripcion"`
	FechaFinSuscripcion    *int64   `json:"fechaFinSuscripcion"`
	SuscripcionActiva      *bool    `json:"suscripcionActiva"`
}

// CreateNegocioRequest alta de un negocio. Solo nombre y duenoId son
// obligatorios; los demás campos admiten null y reciben defaults en el caso de uso.
type CreateNegocioRequest struct {
	Nombre                 string   `json:"nombre" validate:"required"`
	Direccion              *string  `json:"direccion"`
	Telefono               *string  `json:"telefono"`
	PaginaWeb              *string  `json:"paginaWeb"`
	Latitud                *float64 `json:"latitud"`
	Longitud               *float64 `json:"longitud"`
	IconoURI               *string  `json:"iconoUri"`
	BannerURI              *string  `json:"bannerUri"`
	DuenoID                string   `json:"duenoId" validate:"required"`
	Categoria              *string  `json:"categoria"`
	Categoria2             *string  `json:"categoria2"`
	Estado                 *string  `json:"estado"`
	Descripcion            *string  `json:"descripcion"`
	Email                  *string  `json:"email"`
	Horarios               *string  `json:"horarios"`
	ColorPrimario          *string  `json:"colorPrimario"`
	ColorSecundario        *string  `json:"colorSecundario"`
	RedesSociales          *string  `json:"redesSociales"`
	InformacionAdicional   *string  `json:"informacionAdicional"`
	Destacado              *bool    `json:"destacado"`
	FechaInicioActivacion  *int64   `json:"fechaInicioActivacion"`
	FechaFinActivacion     *int64   `json:"fechaFinActivacion"`
	OcultarAlCumplirMes    *bool    `json:"ocultarAlCumplirMes"`
	VisibleEnDirectorio    *bool    `json:"visibleEnDirectorio"`
	FechaInicioSuscripcion *int64   `json:"fechaInicioSuscripcion"`
	FechaFinSuscripcion    *int64   `json:"fechaFinSuscripcion"`
	SuscripcionActiva      *bool    `json:"suscripcionActiva"`
}

// UpdateNegocioRequest actualización parcial de un negocio.
type UpdateNegocioRequest struct {
	Nombre                 patch.Field[string]  `json:"nombre"`
	Direccion              patch.Field[string]  `json:"direccion"`
	Telefono               patch.Field[string]  `json:"telefono"`
	PaginaWeb              patch.Field[string]  `json:"paginaWeb"`
	Latitud                patch.Field[float64] `json:"latitud"`
	Longitud               patch.Field[float64] `json:"longitud"`
	IconoURI               patch.Field[string]  `json:"iconoUri"`
	BannerURI              patch.Field[string]  `json:"bannerUri"`
	DuenoID                patch.Field[string]  `json:"duenoId"`
	Categoria              patch.Field[string]  `json:"categoria"`
	Categoria2             patch.Field[string]  `json:"categoria2"`
	Estado                 patch.Field[string]  `json:"estado"`
	Descripcion            patch.Field[string]  `json:"descripcion"`
	Email                  patch.Field[string]  `json:"email"`
	Horarios               patch.Field[string]  `json:"horarios"`
	ColorPrimario          patch.Field[string]  `json:"colorPrimario"`
	ColorSecundario        patch.Field[string]  `json:"colorSecundario"`
	RedesSociales          patch.Field[string]  `json:"redesSociales"`
	InformacionAdicional   patch.Field[string]  `json:"informacionAdicional"`
	Destacado              patch.Field[bool]    `json:"destacado"`
	FechaInicioActivacion  patch.Field[int64]   `json:"fechaInicioActivacion"`
	FechaFinActivacion     patch.Field[int64]   `json:"fechaFinActivacion"`
	OcultarAlCumplirMes    patch.Field[bool]    `json:"ocultarAlCumplirMes"`
	VisibleEnDirectorio    patch.Field[bool]    `json:"visibleEnDirectorio"`
	FechaInicioSuscripcion patch.Field[int64]   `json:"fechaInicioSuscripcion"`
	FechaFinSuscripcion    patch.Field[int64]   `json:"fechaFinSuscripcion"`
	SuscripcionActiva      patch.Field[bool]    `json:"suscripcionActiva"`
}
