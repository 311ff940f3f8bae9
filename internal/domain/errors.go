package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrSinCampos     = errors.New("no hay campos para actualizar")
	ErrUsuarioExiste = errors.New("el usuario ya existe")
	ErrEmailExiste   = errors.New("el email ya está registrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrUnauthorized  = errors.New("credenciales inválidas")
	ErrForbidden     = errors.New("acceso denegado")
)
