package dto

import "github.com/patoshub/directorio-api/pkg/patch"

// UserResponse salida de una cuenta. Nunca incluye el password.
type UserResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Nombre   *string `json:"nombre"`
	Apellido *string `json:"apellido"`
	Telefono *string `json:"telefono"`
	Role     string  `json:"role"`
	TenantID *string `json:"tenantId"`
}

// UpdateUserRequest actualización parcial de una cuenta. El campo password se
// ignora por esta vía. username, email y role solo se aplican con valor no
// vacío; el resto acepta null explícito.
type UpdateUserRequest struct {
	Username patch.Field[string] `json:"username"`
	Email    patch.Field[string] `json:"email"`
	Nombre   patch.Field[string] `json:"nombre"`
	Apellido patch.Field[string] `json:"apellido"`
	Telefono patch.Field[string] `json:"telefono"`
	Role     patch.Field[string] `json:"role"`
	TenantID patch.Field[string] `json:"tenantId"`
}
