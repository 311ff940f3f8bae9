package entity

import (
	"time"

	"github.com/patoshub/directorio-api/pkg/patch"
)

// Roles del directorio. La columna role no tiene constraint: estos son los
// valores que la aplicación emite por defecto.
const (
	RoleAdmin   = "ADMIN"
	RoleCliente = "CLIENTE"
	RoleDueno   = "DUENO"
)

// User cuenta del sistema. username y email son únicos a nivel de tabla.
type User struct {
	ID        string
	Username  string
	Email     string
	Password  string // hash bcrypt, nunca en claro tras persistir
	Nombre    *string
	Apellido  *string
	Telefono  *string
	Role      string
	TenantID  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserPatch campos actualizables de un usuario; solo los presentes se aplican.
// El password no se actualiza por esta vía.
type UserPatch struct {
	Username patch.Field[string]
	Email    patch.Field[string]
	Nombre   patch.Field[string]
	Apellido patch.Field[string]
	Telefono patch.Field[string]
	Role     patch.Field[string]
	TenantID patch.Field[string]
}
