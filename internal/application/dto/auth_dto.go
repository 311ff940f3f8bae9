package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest alta de una cuenta. role es opcional (default CLIENTE).
// Del email solo se exige presencia, no formato.
type RegisterRequest struct {
	Username string  `json:"username" validate:"required"`
	Email    string  `json:"email" validate:"required"`
	Password string  `json:"password" validate:"required"`
	Nombre   *string `json:"nombre"`
	Apellido *string `json:"apellido"`
	Telefono *string `json:"telefono"`
	Role     string  `json:"role"`
}

// AuthResponse token de sesión + cuenta. Se devuelve en login y register.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
