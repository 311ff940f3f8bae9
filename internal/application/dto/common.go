package dto

// ErrorResponse cuerpo de error HTTP. El contrato del cliente móvil espera
// una sola clave "error".
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse respuesta informativa sin datos.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse respuesta del probe de salud.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
