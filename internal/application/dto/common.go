package dto

// ErrorResponse cuerpo de error HTTP: {error, code}.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// SuccessResponse respuesta mínima de operaciones sin payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}
