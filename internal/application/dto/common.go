package dto

// ErrorResponse cuerpo de error de la API: un mensaje y, para fallos de
// validación, el detalle de mensajes por campo.
type ErrorResponse struct {
	Error   string              `json:"error"`
	Details map[string][]string `json:"details,omitempty"`
}

// OKResponse confirmación simple (logout).
type OKResponse struct {
	OK bool `json:"ok"`
}
