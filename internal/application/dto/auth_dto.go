package dto

import "github.com/jhoicas/invorder-api/pkg/session"

// LoginRequest entrada de login: email + password en texto plano.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse sesión emitida en el login. El token viaja solo en la
// cookie, nunca en el cuerpo de la respuesta.
type LoginResponse struct {
	Token string          `json:"-"`
	User  session.Session `json:"user"`
}

// MeResponse usuario actual; User es null cuando el request es anónimo.
type MeResponse struct {
	User *session.Session `json:"user"`
}
