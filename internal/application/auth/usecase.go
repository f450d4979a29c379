package auth

import (
	"time"

	"github.com/jhoicas/invorder-api/internal/application/dto"
	"github.com/jhoicas/invorder-api/internal/domain/repository"
	"github.com/jhoicas/invorder-api/pkg/session"
	"golang.org/x/crypto/bcrypt"
)

// SessionConfig parámetros de emisión de sesiones firmadas.
type SessionConfig struct {
	Secret  string
	ExpDays int
}

// TTL vigencia del token y de la cookie.
func (c SessionConfig) TTL() time.Duration {
	return time.Duration(c.ExpDays) * 24 * time.Hour
}

// AuthUseCase verificación de credenciales y emisión de sesión.
// Sin lockout ni rate limiting; la única defensa es el costo de bcrypt.
type AuthUseCase struct {
	userRepo repository.UserRepository
	sessCfg  SessionConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, sessCfg SessionConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, sessCfg: sessCfg}
}

// SessionTTL expone la vigencia para que el handler alinee la cookie con el token.
func (uc *AuthUseCase) SessionTTL() time.Duration {
	return uc.sessCfg.TTL()
}

// Login verifica email/password y emite la sesión firmada.
// Falla cerrado: email inexistente y password incorrecto retornan ambos
// (nil, nil) — la respuesta nunca revela si el email existe. La sesión
// resultante copia id, email, name y role del usuario, jamás el hash.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, nil
	}
	sess := session.Session{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  string(user.Role),
	}
	token, err := session.Issue(uc.sessCfg.Secret, sess, uc.sessCfg.TTL())
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: sess}, nil
}
