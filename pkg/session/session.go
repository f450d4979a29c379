package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session es la identidad firmada que viaja en la cookie: se emite en el
// login y se reconstruye verificando el token en cada request. Es una foto
// del usuario al momento del login (un cambio de rol no la afecta hasta que
// vuelva a autenticarse). Nunca incluye el hash del password.
type Session struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"` // "MANAGER" | "EMPLOYEE" | "PURCHASER"
}

// Claims payload del token: la sesión más los claims estándar (iat, exp).
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// Issue firma la sesión con HS256 y la vigencia indicada.
func Issue(secret string, s Session, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("session: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: s.ID,
		Email:  s.Email,
		Name:   s.Name,
		Role:   s.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Verify valida firma y expiración y reconstruye la sesión.
// Cualquier fallo (firma incorrecta, token malformado, algoritmo inesperado,
// expirado) retorna error; el transporte lo trata como request anónimo.
func Verify(secret, tokenString string) (*Session, error) {
	if secret == "" {
		return nil, fmt.Errorf("session: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return &Session{ID: claims.UserID, Email: claims.Email, Name: claims.Name, Role: claims.Role}, nil
}
