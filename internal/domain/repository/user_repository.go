package repository

import "github.com/jhoicas/invorder-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	// FindByEmail busca por email exacto. Retorna nil, nil si no existe;
	// el caso de uso de auth no distingue ese caso de un password incorrecto.
	FindByEmail(email string) (*entity.User, error)
	// UpsertByEmail inserta el usuario; si el email ya existe actualiza name
	// y role preservando el password_hash original. Lo usa el seed.
	UpsertByEmail(user *entity.User) error
}
