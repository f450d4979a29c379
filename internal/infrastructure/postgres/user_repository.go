package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/invorder-api/internal/domain/entity"
	"github.com/jhoicas/invorder-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// FindByEmail busca un usuario por email exacto. Retorna nil, nil si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := `
		SELECT id, email, name, role, password_hash
		FROM users WHERE email = $1 LIMIT 1`
	var u entity.User
	var role string
	err := r.pool.QueryRow(context.Background(), query, email).Scan(
		&u.ID, &u.Email, &u.Name, &role, &u.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	u.Role = entity.Role(role)
	return &u, nil
}

// UpsertByEmail inserta el usuario; en conflicto por email actualiza name y
// role. El password_hash existente no se toca: re-sembrar no rota credenciales.
func (r *UserRepo) UpsertByEmail(user *entity.User) error {
	query := `
		INSERT INTO users (id, email, name, role, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, role = EXCLUDED.role`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Email, user.Name, string(user.Role), user.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}
