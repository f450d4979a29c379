package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation detecta la violación de constraint único de PostgreSQL
// (código 23505). Es lo que convierte un SKU repetido en domain.ErrDuplicate
// y, en la capa HTTP, en un 409: el insert confía en el constraint en lugar
// de pre-consultar. El fallback por texto cubre drivers/capas que envuelven
// el error sin conservar *pgconn.PgError.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrUniqueViolation
	}
	return strings.Contains(err.Error(), pgerrUniqueViolation)
}

const pgerrUniqueViolation = "23505"
