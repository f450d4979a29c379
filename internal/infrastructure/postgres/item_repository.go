package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/invorder-api/internal/domain"
	"github.com/jhoicas/invorder-api/internal/domain/entity"
	"github.com/jhoicas/invorder-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para items. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create inserta el item en una sola sentencia. La unicidad del SKU la
// garantiza el constraint de la tabla; la violación (23505) se reporta como
// domain.ErrDuplicate. Dos creates concurrentes con el mismo SKU nunca
// insertan ambos.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (id, sku, name, description, unit, cost, in_stock, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SKU, item.Name, item.Description, item.Unit,
		item.Cost, item.InStock, item.Active,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// List lista el catálogo ordenado por name ascendente; active filtra cuando no es nil.
func (r *ItemRepo) List(active *bool) ([]*entity.Item, error) {
	query := `
		SELECT id, sku, name, description, unit, cost, in_stock, active
		FROM items`
	var args []any
	if active != nil {
		query += ` WHERE active = $1`
		args = append(args, *active)
	}
	query += ` ORDER BY name ASC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.SKU, &it.Name, &it.Description, &it.Unit,
			&it.Cost, &it.InStock, &it.Active); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// DeleteReturning hace hard delete y retorna la identidad de la fila
// eliminada. Retorna nil, nil si ninguna fila coincidió con el id.
func (r *ItemRepo) DeleteReturning(id string) (*entity.DeletedItem, error) {
	query := `
		DELETE FROM items WHERE id = $1
		RETURNING id, sku, name`
	var d entity.DeletedItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(&d.ID, &d.SKU, &d.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete item: %w", err)
	}
	return &d, nil
}
