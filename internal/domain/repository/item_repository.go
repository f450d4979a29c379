package repository

import "github.com/jhoicas/invorder-api/internal/domain/entity"

// ItemRepository puerto de persistencia para el catálogo de items.
type ItemRepository interface {
	// Create inserta en una sola sentencia atómica; un SKU duplicado retorna
	// domain.ErrDuplicate (sin pre-check, sin ventana de carrera).
	Create(item *entity.Item) error
	// List retorna los items ordenados por name ascendente; active filtra
	// cuando no es nil.
	List(active *bool) ([]*entity.Item, error)
	// DeleteReturning elimina y retorna la identidad de la fila; nil, nil si
	// ninguna fila coincidió.
	DeleteReturning(id string) (*entity.DeletedItem, error)
}
