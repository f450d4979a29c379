package usecase

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jhoicas/invorder-api/internal/application/dto"
	"github.com/jhoicas/invorder-api/internal/domain"
	"github.com/jhoicas/invorder-api/internal/domain/entity"
	"github.com/jhoicas/invorder-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// maxCost tope de la columna numeric(12,2): 10 dígitos enteros.
var maxCost = decimal.New(1, 10)

// ItemUseCase CRUD del catálogo de items. La restricción de rol (mutaciones
// solo MANAGER, lecturas cualquier autenticado) la aplica el access guard en
// la capa HTTP; aquí solo viven validación y persistencia.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// List lista el catálogo ordenado por name; active filtra cuando no es nil.
func (uc *ItemUseCase) List(active *bool) (*dto.ItemListResponse, error) {
	list, err := uc.repo.List(active)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{Items: items}, nil
}

// Create valida y normaliza la entrada, y persiste el item con una inserción
// atómica. Retorna *domain.ValidationError con el detalle por campo ante
// entrada inválida (antes de tocar la base de datos) y domain.ErrDuplicate
// si el SKU ya existe.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	in.SKU = strings.TrimSpace(in.SKU)
	in.Name = strings.TrimSpace(in.Name)
	in.Unit = strings.TrimSpace(in.Unit)
	if in.Description != nil {
		d := strings.TrimSpace(*in.Description)
		in.Description = &d
	}

	// Los límites cuentan caracteres, no bytes: varchar(n) y un nombre con
	// acentos de n caracteres deben coincidir.
	verr := domain.NewValidationError()
	switch {
	case in.SKU == "":
		verr.Add("sku", "sku es requerido")
	case utf8.RuneCountInString(in.SKU) > 60:
		verr.Add("sku", "sku supera los 60 caracteres")
	}
	switch {
	case in.Name == "":
		verr.Add("name", "name es requerido")
	case utf8.RuneCountInString(in.Name) > 120:
		verr.Add("name", "name supera los 120 caracteres")
	}
	if in.Description != nil && utf8.RuneCountInString(*in.Description) > 500 {
		verr.Add("description", "description supera los 500 caracteres")
	}
	switch {
	case in.Unit == "":
		verr.Add("unit", "unit es requerido")
	case utf8.RuneCountInString(in.Unit) > 40:
		verr.Add("unit", "unit supera los 40 caracteres")
	}

	var cost decimal.Decimal
	switch {
	case in.Cost == nil:
		verr.Add("cost", "cost es requerido")
	case in.Cost.IsNegative():
		verr.Add("cost", "cost debe ser 0 o mayor")
	case in.Cost.GreaterThanOrEqual(maxCost):
		verr.Add("cost", "cost supera el máximo permitido")
	default:
		// Normalizar a exactamente 2 decimales antes de almacenar.
		cost = in.Cost.Round(2)
	}

	var inStock int
	switch {
	case in.InStock == nil:
		verr.Add("in_stock", "in_stock es requerido")
	case !in.InStock.IsInteger():
		verr.Add("in_stock", "in_stock debe ser un entero")
	case in.InStock.IsNegative():
		verr.Add("in_stock", "in_stock debe ser 0 o mayor")
	default:
		inStock = int(in.InStock.IntPart())
	}

	if !verr.Empty() {
		return nil, verr
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}
	item := &entity.Item{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Unit:        in.Unit,
		Cost:        cost,
		InStock:     inStock,
		Active:      active,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete valida la sintaxis del UUID antes de tocar la base de datos y hace
// hard delete (sin soft-delete ni verificación de dependencias). Retorna la
// identidad de la fila eliminada o domain.ErrNotFound.
func (uc *ItemUseCase) Delete(id string) (*dto.DeletedItemSummary, error) {
	if _, err := uuid.Parse(id); err != nil {
		verr := domain.NewValidationError()
		verr.Add("id", "id debe ser un UUID válido")
		return nil, verr
	}
	deleted, err := uc.repo.DeleteReturning(id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.DeletedItemSummary{ID: deleted.ID, SKU: deleted.SKU, Name: deleted.Name}, nil
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:          it.ID,
		SKU:         it.SKU,
		Name:        it.Name,
		Description: it.Description,
		Unit:        it.Unit,
		Cost:        dto.Money{Decimal: it.Cost},
		InStock:     it.InStock,
		Active:      it.Active,
	}
}
