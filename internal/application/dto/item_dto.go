package dto

import "github.com/shopspring/decimal"

// Money decimal que serializa siempre con dos decimales ("2.50", "1.00").
// decimal.Decimal.String() recorta ceros finales; aquí el formato del costo
// es parte del contrato de la API.
type Money struct {
	decimal.Decimal
}

// MarshalJSON emite el valor como string con escala fija de 2.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}

// CreateItemRequest entrada para crear un item. Cost e InStock aceptan
// número JSON o string numérico ("2.5", "10"); la coerción y los rangos se
// validan antes de cualquier acceso a la base de datos. Active por defecto
// es true si se omite.
type CreateItemRequest struct {
	SKU         string           `json:"sku"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Unit        string           `json:"unit"`
	Cost        *decimal.Decimal `json:"cost"`
	InStock     *decimal.Decimal `json:"in_stock"`
	Active      *bool            `json:"active"`
}

// ItemResponse salida de un item del catálogo. Cost serializa como string
// con exactamente 2 decimales ("2.50").
type ItemResponse struct {
	ID          string  `json:"id"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Unit        string  `json:"unit"`
	Cost        Money   `json:"cost"`
	InStock     int     `json:"in_stock"`
	Active      bool    `json:"active"`
}

// ItemListResponse listado ordenado por nombre ascendente.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}

// CreateItemResponse envoltura del item recién creado.
type CreateItemResponse struct {
	Item ItemResponse `json:"item"`
}

// DeletedItemSummary identidad de la fila eliminada.
type DeletedItemSummary struct {
	ID   string `json:"id"`
	SKU  string `json:"sku"`
	Name string `json:"name"`
}

// DeleteItemResponse envoltura del resumen de borrado.
type DeleteItemResponse struct {
	Deleted DeletedItemSummary `json:"deleted"`
}
