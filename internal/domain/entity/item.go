package entity

import "github.com/shopspring/decimal"

// Item entrada del catálogo: SKU único, costo unitario y stock.
type Item struct {
	ID          string
	SKU         string
	Name        string
	Description *string
	Unit        string
	Cost        decimal.Decimal // numeric(12,2), normalizado a 2 decimales
	InStock     int
	Active      bool
}

// DeletedItem campos de identidad que retorna un hard delete, para que la UI
// confirme qué fila desapareció.
type DeletedItem struct {
	ID   string
	SKU  string
	Name string
}
