package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. StockQuantity es el neto de todos
// los movimientos registrados contra el producto y nunca queda negativo; solo el
// motor de movimientos puede modificarlo. El borrado es lógico (IsActive=false)
// porque el libro de movimientos lo referencia.
type Product struct {
	ID            string
	SKU           string // único e inmutable una vez asignado
	Name          string
	CategoryID    *string
	SupplierID    *string
	Price         decimal.Decimal // precio unitario, no negativo
	StockQuantity int64
	MinimumStock  int64
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsLowStock indica si el producto está en o por debajo de su stock mínimo.
func (p *Product) IsLowStock() bool {
	return p.StockQuantity <= p.MinimumStock
}
