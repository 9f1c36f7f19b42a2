package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU           string          `json:"sku" validate:"required,max=50"`
	Name          string          `json:"name" validate:"required,max=200"`
	CategoryID    *string         `json:"category_id,omitempty"`
	SupplierID    *string         `json:"supplier_id,omitempty"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int64           `json:"stock_quantity" validate:"omitempty,min=0"`
	MinimumStock  int64           `json:"minimum_stock" validate:"omitempty,min=0"`
}

// UpdateProductRequest body para PUT /api/products/:id. El SKU es inmutable y el
// stock solo cambia vía movimientos, por eso no aparecen aquí.
type UpdateProductRequest struct {
	Name         string          `json:"name" validate:"required,max=200"`
	CategoryID   *string         `json:"category_id,omitempty"`
	SupplierID   *string         `json:"supplier_id,omitempty"`
	Price        decimal.Decimal `json:"price"`
	MinimumStock int64           `json:"minimum_stock" validate:"omitempty,min=0"`
}

// ListProductsRequest query params para listar productos.
type ListProductsRequest struct {
	CategoryID   string `query:"category" validate:"omitempty"`
	LowStockOnly bool   `query:"low_stock"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	CategoryID    *string         `json:"category_id,omitempty"`
	SupplierID    *string         `json:"supplier_id,omitempty"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int64           `json:"stock_quantity"`
	MinimumStock  int64           `json:"minimum_stock"`
	IsActive      bool            `json:"is_active"`
	LowStock      bool            `json:"low_stock"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
