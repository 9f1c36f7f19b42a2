package dto

import "time"

// RegisterMovementRequest body para POST /api/inventory/movements.
// El handler valida la forma; el caso de uso re-valida el invariante.
type RegisterMovementRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=ENTRY EXIT ADJUSTMENT"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
	Reason    string `json:"reason,omitempty" validate:"omitempty,max=255"`
}

// MovementResponse movimiento registrado, con las advertencias de observers si las hubo.
type MovementResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	Type          string    `json:"type"`
	Quantity      int64     `json:"quantity"`
	Reason        string    `json:"reason,omitempty"`
	PerformedBy   *string   `json:"performed_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	StockQuantity int64     `json:"stock_quantity"` // stock del producto tras el movimiento
	Warnings      []string  `json:"warnings,omitempty"`
}

// ListMovementsRequest query params para listar movimientos.
type ListMovementsRequest struct {
	PageRequest
	ProductID string `query:"product_id" validate:"omitempty"`
	Type      string `query:"type" validate:"omitempty,oneof=ENTRY EXIT ADJUSTMENT"`
	DateFrom  string `query:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo    string `query:"date_to" validate:"omitempty,datetime=2006-01-02"`
}

// MovementItem fila del historial de movimientos.
type MovementItem struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	Type        string    `json:"type"`
	Quantity    int64     `json:"quantity"`
	Reason      string    `json:"reason,omitempty"`
	PerformedBy *string   `json:"performed_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovementListResponse listado de movimientos.
type MovementListResponse struct {
	Total     int            `json:"total"`
	Movements []MovementItem `json:"movements"`
}
