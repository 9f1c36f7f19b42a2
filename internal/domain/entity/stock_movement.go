package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeENTRY      = "ENTRY"      // entrada
	MovementTypeEXIT       = "EXIT"       // salida
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste absoluto del stock
)

// ValidMovementType verifica si t es un tipo de movimiento conocido.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeENTRY, MovementTypeEXIT, MovementTypeADJUSTMENT:
		return true
	}
	return false
}

// StockMovement registro inmutable de un movimiento aplicado a un producto.
// Nunca se actualiza ni se borra después de creado (libro append-only).
type StockMovement struct {
	ID          string
	ProductID   string
	Type        string  // ENTRY, EXIT, ADJUSTMENT
	Quantity    int64   // siempre positivo; el efecto sobre el stock lo da Type
	Reason      string  // motivo opcional, máx. 255 caracteres
	PerformedBy *string // puede quedar nulo si el usuario se elimina después
	CreatedAt   time.Time
}
