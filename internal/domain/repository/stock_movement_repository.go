package repository

import (
	"time"

	"github.com/tu-usuario/inventario-core/internal/domain/entity"
)

// MovementFilter filtros para listar movimientos (reportes y consultas).
// Los campos vacíos / nil no filtran.
type MovementFilter struct {
	ProductID string
	Type      string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// StockMovementRepository define el puerto de persistencia del libro de
// movimientos. Solo inserta y consulta: las entradas son inmutables.
// Los listados ordenan por created_at descendente.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	List(filter MovementFilter) ([]*entity.StockMovement, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
}
