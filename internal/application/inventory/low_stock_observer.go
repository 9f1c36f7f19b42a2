package inventory

import (
	"github.com/tu-usuario/inventario-core/internal/domain/entity"
	"github.com/tu-usuario/inventario-core/pkg/logger"
)

// LowStockAlertObserver emite una alerta de stock bajo tras cada movimiento que
// deja el producto en o por debajo de su stock mínimo. Solo escribe en el log;
// nunca interrumpe el flujo del caller.
type LowStockAlertObserver struct {
	log *logger.Logger
}

// NewLowStockAlertObserver construye el observer de alertas.
func NewLowStockAlertObserver(log *logger.Logger) *LowStockAlertObserver {
	return &LowStockAlertObserver{log: log}
}

// Update implementa StockObserver.
func (o *LowStockAlertObserver) Update(product *entity.Product, movement *entity.StockMovement) error {
	if product.IsLowStock() {
		o.log.Warn().
			Str("sku", product.SKU).
			Str("movement_id", movement.ID).
			Int64("stock", product.StockQuantity).
			Int64("minimo", product.MinimumStock).
			Msg("alerta de stock bajo")
	}
	return nil
}
