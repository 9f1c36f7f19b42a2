package repository

import "github.com/tu-usuario/inventario-core/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos de lectura devuelven (nil, nil) cuando no hay fila; el caso de uso
// decide si eso es ErrNotFound. GetAll y GetLowStock solo devuelven productos
// activos y no garantizan orden salvo que la implementación lo documente.
type ProductRepository interface {
	GetAll() ([]*entity.Product, error)
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetLowStock devuelve los productos activos con stock_quantity <= minimum_stock.
	GetLowStock() ([]*entity.Product, error)
	// Save es un upsert idempotente. Debe poder invocarse dentro de la misma
	// transacción que el alta del movimiento (commit conjunto o ninguno).
	Save(product *entity.Product) error
	// Delete es borrado lógico: is_active = false. Nunca borra historial.
	Delete(id string) error
	// GetForUpdate lee el producto bloqueando la fila durante la transacción
	// (SELECT FOR UPDATE). No filtra por is_active: el caso de uso revisa el flag.
	// La variante fixture degrada a una lectura simple.
	GetForUpdate(id string) (*entity.Product, error)
}
