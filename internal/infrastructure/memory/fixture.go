// Package memory provee la variante fixture del puerto de persistencia:
// datos de demostración en memoria para explorar la aplicación sin base de
// datos. La variante es de solo lectura: Save, Delete y Create son no-ops
// documentados. Se selecciona al arranque con DATA_BACKEND=fixture.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-core/internal/application/inventory"
	"github.com/tu-usuario/inventario-core/internal/domain/entity"
	"github.com/tu-usuario/inventario-core/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	_ repository.ProductRepository       = (*FixtureProductRepository)(nil)
	_ repository.StockMovementRepository = (*FixtureMovementRepository)(nil)
	_ repository.UserRepository          = (*FixtureUserRepository)(nil)
	_ inventory.TxRunner                 = (*FixtureTxRunner)(nil)
)

func strPtr(s string) *string { return &s }

func fixtureProduct(id, sku, name, categoryID, supplierID string, price float64, stock, minimum int64) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:            id,
		SKU:           sku,
		Name:          name,
		CategoryID:    strPtr(categoryID),
		SupplierID:    strPtr(supplierID),
		Price:         decimal.NewFromFloat(price),
		StockQuantity: stock,
		MinimumStock:  minimum,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// FixtureProductRepository variante de solo lectura de ProductRepository con
// productos de demostración precargados.
type FixtureProductRepository struct {
	mu       sync.RWMutex
	products []*entity.Product
}

// NewFixtureProductRepository construye el repositorio con el catálogo demo.
func NewFixtureProductRepository() *FixtureProductRepository {
	return &FixtureProductRepository{
		products: []*entity.Product{
			fixtureProduct("d1000000-0000-0000-0000-000000000001", "MON-001", `Monitor 24"`, "cat-electronica", "prov-norte", 199.99, 15, 5),
			fixtureProduct("d1000000-0000-0000-0000-000000000002", "TEC-002", "Teclado USB", "cat-electronica", "prov-norte", 29.50, 8, 10),
			fixtureProduct("d1000000-0000-0000-0000-000000000003", "PAP-003", "Papel A4 (500 h)", "cat-oficina", "prov-sur", 4.99, 3, 10),
			fixtureProduct("d1000000-0000-0000-0000-000000000004", "BOL-004", "Bolígrafo azul", "cat-oficina", "prov-sur", 0.45, 120, 50),
			fixtureProduct("d1000000-0000-0000-0000-000000000005", "DET-005", "Detergente 1L", "cat-limpieza", "prov-sur", 3.20, 2, 8),
			fixtureProduct("d1000000-0000-0000-0000-000000000006", "RAT-006", "Ratón inalámbrico", "cat-electronica", "prov-norte", 19.99, 4, 5),
		},
	}
}

// GetAll lista los productos demo activos, en orden de carga (orden documentado).
func (r *FixtureProductRepository) GetAll() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Product
	for _, p := range r.products {
		if p.IsActive {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

// GetByID obtiene un producto demo activo por ID. Devuelve (nil, nil) si no existe.
func (r *FixtureProductRepository) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id && p.IsActive {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// GetBySKU obtiene un producto demo activo por SKU.
func (r *FixtureProductRepository) GetBySKU(sku string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.SKU == sku && p.IsActive {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// GetLowStock lista los productos demo en o por debajo de su stock mínimo.
func (r *FixtureProductRepository) GetLowStock() ([]*entity.Product, error) {
	all, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	var list []*entity.Product
	for _, p := range all {
		if p.IsLowStock() {
			list = append(list, p)
		}
	}
	return list, nil
}

// GetForUpdate degrada a una lectura simple sin filtro de is_active: esta
// variante no tiene transacciones ni bloqueo de filas.
func (r *FixtureProductRepository) GetForUpdate(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// Save no persiste nada: variante de solo visualización.
func (r *FixtureProductRepository) Save(*entity.Product) error { return nil }

// Delete no persiste nada: variante de solo visualización.
func (r *FixtureProductRepository) Delete(string) error { return nil }

// FixtureMovementRepository variante de solo lectura del libro de movimientos
// con historial de demostración.
type FixtureMovementRepository struct {
	mu        sync.RWMutex
	movements []*entity.StockMovement
}

func fixtureMovement(id, productID, typ string, qty int64, reason, user, createdAt string) *entity.StockMovement {
	ts, _ := time.Parse(time.RFC3339, createdAt)
	return &entity.StockMovement{
		ID:          id,
		ProductID:   productID,
		Type:        typ,
		Quantity:    qty,
		Reason:      reason,
		PerformedBy: strPtr(user),
		CreatedAt:   ts,
	}
}

// NewFixtureMovementRepository construye el repositorio con movimientos demo.
func NewFixtureMovementRepository() *FixtureMovementRepository {
	return &FixtureMovementRepository{
		movements: []*entity.StockMovement{
			fixtureMovement("a1000000-0000-0000-0000-000000000005", "d1000000-0000-0000-0000-000000000001", entity.MovementTypeEXIT, 5, "Ajuste inventario", "admin", "2025-02-23T08:45:00Z"),
			fixtureMovement("a1000000-0000-0000-0000-000000000004", "d1000000-0000-0000-0000-000000000002", entity.MovementTypeEXIT, 2, "Venta", "demo", "2025-02-22T14:00:00Z"),
			fixtureMovement("a1000000-0000-0000-0000-000000000003", "d1000000-0000-0000-0000-000000000005", entity.MovementTypeENTRY, 10, "Reposición", "demo", "2025-02-22T09:15:00Z"),
			fixtureMovement("a1000000-0000-0000-0000-000000000002", "d1000000-0000-0000-0000-000000000003", entity.MovementTypeEXIT, 5, "Salida oficina", "admin", "2025-02-21T11:30:00Z"),
			fixtureMovement("a1000000-0000-0000-0000-000000000001", "d1000000-0000-0000-0000-000000000001", entity.MovementTypeENTRY, 20, "Recepción pedido", "admin", "2025-02-20T10:00:00Z"),
		},
	}
}

// Create no persiste nada: variante de solo visualización.
func (r *FixtureMovementRepository) Create(*entity.StockMovement) error { return nil }

// GetByID obtiene un movimiento demo por ID.
func (r *FixtureMovementRepository) GetByID(id string) (*entity.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

// List lista movimientos demo con filtros, más recientes primero (el historial
// demo ya está en ese orden).
func (r *FixtureMovementRepository) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	var list []*entity.StockMovement
	skipped := 0
	for _, m := range r.movements {
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		if filter.From != nil && m.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && m.CreatedAt.After(*filter.To) {
			continue
		}
		if skipped < filter.Offset {
			skipped++
			continue
		}
		if len(list) >= limit {
			break
		}
		cp := *m
		list = append(list, &cp)
	}
	return list, nil
}

// ListByProduct lista los movimientos demo de un producto.
func (r *FixtureMovementRepository) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	return r.List(repository.MovementFilter{ProductID: productID, Limit: limit, Offset: offset})
}

// FixtureTxRunner ejecuta el callback directamente sobre los repositorios
// fixture, sin transacción real: como Save/Create son no-ops, el "posting" en
// modo fixture valida y notifica pero no persiste (documentado, solo demo).
type FixtureTxRunner struct {
	products  *FixtureProductRepository
	movements *FixtureMovementRepository
}

// NewFixtureTxRunner construye el runner demo.
func NewFixtureTxRunner(products *FixtureProductRepository, movements *FixtureMovementRepository) *FixtureTxRunner {
	return &FixtureTxRunner{products: products, movements: movements}
}

// Run ejecuta fn sin atomicidad real (no hay nada que confirmar).
func (r *FixtureTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	return fn(r.products, r.movements)
}

// FixtureUserRepository variante demo de UserRepository con un usuario admin
// precargado (admin@example.com / admin123). Create es un no-op.
type FixtureUserRepository struct {
	mu    sync.RWMutex
	users []*entity.User
}

// NewFixtureUserRepository construye el repositorio con el usuario demo.
func NewFixtureUserRepository() *FixtureUserRepository {
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	now := time.Now()
	return &FixtureUserRepository{
		users: []*entity.User{{
			ID:           "e1000000-0000-0000-0000-000000000001",
			Email:        "admin@example.com",
			PasswordHash: string(hash),
			Name:         "Admin Demo",
			Role:         entity.RoleAdmin,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		}},
	}
}

// Create no persiste nada: variante de solo visualización.
func (r *FixtureUserRepository) Create(*entity.User) error { return nil }

// GetByID obtiene un usuario demo por ID.
func (r *FixtureUserRepository) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// FindByEmail obtiene un usuario demo por email.
func (r *FixtureUserRepository) FindByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
