package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-core/internal/application/dto"
	"github.com/tu-usuario/inventario-core/internal/domain"
	"github.com/tu-usuario/inventario-core/internal/domain/entity"
	"github.com/tu-usuario/inventario-core/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para el catálogo. El stock NO se toca aquí:
// solo cambia vía el motor de movimientos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto nuevo. El SKU debe ser único; el stock inicial y el
// mínimo no pueden ser negativos.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.LessThan(decimal.Zero) || in.StockQuantity < 0 || in.MinimumStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		SKU:           in.SKU,
		Name:          in.Name,
		CategoryID:    in.CategoryID,
		SupplierID:    in.SupplierID,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
		MinimumStock:  in.MinimumStock,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Save(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto activo por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// GetBySKU obtiene un producto activo por SKU.
func (uc *ProductUseCase) GetBySKU(sku string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos activos, con filtros opcionales por categoría y solo-stock-bajo.
func (uc *ProductUseCase) List(in dto.ListProductsRequest) ([]*dto.ProductResponse, error) {
	var (
		products []*entity.Product
		err      error
	)
	if in.LowStockOnly {
		products, err = uc.repo.GetLowStock()
	} else {
		products, err = uc.repo.GetAll()
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if in.CategoryID != "" && (p.CategoryID == nil || *p.CategoryID != in.CategoryID) {
			continue
		}
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// LowStock lista los productos activos en o por debajo de su stock mínimo.
func (uc *ProductUseCase) LowStock() ([]*dto.ProductResponse, error) {
	products, err := uc.repo.GetLowStock()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update actualiza los datos de catálogo. SKU y StockQuantity son intocables:
// el SKU es inmutable y el stock solo cambia vía movimientos.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.LessThan(decimal.Zero) || in.MinimumStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = in.Name
	product.CategoryID = in.CategoryID
	product.SupplierID = in.SupplierID
	product.Price = in.Price
	product.MinimumStock = in.MinimumStock
	product.UpdatedAt = time.Now()
	if err := uc.repo.Save(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Deactivate desactiva el producto (borrado lógico). El historial de
// movimientos se conserva.
func (uc *ProductUseCase) Deactivate(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		CategoryID:    p.CategoryID,
		SupplierID:    p.SupplierID,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		MinimumStock:  p.MinimumStock,
		IsActive:      p.IsActive,
		LowStock:      p.IsLowStock(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
