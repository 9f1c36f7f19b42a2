package reports

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/tu-usuario/inventario-core/internal/domain/entity"
	"github.com/tu-usuario/inventario-core/internal/domain/repository"
)

// ReportUseCase listados de movimientos para reportes y export CSV. Consumidor
// de solo lectura: no impone contratos adicionales sobre el motor de inventario.
type ReportUseCase struct {
	movementRepo repository.StockMovementRepository
	productRepo  repository.ProductRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(movementRepo repository.StockMovementRepository, productRepo repository.ProductRepository) *ReportUseCase {
	return &ReportUseCase{movementRepo: movementRepo, productRepo: productRepo}
}

// ListMovements lista movimientos aplicando los filtros dados, ordenados por
// fecha de creación descendente.
func (uc *ReportUseCase) ListMovements(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return uc.movementRepo.List(filter)
}

// ExportMovementsCSV escribe los movimientos filtrados como CSV en w.
// Columnas: ID, SKU, Producto, Tipo, Cantidad, Motivo, Usuario, Fecha.
// El SKU y el nombre se resuelven contra el catálogo; productos ya desactivados
// salen con el ID crudo (el libro los conserva igual).
func (uc *ReportUseCase) ExportMovementsCSV(w io.Writer, filter repository.MovementFilter) error {
	movements, err := uc.ListMovements(filter)
	if err != nil {
		return err
	}

	products, err := uc.productRepo.GetAll()
	if err != nil {
		return err
	}
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ID", "SKU", "Producto", "Tipo", "Cantidad", "Motivo", "Usuario", "Fecha"}); err != nil {
		return fmt.Errorf("escribir cabecera csv: %w", err)
	}
	for _, m := range movements {
		sku, name := m.ProductID, m.ProductID
		if p, ok := byID[m.ProductID]; ok {
			sku, name = p.SKU, p.Name
		}
		user := ""
		if m.PerformedBy != nil {
			user = *m.PerformedBy
		}
		record := []string{
			m.ID,
			sku,
			name,
			m.Type,
			fmt.Sprintf("%d", m.Quantity),
			m.Reason,
			user,
			m.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("escribir fila csv: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
