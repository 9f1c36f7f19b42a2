package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventario-core/internal/domain"
	"github.com/tu-usuario/inventario-core/internal/domain/entity"
	"github.com/tu-usuario/inventario-core/internal/domain/repository"
	"github.com/tu-usuario/inventario-core/pkg/logger"
)

// RegisterMovementUseCase registra movimientos de stock de forma transaccional
// (ENTRY, EXIT, ADJUSTMENT) con bloqueo de fila (SELECT FOR UPDATE) y
// Commit/Rollback. Es el único punto por donde se muta StockQuantity: los
// handlers, jobs y tests nunca escriben el stock directamente.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	subject  *StockSubject
	log      *logger.Logger
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, subject *StockSubject, log *logger.Logger) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, subject: subject, log: log}
}

// MovementInput entrada para registrar un movimiento de stock.
type MovementInput struct {
	ProductID string
	Type      string // ENTRY, EXIT, ADJUSTMENT
	Quantity  int64  // siempre positivo; en ADJUSTMENT es el valor absoluto final
	Reason    string
	UserID    *string // usuario que ejecuta; nil para procesos sin usuario
}

// PostResult resultado de un posting exitoso: el movimiento creado, el producto
// tras la mutación y las advertencias de observers si las hubo.
type PostResult struct {
	Movement *entity.StockMovement
	Product  *entity.Product
	Warnings []error
}

// PostMovement ejecuta un movimiento como una unidad atómica:
// carga el producto bloqueando la fila, valida el invariante, muta el stock,
// persiste producto y movimiento en la misma transacción y, tras el commit,
// notifica a los observers exactamente una vez.
//
// ENTRY suma Quantity, EXIT resta exigiendo stock suficiente (el rechazo ocurre
// antes de cualquier escritura) y ADJUSTMENT fija el stock en Quantity.
func (uc *RegisterMovementUseCase) PostMovement(ctx context.Context, input MovementInput) (*PostResult, error) {
	// Re-validación: este caso de uso es la frontera de confianza del invariante,
	// aunque el handler ya haya validado la forma del request.
	if !entity.ValidMovementType(input.Type) || input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if len(input.Reason) > 255 {
		return nil, domain.ErrInvalidInput
	}

	var (
		movement *entity.StockMovement
		snapshot *entity.Product
	)
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		// Bloquea la fila del producto durante toda la transacción. Dos postings
		// concurrentes sobre el mismo producto se serializan aquí; productos
		// distintos no se bloquean entre sí.
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil || !product.IsActive {
			return domain.ErrNotFound
		}

		now := time.Now()
		switch input.Type {
		case entity.MovementTypeENTRY:
			product.StockQuantity += input.Quantity
		case entity.MovementTypeEXIT:
			// La verificación ocurre antes de cualquier escritura: el rechazo no
			// deja efectos ni en el producto ni en el libro.
			if input.Quantity > product.StockQuantity {
				return &domain.InsufficientStockError{Available: product.StockQuantity}
			}
			product.StockQuantity -= input.Quantity
		case entity.MovementTypeADJUSTMENT:
			product.StockQuantity = input.Quantity
		}
		product.UpdatedAt = now

		if err := productRepo.Save(product); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			Type:        input.Type,
			Quantity:    input.Quantity,
			Reason:      input.Reason,
			PerformedBy: input.UserID,
			CreatedAt:   now,
		}
		if err := movementRepo.Create(mov); err != nil {
			return err
		}

		movement = mov
		cp := *product
		snapshot = &cp
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Commit hecho: notificar exactamente una vez con el producto ya mutado.
	// Las fallas de observers se aíslan y se devuelven como advertencias; el
	// movimiento ya es durable y no se revierte.
	warnings := uc.subject.Notify(snapshot, movement)
	for _, w := range warnings {
		uc.log.Warn().Err(w).
			Str("movement_id", movement.ID).
			Str("product_id", snapshot.ID).
			Msg("observer falló tras el commit")
	}
	return &PostResult{Movement: movement, Product: snapshot, Warnings: warnings}, nil
}
