// Package ledger implementa el motor de movimientos de stock: el único
// componente autorizado a crear StockMovements y a mutar
// Product.CurrentStock. Ambas escrituras ocurren en una sola transacción
// sobre la fila del producto bloqueada (SELECT FOR UPDATE), de modo que
// movimientos concurrentes sobre el mismo producto se serializan y sobre
// productos distintos avanzan en paralelo.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/stock-control-api/internal/domain"
	"github.com/jhoicas/stock-control-api/internal/domain/entity"
	"github.com/jhoicas/stock-control-api/internal/domain/repository"
	"github.com/jhoicas/stock-control-api/internal/domain/validation"
)

// RecordMovementUseCase registra movimientos del ledger de forma transaccional.
type RecordMovementUseCase struct {
	txRunner TxRunner
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(txRunner TxRunner, userRepo repository.UserRepository) *RecordMovementUseCase {
	return &RecordMovementUseCase{
		txRunner: txRunner,
		userRepo: userRepo,
		now:      time.Now,
	}
}

// MovementInput entrada para registrar un movimiento.
type MovementInput struct {
	ProductID         string
	UserID            string
	Type              entity.MovementType
	Quantity          decimal.Decimal
	UnitCost          *decimal.Decimal
	Reason            string
	ReferenceDocument string
	MovementDate      time.Time
}

// RecordMovement valida el movimiento propuesto, bloquea la fila del producto
// y, en la misma transacción, inserta el movimiento y aplica el efecto
// derivado sobre current_stock:
//
//	entry | return → current_stock += quantity
//	exit           → current_stock -= quantity
//	adjustment     → current_stock  = quantity (valor absoluto)
//
// La validación corre dentro de la transacción, antes de cualquier escritura:
// la suficiencia de exit se verifica contra el valor leído bajo el lock, el
// mismo sobre el que después se aplica el decremento. Producto o usuario
// inexistente falla antes de escribir; un timeout de lock llega como
// domain.ErrConflict y el caller debe reintentar la operación completa.
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, input MovementInput) (*entity.StockMovement, error) {
	if input.ProductID == "" || input.UserID == "" {
		return nil, domain.ErrInvalidInput
	}

	// Existencia del actor: falla antes de abrir la transacción.
	user, err := uc.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Deleted() {
		return nil, domain.ErrUserNotFound
	}

	now := uc.now()
	movement := &entity.StockMovement{
		ID:                uuid.New().String(),
		ProductID:         input.ProductID,
		UserID:            input.UserID,
		Type:              input.Type,
		Quantity:          input.Quantity,
		UnitCost:          input.UnitCost,
		TotalValue:        entity.ComputeTotalValue(input.UnitCost, input.Quantity),
		Reason:            input.Reason,
		ReferenceDocument: input.ReferenceDocument,
		MovementDate:      input.MovementDate,
		CreatedAt:         now,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto; hasta el commit nadie más puede
		// leer-modificar current_stock.
		locked, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if locked == nil || locked.Deleted() {
			return domain.ErrNotFound
		}

		if ve := validation.Movement(movement, locked.CurrentStock, now); ve.HasErrors() {
			return ve
		}

		if err := movRepo.Create(movement); err != nil {
			return err
		}
		return productRepo.UpdateStock(input.ProductID, applyEffect(locked.CurrentStock, movement))
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// applyEffect deriva el nuevo current_stock a partir del valor bloqueado.
func applyEffect(current decimal.Decimal, m *entity.StockMovement) decimal.Decimal {
	switch m.Type {
	case entity.MovementEntry, entity.MovementReturn:
		return current.Add(m.Quantity)
	case entity.MovementExit:
		return current.Sub(m.Quantity)
	case entity.MovementAdjustment:
		return m.Quantity
	}
	return current
}
