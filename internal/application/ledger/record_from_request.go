package ledger

import (
	"context"

	"github.com/jhoicas/stock-control-api/internal/application/dto"
	"github.com/jhoicas/stock-control-api/internal/domain"
	"github.com/jhoicas/stock-control-api/internal/domain/entity"
)

// RecordFromRequest adapta el request HTTP al caso de uso
// RecordMovement(ctx, MovementInput). El userID sale del token, nunca del body.
func (uc *RecordMovementUseCase) RecordFromRequest(ctx context.Context, userID string, in dto.RecordMovementRequest) (*entity.StockMovement, error) {
	movType, err := entity.ParseMovementType(in.Type)
	if err != nil {
		ve := domain.NewValidationError()
		ve.Add("movement_type", "no es un tipo válido")
		return nil, ve
	}
	return uc.RecordMovement(ctx, MovementInput{
		ProductID:         in.ProductID,
		UserID:            userID,
		Type:              movType,
		Quantity:          in.Quantity,
		UnitCost:          in.UnitCost,
		Reason:            in.Reason,
		ReferenceDocument: in.ReferenceDocument,
		MovementDate:      in.MovementDate,
	})
}
