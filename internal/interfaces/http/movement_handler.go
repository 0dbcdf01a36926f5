package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-control-api/internal/application/dto"
	"github.com/jhoicas/stock-control-api/internal/application/ledger"
	"github.com/jhoicas/stock-control-api/internal/application/reporting"
)

// MovementHandler maneja el registro y listado de movimientos de stock.
// No hay rutas de update ni delete: el ledger es inmutable.
type MovementHandler struct {
	recordUC *ledger.RecordMovementUseCase
	reportUC *reporting.ReportUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(recordUC *ledger.RecordMovementUseCase, reportUC *reporting.ReportUseCase) *MovementHandler {
	return &MovementHandler{recordUC: recordUC, reportUC: reportUC}
}

// Record registra un movimiento. El usuario actor sale del token, nunca del
// body. Un 409 CONFLICT indica contención sobre el producto: reintentar.
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movement, err := h.recordUC.RecordFromRequest(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		ID:                movement.ID,
		ProductID:         movement.ProductID,
		UserID:            movement.UserID,
		Type:              movement.Type.String(),
		Quantity:          movement.Quantity,
		UnitCost:          movement.UnitCost,
		TotalValue:        movement.TotalValue,
		Reason:            movement.Reason,
		ReferenceDocument: movement.ReferenceDocument,
		MovementDate:      movement.MovementDate,
		CreatedAt:         movement.CreatedAt,
	})
}

// GetByID devuelve un movimiento por id.
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.reportUC.GetMovement(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista movimientos filtrados, más recientes primero.
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var in dto.MovementListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.reportUC.ListMovements(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
