package validation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/stock-control-api/internal/domain"
	"github.com/jhoicas/stock-control-api/internal/domain/entity"
)

// Movement valida un movimiento propuesto contra el stock previo del producto.
//
// currentStock es el valor leído ANTES de aplicar el efecto de este movimiento;
// el motor lo pasa desde la fila bloqueada para que la verificación de salida
// y el decremento ocurran sobre el mismo valor, en la misma transacción.
//
// quantity > 0 para entry/exit/return; adjustment admite 0 (fija el stock en
// cero). La fecha se compara a granularidad de día: hoy es válido, mañana no.
func Movement(m *entity.StockMovement, currentStock decimal.Decimal, now time.Time) *domain.ValidationError {
	ve := domain.NewValidationError()
	if m.ProductID == "" {
		ve.Add("product_id", "es obligatorio")
	}
	if m.UserID == "" {
		ve.Add("user_id", "es obligatorio")
	}
	if !m.Type.Valid() {
		ve.Add("movement_type", "no es un tipo válido")
	}
	switch {
	case m.Type == entity.MovementAdjustment:
		if m.Quantity.LessThan(decimal.Zero) {
			ve.Add("quantity", "debe ser mayor o igual a cero")
		}
	case !m.Quantity.GreaterThan(decimal.Zero):
		ve.Add("quantity", "debe ser mayor que cero")
	}
	if m.UnitCost != nil && !m.UnitCost.GreaterThan(decimal.Zero) {
		ve.Add("unit_cost", "debe ser mayor que cero")
	}
	if m.MovementDate.IsZero() {
		ve.Add("movement_date", "es obligatoria")
	} else if afterToday(m.MovementDate, now) {
		ve.Add("movement_date", "no puede ser futura")
	}
	if m.Type == entity.MovementExit && m.Quantity.GreaterThan(currentStock) {
		ve.Add("quantity", fmt.Sprintf("excede el stock disponible (%s)", currentStock.String()))
	}
	return ve
}
