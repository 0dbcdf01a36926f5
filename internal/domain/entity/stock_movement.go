package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MovementType tipo de movimiento de stock. Se persiste como SMALLINT con
// mapeo explícito.
type MovementType int

const (
	MovementEntry      MovementType = 0
	MovementExit       MovementType = 1
	MovementAdjustment MovementType = 2
	MovementReturn     MovementType = 3
)

var movementNames = map[MovementType]string{
	MovementEntry:      "entry",
	MovementExit:       "exit",
	MovementAdjustment: "adjustment",
	MovementReturn:     "return",
}

// String devuelve el nombre expuesto en la API.
func (t MovementType) String() string {
	if s, ok := movementNames[t]; ok {
		return s
	}
	return fmt.Sprintf("movement_type(%d)", int(t))
}

// Valid indica si el valor está dentro del rango conocido.
func (t MovementType) Valid() bool {
	_, ok := movementNames[t]
	return ok
}

// ParseMovementType convierte el nombre API a MovementType.
func ParseMovementType(s string) (MovementType, error) {
	for t, name := range movementNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("tipo de movimiento desconocido: %q", s)
}

// StockMovement es un evento del ledger de stock. Inmutable una vez creado:
// no existe operación de actualización ni borrado, ni en repositorios ni en
// la API. El efecto sobre Product.CurrentStock se aplica en la misma
// transacción que inserta el movimiento.
//
// Semántica por tipo: entry y return suman Quantity al stock, exit la resta,
// adjustment fija el stock en Quantity (valor absoluto, no delta).
type StockMovement struct {
	ID                string
	ProductID         string
	UserID            string // actor que registró el movimiento
	Type              MovementType
	Quantity          decimal.Decimal  // > 0 (adjustment admite 0)
	UnitCost          *decimal.Decimal // opcional, > 0
	TotalValue        decimal.Decimal  // UnitCost × Quantity redondeado a 2; 0 sin costo
	Reason            string
	ReferenceDocument string
	MovementDate      time.Time // nunca futura
	CreatedAt         time.Time
}

// ComputeTotalValue deriva el valor total del movimiento.
func ComputeTotalValue(unitCost *decimal.Decimal, quantity decimal.Decimal) decimal.Decimal {
	if unitCost == nil {
		return decimal.Zero
	}
	return unitCost.Mul(quantity).Round(2)
}
