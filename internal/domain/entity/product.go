package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// UnitOfMeasure unidad de medida del producto. Se persiste como SMALLINT;
// el mapeo numérico es explícito y no debe reordenarse.
type UnitOfMeasure int

const (
	UnitUnit    UnitOfMeasure = 0
	UnitKg      UnitOfMeasure = 1
	UnitLiter   UnitOfMeasure = 2
	UnitMeter   UnitOfMeasure = 3
	UnitBox     UnitOfMeasure = 4
	UnitPackage UnitOfMeasure = 5
)

var unitNames = map[UnitOfMeasure]string{
	UnitUnit:    "unit",
	UnitKg:      "kg",
	UnitLiter:   "liter",
	UnitMeter:   "meter",
	UnitBox:     "box",
	UnitPackage: "package",
}

// String devuelve el nombre expuesto en la API.
func (u UnitOfMeasure) String() string {
	if s, ok := unitNames[u]; ok {
		return s
	}
	return fmt.Sprintf("unit_of_measure(%d)", int(u))
}

// Valid indica si el valor está dentro del rango conocido.
func (u UnitOfMeasure) Valid() bool {
	_, ok := unitNames[u]
	return ok
}

// ParseUnitOfMeasure convierte el nombre API a UnitOfMeasure.
func ParseUnitOfMeasure(s string) (UnitOfMeasure, error) {
	for u, name := range unitNames {
		if name == s {
			return u, nil
		}
	}
	return 0, fmt.Errorf("unidad de medida desconocida: %q", s)
}

// Product representa un producto del inventario.
//
// CurrentStock es una proyección derivada del ledger de movimientos: solo el
// motor de movimientos puede mutarla, siempre en la misma transacción que
// inserta el movimiento.
type Product struct {
	ID            string
	SKU           string // único, patrón [A-Z0-9-]+
	Name          string // 3-200 caracteres
	Description   string
	CategoryID    string
	SupplierID    string
	UnitOfMeasure UnitOfMeasure
	CostPrice     *decimal.Decimal // opcional, >= 0
	SellingPrice  decimal.Decimal  // > 0, mayor que CostPrice si este existe
	CurrentStock  decimal.Decimal  // >= 0, agregado mutable
	MinimumStock  decimal.Decimal  // >= 0
	MaximumStock  *decimal.Decimal // opcional, > MinimumStock
	Active        bool
	DeletedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Deleted indica si el producto está marcado como eliminado.
func (p *Product) Deleted() bool { return p.DeletedAt != nil }

// LowStock indica stock en o por debajo del mínimo.
func (p *Product) LowStock() bool {
	return p.CurrentStock.LessThanOrEqual(p.MinimumStock)
}

// OutOfStock indica stock agotado.
func (p *Product) OutOfStock() bool {
	return p.CurrentStock.IsZero()
}

// ProfitMargin devuelve el margen porcentual sobre el costo, redondeado a 2
// decimales. Cero si no hay costo registrado.
func (p *Product) ProfitMargin() decimal.Decimal {
	if p.CostPrice == nil || p.CostPrice.IsZero() {
		return decimal.Zero
	}
	hundred := decimal.NewFromInt(100)
	return p.SellingPrice.Sub(*p.CostPrice).Div(*p.CostPrice).Mul(hundred).Round(2)
}
