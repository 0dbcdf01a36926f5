package validation_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-control-api/internal/domain/entity"
	"github.com/jhoicas/stock-control-api/internal/domain/validation"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validProduct() *entity.Product {
	return &entity.Product{
		SKU:           "ABC-123",
		Name:          "Producto válido",
		CategoryID:    "cat-1",
		SupplierID:    "sup-1",
		UnitOfMeasure: entity.UnitUnit,
		CostPrice:     decPtr("5.00"),
		SellingPrice:  dec("8.00"),
		MinimumStock:  dec("1"),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Product
// ──────────────────────────────────────────────────────────────────────────────

func TestProduct_Valido(t *testing.T) {
	assert.False(t, validation.Product(validProduct()).HasErrors())
}

func TestProduct_SKUInvalido(t *testing.T) {
	p := validProduct()
	for _, sku := range []string{"", "abc-123", "ABC 123", "ÑU-1"} {
		p.SKU = sku
		ve := validation.Product(p)
		assert.Contains(t, ve.Fields, "sku", "sku %q debe rechazarse", sku)
	}
}

func TestProduct_PrecioVentaMenorQueCosto(t *testing.T) {
	p := validProduct()
	p.CostPrice = decPtr("10.00")
	p.SellingPrice = dec("8.00")
	ve := validation.Product(p)
	assert.Contains(t, ve.Fields, "selling_price",
		"venta <= costo se reporta sobre selling_price")
	assert.NotContains(t, ve.Fields, "cost_price")
}

func TestProduct_SinCostoNoExigeMargen(t *testing.T) {
	p := validProduct()
	p.CostPrice = nil
	assert.False(t, validation.Product(p).HasErrors())
}

func TestProduct_MaximoDebeSuperarMinimo(t *testing.T) {
	p := validProduct()
	p.MinimumStock = dec("10")
	p.MaximumStock = decPtr("10")
	ve := validation.Product(p)
	assert.Contains(t, ve.Fields, "maximum_stock")
}

func TestProduct_AcumulaVariosErrores(t *testing.T) {
	p := &entity.Product{SKU: "x", Name: "ab", UnitOfMeasure: entity.UnitOfMeasure(99)}
	ve := validation.Product(p)
	require.True(t, ve.HasErrors())
	for _, field := range []string{"sku", "name", "category_id", "supplier_id", "unit_of_measure", "selling_price"} {
		assert.Contains(t, ve.Fields, field)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Supplier
// ──────────────────────────────────────────────────────────────────────────────

func TestSupplier_CNPJDebeTener14Digitos(t *testing.T) {
	s := &entity.Supplier{Name: "Proveedor", CNPJ: "123"}
	assert.Contains(t, validation.Supplier(s).Fields, "cnpj")

	s.CNPJ = "11222333000181"
	assert.False(t, validation.Supplier(s).HasErrors())
}

func TestSupplier_EmailYTelefonoOpcionales(t *testing.T) {
	s := &entity.Supplier{Name: "Proveedor", CNPJ: "11222333000181"}
	assert.False(t, validation.Supplier(s).HasErrors())

	s.Email = "no-es-email"
	s.Phone = "123"
	ve := validation.Supplier(s)
	assert.Contains(t, ve.Fields, "email")
	assert.Contains(t, ve.Fields, "phone")
}

// ──────────────────────────────────────────────────────────────────────────────
// Movement: fecha a granularidad de día
// ──────────────────────────────────────────────────────────────────────────────

func movementAt(date time.Time) *entity.StockMovement {
	return &entity.StockMovement{
		ProductID:    "prod-1",
		UserID:       "user-1",
		Type:         entity.MovementEntry,
		Quantity:     dec("1"),
		MovementDate: date,
	}
}

func TestMovement_FechaHoyEsValida(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	// Más tarde el mismo día sigue siendo "hoy".
	ve := validation.Movement(movementAt(now.Add(8*time.Hour)), dec("100"), now)
	assert.False(t, ve.HasErrors())
}

func TestMovement_FechaMananaEsFutura(t *testing.T) {
	now := time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC)
	ve := validation.Movement(movementAt(now.Add(2*time.Hour)), dec("100"), now)
	assert.Contains(t, ve.Fields, "movement_date")
}

func TestMovement_FechaObligatoria(t *testing.T) {
	ve := validation.Movement(movementAt(time.Time{}), dec("100"), time.Now())
	assert.Contains(t, ve.Fields, "movement_date")
}

func TestMovement_CostoUnitarioDebeSerPositivo(t *testing.T) {
	m := movementAt(time.Now())
	m.UnitCost = decPtr("0")
	ve := validation.Movement(m, dec("100"), time.Now())
	assert.Contains(t, ve.Fields, "unit_cost")
}

func TestMovement_SalidaLimitadaPorStock(t *testing.T) {
	m := movementAt(time.Now())
	m.Type = entity.MovementExit
	m.Quantity = dec("5")

	assert.False(t, validation.Movement(m, dec("5"), time.Now()).HasErrors(),
		"salida igual al stock disponible es válida")
	assert.Contains(t, validation.Movement(m, dec("4.999"), time.Now()).Fields, "quantity",
		"salida mayor al stock disponible se rechaza")
}
