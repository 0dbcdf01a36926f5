package validation

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/stock-control-api/internal/domain"
	"github.com/jhoicas/stock-control-api/internal/domain/entity"
)

// Product valida los campos propios de un producto. La unicidad del SKU y la
// existencia de categoría/proveedor las agrega el caso de uso.
//
// La regla selling_price > cost_price se reporta como error del campo
// selling_price, sin invalidar campos no relacionados.
func Product(p *entity.Product) *domain.ValidationError {
	ve := domain.NewValidationError()
	if p.SKU == "" {
		ve.Add("sku", "es obligatorio")
	} else if !skuPattern.MatchString(p.SKU) {
		ve.Add("sku", "debe ser alfanumérico en mayúsculas, con guiones")
	}
	if len(p.Name) < 3 || len(p.Name) > 200 {
		ve.Add("name", "debe tener entre 3 y 200 caracteres")
	}
	if p.CategoryID == "" {
		ve.Add("category_id", "es obligatorio")
	}
	if p.SupplierID == "" {
		ve.Add("supplier_id", "es obligatorio")
	}
	if !p.UnitOfMeasure.Valid() {
		ve.Add("unit_of_measure", "no es una unidad válida")
	}
	if !p.SellingPrice.GreaterThan(decimal.Zero) {
		ve.Add("selling_price", "debe ser mayor que cero")
	}
	if p.CostPrice != nil && p.CostPrice.LessThan(decimal.Zero) {
		ve.Add("cost_price", "debe ser mayor o igual a cero")
	}
	if p.CostPrice != nil && p.SellingPrice.LessThanOrEqual(*p.CostPrice) {
		ve.Add("selling_price", "debe ser mayor que el costo")
	}
	if p.CurrentStock.LessThan(decimal.Zero) {
		ve.Add("current_stock", "debe ser mayor o igual a cero")
	}
	if p.MinimumStock.LessThan(decimal.Zero) {
		ve.Add("minimum_stock", "debe ser mayor o igual a cero")
	}
	if p.MaximumStock != nil && p.MaximumStock.LessThanOrEqual(p.MinimumStock) {
		ve.Add("maximum_stock", "debe ser mayor que el stock mínimo")
	}
	return ve
}
