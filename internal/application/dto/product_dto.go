package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// current_stock se admite como valor inicial; después solo cambia vía movimientos.
type CreateProductRequest struct {
	SKU           string           `json:"sku"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	CategoryID    string           `json:"category_id"`
	SupplierID    string           `json:"supplier_id"`
	UnitOfMeasure string           `json:"unit_of_measure"`
	CostPrice     *decimal.Decimal `json:"cost_price,omitempty"`
	SellingPrice  decimal.Decimal  `json:"selling_price"`
	CurrentStock  decimal.Decimal  `json:"current_stock"`
	MinimumStock  decimal.Decimal  `json:"minimum_stock"`
	MaximumStock  *decimal.Decimal `json:"maximum_stock,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos nil no cambian.
// No incluye current_stock: el agregado solo lo muta el motor de movimientos.
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty"`
	Description   *string          `json:"description,omitempty"`
	CategoryID    *string          `json:"category_id,omitempty"`
	SupplierID    *string          `json:"supplier_id,omitempty"`
	UnitOfMeasure *string          `json:"unit_of_measure,omitempty"`
	CostPrice     *decimal.Decimal `json:"cost_price,omitempty"`
	SellingPrice  *decimal.Decimal `json:"selling_price,omitempty"`
	MinimumStock  *decimal.Decimal `json:"minimum_stock,omitempty"`
	MaximumStock  *decimal.Decimal `json:"maximum_stock,omitempty"`
	Active        *bool            `json:"active,omitempty"`
}

// ProductResponse representación pública de un producto.
type ProductResponse struct {
	ID            string           `json:"id"`
	SKU           string           `json:"sku"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	CategoryID    string           `json:"category_id"`
	SupplierID    string           `json:"supplier_id"`
	UnitOfMeasure string           `json:"unit_of_measure"`
	CostPrice     *decimal.Decimal `json:"cost_price,omitempty"`
	SellingPrice  decimal.Decimal  `json:"selling_price"`
	CurrentStock  decimal.Decimal  `json:"current_stock"`
	MinimumStock  decimal.Decimal  `json:"minimum_stock"`
	MaximumStock  *decimal.Decimal `json:"maximum_stock,omitempty"`
	LowStock      bool             `json:"low_stock"`
	OutOfStock    bool             `json:"out_of_stock"`
	Active        bool             `json:"active"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ProductListRequest filtros de listado de productos.
type ProductListRequest struct {
	PageRequest
	CategoryID string `query:"category_id"`
	SupplierID string `query:"supplier_id"`
	LowStock   bool   `query:"low_stock"`
	OutOfStock bool   `query:"out_of_stock"`
	Search     string `query:"search"`
	All        bool   `query:"all"` // incluye inactivos
}

// ProductListResponse página de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
