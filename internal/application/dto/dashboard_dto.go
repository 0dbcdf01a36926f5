package dto

import "github.com/shopspring/decimal"

// DashboardResponse métricas del tablero principal.
type DashboardResponse struct {
	TotalProducts      int                `json:"total_products"`
	LowStockProducts   int                `json:"low_stock_products"`
	OutOfStockProducts int                `json:"out_of_stock_products"`
	TotalStockValue    decimal.Decimal    `json:"total_stock_value"`
	TotalCategories    int                `json:"total_categories"`
	TotalSuppliers     int                `json:"total_suppliers"`
	RecentMovements    []MovementResponse `json:"recent_movements"`
}
