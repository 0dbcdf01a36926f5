package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordMovementRequest body para POST /api/movements.
type RecordMovementRequest struct {
	ProductID         string           `json:"product_id"`
	Type              string           `json:"movement_type"` // entry | exit | adjustment | return
	Quantity          decimal.Decimal  `json:"quantity"`
	UnitCost          *decimal.Decimal `json:"unit_cost,omitempty"`
	Reason            string           `json:"reason,omitempty"`
	ReferenceDocument string           `json:"reference_document,omitempty"`
	MovementDate      time.Time        `json:"movement_date"`
}

// MovementResponse representación pública de un movimiento del ledger.
type MovementResponse struct {
	ID                string           `json:"id"`
	ProductID         string           `json:"product_id"`
	ProductName       string           `json:"product_name,omitempty"`
	ProductSKU        string           `json:"product_sku,omitempty"`
	UserID            string           `json:"user_id"`
	UserName          string           `json:"user_name,omitempty"`
	Type              string           `json:"movement_type"`
	Quantity          decimal.Decimal  `json:"quantity"`
	UnitCost          *decimal.Decimal `json:"unit_cost,omitempty"`
	TotalValue        decimal.Decimal  `json:"total_value"`
	Reason            string           `json:"reason,omitempty"`
	ReferenceDocument string           `json:"reference_document,omitempty"`
	MovementDate      time.Time        `json:"movement_date"`
	CreatedAt         time.Time        `json:"created_at"`
}

// MovementListRequest filtros del listado de movimientos.
type MovementListRequest struct {
	PageRequest
	ProductID string `query:"product_id"`
	UserID    string `query:"user_id"`
	Type      string `query:"movement_type"`
	DateFrom  string `query:"date_from"` // YYYY-MM-DD
	DateTo    string `query:"date_to"`   // YYYY-MM-DD
	Search    string `query:"search"`
}

// MovementListResponse página de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// TypeAggregateDTO totales de un tipo de movimiento sobre el conjunto filtrado.
type TypeAggregateDTO struct {
	QuantitySum decimal.Decimal `json:"quantity_sum"`
	ValueSum    decimal.Decimal `json:"value_sum"`
}

// MovementReportResponse reporte agregado por tipo.
type MovementReportResponse struct {
	Totals map[string]TypeAggregateDTO `json:"totals_by_type"`
	Count  int                         `json:"movement_count"`
}
