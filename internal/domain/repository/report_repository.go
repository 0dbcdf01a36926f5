package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/stock-control-api/internal/domain/entity"
)

// MovementFilter filtros del listado/reportes de movimientos.
type MovementFilter struct {
	ProductID string
	UserID    string
	Type      *entity.MovementType
	DateFrom  *time.Time
	DateTo    *time.Time
	Search    string // texto libre sobre nombre y sku del producto
}

// MovementRow fila de reporte: movimiento + datos denormalizados para listados
// y exportación (nombre de producto, sku, nombre de usuario).
type MovementRow struct {
	Movement    entity.StockMovement
	ProductName string
	ProductSKU  string
	UserName    string
}

// TypeAggregate totales por tipo de movimiento sobre un conjunto filtrado.
type TypeAggregate struct {
	QuantitySum decimal.Decimal
	ValueSum    decimal.Decimal
}

// DashboardMetrics métricas agregadas para el tablero.
type DashboardMetrics struct {
	TotalProducts      int
	LowStockProducts   int
	OutOfStockProducts int
	TotalStockValue    decimal.Decimal // Σ current_stock × selling_price (activos)
	TotalCategories    int
	TotalSuppliers     int
}

// MovementReportRepository consultas de solo lectura sobre el ledger.
// Refleja el estado confirmado al momento de la lectura; sin más invariantes.
type MovementReportRepository interface {
	List(ctx context.Context, filter MovementFilter, limit, offset int) ([]MovementRow, error)
	GetByID(ctx context.Context, id string) (*MovementRow, error)
	Count(ctx context.Context, filter MovementFilter) (int, error)
	AggregateByType(ctx context.Context, filter MovementFilter) (map[entity.MovementType]TypeAggregate, error)
}

// DashboardRepository consultas de solo lectura para el tablero.
type DashboardRepository interface {
	Metrics(ctx context.Context) (*DashboardMetrics, error)
	RecentMovements(ctx context.Context, limit int) ([]MovementRow, error)
}
