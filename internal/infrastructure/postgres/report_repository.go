package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-control-api/internal/domain/entity"
	"github.com/jhoicas/stock-control-api/internal/domain/repository"
)

var _ repository.MovementReportRepository = (*ReportRepo)(nil)
var _ repository.DashboardRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura sobre el ledger y métricas del tablero.
// Las queries con filtros dinámicos se arman con squirrel.
//
// Los joins son sin filtro de deleted_at: los movimientos de productos o
// usuarios eliminados siguen apareciendo en el historial.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// applyFilter agrega las condiciones del filtro a una query sobre
// stock_movements m JOIN products p JOIN users u.
func applyFilter(builder sq.SelectBuilder, filter repository.MovementFilter) sq.SelectBuilder {
	if filter.ProductID != "" {
		builder = builder.Where(sq.Eq{"m.product_id": filter.ProductID})
	}
	if filter.UserID != "" {
		builder = builder.Where(sq.Eq{"m.user_id": filter.UserID})
	}
	if filter.Type != nil {
		builder = builder.Where(sq.Eq{"m.movement_type": int16(*filter.Type)})
	}
	if filter.DateFrom != nil {
		builder = builder.Where(sq.GtOrEq{"m.movement_date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		builder = builder.Where(sq.LtOrEq{"m.movement_date": *filter.DateTo})
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"p.name": like},
			sq.ILike{"p.sku": like},
		})
	}
	return builder
}

func movementRowsBuilder() sq.SelectBuilder {
	return psql.Select(
		"m.id", "m.product_id", "m.user_id", "m.movement_type", "m.quantity", "m.unit_cost",
		"m.total_value", "m.reason", "m.reference_document", "m.movement_date", "m.created_at",
		"p.name", "p.sku", "u.name",
	).
		From("stock_movements m").
		Join("products p ON p.id = m.product_id").
		Join("users u ON u.id = m.user_id")
}

func (r *ReportRepo) queryRows(ctx context.Context, builder sq.SelectBuilder) ([]repository.MovementRow, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build movements query: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query movements: %w", err)
	}
	defer rows.Close()
	var list []repository.MovementRow
	for rows.Next() {
		var row repository.MovementRow
		var mt int16
		m := &row.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.UserID, &mt, &m.Quantity, &m.UnitCost,
			&m.TotalValue, &m.Reason, &m.ReferenceDocument, &m.MovementDate, &m.CreatedAt,
			&row.ProductName, &row.ProductSKU, &row.UserName); err != nil {
			return nil, fmt.Errorf("scan movement row: %w", err)
		}
		m.Type = entity.MovementType(mt)
		list = append(list, row)
	}
	return list, rows.Err()
}

// List lista movimientos filtrados, más recientes primero.
func (r *ReportRepo) List(ctx context.Context, filter repository.MovementFilter, limit, offset int) ([]repository.MovementRow, error) {
	builder := applyFilter(movementRowsBuilder(), filter).
		OrderBy("m.movement_date DESC", "m.created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))
	return r.queryRows(ctx, builder)
}

// GetByID devuelve un movimiento con sus datos denormalizados, o nil si no existe.
func (r *ReportRepo) GetByID(ctx context.Context, id string) (*repository.MovementRow, error) {
	rows, err := r.queryRows(ctx, movementRowsBuilder().Where(sq.Eq{"m.id": id}))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// Count cuenta los movimientos que satisfacen el filtro.
func (r *ReportRepo) Count(ctx context.Context, filter repository.MovementFilter) (int, error) {
	builder := applyFilter(psql.Select("count(*)").
		From("stock_movements m").
		Join("products p ON p.id = m.product_id").
		Join("users u ON u.id = m.user_id"), filter)
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}
	var count int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return count, nil
}

// AggregateByType devuelve sumas de cantidad y valor agrupadas por tipo de
// movimiento sobre el conjunto filtrado.
func (r *ReportRepo) AggregateByType(ctx context.Context, filter repository.MovementFilter) (map[entity.MovementType]repository.TypeAggregate, error) {
	builder := applyFilter(psql.Select(
		"m.movement_type",
		"coalesce(sum(m.quantity), 0)",
		"coalesce(sum(m.total_value), 0)",
	).
		From("stock_movements m").
		Join("products p ON p.id = m.product_id").
		Join("users u ON u.id = m.user_id"), filter).
		GroupBy("m.movement_type")
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build aggregate query: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("aggregate movements: %w", err)
	}
	defer rows.Close()
	result := make(map[entity.MovementType]repository.TypeAggregate)
	for rows.Next() {
		var mt int16
		var agg repository.TypeAggregate
		if err := rows.Scan(&mt, &agg.QuantitySum, &agg.ValueSum); err != nil {
			return nil, fmt.Errorf("scan aggregate: %w", err)
		}
		result[entity.MovementType(mt)] = agg
	}
	return result, rows.Err()
}

// Metrics calcula las métricas agregadas del tablero en una sola pasada sobre
// productos activos, más los conteos de categorías y proveedores.
func (r *ReportRepo) Metrics(ctx context.Context) (*repository.DashboardMetrics, error) {
	query := `
		SELECT count(*),
			count(*) FILTER (WHERE current_stock <= minimum_stock),
			count(*) FILTER (WHERE current_stock = 0),
			coalesce(sum(current_stock * selling_price), 0)
		FROM products WHERE deleted_at IS NULL AND active = true`
	var m repository.DashboardMetrics
	var totalValue decimal.Decimal
	if err := r.q.QueryRow(ctx, query).Scan(
		&m.TotalProducts, &m.LowStockProducts, &m.OutOfStockProducts, &totalValue,
	); err != nil {
		return nil, fmt.Errorf("dashboard product metrics: %w", err)
	}
	m.TotalStockValue = totalValue

	if err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM categories WHERE deleted_at IS NULL AND active = true`,
	).Scan(&m.TotalCategories); err != nil {
		return nil, fmt.Errorf("dashboard category count: %w", err)
	}
	if err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM suppliers WHERE deleted_at IS NULL AND active = true`,
	).Scan(&m.TotalSuppliers); err != nil {
		return nil, fmt.Errorf("dashboard supplier count: %w", err)
	}
	return &m, nil
}

// RecentMovements devuelve los últimos movimientos registrados.
func (r *ReportRepo) RecentMovements(ctx context.Context, limit int) ([]repository.MovementRow, error) {
	builder := movementRowsBuilder().
		OrderBy("m.created_at DESC").
		Limit(uint64(limit))
	return r.queryRows(ctx, builder)
}
