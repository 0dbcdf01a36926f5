// Package reporting implementa la fachada de consulta del ledger: listados
// filtrados, totales por tipo de movimiento, tablero y exportación CSV/PDF.
// Solo lectura: refleja el estado confirmado al momento de la consulta.
package reporting

import (
	"context"
	"time"

	"github.com/jhoicas/stock-control-api/internal/application/dto"
	"github.com/jhoicas/stock-control-api/internal/domain"
	"github.com/jhoicas/stock-control-api/internal/domain/entity"
	"github.com/jhoicas/stock-control-api/internal/domain/repository"
)

const recentMovementsLimit = 10 // movimientos recientes en el tablero

// ReportUseCase consultas de reporte sobre el ledger y métricas del tablero.
type ReportUseCase struct {
	reportRepo repository.MovementReportRepository
	dashRepo   repository.DashboardRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.MovementReportRepository, dashRepo repository.DashboardRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, dashRepo: dashRepo}
}

// parseFilter traduce el request HTTP a un filtro de repositorio.
func parseFilter(in dto.MovementListRequest) (repository.MovementFilter, error) {
	filter := repository.MovementFilter{
		ProductID: in.ProductID,
		UserID:    in.UserID,
		Search:    in.Search,
	}
	if in.Type != "" {
		t, err := entity.ParseMovementType(in.Type)
		if err != nil {
			ve := domain.NewValidationError()
			ve.Add("movement_type", "no es un tipo válido")
			return filter, ve
		}
		filter.Type = &t
	}
	if in.DateFrom != "" {
		from, err := time.Parse("2006-01-02", in.DateFrom)
		if err != nil {
			ve := domain.NewValidationError()
			ve.Add("date_from", "formato esperado YYYY-MM-DD")
			return filter, ve
		}
		filter.DateFrom = &from
	}
	if in.DateTo != "" {
		to, err := time.Parse("2006-01-02", in.DateTo)
		if err != nil {
			ve := domain.NewValidationError()
			ve.Add("date_to", "formato esperado YYYY-MM-DD")
			return filter, ve
		}
		// inclusivo: hasta el final del día
		end := to.Add(24*time.Hour - time.Nanosecond)
		filter.DateTo = &end
	}
	return filter, nil
}

// ListMovements lista movimientos filtrados, más recientes primero.
func (uc *ReportUseCase) ListMovements(ctx context.Context, in dto.MovementListRequest) (*dto.MovementListResponse, error) {
	in.DefaultPage()
	filter, err := parseFilter(in)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.List(ctx, filter, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.reportRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, toMovementResponse(r))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// GetMovement devuelve un movimiento por id.
func (uc *ReportUseCase) GetMovement(ctx context.Context, id string) (*dto.MovementResponse, error) {
	row, err := uc.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	out := toMovementResponse(*row)
	return &out, nil
}

// AggregateByType devuelve los totales de cantidad y valor agrupados por tipo
// de movimiento sobre el conjunto filtrado.
func (uc *ReportUseCase) AggregateByType(ctx context.Context, in dto.MovementListRequest) (*dto.MovementReportResponse, error) {
	filter, err := parseFilter(in)
	if err != nil {
		return nil, err
	}
	aggregates, err := uc.reportRepo.AggregateByType(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := uc.reportRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	totals := make(map[string]dto.TypeAggregateDTO, len(aggregates))
	for t, agg := range aggregates {
		totals[t.String()] = dto.TypeAggregateDTO{
			QuantitySum: agg.QuantitySum,
			ValueSum:    agg.ValueSum,
		}
	}
	return &dto.MovementReportResponse{Totals: totals, Count: count}, nil
}

// Dashboard arma las métricas del tablero. Las dos consultas (métricas y
// movimientos recientes) corren en paralelo.
func (uc *ReportUseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	type metricsResult struct {
		metrics *repository.DashboardMetrics
		err     error
	}
	type recentResult struct {
		rows []repository.MovementRow
		err  error
	}
	metricsCh := make(chan metricsResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		m, err := uc.dashRepo.Metrics(ctx)
		metricsCh <- metricsResult{m, err}
	}()
	go func() {
		rows, err := uc.dashRepo.RecentMovements(ctx, recentMovementsLimit)
		recentCh <- recentResult{rows, err}
	}()

	metrics := <-metricsCh
	recent := <-recentCh
	if metrics.err != nil {
		return nil, metrics.err
	}
	if recent.err != nil {
		return nil, recent.err
	}

	movements := make([]dto.MovementResponse, 0, len(recent.rows))
	for _, r := range recent.rows {
		movements = append(movements, toMovementResponse(r))
	}
	return &dto.DashboardResponse{
		TotalProducts:      metrics.metrics.TotalProducts,
		LowStockProducts:   metrics.metrics.LowStockProducts,
		OutOfStockProducts: metrics.metrics.OutOfStockProducts,
		TotalStockValue:    metrics.metrics.TotalStockValue,
		TotalCategories:    metrics.metrics.TotalCategories,
		TotalSuppliers:     metrics.metrics.TotalSuppliers,
		RecentMovements:    movements,
	}, nil
}

func toMovementResponse(r repository.MovementRow) dto.MovementResponse {
	m := r.Movement
	return dto.MovementResponse{
		ID:                m.ID,
		ProductID:         m.ProductID,
		ProductName:       r.ProductName,
		ProductSKU:        r.ProductSKU,
		UserID:            m.UserID,
		UserName:          r.UserName,
		Type:              m.Type.String(),
		Quantity:          m.Quantity,
		UnitCost:          m.UnitCost,
		TotalValue:        m.TotalValue,
		Reason:            m.Reason,
		ReferenceDocument: m.ReferenceDocument,
		MovementDate:      m.MovementDate,
		CreatedAt:         m.CreatedAt,
	}
}
