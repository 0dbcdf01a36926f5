package reporting_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-control-api/internal/application/dto"
	"github.com/jhoicas/stock-control-api/internal/application/reporting"
	"github.com/jhoicas/stock-control-api/internal/domain"
	"github.com/jhoicas/stock-control-api/internal/domain/entity"
	"github.com/jhoicas/stock-control-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeReportRepo struct {
	rows       []repository.MovementRow
	aggregates map[entity.MovementType]repository.TypeAggregate
	metrics    repository.DashboardMetrics
	lastFilter repository.MovementFilter
}

func (r *fakeReportRepo) List(_ context.Context, filter repository.MovementFilter, limit, offset int) ([]repository.MovementRow, error) {
	r.lastFilter = filter
	if offset >= len(r.rows) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.rows) {
		end = len(r.rows)
	}
	return r.rows[offset:end], nil
}

func (r *fakeReportRepo) GetByID(_ context.Context, id string) (*repository.MovementRow, error) {
	for i := range r.rows {
		if r.rows[i].Movement.ID == id {
			return &r.rows[i], nil
		}
	}
	return nil, nil
}

func (r *fakeReportRepo) Count(_ context.Context, filter repository.MovementFilter) (int, error) {
	r.lastFilter = filter
	return len(r.rows), nil
}

func (r *fakeReportRepo) AggregateByType(context.Context, repository.MovementFilter) (map[entity.MovementType]repository.TypeAggregate, error) {
	return r.aggregates, nil
}

func (r *fakeReportRepo) Metrics(context.Context) (*repository.DashboardMetrics, error) {
	m := r.metrics
	return &m, nil
}

func (r *fakeReportRepo) RecentMovements(_ context.Context, limit int) ([]repository.MovementRow, error) {
	if limit > len(r.rows) {
		limit = len(r.rows)
	}
	return r.rows[:limit], nil
}

func sampleRow(qty, total string) repository.MovementRow {
	unitCost := decimal.RequireFromString("2.50")
	return repository.MovementRow{
		Movement: entity.StockMovement{
			ID:           "mov-1",
			ProductID:    "prod-1",
			UserID:       "user-1",
			Type:         entity.MovementEntry,
			Quantity:     decimal.RequireFromString(qty),
			UnitCost:     &unitCost,
			TotalValue:   decimal.RequireFromString(total),
			Reason:       "Compra",
			MovementDate: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
			CreatedAt:    time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC),
		},
		ProductName: "Monitor LED",
		ProductSKU:  "MON-24",
		UserName:    "Operador",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtros
// ──────────────────────────────────────────────────────────────────────────────

func TestListMovements_FechaInvalida_ErrorDeValidacion(t *testing.T) {
	uc := reporting.NewReportUseCase(&fakeReportRepo{}, &fakeReportRepo{})
	_, err := uc.ListMovements(context.Background(), dto.MovementListRequest{DateFrom: "15/08/2026"})
	require.Error(t, err)
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "date_from")
}

func TestListMovements_TipoInvalido_ErrorDeValidacion(t *testing.T) {
	uc := reporting.NewReportUseCase(&fakeReportRepo{}, &fakeReportRepo{})
	_, err := uc.ListMovements(context.Background(), dto.MovementListRequest{Type: "compra"})
	require.Error(t, err)
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "movement_type")
}

// date_to es inclusivo: el filtro debe cubrir hasta el final de ese día.
func TestListMovements_DateToInclusivo(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := reporting.NewReportUseCase(repo, repo)
	_, err := uc.ListMovements(context.Background(), dto.MovementListRequest{DateTo: "2026-08-15"})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.DateTo)
	endOfDay := time.Date(2026, 8, 15, 23, 59, 59, 0, time.UTC)
	assert.True(t, repo.lastFilter.DateTo.After(endOfDay) || repo.lastFilter.DateTo.Equal(endOfDay),
		"el límite superior debe caer al final del día 15")
	assert.True(t, repo.lastFilter.DateTo.Before(time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC)),
		"el límite superior no debe tocar el día 16")
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregados y tablero
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregateByType_MapeaPorNombre(t *testing.T) {
	repo := &fakeReportRepo{
		rows: []repository.MovementRow{sampleRow("10", "25.00")},
		aggregates: map[entity.MovementType]repository.TypeAggregate{
			entity.MovementEntry: {QuantitySum: decimal.NewFromInt(10), ValueSum: decimal.RequireFromString("25.00")},
			entity.MovementExit:  {QuantitySum: decimal.NewFromInt(4), ValueSum: decimal.Zero},
		},
	}
	uc := reporting.NewReportUseCase(repo, repo)
	out, err := uc.AggregateByType(context.Background(), dto.MovementListRequest{})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Count)
	require.Contains(t, out.Totals, "entry")
	require.Contains(t, out.Totals, "exit")
	assert.True(t, out.Totals["entry"].QuantitySum.Equal(decimal.NewFromInt(10)))
	assert.True(t, out.Totals["exit"].QuantitySum.Equal(decimal.NewFromInt(4)))
}

func TestDashboard_CombinaMetricasYRecientes(t *testing.T) {
	repo := &fakeReportRepo{
		rows: []repository.MovementRow{sampleRow("10", "25.00")},
		metrics: repository.DashboardMetrics{
			TotalProducts:    7,
			LowStockProducts: 2,
			TotalStockValue:  decimal.RequireFromString("1234.50"),
			TotalCategories:  3,
			TotalSuppliers:   2,
		},
	}
	uc := reporting.NewReportUseCase(repo, repo)
	out, err := uc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 7, out.TotalProducts)
	assert.Equal(t, 2, out.LowStockProducts)
	assert.True(t, out.TotalStockValue.Equal(decimal.RequireFromString("1234.50")))
	require.Len(t, out.RecentMovements, 1)
	assert.Equal(t, "Monitor LED", out.RecentMovements[0].ProductName)
	assert.Equal(t, "entry", out.RecentMovements[0].Type)
}

// ──────────────────────────────────────────────────────────────────────────────
// Export CSV
// ──────────────────────────────────────────────────────────────────────────────

func TestExportCSV_EncabezadoYFilas(t *testing.T) {
	repo := &fakeReportRepo{rows: []repository.MovementRow{sampleRow("10", "25.00")}}
	uc := reporting.NewReportUseCase(repo, repo)

	data, err := uc.ExportCSV(context.Background(), dto.MovementListRequest{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2, "encabezado + una fila")
	assert.Equal(t, "Date,Product,SKU,Type,Quantity,Unit Cost,Total Value,Reason,User,Reference", lines[0])
	assert.Equal(t, "2026-08-15,Monitor LED,MON-24,entry,10,2.50,25.00,Compra,Operador,", lines[1])
}

func TestExportCSV_SinMovimientos_SoloEncabezado(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := reporting.NewReportUseCase(repo, repo)

	data, err := uc.ExportCSV(context.Background(), dto.MovementListRequest{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 1)
}
