package reporting

import (
	"context"
	"fmt"
	"sort"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stock-control-api/internal/application/dto"
	"github.com/jhoicas/stock-control-api/internal/domain/entity"
	"github.com/jhoicas/stock-control-api/internal/domain/repository"
)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	pdfPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	pdfGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// pdfMaxRows tope de filas del PDF; más allá el reporte se exporta como CSV.
const pdfMaxRows = 1000

// ExportPDF genera el reporte de movimientos en PDF: título, período
// filtrado, tabla de movimientos y totales por tipo.
func (uc *ReportUseCase) ExportPDF(ctx context.Context, in dto.MovementListRequest) ([]byte, error) {
	filter, err := parseFilter(in)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.List(ctx, filter, pdfMaxRows, 0)
	if err != nil {
		return nil, err
	}
	aggregates, err := uc.reportRepo.AggregateByType(ctx, filter)
	if err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Reporte de movimientos de stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(filter))
	m.AddRows(line.NewRow(1, props.Line{Color: pdfPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(movementRow(r))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: pdfPrimary, Thickness: 0.3}))
	for _, r := range totalsRows(aggregates) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// titleRow: título + período del filtro (o "todo el historial").
func titleRow(filter repository.MovementFilter) core.Row {
	period := "todo el historial"
	if filter.DateFrom != nil || filter.DateTo != nil {
		from, to := "inicio", "hoy"
		if filter.DateFrom != nil {
			from = filter.DateFrom.Format("02/01/2006")
		}
		if filter.DateTo != nil {
			to = filter.DateTo.Format("02/01/2006")
		}
		period = from + " – " + to
	}
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Movimientos de stock", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: pdfPrimary, Top: 1,
			}),
			text.New("Período: "+period, props.Text{Size: 8, Top: 9, Color: pdfGray}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Top: 2, Align: align.Right, Color: pdfGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: pdfPrimary}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: pdfPrimary, Align: align.Right}
	return row.New(6).Add(
		col.New(2).Add(text.New("Fecha", header)),
		col.New(3).Add(text.New("Producto", header)),
		col.New(1).Add(text.New("Tipo", header)),
		col.New(1).Add(text.New("Cant.", headerRight)),
		col.New(1).Add(text.New("Costo", headerRight)),
		col.New(2).Add(text.New("Valor", headerRight)),
		col.New(2).Add(text.New("Usuario", header)),
	)
}

func movementRow(r repository.MovementRow) core.Row {
	m := r.Movement
	cell := props.Text{Size: 7}
	cellRight := props.Text{Size: 7, Align: align.Right}
	unitCost := "-"
	if m.UnitCost != nil {
		unitCost = m.UnitCost.StringFixed(2)
	}
	return row.New(5).Add(
		col.New(2).Add(text.New(m.MovementDate.Format("02/01/2006"), cell)),
		col.New(3).Add(text.New(r.ProductName+" ("+r.ProductSKU+")", cell)),
		col.New(1).Add(text.New(m.Type.String(), cell)),
		col.New(1).Add(text.New(m.Quantity.String(), cellRight)),
		col.New(1).Add(text.New(unitCost, cellRight)),
		col.New(2).Add(text.New(m.TotalValue.StringFixed(2), cellRight)),
		col.New(2).Add(text.New(r.UserName, cell)),
	)
}

// totalsRows: una fila por tipo, en orden estable.
func totalsRows(aggregates map[entity.MovementType]repository.TypeAggregate) []core.Row {
	types := make([]entity.MovementType, 0, len(aggregates))
	for t := range aggregates {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	out := make([]core.Row, 0, len(types))
	for _, t := range types {
		agg := aggregates[t]
		out = append(out, row.New(5).Add(
			col.New(6).Add(text.New("Total "+t.String(), props.Text{
				Style: fontstyle.Bold, Size: 8,
			})),
			col.New(3).Add(text.New("cant. "+agg.QuantitySum.String(), props.Text{
				Size: 8, Align: align.Right,
			})),
			col.New(3).Add(text.New("valor "+agg.ValueSum.StringFixed(2), props.Text{
				Size: 8, Align: align.Right,
			})),
		))
	}
	return out
}
