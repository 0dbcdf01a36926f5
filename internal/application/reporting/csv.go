package reporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/jhoicas/stock-control-api/internal/application/dto"
	"github.com/jhoicas/stock-control-api/internal/domain/repository"
)

// csvHeader columnas del export, en el orden del reporte original.
var csvHeader = []string{
	"Date", "Product", "SKU", "Type", "Quantity",
	"Unit Cost", "Total Value", "Reason", "User", "Reference",
}

// exportBatchSize tamaño de página interna al recorrer el ledger.
const exportBatchSize = 500

// ExportCSV exporta los movimientos filtrados como CSV (encabezado + una fila
// por movimiento). Pagina internamente para no cargar el ledger completo.
func (uc *ReportUseCase) ExportCSV(ctx context.Context, in dto.MovementListRequest) ([]byte, error) {
	filter, err := parseFilter(in)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("csv: escribir encabezado: %w", err)
	}

	offset := 0
	for {
		rows, err := uc.reportRepo.List(ctx, filter, exportBatchSize, offset)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			if err := w.Write(csvRecord(r)); err != nil {
				return nil, fmt.Errorf("csv: escribir fila: %w", err)
			}
		}
		if len(rows) < exportBatchSize {
			break
		}
		offset += exportBatchSize
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: flush: %w", err)
	}
	return buf.Bytes(), nil
}

func csvRecord(r repository.MovementRow) []string {
	m := r.Movement
	unitCost := ""
	if m.UnitCost != nil {
		unitCost = m.UnitCost.StringFixed(2)
	}
	return []string{
		m.MovementDate.Format("2006-01-02"),
		r.ProductName,
		r.ProductSKU,
		m.Type.String(),
		m.Quantity.String(),
		unitCost,
		m.TotalValue.StringFixed(2),
		m.Reason,
		r.UserName,
		m.ReferenceDocument,
	}
}
