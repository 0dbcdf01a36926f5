package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-control-api/internal/application/dto"
	"github.com/jhoicas/stock-control-api/internal/application/reporting"
)

// ReportHandler reportes del ledger y tablero.
type ReportHandler struct {
	uc *reporting.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Movements devuelve el reporte de movimientos filtrado. ?format selecciona
// la representación: json (default, totales por tipo), csv o pdf.
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	var in dto.MovementListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}

	switch c.Query("format", "json") {
	case "csv":
		data, err := h.uc.ExportCSV(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="movements.csv"`)
		return c.Send(data)
	case "pdf":
		data, err := h.uc.ExportPDF(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="movements.pdf"`)
		return c.Send(data)
	case "json":
		out, err := h.uc.AggregateByType(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "format debe ser json, csv o pdf"})
}

// Dashboard devuelve las métricas del tablero principal.
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
