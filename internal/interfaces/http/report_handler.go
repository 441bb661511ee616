package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fruit-track/internal/application/dto"
	"github.com/tu-usuario/fruit-track/internal/application/reports"
)

// ReportHandler maneja los reportes financieros (solo CEO).
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Overview GET /api/reports/overview.
func (h *ReportHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("resumen financiero", out))
}

// RevenueByFruit GET /api/reports/revenue-by-fruit.
func (h *ReportHandler) RevenueByFruit(c *fiber.Ctx) error {
	out, err := h.uc.RevenueByFruit(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("revenue por fruta", out))
}

// MonthlyTrends GET /api/reports/monthly-trends?months=12.
func (h *ReportHandler) MonthlyTrends(c *fiber.Ctx) error {
	months, _ := strconv.Atoi(c.Query("months", "12"))
	out, err := h.uc.MonthlyTrends(c.Context(), months)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("tendencias mensuales", out))
}

// ExpensesSummary GET /api/reports/expenses-summary.
func (h *ReportHandler) ExpensesSummary(c *fiber.Ctx) error {
	out, err := h.uc.ExpensesSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("gastos por categoría", out))
}

// OverviewPDF GET /api/reports/overview/pdf. Devuelve el PDF descargable.
func (h *ReportHandler) OverviewPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.ExportOverviewPDF(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="financial-overview.pdf"`)
	return c.Send(pdfBytes)
}
