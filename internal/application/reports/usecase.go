package reports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/fruit-track/internal/application/dto"
	"github.com/tu-usuario/fruit-track/internal/domain/repository"
)

// PDFGenerator renderiza el overview financiero como documento PDF.
type PDFGenerator interface {
	FinancialOverview(data dto.FinancialOverviewDTO) ([]byte, error)
}

// UseCase arma los reportes financieros de solo lectura (solo CEO).
// Todas las cifras salen de agregados SQL con COALESCE: un libro vacío produce
// un reporte en ceros, nunca un error.
type UseCase struct {
	reportRepo repository.ReportRepository
	pdfGen     PDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(reportRepo repository.ReportRepository, pdfGen PDFGenerator) *UseCase {
	return &UseCase{reportRepo: reportRepo, pdfGen: pdfGen}
}

// Overview calcula el resumen financiero:
//
//	gross  = revenue - compras
//	net    = gross - gastos vehículo - gastos generales - salarios pagados
//	margen = net / revenue * 100 (0 si revenue es cero)
func (uc *UseCase) Overview(ctx context.Context) (*dto.FinancialOverviewDTO, error) {
	t, err := uc.reportRepo.GetLedgerTotals(ctx)
	if err != nil {
		return nil, err
	}

	gross := t.TotalSalesRevenue.Sub(t.TotalPurchases)
	net := gross.Sub(t.TotalCarExpenses).Sub(t.TotalOtherExpenses).Sub(t.TotalSalariesPaid)

	margin := decimal.Zero
	if t.TotalSalesRevenue.GreaterThan(decimal.Zero) {
		margin = net.Div(t.TotalSalesRevenue).Mul(decimal.NewFromInt(100))
	}

	return &dto.FinancialOverviewDTO{
		TotalRevenue:       dto.FormatMoney(t.TotalSalesRevenue),
		TotalPurchaseCost:  dto.FormatMoney(t.TotalPurchases),
		GrossProfit:        dto.FormatMoney(gross),
		TotalCarExpenses:   dto.FormatMoney(t.TotalCarExpenses),
		TotalOtherExpenses: dto.FormatMoney(t.TotalOtherExpenses),
		TotalSalariesPaid:  dto.FormatMoney(t.TotalSalariesPaid),
		NetProfit:          dto.FormatMoney(net),
		ProfitMarginPct:    dto.FormatMoney(margin),
		Currency:           "USD",
	}, nil
}

// RevenueByFruit agrupa revenue y cantidad vendida por tipo de fruta.
func (uc *UseCase) RevenueByFruit(ctx context.Context) ([]dto.FruitRevenueDTO, error) {
	rows, err := uc.reportRepo.GetRevenueByFruit(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FruitRevenueDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FruitRevenueDTO{
			FruitType:    r.FruitType,
			QuantitySold: dto.FormatMoney(r.QuantitySold),
			TotalRevenue: dto.FormatMoney(r.TotalRevenue),
			SalesCount:   r.SalesCount,
		})
	}
	return out, nil
}

// MonthlyTrends devuelve compras vs. ventas por mes (por defecto 12 meses).
func (uc *UseCase) MonthlyTrends(ctx context.Context, months int) ([]dto.MonthlyTrendDTO, error) {
	if months <= 0 || months > 60 {
		months = 12
	}
	rows, err := uc.reportRepo.GetMonthlyTrends(ctx, months)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MonthlyTrendDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MonthlyTrendDTO{
			Month:         r.Month,
			PurchaseTotal: dto.FormatMoney(r.PurchaseTotal),
			SalesRevenue:  dto.FormatMoney(r.SalesRevenue),
		})
	}
	return out, nil
}

// ExpensesSummary agrupa los gastos (vehículo + generales) por categoría.
func (uc *UseCase) ExpensesSummary(ctx context.Context) ([]dto.ExpenseCategoryDTO, error) {
	rows, err := uc.reportRepo.GetExpensesByCategory(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseCategoryDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ExpenseCategoryDTO{
			Category:    r.Category,
			TotalAmount: dto.FormatMoney(r.TotalAmount),
			Count:       r.Count,
		})
	}
	return out, nil
}

// ExportOverviewPDF genera el overview financiero como PDF descargable.
func (uc *UseCase) ExportOverviewPDF(ctx context.Context) ([]byte, error) {
	overview, err := uc.Overview(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.FinancialOverview(*overview)
}
