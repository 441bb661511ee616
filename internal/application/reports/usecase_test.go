package reports_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fruit-track/internal/application/dto"
	"github.com/tu-usuario/fruit-track/internal/application/reports"
	"github.com/tu-usuario/fruit-track/internal/domain/repository"
)

// fakeReportRepo devuelve totales fijos, como haría el SQL con COALESCE.
type fakeReportRepo struct {
	totals repository.LedgerTotals
	trends []repository.MonthlyTrendResult
}

func (r *fakeReportRepo) GetLedgerTotals(context.Context) (*repository.LedgerTotals, error) {
	t := r.totals
	return &t, nil
}

func (r *fakeReportRepo) GetRevenueByFruit(context.Context) ([]repository.FruitRevenueResult, error) {
	return []repository.FruitRevenueResult{
		{FruitType: "mango", QuantitySold: d("1500"), TotalRevenue: d("3750.50"), SalesCount: 42},
	}, nil
}

func (r *fakeReportRepo) GetMonthlyTrends(_ context.Context, months int) ([]repository.MonthlyTrendResult, error) {
	if len(r.trends) > months {
		return r.trends[:months], nil
	}
	return r.trends, nil
}

func (r *fakeReportRepo) GetExpensesByCategory(context.Context) ([]repository.ExpenseCategoryResult, error) {
	return []repository.ExpenseCategoryResult{
		{Category: "Car: fuel", TotalAmount: d("320"), Count: 8},
		{Category: "rent", TotalAmount: d("1000"), Count: 1},
	}, nil
}

// fakePDFGen registra el DTO recibido y devuelve bytes fijos.
type fakePDFGen struct {
	got *dto.FinancialOverviewDTO
}

func (g *fakePDFGen) FinancialOverview(data dto.FinancialOverviewDTO) ([]byte, error) {
	g.got = &data
	return []byte("%PDF-fake"), nil
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Tests Overview
// ──────────────────────────────────────────────────────────────────────────────

func TestOverview_MatematicaDelMargen(t *testing.T) {
	repo := &fakeReportRepo{totals: repository.LedgerTotals{
		TotalSalesRevenue:  d("10000"),
		TotalPurchases:     d("6000"),
		TotalCarExpenses:   d("500"),
		TotalOtherExpenses: d("300"),
		TotalSalariesPaid:  d("1200"),
	}}
	uc := reports.NewUseCase(repo, &fakePDFGen{})

	out, err := uc.Overview(context.Background())
	require.NoError(t, err)

	// gross = 10000 - 6000 = 4000; net = 4000 - 500 - 300 - 1200 = 2000
	assert.Equal(t, "10,000.00", out.TotalRevenue, "formato con separador de miles")
	assert.Equal(t, "4,000.00", out.GrossProfit)
	assert.Equal(t, "2,000.00", out.NetProfit)
	assert.Equal(t, "20.00", out.ProfitMarginPct, "margen = 2000/10000 * 100")
	assert.Equal(t, "USD", out.Currency)
}

func TestOverview_LibroVacioTodoEnCeros(t *testing.T) {
	uc := reports.NewUseCase(&fakeReportRepo{}, &fakePDFGen{})

	out, err := uc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.00", out.TotalRevenue)
	assert.Equal(t, "0.00", out.NetProfit)
	assert.Equal(t, "0.00", out.ProfitMarginPct,
		"sin revenue el margen es 0, nunca división por cero")
}

func TestOverview_PerdidaNetaNegativa(t *testing.T) {
	repo := &fakeReportRepo{totals: repository.LedgerTotals{
		TotalSalesRevenue: d("1000"),
		TotalPurchases:    d("1500"),
	}}
	uc := reports.NewUseCase(repo, &fakePDFGen{})

	out, err := uc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "-500.00", out.GrossProfit)
	assert.Equal(t, "-50.00", out.ProfitMarginPct)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RevenueByFruit / MonthlyTrends / ExpensesSummary
// ──────────────────────────────────────────────────────────────────────────────

func TestRevenueByFruit_FormateaMontos(t *testing.T) {
	uc := reports.NewUseCase(&fakeReportRepo{}, &fakePDFGen{})

	rows, err := uc.RevenueByFruit(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "mango", rows[0].FruitType)
	assert.Equal(t, "3,750.50", rows[0].TotalRevenue)
	assert.Equal(t, 42, rows[0].SalesCount)
}

func TestMonthlyTrends_RangoFueraDeLimiteUsaDefault(t *testing.T) {
	trends := make([]repository.MonthlyTrendResult, 20)
	for i := range trends {
		trends[i] = repository.MonthlyTrendResult{Month: "2026-01"}
	}
	uc := reports.NewUseCase(&fakeReportRepo{trends: trends}, &fakePDFGen{})

	rows, err := uc.MonthlyTrends(context.Background(), -3)
	require.NoError(t, err)
	assert.Len(t, rows, 12, "months fuera de rango cae al default de 12")

	rows, err = uc.MonthlyTrends(context.Background(), 999)
	require.NoError(t, err)
	assert.Len(t, rows, 12)

	rows, err = uc.MonthlyTrends(context.Background(), 6)
	require.NoError(t, err)
	assert.Len(t, rows, 6)
}

func TestExpensesSummary_IncluyeAmbasFuentes(t *testing.T) {
	uc := reports.NewUseCase(&fakeReportRepo{}, &fakePDFGen{})

	rows, err := uc.ExpensesSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Car: fuel", rows[0].Category, "las categorías de vehículo llevan prefijo")
	assert.Equal(t, "1,000.00", rows[1].TotalAmount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ExportOverviewPDF
// ──────────────────────────────────────────────────────────────────────────────

func TestExportOverviewPDF_PasaElOverviewAlGenerador(t *testing.T) {
	repo := &fakeReportRepo{totals: repository.LedgerTotals{TotalSalesRevenue: d("500")}}
	gen := &fakePDFGen{}
	uc := reports.NewUseCase(repo, gen)

	pdf, err := uc.ExportOverviewPDF(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	require.NotNil(t, gen.got)
	assert.Equal(t, "500.00", gen.got.TotalRevenue,
		"el PDF se construye sobre el mismo overview del endpoint JSON")
}
