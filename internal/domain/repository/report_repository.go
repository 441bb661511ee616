package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// LedgerTotals totales crudos del libro contable para el overview financiero.
type LedgerTotals struct {
	TotalPurchases     decimal.Decimal
	TotalSalesRevenue  decimal.Decimal
	TotalCarExpenses   decimal.Decimal
	TotalOtherExpenses decimal.Decimal
	TotalSalariesPaid  decimal.Decimal // solo pagos en estado paid
}

// FruitRevenueResult fila cruda de revenue agrupado por tipo de fruta.
type FruitRevenueResult struct {
	FruitType    string
	QuantitySold decimal.Decimal
	TotalRevenue decimal.Decimal
	SalesCount   int
}

// MonthlyTrendResult fila cruda de la tendencia mensual compras vs. ventas.
type MonthlyTrendResult struct {
	Month         string // YYYY-MM
	PurchaseTotal decimal.Decimal
	SalesRevenue  decimal.Decimal
}

// ExpenseCategoryResult fila cruda del resumen de gastos por categoría.
type ExpenseCategoryResult struct {
	Category    string
	TotalAmount decimal.Decimal
	Count       int
}

// ReportRepository define las consultas de solo lectura para los reportes.
// Las implementaciones nunca mutan datos y devuelven agregados en cero
// (COALESCE) cuando el conjunto está vacío.
type ReportRepository interface {
	GetLedgerTotals(ctx context.Context) (*LedgerTotals, error)
	GetRevenueByFruit(ctx context.Context) ([]FruitRevenueResult, error)
	GetMonthlyTrends(ctx context.Context, months int) ([]MonthlyTrendResult, error)
	GetExpensesByCategory(ctx context.Context) ([]ExpenseCategoryResult, error)
}
