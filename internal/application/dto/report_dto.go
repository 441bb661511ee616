package dto

// Los montos de los reportes se formatean a nivel presentación con separador
// de miles y dos decimales (1,234.56); la precisión completa vive en la DB.

// FinancialOverviewDTO respuesta de GET /api/reports/overview.
type FinancialOverviewDTO struct {
	TotalRevenue      string `json:"total_revenue"`
	TotalPurchaseCost string `json:"total_purchase_cost"`
	GrossProfit       string `json:"gross_profit"`
	TotalCarExpenses  string `json:"total_car_expenses"`
	TotalOtherExpenses string `json:"total_other_expenses"`
	TotalSalariesPaid string `json:"total_salaries_paid"`
	NetProfit         string `json:"net_profit"`
	ProfitMarginPct   string `json:"profit_margin_pct"`
	Currency          string `json:"currency"`
}

// FruitRevenueDTO fila de GET /api/reports/revenue-by-fruit.
type FruitRevenueDTO struct {
	FruitType    string `json:"fruit_type"`
	QuantitySold string `json:"quantity_sold"`
	TotalRevenue string `json:"total_revenue"`
	SalesCount   int    `json:"sales_count"`
}

// MonthlyTrendDTO fila de GET /api/reports/monthly-trends.
type MonthlyTrendDTO struct {
	Month         string `json:"month"` // YYYY-MM
	PurchaseTotal string `json:"purchase_total"`
	SalesRevenue  string `json:"sales_revenue"`
}

// ExpenseCategoryDTO fila de GET /api/reports/expenses-summary.
type ExpenseCategoryDTO struct {
	Category    string `json:"category"`
	TotalAmount string `json:"total_amount"`
	Count       int    `json:"count"`
}
