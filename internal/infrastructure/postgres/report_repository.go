package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/fruit-track/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para los reportes financieros.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetLedgerTotals devuelve los totales crudos del libro contable.
// Usa COALESCE para devolver cero en cada agregado si no hay filas; de salarios
// solo suma los pagos en estado paid.
func (r *ReportRepo) GetLedgerTotals(ctx context.Context) (*repository.LedgerTotals, error) {
	const query = `
	SELECT
	    COALESCE((SELECT SUM(total_amount)     FROM purchases), 0)                         AS total_purchases,
	    COALESCE((SELECT SUM(revenue_collected) FROM sales), 0)                            AS total_sales_revenue,
	    COALESCE((SELECT SUM(amount)           FROM car_expenses), 0)                      AS total_car_expenses,
	    COALESCE((SELECT SUM(amount)           FROM other_expenses), 0)                    AS total_other_expenses,
	    COALESCE((SELECT SUM(amount)           FROM salary_payments WHERE status = 'paid'), 0) AS total_salaries_paid`

	var t repository.LedgerTotals
	err := r.pool.QueryRow(ctx, query).Scan(
		&t.TotalPurchases,
		&t.TotalSalesRevenue,
		&t.TotalCarExpenses,
		&t.TotalOtherExpenses,
		&t.TotalSalariesPaid,
	)
	if err != nil {
		return nil, fmt.Errorf("reports.GetLedgerTotals: %w", err)
	}
	return &t, nil
}

// GetRevenueByFruit agrupa cantidad vendida y revenue por tipo de fruta.
func (r *ReportRepo) GetRevenueByFruit(ctx context.Context) ([]repository.FruitRevenueResult, error) {
	const query = `
	SELECT
	    fruit_type,
	    COALESCE(SUM(quantity_sold), 0)     AS quantity_sold,
	    COALESCE(SUM(revenue_collected), 0) AS total_revenue,
	    COUNT(*)                            AS sales_count
	FROM sales
	GROUP BY fruit_type
	ORDER BY total_revenue DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.GetRevenueByFruit: %w", err)
	}
	defer rows.Close()

	var results []repository.FruitRevenueResult
	for rows.Next() {
		var row repository.FruitRevenueResult
		if err := rows.Scan(&row.FruitType, &row.QuantitySold, &row.TotalRevenue, &row.SalesCount); err != nil {
			return nil, fmt.Errorf("reports.GetRevenueByFruit scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetMonthlyTrends devuelve compras vs. revenue de ventas por mes (YYYY-MM),
// de los últimos `months` meses. FULL OUTER JOIN para no perder meses donde
// solo hubo compras o solo hubo ventas.
func (r *ReportRepo) GetMonthlyTrends(ctx context.Context, months int) ([]repository.MonthlyTrendResult, error) {
	const query = `
	WITH p AS (
	    SELECT to_char(purchase_date, 'YYYY-MM') AS month, SUM(total_amount) AS purchase_total
	    FROM purchases
	    WHERE purchase_date >= date_trunc('month', now()) - ($1 || ' months')::interval
	    GROUP BY 1
	), s AS (
	    SELECT to_char(date, 'YYYY-MM') AS month, SUM(revenue_collected) AS sales_revenue
	    FROM sales
	    WHERE date >= date_trunc('month', now()) - ($1 || ' months')::interval
	    GROUP BY 1
	)
	SELECT
	    COALESCE(p.month, s.month)         AS month,
	    COALESCE(p.purchase_total, 0)      AS purchase_total,
	    COALESCE(s.sales_revenue, 0)       AS sales_revenue
	FROM p FULL OUTER JOIN s ON s.month = p.month
	ORDER BY month ASC`

	rows, err := r.pool.Query(ctx, query, months)
	if err != nil {
		return nil, fmt.Errorf("reports.GetMonthlyTrends: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthlyTrendResult
	for rows.Next() {
		var row repository.MonthlyTrendResult
		if err := rows.Scan(&row.Month, &row.PurchaseTotal, &row.SalesRevenue); err != nil {
			return nil, fmt.Errorf("reports.GetMonthlyTrends scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetExpensesByCategory agrupa gastos de vehículo y generales por categoría.
// Las categorías de vehículo se prefijan con "Car:" para no mezclarlas con las
// categorías libres de gastos generales.
func (r *ReportRepo) GetExpensesByCategory(ctx context.Context) ([]repository.ExpenseCategoryResult, error) {
	const query = `
	SELECT category, SUM(amount) AS total_amount, COUNT(*) AS count
	FROM (
	    SELECT 'Car: ' || category AS category, amount FROM car_expenses
	    UNION ALL
	    SELECT category, amount FROM other_expenses
	) e
	GROUP BY category
	ORDER BY total_amount DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.GetExpensesByCategory: %w", err)
	}
	defer rows.Close()

	var results []repository.ExpenseCategoryResult
	for rows.Next() {
		var row repository.ExpenseCategoryResult
		if err := rows.Scan(&row.Category, &row.TotalAmount, &row.Count); err != nil {
			return nil, fmt.Errorf("reports.GetExpensesByCategory scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
