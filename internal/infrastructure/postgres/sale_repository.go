package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/fruit-track/internal/domain/entity"
	"github.com/tu-usuario/fruit-track/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta.
func (r *SaleRepo) Create(s *entity.Sale) error {
	query := `
		INSERT INTO sales (id, assignment_id, seller_id, fruit_type, quantity_sold, revenue_collected, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.AssignmentID, s.SellerID, s.FruitType, s.QuantitySold, s.RevenueCollected, s.Date,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, assignment_id, seller_id, fruit_type, quantity_sold, revenue_collected, date
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.AssignmentID, &s.SellerID, &s.FruitType, &s.QuantitySold, &s.RevenueCollected, &s.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// List lista ventas con paginación (más recientes primero).
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, assignment_id, seller_id, fruit_type, quantity_sold, revenue_collected, date
		FROM sales ORDER BY date DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListBySeller lista las ventas de un vendedor.
func (r *SaleRepo) ListBySeller(sellerID string, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, assignment_id, seller_id, fruit_type, quantity_sold, revenue_collected, date
		FROM sales WHERE seller_id = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`
	return r.list(query, sellerID, limit, offset)
}

// ListByAssignment lista las ventas hijas de una asignación.
func (r *SaleRepo) ListByAssignment(assignmentID string) ([]*entity.Sale, error) {
	query := `
		SELECT id, assignment_id, seller_id, fruit_type, quantity_sold, revenue_collected, date
		FROM sales WHERE assignment_id = $1 ORDER BY date ASC`
	return r.list(query, assignmentID)
}

// SumQuantityByAssignment devuelve el total vendido contra una asignación.
// Se usa dentro de la transacción de venta, con la asignación ya bloqueada.
func (r *SaleRepo) SumQuantityByAssignment(assignmentID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity_sold), 0) FROM sales WHERE assignment_id = $1`,
		assignmentID,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum sales by assignment: %w", err)
	}
	return sum, nil
}

// DeleteAll borra todas las ventas y devuelve cuántas filas eliminó.
func (r *SaleRepo) DeleteAll() (int64, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM sales`)
	if err != nil {
		return 0, fmt.Errorf("delete all sales: %w", err)
	}
	return tag.RowsAffected(), nil
}

// SummaryBySeller agrupa revenue y número de ventas por vendedor.
func (r *SaleRepo) SummaryBySeller() ([]repository.SellerSalesResult, error) {
	query := `
		SELECT s.seller_id, u.name, COALESCE(SUM(s.revenue_collected), 0), COUNT(*)
		FROM sales s
		JOIN users u ON u.id = s.seller_id
		GROUP BY s.seller_id, u.name
		ORDER BY SUM(s.revenue_collected) DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}
	defer rows.Close()
	var list []repository.SellerSalesResult
	for rows.Next() {
		var res repository.SellerSalesResult
		if err := rows.Scan(&res.SellerID, &res.SellerName, &res.TotalRevenue, &res.SalesCount); err != nil {
			return nil, fmt.Errorf("scan sales summary: %w", err)
		}
		list = append(list, res)
	}
	return list, rows.Err()
}

func (r *SaleRepo) list(query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.AssignmentID, &s.SellerID, &s.FruitType, &s.QuantitySold, &s.RevenueCollected, &s.Date); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
