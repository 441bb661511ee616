package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/fruit-track/internal/domain/entity"
	"github.com/tu-usuario/fruit-track/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, fruit_type, direction, quantity, unit, date, reference_type, reference_id, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	referenceID := (*string)(nil)
	if m.ReferenceID != "" {
		referenceID = &m.ReferenceID
	}
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.FruitType, m.Direction, m.Quantity, m.Unit, m.Date,
		m.ReferenceType, referenceID, m.Notes, m.CreatedBy, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// List lista movimientos con paginación (más recientes primero).
func (r *StockMovementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, fruit_type, direction, quantity, unit, date, reference_type, COALESCE(reference_id, ''), notes, created_by, created_at
		FROM stock_movements ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByFruitType lista los movimientos de un tipo de fruta.
func (r *StockMovementRepo) ListByFruitType(fruitType string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, fruit_type, direction, quantity, unit, date, reference_type, COALESCE(reference_id, ''), notes, created_by, created_at
		FROM stock_movements WHERE fruit_type = $1 ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, fruitType, limit, offset)
}

// Balance devuelve la suma con signo (in positivo, out negativo) del fruit_type.
func (r *StockMovementRepo) Balance(fruitType string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.q.QueryRow(context.Background(), `
		SELECT COALESCE(SUM(CASE WHEN direction = 'in' THEN quantity ELSE -quantity END), 0)
		FROM stock_movements WHERE fruit_type = $1`,
		fruitType,
	).Scan(&balance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("stock balance: %w", err)
	}
	return balance, nil
}

// DeleteByReference elimina los movimientos originados por un registro concreto.
func (r *StockMovementRepo) DeleteByReference(referenceType, referenceID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM stock_movements WHERE reference_type = $1 AND reference_id = $2`,
		referenceType, referenceID,
	)
	if err != nil {
		return fmt.Errorf("delete movements by reference: %w", err)
	}
	return nil
}

// DeleteByReferenceType elimina todos los movimientos de un tipo de origen.
func (r *StockMovementRepo) DeleteByReferenceType(referenceType string) (int64, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM stock_movements WHERE reference_type = $1`, referenceType)
	if err != nil {
		return 0, fmt.Errorf("delete movements by reference type: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteAll borra todo el libro de movimientos.
func (r *StockMovementRepo) DeleteAll() (int64, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM stock_movements`)
	if err != nil {
		return 0, fmt.Errorf("delete all movements: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *StockMovementRepo) list(query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.FruitType, &m.Direction, &m.Quantity, &m.Unit, &m.Date, &m.ReferenceType, &m.ReferenceID, &m.Notes, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
