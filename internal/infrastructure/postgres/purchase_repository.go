package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/fruit-track/internal/domain/entity"
	"github.com/tu-usuario/fruit-track/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste una compra.
func (r *PurchaseRepo) Create(p *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, purchaser_id, supplier_name, fruit_type, quantity, unit, unit_cost, total_amount, purchase_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.PurchaserID, p.SupplierName, p.FruitType, p.Quantity, p.Unit,
		p.UnitCost, p.TotalAmount, p.PurchaseDate, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// GetByID obtiene una compra por ID.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	query := `
		SELECT id, purchaser_id, supplier_name, fruit_type, quantity, unit, unit_cost, total_amount, purchase_date, created_at
		FROM purchases WHERE id = $1`
	var p entity.Purchase
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.PurchaserID, &p.SupplierName, &p.FruitType, &p.Quantity, &p.Unit,
		&p.UnitCost, &p.TotalAmount, &p.PurchaseDate, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &p, nil
}

// List lista compras con paginación (más recientes primero).
func (r *PurchaseRepo) List(limit, offset int) ([]*entity.Purchase, error) {
	query := `
		SELECT id, purchaser_id, supplier_name, fruit_type, quantity, unit, unit_cost, total_amount, purchase_date, created_at
		FROM purchases ORDER BY purchase_date DESC, created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByPurchaser lista las compras de un comprador.
func (r *PurchaseRepo) ListByPurchaser(purchaserID string, limit, offset int) ([]*entity.Purchase, error) {
	query := `
		SELECT id, purchaser_id, supplier_name, fruit_type, quantity, unit, unit_cost, total_amount, purchase_date, created_at
		FROM purchases WHERE purchaser_id = $1 ORDER BY purchase_date DESC, created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, purchaserID, limit, offset)
}

// Update actualiza una compra.
func (r *PurchaseRepo) Update(p *entity.Purchase) error {
	query := `
		UPDATE purchases SET supplier_name = $2, fruit_type = $3, quantity = $4, unit = $5, unit_cost = $6, total_amount = $7, purchase_date = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.SupplierName, p.FruitType, p.Quantity, p.Unit, p.UnitCost, p.TotalAmount, p.PurchaseDate,
	)
	if err != nil {
		return fmt.Errorf("update purchase: %w", err)
	}
	return nil
}

// Delete elimina una compra por ID.
func (r *PurchaseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	return nil
}

func (r *PurchaseRepo) list(query string, args ...any) ([]*entity.Purchase, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.PurchaserID, &p.SupplierName, &p.FruitType, &p.Quantity, &p.Unit, &p.UnitCost, &p.TotalAmount, &p.PurchaseDate, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
