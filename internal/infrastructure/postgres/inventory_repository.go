package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/fruit-track/internal/domain"
	"github.com/tu-usuario/fruit-track/internal/domain/entity"
	"github.com/tu-usuario/fruit-track/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del snapshot de inventario sobre PostgreSQL
// (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste una línea de inventario. fruit_type es único.
func (r *InventoryRepo) Create(i *entity.Inventory) error {
	query := `
		INSERT INTO inventory (id, name, fruit_type, quantity, unit, location, added_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		i.ID, i.Name, i.FruitType, i.Quantity, i.Unit, i.Location, i.AddedBy, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// List lista las líneas de inventario.
func (r *InventoryRepo) List(limit, offset int) ([]*entity.Inventory, error) {
	query := `
		SELECT id, name, fruit_type, quantity, unit, location, added_by, created_at, updated_at
		FROM inventory ORDER BY fruit_type ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var i entity.Inventory
		if err := rows.Scan(&i.ID, &i.Name, &i.FruitType, &i.Quantity, &i.Unit, &i.Location, &i.AddedBy, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// GetByFruitType obtiene la línea de snapshot del fruit_type.
func (r *InventoryRepo) GetByFruitType(fruitType string) (*entity.Inventory, error) {
	query := `
		SELECT id, name, fruit_type, quantity, unit, location, added_by, created_at, updated_at
		FROM inventory WHERE fruit_type = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, fruitType))
}

// GetByFruitTypeForUpdate obtiene la línea y bloquea la fila (SELECT FOR UPDATE).
func (r *InventoryRepo) GetByFruitTypeForUpdate(fruitType string) (*entity.Inventory, error) {
	query := `
		SELECT id, name, fruit_type, quantity, unit, location, added_by, created_at, updated_at
		FROM inventory WHERE fruit_type = $1
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, fruitType))
}

// UpdateQuantity reescribe el snapshot del fruit_type. Si la línea no existe
// todavía se crea con defaults (el libro de movimientos manda).
func (r *InventoryRepo) UpdateQuantity(fruitType string, quantity decimal.Decimal) error {
	query := `
		INSERT INTO inventory (id, name, fruit_type, quantity, unit, added_by, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $1, $2, 'kg', '', now(), now())
		ON CONFLICT (fruit_type)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, fruitType, quantity)
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	return nil
}

// RecomputeAll reescribe todos los snapshots desde la suma con signo del libro
// de movimientos. Las frutas sin movimientos quedan en cero.
func (r *InventoryRepo) RecomputeAll() error {
	query := `
		UPDATE inventory i SET
			quantity = COALESCE((
				SELECT SUM(CASE WHEN m.direction = 'in' THEN m.quantity ELSE -m.quantity END)
				FROM stock_movements m WHERE m.fruit_type = i.fruit_type
			), 0),
			updated_at = now()`
	_, err := r.q.Exec(context.Background(), query)
	if err != nil {
		return fmt.Errorf("recompute inventory: %w", err)
	}
	return nil
}

func (r *InventoryRepo) scanOne(row pgx.Row) (*entity.Inventory, error) {
	var i entity.Inventory
	err := row.Scan(&i.ID, &i.Name, &i.FruitType, &i.Quantity, &i.Unit, &i.Location, &i.AddedBy, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &i, nil
}
