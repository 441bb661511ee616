package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/fruit-track/internal/domain/entity"
	"github.com/tu-usuario/fruit-track/internal/domain/repository"
)

var _ repository.AssignmentRepository = (*AssignmentRepo)(nil)

// AssignmentRepo implementación sobre PostgreSQL (usable con pool o tx).
type AssignmentRepo struct {
	q Querier
}

// NewAssignmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAssignmentRepository(q Querier) *AssignmentRepo {
	return &AssignmentRepo{q: q}
}

// Create persiste una asignación.
func (r *AssignmentRepo) Create(a *entity.Assignment) error {
	query := `
		INSERT INTO assignments (id, seller_id, fruit_type, quantity_assigned, money_issued, travel_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.SellerID, a.FruitType, a.QuantityAssigned, a.MoneyIssued, a.TravelDate, a.Status, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

// GetByID obtiene una asignación por ID.
func (r *AssignmentRepo) GetByID(id string) (*entity.Assignment, error) {
	query := `
		SELECT id, seller_id, fruit_type, quantity_assigned, money_issued, travel_date, status, created_at
		FROM assignments WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene la asignación y bloquea la fila (SELECT FOR UPDATE).
// Es el lock que serializa ventas concurrentes contra la misma asignación.
func (r *AssignmentRepo) GetForUpdate(id string) (*entity.Assignment, error) {
	query := `
		SELECT id, seller_id, fruit_type, quantity_assigned, money_issued, travel_date, status, created_at
		FROM assignments WHERE id = $1
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// List lista asignaciones con paginación.
func (r *AssignmentRepo) List(limit, offset int) ([]*entity.Assignment, error) {
	query := `
		SELECT id, seller_id, fruit_type, quantity_assigned, money_issued, travel_date, status, created_at
		FROM assignments ORDER BY travel_date DESC, created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListBySeller lista las asignaciones de un vendedor.
func (r *AssignmentRepo) ListBySeller(sellerID string, limit, offset int) ([]*entity.Assignment, error) {
	query := `
		SELECT id, seller_id, fruit_type, quantity_assigned, money_issued, travel_date, status, created_at
		FROM assignments WHERE seller_id = $1 ORDER BY travel_date DESC, created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, sellerID, limit, offset)
}

// UpdateStatus cambia el estado de la asignación (In Transit / Completed).
func (r *AssignmentRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE assignments SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update assignment status: %w", err)
	}
	return nil
}

// Delete elimina una asignación; sus ventas caen por ON DELETE CASCADE.
func (r *AssignmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	return nil
}

func (r *AssignmentRepo) scanOne(row pgx.Row) (*entity.Assignment, error) {
	var a entity.Assignment
	err := row.Scan(&a.ID, &a.SellerID, &a.FruitType, &a.QuantityAssigned, &a.MoneyIssued, &a.TravelDate, &a.Status, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return &a, nil
}

func (r *AssignmentRepo) list(query string, args ...any) ([]*entity.Assignment, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Assignment
	for rows.Next() {
		var a entity.Assignment
		if err := rows.Scan(&a.ID, &a.SellerID, &a.FruitType, &a.QuantityAssigned, &a.MoneyIssued, &a.TravelDate, &a.Status, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
