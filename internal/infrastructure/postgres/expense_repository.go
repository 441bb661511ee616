package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/fruit-track/internal/domain/entity"
	"github.com/tu-usuario/fruit-track/internal/domain/repository"
)

var _ repository.CarExpenseRepository = (*CarExpenseRepo)(nil)
var _ repository.OtherExpenseRepository = (*OtherExpenseRepo)(nil)

// CarExpenseRepo implementación de gastos de vehículo sobre PostgreSQL.
type CarExpenseRepo struct {
	pool *pgxpool.Pool
}

// NewCarExpenseRepository construye el adaptador.
func NewCarExpenseRepository(pool *pgxpool.Pool) *CarExpenseRepo {
	return &CarExpenseRepo{pool: pool}
}

// Create persiste un gasto de vehículo.
func (r *CarExpenseRepo) Create(e *entity.CarExpense) error {
	query := `
		INSERT INTO car_expenses (id, driver_id, car_number, category, amount, date, description, approved, approved_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10)`
	_, err := r.pool.Exec(context.Background(), query,
		e.ID, e.DriverID, e.CarNumber, e.Category, e.Amount, e.Date, e.Description, e.Approved, e.ApprovedBy, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert car expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto de vehículo por ID.
func (r *CarExpenseRepo) GetByID(id string) (*entity.CarExpense, error) {
	query := `
		SELECT id, driver_id, car_number, category, amount, date, description, approved, COALESCE(approved_by, ''), created_at
		FROM car_expenses WHERE id = $1`
	var e entity.CarExpense
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.DriverID, &e.CarNumber, &e.Category, &e.Amount, &e.Date, &e.Description, &e.Approved, &e.ApprovedBy, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get car expense: %w", err)
	}
	return &e, nil
}

// List lista gastos de vehículo con paginación.
func (r *CarExpenseRepo) List(limit, offset int) ([]*entity.CarExpense, error) {
	query := `
		SELECT id, driver_id, car_number, category, amount, date, description, approved, COALESCE(approved_by, ''), created_at
		FROM car_expenses ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByDriver lista los gastos de un conductor.
func (r *CarExpenseRepo) ListByDriver(driverID string, limit, offset int) ([]*entity.CarExpense, error) {
	query := `
		SELECT id, driver_id, car_number, category, amount, date, description, approved, COALESCE(approved_by, ''), created_at
		FROM car_expenses WHERE driver_id = $1 ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, driverID, limit, offset)
}

// Approve marca el gasto como aprobado por el aprobador.
func (r *CarExpenseRepo) Approve(id, approverID string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE car_expenses SET approved = true, approved_by = $2 WHERE id = $1`, id, approverID)
	if err != nil {
		return fmt.Errorf("approve car expense: %w", err)
	}
	return nil
}

func (r *CarExpenseRepo) list(query string, args ...any) ([]*entity.CarExpense, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list car expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.CarExpense
	for rows.Next() {
		var e entity.CarExpense
		if err := rows.Scan(&e.ID, &e.DriverID, &e.CarNumber, &e.Category, &e.Amount, &e.Date, &e.Description, &e.Approved, &e.ApprovedBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan car expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// OtherExpenseRepo implementación de gastos generales sobre PostgreSQL.
type OtherExpenseRepo struct {
	pool *pgxpool.Pool
}

// NewOtherExpenseRepository construye el adaptador.
func NewOtherExpenseRepository(pool *pgxpool.Pool) *OtherExpenseRepo {
	return &OtherExpenseRepo{pool: pool}
}

// Create persiste un gasto general.
func (r *OtherExpenseRepo) Create(e *entity.OtherExpense) error {
	query := `
		INSERT INTO other_expenses (id, category, amount, date, description, created_by, approved, approved_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9)`
	_, err := r.pool.Exec(context.Background(), query,
		e.ID, e.Category, e.Amount, e.Date, e.Description, e.CreatedBy, e.Approved, e.ApprovedBy, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert other expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto general por ID.
func (r *OtherExpenseRepo) GetByID(id string) (*entity.OtherExpense, error) {
	query := `
		SELECT id, category, amount, date, description, created_by, approved, COALESCE(approved_by, ''), created_at
		FROM other_expenses WHERE id = $1`
	var e entity.OtherExpense
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Category, &e.Amount, &e.Date, &e.Description, &e.CreatedBy, &e.Approved, &e.ApprovedBy, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get other expense: %w", err)
	}
	return &e, nil
}

// List lista gastos generales con paginación.
func (r *OtherExpenseRepo) List(limit, offset int) ([]*entity.OtherExpense, error) {
	query := `
		SELECT id, category, amount, date, description, created_by, approved, COALESCE(approved_by, ''), created_at
		FROM other_expenses ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list other expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.OtherExpense
	for rows.Next() {
		var e entity.OtherExpense
		if err := rows.Scan(&e.ID, &e.Category, &e.Amount, &e.Date, &e.Description, &e.CreatedBy, &e.Approved, &e.ApprovedBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan other expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Approve marca el gasto general como aprobado.
func (r *OtherExpenseRepo) Approve(id, approverID string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE other_expenses SET approved = true, approved_by = $2 WHERE id = $1`, id, approverID)
	if err != nil {
		return fmt.Errorf("approve other expense: %w", err)
	}
	return nil
}
