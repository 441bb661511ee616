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

var _ repository.SalaryRepository = (*SalaryRepo)(nil)

// SalaryRepo implementación de salarios y pagos sobre PostgreSQL.
type SalaryRepo struct {
	pool *pgxpool.Pool
}

// NewSalaryRepository construye el adaptador.
func NewSalaryRepository(pool *pgxpool.Pool) *SalaryRepo {
	return &SalaryRepo{pool: pool}
}

// Create persiste un registro de salario.
func (r *SalaryRepo) Create(s *entity.Salary) error {
	query := `
		INSERT INTO salaries (id, employee_id, base_salary, bonus, deductions, effective_date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		s.ID, s.EmployeeID, s.BaseSalary, s.Bonus, s.Deductions, s.EffectiveDate, s.Notes, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert salary: %w", err)
	}
	return nil
}

// GetByID obtiene un registro de salario por ID.
func (r *SalaryRepo) GetByID(id string) (*entity.Salary, error) {
	query := `
		SELECT id, employee_id, base_salary, bonus, deductions, effective_date, notes, created_at
		FROM salaries WHERE id = $1`
	var s entity.Salary
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.EmployeeID, &s.BaseSalary, &s.Bonus, &s.Deductions, &s.EffectiveDate, &s.Notes, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get salary: %w", err)
	}
	return &s, nil
}

// List lista registros de salario con paginación.
func (r *SalaryRepo) List(limit, offset int) ([]*entity.Salary, error) {
	query := `
		SELECT id, employee_id, base_salary, bonus, deductions, effective_date, notes, created_at
		FROM salaries ORDER BY effective_date DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list salaries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Salary
	for rows.Next() {
		var s entity.Salary
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.BaseSalary, &s.Bonus, &s.Deductions, &s.EffectiveDate, &s.Notes, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan salary: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// CreatePayment persiste un pago de salario.
func (r *SalaryRepo) CreatePayment(p *entity.SalaryPayment) error {
	query := `
		INSERT INTO salary_payments (id, salary_id, amount, payment_date, payment_method, status, processed_by, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		p.ID, p.SalaryID, p.Amount, p.PaymentDate, p.PaymentMethod, p.Status, p.ProcessedBy, p.Notes, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert salary payment: %w", err)
	}
	return nil
}

// GetPaymentByID obtiene un pago por ID.
func (r *SalaryRepo) GetPaymentByID(id string) (*entity.SalaryPayment, error) {
	query := `
		SELECT id, salary_id, amount, payment_date, payment_method, status, processed_by, notes, created_at
		FROM salary_payments WHERE id = $1`
	var p entity.SalaryPayment
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.SalaryID, &p.Amount, &p.PaymentDate, &p.PaymentMethod, &p.Status, &p.ProcessedBy, &p.Notes, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get salary payment: %w", err)
	}
	return &p, nil
}

// ListPayments lista pagos con paginación (más recientes primero).
func (r *SalaryRepo) ListPayments(limit, offset int) ([]*entity.SalaryPayment, error) {
	query := `
		SELECT id, salary_id, amount, payment_date, payment_method, status, processed_by, notes, created_at
		FROM salary_payments ORDER BY payment_date DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list salary payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalaryPayment
	for rows.Next() {
		var p entity.SalaryPayment
		if err := rows.Scan(&p.ID, &p.SalaryID, &p.Amount, &p.PaymentDate, &p.PaymentMethod, &p.Status, &p.ProcessedBy, &p.Notes, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan salary payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// UpdatePaymentStatus fija el estado del pago (ya validado por el ciclo de toggle).
func (r *SalaryRepo) UpdatePaymentStatus(id, status string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE salary_payments SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	return nil
}
