package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSalaryRequest body para POST /api/salaries (CEO/Admin).
type CreateSalaryRequest struct {
	EmployeeID    string          `json:"employee_id" validate:"required,uuid"`
	BaseSalary    decimal.Decimal `json:"base_salary" validate:"required"`
	Bonus         decimal.Decimal `json:"bonus"`
	Deductions    decimal.Decimal `json:"deductions"`
	EffectiveDate string          `json:"effective_date" validate:"required,datetime=2006-01-02"`
	Notes         string          `json:"notes" validate:"omitempty,max=200"`
}

// SalaryResponse salida de un registro de salario.
type SalaryResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name,omitempty"`
	BaseSalary    decimal.Decimal `json:"base_salary"`
	Bonus         decimal.Decimal `json:"bonus"`
	Deductions    decimal.Decimal `json:"deductions"`
	NetAmount     decimal.Decimal `json:"net_amount"`
	EffectiveDate string          `json:"effective_date"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CreateSalaryPaymentRequest body para POST /api/salaries/payments (CEO/Admin).
// El pago nace siempre en estado pending.
type CreateSalaryPaymentRequest struct {
	SalaryID      string          `json:"salary_id" validate:"required,uuid"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	PaymentDate   string          `json:"payment_date" validate:"required,datetime=2006-01-02"`
	PaymentMethod string          `json:"payment_method" validate:"required,oneof=cash bank_transfer mobile_money"`
	Notes         string          `json:"notes" validate:"omitempty,max=200"`
}

// PaySalaryRequest body opcional para POST /api/users/:id/pay-salary.
type PaySalaryRequest struct {
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=cash bank_transfer mobile_money"`
	Notes         string `json:"notes" validate:"omitempty,max=200"`
}

// SalaryPaymentResponse salida de un pago de salario.
type SalaryPaymentResponse struct {
	ID            string          `json:"id"`
	SalaryID      string          `json:"salary_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   string          `json:"payment_date"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	ProcessedBy   string          `json:"processed_by"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
