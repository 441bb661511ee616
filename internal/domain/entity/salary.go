package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pago de salario. Las transiciones solo ocurren vía toggle:
// pending → paid → cancelled → pending (ciclo). No hay asignación directa de estado.
const (
	PaymentPending   = "pending"
	PaymentPaid      = "paid"
	PaymentCancelled = "cancelled"
)

// NextPaymentStatus devuelve el siguiente estado del ciclo.
// Un estado desconocido vuelve a pending, igual que el cierre del ciclo.
func NextPaymentStatus(current string) string {
	switch current {
	case PaymentPending:
		return PaymentPaid
	case PaymentPaid:
		return PaymentCancelled
	default:
		return PaymentPending
	}
}

// Salary es el registro de tarifa salarial de un empleado.
type Salary struct {
	ID            string
	EmployeeID    string // User ref
	BaseSalary    decimal.Decimal
	Bonus         decimal.Decimal
	Deductions    decimal.Decimal
	EffectiveDate time.Time
	Notes         string
	CreatedAt     time.Time
}

// NetAmount devuelve base + bonus - deducciones.
func (s Salary) NetAmount() decimal.Decimal {
	return s.BaseSalary.Add(s.Bonus).Sub(s.Deductions)
}

// SalaryPayment es un desembolso concreto contra un registro de salario.
// Siempre nace en estado pending.
type SalaryPayment struct {
	ID            string
	SalaryID      string
	Amount        decimal.Decimal
	PaymentDate   time.Time
	PaymentMethod string // cash, bank_transfer, mobile_money
	Status        string // pending | paid | cancelled
	ProcessedBy   string // UserID
	Notes         string
	CreatedAt     time.Time
}
