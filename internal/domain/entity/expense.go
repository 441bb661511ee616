package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de gasto de vehículo.
const (
	CarExpenseFuel        = "Fuel"
	CarExpenseRepairs     = "Repairs"
	CarExpenseMaintenance = "Maintenance"
	CarExpenseOther       = "Other"
)

// IsValidCarExpenseCategory valida la categoría contra la enumeración cerrada.
func IsValidCarExpenseCategory(c string) bool {
	switch c {
	case CarExpenseFuel, CarExpenseRepairs, CarExpenseMaintenance, CarExpenseOther:
		return true
	}
	return false
}

// CarExpense es un gasto de vehículo registrado por un conductor (o por el CEO
// a nombre de un conductor). Solo CEO/Admin aprueban.
type CarExpense struct {
	ID          string
	DriverID    string // User ref
	CarNumber   string
	Category    string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Approved    bool
	ApprovedBy  string // UserID del aprobador; vacío si no aprobado
	CreatedAt   time.Time
}

// OtherExpense es un gasto operativo general (no de vehículo). Solo CEO/Admin.
type OtherExpense struct {
	ID          string
	Category    string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	CreatedBy   string
	Approved    bool
	ApprovedBy  string
	CreatedAt   time.Time
}
