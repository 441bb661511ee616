package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCarExpenseRequest body para POST /api/expenses/car.
// DriverID solo lo usa el CEO para registrar a nombre de un conductor.
type CreateCarExpenseRequest struct {
	DriverID    string          `json:"driver_id" validate:"omitempty,uuid"`
	CarNumber   string          `json:"car_number" validate:"required,min=1,max=20"`
	Category    string          `json:"category" validate:"required,oneof=Fuel Repairs Maintenance Other"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	Description string          `json:"description" validate:"omitempty,max=200"`
}

// CarExpenseResponse salida de un gasto de vehículo.
type CarExpenseResponse struct {
	ID          string          `json:"id"`
	DriverID    string          `json:"driver_id"`
	DriverName  string          `json:"driver_name,omitempty"`
	CarNumber   string          `json:"car_number"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
	Approved    bool            `json:"approved"`
	ApprovedBy  string          `json:"approved_by,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreateOtherExpenseRequest body para POST /api/expenses/other (CEO/Admin).
type CreateOtherExpenseRequest struct {
	Category    string          `json:"category" validate:"required,min=1,max=50"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	Description string          `json:"description" validate:"omitempty,max=200"`
}

// OtherExpenseResponse salida de un gasto general.
type OtherExpenseResponse struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
	CreatedBy   string          `json:"created_by"`
	Approved    bool            `json:"approved"`
	ApprovedBy  string          `json:"approved_by,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
