package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest body para POST /api/purchases.
// La fecha viaja como YYYY-MM-DD (igual que el resto de la API).
type CreatePurchaseRequest struct {
	SupplierName string          `json:"supplier_name" validate:"required,min=1,max=100"`
	FruitType    string          `json:"fruit_type" validate:"required,min=1,max=50"`
	Quantity     decimal.Decimal `json:"quantity" validate:"required"`
	Unit         string          `json:"unit" validate:"required,oneof=kg box piece"`
	UnitCost     decimal.Decimal `json:"unit_cost" validate:"required"`
	PurchaseDate string          `json:"purchase_date" validate:"required,datetime=2006-01-02"`
}

// UpdatePurchaseRequest body para PUT /api/purchases/:id (solo CEO).
type UpdatePurchaseRequest struct {
	SupplierName string           `json:"supplier_name" validate:"omitempty,min=1,max=100"`
	FruitType    string           `json:"fruit_type" validate:"omitempty,min=1,max=50"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty"`
	Unit         string           `json:"unit" validate:"omitempty,oneof=kg box piece"`
	UnitCost     *decimal.Decimal `json:"unit_cost,omitempty"`
	PurchaseDate string           `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
}

// PurchaseResponse salida de una compra.
type PurchaseResponse struct {
	ID            string          `json:"id"`
	PurchaserID   string          `json:"purchaser_id"`
	PurchaserName string          `json:"purchaser_name,omitempty"`
	SupplierName  string          `json:"supplier_name"`
	FruitType     string          `json:"fruit_type"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PurchaseDate  string          `json:"purchase_date"`
	CreatedAt     time.Time       `json:"created_at"`
}
