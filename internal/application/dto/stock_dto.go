package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordStockMovementRequest body para POST /api/stock/movements (bodeguero).
type RecordStockMovementRequest struct {
	FruitType string          `json:"fruit_type" validate:"required,min=1,max=50"`
	Direction string          `json:"direction" validate:"required,oneof=in out"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
	Unit      string          `json:"unit" validate:"required,oneof=kg box piece"`
	Notes     string          `json:"notes" validate:"omitempty,max=500"`
}

// StockMovementResponse salida de un movimiento, con el balance resultante.
type StockMovementResponse struct {
	ID             string          `json:"id"`
	FruitType      string          `json:"fruit_type"`
	Direction      string          `json:"direction"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	Date           time.Time       `json:"date"`
	ReferenceType  string          `json:"reference_type"`
	ReferenceID    string          `json:"reference_id,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	CreatedBy      string          `json:"created_by"`
	RemainingStock decimal.Decimal `json:"remaining_stock"`
}

// RemainingStockDTO respuesta de GET /api/stock/remaining?fruit_type=.
// Balance derivado de la suma con signo de movimientos, nunca del snapshot.
type RemainingStockDTO struct {
	FruitType string          `json:"fruit_type"`
	Balance   decimal.Decimal `json:"balance"`
}

// CreateInventoryRequest body para POST /api/inventory.
type CreateInventoryRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=100"`
	FruitType string          `json:"fruit_type" validate:"required,min=1,max=50"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
	Unit      string          `json:"unit" validate:"required,oneof=kg box piece"`
	Location  string          `json:"location" validate:"omitempty,max=100"`
}

// InventoryResponse salida de una línea de inventario.
type InventoryResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	FruitType string          `json:"fruit_type"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit"`
	Location  string          `json:"location,omitempty"`
	AddedBy   string          `json:"added_by"`
	UpdatedAt time.Time       `json:"updated_at"`
}
