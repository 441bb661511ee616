package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAssignmentRequest body para POST /api/assignments (solo CEO).
type CreateAssignmentRequest struct {
	SellerID         string          `json:"seller_id" validate:"required,uuid"`
	FruitType        string          `json:"fruit_type" validate:"required,min=1,max=50"`
	QuantityAssigned decimal.Decimal `json:"quantity_assigned" validate:"required"`
	MoneyIssued      decimal.Decimal `json:"money_issued"`
	TravelDate       string          `json:"travel_date" validate:"required,datetime=2006-01-02"`
}

// RecordSaleRequest body para POST /api/sales (solo seller, sobre su propia asignación).
type RecordSaleRequest struct {
	AssignmentID     string          `json:"assignment_id" validate:"required,uuid"`
	QuantitySold     decimal.Decimal `json:"quantity_sold" validate:"required"`
	RevenueCollected decimal.Decimal `json:"revenue_collected" validate:"required"`
}

// SaleResponse salida de una venta. QuantityRemaining se recalcula al momento
// de serializar (nunca se confía en un valor cacheado).
type SaleResponse struct {
	ID                string          `json:"id"`
	AssignmentID      string          `json:"assignment_id"`
	SellerID          string          `json:"seller_id"`
	SellerName        string          `json:"seller_name,omitempty"`
	FruitType         string          `json:"fruit_type"`
	QuantitySold      decimal.Decimal `json:"quantity_sold"`
	RevenueCollected  decimal.Decimal `json:"revenue_collected"`
	Date              time.Time       `json:"date"`
	QuantityRemaining decimal.Decimal `json:"quantity_remaining"`
}

// AssignmentResponse salida de una asignación con sus ventas y cantidades derivadas.
type AssignmentResponse struct {
	ID                string          `json:"id"`
	SellerID          string          `json:"seller_id"`
	SellerName        string          `json:"seller_name,omitempty"`
	FruitType         string          `json:"fruit_type"`
	QuantityAssigned  decimal.Decimal `json:"quantity_assigned"`
	MoneyIssued       decimal.Decimal `json:"money_issued"`
	TravelDate        string          `json:"travel_date"`
	Status            string          `json:"status"`
	QuantityRemaining decimal.Decimal `json:"quantity_remaining"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	Sales             []SaleResponse  `json:"sales"`
}

// SellerSummaryDTO fila del resumen de ventas por vendedor (GET /api/sales/summary).
type SellerSummaryDTO struct {
	SellerID     string `json:"seller_id"`
	SellerName   string `json:"seller_name"`
	TotalRevenue string `json:"total_revenue"` // formateado 1,234.56 a nivel presentación
	SalesCount   int    `json:"sales_count"`
}

// ClearResultDTO resultado de las operaciones de borrado masivo (solo CEO).
type ClearResultDTO struct {
	Deleted int64 `json:"deleted"`
}
