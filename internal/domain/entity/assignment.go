package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una asignación de vendedor.
const (
	AssignmentInTransit = "In Transit"
	AssignmentCompleted = "Completed"
)

// Assignment representa stock entregado a un vendedor para su ruta de venta.
// Creada por el CEO. Es dueña exclusiva de sus Sales (cascade delete).
// Invariante duro: la suma de quantity_sold de sus ventas nunca supera QuantityAssigned.
type Assignment struct {
	ID               string
	SellerID         string // User ref con rol seller, activo al momento de crear
	FruitType        string
	QuantityAssigned decimal.Decimal
	MoneyIssued      decimal.Decimal // efectivo entregado para gastos de la ruta
	TravelDate       time.Time
	Status           string // In Transit | Completed
	CreatedAt        time.Time
}

// Sale representa una venta registrada contra una asignación.
// SellerID se denormaliza desde la asignación para el scoping por rol y los reportes.
type Sale struct {
	ID               string
	AssignmentID     string
	SellerID         string
	FruitType        string
	QuantitySold     decimal.Decimal
	RevenueCollected decimal.Decimal
	Date             time.Time
}
