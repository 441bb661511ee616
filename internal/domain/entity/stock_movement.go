package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direcciones de movimiento de stock.
const (
	MovementIn  = "in"
	MovementOut = "out"
)

// Tipos de referencia al registro que originó el movimiento.
const (
	MovementRefPurchase = "purchase"
	MovementRefSale     = "sale"
	MovementRefManual   = "manual" // registrado a mano por el bodeguero
)

// StockMovement es una línea del libro de movimientos de stock (append-only).
// El balance de un fruit_type es la suma con signo de sus movimientos; la fila
// de Inventory es solo un snapshot materializado de ese balance.
// Al eliminar el registro origen (compra o venta) se elimina su movimiento en
// la misma transacción para que el balance derivado siga siendo correcto.
type StockMovement struct {
	ID            string
	FruitType     string
	Direction     string // in | out
	Quantity      decimal.Decimal
	Unit          string
	Date          time.Time
	ReferenceType string // purchase | sale | manual
	ReferenceID   string // vacío para movimientos manuales
	Notes         string
	CreatedBy     string // UserID
	CreatedAt     time.Time
}

// SignedQuantity devuelve la cantidad con signo según la dirección.
func (m StockMovement) SignedQuantity() decimal.Decimal {
	if m.Direction == MovementOut {
		return m.Quantity.Neg()
	}
	return m.Quantity
}
