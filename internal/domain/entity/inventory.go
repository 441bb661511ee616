package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory es una línea de stock con nombre (snapshot materializado por fruit_type).
// Quantity debe ser derivable de la suma con signo de los StockMovement de ese
// fruit_type; se recalcula en la misma transacción de cada movimiento y nunca
// queda negativa sin una ruta de override explícita.
type Inventory struct {
	ID        string
	Name      string
	FruitType string
	Quantity  decimal.Decimal
	Unit      string
	Location  string
	AddedBy   string // UserID del bodeguero
	CreatedAt time.Time
	UpdatedAt time.Time
}
