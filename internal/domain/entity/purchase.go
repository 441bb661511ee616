package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase representa una compra de fruta a un proveedor.
// Registrada por un comprador (purchaser); inmutable después de creada salvo por el CEO.
// Al crearla se inserta en la misma transacción un StockMovement de entrada;
// al eliminarla (solo CEO) se elimina también su movimiento para conservar el balance.
type Purchase struct {
	ID           string
	PurchaserID  string // User ref; debe ser purchaser (o ceo) activo al momento de crear
	SupplierName string
	FruitType    string
	Quantity     decimal.Decimal
	Unit         string // kg, box, piece
	UnitCost     decimal.Decimal
	TotalAmount  decimal.Decimal // Quantity × UnitCost, persistido para reportes
	PurchaseDate time.Time
	CreatedAt    time.Time
}
