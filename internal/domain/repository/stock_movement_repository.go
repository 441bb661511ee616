package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/fruit-track/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia del libro de movimientos.
type StockMovementRepository interface {
	Create(m *entity.StockMovement) error
	List(limit, offset int) ([]*entity.StockMovement, error)
	ListByFruitType(fruitType string, limit, offset int) ([]*entity.StockMovement, error)
	// Balance devuelve la suma con signo (in positivo, out negativo) de los
	// movimientos del fruit_type. Es la fuente de verdad del stock restante.
	Balance(fruitType string) (decimal.Decimal, error)
	// DeleteByReference elimina los movimientos originados por un registro
	// (compra o venta) que se está borrando, dentro de la misma transacción.
	DeleteByReference(referenceType, referenceID string) error
	// DeleteByReferenceType elimina todos los movimientos de un tipo de origen
	// (usado por el borrado masivo de ventas para no dejar movimientos colgando).
	DeleteByReferenceType(referenceType string) (int64, error)
	// DeleteAll borra todo el historial y devuelve cuántas filas eliminó.
	DeleteAll() (int64, error)
}

// InventoryRepository define el puerto para las líneas de inventario (snapshot).
type InventoryRepository interface {
	Create(i *entity.Inventory) error
	List(limit, offset int) ([]*entity.Inventory, error)
	GetByFruitType(fruitType string) (*entity.Inventory, error)
	// GetByFruitTypeForUpdate bloquea la fila del snapshot (SELECT FOR UPDATE).
	GetByFruitTypeForUpdate(fruitType string) (*entity.Inventory, error)
	// UpdateQuantity reescribe el snapshot materializado del fruit_type.
	UpdateQuantity(fruitType string, quantity decimal.Decimal) error
	// RecomputeAll reescribe todos los snapshots desde la suma con signo de
	// movimientos (para después de un borrado masivo).
	RecomputeAll() error
}
