package stock

import (
	"context"

	"github.com/tu-usuario/fruit-track/internal/domain/repository"
)

// TxRunner ejecuta el camino de escritura de stock dentro de una transacción:
// movimiento manual + snapshot de inventario como unidad atómica, con el
// balance chequeado bajo la misma transacción.
type TxRunner interface {
	RunStock(ctx context.Context, fn func(
		movementRepo repository.StockMovementRepository,
		inventoryRepo repository.InventoryRepository,
	) error) error
}
