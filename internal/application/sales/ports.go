package sales

import (
	"context"

	"github.com/tu-usuario/fruit-track/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el chequeo de oversell, el
// insert de la venta, el movimiento de stock y el snapshot de inventario
// se confirmen (o reviertan) como una sola unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		assignmentRepo repository.AssignmentRepository,
		saleRepo repository.SaleRepository,
		movementRepo repository.StockMovementRepository,
		inventoryRepo repository.InventoryRepository,
	) error) error
}
