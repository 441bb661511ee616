package usecase

import (
	"context"

	"github.com/tu-usuario/fruit-track/internal/domain/repository"
)

// PurchaseTxRunner ejecuta el camino de escritura de compras dentro de una
// transacción: alta/baja de la compra, su movimiento de stock con
// back-reference y el snapshot de inventario, como unidad atómica.
type PurchaseTxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		purchaseRepo repository.PurchaseRepository,
		movementRepo repository.StockMovementRepository,
		inventoryRepo repository.InventoryRepository,
	) error) error
}

// AssignmentTxRunner ejecuta el borrado de una asignación como unidad atómica:
// la asignación, sus ventas hijas (cascade en el storage), los movimientos de
// stock de esas ventas y el snapshot recalculado caen o quedan juntos.
type AssignmentTxRunner interface {
	Run(ctx context.Context, fn func(
		assignmentRepo repository.AssignmentRepository,
		saleRepo repository.SaleRepository,
		movementRepo repository.StockMovementRepository,
		inventoryRepo repository.InventoryRepository,
	) error) error
}
