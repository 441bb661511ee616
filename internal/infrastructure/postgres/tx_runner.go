package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/fruit-track/internal/application/sales"
	"github.com/tu-usuario/fruit-track/internal/application/stock"
	"github.com/tu-usuario/fruit-track/internal/application/usecase"
	"github.com/tu-usuario/fruit-track/internal/domain/repository"
)

// Ensure TxRunner implements the application tx ports.
var _ sales.TxRunner = (*TxRunner)(nil)
var _ usecase.PurchaseTxRunner = (*TxRunner)(nil)
var _ usecase.AssignmentTxRunner = (*TxRunner)(nil)
var _ stock.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción para el camino de ventas: asignación bloqueada,
// venta, movimiento de stock y snapshot, con Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	assignmentRepo repository.AssignmentRepository,
	saleRepo repository.SaleRepository,
	movementRepo repository.StockMovementRepository,
	inventoryRepo repository.InventoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	assignmentRepo := NewAssignmentRepository(tx)
	saleRepo := NewSaleRepository(tx)
	movementRepo := NewStockMovementRepository(tx)
	inventoryRepo := NewInventoryRepository(tx)

	if err := fn(assignmentRepo, saleRepo, movementRepo, inventoryRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPurchase inicia una transacción para el camino de compras (compra +
// movimiento de entrada + snapshot).
func (r *TxRunner) RunPurchase(ctx context.Context, fn func(
	purchaseRepo repository.PurchaseRepository,
	movementRepo repository.StockMovementRepository,
	inventoryRepo repository.InventoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	purchaseRepo := NewPurchaseRepository(tx)
	movementRepo := NewStockMovementRepository(tx)
	inventoryRepo := NewInventoryRepository(tx)

	if err := fn(purchaseRepo, movementRepo, inventoryRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunStock inicia una transacción para movimientos manuales de stock.
func (r *TxRunner) RunStock(ctx context.Context, fn func(
	movementRepo repository.StockMovementRepository,
	inventoryRepo repository.InventoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movementRepo := NewStockMovementRepository(tx)
	inventoryRepo := NewInventoryRepository(tx)

	if err := fn(movementRepo, inventoryRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
