package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/fruit-track/internal/application/dto"
	"github.com/tu-usuario/fruit-track/internal/domain"
	"github.com/tu-usuario/fruit-track/internal/domain/entity"
	"github.com/tu-usuario/fruit-track/internal/domain/repository"
)

// SaleUseCase registra y consulta ventas contra asignaciones de vendedor.
//
// El camino de escritura (RecordSale) es el algoritmo central del sistema:
// autorizar → validar → chequear invariante de oversell → escribir venta +
// movimiento de stock + snapshot, todo dentro de una sola transacción con la
// fila de la asignación bloqueada (SELECT FOR UPDATE). Dos ventas concurrentes
// contra la misma asignación se serializan en ese lock y no pueden superar
// juntas la cantidad asignada.
type SaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
	userRepo repository.UserRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository, userRepo repository.UserRepository) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, saleRepo: saleRepo, userRepo: userRepo}
}

// RecordSale registra una venta del vendedor autenticado contra su asignación.
//
//  1. Carga la asignación con FOR UPDATE; ErrNotFound si no existe.
//  2. ErrForbidden si la asignación no es del caller (el CEO no tiene scoping).
//  3. alreadySold + quantitySold > quantityAssigned → ErrOversell (dentro de la tx).
//  4. Inserta la venta, el movimiento de stock de salida con back-reference a la
//     venta, y recalcula el snapshot de inventario del fruit_type.
//  5. Si el total vendido alcanza lo asignado, la asignación pasa a Completed.
func (uc *SaleUseCase) RecordSale(ctx context.Context, callerID, callerRole string, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if !in.QuantitySold.GreaterThan(decimal.Zero) || in.RevenueCollected.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var resp *dto.SaleResponse

	err := uc.txRunner.Run(ctx, func(
		assignmentRepo repository.AssignmentRepository,
		saleRepo repository.SaleRepository,
		movementRepo repository.StockMovementRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		assignment, err := assignmentRepo.GetForUpdate(in.AssignmentID)
		if err != nil {
			return err
		}
		if assignment == nil {
			return domain.ErrNotFound
		}
		if callerRole != entity.RoleCEO && assignment.SellerID != callerID {
			return domain.ErrForbidden
		}

		alreadySold, err := saleRepo.SumQuantityByAssignment(assignment.ID)
		if err != nil {
			return err
		}
		newTotal := alreadySold.Add(in.QuantitySold)
		if newTotal.GreaterThan(assignment.QuantityAssigned) {
			return domain.ErrOversell
		}

		sale := &entity.Sale{
			ID:               uuid.New().String(),
			AssignmentID:     assignment.ID,
			SellerID:         assignment.SellerID,
			FruitType:        assignment.FruitType,
			QuantitySold:     in.QuantitySold,
			RevenueCollected: in.RevenueCollected,
			Date:             now,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		// Movimiento de salida con back-reference: si la venta se borra, su
		// movimiento cae con ella y el balance derivado sigue siendo correcto.
		mov := &entity.StockMovement{
			ID:            uuid.New().String(),
			FruitType:     assignment.FruitType,
			Direction:     entity.MovementOut,
			Quantity:      in.QuantitySold,
			Unit:          "kg",
			Date:          now,
			ReferenceType: entity.MovementRefSale,
			ReferenceID:   sale.ID,
			CreatedBy:     callerID,
			CreatedAt:     now,
		}
		if err := movementRepo.Create(mov); err != nil {
			return err
		}
		if err := refreshSnapshot(movementRepo, inventoryRepo, assignment.FruitType); err != nil {
			return err
		}

		if newTotal.Equal(assignment.QuantityAssigned) {
			if err := assignmentRepo.UpdateStatus(assignment.ID, entity.AssignmentCompleted); err != nil {
				return err
			}
		}

		resp = &dto.SaleResponse{
			ID:                sale.ID,
			AssignmentID:      sale.AssignmentID,
			SellerID:          sale.SellerID,
			FruitType:         sale.FruitType,
			QuantitySold:      sale.QuantitySold,
			RevenueCollected:  sale.RevenueCollected,
			Date:              sale.Date,
			QuantityRemaining: assignment.QuantityAssigned.Sub(newTotal),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// List devuelve ventas con scoping por rol: un seller solo ve las suyas,
// el CEO las ve todas. El nombre del vendedor se resuelve por fila.
func (uc *SaleUseCase) List(callerID, callerRole string, page dto.PageRequest) ([]dto.SaleResponse, error) {
	page.DefaultPage()
	var (
		rows []*entity.Sale
		err  error
	)
	if callerRole == entity.RoleCEO {
		rows, err = uc.saleRepo.List(page.Limit, page.Offset)
	} else {
		rows, err = uc.saleRepo.ListBySeller(callerID, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	names := map[string]string{}
	out := make([]dto.SaleResponse, 0, len(rows))
	for _, s := range rows {
		resp := dto.SaleResponse{
			ID:               s.ID,
			AssignmentID:     s.AssignmentID,
			SellerID:         s.SellerID,
			FruitType:        s.FruitType,
			QuantitySold:     s.QuantitySold,
			RevenueCollected: s.RevenueCollected,
			Date:             s.Date,
		}
		if name, ok := names[s.SellerID]; ok {
			resp.SellerName = name
		} else if u, err := uc.userRepo.GetByID(s.SellerID); err == nil && u != nil {
			names[s.SellerID] = u.Name
			resp.SellerName = u.Name
		}
		out = append(out, resp)
	}
	return out, nil
}

// Clear borra todas las ventas (solo CEO) junto con sus movimientos de stock,
// y reconstruye los snapshots de inventario desde los movimientos restantes.
func (uc *SaleUseCase) Clear(ctx context.Context) (int64, error) {
	var deleted int64
	err := uc.txRunner.Run(ctx, func(
		_ repository.AssignmentRepository,
		saleRepo repository.SaleRepository,
		movementRepo repository.StockMovementRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		n, err := saleRepo.DeleteAll()
		if err != nil {
			return err
		}
		if _, err := movementRepo.DeleteByReferenceType(entity.MovementRefSale); err != nil {
			return err
		}
		if err := inventoryRepo.RecomputeAll(); err != nil {
			return err
		}
		deleted = n
		return nil
	})
	return deleted, err
}

// Summary agrupa revenue y número de ventas por vendedor (solo CEO).
func (uc *SaleUseCase) Summary() ([]dto.SellerSummaryDTO, error) {
	rows, err := uc.saleRepo.SummaryBySeller()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SellerSummaryDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SellerSummaryDTO{
			SellerID:     r.SellerID,
			SellerName:   r.SellerName,
			TotalRevenue: dto.FormatMoney(r.TotalRevenue),
			SalesCount:   r.SalesCount,
		})
	}
	return out, nil
}

// refreshSnapshot reescribe el snapshot de inventario del fruit_type desde la
// suma con signo de movimientos, dentro de la transacción actual.
func refreshSnapshot(movementRepo repository.StockMovementRepository, inventoryRepo repository.InventoryRepository, fruitType string) error {
	balance, err := movementRepo.Balance(fruitType)
	if err != nil {
		return err
	}
	return inventoryRepo.UpdateQuantity(fruitType, balance)
}
