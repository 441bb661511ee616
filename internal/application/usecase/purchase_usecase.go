package usecase

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

const dateLayout = "2006-01-02"

// PurchaseUseCase gestiona compras de fruta a proveedores.
// Crear una compra inserta en la misma transacción un movimiento de stock de
// entrada con back-reference; editarla o borrarla (solo CEO) mantiene el libro
// de movimientos y el snapshot de inventario consistentes.
type PurchaseUseCase struct {
	txRunner     PurchaseTxRunner
	purchaseRepo repository.PurchaseRepository
	userRepo     repository.UserRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(txRunner PurchaseTxRunner, purchaseRepo repository.PurchaseRepository, userRepo repository.UserRepository) *PurchaseUseCase {
	return &PurchaseUseCase{txRunner: txRunner, purchaseRepo: purchaseRepo, userRepo: userRepo}
}

// Create registra una compra a nombre del caller (purchaser o CEO).
func (uc *PurchaseUseCase) Create(ctx context.Context, callerID string, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) || in.UnitCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	purchaseDate, err := time.Parse(dateLayout, in.PurchaseDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	p := &entity.Purchase{
		ID:           uuid.New().String(),
		PurchaserID:  callerID,
		SupplierName: in.SupplierName,
		FruitType:    in.FruitType,
		Quantity:     in.Quantity,
		Unit:         in.Unit,
		UnitCost:     in.UnitCost,
		TotalAmount:  in.Quantity.Mul(in.UnitCost),
		PurchaseDate: purchaseDate,
		CreatedAt:    now,
	}

	err = uc.txRunner.RunPurchase(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		movementRepo repository.StockMovementRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		if err := purchaseRepo.Create(p); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:            uuid.New().String(),
			FruitType:     p.FruitType,
			Direction:     entity.MovementIn,
			Quantity:      p.Quantity,
			Unit:          p.Unit,
			Date:          p.PurchaseDate,
			ReferenceType: entity.MovementRefPurchase,
			ReferenceID:   p.ID,
			CreatedBy:     callerID,
			CreatedAt:     now,
		}
		if err := movementRepo.Create(mov); err != nil {
			return err
		}
		return refreshSnapshot(movementRepo, inventoryRepo, p.FruitType)
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(p), nil
}

// List devuelve compras con scoping por rol: un purchaser solo ve las suyas,
// el CEO las ve todas.
func (uc *PurchaseUseCase) List(callerID, callerRole string, page dto.PageRequest) ([]dto.PurchaseResponse, error) {
	page.DefaultPage()
	var (
		rows []*entity.Purchase
		err  error
	)
	if callerRole == entity.RoleCEO {
		rows, err = uc.purchaseRepo.List(page.Limit, page.Offset)
	} else {
		rows, err = uc.purchaseRepo.ListByPurchaser(callerID, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}

	// Resolver nombres de compradores (una consulta por comprador distinto).
	names := map[string]string{}
	out := make([]dto.PurchaseResponse, 0, len(rows))
	for _, p := range rows {
		resp := uc.toResponse(p)
		if name, ok := names[p.PurchaserID]; ok {
			resp.PurchaserName = name
		} else if u, err := uc.userRepo.GetByID(p.PurchaserID); err == nil && u != nil {
			names[p.PurchaserID] = u.Name
			resp.PurchaserName = u.Name
		}
		out = append(out, *resp)
	}
	return out, nil
}

// Update modifica una compra (solo CEO). El movimiento de stock asociado se
// reemplaza y el snapshot se recalcula en la misma transacción.
func (uc *PurchaseUseCase) Update(ctx context.Context, id, callerID string, in dto.UpdatePurchaseRequest) (*dto.PurchaseResponse, error) {
	p, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	oldFruit := p.FruitType
	if in.SupplierName != "" {
		p.SupplierName = in.SupplierName
	}
	if in.FruitType != "" {
		p.FruitType = in.FruitType
	}
	if in.Quantity != nil {
		if !in.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		p.Quantity = *in.Quantity
	}
	if in.Unit != "" {
		p.Unit = in.Unit
	}
	if in.UnitCost != nil {
		if in.UnitCost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		p.UnitCost = *in.UnitCost
	}
	if in.PurchaseDate != "" {
		d, err := time.Parse(dateLayout, in.PurchaseDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		p.PurchaseDate = d
	}
	p.TotalAmount = p.Quantity.Mul(p.UnitCost)

	err = uc.txRunner.RunPurchase(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		movementRepo repository.StockMovementRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		if err := purchaseRepo.Update(p); err != nil {
			return err
		}
		if err := movementRepo.DeleteByReference(entity.MovementRefPurchase, p.ID); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:            uuid.New().String(),
			FruitType:     p.FruitType,
			Direction:     entity.MovementIn,
			Quantity:      p.Quantity,
			Unit:          p.Unit,
			Date:          p.PurchaseDate,
			ReferenceType: entity.MovementRefPurchase,
			ReferenceID:   p.ID,
			CreatedBy:     callerID,
			CreatedAt:     time.Now(),
		}
		if err := movementRepo.Create(mov); err != nil {
			return err
		}
		if err := refreshSnapshot(movementRepo, inventoryRepo, p.FruitType); err != nil {
			return err
		}
		if oldFruit != p.FruitType {
			return refreshSnapshot(movementRepo, inventoryRepo, oldFruit)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(p), nil
}

// Delete elimina una compra (solo CEO) junto con su movimiento de stock
// (cascade) y recalcula el snapshot, en una sola transacción.
func (uc *PurchaseUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.RunPurchase(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		movementRepo repository.StockMovementRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		if err := movementRepo.DeleteByReference(entity.MovementRefPurchase, p.ID); err != nil {
			return err
		}
		if err := purchaseRepo.Delete(p.ID); err != nil {
			return err
		}
		return refreshSnapshot(movementRepo, inventoryRepo, p.FruitType)
	})
}

func (uc *PurchaseUseCase) toResponse(p *entity.Purchase) *dto.PurchaseResponse {
	return &dto.PurchaseResponse{
		ID:           p.ID,
		PurchaserID:  p.PurchaserID,
		SupplierName: p.SupplierName,
		FruitType:    p.FruitType,
		Quantity:     p.Quantity,
		Unit:         p.Unit,
		UnitCost:     p.UnitCost,
		TotalAmount:  p.TotalAmount,
		PurchaseDate: p.PurchaseDate.Format(dateLayout),
		CreatedAt:    p.CreatedAt,
	}
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
