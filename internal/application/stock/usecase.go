package stock

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/fruit-track/internal/application/dto"
	"github.com/tu-usuario/fruit-track/internal/domain"
	"github.com/tu-usuario/fruit-track/internal/domain/entity"
	"github.com/tu-usuario/fruit-track/internal/domain/repository"
)

// UseCase gestiona el libro de movimientos de stock y el snapshot de inventario.
//
// Los movimientos manuales (bodeguero) conviven en el mismo libro con los
// generados por compras y ventas; el stock restante siempre se deriva de la
// suma con signo del libro, nunca del snapshot.
type UseCase struct {
	txRunner      TxRunner
	movementRepo  repository.StockMovementRepository
	inventoryRepo repository.InventoryRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, movementRepo repository.StockMovementRepository, inventoryRepo repository.InventoryRepository) *UseCase {
	return &UseCase{txRunner: txRunner, movementRepo: movementRepo, inventoryRepo: inventoryRepo}
}

// RecordMovement registra un movimiento manual. Una salida que dejaría el
// balance negativo se rechaza con ErrInsufficientStock, chequeado dentro de la
// transacción con la fila del snapshot bloqueada.
func (uc *UseCase) RecordMovement(ctx context.Context, callerID string, in dto.RecordStockMovementRequest) (*dto.StockMovementResponse, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Direction != entity.MovementIn && in.Direction != entity.MovementOut {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var resp *dto.StockMovementResponse

	err := uc.txRunner.RunStock(ctx, func(
		movementRepo repository.StockMovementRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		// El lock del snapshot serializa movimientos concurrentes del mismo
		// fruit_type. Una fruta sin fila aún no tiene qué bloquear: se inserta
		// la fila en cero y se vuelve a bloquear (el insert que pierde la
		// carrera recibe ErrConflict y encuentra la fila del ganador).
		snap, err := inventoryRepo.GetByFruitTypeForUpdate(in.FruitType)
		if err != nil {
			return err
		}
		if snap == nil {
			err := inventoryRepo.Create(&entity.Inventory{
				ID:        uuid.New().String(),
				Name:      in.FruitType,
				FruitType: in.FruitType,
				Quantity:  decimal.Zero,
				Unit:      in.Unit,
				AddedBy:   callerID,
				CreatedAt: now,
				UpdatedAt: now,
			})
			if err != nil && !errors.Is(err, domain.ErrConflict) {
				return err
			}
			if _, err := inventoryRepo.GetByFruitTypeForUpdate(in.FruitType); err != nil {
				return err
			}
		}
		balance, err := movementRepo.Balance(in.FruitType)
		if err != nil {
			return err
		}
		if in.Direction == entity.MovementOut && in.Quantity.GreaterThan(balance) {
			return domain.ErrInsufficientStock
		}

		mov := &entity.StockMovement{
			ID:            uuid.New().String(),
			FruitType:     in.FruitType,
			Direction:     in.Direction,
			Quantity:      in.Quantity,
			Unit:          in.Unit,
			Date:          now,
			ReferenceType: entity.MovementRefManual,
			Notes:         in.Notes,
			CreatedBy:     callerID,
			CreatedAt:     now,
		}
		if err := movementRepo.Create(mov); err != nil {
			return err
		}

		newBalance := balance.Add(mov.SignedQuantity())
		if err := inventoryRepo.UpdateQuantity(in.FruitType, newBalance); err != nil {
			return err
		}

		resp = toMovementResponse(mov)
		resp.RemainingStock = newBalance
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListMovements devuelve el libro de movimientos, opcionalmente filtrado por fruta.
func (uc *UseCase) ListMovements(fruitType string, page dto.PageRequest) ([]dto.StockMovementResponse, error) {
	page.DefaultPage()
	var (
		rows []*entity.StockMovement
		err  error
	)
	if fruitType != "" {
		rows, err = uc.movementRepo.ListByFruitType(fruitType, page.Limit, page.Offset)
	} else {
		rows, err = uc.movementRepo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toMovementResponse(m))
	}
	return out, nil
}

// RemainingStock deriva el balance actual del fruit_type desde el libro.
func (uc *UseCase) RemainingStock(fruitType string) (*dto.RemainingStockDTO, error) {
	if fruitType == "" {
		return nil, domain.ErrInvalidInput
	}
	balance, err := uc.movementRepo.Balance(fruitType)
	if err != nil {
		return nil, err
	}
	return &dto.RemainingStockDTO{FruitType: fruitType, Balance: balance}, nil
}

// ClearMovements borra todo el libro (solo CEO) y deja los snapshots en cero.
func (uc *UseCase) ClearMovements(ctx context.Context) (int64, error) {
	var deleted int64
	err := uc.txRunner.RunStock(ctx, func(
		movementRepo repository.StockMovementRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		n, err := movementRepo.DeleteAll()
		if err != nil {
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

// CreateInventory da de alta una línea de inventario (bodeguero).
func (uc *UseCase) CreateInventory(callerID string, in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	if in.Quantity.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.inventoryRepo.GetByFruitType(in.FruitType)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	inv := &entity.Inventory{
		ID:        uuid.New().String(),
		Name:      in.Name,
		FruitType: in.FruitType,
		Quantity:  in.Quantity,
		Unit:      in.Unit,
		Location:  in.Location,
		AddedBy:   callerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.inventoryRepo.Create(inv); err != nil {
		return nil, err
	}
	return toInventoryResponse(inv), nil
}

// ListInventory devuelve las líneas de inventario (snapshot).
func (uc *UseCase) ListInventory(page dto.PageRequest) ([]dto.InventoryResponse, error) {
	page.DefaultPage()
	rows, err := uc.inventoryRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryResponse, 0, len(rows))
	for _, inv := range rows {
		out = append(out, *toInventoryResponse(inv))
	}
	return out, nil
}

func toMovementResponse(m *entity.StockMovement) *dto.StockMovementResponse {
	return &dto.StockMovementResponse{
		ID:            m.ID,
		FruitType:     m.FruitType,
		Direction:     m.Direction,
		Quantity:      m.Quantity,
		Unit:          m.Unit,
		Date:          m.Date,
		ReferenceType: m.ReferenceType,
		ReferenceID:   m.ReferenceID,
		Notes:         m.Notes,
		CreatedBy:     m.CreatedBy,
	}
}

func toInventoryResponse(i *entity.Inventory) *dto.InventoryResponse {
	return &dto.InventoryResponse{
		ID:        i.ID,
		Name:      i.Name,
		FruitType: i.FruitType,
		Quantity:  i.Quantity,
		Unit:      i.Unit,
		Location:  i.Location,
		AddedBy:   i.AddedBy,
		UpdatedAt: i.UpdatedAt,
	}
}
