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

// AssignmentUseCase gestiona asignaciones de stock a vendedores (solo las crea el CEO).
type AssignmentUseCase struct {
	txRunner       AssignmentTxRunner
	assignmentRepo repository.AssignmentRepository
	saleRepo       repository.SaleRepository
	userRepo       repository.UserRepository
}

// NewAssignmentUseCase construye el caso de uso.
func NewAssignmentUseCase(txRunner AssignmentTxRunner, assignmentRepo repository.AssignmentRepository, saleRepo repository.SaleRepository, userRepo repository.UserRepository) *AssignmentUseCase {
	return &AssignmentUseCase{txRunner: txRunner, assignmentRepo: assignmentRepo, saleRepo: saleRepo, userRepo: userRepo}
}

// Create emite stock a un vendedor. El vendedor debe existir, estar activo y
// tener rol seller al momento de crear (el rol queda fijado en la fila; cambios
// de rol posteriores no invalidan asignaciones ya creadas).
func (uc *AssignmentUseCase) Create(in dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	if !in.QuantityAssigned.GreaterThan(decimal.Zero) || in.MoneyIssued.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	travelDate, err := time.Parse(dateLayout, in.TravelDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	seller, err := uc.userRepo.GetByID(in.SellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil || !seller.IsActive || seller.Role != entity.RoleSeller {
		return nil, domain.ErrUserNotFound
	}

	a := &entity.Assignment{
		ID:               uuid.New().String(),
		SellerID:         seller.ID,
		FruitType:        in.FruitType,
		QuantityAssigned: in.QuantityAssigned,
		MoneyIssued:      in.MoneyIssued,
		TravelDate:       travelDate,
		Status:           entity.AssignmentInTransit,
		CreatedAt:        time.Now(),
	}
	if err := uc.assignmentRepo.Create(a); err != nil {
		return nil, err
	}

	resp := uc.toResponse(a, nil)
	resp.SellerName = seller.Name
	return resp, nil
}

// List devuelve asignaciones con scoping por rol (seller: solo las propias) y
// con sus cantidades derivadas recalculadas desde las ventas hijas: nunca se
// confía en un remaining cacheado.
func (uc *AssignmentUseCase) List(callerID, callerRole string, page dto.PageRequest) ([]dto.AssignmentResponse, error) {
	page.DefaultPage()
	var (
		rows []*entity.Assignment
		err  error
	)
	if callerRole == entity.RoleCEO {
		rows, err = uc.assignmentRepo.List(page.Limit, page.Offset)
	} else {
		rows, err = uc.assignmentRepo.ListBySeller(callerID, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}

	names := map[string]string{}
	out := make([]dto.AssignmentResponse, 0, len(rows))
	for _, a := range rows {
		sales, err := uc.saleRepo.ListByAssignment(a.ID)
		if err != nil {
			return nil, err
		}
		resp := uc.toResponse(a, sales)
		if name, ok := names[a.SellerID]; ok {
			resp.SellerName = name
		} else if u, err := uc.userRepo.GetByID(a.SellerID); err == nil && u != nil {
			names[a.SellerID] = u.Name
			resp.SellerName = u.Name
		}
		out = append(out, *resp)
	}
	return out, nil
}

// Delete elimina una asignación (solo CEO) en una sola transacción. Las ventas
// hijas caen por cascade en el storage; sus movimientos de stock se borran aquí
// mismo y el snapshot del fruit_type se recalcula desde el libro restante, para
// que el balance derivado no quede descontado por ventas que ya no existen.
func (uc *AssignmentUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		assignmentRepo repository.AssignmentRepository,
		saleRepo repository.SaleRepository,
		movementRepo repository.StockMovementRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		a, err := assignmentRepo.GetByID(id)
		if err != nil {
			return err
		}
		if a == nil {
			return domain.ErrNotFound
		}
		sales, err := saleRepo.ListByAssignment(id)
		if err != nil {
			return err
		}
		for _, s := range sales {
			if err := movementRepo.DeleteByReference(entity.MovementRefSale, s.ID); err != nil {
				return err
			}
		}
		if err := assignmentRepo.Delete(id); err != nil {
			return err
		}
		balance, err := movementRepo.Balance(a.FruitType)
		if err != nil {
			return err
		}
		return inventoryRepo.UpdateQuantity(a.FruitType, balance)
	})
}

func (uc *AssignmentUseCase) toResponse(a *entity.Assignment, sales []*entity.Sale) *dto.AssignmentResponse {
	totalSold := decimal.Zero
	totalRevenue := decimal.Zero
	saleDTOs := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		totalSold = totalSold.Add(s.QuantitySold)
		totalRevenue = totalRevenue.Add(s.RevenueCollected)
		saleDTOs = append(saleDTOs, dto.SaleResponse{
			ID:               s.ID,
			AssignmentID:     s.AssignmentID,
			SellerID:         s.SellerID,
			FruitType:        s.FruitType,
			QuantitySold:     s.QuantitySold,
			RevenueCollected: s.RevenueCollected,
			Date:             s.Date,
		})
	}
	return &dto.AssignmentResponse{
		ID:                a.ID,
		SellerID:          a.SellerID,
		FruitType:         a.FruitType,
		QuantityAssigned:  a.QuantityAssigned,
		MoneyIssued:       a.MoneyIssued,
		TravelDate:        a.TravelDate.Format(dateLayout),
		Status:            a.Status,
		QuantityRemaining: a.QuantityAssigned.Sub(totalSold),
		TotalRevenue:      totalRevenue,
		Sales:             saleDTOs,
	}
}
