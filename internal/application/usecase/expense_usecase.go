package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/fruit-track/internal/application/dto"
	"github.com/tu-usuario/fruit-track/internal/domain"
	"github.com/tu-usuario/fruit-track/internal/domain/entity"
	"github.com/tu-usuario/fruit-track/internal/domain/repository"
)

// ExpenseUseCase gestiona gastos de vehículo (conductores) y gastos generales.
// Los gastos nacen sin aprobar; solo el CEO los aprueba.
type ExpenseUseCase struct {
	carRepo   repository.CarExpenseRepository
	otherRepo repository.OtherExpenseRepository
	userRepo  repository.UserRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(carRepo repository.CarExpenseRepository, otherRepo repository.OtherExpenseRepository, userRepo repository.UserRepository) *ExpenseUseCase {
	return &ExpenseUseCase{carRepo: carRepo, otherRepo: otherRepo, userRepo: userRepo}
}

// CreateCarExpense registra un gasto de vehículo. Un driver registra a su
// nombre; el CEO puede registrar a nombre de cualquier conductor vía DriverID.
func (uc *ExpenseUseCase) CreateCarExpense(callerID, callerRole string, in dto.CreateCarExpenseRequest) (*dto.CarExpenseResponse, error) {
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsValidCarExpenseCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	driverID := callerID
	if callerRole == entity.RoleCEO && in.DriverID != "" {
		driver, err := uc.userRepo.GetByID(in.DriverID)
		if err != nil {
			return nil, err
		}
		if driver == nil {
			return nil, domain.ErrUserNotFound
		}
		driverID = driver.ID
	}

	e := &entity.CarExpense{
		ID:          uuid.New().String(),
		DriverID:    driverID,
		CarNumber:   in.CarNumber,
		Category:    in.Category,
		Amount:      in.Amount,
		Date:        date,
		Description: in.Description,
		Approved:    false,
		CreatedAt:   time.Now(),
	}
	if err := uc.carRepo.Create(e); err != nil {
		return nil, err
	}
	return uc.toCarResponse(e), nil
}

// ListCarExpenses aplica scoping por rol: un driver solo ve los suyos.
func (uc *ExpenseUseCase) ListCarExpenses(callerID, callerRole string, page dto.PageRequest) ([]dto.CarExpenseResponse, error) {
	page.DefaultPage()
	var (
		rows []*entity.CarExpense
		err  error
	)
	if callerRole == entity.RoleCEO {
		rows, err = uc.carRepo.List(page.Limit, page.Offset)
	} else {
		rows, err = uc.carRepo.ListByDriver(callerID, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}

	names := map[string]string{}
	out := make([]dto.CarExpenseResponse, 0, len(rows))
	for _, e := range rows {
		resp := uc.toCarResponse(e)
		if name, ok := names[e.DriverID]; ok {
			resp.DriverName = name
		} else if u, err := uc.userRepo.GetByID(e.DriverID); err == nil && u != nil {
			names[e.DriverID] = u.Name
			resp.DriverName = u.Name
		}
		out = append(out, *resp)
	}
	return out, nil
}

// ApproveCarExpense marca el gasto como aprobado por el CEO. Idempotente.
func (uc *ExpenseUseCase) ApproveCarExpense(id, approverID string) (*dto.CarExpenseResponse, error) {
	e, err := uc.carRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if !e.Approved {
		if err := uc.carRepo.Approve(id, approverID); err != nil {
			return nil, err
		}
		e.Approved = true
		e.ApprovedBy = approverID
	}
	return uc.toCarResponse(e), nil
}

// CreateOtherExpense registra un gasto general (CEO/Admin).
func (uc *ExpenseUseCase) CreateOtherExpense(callerID string, in dto.CreateOtherExpenseRequest) (*dto.OtherExpenseResponse, error) {
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	e := &entity.OtherExpense{
		ID:          uuid.New().String(),
		Category:    in.Category,
		Amount:      in.Amount,
		Date:        date,
		Description: in.Description,
		CreatedBy:   callerID,
		Approved:    false,
		CreatedAt:   time.Now(),
	}
	if err := uc.otherRepo.Create(e); err != nil {
		return nil, err
	}
	return uc.toOtherResponse(e), nil
}

// ListOtherExpenses devuelve los gastos generales.
func (uc *ExpenseUseCase) ListOtherExpenses(page dto.PageRequest) ([]dto.OtherExpenseResponse, error) {
	page.DefaultPage()
	rows, err := uc.otherRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OtherExpenseResponse, 0, len(rows))
	for _, e := range rows {
		out = append(out, *uc.toOtherResponse(e))
	}
	return out, nil
}

// ApproveOtherExpense marca el gasto general como aprobado. Idempotente.
func (uc *ExpenseUseCase) ApproveOtherExpense(id, approverID string) (*dto.OtherExpenseResponse, error) {
	e, err := uc.otherRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if !e.Approved {
		if err := uc.otherRepo.Approve(id, approverID); err != nil {
			return nil, err
		}
		e.Approved = true
		e.ApprovedBy = approverID
	}
	return uc.toOtherResponse(e), nil
}

func (uc *ExpenseUseCase) toCarResponse(e *entity.CarExpense) *dto.CarExpenseResponse {
	return &dto.CarExpenseResponse{
		ID:          e.ID,
		DriverID:    e.DriverID,
		CarNumber:   e.CarNumber,
		Category:    e.Category,
		Amount:      e.Amount,
		Date:        e.Date.Format(dateLayout),
		Description: e.Description,
		Approved:    e.Approved,
		ApprovedBy:  e.ApprovedBy,
		CreatedAt:   e.CreatedAt,
	}
}

func (uc *ExpenseUseCase) toOtherResponse(e *entity.OtherExpense) *dto.OtherExpenseResponse {
	return &dto.OtherExpenseResponse{
		ID:          e.ID,
		Category:    e.Category,
		Amount:      e.Amount,
		Date:        e.Date.Format(dateLayout),
		Description: e.Description,
		CreatedBy:   e.CreatedBy,
		Approved:    e.Approved,
		ApprovedBy:  e.ApprovedBy,
		CreatedAt:   e.CreatedAt,
	}
}
