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

// SalaryUseCase gestiona registros de salario y sus pagos.
// El estado de un pago nunca se asigna directo: solo avanza por el ciclo
// pending → paid → cancelled → pending vía ToggleStatus.
type SalaryUseCase struct {
	salaryRepo repository.SalaryRepository
	userRepo   repository.UserRepository
}

// NewSalaryUseCase construye el caso de uso.
func NewSalaryUseCase(salaryRepo repository.SalaryRepository, userRepo repository.UserRepository) *SalaryUseCase {
	return &SalaryUseCase{salaryRepo: salaryRepo, userRepo: userRepo}
}

// CreateSalary registra una tarifa salarial detallada (base + bonus - deducciones).
func (uc *SalaryUseCase) CreateSalary(in dto.CreateSalaryRequest) (*dto.SalaryResponse, error) {
	if !in.BaseSalary.GreaterThan(decimal.Zero) || in.Bonus.LessThan(decimal.Zero) || in.Deductions.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	effective, err := time.Parse(dateLayout, in.EffectiveDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	employee, err := uc.userRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrUserNotFound
	}

	s := &entity.Salary{
		ID:            uuid.New().String(),
		EmployeeID:    employee.ID,
		BaseSalary:    in.BaseSalary,
		Bonus:         in.Bonus,
		Deductions:    in.Deductions,
		EffectiveDate: effective,
		Notes:         in.Notes,
		CreatedAt:     time.Now(),
	}
	if err := uc.salaryRepo.Create(s); err != nil {
		return nil, err
	}
	resp := uc.toResponse(s)
	resp.EmployeeName = employee.Name
	return resp, nil
}

// ListSalaries devuelve los registros de salario con el nombre del empleado resuelto.
func (uc *SalaryUseCase) ListSalaries(page dto.PageRequest) ([]dto.SalaryResponse, error) {
	page.DefaultPage()
	rows, err := uc.salaryRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	names := map[string]string{}
	out := make([]dto.SalaryResponse, 0, len(rows))
	for _, s := range rows {
		resp := uc.toResponse(s)
		if name, ok := names[s.EmployeeID]; ok {
			resp.EmployeeName = name
		} else if u, err := uc.userRepo.GetByID(s.EmployeeID); err == nil && u != nil {
			names[s.EmployeeID] = u.Name
			resp.EmployeeName = u.Name
		}
		out = append(out, *resp)
	}
	return out, nil
}

// CreatePayment registra un desembolso manual contra un salario; nace pending.
func (uc *SalaryUseCase) CreatePayment(processedBy string, in dto.CreateSalaryPaymentRequest) (*dto.SalaryPaymentResponse, error) {
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	payDate, err := time.Parse(dateLayout, in.PaymentDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.salaryRepo.GetByID(in.SalaryID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}

	p := &entity.SalaryPayment{
		ID:            uuid.New().String(),
		SalaryID:      s.ID,
		Amount:        in.Amount,
		PaymentDate:   payDate,
		PaymentMethod: in.PaymentMethod,
		Status:        entity.PaymentPending,
		ProcessedBy:   processedBy,
		Notes:         in.Notes,
		CreatedAt:     time.Now(),
	}
	if err := uc.salaryRepo.CreatePayment(p); err != nil {
		return nil, err
	}
	return toPaymentResponse(p), nil
}

// ListPayments devuelve los pagos registrados.
func (uc *SalaryUseCase) ListPayments(page dto.PageRequest) ([]dto.SalaryPaymentResponse, error) {
	page.DefaultPage()
	rows, err := uc.salaryRepo.ListPayments(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalaryPaymentResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, *toPaymentResponse(p))
	}
	return out, nil
}

// ToggleStatus avanza el pago al siguiente estado del ciclo y lo devuelve.
func (uc *SalaryUseCase) ToggleStatus(paymentID string) (*dto.SalaryPaymentResponse, error) {
	p, err := uc.salaryRepo.GetPaymentByID(paymentID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	p.Status = entity.NextPaymentStatus(p.Status)
	if err := uc.salaryRepo.UpdatePaymentStatus(p.ID, p.Status); err != nil {
		return nil, err
	}
	return toPaymentResponse(p), nil
}

func (uc *SalaryUseCase) toResponse(s *entity.Salary) *dto.SalaryResponse {
	return &dto.SalaryResponse{
		ID:            s.ID,
		EmployeeID:    s.EmployeeID,
		BaseSalary:    s.BaseSalary,
		Bonus:         s.Bonus,
		Deductions:    s.Deductions,
		NetAmount:     s.NetAmount(),
		EffectiveDate: s.EffectiveDate.Format(dateLayout),
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
	}
}
