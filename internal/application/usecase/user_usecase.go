package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/fruit-track/internal/application/dto"
	"github.com/tu-usuario/fruit-track/internal/domain"
	"github.com/tu-usuario/fruit-track/internal/domain/entity"
	"github.com/tu-usuario/fruit-track/internal/domain/repository"
)

// UserUseCase gestiona el personal: alta por el CEO, edición, cambio de rol,
// salario y baja lógica. El login/registro público vive en el paquete auth.
type UserUseCase struct {
	userRepo   repository.UserRepository
	salaryRepo repository.SalaryRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, salaryRepo repository.SalaryRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, salaryRepo: salaryRepo}
}

// Create da de alta un empleado (CEO/Admin). Mismas reglas que el registro
// público: email único en minúsculas, rol del enum cerrado, password hasheado.
func (uc *UserUseCase) Create(in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !entity.IsValidRole(in.Role) {
		return nil, domain.ErrInvalidRole
	}
	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         in.Role,
		Salary:       in.Salary,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(u); err != nil {
		return nil, err
	}
	resp := toUserResponse(u)
	return &resp, nil
}

// List devuelve el personal (CEO/Admin).
func (uc *UserUseCase) List(page dto.PageRequest) ([]dto.UserResponse, error) {
	page.DefaultPage()
	rows, err := uc.userRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(rows))
	for _, u := range rows {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Get devuelve un usuario por id.
func (uc *UserUseCase) Get(id string) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := toUserResponse(u)
	return &resp, nil
}

// Update modifica email, nombre o salario. El rol tiene su propio endpoint.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}

	if in.Email != "" {
		email := strings.ToLower(strings.TrimSpace(in.Email))
		if email != u.Email {
			existing, err := uc.userRepo.GetByEmail(email)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrEmailAlreadyExists
			}
			u.Email = email
		}
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Salary != nil {
		u.Salary = in.Salary
	}
	u.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(u); err != nil {
		return nil, err
	}
	resp := toUserResponse(u)
	return &resp, nil
}

// ChangeRole cambia el rol de un usuario (solo CEO). Rol fuera del enum → 400.
func (uc *UserUseCase) ChangeRole(id, newRole string) (*dto.UserResponse, error) {
	if !entity.IsValidRole(newRole) {
		return nil, domain.ErrInvalidRole
	}
	u, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	u.Role = newRole
	u.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(u); err != nil {
		return nil, err
	}
	resp := toUserResponse(u)
	return &resp, nil
}

// UpdateSalary fija la tarifa salarial vigente del usuario.
func (uc *UserUseCase) UpdateSalary(id string, salary decimal.Decimal) (*dto.UserResponse, error) {
	if salary.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	u, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	u.Salary = &salary
	u.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(u); err != nil {
		return nil, err
	}
	resp := toUserResponse(u)
	return &resp, nil
}

// Deactivate da de baja lógica al usuario; sus registros históricos se conservan.
func (uc *UserUseCase) Deactivate(id string) error {
	u, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	return uc.userRepo.Deactivate(id)
}

// PaySalary genera un desembolso contra el salario vigente del usuario:
// crea el registro de salario del período y su pago en estado pending (el pago
// avanza después por el toggle de estado). Sin salario fijado → ErrNoSalarySet.
func (uc *UserUseCase) PaySalary(id, processedBy string, in dto.PaySalaryRequest) (*dto.SalaryPaymentResponse, error) {
	u, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if u.Salary == nil || !u.Salary.GreaterThan(decimal.Zero) {
		return nil, domain.ErrNoSalarySet
	}

	now := time.Now()
	s := &entity.Salary{
		ID:            uuid.New().String(),
		EmployeeID:    u.ID,
		BaseSalary:    *u.Salary,
		Bonus:         decimal.Zero,
		Deductions:    decimal.Zero,
		EffectiveDate: now,
		CreatedAt:     now,
	}
	if err := uc.salaryRepo.Create(s); err != nil {
		return nil, err
	}

	method := in.PaymentMethod
	if method == "" {
		method = "cash"
	}
	p := &entity.SalaryPayment{
		ID:            uuid.New().String(),
		SalaryID:      s.ID,
		Amount:        s.NetAmount(),
		PaymentDate:   now,
		PaymentMethod: method,
		Status:        entity.PaymentPending,
		ProcessedBy:   processedBy,
		Notes:         in.Notes,
		CreatedAt:     now,
	}
	if err := uc.salaryRepo.CreatePayment(p); err != nil {
		return nil, err
	}
	return toPaymentResponse(p), nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Salary:    u.Salary,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func toPaymentResponse(p *entity.SalaryPayment) *dto.SalaryPaymentResponse {
	return &dto.SalaryPaymentResponse{
		ID:            p.ID,
		SalaryID:      p.SalaryID,
		Amount:        p.Amount,
		PaymentDate:   p.PaymentDate.Format(dateLayout),
		PaymentMethod: p.PaymentMethod,
		Status:        p.Status,
		ProcessedBy:   p.ProcessedBy,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
	}
}
