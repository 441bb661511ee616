package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fruit-track/internal/application/dto"
	"github.com/tu-usuario/fruit-track/internal/application/usecase"
	"github.com/tu-usuario/fruit-track/internal/domain"
	"github.com/tu-usuario/fruit-track/internal/domain/entity"
)

const (
	employeeID  = "00000000-0000-0000-0000-000000000011"
	processerID = "00000000-0000-0000-0000-000000000012"
)

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func buildSalaryUseCase() (*usecase.SalaryUseCase, *fakeSalaryRepo) {
	users := newFakeUserRepo(
		&entity.User{ID: employeeID, Name: "Empleado", Role: entity.RoleDriver, IsActive: true},
	)
	repo := newFakeSalaryRepo()
	return usecase.NewSalaryUseCase(repo, users), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CreateSalary / CreatePayment
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSalary_CalculaNeto(t *testing.T) {
	uc, _ := buildSalaryUseCase()

	resp, err := uc.CreateSalary(dto.CreateSalaryRequest{
		EmployeeID:    employeeID,
		BaseSalary:    money("1000"),
		Bonus:         money("150"),
		Deductions:    money("50"),
		EffectiveDate: "2026-09-01",
	})
	require.NoError(t, err)
	assert.True(t, resp.NetAmount.Equal(money("1100")),
		"neto = base + bonus - deducciones, fue %s", resp.NetAmount)
	assert.Equal(t, "Empleado", resp.EmployeeName)
}

func TestCreateSalary_Validaciones(t *testing.T) {
	uc, _ := buildSalaryUseCase()

	_, err := uc.CreateSalary(dto.CreateSalaryRequest{
		EmployeeID: employeeID, BaseSalary: money("0"), EffectiveDate: "2026-09-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "base en cero se rechaza")

	_, err = uc.CreateSalary(dto.CreateSalaryRequest{
		EmployeeID: employeeID, BaseSalary: money("1000"), EffectiveDate: "01/09/2026",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la fecha debe ser YYYY-MM-DD")

	_, err = uc.CreateSalary(dto.CreateSalaryRequest{
		EmployeeID:    "00000000-0000-0000-0000-00000000dead",
		BaseSalary:    money("1000"),
		EffectiveDate: "2026-09-01",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCreatePayment_NaceSiemprePending(t *testing.T) {
	uc, _ := buildSalaryUseCase()
	salary, err := uc.CreateSalary(dto.CreateSalaryRequest{
		EmployeeID: employeeID, BaseSalary: money("1000"), EffectiveDate: "2026-09-01",
	})
	require.NoError(t, err)

	p, err := uc.CreatePayment(processerID, dto.CreateSalaryPaymentRequest{
		SalaryID:      salary.ID,
		Amount:        money("1000"),
		PaymentDate:   "2026-09-30",
		PaymentMethod: "bank_transfer",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPending, p.Status, "no hay forma de nacer en otro estado")
	assert.Equal(t, processerID, p.ProcessedBy)
}

func TestCreatePayment_SalarioInexistente(t *testing.T) {
	uc, _ := buildSalaryUseCase()

	_, err := uc.CreatePayment(processerID, dto.CreateSalaryPaymentRequest{
		SalaryID:      "00000000-0000-0000-0000-00000000dead",
		Amount:        money("100"),
		PaymentDate:   "2026-09-30",
		PaymentMethod: "cash",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ToggleStatus
// ──────────────────────────────────────────────────────────────────────────────

// El ciclo completo: pending → paid → cancelled → pending. El estado nunca se
// asigna directo, solo avanza por el toggle.
func TestToggleStatus_CicloCompleto(t *testing.T) {
	uc, repo := buildSalaryUseCase()
	salary, err := uc.CreateSalary(dto.CreateSalaryRequest{
		EmployeeID: employeeID, BaseSalary: money("1000"), EffectiveDate: "2026-09-01",
	})
	require.NoError(t, err)
	p, err := uc.CreatePayment(processerID, dto.CreateSalaryPaymentRequest{
		SalaryID: salary.ID, Amount: money("1000"), PaymentDate: "2026-09-30", PaymentMethod: "cash",
	})
	require.NoError(t, err)

	for _, want := range []string{entity.PaymentPaid, entity.PaymentCancelled, entity.PaymentPending} {
		got, err := uc.ToggleStatus(p.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got.Status)
		assert.Equal(t, want, repo.payments[p.ID].Status, "el estado se persiste")
	}
}

func TestToggleStatus_PagoInexistente(t *testing.T) {
	uc, _ := buildSalaryUseCase()

	_, err := uc.ToggleStatus("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNextPaymentStatus_EstadoDesconocidoVuelveAPending(t *testing.T) {
	assert.Equal(t, entity.PaymentPending, entity.NextPaymentStatus("corrupto"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests PaySalary (UserUseCase)
// ──────────────────────────────────────────────────────────────────────────────

func TestPaySalary_GeneraSalarioYPagoPending(t *testing.T) {
	wage := money("1200")
	users := newFakeUserRepo(&entity.User{
		ID: employeeID, Name: "Empleado", Role: entity.RoleDriver, Salary: &wage, IsActive: true,
	})
	salaryRepo := newFakeSalaryRepo()
	uc := usecase.NewUserUseCase(users, salaryRepo)

	p, err := uc.PaySalary(employeeID, processerID, dto.PaySalaryRequest{})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPending, p.Status)
	assert.True(t, p.Amount.Equal(wage), "el monto sale del salario vigente del usuario")
	assert.Equal(t, "cash", p.PaymentMethod, "método por defecto")

	s := salaryRepo.salaries[p.SalaryID]
	require.NotNil(t, s, "el pago referencia el registro de salario del período")
	assert.Equal(t, employeeID, s.EmployeeID)
	assert.True(t, s.BaseSalary.Equal(wage))
}

func TestPaySalary_SinSalarioConfigurado(t *testing.T) {
	users := newFakeUserRepo(&entity.User{
		ID: employeeID, Name: "Sin Salario", Role: entity.RoleDriver, IsActive: true,
	})
	uc := usecase.NewUserUseCase(users, newFakeSalaryRepo())

	_, err := uc.PaySalary(employeeID, processerID, dto.PaySalaryRequest{})
	assert.ErrorIs(t, err, domain.ErrNoSalarySet)

	zero := money("0")
	users.users[employeeID].Salary = &zero
	_, err = uc.PaySalary(employeeID, processerID, dto.PaySalaryRequest{})
	assert.ErrorIs(t, err, domain.ErrNoSalarySet, "salario cero cuenta como no configurado")
}

func TestPaySalary_UsuarioInexistente(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo(), newFakeSalaryRepo())

	_, err := uc.PaySalary("00000000-0000-0000-0000-00000000dead", processerID, dto.PaySalaryRequest{})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
