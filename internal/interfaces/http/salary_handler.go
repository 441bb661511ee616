package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fruit-track/internal/application/dto"
	"github.com/tu-usuario/fruit-track/internal/application/usecase"
)

// SalaryHandler maneja registros de salario y sus pagos (CEO/Admin).
type SalaryHandler struct {
	uc *usecase.SalaryUseCase
}

// NewSalaryHandler construye el handler de salarios.
func NewSalaryHandler(uc *usecase.SalaryUseCase) *SalaryHandler {
	return &SalaryHandler{uc: uc}
}

// Create POST /api/salaries.
func (h *SalaryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSalaryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if errs := validateStruct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("validación fallida", errs...))
	}
	s, err := h.uc.CreateSalary(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("salario registrado", s))
}

// List GET /api/salaries.
func (h *SalaryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("query inválida"))
	}
	list, err := h.uc.ListSalaries(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("salarios", list))
}

// CreatePayment POST /api/salaries/payments. El pago nace en pending.
func (h *SalaryHandler) CreatePayment(c *fiber.Ctx) error {
	var in dto.CreateSalaryPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if errs := validateStruct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("validación fallida", errs...))
	}
	p, err := h.uc.CreatePayment(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("pago creado", p))
}

// ListPayments GET /api/salaries/payments.
func (h *SalaryHandler) ListPayments(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("query inválida"))
	}
	list, err := h.uc.ListPayments(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("pagos", list))
}

// ToggleStatus PUT /api/salaries/payments/:id/toggle-status.
// Única forma de mover el estado: pending → paid → cancelled → pending.
func (h *SalaryHandler) ToggleStatus(c *fiber.Ctx) error {
	p, err := h.uc.ToggleStatus(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("estado actualizado", p))
}
