package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fruit-track/internal/application/dto"
	"github.com/tu-usuario/fruit-track/internal/application/usecase"
)

// ExpenseHandler maneja gastos de vehículo y gastos generales.
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
}

// NewExpenseHandler construye el handler de gastos.
func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// CreateCar POST /api/expenses/car (driver y CEO).
func (h *ExpenseHandler) CreateCar(c *fiber.Ctx) error {
	var in dto.CreateCarExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if errs := validateStruct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("validación fallida", errs...))
	}
	e, err := h.uc.CreateCarExpense(GetUserID(c), GetRole(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("gasto de vehículo registrado", e))
}

// ListCar GET /api/expenses/car. Driver solo ve los suyos; CEO todos.
func (h *ExpenseHandler) ListCar(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("query inválida"))
	}
	list, err := h.uc.ListCarExpenses(GetUserID(c), GetRole(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("gastos de vehículo", list))
}

// ApproveCar PUT /api/expenses/car/:id/approve (solo CEO).
func (h *ExpenseHandler) ApproveCar(c *fiber.Ctx) error {
	e, err := h.uc.ApproveCarExpense(c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("gasto aprobado", e))
}

// CreateOther POST /api/expenses/other (CEO/Admin).
func (h *ExpenseHandler) CreateOther(c *fiber.Ctx) error {
	var in dto.CreateOtherExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if errs := validateStruct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("validación fallida", errs...))
	}
	e, err := h.uc.CreateOtherExpense(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("gasto registrado", e))
}

// ListOther GET /api/expenses/other (CEO/Admin).
func (h *ExpenseHandler) ListOther(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("query inválida"))
	}
	list, err := h.uc.ListOtherExpenses(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("gastos generales", list))
}

// ApproveOther PUT /api/expenses/other/:id/approve (solo CEO).
func (h *ExpenseHandler) ApproveOther(c *fiber.Ctx) error {
	e, err := h.uc.ApproveOtherExpense(c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("gasto aprobado", e))
}
