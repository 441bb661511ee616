package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fruit-track/internal/application/dto"
	"github.com/tu-usuario/fruit-track/internal/application/usecase"
)

// AssignmentHandler maneja las asignaciones de stock a vendedores.
type AssignmentHandler struct {
	uc *usecase.AssignmentUseCase
}

// NewAssignmentHandler construye el handler de asignaciones.
func NewAssignmentHandler(uc *usecase.AssignmentUseCase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

// Create POST /api/assignments (solo CEO).
func (h *AssignmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if errs := validateStruct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("validación fallida", errs...))
	}
	a, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("asignación creada", a))
}

// List GET /api/assignments. Seller solo ve las suyas; CEO todas.
func (h *AssignmentHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("query inválida"))
	}
	list, err := h.uc.List(GetUserID(c), GetRole(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("asignaciones", list))
}

// Delete DELETE /api/assignments/:id (solo CEO).
func (h *AssignmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("asignación eliminada", nil))
}
