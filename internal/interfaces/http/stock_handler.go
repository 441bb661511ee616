package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fruit-track/internal/application/dto"
	"github.com/tu-usuario/fruit-track/internal/application/stock"
	"github.com/tu-usuario/fruit-track/internal/observability/metrics"
)

// StockHandler maneja el libro de movimientos y el inventario.
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construye el handler de stock.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// RecordMovement POST /api/stock/movements (bodeguero y CEO).
func (h *StockHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.RecordStockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if errs := validateStruct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("validación fallida", errs...))
	}
	mov, err := h.uc.RecordMovement(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	metrics.ObserveStockMovement(mov.Direction, mov.ReferenceType)
	return c.Status(fiber.StatusCreated).JSON(dto.OK("movimiento registrado", mov))
}

// ListMovements GET /api/stock/movements?fruit_type=.
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("query inválida"))
	}
	list, err := h.uc.ListMovements(c.Query("fruit_type"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("movimientos", list))
}

// RemainingStock GET /api/stock/remaining?fruit_type=.
func (h *StockHandler) RemainingStock(c *fiber.Ctx) error {
	out, err := h.uc.RemainingStock(c.Query("fruit_type"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("stock restante", out))
}

// ClearMovements DELETE /api/stock/movements/clear (solo CEO).
func (h *StockHandler) ClearMovements(c *fiber.Ctx) error {
	deleted, err := h.uc.ClearMovements(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("movimientos eliminados", dto.ClearResultDTO{Deleted: deleted}))
}

// CreateInventory POST /api/inventory (bodeguero y CEO).
func (h *StockHandler) CreateInventory(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if errs := validateStruct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("validación fallida", errs...))
	}
	inv, err := h.uc.CreateInventory(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("inventario creado", inv))
}

// ListInventory GET /api/inventory.
func (h *StockHandler) ListInventory(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("query inválida"))
	}
	list, err := h.uc.ListInventory(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("inventario", list))
}
