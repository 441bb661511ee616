package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fruit-track/internal/application/dto"
	"github.com/tu-usuario/fruit-track/internal/application/sales"
	"github.com/tu-usuario/fruit-track/internal/domain"
	"github.com/tu-usuario/fruit-track/internal/observability/metrics"
)

// SaleHandler maneja ventas contra asignaciones.
type SaleHandler struct {
	uc *sales.SaleUseCase
}

// NewSaleHandler construye el handler de ventas.
func NewSaleHandler(uc *sales.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Record POST /api/sales. El invariante de oversell se chequea en transacción.
func (h *SaleHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if errs := validateStruct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("validación fallida", errs...))
	}
	sale, err := h.uc.RecordSale(c.Context(), GetUserID(c), GetRole(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrOversell) {
			metrics.ObserveOversellRejection()
		}
		return respondError(c, err)
	}
	metrics.ObserveSaleRecorded()
	return c.Status(fiber.StatusCreated).JSON(dto.OK("venta registrada", sale))
}

// List GET /api/sales. Seller solo ve las suyas; CEO todas.
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("query inválida"))
	}
	list, err := h.uc.List(GetUserID(c), GetRole(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("ventas", list))
}

// Clear DELETE /api/sales/clear (solo CEO). Borra todas las ventas y sus
// movimientos, y reconstruye los snapshots.
func (h *SaleHandler) Clear(c *fiber.Ctx) error {
	deleted, err := h.uc.Clear(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("ventas eliminadas", dto.ClearResultDTO{Deleted: deleted}))
}

// Summary GET /api/sales/summary (solo CEO).
func (h *SaleHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("resumen por vendedor", summary))
}
