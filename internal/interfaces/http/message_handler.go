package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fruit-track/internal/application/dto"
	"github.com/tu-usuario/fruit-track/internal/application/usecase"
)

// MessageHandler maneja la mensajería interna.
type MessageHandler struct {
	uc *usecase.MessageUseCase
}

// NewMessageHandler construye el handler de mensajes.
func NewMessageHandler(uc *usecase.MessageUseCase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

// Send POST /api/messages.
func (h *MessageHandler) Send(c *fiber.Ctx) error {
	var in dto.SendMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if errs := validateStruct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("validación fallida", errs...))
	}
	m, err := h.uc.Send(GetUserID(c), GetRole(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("mensaje enviado", m))
}

// Inbox GET /api/messages.
func (h *MessageHandler) Inbox(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("query inválida"))
	}
	list, err := h.uc.Inbox(GetUserID(c), GetRole(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("mensajes", list))
}

// MarkRead PUT /api/messages/:id/read. Idempotente.
func (h *MessageHandler) MarkRead(c *fiber.Ctx) error {
	m, err := h.uc.MarkRead(c.Params("id"), GetUserID(c), GetRole(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("mensaje leído", m))
}
