package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Luiz-H456/botezini/internal/application/dto"
	"github.com/Luiz-H456/botezini/internal/application/order"
)

// OrderHandler trata pedidos e o acompanhamento de produção.
type OrderHandler struct {
	uc *order.UseCase
}

// NewOrderHandler constrói o handler de pedidos.
func NewOrderHandler(uc *order.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// GetByID devolve um pedido.
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido não encontrado"})
	}
	return c.JSON(out)
}

// List lista pedidos com paginação.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}
	out, err := h.uc.List(page)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// Board devolve o Kanban de produção agrupado por etapa.
func (h *OrderHandler) Board(c *fiber.Ctx) error {
	out, err := h.uc.Board()
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// AdvanceStage move o pedido (ou um item) para outra etapa.
func (h *OrderHandler) AdvanceStage(c *fiber.Ctx) error {
	var in dto.AdvanceStageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.AdvanceStage(c.Context(), c.Params("id"), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// MarkDelivered marca o pedido como entregue.
func (h *OrderHandler) MarkDelivered(c *fiber.Ctx) error {
	out, err := h.uc.MarkDelivered(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// RegisterPayment registra um recebimento no pedido.
func (h *OrderHandler) RegisterPayment(c *fiber.Ctx) error {
	var in dto.RegisterPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.RegisterPayment(c.Params("id"), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}
