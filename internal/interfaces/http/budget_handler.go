package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Luiz-H456/botezini/internal/application/budget"
	"github.com/Luiz-H456/botezini/internal/application/dto"
)

// BudgetHandler trata o ciclo do orçamento: criação, status, conversão em
// pedido e a proposta em PDF.
type BudgetHandler struct {
	uc *budget.UseCase
}

// NewBudgetHandler constrói o handler de orçamentos.
func NewBudgetHandler(uc *budget.UseCase) *BudgetHandler {
	return &BudgetHandler{uc: uc}
}

// Create cria um orçamento com numeração ORC-AAAA-NNNN.
func (h *BudgetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBudgetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID devolve um orçamento.
func (h *BudgetHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orçamento não encontrado"})
	}
	return c.JSON(out)
}

// List lista orçamentos com paginação.
func (h *BudgetHandler) List(c *fiber.Ctx) error {
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

// UpdateStatus aplica uma transição de status (Draft/Sent/Approved).
func (h *BudgetHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateBudgetStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateStatus(c.Params("id"), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// Convert transforma o orçamento em pedido (transacional).
func (h *BudgetHandler) Convert(c *fiber.Ctx) error {
	out, err := h.uc.Convert(c.Context(), c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// PDF devolve a proposta em PDF.
func (h *BudgetHandler) PDF(c *fiber.Ctx) error {
	bytes, err := h.uc.GeneratePDF(c.Context(), c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="orcamento.pdf"`)
	return c.Send(bytes)
}

// Delete remove um orçamento não convertido.
func (h *BudgetHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
