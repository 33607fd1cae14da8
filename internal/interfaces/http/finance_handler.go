package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Luiz-H456/botezini/internal/application/dto"
	"github.com/Luiz-H456/botezini/internal/application/finance"
)

// FinanceHandler trata lançamentos, contas, categorias e centros de custo.
type FinanceHandler struct {
	uc *finance.UseCase
}

// NewFinanceHandler constrói o handler do financeiro.
func NewFinanceHandler(uc *finance.UseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// CreateTransaction cria um lançamento; com recorrência devolve a série
// completa.
func (h *FinanceHandler) CreateTransaction(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CreateTransaction(in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListTransactions lista lançamentos filtrados por período e tipo.
func (h *FinanceHandler) ListTransactions(c *fiber.Ctx) error {
	var in dto.ListTransactionsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	in.DefaultPage()
	out, err := h.uc.ListTransactions(in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// GetTransaction devolve um lançamento.
func (h *FinanceHandler) GetTransaction(c *fiber.Ctx) error {
	out, err := h.uc.GetTransaction(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lançamento não encontrado"})
	}
	return c.JSON(out)
}

// MarkPaid baixa um lançamento.
func (h *FinanceHandler) MarkPaid(c *fiber.Ctx) error {
	var in struct {
		PaymentDate string `json:"payment_date"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.MarkPaid(c.Params("id"), in.PaymentDate)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// DeleteTransaction remove um lançamento (com estorno se pago).
func (h *FinanceHandler) DeleteTransaction(c *fiber.Ctx) error {
	if err := h.uc.DeleteTransaction(c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteRecurrence remove as parcelas em aberto de uma série.
func (h *FinanceHandler) DeleteRecurrence(c *fiber.Ctx) error {
	if err := h.uc.DeleteRecurrence(c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Export devolve o XML contábil do período.
func (h *FinanceHandler) Export(c *fiber.Ctx) error {
	bytes, err := h.uc.ExportTransactions(c.Query("period"), c.Query("ref_date"))
	if err != nil {
		return mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="lancamentos.xml"`)
	return c.Send(bytes)
}

// CreateAccount cria uma conta bancária.
func (h *FinanceHandler) CreateAccount(c *fiber.Ctx) error {
	var in dto.AccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CreateAccount(in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListAccounts lista as contas bancárias.
func (h *FinanceHandler) ListAccounts(c *fiber.Ctx) error {
	out, err := h.uc.ListAccounts()
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// CreateCategory cria uma categoria financeira.
func (h *FinanceHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CreateCategory(in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCategories lista as categorias financeiras.
func (h *FinanceHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories()
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// DeleteCategory remove uma categoria.
func (h *FinanceHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.uc.DeleteCategory(c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateCostCenter cria um centro de custo.
func (h *FinanceHandler) CreateCostCenter(c *fiber.Ctx) error {
	var in dto.CostCenterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CreateCostCenter(in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCostCenters lista centros de custo com o realizado do mês.
func (h *FinanceHandler) ListCostCenters(c *fiber.Ctx) error {
	out, err := h.uc.ListCostCenters()
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}
