package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Luiz-H456/botezini/internal/application/dto"
	"github.com/Luiz-H456/botezini/internal/application/masterdata"
	"github.com/Luiz-H456/botezini/internal/domain"
)

// MasterDataHandler trata clientes, fornecedores, produtos e o perfil da
// empresa.
type MasterDataHandler struct {
	uc *masterdata.UseCase
}

// NewMasterDataHandler constrói o handler de cadastros.
func NewMasterDataHandler(uc *masterdata.UseCase) *MasterDataHandler {
	return &MasterDataHandler{uc: uc}
}

// ── Clientes ─────────────────────────────────────────────────────────────────

// CreateClient cria um cliente.
func (h *MasterDataHandler) CreateClient(c *fiber.Ctx) error {
	var in dto.PartyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CreateClient(in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetClient devolve um cliente por ID.
func (h *MasterDataHandler) GetClient(c *fiber.Ctx) error {
	out, err := h.uc.GetClient(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente não encontrado"})
	}
	return c.JSON(out)
}

// ListClients lista clientes com paginação.
func (h *MasterDataHandler) ListClients(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}
	out, err := h.uc.ListClients(page)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// UpdateClient atualiza um cliente.
func (h *MasterDataHandler) UpdateClient(c *fiber.Ctx) error {
	var in dto.PartyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateClient(c.Params("id"), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// DeleteClient remove um cliente.
func (h *MasterDataHandler) DeleteClient(c *fiber.Ctx) error {
	if err := h.uc.DeleteClient(c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Fornecedores ─────────────────────────────────────────────────────────────

// CreateSupplier cria um fornecedor.
func (h *MasterDataHandler) CreateSupplier(c *fiber.Ctx) error {
	var in dto.PartyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CreateSupplier(in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListSuppliers lista fornecedores com paginação.
func (h *MasterDataHandler) ListSuppliers(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}
	out, err := h.uc.ListSuppliers(page)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// UpdateSupplier atualiza um fornecedor.
func (h *MasterDataHandler) UpdateSupplier(c *fiber.Ctx) error {
	var in dto.PartyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateSupplier(c.Params("id"), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// DeleteSupplier remove um fornecedor.
func (h *MasterDataHandler) DeleteSupplier(c *fiber.Ctx) error {
	if err := h.uc.DeleteSupplier(c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Produtos ─────────────────────────────────────────────────────────────────

// CreateProduct cria um produto do catálogo.
func (h *MasterDataHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CreateProduct(in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SKU_EXISTS", Message: "já existe produto com este SKU"})
		}
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetProduct devolve um produto por ID.
func (h *MasterDataHandler) GetProduct(c *fiber.Ctx) error {
	out, err := h.uc.GetProduct(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	}
	return c.JSON(out)
}

// ListProducts lista o catálogo com paginação.
func (h *MasterDataHandler) ListProducts(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}
	out, err := h.uc.ListProducts(page)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// UpdateProduct atualiza um produto.
func (h *MasterDataHandler) UpdateProduct(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateProduct(c.Params("id"), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// DeleteProduct remove um produto.
func (h *MasterDataHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.uc.DeleteProduct(c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Perfil da empresa ────────────────────────────────────────────────────────

// GetCompanyProfile devolve o cadastro da empresa, ou 404 antes do primeiro
// preenchimento.
func (h *MasterDataHandler) GetCompanyProfile(c *fiber.Ctx) error {
	out, err := h.uc.GetCompanyProfile()
	if err != nil {
		return mapError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "perfil da empresa não preenchido"})
	}
	return c.JSON(out)
}

// SaveCompanyProfile cria ou substitui o cadastro da empresa.
func (h *MasterDataHandler) SaveCompanyProfile(c *fiber.Ctx) error {
	var in dto.CompanyProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.SaveCompanyProfile(in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}
