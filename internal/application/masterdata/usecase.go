// Package masterdata cobre os cadastros: clientes, fornecedores, produtos e
// o perfil da empresa.
package masterdata

import (
	"time"

	"github.com/google/uuid"

	"github.com/Luiz-H456/botezini/internal/application/dto"
	"github.com/Luiz-H456/botezini/internal/domain"
	"github.com/Luiz-H456/botezini/internal/domain/entity"
	"github.com/Luiz-H456/botezini/internal/domain/repository"
	"github.com/Luiz-H456/botezini/pkg/format"
)

// UseCase casos de uso CRUD dos cadastros.
type UseCase struct {
	clientRepo   repository.ClientRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	companyRepo  repository.CompanyRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	clientRepo repository.ClientRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	companyRepo repository.CompanyRepository,
) *UseCase {
	return &UseCase{
		clientRepo:   clientRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		companyRepo:  companyRepo,
	}
}

// ── Clientes ─────────────────────────────────────────────────────────────────

// CreateClient cria um cliente.
func (uc *UseCase) CreateClient(in dto.PartyRequest) (*dto.PartyResponse, error) {
	if len(in.CompanyName) < 2 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Client{
		ID:            uuid.New().String(),
		CompanyName:   in.CompanyName,
		Category:      in.Category,
		CNPJ:          in.CNPJ,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.clientRepo.Create(c); err != nil {
		return nil, err
	}
	return clientResponse(c), nil
}

// GetClient devolve um cliente por ID, ou nil.
func (uc *UseCase) GetClient(id string) (*dto.PartyResponse, error) {
	c, err := uc.clientRepo.GetByID(id)
	if err != nil || c == nil {
		return nil, err
	}
	return clientResponse(c), nil
}

// ListClients lista clientes com paginação.
func (uc *UseCase) ListClients(page dto.PageRequest) ([]*dto.PartyResponse, error) {
	list, err := uc.clientRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PartyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, clientResponse(c))
	}
	return out, nil
}

// UpdateClient atualiza um cliente existente.
func (uc *UseCase) UpdateClient(id string, in dto.PartyRequest) (*dto.PartyResponse, error) {
	c, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.CompanyName = in.CompanyName
	c.Category = in.Category
	c.CNPJ = in.CNPJ
	c.ContactPerson = in.ContactPerson
	c.Email = in.Email
	c.Phone = in.Phone
	c.Address = in.Address
	c.UpdatedAt = time.Now()
	if err := uc.clientRepo.Update(c); err != nil {
		return nil, err
	}
	return clientResponse(c), nil
}

// DeleteClient remove um cliente.
func (uc *UseCase) DeleteClient(id string) error {
	return uc.clientRepo.Delete(id)
}

// ── Fornecedores ─────────────────────────────────────────────────────────────

// CreateSupplier cria um fornecedor.
func (uc *UseCase) CreateSupplier(in dto.PartyRequest) (*dto.PartyResponse, error) {
	if len(in.CompanyName) < 2 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	s := &entity.Supplier{
		ID:            uuid.New().String(),
		CompanyName:   in.CompanyName,
		Category:      in.Category,
		CNPJ:          in.CNPJ,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.supplierRepo.Create(s); err != nil {
		return nil, err
	}
	return supplierResponse(s), nil
}

// ListSuppliers lista fornecedores com paginação.
func (uc *UseCase) ListSuppliers(page dto.PageRequest) ([]*dto.PartyResponse, error) {
	list, err := uc.supplierRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PartyResponse, 0, len(list))
	for _, s := range list {
		out = append(out, supplierResponse(s))
	}
	return out, nil
}

// UpdateSupplier atualiza um fornecedor existente.
func (uc *UseCase) UpdateSupplier(id string, in dto.PartyRequest) (*dto.PartyResponse, error) {
	s, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.CompanyName = in.CompanyName
	s.Category = in.Category
	s.CNPJ = in.CNPJ
	s.ContactPerson = in.ContactPerson
	s.Email = in.Email
	s.Phone = in.Phone
	s.Address = in.Address
	s.UpdatedAt = time.Now()
	if err := uc.supplierRepo.Update(s); err != nil {
		return nil, err
	}
	return supplierResponse(s), nil
}

// DeleteSupplier remove um fornecedor.
func (uc *UseCase) DeleteSupplier(id string) error {
	return uc.supplierRepo.Delete(id)
}

// ── Produtos ─────────────────────────────────────────────────────────────────

// CreateProduct cria um produto. SKU duplicado devolve ErrDuplicate.
func (uc *UseCase) CreateProduct(in dto.ProductRequest) (*dto.ProductResponse, error) {
	if len(in.Name) < 2 {
		return nil, domain.ErrInvalidInput
	}
	if in.SKU != "" {
		existing, _ := uc.productRepo.GetBySKU(in.SKU)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	p := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		SKU:         in.SKU,
		Category:    in.Category,
		Description: in.Description,
		Notes:       in.Notes,
		PriceTier1:  in.PriceTier1,
		PriceTier2:  in.PriceTier2,
		PriceTier3:  in.PriceTier3,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(p); err != nil {
		return nil, err
	}
	return productResponse(p), nil
}

// GetProduct devolve um produto por ID, ou nil.
func (uc *UseCase) GetProduct(id string) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil || p == nil {
		return nil, err
	}
	return productResponse(p), nil
}

// ListProducts lista produtos com paginação.
func (uc *UseCase) ListProducts(page dto.PageRequest) ([]*dto.ProductResponse, error) {
	list, err := uc.productRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, productResponse(p))
	}
	return out, nil
}

// UpdateProduct atualiza um produto existente.
func (uc *UseCase) UpdateProduct(id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	p.Name = in.Name
	p.SKU = in.SKU
	p.Category = in.Category
	p.Description = in.Description
	p.Notes = in.Notes
	p.PriceTier1 = in.PriceTier1
	p.PriceTier2 = in.PriceTier2
	p.PriceTier3 = in.PriceTier3
	p.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(p); err != nil {
		return nil, err
	}
	return productResponse(p), nil
}

// DeleteProduct remove um produto.
func (uc *UseCase) DeleteProduct(id string) error {
	return uc.productRepo.Delete(id)
}

// ── Perfil da empresa ────────────────────────────────────────────────────────

// GetCompanyProfile devolve o cadastro da empresa, ou nil se ainda não
// preenchido.
func (uc *UseCase) GetCompanyProfile() (*dto.CompanyProfileResponse, error) {
	p, err := uc.companyRepo.Get()
	if err != nil || p == nil {
		return nil, err
	}
	return companyResponse(p), nil
}

// SaveCompanyProfile cria ou substitui o cadastro da empresa.
func (uc *UseCase) SaveCompanyProfile(in dto.CompanyProfileRequest) (*dto.CompanyProfileResponse, error) {
	if len(in.Name) < 2 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.companyRepo.Get()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	p := &entity.CompanyProfile{
		Name:           in.Name,
		CNPJ:           in.CNPJ,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		Website:        in.Website,
		LogoURL:        in.LogoURL,
		BankName:       in.BankName,
		BankAgency:     in.BankAgency,
		BankAccount:    in.BankAccount,
		BankHolder:     in.BankHolder,
		PixKey:         in.PixKey,
		DefaultTaxRate: in.DefaultTaxRate,
		RevenueGoal:    in.RevenueGoal,
		ExpenseLimit:   in.ExpenseLimit,
		UpdatedAt:      now,
	}
	if existing != nil {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	} else {
		p.ID = uuid.New().String()
		p.CreatedAt = now
	}
	if err := uc.companyRepo.Save(p); err != nil {
		return nil, err
	}
	return companyResponse(p), nil
}

// ── Conversões ───────────────────────────────────────────────────────────────

func clientResponse(c *entity.Client) *dto.PartyResponse {
	return &dto.PartyResponse{
		ID:             c.ID,
		CompanyName:    c.CompanyName,
		Category:       c.Category,
		CNPJ:           c.CNPJ,
		CNPJFormatted:  format.CNPJ(c.CNPJ),
		ContactPerson:  c.ContactPerson,
		Email:          c.Email,
		Phone:          c.Phone,
		PhoneFormatted: format.Phone(c.Phone),
		Address:        c.Address,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func supplierResponse(s *entity.Supplier) *dto.PartyResponse {
	return &dto.PartyResponse{
		ID:             s.ID,
		CompanyName:    s.CompanyName,
		Category:       s.Category,
		CNPJ:           s.CNPJ,
		CNPJFormatted:  format.CNPJ(s.CNPJ),
		ContactPerson:  s.ContactPerson,
		Email:          s.Email,
		Phone:          s.Phone,
		PhoneFormatted: format.Phone(s.Phone),
		Address:        s.Address,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func productResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Category:    p.Category,
		Description: p.Description,
		Notes:       p.Notes,
		PriceTier1:  p.PriceTier1,
		PriceTier2:  p.PriceTier2,
		PriceTier3:  p.PriceTier3,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func companyResponse(p *entity.CompanyProfile) *dto.CompanyProfileResponse {
	return &dto.CompanyProfileResponse{
		Name:           p.Name,
		CNPJ:           p.CNPJ,
		CNPJFormatted:  format.CNPJ(p.CNPJ),
		Email:          p.Email,
		Phone:          p.Phone,
		Address:        p.Address,
		Website:        p.Website,
		LogoURL:        p.LogoURL,
		BankName:       p.BankName,
		BankAgency:     p.BankAgency,
		BankAccount:    p.BankAccount,
		BankHolder:     p.BankHolder,
		PixKey:         p.PixKey,
		DefaultTaxRate: p.DefaultTaxRate,
		RevenueGoal:    p.RevenueGoal,
		ExpenseLimit:   p.ExpenseLimit,
	}
}
