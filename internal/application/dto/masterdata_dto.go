package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartyRequest entrada compartilhada de cliente e fornecedor (mesma forma).
type PartyRequest struct {
	CompanyName   string `json:"company_name" validate:"required,min=2"`
	Category      string `json:"category"`
	CNPJ          string `json:"cnpj"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

// PartyResponse saída de cliente/fornecedor. CNPJFormatted e PhoneFormatted
// trazem as máscaras pt-BR prontas para exibição.
type PartyResponse struct {
	ID             string    `json:"id"`
	CompanyName    string    `json:"company_name"`
	Category       string    `json:"category"`
	CNPJ           string    `json:"cnpj"`
	CNPJFormatted  string    `json:"cnpj_formatted"`
	ContactPerson  string    `json:"contact_person"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	PhoneFormatted string    `json:"phone_formatted"`
	Address        string    `json:"address"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProductRequest entrada de produto.
type ProductRequest struct {
	Name        string          `json:"name" validate:"required,min=2"`
	SKU         string          `json:"sku"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Notes       string          `json:"notes"`
	PriceTier1  decimal.Decimal `json:"price_tier1"`
	PriceTier2  decimal.Decimal `json:"price_tier2"`
	PriceTier3  decimal.Decimal `json:"price_tier3"`
}

// ProductResponse saída de produto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Notes       string          `json:"notes"`
	PriceTier1  decimal.Decimal `json:"price_tier1"`
	PriceTier2  decimal.Decimal `json:"price_tier2"`
	PriceTier3  decimal.Decimal `json:"price_tier3"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CompanyProfileRequest entrada do cadastro da empresa.
type CompanyProfileRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	CNPJ    string `json:"cnpj"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Website string `json:"website"`
	LogoURL string `json:"logo_url"`

	BankName    string `json:"bank_name"`
	BankAgency  string `json:"bank_agency"`
	BankAccount string `json:"bank_account"`
	BankHolder  string `json:"bank_holder"`
	PixKey      string `json:"pix_key"`

	DefaultTaxRate decimal.Decimal `json:"default_tax_rate"`
	RevenueGoal    decimal.Decimal `json:"revenue_goal"`
	ExpenseLimit   decimal.Decimal `json:"expense_limit"`
}

// CompanyProfileResponse saída do cadastro da empresa.
type CompanyProfileResponse struct {
	Name          string `json:"name"`
	CNPJ          string `json:"cnpj"`
	CNPJFormatted string `json:"cnpj_formatted"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Website       string `json:"website"`
	LogoURL       string `json:"logo_url"`

	BankName    string `json:"bank_name"`
	BankAgency  string `json:"bank_agency"`
	BankAccount string `json:"bank_account"`
	BankHolder  string `json:"bank_holder"`
	PixKey      string `json:"pix_key"`

	DefaultTaxRate decimal.Decimal `json:"default_tax_rate"`
	RevenueGoal    decimal.Decimal `json:"revenue_goal"`
	ExpenseLimit   decimal.Decimal `json:"expense_limit"`
}
