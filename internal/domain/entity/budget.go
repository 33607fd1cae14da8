package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status possíveis de um orçamento.
const (
	BudgetDraft     = "Draft"
	BudgetSent      = "Sent"
	BudgetApproved  = "Approved"
	BudgetConverted = "Converted"
)

// BudgetItem é uma linha de produto do orçamento, com as variações de
// confecção (modelo, tecido, cor, tamanho).
type BudgetItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Model       string          `json:"model"`
	Fabric      string          `json:"fabric"`
	Color       string          `json:"color"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// Tipos de personalização aceitos.
const (
	CustomizationEmbroidery  = "Embroidery"  // bordado
	CustomizationScreenPrint = "ScreenPrint" // serigrafia
	CustomizationDTF         = "DTF"
	CustomizationOther       = "Other"
)

// BudgetCustomization é um serviço de personalização aplicado às peças.
type BudgetCustomization struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"` // ver constantes Customization*
	Description string          `json:"description"`
	Position    string          `json:"position"` // peito, costas, manga...
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// BudgetExtra é um item avulso (frete, arte, taxas).
type BudgetExtra struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// Budget é o agregado de orçamento: itens, personalizações, extras e as
// condições comerciais (entrada, prazo de entrega, validade).
type Budget struct {
	ID           string
	SerialNumber string // ORC-2024-0001
	ClientID     string
	Date         string // ISO YYYY-MM-DD (data de emissão)

	Items          []BudgetItem
	Customizations []BudgetCustomization
	Extras         []BudgetExtra

	SubtotalItems          decimal.Decimal
	SubtotalCustomizations decimal.Decimal
	SubtotalExtras         decimal.Decimal
	Discount               decimal.Decimal
	TotalAmount            decimal.Decimal

	// Controle de pagamento: entrada na aprovação, saldo na entrega.
	DownPaymentPercent   decimal.Decimal
	DownPaymentValue     decimal.Decimal
	DeliveryPaymentValue decimal.Decimal

	ValidityDays     int // prazo de validade da proposta
	DeliveryTimeDays int // prazo de produção em dias úteis
	Notes            string
	Status           string // ver constantes Budget*

	GeneratedOrderNumber string // preenchido quando convertido

	CreatedAt time.Time
	UpdatedAt time.Time
}
