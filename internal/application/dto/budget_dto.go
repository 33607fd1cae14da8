package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Luiz-H456/botezini/internal/domain/entity"
)

// CreateBudgetRequest entrada de criação de orçamento. Os totais de linha e
// os subtotais são recalculados no use case; o front envia só quantidades e
// preços unitários.
type CreateBudgetRequest struct {
	ClientID string `json:"client_id" validate:"required"`
	Date     string `json:"date"` // ISO; vazio = hoje

	Items          []entity.BudgetItem          `json:"items" validate:"required,min=1"`
	Customizations []entity.BudgetCustomization `json:"customizations"`
	Extras         []entity.BudgetExtra         `json:"extras"`

	Discount           decimal.Decimal `json:"discount"`
	DownPaymentPercent decimal.Decimal `json:"down_payment_percent"`

	ValidityDays     int    `json:"validity_days"`
	DeliveryTimeDays int    `json:"delivery_time_days"`
	Notes            string `json:"notes"`
}

// UpdateBudgetStatusRequest transição de status do orçamento.
type UpdateBudgetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Draft Sent Approved"`
}

// BudgetResponse saída de orçamento.
type BudgetResponse struct {
	ID           string `json:"id"`
	SerialNumber string `json:"serial_number"`
	ClientID     string `json:"client_id"`
	Date         string `json:"date"`

	Items          []entity.BudgetItem          `json:"items"`
	Customizations []entity.BudgetCustomization `json:"customizations"`
	Extras         []entity.BudgetExtra         `json:"extras"`

	SubtotalItems          decimal.Decimal `json:"subtotal_items"`
	SubtotalCustomizations decimal.Decimal `json:"subtotal_customizations"`
	SubtotalExtras         decimal.Decimal `json:"subtotal_extras"`
	Discount               decimal.Decimal `json:"discount"`
	TotalAmount            decimal.Decimal `json:"total_amount"`

	DownPaymentPercent   decimal.Decimal `json:"down_payment_percent"`
	DownPaymentValue     decimal.Decimal `json:"down_payment_value"`
	DeliveryPaymentValue decimal.Decimal `json:"delivery_payment_value"`

	ValidityDays     int    `json:"validity_days"`
	DeliveryTimeDays int    `json:"delivery_time_days"`
	Notes            string `json:"notes"`
	Status           string `json:"status"`
	IsExpired        bool   `json:"is_expired"`

	GeneratedOrderNumber string `json:"generated_order_number,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ConvertBudgetResponse resultado da conversão orçamento → pedido.
type ConvertBudgetResponse struct {
	Budget BudgetResponse `json:"budget"`
	Order  OrderResponse  `json:"order"`
}
