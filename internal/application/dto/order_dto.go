package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Luiz-H456/botezini/internal/domain/entity"
)

// AdvanceStageRequest move o pedido (ou um item) para outra etapa do Kanban.
type AdvanceStageRequest struct {
	Stage     string `json:"stage" validate:"required"`
	ItemIndex *int   `json:"item_index,omitempty"` // nil = etapa consolidada do pedido
}

// RegisterPaymentRequest registra um recebimento no pedido.
type RegisterPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	AccountID   string          `json:"account_id"`
	PaymentDate string          `json:"payment_date"` // ISO; vazio = hoje
}

// OrderResponse saída de pedido.
type OrderResponse struct {
	ID              string                       `json:"id"`
	BudgetID        string                       `json:"budget_id"`
	BudgetSerial    string                       `json:"budget_serial,omitempty"`
	OrderNumber     string                       `json:"order_number"`
	ClientID        string                       `json:"client_id"`
	ProductionStage string                       `json:"production_stage"`
	Items           []entity.OrderItem           `json:"items"`
	Customizations  []entity.BudgetCustomization `json:"customizations,omitempty"`
	Extras          []entity.BudgetExtra         `json:"extras,omitempty"`
	TotalAmount     decimal.Decimal              `json:"total_amount"`
	AmountPaid      decimal.Decimal              `json:"amount_paid"`
	Balance         decimal.Decimal              `json:"balance"`
	Discount        decimal.Decimal              `json:"discount"`
	Deadline        string                       `json:"deadline"`
	// Dias úteis restantes até o prazo (0 quando já passou).
	BusinessDaysLeft int       `json:"business_days_left"`
	Status           string    `json:"status"`
	PaymentStatus    string    `json:"payment_status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ProductionBoardResponse é o Kanban da fábrica: pedidos agrupados por etapa,
// na ordem do fluxo produtivo.
type ProductionBoardResponse struct {
	Stages []ProductionColumn `json:"stages"`
}

// ProductionColumn é uma coluna do Kanban.
type ProductionColumn struct {
	Stage  string          `json:"stage"`
	Orders []OrderResponse `json:"orders"`
}
