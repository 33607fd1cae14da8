package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status do pedido (valores em pt-BR, como exibidos).
const (
	OrderPending      = "Pendente"
	OrderInProduction = "Em Produção"
	OrderCompleted    = "Concluído"
	OrderDelivered    = "Entregue"
)

// Etapas de produção do Kanban da fábrica, na ordem do fluxo.
const (
	StageWaiting       = "Aguardando Material"
	StageCutting       = "Corte"
	StageCustomization = "Personalização"
	StageSewing        = "Costura"
	StageFinishing     = "Finalização"
	StageLogistics     = "Transporte"
)

// ProductionStages lista as etapas na ordem do fluxo produtivo.
var ProductionStages = []string{
	StageWaiting,
	StageCutting,
	StageCustomization,
	StageSewing,
	StageFinishing,
	StageLogistics,
}

// ValidStage reporta se a etapa existe no fluxo.
func ValidStage(stage string) bool {
	for _, s := range ProductionStages {
		if s == stage {
			return true
		}
	}
	return false
}

// Status de pagamento do pedido.
const (
	PaymentPaid    = "Pago"
	PaymentPartial = "Parcial"
	PaymentPending = "Pendente"
	PaymentOverdue = "Atrasado"
)

// OrderItem é uma peça (tamanho/tecido/cor) com a etapa de produção própria.
type OrderItem struct {
	ProductID       string `json:"product_id"`
	Quantity        int    `json:"quantity"`
	Size            string `json:"size"`
	Fabric          string `json:"fabric"`
	Color           string `json:"color"`
	ProductionStage string `json:"production_stage"`
}

// Order é o pedido gerado a partir de um orçamento aprovado. A etapa de
// produção de topo alimenta o Kanban; cada item pode estar numa etapa
// diferente.
type Order struct {
	ID                string
	BudgetID          string
	BudgetSerial      string
	OrderNumber       string // PED-2024-0001
	ClientID          string
	ProductionStage   string // etapa consolidada para o Kanban
	Items             []OrderItem
	Customizations    []BudgetCustomization
	Extras            []BudgetExtra
	TotalAmount       decimal.Decimal
	AmountPaid        decimal.Decimal
	Discount          decimal.Decimal
	Deadline          string // ISO YYYY-MM-DD (prazo de entrega)
	Status            string // ver constantes Order*
	PaymentStatus     string // ver constantes Payment*
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Balance devolve o saldo devedor do pedido.
func (o *Order) Balance() decimal.Decimal {
	return o.TotalAmount.Sub(o.AmountPaid)
}
