package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest entrada de lançamento financeiro.
type CreateTransactionRequest struct {
	Type        string          `json:"type" validate:"required,oneof=income expense transfer"`
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`

	Date        string `json:"date"`     // competência, ISO; vazio = hoje
	DueDate     string `json:"due_date"` // vencimento
	PaymentDate string `json:"payment_date"`

	CategoryID   string `json:"category_id"`
	CostCenterID string `json:"cost_center_id"`
	AccountID    string `json:"account_id"`

	ReferenceID string `json:"reference_id"`
	ClientID    string `json:"client_id"`
	SupplierID  string `json:"supplier_id"`
	Payee       string `json:"payee"`

	IsPaid bool `json:"is_paid"`

	// Recorrência: gera TotalInstallments ocorrências mensais com vencimento
	// no dia DueDay (clampado ao tamanho de cada mês).
	IsRecurring       bool `json:"is_recurring"`
	TotalInstallments int  `json:"total_installments"`
	DueDay            int  `json:"due_day"`
}

// TransactionResponse saída de lançamento.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`

	Date        string `json:"date"`
	DueDate     string `json:"due_date,omitempty"`
	PaymentDate string `json:"payment_date,omitempty"`

	CategoryID   string `json:"category_id,omitempty"`
	CostCenterID string `json:"cost_center_id,omitempty"`
	AccountID    string `json:"account_id,omitempty"`

	ReferenceID string `json:"reference_id,omitempty"`
	ClientID    string `json:"client_id,omitempty"`
	SupplierID  string `json:"supplier_id,omitempty"`
	Payee       string `json:"payee,omitempty"`

	IsPaid    bool `json:"is_paid"`
	IsOverdue bool `json:"is_overdue"`

	IsRecurring       bool   `json:"is_recurring"`
	RecurrenceID      string `json:"recurrence_id,omitempty"`
	InstallmentNumber int    `json:"installment_number,omitempty"`
	TotalInstallments int    `json:"total_installments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListTransactionsRequest filtros da listagem: período relativo a uma data
// de referência (padrão hoje).
type ListTransactionsRequest struct {
	PageRequest
	Period  string `query:"period"` // DAY|WEEK|MONTH|QUARTER|SEMESTER|YEAR|ALL
	RefDate string `query:"ref_date"`
	Type    string `query:"type"`
}

// AccountRequest entrada de conta bancária.
type AccountRequest struct {
	Name           string          `json:"name" validate:"required"`
	Type           string          `json:"type" validate:"required,oneof=checking savings cash credit_card"`
	BankName       string          `json:"bank_name"`
	AccountNumber  string          `json:"account_number"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Currency       string          `json:"currency"`
}

// AccountResponse saída de conta bancária.
type AccountResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	BankName       string          `json:"bank_name,omitempty"`
	AccountNumber  string          `json:"account_number,omitempty"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	Currency       string          `json:"currency"`
	IsActive       bool            `json:"is_active"`
}

// CategoryRequest entrada de categoria financeira.
type CategoryRequest struct {
	Name         string `json:"name" validate:"required"`
	Type         string `json:"type" validate:"required,oneof=income expense"`
	ParentID     string `json:"parent_id"`
	Code         string `json:"code"`
	IsDeductible bool   `json:"is_deductible"`
}

// CategoryResponse saída de categoria financeira.
type CategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	ParentID     string `json:"parent_id,omitempty"`
	Code         string `json:"code,omitempty"`
	IsDeductible bool   `json:"is_deductible"`
}

// CostCenterRequest entrada de centro de custo.
type CostCenterRequest struct {
	Name        string          `json:"name" validate:"required"`
	Type        string          `json:"type" validate:"required,oneof=production administrative commercial financial"`
	Color       string          `json:"color"`
	BudgetLimit decimal.Decimal `json:"budget_limit"`
	Categories  []string        `json:"categories"`
}

// CostCenterResponse saída de centro de custo, com o realizado do período.
type CostCenterResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Color       string          `json:"color"`
	BudgetLimit decimal.Decimal `json:"budget_limit"`
	IsActive    bool            `json:"is_active"`
	Categories  []string        `json:"categories"`
	Actual      decimal.Decimal `json:"actual"`
	Percent     decimal.Decimal `json:"percent"`
}
