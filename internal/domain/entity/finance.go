package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de lançamento financeiro.
const (
	TransactionIncome   = "income"
	TransactionExpense  = "expense"
	TransactionTransfer = "transfer"
)

// Transaction é um lançamento financeiro com as três datas do regime
// brasileiro: competência (Date), vencimento (DueDate) e caixa (PaymentDate).
type Transaction struct {
	ID          string
	Type        string // income, expense, transfer
	Description string
	Amount      decimal.Decimal

	Date        string // competência, ISO YYYY-MM-DD
	DueDate     string // vencimento (vazio quando à vista)
	PaymentDate string // pagamento efetivo (vazio enquanto em aberto)

	CategoryID   string
	CostCenterID string
	AccountID    string

	// Vínculos com o restante do sistema
	ReferenceID string // pedido ou orçamento de origem
	ClientID    string
	SupplierID  string
	Payee       string

	IsPaid bool

	// Recorrência / parcelamento
	IsRecurring       bool
	RecurrenceID      string // agrupa as ocorrências geradas
	InstallmentNumber int
	TotalInstallments int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Overdue reporta se o lançamento está vencido na data de referência ISO.
// Lançamento pago ou sem vencimento nunca está vencido.
func (t *Transaction) Overdue(refDate string) bool {
	if t.IsPaid || t.DueDate == "" {
		return false
	}
	return t.DueDate < refDate
}

// Tipos de conta bancária.
const (
	AccountChecking   = "checking"
	AccountSavings    = "savings"
	AccountCash       = "cash"
	AccountCreditCard = "credit_card"
)

// BankAccount é uma conta de movimentação financeira.
type BankAccount struct {
	ID             string
	Name           string
	Type           string // ver constantes Account*
	BankName       string
	AccountNumber  string
	InitialBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	Currency       string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FinancialCategory é uma categoria de receita/despesa, com hierarquia
// opcional via ParentID (ex.: Despesas > Administrativas > Aluguel).
type FinancialCategory struct {
	ID           string
	Name         string
	Type         string // income | expense
	ParentID     string
	Code         string // ex.: "2.1.05"
	IsDeductible bool   // entra na DRE como dedução
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CostCenter agrupa lançamentos por área (produção, administrativo,
// comercial, financeiro) com teto de gasto opcional.
type CostCenter struct {
	ID          string
	Name        string
	Type        string // production | administrative | commercial | financial
	Color       string
	BudgetLimit decimal.Decimal
	IsActive    bool
	Categories  []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
