package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompanyProfile é o cadastro da própria empresa: identificação, dados
// bancários para cobrança e metas financeiras. Registro único, lido uma vez
// por sessão e apenas exibido pelo núcleo.
type CompanyProfile struct {
	ID      string
	Name    string
	CNPJ    string
	Email   string
	Phone   string
	Address string
	Website string
	LogoURL string

	// Dados bancários para orçamentos e cobrança
	BankName    string
	BankAgency  string
	BankAccount string
	BankHolder  string
	PixKey      string

	// Metas e parâmetros
	DefaultTaxRate decimal.Decimal
	RevenueGoal    decimal.Decimal // meta mensal de faturamento
	ExpenseLimit   decimal.Decimal // teto mensal de despesas

	CreatedAt time.Time
	UpdatedAt time.Time
}
