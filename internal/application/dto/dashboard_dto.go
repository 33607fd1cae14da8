package dto

import "github.com/shopspring/decimal"

// DashboardSummary é o resumo financeiro/operacional do período corrente.
type DashboardSummary struct {
	PeriodLabel string `json:"period_label"` // ex.: "Março 2026"

	// Financeiro do mês corrente
	MonthIncome   decimal.Decimal `json:"month_income"`
	MonthExpenses decimal.Decimal `json:"month_expenses"`
	MonthNet      decimal.Decimal `json:"month_net"`
	RevenueGoal   decimal.Decimal `json:"revenue_goal"`
	GoalPercent   decimal.Decimal `json:"goal_percent"`

	// Operacional
	OpenBudgets      int `json:"open_budgets"`
	ExpiredBudgets   int `json:"expired_budgets"`
	OrdersInProgress int `json:"orders_in_progress"`
	OrdersLate       int `json:"orders_late"`

	OverdueReceivable decimal.Decimal `json:"overdue_receivable"`
	OverduePayable    decimal.Decimal `json:"overdue_payable"`

	Alerts []FinancialAlert `json:"alerts"`
}

// Severidades de alerta do dashboard.
const (
	AlertCritical = "critical"
	AlertWarning  = "warning"
	AlertSuccess  = "success"
)

// FinancialAlert é um aviso acionável exibido no topo do dashboard.
type FinancialAlert struct {
	Type    string `json:"type"` // ver constantes Alert*
	Title   string `json:"title"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"` // view sugerida para navegar
}
