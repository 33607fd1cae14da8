// Package analytics monta o resumo do dashboard: posição financeira do mês,
// situação operacional (orçamentos e pedidos) e alertas acionáveis.
package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/Luiz-H456/botezini/internal/application/dto"
	"github.com/Luiz-H456/botezini/internal/application/session"
	"github.com/Luiz-H456/botezini/internal/domain/entity"
	"github.com/Luiz-H456/botezini/internal/domain/repository"
	"github.com/Luiz-H456/botezini/pkg/dates"
	"github.com/Luiz-H456/botezini/pkg/format"
)

var hundred = decimal.NewFromInt(100)

// DashboardUseCase agrega dados de vários repositórios num único resumo.
type DashboardUseCase struct {
	txRepo      repository.TransactionRepository
	budgetRepo  repository.BudgetRepository
	orderRepo   repository.OrderRepository
	companyRepo repository.CompanyRepository
}

// NewDashboardUseCase constrói o caso de uso do dashboard.
func NewDashboardUseCase(
	txRepo repository.TransactionRepository,
	budgetRepo repository.BudgetRepository,
	orderRepo repository.OrderRepository,
	companyRepo repository.CompanyRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		txRepo:      txRepo,
		budgetRepo:  budgetRepo,
		orderRepo:   orderRepo,
		companyRepo: companyRepo,
	}
}

// Summary monta o resumo do dashboard. As quatro consultas de origem correm
// em paralelo; a primeira falha aborta o conjunto.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummary, error) {
	var (
		txs     []*entity.Transaction
		budgets []*entity.Budget
		orders  []*entity.Order
		company *entity.CompanyProfile
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		txs, err = uc.txRepo.List(0, 0)
		return err
	})
	g.Go(func() (err error) {
		budgets, err = uc.budgetRepo.List(0, 0)
		return err
	})
	g.Go(func() (err error) {
		orders, err = uc.orderRepo.List(0, 0)
		return err
	})
	g.Go(func() (err error) {
		company, err = uc.companyRepo.Get()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	today := dates.TodayStr()
	s := &dto.DashboardSummary{
		PeriodLabel: dates.PeriodLabel(time.Now()),
		Alerts:      []dto.FinancialAlert{},
	}

	for _, t := range txs {
		if dates.InPeriod(t.Date, dates.PeriodMonth, today) {
			switch t.Type {
			case entity.TransactionIncome:
				s.MonthIncome = s.MonthIncome.Add(t.Amount)
			case entity.TransactionExpense:
				s.MonthExpenses = s.MonthExpenses.Add(t.Amount)
			}
		}
		if t.Overdue(today) {
			switch t.Type {
			case entity.TransactionIncome:
				s.OverdueReceivable = s.OverdueReceivable.Add(t.Amount)
			case entity.TransactionExpense:
				s.OverduePayable = s.OverduePayable.Add(t.Amount)
			}
		}
	}
	s.MonthNet = s.MonthIncome.Sub(s.MonthExpenses)

	for _, b := range budgets {
		switch b.Status {
		case entity.BudgetDraft, entity.BudgetSent:
			if dates.IsExpired(b.Date, b.ValidityDays) {
				s.ExpiredBudgets++
			} else {
				s.OpenBudgets++
			}
		}
	}

	for _, o := range orders {
		if o.Status == entity.OrderDelivered {
			continue
		}
		s.OrdersInProgress++
		if o.Deadline != "" && o.Deadline < today {
			s.OrdersLate++
		}
	}

	if company != nil {
		s.RevenueGoal = company.RevenueGoal
		if company.RevenueGoal.IsPositive() {
			s.GoalPercent = s.MonthIncome.Div(company.RevenueGoal).Mul(hundred).Round(2)
		}
	}

	s.Alerts = uc.buildAlerts(s, company)
	return s, nil
}

// buildAlerts deriva os avisos do topo do dashboard a partir do resumo já
// calculado, do mais grave para o mais leve.
func (uc *DashboardUseCase) buildAlerts(s *dto.DashboardSummary, company *entity.CompanyProfile) []dto.FinancialAlert {
	alerts := []dto.FinancialAlert{}

	if s.OverduePayable.IsPositive() {
		alerts = append(alerts, dto.FinancialAlert{
			Type:    dto.AlertCritical,
			Title:   "Contas vencidas",
			Message: "Há " + format.Currency(s.OverduePayable) + " em despesas vencidas.",
			Action:  string(session.ViewFinance),
		})
	}
	if s.OrdersLate > 0 {
		alerts = append(alerts, dto.FinancialAlert{
			Type:    dto.AlertCritical,
			Title:   "Pedidos atrasados",
			Message: "Pedidos com prazo de entrega estourado aguardam produção.",
			Action:  string(session.ViewProduction),
		})
	}
	if company != nil && company.ExpenseLimit.IsPositive() && s.MonthExpenses.GreaterThan(company.ExpenseLimit) {
		alerts = append(alerts, dto.FinancialAlert{
			Type:    dto.AlertWarning,
			Title:   "Teto de despesas estourado",
			Message: "As despesas do mês passaram de " + format.Currency(company.ExpenseLimit) + ".",
			Action:  string(session.ViewFinance),
		})
	}
	if s.OverdueReceivable.IsPositive() {
		alerts = append(alerts, dto.FinancialAlert{
			Type:    dto.AlertWarning,
			Title:   "Recebimentos em atraso",
			Message: "Há " + format.Currency(s.OverdueReceivable) + " a receber vencidos.",
			Action:  string(session.ViewFinance),
		})
	}
	if s.ExpiredBudgets > 0 {
		alerts = append(alerts, dto.FinancialAlert{
			Type:    dto.AlertWarning,
			Title:   "Orçamentos expirados",
			Message: "Orçamentos em aberto passaram da validade e precisam de revisão.",
			Action:  string(session.ViewBudgets),
		})
	}
	if company != nil && company.RevenueGoal.IsPositive() && s.MonthIncome.GreaterThanOrEqual(company.RevenueGoal) {
		alerts = append(alerts, dto.FinancialAlert{
			Type:    dto.AlertSuccess,
			Title:   "Meta batida",
			Message: "O faturamento do mês atingiu a meta de " + format.Currency(company.RevenueGoal) + ".",
			Action:  string(session.ViewIntelligence),
		})
	}
	return alerts
}
