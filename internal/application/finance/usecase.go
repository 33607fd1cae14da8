// Package finance cobre o financeiro: lançamentos (com recorrência e
// parcelamento), contas bancárias, categorias e centros de custo.
package finance

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Luiz-H456/botezini/internal/application/dto"
	"github.com/Luiz-H456/botezini/internal/domain"
	"github.com/Luiz-H456/botezini/internal/domain/entity"
	"github.com/Luiz-H456/botezini/internal/domain/repository"
	"github.com/Luiz-H456/botezini/pkg/dates"
)

var hundred = decimal.NewFromInt(100)

// UseCase casos de uso do módulo financeiro.
type UseCase struct {
	txRepo         repository.TransactionRepository
	accountRepo    repository.AccountRepository
	categoryRepo   repository.CategoryRepository
	costCenterRepo repository.CostCenterRepository
	companyRepo    repository.CompanyRepository
	exporter       Exporter
}

// NewUseCase constrói o caso de uso financeiro. exporter pode ser nil quando a
// exportação contábil não está habilitada.
func NewUseCase(
	txRepo repository.TransactionRepository,
	accountRepo repository.AccountRepository,
	categoryRepo repository.CategoryRepository,
	costCenterRepo repository.CostCenterRepository,
	companyRepo repository.CompanyRepository,
	exporter Exporter,
) *UseCase {
	return &UseCase{
		txRepo:         txRepo,
		accountRepo:    accountRepo,
		categoryRepo:   categoryRepo,
		costCenterRepo: costCenterRepo,
		companyRepo:    companyRepo,
		exporter:       exporter,
	}
}

// ── Lançamentos ──────────────────────────────────────────────────────────────

// CreateTransaction cria um lançamento. Com IsRecurring e TotalInstallments > 1
// gera a série completa: uma ocorrência por mês, vencimento no dia DueDay
// (clampado ao tamanho de cada mês) e descrição sufixada com (n/N).
func (uc *UseCase) CreateTransaction(in dto.CreateTransactionRequest) ([]*dto.TransactionResponse, error) {
	switch in.Type {
	case entity.TransactionIncome, entity.TransactionExpense, entity.TransactionTransfer:
	default:
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}

	date := in.Date
	if _, ok := dates.Parse(date); !ok {
		date = dates.TodayStr()
	}

	now := time.Now()
	base := entity.Transaction{
		Type:         in.Type,
		Description:  in.Description,
		Amount:       in.Amount,
		Date:         date,
		DueDate:      in.DueDate,
		PaymentDate:  in.PaymentDate,
		CategoryID:   in.CategoryID,
		CostCenterID: in.CostCenterID,
		AccountID:    in.AccountID,
		ReferenceID:  in.ReferenceID,
		ClientID:     in.ClientID,
		SupplierID:   in.SupplierID,
		Payee:        in.Payee,
		IsPaid:       in.IsPaid,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if !in.IsRecurring || in.TotalInstallments <= 1 {
		t := base
		t.ID = uuid.New().String()
		if err := uc.txRepo.Create(&t); err != nil {
			return nil, err
		}
		if t.IsPaid {
			if err := uc.applyToAccount(&t, t.Amount); err != nil {
				return nil, err
			}
		}
		return []*dto.TransactionResponse{toTransactionResponse(&t)}, nil
	}

	recurrenceID := uuid.New().String()
	out := make([]*dto.TransactionResponse, 0, in.TotalInstallments)
	for i := 0; i < in.TotalInstallments; i++ {
		t := base
		t.ID = uuid.New().String()
		t.Description = fmt.Sprintf("%s (%d/%d)", in.Description, i+1, in.TotalInstallments)
		t.Date = dates.AddMonths(date, i)
		if in.DueDay > 0 {
			t.DueDate = dates.SetDayPreservingMonth(t.Date, in.DueDay)
		} else {
			t.DueDate = dates.AddMonths(in.DueDate, i)
		}
		t.IsRecurring = true
		t.RecurrenceID = recurrenceID
		t.InstallmentNumber = i + 1
		t.TotalInstallments = in.TotalInstallments
		// Só a primeira parcela pode já nascer paga.
		if i > 0 {
			t.IsPaid = false
			t.PaymentDate = ""
		}
		if err := uc.txRepo.Create(&t); err != nil {
			return nil, err
		}
		if t.IsPaid {
			if err := uc.applyToAccount(&t, t.Amount); err != nil {
				return nil, err
			}
		}
		out = append(out, toTransactionResponse(&t))
	}
	return out, nil
}

// ListTransactions lista lançamentos filtrados por período relativo à data de
// referência (padrão hoje) e, opcionalmente, por tipo. O filtro vem antes da
// paginação: a página é contada sobre o conjunto filtrado, senão um mês com
// mais movimentos do que uma página perderia lançamentos.
func (uc *UseCase) ListTransactions(in dto.ListTransactionsRequest) ([]*dto.TransactionResponse, error) {
	list, err := uc.txRepo.List(0, 0)
	if err != nil {
		return nil, err
	}
	period := dates.ParsePeriod(in.Period)
	ref := in.RefDate
	if _, ok := dates.Parse(ref); !ok {
		ref = dates.TodayStr()
	}
	out := make([]*dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		if in.Type != "" && t.Type != in.Type {
			continue
		}
		if !dates.InPeriod(t.Date, period, ref) {
			continue
		}
		out = append(out, toTransactionResponse(t))
	}

	if in.Offset > 0 {
		if in.Offset >= len(out) {
			return []*dto.TransactionResponse{}, nil
		}
		out = out[in.Offset:]
	}
	if in.Limit > 0 && len(out) > in.Limit {
		out = out[:in.Limit]
	}
	return out, nil
}

// GetTransaction devolve um lançamento, ou nil.
func (uc *UseCase) GetTransaction(id string) (*dto.TransactionResponse, error) {
	t, err := uc.txRepo.GetByID(id)
	if err != nil || t == nil {
		return nil, err
	}
	return toTransactionResponse(t), nil
}

// MarkPaid baixa um lançamento: grava a data de pagamento e reflete o valor
// no saldo da conta vinculada.
func (uc *UseCase) MarkPaid(id, paymentDate string) (*dto.TransactionResponse, error) {
	t, err := uc.txRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if t.IsPaid {
		return toTransactionResponse(t), nil
	}
	if _, ok := dates.Parse(paymentDate); !ok {
		paymentDate = dates.TodayStr()
	}
	t.IsPaid = true
	t.PaymentDate = paymentDate
	t.UpdatedAt = time.Now()
	if err := uc.txRepo.Update(t); err != nil {
		return nil, err
	}
	if err := uc.applyToAccount(t, t.Amount); err != nil {
		return nil, err
	}
	return toTransactionResponse(t), nil
}

// DeleteTransaction remove um lançamento; se ele já estiver pago, estorna o
// valor na conta.
func (uc *UseCase) DeleteTransaction(id string) error {
	t, err := uc.txRepo.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	if t.IsPaid {
		if err := uc.applyToAccount(t, t.Amount.Neg()); err != nil {
			return err
		}
	}
	return uc.txRepo.Delete(id)
}

// DeleteRecurrence remove as ocorrências futuras ainda em aberto de uma série.
// As parcelas já pagas ficam no histórico.
func (uc *UseCase) DeleteRecurrence(recurrenceID string) error {
	list, err := uc.txRepo.ListByRecurrence(recurrenceID)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return domain.ErrNotFound
	}
	for _, t := range list {
		if t.IsPaid {
			continue
		}
		if err := uc.txRepo.Delete(t.ID); err != nil {
			return err
		}
	}
	return nil
}

// ExportTransactions gera o arquivo contábil dos lançamentos do período.
func (uc *UseCase) ExportTransactions(period, refDate string) ([]byte, error) {
	if uc.exporter == nil {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.txRepo.List(0, 0)
	if err != nil {
		return nil, err
	}
	p := dates.ParsePeriod(period)
	ref := refDate
	if _, ok := dates.Parse(ref); !ok {
		ref = dates.TodayStr()
	}
	filtered := make([]*entity.Transaction, 0, len(list))
	for _, t := range list {
		if dates.InPeriod(t.Date, p, ref) {
			filtered = append(filtered, t)
		}
	}
	company, err := uc.companyRepo.Get()
	if err != nil {
		return nil, err
	}
	if company == nil {
		company = &entity.CompanyProfile{}
	}
	return uc.exporter.ExportTransactions(company, filtered)
}

// applyToAccount soma (receita) ou subtrai (despesa) amount no saldo da conta
// do lançamento. Lançamento sem conta não movimenta saldo.
func (uc *UseCase) applyToAccount(t *entity.Transaction, amount decimal.Decimal) error {
	if t.AccountID == "" {
		return nil
	}
	acc, err := uc.accountRepo.GetByID(t.AccountID)
	if err != nil {
		return err
	}
	if acc == nil {
		return domain.ErrNotFound
	}
	if t.Type == entity.TransactionExpense {
		acc.CurrentBalance = acc.CurrentBalance.Sub(amount)
	} else {
		acc.CurrentBalance = acc.CurrentBalance.Add(amount)
	}
	acc.UpdatedAt = time.Now()
	return uc.accountRepo.Update(acc)
}

// ── Contas ───────────────────────────────────────────────────────────────────

// CreateAccount cria uma conta bancária com saldo atual igual ao inicial.
func (uc *UseCase) CreateAccount(in dto.AccountRequest) (*dto.AccountResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	currency := in.Currency
	if currency == "" {
		currency = "BRL"
	}
	now := time.Now()
	acc := &entity.BankAccount{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Type:           in.Type,
		BankName:       in.BankName,
		AccountNumber:  in.AccountNumber,
		InitialBalance: in.InitialBalance,
		CurrentBalance: in.InitialBalance,
		Currency:       currency,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.accountRepo.Create(acc); err != nil {
		return nil, err
	}
	return toAccountResponse(acc), nil
}

// ListAccounts lista as contas cadastradas.
func (uc *UseCase) ListAccounts() ([]*dto.AccountResponse, error) {
	list, err := uc.accountRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AccountResponse, 0, len(list))
	for _, acc := range list {
		out = append(out, toAccountResponse(acc))
	}
	return out, nil
}

// ── Categorias ───────────────────────────────────────────────────────────────

// CreateCategory cria uma categoria financeira.
func (uc *UseCase) CreateCategory(in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	cat := &entity.FinancialCategory{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Type:         in.Type,
		ParentID:     in.ParentID,
		Code:         in.Code,
		IsDeductible: in.IsDeductible,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.categoryRepo.Create(cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// ListCategories lista as categorias financeiras.
func (uc *UseCase) ListCategories() ([]*dto.CategoryResponse, error) {
	list, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(list))
	for _, cat := range list {
		out = append(out, toCategoryResponse(cat))
	}
	return out, nil
}

// DeleteCategory remove uma categoria financeira.
func (uc *UseCase) DeleteCategory(id string) error {
	return uc.categoryRepo.Delete(id)
}

// ── Centros de custo ─────────────────────────────────────────────────────────

// CreateCostCenter cria um centro de custo.
func (uc *UseCase) CreateCostCenter(in dto.CostCenterRequest) (*dto.CostCenterResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	cc := &entity.CostCenter{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Type:        in.Type,
		Color:       in.Color,
		BudgetLimit: in.BudgetLimit,
		IsActive:    true,
		Categories:  in.Categories,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.costCenterRepo.Create(cc); err != nil {
		return nil, err
	}
	return toCostCenterResponse(cc, decimal.Zero), nil
}

// ListCostCenters lista os centros de custo com o realizado do mês corrente
// (soma das despesas de competência no mês) e o percentual do teto.
func (uc *UseCase) ListCostCenters() ([]*dto.CostCenterResponse, error) {
	centers, err := uc.costCenterRepo.List()
	if err != nil {
		return nil, err
	}
	txs, err := uc.txRepo.List(0, 0)
	if err != nil {
		return nil, err
	}

	today := dates.TodayStr()
	actual := make(map[string]decimal.Decimal, len(centers))
	for _, t := range txs {
		if t.Type != entity.TransactionExpense || t.CostCenterID == "" {
			continue
		}
		if !dates.InPeriod(t.Date, dates.PeriodMonth, today) {
			continue
		}
		actual[t.CostCenterID] = actual[t.CostCenterID].Add(t.Amount)
	}

	out := make([]*dto.CostCenterResponse, 0, len(centers))
	for _, cc := range centers {
		out = append(out, toCostCenterResponse(cc, actual[cc.ID]))
	}
	return out, nil
}

// ── Conversores ──────────────────────────────────────────────────────────────

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:                t.ID,
		Type:              t.Type,
		Description:       t.Description,
		Amount:            t.Amount,
		Date:              t.Date,
		DueDate:           t.DueDate,
		PaymentDate:       t.PaymentDate,
		CategoryID:        t.CategoryID,
		CostCenterID:      t.CostCenterID,
		AccountID:         t.AccountID,
		ReferenceID:       t.ReferenceID,
		ClientID:          t.ClientID,
		SupplierID:        t.SupplierID,
		Payee:             t.Payee,
		IsPaid:            t.IsPaid,
		IsOverdue:         t.Overdue(dates.TodayStr()),
		IsRecurring:       t.IsRecurring,
		RecurrenceID:      t.RecurrenceID,
		InstallmentNumber: t.InstallmentNumber,
		TotalInstallments: t.TotalInstallments,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

func toAccountResponse(acc *entity.BankAccount) *dto.AccountResponse {
	return &dto.AccountResponse{
		ID:             acc.ID,
		Name:           acc.Name,
		Type:           acc.Type,
		BankName:       acc.BankName,
		AccountNumber:  acc.AccountNumber,
		InitialBalance: acc.InitialBalance,
		CurrentBalance: acc.CurrentBalance,
		Currency:       acc.Currency,
		IsActive:       acc.IsActive,
	}
}

func toCategoryResponse(cat *entity.FinancialCategory) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:           cat.ID,
		Name:         cat.Name,
		Type:         cat.Type,
		ParentID:     cat.ParentID,
		Code:         cat.Code,
		IsDeductible: cat.IsDeductible,
	}
}

func toCostCenterResponse(cc *entity.CostCenter, actual decimal.Decimal) *dto.CostCenterResponse {
	percent := decimal.Zero
	if cc.BudgetLimit.IsPositive() {
		percent = actual.Div(cc.BudgetLimit).Mul(hundred).Round(2)
	}
	return &dto.CostCenterResponse{
		ID:          cc.ID,
		Name:        cc.Name,
		Type:        cc.Type,
		Color:       cc.Color,
		BudgetLimit: cc.BudgetLimit,
		IsActive:    cc.IsActive,
		Categories:  cc.Categories,
		Actual:      actual,
		Percent:     percent,
	}
}
