package finance_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luiz-H456/botezini/internal/application/dto"
	"github.com/Luiz-H456/botezini/internal/application/finance"
	"github.com/Luiz-H456/botezini/internal/domain"
	"github.com/Luiz-H456/botezini/internal/domain/entity"
	"github.com/Luiz-H456/botezini/pkg/dates"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeTxRepo struct {
	txs []*entity.Transaction
}

func (f *fakeTxRepo) Create(t *entity.Transaction) error {
	cp := *t
	f.txs = append(f.txs, &cp)
	return nil
}
func (f *fakeTxRepo) GetByID(id string) (*entity.Transaction, error) {
	for _, t := range f.txs {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}
func (f *fakeTxRepo) List(limit, offset int) ([]*entity.Transaction, error) {
	// Espelha o LIMIT NULLIF(limit, 0) OFFSET do repositório real.
	if offset >= len(f.txs) {
		return nil, nil
	}
	out := f.txs[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
func (f *fakeTxRepo) ListByRecurrence(recurrenceID string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range f.txs {
		if t.RecurrenceID == recurrenceID {
			out = append(out, t)
		}
	}
	return out, nil
}
func (f *fakeTxRepo) Update(t *entity.Transaction) error { return nil }
func (f *fakeTxRepo) Delete(id string) error {
	for i, t := range f.txs {
		if t.ID == id {
			f.txs = append(f.txs[:i], f.txs[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeAccountRepo struct {
	accounts map[string]*entity.BankAccount
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*entity.BankAccount)}
}

func (f *fakeAccountRepo) Create(a *entity.BankAccount) error { f.accounts[a.ID] = a; return nil }
func (f *fakeAccountRepo) GetByID(id string) (*entity.BankAccount, error) {
	return f.accounts[id], nil
}
func (f *fakeAccountRepo) List() ([]*entity.BankAccount, error) {
	out := make([]*entity.BankAccount, 0, len(f.accounts))
	for _, a := range f.accounts {
		out = append(out, a)
	}
	return out, nil
}
func (f *fakeAccountRepo) Update(a *entity.BankAccount) error { f.accounts[a.ID] = a; return nil }

type fakeCategoryRepo struct {
	categories map[string]*entity.FinancialCategory
}

func (f *fakeCategoryRepo) Create(c *entity.FinancialCategory) error {
	f.categories[c.ID] = c
	return nil
}
func (f *fakeCategoryRepo) GetByID(id string) (*entity.FinancialCategory, error) {
	return f.categories[id], nil
}
func (f *fakeCategoryRepo) List() ([]*entity.FinancialCategory, error) { return nil, nil }
func (f *fakeCategoryRepo) Update(c *entity.FinancialCategory) error   { return nil }
func (f *fakeCategoryRepo) Delete(id string) error                     { delete(f.categories, id); return nil }

type fakeCostCenterRepo struct {
	centers []*entity.CostCenter
}

func (f *fakeCostCenterRepo) Create(cc *entity.CostCenter) error {
	f.centers = append(f.centers, cc)
	return nil
}
func (f *fakeCostCenterRepo) GetByID(id string) (*entity.CostCenter, error) { return nil, nil }
func (f *fakeCostCenterRepo) List() ([]*entity.CostCenter, error)           { return f.centers, nil }
func (f *fakeCostCenterRepo) Update(cc *entity.CostCenter) error            { return nil }

type fakeCompanyRepo struct{ profile *entity.CompanyProfile }

func (f *fakeCompanyRepo) Get() (*entity.CompanyProfile, error) { return f.profile, nil }
func (f *fakeCompanyRepo) Save(p *entity.CompanyProfile) error  { f.profile = p; return nil }

type env struct {
	uc       *finance.UseCase
	txs      *fakeTxRepo
	accounts *fakeAccountRepo
}

func newEnv() *env {
	txs := &fakeTxRepo{}
	accounts := newFakeAccountRepo()
	uc := finance.NewUseCase(
		txs,
		accounts,
		&fakeCategoryRepo{categories: make(map[string]*entity.FinancialCategory)},
		&fakeCostCenterRepo{},
		&fakeCompanyRepo{},
		nil,
	)
	return &env{uc: uc, txs: txs, accounts: accounts}
}

func (e *env) account(t *testing.T, initial int64) string {
	t.Helper()
	acc, err := e.uc.CreateAccount(dto.AccountRequest{
		Name:           "Conta Corrente",
		Type:           "checking",
		InitialBalance: decimal.NewFromInt(initial),
	})
	require.NoError(t, err)
	return acc.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Recorrência
// ──────────────────────────────────────────────────────────────────────────────

// A série mensal parte da competência e clampa o vencimento ao tamanho de
// cada mês: dia 31 vira 28 em fevereiro e 30 em abril.
func TestCreateTransaction_RecorrenciaClampaVencimento(t *testing.T) {
	e := newEnv()

	out, err := e.uc.CreateTransaction(dto.CreateTransactionRequest{
		Type:              entity.TransactionExpense,
		Description:       "Aluguel do galpão",
		Amount:            decimal.NewFromInt(2500),
		Date:              "2026-01-31",
		IsRecurring:       true,
		TotalInstallments: 4,
		DueDay:            31,
	})
	require.NoError(t, err)
	require.Len(t, out, 4)

	wantDates := []string{"2026-01-31", "2026-02-28", "2026-03-31", "2026-04-30"}
	for i, tx := range out {
		assert.Equal(t, wantDates[i], tx.Date, "competência da parcela %d", i+1)
		assert.Equal(t, wantDates[i], tx.DueDate, "vencimento da parcela %d", i+1)
		assert.Equal(t, fmt.Sprintf("Aluguel do galpão (%d/4)", i+1), tx.Description)
		assert.Equal(t, i+1, tx.InstallmentNumber)
		assert.Equal(t, 4, tx.TotalInstallments)
		assert.True(t, tx.IsRecurring)
		assert.Equal(t, out[0].RecurrenceID, tx.RecurrenceID, "toda a série compartilha o mesmo id")
	}
}

// Só a primeira parcela pode nascer paga; as demais ficam em aberto.
func TestCreateTransaction_SoAPrimeiraParcelaNascePaga(t *testing.T) {
	e := newEnv()
	accID := e.account(t, 1000)

	out, err := e.uc.CreateTransaction(dto.CreateTransactionRequest{
		Type:              entity.TransactionExpense,
		Description:       "Máquina de costura",
		Amount:            decimal.NewFromInt(300),
		Date:              "2026-02-10",
		AccountID:         accID,
		IsPaid:            true,
		PaymentDate:       "2026-02-10",
		IsRecurring:       true,
		TotalInstallments: 3,
		DueDay:            10,
	})
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.True(t, out[0].IsPaid)
	assert.False(t, out[1].IsPaid)
	assert.False(t, out[2].IsPaid)
	assert.Empty(t, out[1].PaymentDate)

	// Só a parcela paga movimenta o saldo: 1000 − 300.
	acc, err := e.accounts.GetByID(accID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(700).Equal(acc.CurrentBalance))
}

func TestCreateTransaction_Invalida_Rejeita(t *testing.T) {
	e := newEnv()

	_, err := e.uc.CreateTransaction(dto.CreateTransactionRequest{
		Type:        "loan",
		Description: "x",
		Amount:      decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo desconhecido")

	_, err = e.uc.CreateTransaction(dto.CreateTransactionRequest{
		Type:        entity.TransactionIncome,
		Description: "x",
		Amount:      decimal.NewFromInt(-5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "valor não positivo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtro por período
// ──────────────────────────────────────────────────────────────────────────────

func TestListTransactions_FiltraPorPeriodoETipo(t *testing.T) {
	e := newEnv()

	create := func(typ, desc, date string) {
		_, err := e.uc.CreateTransaction(dto.CreateTransactionRequest{
			Type:        typ,
			Description: desc,
			Amount:      decimal.NewFromInt(100),
			Date:        date,
		})
		require.NoError(t, err)
	}
	create(entity.TransactionIncome, "venda de março", "2026-03-05")
	create(entity.TransactionExpense, "tecido de março", "2026-03-20")
	create(entity.TransactionIncome, "venda de abril", "2026-04-02")

	out, err := e.uc.ListTransactions(dto.ListTransactionsRequest{
		Period:  "MONTH",
		RefDate: "2026-03-15",
	})
	require.NoError(t, err)
	assert.Len(t, out, 2, "só os lançamentos de março")

	out, err = e.uc.ListTransactions(dto.ListTransactionsRequest{
		Period:  "MONTH",
		RefDate: "2026-03-15",
		Type:    entity.TransactionIncome,
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "venda de março", out[0].Description)

	// ALL (e período desconhecido) devolve tudo.
	out, err = e.uc.ListTransactions(dto.ListTransactionsRequest{Period: "ALL"})
	require.NoError(t, err)
	assert.Len(t, out, 3)
}

// O filtro de período vem antes da paginação: um mês com mais movimentos do
// que uma página devolve páginas cheias e não perde lançamentos além das
// primeiras linhas do repositório.
func TestListTransactions_PaginaSobreOConjuntoFiltrado(t *testing.T) {
	e := newEnv()

	// 25 lançamentos em março e 5 em abril, intercalados na inserção.
	for i := 0; i < 25; i++ {
		_, err := e.uc.CreateTransaction(dto.CreateTransactionRequest{
			Type:        entity.TransactionExpense,
			Description: fmt.Sprintf("tecido lote %d", i+1),
			Amount:      decimal.NewFromInt(10),
			Date:        fmt.Sprintf("2026-03-%02d", i%28+1),
		})
		require.NoError(t, err)
		if i < 5 {
			_, err := e.uc.CreateTransaction(dto.CreateTransactionRequest{
				Type:        entity.TransactionExpense,
				Description: fmt.Sprintf("aviamento %d", i+1),
				Amount:      decimal.NewFromInt(10),
				Date:        fmt.Sprintf("2026-04-%02d", i+1),
			})
			require.NoError(t, err)
		}
	}

	page1, err := e.uc.ListTransactions(dto.ListTransactionsRequest{
		PageRequest: dto.PageRequest{Limit: 20, Offset: 0},
		Period:      "MONTH",
		RefDate:     "2026-03-15",
	})
	require.NoError(t, err)
	require.Len(t, page1, 20, "primeira página cheia, só com março")
	for _, tx := range page1 {
		assert.Equal(t, "2026-03", tx.Date[:7])
	}

	page2, err := e.uc.ListTransactions(dto.ListTransactionsRequest{
		PageRequest: dto.PageRequest{Limit: 20, Offset: 20},
		Period:      "MONTH",
		RefDate:     "2026-03-15",
	})
	require.NoError(t, err)
	require.Len(t, page2, 5, "segunda página traz o resto de março")
	for _, tx := range page2 {
		assert.Equal(t, "2026-03", tx.Date[:7])
	}

	empty, err := e.uc.ListTransactions(dto.ListTransactionsRequest{
		PageRequest: dto.PageRequest{Limit: 20, Offset: 40},
		Period:      "MONTH",
		RefDate:     "2026-03-15",
	})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// ──────────────────────────────────────────────────────────────────────────────
// Baixa, estorno e série
// ──────────────────────────────────────────────────────────────────────────────

func TestMarkPaid_MovimentaSaldoEIdempotente(t *testing.T) {
	e := newEnv()
	accID := e.account(t, 500)

	out, err := e.uc.CreateTransaction(dto.CreateTransactionRequest{
		Type:        entity.TransactionIncome,
		Description: "Recebimento avulso",
		Amount:      decimal.NewFromInt(200),
		Date:        "2026-02-01",
		AccountID:   accID,
	})
	require.NoError(t, err)
	id := out[0].ID

	paid, err := e.uc.MarkPaid(id, "2026-02-03")
	require.NoError(t, err)
	assert.True(t, paid.IsPaid)
	assert.Equal(t, "2026-02-03", paid.PaymentDate)

	acc, _ := e.accounts.GetByID(accID)
	assert.True(t, decimal.NewFromInt(700).Equal(acc.CurrentBalance), "receita soma no saldo")

	// Segunda baixa não movimenta de novo.
	_, err = e.uc.MarkPaid(id, "2026-02-04")
	require.NoError(t, err)
	acc, _ = e.accounts.GetByID(accID)
	assert.True(t, decimal.NewFromInt(700).Equal(acc.CurrentBalance))
}

func TestDeleteTransaction_PagaEstornaSaldo(t *testing.T) {
	e := newEnv()
	accID := e.account(t, 500)

	out, err := e.uc.CreateTransaction(dto.CreateTransactionRequest{
		Type:        entity.TransactionExpense,
		Description: "Linha e aviamentos",
		Amount:      decimal.NewFromInt(150),
		Date:        "2026-02-01",
		AccountID:   accID,
		IsPaid:      true,
	})
	require.NoError(t, err)

	acc, _ := e.accounts.GetByID(accID)
	require.True(t, decimal.NewFromInt(350).Equal(acc.CurrentBalance))

	require.NoError(t, e.uc.DeleteTransaction(out[0].ID))

	acc, _ = e.accounts.GetByID(accID)
	assert.True(t, decimal.NewFromInt(500).Equal(acc.CurrentBalance), "estorno devolve o saldo")
	assert.Empty(t, e.txs.txs)
}

func TestDeleteRecurrence_PreservaParcelasPagas(t *testing.T) {
	e := newEnv()

	out, err := e.uc.CreateTransaction(dto.CreateTransactionRequest{
		Type:              entity.TransactionExpense,
		Description:       "Energia",
		Amount:            decimal.NewFromInt(400),
		Date:              "2026-01-15",
		IsPaid:            true,
		IsRecurring:       true,
		TotalInstallments: 6,
		DueDay:            15,
	})
	require.NoError(t, err)
	require.Len(t, out, 6)

	require.NoError(t, e.uc.DeleteRecurrence(out[0].RecurrenceID))

	remaining, err := e.uc.ListTransactions(dto.ListTransactionsRequest{Period: "ALL"})
	require.NoError(t, err)
	require.Len(t, remaining, 1, "só a parcela paga fica no histórico")
	assert.True(t, remaining[0].IsPaid)
}

func TestDeleteRecurrence_Inexistente_Rejeita(t *testing.T) {
	e := newEnv()
	err := e.uc.DeleteRecurrence("serie-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Contas e centros de custo
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateAccount_SaldoInicialEMoedaDefault(t *testing.T) {
	e := newEnv()

	acc, err := e.uc.CreateAccount(dto.AccountRequest{
		Name:           "Caixa",
		Type:           "cash",
		InitialBalance: decimal.NewFromInt(250),
	})
	require.NoError(t, err)
	assert.True(t, acc.InitialBalance.Equal(acc.CurrentBalance))
	assert.Equal(t, "BRL", acc.Currency)
	assert.True(t, acc.IsActive)
}

func TestListCostCenters_CalculaRealizadoDoMes(t *testing.T) {
	e := newEnv()

	cc, err := e.uc.CreateCostCenter(dto.CostCenterRequest{
		Name:        "Produção",
		Type:        "production",
		BudgetLimit: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	today := dates.TodayStr()
	lastYear := time.Now().AddDate(-1, 0, 0).Format("2006-01-02")

	create := func(date string, amount int64) {
		_, err := e.uc.CreateTransaction(dto.CreateTransactionRequest{
			Type:         entity.TransactionExpense,
			Description:  "gasto de produção",
			Amount:       decimal.NewFromInt(amount),
			Date:         date,
			CostCenterID: cc.ID,
		})
		require.NoError(t, err)
	}
	create(today, 150)
	create(today, 100)
	create(lastYear, 999) // fora do mês corrente, não conta

	list, err := e.uc.ListCostCenters()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, decimal.NewFromInt(250).Equal(list[0].Actual), "realizado do mês")
	assert.True(t, decimal.NewFromInt(25).Equal(list[0].Percent), "um quarto do teto de 1000")
}
