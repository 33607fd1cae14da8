package budget_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luiz-H456/botezini/internal/application/budget"
	"github.com/Luiz-H456/botezini/internal/application/dto"
	"github.com/Luiz-H456/botezini/internal/domain"
	"github.com/Luiz-H456/botezini/internal/domain/entity"
	"github.com/Luiz-H456/botezini/internal/domain/repository"
	"github.com/Luiz-H456/botezini/pkg/dates"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeBudgetRepo struct {
	budgets map[string]*entity.Budget
	serial  int
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{budgets: make(map[string]*entity.Budget)}
}

func (f *fakeBudgetRepo) Create(b *entity.Budget) error { f.budgets[b.ID] = b; return nil }
func (f *fakeBudgetRepo) GetByID(id string) (*entity.Budget, error) {
	return f.budgets[id], nil
}
func (f *fakeBudgetRepo) List(limit, offset int) ([]*entity.Budget, error) {
	out := make([]*entity.Budget, 0, len(f.budgets))
	for _, b := range f.budgets {
		out = append(out, b)
	}
	return out, nil
}
func (f *fakeBudgetRepo) Update(b *entity.Budget) error { f.budgets[b.ID] = b; return nil }
func (f *fakeBudgetRepo) Delete(id string) error        { delete(f.budgets, id); return nil }
func (f *fakeBudgetRepo) NextSerial(year int) (int, error) {
	f.serial++
	return f.serial, nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	serial int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (f *fakeOrderRepo) Create(o *entity.Order) error { f.orders[o.ID] = o; return nil }
func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	return f.orders[id], nil
}
func (f *fakeOrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, nil
}
func (f *fakeOrderRepo) ListByStage(stage string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.ProductionStage == stage {
			out = append(out, o)
		}
	}
	return out, nil
}
func (f *fakeOrderRepo) Update(o *entity.Order) error { f.orders[o.ID] = o; return nil }
func (f *fakeOrderRepo) NextSerial(year int) (int, error) {
	f.serial++
	return f.serial, nil
}

type fakeTransactionRepo struct {
	txs []*entity.Transaction
}

func (f *fakeTransactionRepo) Create(tx *entity.Transaction) error {
	f.txs = append(f.txs, tx)
	return nil
}
func (f *fakeTransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	for _, tx := range f.txs {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, nil
}
func (f *fakeTransactionRepo) List(limit, offset int) ([]*entity.Transaction, error) {
	return f.txs, nil
}
func (f *fakeTransactionRepo) ListByRecurrence(recurrenceID string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range f.txs {
		if tx.RecurrenceID == recurrenceID {
			out = append(out, tx)
		}
	}
	return out, nil
}
func (f *fakeTransactionRepo) Update(tx *entity.Transaction) error { return nil }
func (f *fakeTransactionRepo) Delete(id string) error {
	for i, tx := range f.txs {
		if tx.ID == id {
			f.txs = append(f.txs[:i], f.txs[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func (f *fakeClientRepo) Create(c *entity.Client) error { f.clients[c.ID] = c; return nil }
func (f *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	return f.clients[id], nil
}
func (f *fakeClientRepo) List(limit, offset int) ([]*entity.Client, error) { return nil, nil }
func (f *fakeClientRepo) Update(c *entity.Client) error                    { return nil }
func (f *fakeClientRepo) Delete(id string) error                           { return nil }

type fakeCompanyRepo struct{ profile *entity.CompanyProfile }

func (f *fakeCompanyRepo) Get() (*entity.CompanyProfile, error) { return f.profile, nil }
func (f *fakeCompanyRepo) Save(p *entity.CompanyProfile) error  { f.profile = p; return nil }

// fakeTxRunner executa o callback direto sobre os fakes, sem transação real.
type fakeTxRunner struct {
	budgets *fakeBudgetRepo
	orders  *fakeOrderRepo
	txs     *fakeTransactionRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	budgetRepo repository.BudgetRepository,
	orderRepo repository.OrderRepository,
	txRepo repository.TransactionRepository,
) error) error {
	return fn(f.budgets, f.orders, f.txs)
}

type env struct {
	uc      *budget.UseCase
	budgets *fakeBudgetRepo
	orders  *fakeOrderRepo
	txs     *fakeTransactionRepo
}

func newEnv() *env {
	budgets := newFakeBudgetRepo()
	orders := newFakeOrderRepo()
	txs := &fakeTransactionRepo{}
	clients := &fakeClientRepo{clients: map[string]*entity.Client{
		"cli-1": {ID: "cli-1", CompanyName: "Malharia Exemplo"},
	}}
	runner := &fakeTxRunner{budgets: budgets, orders: orders, txs: txs}
	uc := budget.NewUseCase(budgets, clients, &fakeCompanyRepo{}, runner, nil)
	return &env{uc: uc, budgets: budgets, orders: orders, txs: txs}
}

func daysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format("2006-01-02")
}

func sampleRequest() dto.CreateBudgetRequest {
	return dto.CreateBudgetRequest{
		ClientID: "cli-1",
		Items: []entity.BudgetItem{
			{ProductName: "Camiseta", Quantity: 10, UnitPrice: decimal.NewFromInt(20)},
			{ProductName: "Moletom", Quantity: 2, UnitPrice: decimal.NewFromInt(80)},
		},
		Customizations: []entity.BudgetCustomization{
			{Type: entity.CustomizationEmbroidery, Description: "Logo no peito", Quantity: 12, UnitPrice: decimal.NewFromInt(5)},
		},
		Extras: []entity.BudgetExtra{
			{Description: "Frete", Quantity: 1, UnitPrice: decimal.NewFromInt(30)},
		},
		Discount:           decimal.NewFromInt(40),
		DownPaymentPercent: decimal.NewFromInt(50),
		DeliveryTimeDays:   10,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Criação
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_RecalculaTotaisENumera(t *testing.T) {
	e := newEnv()

	resp, err := e.uc.Create(sampleRequest())
	require.NoError(t, err)

	// 10×20 + 2×80 = 360 de peças; 12×5 = 60 de personalização; 30 de extras;
	// total 450 − 40 de desconto = 410; entrada de 50% = 205.
	assert.True(t, decimal.NewFromInt(360).Equal(resp.SubtotalItems), "subtotal de peças")
	assert.True(t, decimal.NewFromInt(60).Equal(resp.SubtotalCustomizations), "subtotal de personalizações")
	assert.True(t, decimal.NewFromInt(30).Equal(resp.SubtotalExtras), "subtotal de extras")
	assert.True(t, decimal.NewFromInt(410).Equal(resp.TotalAmount), "total geral")
	assert.True(t, decimal.NewFromInt(205).Equal(resp.DownPaymentValue), "entrada de 50%")
	assert.True(t, decimal.NewFromInt(205).Equal(resp.DeliveryPaymentValue), "saldo na entrega")

	year := time.Now().Year()
	assert.Equal(t, fmt.Sprintf("ORC-%d-0001", year), resp.SerialNumber)
	assert.Equal(t, entity.BudgetDraft, resp.Status)
	assert.Equal(t, 15, resp.ValidityDays, "validade default de 15 dias")
	assert.Equal(t, dates.TodayStr(), resp.Date, "data vazia vira hoje")

	// O segundo orçamento do ano recebe o próximo sequencial.
	resp2, err := e.uc.Create(sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("ORC-%d-0002", year), resp2.SerialNumber)
}

func TestCreate_SemItens_Rejeita(t *testing.T) {
	e := newEnv()
	in := sampleRequest()
	in.Items = nil

	_, err := e.uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_ClienteInexistente_Rejeita(t *testing.T) {
	e := newEnv()
	in := sampleRequest()
	in.ClientID = "cli-fantasma"

	_, err := e.uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transições de status
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_AprovarVencido_Rejeita(t *testing.T) {
	e := newEnv()
	in := sampleRequest()
	in.Date = daysAgo(30)
	in.ValidityDays = 15

	resp, err := e.uc.Create(in)
	require.NoError(t, err)
	require.True(t, resp.IsExpired, "orçamento de 30 dias atrás com validade de 15 deve estar vencido")

	_, err = e.uc.UpdateStatus(resp.ID, dto.UpdateBudgetStatusRequest{Status: entity.BudgetApproved})
	assert.ErrorIs(t, err, domain.ErrBudgetExpired)

	// Marcar como enviado continua permitido mesmo vencido.
	_, err = e.uc.UpdateStatus(resp.ID, dto.UpdateBudgetStatusRequest{Status: entity.BudgetSent})
	assert.NoError(t, err)
}

func TestUpdateStatus_Convertido_EImutavel(t *testing.T) {
	e := newEnv()
	resp, err := e.uc.Create(sampleRequest())
	require.NoError(t, err)

	_, err = e.uc.Convert(context.Background(), resp.ID)
	require.NoError(t, err)

	_, err = e.uc.UpdateStatus(resp.ID, dto.UpdateBudgetStatusRequest{Status: entity.BudgetDraft})
	assert.ErrorIs(t, err, domain.ErrBudgetConverted)

	err = e.uc.Delete(resp.ID)
	assert.ErrorIs(t, err, domain.ErrBudgetConverted)
}

// ──────────────────────────────────────────────────────────────────────────────
// Conversão em pedido
// ──────────────────────────────────────────────────────────────────────────────

func TestConvert_CriaPedidoComPrazoEEntrada(t *testing.T) {
	e := newEnv()
	resp, err := e.uc.Create(sampleRequest())
	require.NoError(t, err)

	out, err := e.uc.Convert(context.Background(), resp.ID)
	require.NoError(t, err)

	year := time.Now().Year()
	assert.Equal(t, fmt.Sprintf("PED-%d-0001", year), out.Order.OrderNumber)
	assert.Equal(t, entity.BudgetConverted, out.Budget.Status)
	assert.Equal(t, out.Order.OrderNumber, out.Budget.GeneratedOrderNumber)

	// O prazo conta 10 dias úteis a partir de hoje.
	assert.Equal(t, dates.AddBusinessDays(dates.TodayStr(), 10), out.Order.Deadline)

	// Cada item nasce aguardando material.
	require.Len(t, out.Order.Items, 2)
	for _, it := range out.Order.Items {
		assert.Equal(t, entity.StageWaiting, it.ProductionStage)
	}
	assert.Equal(t, entity.StageWaiting, out.Order.ProductionStage)
	assert.Equal(t, entity.OrderPending, out.Order.Status)

	// A entrada vira um recebível vinculado ao pedido.
	require.Len(t, e.txs.txs, 1)
	entry := e.txs.txs[0]
	assert.Equal(t, entity.TransactionIncome, entry.Type)
	assert.True(t, decimal.NewFromInt(205).Equal(entry.Amount))
	assert.Equal(t, out.Order.ID, entry.ReferenceID)
}

func TestConvert_SemEntrada_NaoLancaRecebivel(t *testing.T) {
	e := newEnv()
	in := sampleRequest()
	in.DownPaymentPercent = decimal.Zero

	resp, err := e.uc.Create(in)
	require.NoError(t, err)

	_, err = e.uc.Convert(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Empty(t, e.txs.txs, "sem entrada não há recebível imediato")
}

func TestConvert_Duplicada_Rejeita(t *testing.T) {
	e := newEnv()
	resp, err := e.uc.Create(sampleRequest())
	require.NoError(t, err)

	_, err = e.uc.Convert(context.Background(), resp.ID)
	require.NoError(t, err)

	_, err = e.uc.Convert(context.Background(), resp.ID)
	assert.ErrorIs(t, err, domain.ErrBudgetConverted)
	assert.Len(t, e.orders.orders, 1, "a segunda conversão não deve criar outro pedido")
}

func TestConvert_Vencido_Rejeita(t *testing.T) {
	e := newEnv()
	in := sampleRequest()
	in.Date = daysAgo(30)

	resp, err := e.uc.Create(in)
	require.NoError(t, err)

	_, err = e.uc.Convert(context.Background(), resp.ID)
	assert.ErrorIs(t, err, domain.ErrBudgetExpired)
	assert.Empty(t, e.orders.orders)
}

func TestConvert_Inexistente_Rejeita(t *testing.T) {
	e := newEnv()
	_, err := e.uc.Convert(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
