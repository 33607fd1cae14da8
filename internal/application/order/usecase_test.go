package order_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luiz-H456/botezini/internal/application/dto"
	"github.com/Luiz-H456/botezini/internal/application/order"
	"github.com/Luiz-H456/botezini/internal/domain"
	"github.com/Luiz-H456/botezini/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders map[string]*entity.Order
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
	return len(f.orders) + 1, nil
}

type fakeTxRepo struct {
	txs []*entity.Transaction
}

func (f *fakeTxRepo) Create(t *entity.Transaction) error { f.txs = append(f.txs, t); return nil }
func (f *fakeTxRepo) GetByID(id string) (*entity.Transaction, error) {
	return nil, nil
}
func (f *fakeTxRepo) List(limit, offset int) ([]*entity.Transaction, error) { return f.txs, nil }
func (f *fakeTxRepo) ListByRecurrence(recurrenceID string) ([]*entity.Transaction, error) {
	return nil, nil
}
func (f *fakeTxRepo) Update(t *entity.Transaction) error { return nil }
func (f *fakeTxRepo) Delete(id string) error             { return nil }

type fakeAccountRepo struct {
	accounts map[string]*entity.BankAccount
}

func (f *fakeAccountRepo) Create(a *entity.BankAccount) error { f.accounts[a.ID] = a; return nil }
func (f *fakeAccountRepo) GetByID(id string) (*entity.BankAccount, error) {
	return f.accounts[id], nil
}
func (f *fakeAccountRepo) List() ([]*entity.BankAccount, error) { return nil, nil }
func (f *fakeAccountRepo) Update(a *entity.BankAccount) error   { f.accounts[a.ID] = a; return nil }

// fakePublisher grava os eventos publicados para inspeção.
type fakePublisher struct {
	events []string
}

func (f *fakePublisher) PublishStageChange(ctx context.Context, orderNumber, fromStage, toStage string) error {
	f.events = append(f.events, orderNumber+": "+fromStage+" -> "+toStage)
	return nil
}

type env struct {
	uc        *order.UseCase
	orders    *fakeOrderRepo
	txs       *fakeTxRepo
	accounts  *fakeAccountRepo
	publisher *fakePublisher
}

func newEnv() *env {
	orders := &fakeOrderRepo{orders: make(map[string]*entity.Order)}
	txs := &fakeTxRepo{}
	accounts := &fakeAccountRepo{accounts: make(map[string]*entity.BankAccount)}
	publisher := &fakePublisher{}
	return &env{
		uc:        order.NewUseCase(orders, txs, accounts, publisher),
		orders:    orders,
		txs:       txs,
		accounts:  accounts,
		publisher: publisher,
	}
}

func (e *env) seedAccount(id string, balance int64) {
	e.accounts.accounts[id] = &entity.BankAccount{
		ID:             id,
		Name:           "Conta Corrente",
		CurrentBalance: decimal.NewFromInt(balance),
		IsActive:       true,
	}
}

func (e *env) seedOrder(total int64) *entity.Order {
	now := time.Now()
	o := &entity.Order{
		ID:              "ped-1",
		OrderNumber:     "PED-2026-0001",
		ClientID:        "cli-1",
		ProductionStage: entity.StageWaiting,
		Items: []entity.OrderItem{
			{ProductID: "p1", Quantity: 10, ProductionStage: entity.StageWaiting},
			{ProductID: "p2", Quantity: 5, ProductionStage: entity.StageWaiting},
		},
		TotalAmount:   decimal.NewFromInt(total),
		AmountPaid:    decimal.Zero,
		Deadline:      now.AddDate(0, 0, 10).Format("2006-01-02"),
		Status:        entity.OrderPending,
		PaymentStatus: entity.PaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	e.orders.orders[o.ID] = o
	return o
}

// ──────────────────────────────────────────────────────────────────────────────
// Avanço de etapa
// ──────────────────────────────────────────────────────────────────────────────

func TestAdvanceStage_ArrastaItensEPublicaEvento(t *testing.T) {
	e := newEnv()
	e.seedOrder(1000)

	resp, err := e.uc.AdvanceStage(context.Background(), "ped-1", dto.AdvanceStageRequest{
		Stage: entity.StageCutting,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StageCutting, resp.ProductionStage)
	assert.Equal(t, entity.OrderInProduction, resp.Status)
	for _, it := range resp.Items {
		assert.Equal(t, entity.StageCutting, it.ProductionStage, "itens acompanham o pedido")
	}

	require.Len(t, e.publisher.events, 1)
	assert.Equal(t, "PED-2026-0001: "+entity.StageWaiting+" -> "+entity.StageCutting, e.publisher.events[0])
}

func TestAdvanceStage_PorItem_NaoMoveOPedido(t *testing.T) {
	e := newEnv()
	e.seedOrder(1000)

	idx := 1
	resp, err := e.uc.AdvanceStage(context.Background(), "ped-1", dto.AdvanceStageRequest{
		Stage:     entity.StageSewing,
		ItemIndex: &idx,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StageWaiting, resp.ProductionStage, "o pedido fica na etapa consolidada")
	assert.Equal(t, entity.StageWaiting, resp.Items[0].ProductionStage)
	assert.Equal(t, entity.StageSewing, resp.Items[1].ProductionStage)

	assert.Empty(t, e.publisher.events, "sem mudança consolidada não há evento")
}

func TestAdvanceStage_TransporteEncerraProducao(t *testing.T) {
	e := newEnv()
	e.seedOrder(1000)

	resp, err := e.uc.AdvanceStage(context.Background(), "ped-1", dto.AdvanceStageRequest{
		Stage: entity.StageLogistics,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, resp.Status)
}

func TestAdvanceStage_EtapaDesconhecida_Rejeita(t *testing.T) {
	e := newEnv()
	e.seedOrder(1000)

	_, err := e.uc.AdvanceStage(context.Background(), "ped-1", dto.AdvanceStageRequest{
		Stage: "Tinturaria",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	idx := 7
	_, err = e.uc.AdvanceStage(context.Background(), "ped-1", dto.AdvanceStageRequest{
		Stage:     entity.StageCutting,
		ItemIndex: &idx,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "índice de item fora da faixa")
}

// ──────────────────────────────────────────────────────────────────────────────
// Kanban
// ──────────────────────────────────────────────────────────────────────────────

func TestBoard_UmaColunaPorEtapaSemEntregues(t *testing.T) {
	e := newEnv()
	e.seedOrder(1000)

	delivered := &entity.Order{
		ID:              "ped-2",
		OrderNumber:     "PED-2026-0002",
		ProductionStage: entity.StageWaiting,
		Status:          entity.OrderDelivered,
	}
	e.orders.orders[delivered.ID] = delivered

	board, err := e.uc.Board()
	require.NoError(t, err)
	require.Len(t, board.Stages, len(entity.ProductionStages))

	assert.Equal(t, entity.StageWaiting, board.Stages[0].Stage)
	require.Len(t, board.Stages[0].Orders, 1, "entregue não aparece no quadro")
	assert.Equal(t, "PED-2026-0001", board.Stages[0].Orders[0].OrderNumber)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recebimentos
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterPayment_ParcialEQuitacao(t *testing.T) {
	e := newEnv()
	e.seedOrder(1000)

	resp, err := e.uc.RegisterPayment("ped-1", dto.RegisterPaymentRequest{
		Amount: decimal.NewFromInt(400),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPartial, resp.PaymentStatus)
	assert.True(t, decimal.NewFromInt(600).Equal(resp.Balance))

	resp, err = e.uc.RegisterPayment("ped-1", dto.RegisterPaymentRequest{
		Amount: decimal.NewFromInt(600),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, resp.PaymentStatus)
	assert.True(t, resp.Balance.IsZero())

	// Cada recebimento vira uma receita paga vinculada ao pedido.
	require.Len(t, e.txs.txs, 2)
	for _, tx := range e.txs.txs {
		assert.Equal(t, entity.TransactionIncome, tx.Type)
		assert.Equal(t, "ped-1", tx.ReferenceID)
		assert.True(t, tx.IsPaid)
	}
}

// O recebimento com conta de destino credita o saldo na hora, no mesmo
// sentido que o financeiro aplica baixas — assim o estorno por exclusão do
// lançamento devolve exatamente o que entrou.
func TestRegisterPayment_CreditaContaDeDestino(t *testing.T) {
	e := newEnv()
	e.seedOrder(1000)
	e.seedAccount("acc-1", 1000)

	_, err := e.uc.RegisterPayment("ped-1", dto.RegisterPaymentRequest{
		Amount:    decimal.NewFromInt(500),
		AccountID: "acc-1",
	})
	require.NoError(t, err)

	acc, err := e.accounts.GetByID("acc-1")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1500).Equal(acc.CurrentBalance),
		"saldo após recebimento deve ser 1500")

	require.Len(t, e.txs.txs, 1)
	assert.Equal(t, "acc-1", e.txs.txs[0].AccountID)
	assert.True(t, e.txs.txs[0].IsPaid)
}

func TestRegisterPayment_ContaInexistente_Rejeita(t *testing.T) {
	e := newEnv()
	e.seedOrder(1000)

	_, err := e.uc.RegisterPayment("ped-1", dto.RegisterPaymentRequest{
		Amount:    decimal.NewFromInt(100),
		AccountID: "acc-fantasma",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, e.txs.txs, "sem conta válida não há lançamento")

	// A validação vem antes de mexer no pedido.
	o, _ := e.orders.GetByID("ped-1")
	assert.True(t, o.AmountPaid.IsZero())
}

func TestRegisterPayment_AcimaDoSaldo_Rejeita(t *testing.T) {
	e := newEnv()
	e.seedOrder(1000)

	_, err := e.uc.RegisterPayment("ped-1", dto.RegisterPaymentRequest{
		Amount: decimal.NewFromInt(1200),
	})
	assert.ErrorIs(t, err, domain.ErrPaymentExceedsDue)
	assert.Empty(t, e.txs.txs, "recebimento rejeitado não gera lançamento")
}

func TestRegisterPayment_ValorNaoPositivo_Rejeita(t *testing.T) {
	e := newEnv()
	e.seedOrder(1000)

	_, err := e.uc.RegisterPayment("ped-1", dto.RegisterPaymentRequest{
		Amount: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMarkDelivered(t *testing.T) {
	e := newEnv()
	e.seedOrder(1000)

	resp, err := e.uc.MarkDelivered("ped-1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderDelivered, resp.Status)

	_, err = e.uc.MarkDelivered("ped-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
