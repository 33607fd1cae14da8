// Package order cobre pedidos e o acompanhamento de produção: Kanban por
// etapa, avanço de etapa com publicação de evento e controle de recebimento.
package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Luiz-H456/botezini/internal/application/dto"
	"github.com/Luiz-H456/botezini/internal/domain"
	"github.com/Luiz-H456/botezini/internal/domain/entity"
	"github.com/Luiz-H456/botezini/internal/domain/repository"
	"github.com/Luiz-H456/botezini/pkg/dates"
)

// StagePublisher publica eventos de mudança de etapa para integrações
// externas (painel da fábrica, notificações). Nil desativa a publicação.
type StagePublisher interface {
	PublishStageChange(ctx context.Context, orderNumber, fromStage, toStage string) error
}

// UseCase casos de uso de pedido e produção.
type UseCase struct {
	orderRepo   repository.OrderRepository
	txRepo      repository.TransactionRepository
	accountRepo repository.AccountRepository
	publisher   StagePublisher
}

// NewUseCase constrói o caso de uso. publisher pode ser nil (sem broker).
func NewUseCase(
	orderRepo repository.OrderRepository,
	txRepo repository.TransactionRepository,
	accountRepo repository.AccountRepository,
	publisher StagePublisher,
) *UseCase {
	return &UseCase{orderRepo: orderRepo, txRepo: txRepo, accountRepo: accountRepo, publisher: publisher}
}

// GetByID devolve um pedido, ou nil.
func (uc *UseCase) GetByID(id string) (*dto.OrderResponse, error) {
	o, err := uc.orderRepo.GetByID(id)
	if err != nil || o == nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// List lista pedidos com paginação.
func (uc *UseCase) List(page dto.PageRequest) ([]*dto.OrderResponse, error) {
	list, err := uc.orderRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// Board monta o Kanban da fábrica: uma coluna por etapa, na ordem do fluxo,
// com os pedidos ainda não entregues.
func (uc *UseCase) Board() (*dto.ProductionBoardResponse, error) {
	board := &dto.ProductionBoardResponse{}
	for _, stage := range entity.ProductionStages {
		orders, err := uc.orderRepo.ListByStage(stage)
		if err != nil {
			return nil, err
		}
		col := dto.ProductionColumn{Stage: stage, Orders: make([]dto.OrderResponse, 0, len(orders))}
		for _, o := range orders {
			if o.Status == entity.OrderDelivered {
				continue
			}
			col.Orders = append(col.Orders, *toOrderResponse(o))
		}
		board.Stages = append(board.Stages, col)
	}
	return board, nil
}

// AdvanceStage move o pedido (ou um item específico) para outra etapa e
// publica o evento. O status do pedido acompanha a etapa: Transporte encerra
// a produção, qualquer outra etapa além de Aguardando Material marca
// Em Produção.
func (uc *UseCase) AdvanceStage(ctx context.Context, id string, in dto.AdvanceStageRequest) (*dto.OrderResponse, error) {
	if !entity.ValidStage(in.Stage) {
		return nil, domain.ErrInvalidInput
	}
	o, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}

	from := o.ProductionStage
	if in.ItemIndex != nil {
		idx := *in.ItemIndex
		if idx < 0 || idx >= len(o.Items) {
			return nil, domain.ErrInvalidInput
		}
		o.Items[idx].ProductionStage = in.Stage
	} else {
		o.ProductionStage = in.Stage
		// Arrasta os itens que ainda não avançaram por conta própria.
		for i := range o.Items {
			o.Items[i].ProductionStage = in.Stage
		}
	}

	switch {
	case o.ProductionStage == entity.StageLogistics:
		o.Status = entity.OrderCompleted
	case o.ProductionStage != entity.StageWaiting:
		o.Status = entity.OrderInProduction
	}
	o.UpdatedAt = time.Now()

	if err := uc.orderRepo.Update(o); err != nil {
		return nil, err
	}

	if uc.publisher != nil && from != o.ProductionStage {
		// Publicação é melhor-esforço: falha no broker não desfaz a etapa.
		_ = uc.publisher.PublishStageChange(ctx, o.OrderNumber, from, o.ProductionStage)
	}
	return toOrderResponse(o), nil
}

// MarkDelivered marca o pedido como entregue.
func (uc *UseCase) MarkDelivered(id string) (*dto.OrderResponse, error) {
	o, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	o.Status = entity.OrderDelivered
	o.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(o); err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// RegisterPayment registra um recebimento: soma em AmountPaid, recalcula o
// status de pagamento e lança a receita no financeiro vinculada ao pedido.
func (uc *UseCase) RegisterPayment(id string, in dto.RegisterPaymentRequest) (*dto.OrderResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	o, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if in.Amount.GreaterThan(o.Balance()) {
		return nil, domain.ErrPaymentExceedsDue
	}
	if in.AccountID != "" {
		acc, err := uc.accountRepo.GetByID(in.AccountID)
		if err != nil {
			return nil, err
		}
		if acc == nil {
			return nil, domain.ErrNotFound
		}
	}

	payDate := in.PaymentDate
	if _, ok := dates.Parse(payDate); !ok {
		payDate = dates.TodayStr()
	}

	o.AmountPaid = o.AmountPaid.Add(in.Amount)
	o.PaymentStatus = paymentStatus(o)
	o.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(o); err != nil {
		return nil, err
	}

	entry := &entity.Transaction{
		ID:          uuid.New().String(),
		Type:        entity.TransactionIncome,
		Description: "Recebimento pedido " + o.OrderNumber,
		Amount:      in.Amount,
		Date:        payDate,
		PaymentDate: payDate,
		AccountID:   in.AccountID,
		ReferenceID: o.ID,
		ClientID:    o.ClientID,
		IsPaid:      true,
		CreatedAt:   o.UpdatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	if err := uc.txRepo.Create(entry); err != nil {
		return nil, err
	}
	// O lançamento já nasce pago: o saldo da conta sobe junto, no mesmo
	// sentido que o financeiro aplica (e estorna) baixas.
	if in.AccountID != "" {
		if err := uc.creditAccount(in.AccountID, in.Amount); err != nil {
			return nil, err
		}
	}
	return toOrderResponse(o), nil
}

// creditAccount soma o recebimento no saldo da conta de destino.
func (uc *UseCase) creditAccount(accountID string, amount decimal.Decimal) error {
	acc, err := uc.accountRepo.GetByID(accountID)
	if err != nil {
		return err
	}
	if acc == nil {
		return domain.ErrNotFound
	}
	acc.CurrentBalance = acc.CurrentBalance.Add(amount)
	acc.UpdatedAt = time.Now()
	return uc.accountRepo.Update(acc)
}

// paymentStatus deriva o status de pagamento do saldo e do prazo.
func paymentStatus(o *entity.Order) string {
	switch {
	case o.Balance().IsZero() || o.Balance().IsNegative():
		return entity.PaymentPaid
	case o.AmountPaid.IsPositive():
		return entity.PaymentPartial
	case o.Deadline != "" && dates.IsExpired(o.Deadline, 0):
		return entity.PaymentOverdue
	}
	return entity.PaymentPending
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:               o.ID,
		BudgetID:         o.BudgetID,
		BudgetSerial:     o.BudgetSerial,
		OrderNumber:      o.OrderNumber,
		ClientID:         o.ClientID,
		ProductionStage:  o.ProductionStage,
		Items:            o.Items,
		Customizations:   o.Customizations,
		Extras:           o.Extras,
		TotalAmount:      o.TotalAmount,
		AmountPaid:       o.AmountPaid,
		Balance:          o.Balance(),
		Discount:         o.Discount,
		Deadline:         o.Deadline,
		BusinessDaysLeft: dates.CountBusinessDays(dates.TodayStr(), o.Deadline),
		Status:           o.Status,
		PaymentStatus:    o.PaymentStatus,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}
