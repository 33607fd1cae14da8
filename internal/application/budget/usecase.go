// Package budget cobre o ciclo do orçamento: criação com numeração
// sequencial, validade, aprovação e conversão em pedido.
package budget

import (
	"context"
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

const defaultValidityDays = 15

var oneHundred = decimal.NewFromInt(100)

// UseCase casos de uso de orçamento.
type UseCase struct {
	budgetRepo  repository.BudgetRepository
	clientRepo  repository.ClientRepository
	companyRepo repository.CompanyRepository
	txRunner    TxRunner
	pdfGen      PDFGenerator
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	budgetRepo repository.BudgetRepository,
	clientRepo repository.ClientRepository,
	companyRepo repository.CompanyRepository,
	txRunner TxRunner,
	pdfGen PDFGenerator,
) *UseCase {
	return &UseCase{
		budgetRepo:  budgetRepo,
		clientRepo:  clientRepo,
		companyRepo: companyRepo,
		txRunner:    txRunner,
		pdfGen:      pdfGen,
	}
}

// Create cria um orçamento: recalcula totais de linha e subtotais, aplica o
// desconto, reparte entrada/entrega e numera ORC-AAAA-NNNN.
func (uc *UseCase) Create(in dto.CreateBudgetRequest) (*dto.BudgetResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	date := in.Date
	if _, ok := dates.Parse(date); !ok {
		date = dates.TodayStr()
	}

	b := &entity.Budget{
		ID:                 uuid.New().String(),
		ClientID:           in.ClientID,
		Date:               date,
		Items:              in.Items,
		Customizations:     in.Customizations,
		Extras:             in.Extras,
		Discount:           in.Discount,
		DownPaymentPercent: in.DownPaymentPercent,
		ValidityDays:       in.ValidityDays,
		DeliveryTimeDays:   in.DeliveryTimeDays,
		Notes:              in.Notes,
		Status:             entity.BudgetDraft,
	}
	if b.ValidityDays <= 0 {
		b.ValidityDays = defaultValidityDays
	}
	recalcTotals(b)

	year := time.Now().Year()
	seq, err := uc.budgetRepo.NextSerial(year)
	if err != nil {
		return nil, err
	}
	b.SerialNumber = fmt.Sprintf("ORC-%d-%04d", year, seq)

	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	if err := uc.budgetRepo.Create(b); err != nil {
		return nil, err
	}
	return toBudgetResponse(b), nil
}

// recalcTotals refaz totais de linha, subtotais, total geral e a divisão
// entrada/entrega. Valores enviados pelo front são ignorados: a conta é
// sempre do servidor.
func recalcTotals(b *entity.Budget) {
	subItems := decimal.Zero
	for i := range b.Items {
		qty := decimal.NewFromInt(int64(b.Items[i].Quantity))
		b.Items[i].Total = b.Items[i].UnitPrice.Mul(qty)
		subItems = subItems.Add(b.Items[i].Total)
	}
	subCustom := decimal.Zero
	for i := range b.Customizations {
		qty := decimal.NewFromInt(int64(b.Customizations[i].Quantity))
		b.Customizations[i].Total = b.Customizations[i].UnitPrice.Mul(qty)
		subCustom = subCustom.Add(b.Customizations[i].Total)
	}
	subExtras := decimal.Zero
	for i := range b.Extras {
		qty := decimal.NewFromInt(int64(b.Extras[i].Quantity))
		b.Extras[i].Total = b.Extras[i].UnitPrice.Mul(qty)
		subExtras = subExtras.Add(b.Extras[i].Total)
	}

	b.SubtotalItems = subItems
	b.SubtotalCustomizations = subCustom
	b.SubtotalExtras = subExtras
	b.TotalAmount = subItems.Add(subCustom).Add(subExtras).Sub(b.Discount)

	if b.DownPaymentPercent.IsPositive() {
		b.DownPaymentValue = b.TotalAmount.Mul(b.DownPaymentPercent).Div(oneHundred).Round(2)
	} else {
		b.DownPaymentValue = decimal.Zero
	}
	b.DeliveryPaymentValue = b.TotalAmount.Sub(b.DownPaymentValue)
}

// GetByID devolve um orçamento, ou nil.
func (uc *UseCase) GetByID(id string) (*dto.BudgetResponse, error) {
	b, err := uc.budgetRepo.GetByID(id)
	if err != nil || b == nil {
		return nil, err
	}
	return toBudgetResponse(b), nil
}

// List lista orçamentos com paginação.
func (uc *UseCase) List(page dto.PageRequest) ([]*dto.BudgetResponse, error) {
	list, err := uc.budgetRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BudgetResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBudgetResponse(b))
	}
	return out, nil
}

// UpdateStatus aplica uma transição de status. Orçamento convertido é
// imutável; aprovar orçamento vencido é rejeitado.
func (uc *UseCase) UpdateStatus(id string, in dto.UpdateBudgetStatusRequest) (*dto.BudgetResponse, error) {
	b, err := uc.budgetRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if b.Status == entity.BudgetConverted {
		return nil, domain.ErrBudgetConverted
	}
	if in.Status == entity.BudgetApproved && dates.IsExpired(b.Date, b.ValidityDays) {
		return nil, domain.ErrBudgetExpired
	}
	b.Status = in.Status
	b.UpdatedAt = time.Now()
	if err := uc.budgetRepo.Update(b); err != nil {
		return nil, err
	}
	return toBudgetResponse(b), nil
}

// Convert transforma um orçamento aprovado em pedido, numa única transação:
// cria o pedido com prazo em dias úteis, lança a entrada como recebível e
// marca o orçamento como convertido.
//
// O prazo de entrega conta DeliveryTimeDays dias úteis a partir de hoje
// (sábados e domingos não contam).
func (uc *UseCase) Convert(ctx context.Context, id string) (*dto.ConvertBudgetResponse, error) {
	b, err := uc.budgetRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if b.Status == entity.BudgetConverted {
		return nil, domain.ErrBudgetConverted
	}
	if dates.IsExpired(b.Date, b.ValidityDays) {
		return nil, domain.ErrBudgetExpired
	}

	var order *entity.Order
	err = uc.txRunner.Run(ctx, func(
		budgetRepo repository.BudgetRepository,
		orderRepo repository.OrderRepository,
		txRepo repository.TransactionRepository,
	) error {
		year := time.Now().Year()
		seq, err := orderRepo.NextSerial(year)
		if err != nil {
			return err
		}
		orderNumber := fmt.Sprintf("PED-%d-%04d", year, seq)

		items := make([]entity.OrderItem, 0, len(b.Items))
		for _, it := range b.Items {
			items = append(items, entity.OrderItem{
				ProductID:       it.ProductID,
				Quantity:        it.Quantity,
				Size:            it.Size,
				Fabric:          it.Fabric,
				Color:           it.Color,
				ProductionStage: entity.StageWaiting,
			})
		}

		now := time.Now()
		order = &entity.Order{
			ID:              uuid.New().String(),
			BudgetID:        b.ID,
			BudgetSerial:    b.SerialNumber,
			OrderNumber:     orderNumber,
			ClientID:        b.ClientID,
			ProductionStage: entity.StageWaiting,
			Items:           items,
			Customizations:  b.Customizations,
			Extras:          b.Extras,
			TotalAmount:     b.TotalAmount,
			AmountPaid:      decimal.Zero,
			Discount:        b.Discount,
			Deadline:        dates.AddBusinessDays(dates.TodayStr(), b.DeliveryTimeDays),
			Status:          entity.OrderPending,
			PaymentStatus:   entity.PaymentPending,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}

		// A entrada vira um recebível imediato vinculado ao pedido.
		if b.DownPaymentValue.IsPositive() {
			entry := &entity.Transaction{
				ID:          uuid.New().String(),
				Type:        entity.TransactionIncome,
				Description: "Entrada pedido " + orderNumber,
				Amount:      b.DownPaymentValue,
				Date:        dates.TodayStr(),
				DueDate:     dates.TodayStr(),
				ReferenceID: order.ID,
				ClientID:    b.ClientID,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := txRepo.Create(entry); err != nil {
				return err
			}
		}

		b.Status = entity.BudgetConverted
		b.GeneratedOrderNumber = orderNumber
		b.UpdatedAt = now
		return budgetRepo.Update(b)
	})
	if err != nil {
		return nil, err
	}

	return &dto.ConvertBudgetResponse{
		Budget: *toBudgetResponse(b),
		Order:  *toOrderResponse(order),
	}, nil
}

// GeneratePDF monta a proposta em PDF com os dados da empresa e do cliente.
func (uc *UseCase) GeneratePDF(ctx context.Context, id string) ([]byte, error) {
	b, err := uc.budgetRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.Get()
	if err != nil {
		return nil, err
	}
	if company == nil {
		company = &entity.CompanyProfile{}
	}
	client, err := uc.clientRepo.GetByID(b.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		client = &entity.Client{}
	}
	return uc.pdfGen.GenerateBudgetPDF(ctx, b, company, client)
}

// Delete remove um orçamento não convertido.
func (uc *UseCase) Delete(id string) error {
	b, err := uc.budgetRepo.GetByID(id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	if b.Status == entity.BudgetConverted {
		return domain.ErrBudgetConverted
	}
	return uc.budgetRepo.Delete(id)
}

func toBudgetResponse(b *entity.Budget) *dto.BudgetResponse {
	return &dto.BudgetResponse{
		ID:                     b.ID,
		SerialNumber:           b.SerialNumber,
		ClientID:               b.ClientID,
		Date:                   b.Date,
		Items:                  b.Items,
		Customizations:         b.Customizations,
		Extras:                 b.Extras,
		SubtotalItems:          b.SubtotalItems,
		SubtotalCustomizations: b.SubtotalCustomizations,
		SubtotalExtras:         b.SubtotalExtras,
		Discount:               b.Discount,
		TotalAmount:            b.TotalAmount,
		DownPaymentPercent:     b.DownPaymentPercent,
		DownPaymentValue:       b.DownPaymentValue,
		DeliveryPaymentValue:   b.DeliveryPaymentValue,
		ValidityDays:           b.ValidityDays,
		DeliveryTimeDays:       b.DeliveryTimeDays,
		Notes:                  b.Notes,
		Status:                 b.Status,
		IsExpired:              b.Status != entity.BudgetConverted && dates.IsExpired(b.Date, b.ValidityDays),
		GeneratedOrderNumber:   b.GeneratedOrderNumber,
		CreatedAt:              b.CreatedAt,
		UpdatedAt:              b.UpdatedAt,
	}
}

// toOrderResponse vive aqui porque a conversão devolve o pedido recém-criado;
// o pacote order tem a sua própria cópia para as rotas de pedido.
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
