package budget

import (
	"context"

	"github.com/Luiz-H456/botezini/internal/domain/entity"
	"github.com/Luiz-H456/botezini/internal/domain/repository"
)

// TxRunner executa a conversão orçamento → pedido dentro de uma transação:
// os três repositórios chegam atados à mesma tx.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		budgetRepo repository.BudgetRepository,
		orderRepo repository.OrderRepository,
		txRepo repository.TransactionRepository,
	) error) error
}

// PDFGenerator gera a proposta em PDF enviada ao cliente.
type PDFGenerator interface {
	GenerateBudgetPDF(ctx context.Context, b *entity.Budget, company *entity.CompanyProfile, client *entity.Client) ([]byte, error)
}
