package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Luiz-H456/botezini/internal/application/budget"
	"github.com/Luiz-H456/botezini/internal/domain/repository"
)

var _ budget.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL. Usado na
// conversão orçamento → pedido: numeração, criação do pedido, lançamento da
// entrada e mudança de status saem atômicos.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner sobre o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run abre a transação, executa fn com repositórios atados à tx e faz
// Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	budgetRepo repository.BudgetRepository,
	orderRepo repository.OrderRepository,
	txRepo repository.TransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	budgetRepo := NewBudgetRepository(tx)
	orderRepo := NewOrderRepository(tx)
	txRepo := NewTransactionRepository(tx)

	if err := fn(budgetRepo, orderRepo, txRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
