package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Luiz-H456/botezini/internal/domain/entity"
	"github.com/Luiz-H456/botezini/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementação da porta TransactionRepository sobre PostgreSQL.
type TransactionRepo struct {
	db Querier
}

// NewTransactionRepository constrói o adaptador; db pode ser pool ou transação.
func NewTransactionRepository(db Querier) *TransactionRepo {
	return &TransactionRepo{db: db}
}

const transactionColumns = `
	id, type, description, amount, competency_date, due_date, payment_date,
	category_id, cost_center_id, account_id, reference_id, client_id, supplier_id, payee,
	is_paid, is_recurring, recurrence_id, installment_number, total_installments,
	created_at, updated_at`

// Create persiste um novo lançamento.
func (r *TransactionRepo) Create(t *entity.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.db.Exec(context.Background(), query,
		t.ID, t.Type, t.Description, t.Amount, t.Date, t.DueDate, t.PaymentDate,
		t.CategoryID, t.CostCenterID, t.AccountID, t.ReferenceID, t.ClientID, t.SupplierID, t.Payee,
		t.IsPaid, t.IsRecurring, t.RecurrenceID, t.InstallmentNumber, t.TotalInstallments,
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtém um lançamento por ID, ou nil.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	t, err := scanTransaction(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction by id: %w", err)
	}
	return t, nil
}

// List lista lançamentos por competência decrescente. limit <= 0 lista todos.
func (r *TransactionRepo) List(limit, offset int) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY competency_date DESC LIMIT NULLIF($1, 0) OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByRecurrence lista as ocorrências de uma série, em ordem de parcela.
func (r *TransactionRepo) ListByRecurrence(recurrenceID string) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE recurrence_id = $1 ORDER BY installment_number`
	return r.list(query, recurrenceID)
}

func (r *TransactionRepo) list(query string, args ...any) ([]*entity.Transaction, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update atualiza um lançamento.
func (r *TransactionRepo) Update(t *entity.Transaction) error {
	query := `
		UPDATE transactions SET
			type = $2, description = $3, amount = $4, competency_date = $5, due_date = $6,
			payment_date = $7, category_id = $8, cost_center_id = $9, account_id = $10,
			reference_id = $11, client_id = $12, supplier_id = $13, payee = $14,
			is_paid = $15, updated_at = $16
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		t.ID, t.Type, t.Description, t.Amount, t.Date, t.DueDate,
		t.PaymentDate, t.CategoryID, t.CostCenterID, t.AccountID,
		t.ReferenceID, t.ClientID, t.SupplierID, t.Payee,
		t.IsPaid, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

// Delete remove um lançamento por ID.
func (r *TransactionRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	err := row.Scan(
		&t.ID, &t.Type, &t.Description, &t.Amount, &t.Date, &t.DueDate, &t.PaymentDate,
		&t.CategoryID, &t.CostCenterID, &t.AccountID, &t.ReferenceID, &t.ClientID, &t.SupplierID, &t.Payee,
		&t.IsPaid, &t.IsRecurring, &t.RecurrenceID, &t.InstallmentNumber, &t.TotalInstallments,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
