package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Luiz-H456/botezini/internal/domain"
	"github.com/Luiz-H456/botezini/internal/domain/entity"
	"github.com/Luiz-H456/botezini/internal/domain/repository"
)

var _ repository.BudgetRepository = (*BudgetRepo)(nil)

// BudgetRepo implementação da porta BudgetRepository sobre PostgreSQL.
// Itens, personalizações e extras vivem em colunas JSONB: o agregado é lido
// e gravado inteiro, nunca linha a linha.
type BudgetRepo struct {
	db Querier
}

// NewBudgetRepository constrói o adaptador; db pode ser pool ou transação.
func NewBudgetRepository(db Querier) *BudgetRepo {
	return &BudgetRepo{db: db}
}

const budgetColumns = `
	id, serial_number, client_id, issue_date, items, customizations, extras,
	subtotal_items, subtotal_customizations, subtotal_extras, discount, total_amount,
	down_payment_percent, down_payment_value, delivery_payment_value,
	validity_days, delivery_time_days, notes, status, generated_order_number,
	created_at, updated_at`

// Create persiste um novo orçamento.
func (r *BudgetRepo) Create(b *entity.Budget) error {
	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.db.Exec(context.Background(), query,
		b.ID, b.SerialNumber, b.ClientID, b.Date, b.Items, b.Customizations, b.Extras,
		b.SubtotalItems, b.SubtotalCustomizations, b.SubtotalExtras, b.Discount, b.TotalAmount,
		b.DownPaymentPercent, b.DownPaymentValue, b.DeliveryPaymentValue,
		b.ValidityDays, b.DeliveryTimeDays, b.Notes, b.Status, b.GeneratedOrderNumber,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert budget: %w", err)
	}
	return nil
}

// GetByID obtém um orçamento por ID, ou nil.
func (r *BudgetRepo) GetByID(id string) (*entity.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE id = $1`
	b, err := scanBudget(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get budget by id: %w", err)
	}
	return b, nil
}

// List lista orçamentos, mais recentes primeiro. limit <= 0 lista todos.
func (r *BudgetRepo) List(limit, offset int) ([]*entity.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets ORDER BY serial_number DESC LIMIT NULLIF($1, 0) OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Budget
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Update atualiza um orçamento (agregado inteiro).
func (r *BudgetRepo) Update(b *entity.Budget) error {
	query := `
		UPDATE budgets SET
			client_id = $2, issue_date = $3, items = $4, customizations = $5, extras = $6,
			subtotal_items = $7, subtotal_customizations = $8, subtotal_extras = $9,
			discount = $10, total_amount = $11,
			down_payment_percent = $12, down_payment_value = $13, delivery_payment_value = $14,
			validity_days = $15, delivery_time_days = $16, notes = $17, status = $18,
			generated_order_number = $19, updated_at = $20
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		b.ID, b.ClientID, b.Date, b.Items, b.Customizations, b.Extras,
		b.SubtotalItems, b.SubtotalCustomizations, b.SubtotalExtras,
		b.Discount, b.TotalAmount,
		b.DownPaymentPercent, b.DownPaymentValue, b.DeliveryPaymentValue,
		b.ValidityDays, b.DeliveryTimeDays, b.Notes, b.Status,
		b.GeneratedOrderNumber, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update budget: %w", err)
	}
	return nil
}

// Delete remove um orçamento por ID.
func (r *BudgetRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM budgets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	return nil
}

// NextSerial incrementa e devolve o sequencial anual de orçamentos.
func (r *BudgetRepo) NextSerial(year int) (int, error) {
	return nextSerial(r.db, "budget", year)
}

// nextSerial faz o upsert atômico do contador (kind, year) e devolve o novo
// valor. Dentro de transação, serializa emissões concorrentes pelo lock de
// linha.
func nextSerial(db Querier, kind string, year int) (int, error) {
	query := `
		INSERT INTO serial_counters (kind, year, seq) VALUES ($1, $2, 1)
		ON CONFLICT (kind, year) DO UPDATE SET seq = serial_counters.seq + 1
		RETURNING seq`
	var seq int
	if err := db.QueryRow(context.Background(), query, kind, year).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next serial %s/%d: %w", kind, year, err)
	}
	return seq, nil
}

func scanBudget(row pgx.Row) (*entity.Budget, error) {
	var b entity.Budget
	err := row.Scan(
		&b.ID, &b.SerialNumber, &b.ClientID, &b.Date, &b.Items, &b.Customizations, &b.Extras,
		&b.SubtotalItems, &b.SubtotalCustomizations, &b.SubtotalExtras, &b.Discount, &b.TotalAmount,
		&b.DownPaymentPercent, &b.DownPaymentValue, &b.DeliveryPaymentValue,
		&b.ValidityDays, &b.DeliveryTimeDays, &b.Notes, &b.Status, &b.GeneratedOrderNumber,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
