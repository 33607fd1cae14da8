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

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementação da porta OrderRepository sobre PostgreSQL. Mesmo
// desenho do orçamento: itens em JSONB, agregado inteiro.
type OrderRepo struct {
	db Querier
}

// NewOrderRepository constrói o adaptador; db pode ser pool ou transação.
func NewOrderRepository(db Querier) *OrderRepo {
	return &OrderRepo{db: db}
}

const orderColumns = `
	id, budget_id, budget_serial, order_number, client_id, production_stage,
	items, customizations, extras, total_amount, amount_paid, discount,
	deadline, status, payment_status, created_at, updated_at`

// Create persiste um novo pedido.
func (r *OrderRepo) Create(o *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.db.Exec(context.Background(), query,
		o.ID, o.BudgetID, o.BudgetSerial, o.OrderNumber, o.ClientID, o.ProductionStage,
		o.Items, o.Customizations, o.Extras, o.TotalAmount, o.AmountPaid, o.Discount,
		o.Deadline, o.Status, o.PaymentStatus, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtém um pedido por ID, ou nil.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := scanOrder(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	return o, nil
}

// List lista pedidos, mais recentes primeiro. limit <= 0 lista todos.
func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY order_number DESC LIMIT NULLIF($1, 0) OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByStage lista os pedidos cuja etapa consolidada é stage, mais antigos
// primeiro (ordem de chegada na coluna do Kanban).
func (r *OrderRepo) ListByStage(stage string) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE production_stage = $1 ORDER BY created_at`
	return r.list(query, stage)
}

func (r *OrderRepo) list(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// Update atualiza um pedido (agregado inteiro).
func (r *OrderRepo) Update(o *entity.Order) error {
	query := `
		UPDATE orders SET
			production_stage = $2, items = $3, customizations = $4, extras = $5,
			total_amount = $6, amount_paid = $7, discount = $8, deadline = $9,
			status = $10, payment_status = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		o.ID, o.ProductionStage, o.Items, o.Customizations, o.Extras,
		o.TotalAmount, o.AmountPaid, o.Discount, o.Deadline,
		o.Status, o.PaymentStatus, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// NextSerial incrementa e devolve o sequencial anual de pedidos.
func (r *OrderRepo) NextSerial(year int) (int, error) {
	return nextSerial(r.db, "order", year)
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID, &o.BudgetID, &o.BudgetSerial, &o.OrderNumber, &o.ClientID, &o.ProductionStage,
		&o.Items, &o.Customizations, &o.Extras, &o.TotalAmount, &o.AmountPaid, &o.Discount,
		&o.Deadline, &o.Status, &o.PaymentStatus, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
