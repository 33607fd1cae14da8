package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Luiz-H456/botezini/internal/domain/entity"
	"github.com/Luiz-H456/botezini/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)
var _ repository.CategoryRepository = (*CategoryRepo)(nil)
var _ repository.CostCenterRepository = (*CostCenterRepo)(nil)

// ── Contas bancárias ─────────────────────────────────────────────────────────

// AccountRepo implementação da porta AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	pool *pgxpool.Pool
}

// NewAccountRepository constrói o adaptador de persistência de contas.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create persiste uma nova conta.
func (r *AccountRepo) Create(a *entity.BankAccount) error {
	query := `
		INSERT INTO bank_accounts (id, name, type, bank_name, account_number, initial_balance, current_balance, currency, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(context.Background(), query,
		a.ID, a.Name, a.Type, a.BankName, a.AccountNumber, a.InitialBalance, a.CurrentBalance,
		a.Currency, a.IsActive, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bank account: %w", err)
	}
	return nil
}

// GetByID obtém uma conta por ID, ou nil.
func (r *AccountRepo) GetByID(id string) (*entity.BankAccount, error) {
	query := `
		SELECT id, name, type, bank_name, account_number, initial_balance, current_balance, currency, is_active, created_at, updated_at
		FROM bank_accounts WHERE id = $1`
	var a entity.BankAccount
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Name, &a.Type, &a.BankName, &a.AccountNumber, &a.InitialBalance, &a.CurrentBalance,
		&a.Currency, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bank account by id: %w", err)
	}
	return &a, nil
}

// List lista todas as contas, por nome.
func (r *AccountRepo) List() ([]*entity.BankAccount, error) {
	query := `
		SELECT id, name, type, bank_name, account_number, initial_balance, current_balance, currency, is_active, created_at, updated_at
		FROM bank_accounts ORDER BY name`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list bank accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.BankAccount
	for rows.Next() {
		var a entity.BankAccount
		if err := rows.Scan(&a.ID, &a.Name, &a.Type, &a.BankName, &a.AccountNumber, &a.InitialBalance, &a.CurrentBalance, &a.Currency, &a.IsActive, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bank account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update atualiza uma conta.
func (r *AccountRepo) Update(a *entity.BankAccount) error {
	query := `
		UPDATE bank_accounts SET name = $2, type = $3, bank_name = $4, account_number = $5,
			initial_balance = $6, current_balance = $7, currency = $8, is_active = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		a.ID, a.Name, a.Type, a.BankName, a.AccountNumber,
		a.InitialBalance, a.CurrentBalance, a.Currency, a.IsActive, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update bank account: %w", err)
	}
	return nil
}

// ── Categorias financeiras ───────────────────────────────────────────────────

// CategoryRepo implementação da porta CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository constrói o adaptador de persistência de categorias.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

// Create persiste uma nova categoria.
func (r *CategoryRepo) Create(c *entity.FinancialCategory) error {
	query := `
		INSERT INTO financial_categories (id, name, type, parent_id, code, is_deductible, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, c.Name, c.Type, c.ParentID, c.Code, c.IsDeductible, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtém uma categoria por ID, ou nil.
func (r *CategoryRepo) GetByID(id string) (*entity.FinancialCategory, error) {
	query := `
		SELECT id, name, type, parent_id, code, is_deductible, created_at, updated_at
		FROM financial_categories WHERE id = $1`
	var c entity.FinancialCategory
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Type, &c.ParentID, &c.Code, &c.IsDeductible, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by id: %w", err)
	}
	return &c, nil
}

// List lista todas as categorias, por código e nome.
func (r *CategoryRepo) List() ([]*entity.FinancialCategory, error) {
	query := `
		SELECT id, name, type, parent_id, code, is_deductible, created_at, updated_at
		FROM financial_categories ORDER BY code, name`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.FinancialCategory
	for rows.Next() {
		var c entity.FinancialCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.ParentID, &c.Code, &c.IsDeductible, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update atualiza uma categoria.
func (r *CategoryRepo) Update(c *entity.FinancialCategory) error {
	query := `
		UPDATE financial_categories SET name = $2, type = $3, parent_id = $4, code = $5, is_deductible = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, c.Name, c.Type, c.ParentID, c.Code, c.IsDeductible, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete remove uma categoria por ID.
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM financial_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// ── Centros de custo ─────────────────────────────────────────────────────────

// CostCenterRepo implementação da porta CostCenterRepository sobre PostgreSQL.
type CostCenterRepo struct {
	pool *pgxpool.Pool
}

// NewCostCenterRepository constrói o adaptador de persistência de centros de custo.
func NewCostCenterRepository(pool *pgxpool.Pool) *CostCenterRepo {
	return &CostCenterRepo{pool: pool}
}

// Create persiste um novo centro de custo.
func (r *CostCenterRepo) Create(cc *entity.CostCenter) error {
	query := `
		INSERT INTO cost_centers (id, name, type, color, budget_limit, is_active, categories, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		cc.ID, cc.Name, cc.Type, cc.Color, cc.BudgetLimit, cc.IsActive, cc.Categories,
		cc.CreatedAt, cc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cost center: %w", err)
	}
	return nil
}

// GetByID obtém um centro de custo por ID, ou nil.
func (r *CostCenterRepo) GetByID(id string) (*entity.CostCenter, error) {
	query := `
		SELECT id, name, type, color, budget_limit, is_active, categories, created_at, updated_at
		FROM cost_centers WHERE id = $1`
	var cc entity.CostCenter
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&cc.ID, &cc.Name, &cc.Type, &cc.Color, &cc.BudgetLimit, &cc.IsActive, &cc.Categories,
		&cc.CreatedAt, &cc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cost center by id: %w", err)
	}
	return &cc, nil
}

// List lista todos os centros de custo, por nome.
func (r *CostCenterRepo) List() ([]*entity.CostCenter, error) {
	query := `
		SELECT id, name, type, color, budget_limit, is_active, categories, created_at, updated_at
		FROM cost_centers ORDER BY name`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list cost centers: %w", err)
	}
	defer rows.Close()
	var list []*entity.CostCenter
	for rows.Next() {
		var cc entity.CostCenter
		if err := rows.Scan(&cc.ID, &cc.Name, &cc.Type, &cc.Color, &cc.BudgetLimit, &cc.IsActive, &cc.Categories, &cc.CreatedAt, &cc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cost center: %w", err)
		}
		list = append(list, &cc)
	}
	return list, rows.Err()
}

// Update atualiza um centro de custo.
func (r *CostCenterRepo) Update(cc *entity.CostCenter) error {
	query := `
		UPDATE cost_centers SET name = $2, type = $3, color = $4, budget_limit = $5,
			is_active = $6, categories = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		cc.ID, cc.Name, cc.Type, cc.Color, cc.BudgetLimit, cc.IsActive, cc.Categories, cc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cost center: %w", err)
	}
	return nil
}
