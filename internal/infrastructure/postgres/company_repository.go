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

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo persiste o cadastro único da empresa.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository constrói o adaptador de persistência do perfil.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// Get devolve o perfil da empresa, ou nil se ainda não foi preenchido.
func (r *CompanyRepo) Get() (*entity.CompanyProfile, error) {
	query := `
		SELECT id, name, cnpj, email, phone, address, website, logo_url,
		       bank_name, bank_agency, bank_account, bank_holder, pix_key,
		       default_tax_rate, revenue_goal, expense_limit, created_at, updated_at
		FROM company_profile LIMIT 1`
	var c entity.CompanyProfile
	err := r.pool.QueryRow(context.Background(), query).Scan(
		&c.ID, &c.Name, &c.CNPJ, &c.Email, &c.Phone, &c.Address, &c.Website, &c.LogoURL,
		&c.BankName, &c.BankAgency, &c.BankAccount, &c.BankHolder, &c.PixKey,
		&c.DefaultTaxRate, &c.RevenueGoal, &c.ExpenseLimit, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company profile: %w", err)
	}
	return &c, nil
}

// Save cria ou substitui o perfil (upsert do registro único).
func (r *CompanyRepo) Save(c *entity.CompanyProfile) error {
	query := `
		INSERT INTO company_profile (
			id, name, cnpj, email, phone, address, website, logo_url,
			bank_name, bank_agency, bank_account, bank_holder, pix_key,
			default_tax_rate, revenue_goal, expense_limit, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, cnpj = EXCLUDED.cnpj, email = EXCLUDED.email,
			phone = EXCLUDED.phone, address = EXCLUDED.address, website = EXCLUDED.website,
			logo_url = EXCLUDED.logo_url, bank_name = EXCLUDED.bank_name,
			bank_agency = EXCLUDED.bank_agency, bank_account = EXCLUDED.bank_account,
			bank_holder = EXCLUDED.bank_holder, pix_key = EXCLUDED.pix_key,
			default_tax_rate = EXCLUDED.default_tax_rate, revenue_goal = EXCLUDED.revenue_goal,
			expense_limit = EXCLUDED.expense_limit, updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, c.Name, c.CNPJ, c.Email, c.Phone, c.Address, c.Website, c.LogoURL,
		c.BankName, c.BankAgency, c.BankAccount, c.BankHolder, c.PixKey,
		c.DefaultTaxRate, c.RevenueGoal, c.ExpenseLimit, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save company profile: %w", err)
	}
	return nil
}
