package repository

import "github.com/Luiz-H456/botezini/internal/domain/entity"

// TransactionRepository define a porta de persistência de lançamentos.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	// List devolve lançamentos ordenados por competência decrescente.
	List(limit, offset int) ([]*entity.Transaction, error)
	ListByRecurrence(recurrenceID string) ([]*entity.Transaction, error)
	Update(tx *entity.Transaction) error
	Delete(id string) error
}

// AccountRepository define a porta de persistência de contas bancárias.
type AccountRepository interface {
	Create(account *entity.BankAccount) error
	GetByID(id string) (*entity.BankAccount, error)
	List() ([]*entity.BankAccount, error)
	Update(account *entity.BankAccount) error
}

// CategoryRepository define a porta de persistência de categorias financeiras.
type CategoryRepository interface {
	Create(category *entity.FinancialCategory) error
	GetByID(id string) (*entity.FinancialCategory, error)
	List() ([]*entity.FinancialCategory, error)
	Update(category *entity.FinancialCategory) error
	Delete(id string) error
}

// CostCenterRepository define a porta de persistência de centros de custo.
type CostCenterRepository interface {
	Create(cc *entity.CostCenter) error
	GetByID(id string) (*entity.CostCenter, error)
	List() ([]*entity.CostCenter, error)
	Update(cc *entity.CostCenter) error
}
