package repository

import "github.com/Luiz-H456/botezini/internal/domain/entity"

// BudgetRepository define a porta de persistência de Budget.
type BudgetRepository interface {
	Create(budget *entity.Budget) error
	GetByID(id string) (*entity.Budget, error)
	List(limit, offset int) ([]*entity.Budget, error)
	Update(budget *entity.Budget) error
	Delete(id string) error
	// NextSerial devolve o próximo sequencial do ano para numerar ORC-AAAA-NNNN.
	NextSerial(year int) (int, error)
}

// OrderRepository define a porta de persistência de Order.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	List(limit, offset int) ([]*entity.Order, error)
	ListByStage(stage string) ([]*entity.Order, error)
	Update(order *entity.Order) error
	// NextSerial devolve o próximo sequencial do ano para numerar PED-AAAA-NNNN.
	NextSerial(year int) (int, error)
}
