package repository

import "github.com/Luiz-H456/botezini/internal/domain/entity"

// UserRepository define a porta de persistência de User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
}
