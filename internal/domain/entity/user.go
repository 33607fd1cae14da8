package entity

import "time"

// Papéis válidos para User. O papel factory (operador de fábrica) fica
// confinado à visão de produção em toda a aplicação.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleFactory = "factory"
)

// ValidRole reporta se o papel é um dos três aceitos.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleManager || role == RoleFactory
}

// User representa um usuário do sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca plano no domínio após persistir
	FullName     string
	Role         string // admin, manager, factory
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
