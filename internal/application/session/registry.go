package session

import "sync"

// Registry mantém uma Guard por usuário autenticado, para a camada HTTP
// expor o estado de navegação da sessão. As guards são criadas sob demanda e
// descartadas no logout.
type Registry struct {
	newAuth func(userID string) AuthService

	mu     sync.Mutex
	guards map[string]*Guard
}

// NewRegistry cria o registro. newAuth fabrica o colaborador de auth
// amarrado a um usuário específico.
func NewRegistry(newAuth func(userID string) AuthService) *Registry {
	return &Registry{
		newAuth: newAuth,
		guards:  make(map[string]*Guard),
	}
}

// ForUser devolve a guard do usuário, criando uma nova (em Loading) se ainda
// não existir.
func (r *Registry) ForUser(userID string) *Guard {
	r.mu.Lock()
	defer r.mu.Unlock()
	if g, ok := r.guards[userID]; ok {
		return g
	}
	g := NewGuard(r.newAuth(userID))
	r.guards[userID] = g
	return g
}

// Drop remove a guard do usuário (após logout).
func (r *Registry) Drop(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.guards, userID)
}
