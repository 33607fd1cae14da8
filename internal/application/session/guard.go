// Package session implementa o estado de sessão e a guarda de navegação por
// papel: decide, para cada troca de visão pedida, se ela é permitida, e
// confina o papel factory à visão de produção.
package session

import (
	"context"
	"sync"

	"github.com/Luiz-H456/botezini/internal/domain/entity"
)

// View identifica uma visão da aplicação.
type View string

// Visões navegáveis. São destinos de navegação do front: a API só guarda qual
// visão vale para a sessão; intelligence (relatórios) renderiza no cliente com
// os dados do dashboard e não tem grupo de rotas próprio.
const (
	ViewLogin        View = "login"
	ViewDashboard    View = "dashboard"
	ViewFinance      View = "finance"
	ViewBudgets      View = "budgets"
	ViewOrders       View = "orders"
	ViewProduction   View = "production"
	ViewMasterData   View = "masterdata"
	ViewIntelligence View = "intelligence"
)

// State é o estado de autenticação da sessão.
type State int

// Ciclo: Loading → Authenticated | Unauthenticated; Authenticated →
// Unauthenticated em logout ou falha de recheck.
const (
	StateLoading State = iota
	StateAuthenticated
	StateUnauthenticated
)

// Profile é o perfil mínimo que a guarda precisa conhecer.
type Profile struct {
	ID       string
	Email    string
	FullName string
	Role     string // entity.RoleAdmin | RoleManager | RoleFactory
}

// AuthService é o colaborador externo de autenticação. GetCurrentProfile
// devolve nil (sem erro) quando não há sessão válida.
type AuthService interface {
	GetCurrentProfile(ctx context.Context) (*Profile, error)
	SignOut(ctx context.Context) error
}

// Guard mantém o estado de uma sessão e aplica a política de navegação.
// Toda mutação passa por CheckSession, Navigate e Logout; as visões só leem.
//
// Diferente do front original (event loop único), handlers HTTP são
// concorrentes: o mutex serializa as mutações.
type Guard struct {
	auth AuthService

	mu         sync.Mutex
	state      State
	profile    *Profile
	view       View
	searchTerm string
	// seq descarta respostas atrasadas de CheckSession: só a chamada mais
	// recente pode aplicar o resultado (última vence).
	seq uint64
}

// NewGuard cria a guarda no estado Loading, na visão de login, pendente do
// primeiro CheckSession.
func NewGuard(auth AuthService) *Guard {
	return &Guard{
		auth:  auth,
		state: StateLoading,
		view:  ViewLogin,
	}
}

// CheckSession consulta o colaborador de auth e atualiza o estado.
// Idempotente: seguro chamar repetidamente (após login e na abertura do app).
// Qualquer falha degrada para Unauthenticated/login, nunca propaga erro.
func (g *Guard) CheckSession(ctx context.Context) {
	g.mu.Lock()
	g.seq++
	token := g.seq
	g.mu.Unlock()

	profile, err := g.auth.GetCurrentProfile(ctx)

	g.mu.Lock()
	defer g.mu.Unlock()
	if token != g.seq {
		// Uma chamada mais recente já respondeu; esta resposta está velha.
		return
	}

	if err != nil || profile == nil {
		g.state = StateUnauthenticated
		g.profile = nil
		g.view = ViewLogin
		return
	}

	g.state = StateAuthenticated
	g.profile = profile
	// Visão inicial conforme o papel, só ao sair da tela de login.
	if g.view == ViewLogin {
		if profile.Role == entity.RoleFactory {
			g.view = ViewProduction
		} else {
			g.view = ViewDashboard
		}
	}
}

// Navigate troca a visão corrente. Para o papel factory, qualquer destino
// diferente de produção é descartado em silêncio: sem erro, sem mudança de
// estado. O searchTerm opcional fica guardado para a visão destino consumir
// uma única vez.
func (g *Guard) Navigate(target View, searchTerm string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateAuthenticated {
		return
	}
	if g.profile != nil && g.profile.Role == entity.RoleFactory && target != ViewProduction {
		return // bloqueio por política, não por erro
	}
	g.view = target
	if searchTerm != "" {
		g.searchTerm = searchTerm
	}
}

// ConsumeSearchTerm devolve o termo de busca carregado pela navegação e o
// limpa (consumo único pela visão destino).
func (g *Guard) ConsumeSearchTerm() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	term := g.searchTerm
	g.searchTerm = ""
	return term
}

// Logout chama o colaborador de sign-out e, independente do resultado,
// reseta para Unauthenticated/login limpando papel e perfil.
func (g *Guard) Logout(ctx context.Context) {
	_ = g.auth.SignOut(ctx)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++ // invalida qualquer CheckSession em voo
	g.state = StateUnauthenticated
	g.profile = nil
	g.view = ViewLogin
	g.searchTerm = ""
}

// CurrentView devolve a visão a renderizar. Segunda camada da restrição de
// fábrica: mesmo que o estado de navegação tenha sido corrompido, o papel
// factory sempre resolve para produção antes do despacho por visão.
func (g *Guard) CurrentView() View {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateAuthenticated {
		return ViewLogin
	}
	if g.profile != nil && g.profile.Role == entity.RoleFactory {
		return ViewProduction
	}
	return g.view
}

// State devolve o estado de autenticação corrente.
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Profile devolve uma cópia do perfil autenticado, ou nil.
func (g *Guard) Profile() *Profile {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.profile == nil {
		return nil
	}
	p := *g.profile
	return &p
}

// Role devolve o papel da sessão, ou vazio quando não autenticada.
func (g *Guard) Role() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.profile == nil {
		return ""
	}
	return g.profile.Role
}

// RoleLabel devolve o rótulo pt-BR do papel para exibição.
func RoleLabel(role string) string {
	switch role {
	case entity.RoleAdmin:
		return "ADMINISTRADOR"
	case entity.RoleManager:
		return "GERENTE"
	case entity.RoleFactory:
		return "OPERADOR"
	}
	return "COLABORADOR"
}
