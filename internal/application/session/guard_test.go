package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luiz-H456/botezini/internal/application/session"
	"github.com/Luiz-H456/botezini/internal/domain/entity"
)

// fakeAuth simula o colaborador externo de autenticação.
type fakeAuth struct {
	mu       sync.Mutex
	profile  *session.Profile
	err      error
	signOuts int
	// gate, quando não-nil, segura GetCurrentProfile até ser fechado —
	// permite simular respostas atrasadas. started sinaliza que a chamada
	// presa já entrou no colaborador.
	gate    chan struct{}
	started chan struct{}
}

func (f *fakeAuth) GetCurrentProfile(ctx context.Context) (*session.Profile, error) {
	f.mu.Lock()
	gate := f.gate
	started := f.started
	f.started = nil
	f.mu.Unlock()
	if started != nil {
		close(started)
	}
	if gate != nil {
		<-gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.profile, f.err
}

func (f *fakeAuth) SignOut(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signOuts++
	return nil
}

func (f *fakeAuth) set(p *session.Profile, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profile = p
	f.err = err
}

func adminProfile() *session.Profile {
	return &session.Profile{ID: "u1", Email: "ana@botezini.com.br", FullName: "Ana", Role: entity.RoleAdmin}
}

func factoryProfile() *session.Profile {
	return &session.Profile{ID: "u2", Email: "fabrica@botezini.com.br", FullName: "Beto", Role: entity.RoleFactory}
}

// ─────────────────────────────────────────────────────────────────────────────
// CheckSession
// ─────────────────────────────────────────────────────────────────────────────

func TestCheckSession_AdminVaiParaDashboard(t *testing.T) {
	auth := &fakeAuth{profile: adminProfile()}
	g := session.NewGuard(auth)

	require.Equal(t, session.StateLoading, g.State())
	g.CheckSession(context.Background())

	assert.Equal(t, session.StateAuthenticated, g.State())
	assert.Equal(t, session.ViewDashboard, g.CurrentView())
	assert.Equal(t, entity.RoleAdmin, g.Role())
}

func TestCheckSession_FactoryVaiParaProducao(t *testing.T) {
	auth := &fakeAuth{profile: factoryProfile()}
	g := session.NewGuard(auth)

	g.CheckSession(context.Background())

	assert.Equal(t, session.StateAuthenticated, g.State())
	assert.Equal(t, session.ViewProduction, g.CurrentView())
}

func TestCheckSession_SemPerfilForcaLogin(t *testing.T) {
	auth := &fakeAuth{}
	g := session.NewGuard(auth)

	g.CheckSession(context.Background())

	assert.Equal(t, session.StateUnauthenticated, g.State())
	assert.Equal(t, session.ViewLogin, g.CurrentView())
	assert.Nil(t, g.Profile())
}

func TestCheckSession_FalhaDegradaParaLogin(t *testing.T) {
	auth := &fakeAuth{err: errors.New("timeout")}
	g := session.NewGuard(auth)

	g.CheckSession(context.Background())

	assert.Equal(t, session.StateUnauthenticated, g.State())
	assert.Equal(t, session.ViewLogin, g.CurrentView())
}

// Idempotência: repetir CheckSession não mexe na visão corrente fora do login.
func TestCheckSession_IdempotentePreservaVisao(t *testing.T) {
	auth := &fakeAuth{profile: adminProfile()}
	g := session.NewGuard(auth)

	g.CheckSession(context.Background())
	g.Navigate(session.ViewFinance, "")
	g.CheckSession(context.Background())

	assert.Equal(t, session.ViewFinance, g.CurrentView())
}

// Resposta atrasada de um CheckSession antigo não sobrescreve a mais nova
// (política de token de sequência: a última chamada vence).
func TestCheckSession_RespostaAtrasadaDescartada(t *testing.T) {
	auth := &fakeAuth{
		profile: adminProfile(),
		gate:    make(chan struct{}),
		started: make(chan struct{}),
	}
	g := session.NewGuard(auth)

	started := auth.started
	stale := make(chan struct{})
	go func() {
		g.CheckSession(context.Background()) // fica presa no gate
		close(stale)
	}()
	<-started // garante que a chamada velha já tomou seu token

	// Segunda chamada, mais nova, responde primeiro com sessão inválida.
	auth.mu.Lock()
	gate := auth.gate
	auth.gate = nil
	auth.mu.Unlock()
	auth.set(nil, nil)
	g.CheckSession(context.Background())
	require.Equal(t, session.StateUnauthenticated, g.State())

	// Libera a resposta velha (com perfil admin): deve ser ignorada.
	auth.set(adminProfile(), nil)
	close(gate)
	<-stale

	assert.Equal(t, session.StateUnauthenticated, g.State())
	assert.Equal(t, session.ViewLogin, g.CurrentView())
}

// ─────────────────────────────────────────────────────────────────────────────
// Navigate
// ─────────────────────────────────────────────────────────────────────────────

func TestNavigate_AdminNavegaLivremente(t *testing.T) {
	auth := &fakeAuth{profile: adminProfile()}
	g := session.NewGuard(auth)
	g.CheckSession(context.Background())

	for _, v := range []session.View{
		session.ViewFinance, session.ViewBudgets, session.ViewOrders,
		session.ViewProduction, session.ViewMasterData, session.ViewDashboard,
	} {
		g.Navigate(v, "")
		assert.Equal(t, v, g.CurrentView())
	}
}

// Para factory, navegar para fora de produção é no-op silencioso: o teste
// afirma ausência de mudança de estado, não presença de erro.
func TestNavigate_FactoryBloqueadoEmSilencio(t *testing.T) {
	auth := &fakeAuth{profile: factoryProfile()}
	g := session.NewGuard(auth)
	g.CheckSession(context.Background())

	g.Navigate(session.ViewDashboard, "")
	assert.Equal(t, session.ViewProduction, g.CurrentView())

	g.Navigate(session.ViewFinance, "relatório")
	assert.Equal(t, session.ViewProduction, g.CurrentView())
	assert.Empty(t, g.ConsumeSearchTerm(), "navegação bloqueada não pode carregar busca")

	g.Navigate(session.ViewProduction, "")
	assert.Equal(t, session.ViewProduction, g.CurrentView())
}

func TestNavigate_TermoDeBuscaConsumidoUmaVez(t *testing.T) {
	auth := &fakeAuth{profile: adminProfile()}
	g := session.NewGuard(auth)
	g.CheckSession(context.Background())

	g.Navigate(session.ViewOrders, "PED-2024-0007")
	assert.Equal(t, "PED-2024-0007", g.ConsumeSearchTerm())
	assert.Empty(t, g.ConsumeSearchTerm(), "segundo consumo deve vir vazio")
}

func TestNavigate_SemSessaoNaoTemEfeito(t *testing.T) {
	auth := &fakeAuth{}
	g := session.NewGuard(auth)
	g.CheckSession(context.Background())

	g.Navigate(session.ViewDashboard, "")
	assert.Equal(t, session.ViewLogin, g.CurrentView())
}

// ─────────────────────────────────────────────────────────────────────────────
// Logout
// ─────────────────────────────────────────────────────────────────────────────

func TestLogout_ResetIncondicional(t *testing.T) {
	auth := &fakeAuth{profile: adminProfile()}
	g := session.NewGuard(auth)
	g.CheckSession(context.Background())
	g.Navigate(session.ViewFinance, "fornecedor")

	g.Logout(context.Background())

	assert.Equal(t, 1, auth.signOuts)
	assert.Equal(t, session.StateUnauthenticated, g.State())
	assert.Equal(t, session.ViewLogin, g.CurrentView())
	assert.Nil(t, g.Profile())
	assert.Empty(t, g.ConsumeSearchTerm())

	// Depois do logout, navegar não tem efeito até nova autenticação.
	g.Navigate(session.ViewDashboard, "")
	assert.Equal(t, session.ViewLogin, g.CurrentView())

	// Nova autenticação reabilita a navegação.
	g.CheckSession(context.Background())
	assert.Equal(t, session.StateAuthenticated, g.State())
	g.Navigate(session.ViewBudgets, "")
	assert.Equal(t, session.ViewBudgets, g.CurrentView())
}

// ─────────────────────────────────────────────────────────────────────────────
// Registry
// ─────────────────────────────────────────────────────────────────────────────

func TestRegistry_UmaGuardPorUsuario(t *testing.T) {
	reg := session.NewRegistry(func(userID string) session.AuthService {
		return &fakeAuth{profile: adminProfile()}
	})

	g1 := reg.ForUser("u1")
	g2 := reg.ForUser("u1")
	assert.Same(t, g1, g2)

	g3 := reg.ForUser("u9")
	assert.NotSame(t, g1, g3)

	reg.Drop("u1")
	g4 := reg.ForUser("u1")
	assert.NotSame(t, g1, g4)
}

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "ADMINISTRADOR", session.RoleLabel(entity.RoleAdmin))
	assert.Equal(t, "GERENTE", session.RoleLabel(entity.RoleManager))
	assert.Equal(t, "OPERADOR", session.RoleLabel(entity.RoleFactory))
	assert.Equal(t, "COLABORADOR", session.RoleLabel(""))
}
