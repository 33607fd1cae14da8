package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Luiz-H456/botezini/internal/application/dto"
	"github.com/Luiz-H456/botezini/internal/application/session"
)

// SessionHandler expõe a guarda de sessão por usuário: checagem, navegação
// com confinamento por papel e logout.
type SessionHandler struct {
	registry *session.Registry
}

// NewSessionHandler constrói o handler de sessão.
func NewSessionHandler(registry *session.Registry) *SessionHandler {
	return &SessionHandler{registry: registry}
}

// Check revalida a sessão no colaborador de auth e devolve a fotografia.
// Idempotente: o front chama na abertura e após o login.
func (h *SessionHandler) Check(c *fiber.Ctx) error {
	guard := h.registry.ForUser(GetUserID(c))
	guard.CheckSession(c.Context())
	return c.JSON(snapshot(guard, false))
}

// Get devolve a fotografia corrente sem revalidar, consumindo o termo de
// busca pendente (entrega única à visão destino).
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	guard := h.registry.ForUser(GetUserID(c))
	return c.JSON(snapshot(guard, true))
}

// Navigate pede uma troca de visão. Destino vetado pela política (factory
// fora de produção) não é erro: a resposta traz a visão que valeu.
func (h *SessionHandler) Navigate(c *fiber.Ctx) error {
	var in dto.NavigateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	guard := h.registry.ForUser(GetUserID(c))
	guard.Navigate(session.View(in.View), in.SearchTerm)
	return c.JSON(snapshot(guard, false))
}

// Logout encerra a sessão incondicionalmente e descarta a guarda.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	userID := GetUserID(c)
	guard := h.registry.ForUser(userID)
	guard.Logout(c.Context())
	h.registry.Drop(userID)
	return c.SendStatus(fiber.StatusNoContent)
}

func snapshot(g *session.Guard, consumeSearch bool) dto.SessionStateResponse {
	out := dto.SessionStateResponse{
		State: stateLabel(g.State()),
		View:  string(g.CurrentView()),
	}
	if p := g.Profile(); p != nil {
		out.Role = p.Role
		out.RoleLabel = session.RoleLabel(p.Role)
		out.UserName = p.FullName
	}
	if consumeSearch {
		out.SearchTerm = g.ConsumeSearchTerm()
	}
	return out
}

func stateLabel(s session.State) string {
	switch s {
	case session.StateAuthenticated:
		return "authenticated"
	case session.StateUnauthenticated:
		return "unauthenticated"
	}
	return "loading"
}
