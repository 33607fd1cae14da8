package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Luiz-H456/botezini/internal/application/analytics"
)

// DashboardHandler trata o resumo do dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler do dashboard.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary devolve o resumo financeiro/operacional do período corrente.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}
