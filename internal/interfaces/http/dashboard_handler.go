package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorone/estoque-api/internal/application/analytics"
)

// DashboardHandler trata o painel de indicadores (protegido).
type DashboardHandler struct {
	svc *analytics.Service
}

func NewDashboardHandler(svc *analytics.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Summary godoc
// @Summary      Resumo do painel
// @Tags         painel
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummary
// @Router       /api/painel [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.svc.Summary(time.Now()))
}
