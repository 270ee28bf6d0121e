package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorone/estoque-api/internal/application/stock"
)

// AdminHandler operações administrativas (somente diretor).
type AdminHandler struct {
	svc *stock.Service
}

func NewAdminHandler(svc *stock.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// Reset godoc
// @Summary      Restaurar a base para a semente
// @Description  Descarta todas as coleções e regrava os dados iniciais. Irreversível.
// @Tags         admin
// @Security     Bearer
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/reset [post]
func (h *AdminHandler) Reset(c *fiber.Ctx) error {
	h.svc.Reset(c.Context())
	return c.SendStatus(fiber.StatusNoContent)
}
