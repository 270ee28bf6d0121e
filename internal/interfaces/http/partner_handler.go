package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorone/estoque-api/internal/application/dto"
	"github.com/gestorone/estoque-api/internal/application/stock"
)

// PartnerHandler trata os parceiros fornecedores (protegido, somente leitura).
type PartnerHandler struct {
	svc *stock.Service
}

func NewPartnerHandler(svc *stock.Service) *PartnerHandler {
	return &PartnerHandler{svc: svc}
}

// List godoc
// @Summary      Listar parceiros
// @Tags         parceiros
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Parceiro
// @Router       /api/parceiros [get]
func (h *PartnerHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.svc.Partners())
}

// GetByID godoc
// @Summary      Obter parceiro por ID
// @Tags         parceiros
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do parceiro"
// @Success      200  {object}  entity.Parceiro
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parceiros/{id} [get]
func (h *PartnerHandler) GetByID(c *fiber.Ctx) error {
	p, ok := h.svc.PartnerByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "parceiro não encontrado"})
	}
	return c.JSON(p)
}
