package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorone/estoque-api/internal/application/dto"
	"github.com/gestorone/estoque-api/internal/application/stock"
	"github.com/gestorone/estoque-api/internal/domain/entity"
)

// CollaboratorHandler trata colaboradores e papéis (protegido).
type CollaboratorHandler struct {
	svc *stock.Service
}

func NewCollaboratorHandler(svc *stock.Service) *CollaboratorHandler {
	return &CollaboratorHandler{svc: svc}
}

// sanitized remove o hash de senha da resposta.
func sanitized(cols []entity.Colaborador) []entity.Colaborador {
	out := make([]entity.Colaborador, len(cols))
	for i, c := range cols {
		c.PasswordHash = ""
		out[i] = c
	}
	return out
}

// List godoc
// @Summary      Listar colaboradores
// @Tags         colaboradores
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Colaborador
// @Router       /api/colaboradores [get]
func (h *CollaboratorHandler) List(c *fiber.Ctx) error {
	return c.JSON(sanitized(h.svc.Collaborators()))
}

// UpdateRole godoc
// @Summary      Trocar papel de colaborador
// @Tags         colaboradores
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID do colaborador"
// @Param        body  body  dto.RoleUpdateRequest  true  "Novo papel"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/colaboradores/{id}/papel [patch]
func (h *CollaboratorHandler) UpdateRole(c *fiber.Ctx) error {
	var in dto.RoleUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if !entity.ValidRole(in.Role) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "papel deve ser operador, gerente, diretor ou visitante"})
	}
	if err := h.svc.UpdateCollaboratorRole(c.Context(), c.Params("id"), in.Role); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
