package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorone/estoque-api/internal/application/dto"
	"github.com/gestorone/estoque-api/internal/application/stock"
	"github.com/gestorone/estoque-api/internal/domain/entity"
	"github.com/gestorone/estoque-api/internal/domain/ledger"
)

// MovementHandler trata o log de movimentações (protegido).
type MovementHandler struct {
	svc *stock.Service
}

func NewMovementHandler(svc *stock.Service) *MovementHandler {
	return &MovementHandler{svc: svc}
}

// parseDate aceita "2006-01-02" ou RFC 3339; vazio vale agora.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Now(), true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// List godoc
// @Summary      Listar movimentações
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Param        tipo  query  string  false  "Filtrar por tipo (entrada|saida|consumo)"
// @Success      200   {array}  entity.Movimentacao
// @Router       /api/movimentacoes [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	kind := entity.MovementKind(c.Query("tipo"))
	if kind != "" && !kind.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo deve ser entrada, saida ou consumo"})
	}
	return c.JSON(h.svc.Movements(kind))
}

// Create godoc
// @Summary      Registrar movimentação
// @Tags         movimentacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "Dados da movimentação"
// @Success      201   {object}  entity.Movimentacao
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	date, ok := parseDate(in.Date)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data inválida; use 2006-01-02 ou RFC 3339"})
	}
	mov, err := h.svc.AddMovement(c.Context(), ledger.MovementDraft{
		MaterialName:     in.Material,
		CollaboratorName: in.Collaborator,
		Quantity:         in.Quantity,
		Date:             date,
		InvoiceNumber:    in.InvoiceNumber,
	}, entity.MovementKind(in.Kind))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mov)
}

// Update godoc
// @Summary      Editar movimentação
// @Description  Reverte o efeito do lançamento antigo e aplica o novo, inclusive quando o material muda.
// @Tags         movimentacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da movimentação"
// @Param        body  body  dto.MovementRequest  true  "Dados atualizados"
// @Success      200   {object}  entity.Movimentacao
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes/{id} [put]
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	date, ok := parseDate(in.Date)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data inválida; use 2006-01-02 ou RFC 3339"})
	}
	kind := entity.MovementKind(in.Kind)
	if !kind.Valid() || in.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo e quantidade positiva são obrigatórios"})
	}
	mov, err := h.svc.UpdateMovement(c.Context(), entity.Movimentacao{
		ID:               c.Params("id"),
		MaterialName:     in.Material,
		CollaboratorName: in.Collaborator,
		Quantity:         in.Quantity,
		Kind:             kind,
		Date:             date,
		InvoiceNumber:    in.InvoiceNumber,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(mov)
}

// Delete godoc
// @Summary      Excluir movimentação
// @Description  Reverte o efeito do lançamento no estoque antes de removê-lo.
// @Tags         movimentacoes
// @Security     Bearer
// @Param        id  path  string  true  "ID da movimentação"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimentacoes/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.DeleteMovement(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
