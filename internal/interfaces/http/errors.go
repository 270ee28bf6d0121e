package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorone/estoque-api/internal/application/dto"
	"github.com/gestorone/estoque-api/internal/domain"
)

// writeError mapeia os erros de domínio para status HTTP e corpo padrão.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrMaterialNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "MATERIAL_NOT_FOUND", Message: "material não encontrado"})
	case errors.Is(err, domain.ErrCollaboratorNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "COLLABORATOR_NOT_FOUND", Message: "colaborador não encontrado"})
	case errors.Is(err, domain.ErrMovementNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "MOVEMENT_NOT_FOUND", Message: "movimentação não encontrada"})
	case errors.Is(err, domain.ErrInvoiceNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "INVOICE_NOT_FOUND", Message: "nota fiscal não encontrada"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso não encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "nome ou senha incorretos"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "permissão insuficiente"})
	case errors.Is(err, domain.ErrActionPending):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ACTION_PENDING", Message: "há uma ação aguardando confirmação"})
	case errors.Is(err, domain.ErrNoPendingAction):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_PENDING_ACTION", Message: "não há ação pendente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
