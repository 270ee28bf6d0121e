package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorone/estoque-api/internal/application/assistant"
	"github.com/gestorone/estoque-api/internal/application/dto"
)

// AssistantHandler trata o assistente de IA (protegido). O chat mantém uma
// conversa por colaborador autenticado; ações propostas pelo modelo exigem
// confirmação explícita antes de tocar o estoque.
type AssistantHandler struct {
	svc *assistant.Service
}

func NewAssistantHandler(svc *assistant.Service) *AssistantHandler {
	return &AssistantHandler{svc: svc}
}

// Chat godoc
// @Summary      Enviar mensagem ao assistente
// @Tags         assistente
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "Mensagem"
// @Success      200   {object}  dto.ChatReply
// @Failure      409   {object}  dto.ErrorResponse  "Ação pendente de confirmação"
// @Router       /api/assistente/chat [post]
func (h *AssistantHandler) Chat(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	reply, err := h.svc.SendMessage(c.Context(), GetUserID(c), in.Message)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(reply)
}

// Confirm godoc
// @Summary      Confirmar ação proposta pelo assistente
// @Tags         assistente
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ChatReply
// @Failure      409  {object}  dto.ErrorResponse  "Sem ação pendente"
// @Router       /api/assistente/confirmar [post]
func (h *AssistantHandler) Confirm(c *fiber.Ctx) error {
	reply, err := h.svc.ConfirmAction(c.Context(), GetUserID(c))
	if err != nil && reply == nil {
		return writeError(c, err)
	}
	// Com reply preenchido o erro é da ação, não do fluxo: o texto de
	// fechamento relata a falha ao usuário com status 200.
	return c.JSON(reply)
}

// Reject godoc
// @Summary      Rejeitar ação proposta pelo assistente
// @Tags         assistente
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ChatReply
// @Failure      409  {object}  dto.ErrorResponse  "Sem ação pendente"
// @Router       /api/assistente/rejeitar [post]
func (h *AssistantHandler) Reject(c *fiber.Ctx) error {
	reply, err := h.svc.RejectAction(c.Context(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(reply)
}

// ResetConversation godoc
// @Summary      Zerar a conversa do colaborador
// @Tags         assistente
// @Security     Bearer
// @Success      204
// @Router       /api/assistente/conversa [delete]
func (h *AssistantHandler) ResetConversation(c *fiber.Ctx) error {
	h.svc.ResetConversation(GetUserID(c))
	return c.SendStatus(fiber.StatusNoContent)
}

// SuggestSupplier godoc
// @Summary      Sugerir fornecedor para um material
// @Tags         assistente
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SuggestSupplierRequest  true  "Material"
// @Success      200   {object}  dto.SupplierSuggestion
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/assistente/sugerir-fornecedor [post]
func (h *AssistantHandler) SuggestSupplier(c *fiber.Ctx) error {
	var in dto.SuggestSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.svc.SuggestSupplier(c.Context(), in.MaterialName)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// MaterialImage godoc
// @Summary      Buscar imagem de um material
// @Description  Melhor esforço: devolve URL vazia quando a busca falha.
// @Tags         assistente
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MaterialImageRequest  true  "Material"
// @Success      200   {object}  map[string]string
// @Router       /api/assistente/imagem-material [post]
func (h *AssistantHandler) MaterialImage(c *fiber.Ctx) error {
	var in dto.MaterialImageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	url := h.svc.FindMaterialImage(c.Context(), in.MaterialName)
	return c.JSON(fiber.Map{"imageUrl": url})
}

// Forecast godoc
// @Summary      Prever faturamento do próximo mês
// @Tags         assistente
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RevenueForecast
// @Failure      400  {object}  dto.ErrorResponse  "Sem histórico de saídas"
// @Router       /api/assistente/previsao-faturamento [get]
func (h *AssistantHandler) Forecast(c *fiber.Ctx) error {
	out, err := h.svc.ForecastRevenue(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
