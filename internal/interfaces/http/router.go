package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorone/estoque-api/internal/application/analytics"
	"github.com/gestorone/estoque-api/internal/application/assistant"
	"github.com/gestorone/estoque-api/internal/application/auth"
	"github.com/gestorone/estoque-api/internal/application/billing"
	"github.com/gestorone/estoque-api/internal/application/stock"
	"github.com/gestorone/estoque-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	StockSvc     *stock.Service
	AuthSvc      *auth.Service
	AnalyticsSvc *analytics.Service
	AssistantSvc *assistant.Service
	BillingSvc   *billing.Service
	JWTSecret    string
}

// Router registra as rotas da API.
//
// Leitura é liberada para qualquer papel autenticado (inclusive visitante);
// escrita no estoque exige gerente ou diretor; administração é só diretor.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthSvc)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	canWrite := RequireRole(entity.RoleGerente, entity.RoleDiretor)

	// Materiais
	materials := protected.Group("/materiais")
	materialHandler := NewMaterialHandler(deps.StockSvc)
	materials.Get("/", materialHandler.List)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Post("/", canWrite, materialHandler.Create)
	materials.Put("/lote", canWrite, materialHandler.UpdateBatch)
	materials.Put("/lote/valores", canWrite, materialHandler.UpdateBatchValues)
	materials.Put("/:id", canWrite, materialHandler.Update)
	materials.Delete("/:id", canWrite, materialHandler.Delete)
	materials.Patch("/:id/estoque", canWrite, materialHandler.UpdateStock)

	// Movimentações. Operador também registra; edição e exclusão reescrevem
	// o passado e ficam com gerente/diretor.
	movements := protected.Group("/movimentacoes")
	movementHandler := NewMovementHandler(deps.StockSvc)
	movements.Get("/", movementHandler.List)
	movements.Post("/", RequireRole(entity.RoleOperador, entity.RoleGerente, entity.RoleDiretor), movementHandler.Create)
	movements.Put("/:id", canWrite, movementHandler.Update)
	movements.Delete("/:id", canWrite, movementHandler.Delete)

	// Colaboradores
	collaborators := protected.Group("/colaboradores")
	collaboratorHandler := NewCollaboratorHandler(deps.StockSvc)
	collaborators.Get("/", collaboratorHandler.List)
	collaborators.Patch("/:id/papel", RequireRole(entity.RoleDiretor), collaboratorHandler.UpdateRole)

	// Parceiros
	partners := protected.Group("/parceiros")
	partnerHandler := NewPartnerHandler(deps.StockSvc)
	partners.Get("/", partnerHandler.List)
	partners.Get("/:id", partnerHandler.GetByID)

	// Notas fiscais
	invoices := protected.Group("/notas")
	invoiceHandler := NewInvoiceHandler(deps.StockSvc, deps.BillingSvc)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)

	// Painel
	dashboardHandler := NewDashboardHandler(deps.AnalyticsSvc)
	protected.Get("/painel", dashboardHandler.Summary)

	// Assistente de IA
	ai := protected.Group("/assistente")
	assistantHandler := NewAssistantHandler(deps.AssistantSvc)
	ai.Post("/chat", assistantHandler.Chat)
	ai.Post("/confirmar", assistantHandler.Confirm)
	ai.Post("/rejeitar", assistantHandler.Reject)
	ai.Delete("/conversa", assistantHandler.ResetConversation)
	ai.Post("/sugerir-fornecedor", assistantHandler.SuggestSupplier)
	ai.Post("/imagem-material", assistantHandler.MaterialImage)
	ai.Get("/previsao-faturamento", assistantHandler.Forecast)

	// Administração
	admin := protected.Group("/admin", RequireRole(entity.RoleDiretor))
	adminHandler := NewAdminHandler(deps.StockSvc)
	admin.Post("/reset", adminHandler.Reset)
}
