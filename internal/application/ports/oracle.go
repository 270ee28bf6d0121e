package ports

import (
	"context"

	"github.com/gestorone/estoque-api/internal/application/dto"
	"github.com/gestorone/estoque-api/internal/domain/entity"
)

// OracleContext é o recorte dos dados da empresa enviado como contexto ao
// modelo (prompt de sistema do chat).
type OracleContext struct {
	Materials     []entity.Material
	Movements     []entity.Movimentacao
	Collaborators []entity.Colaborador
	Partners      []entity.Parceiro
	Invoices      []entity.NotaFiscal
}

// Oracle define o porto de saída para o serviço de IA. Qualquer adaptador
// (Gemini, mock) deve implementar esta interface; aplicação e domínio só
// conhecem este contrato.
//
// Todas as chamadas são de rede e devem respeitar timeout via contexto.
// Nenhuma delas altera o ledger: ações propostas pelo modelo só viram
// movimentação depois que o chamador confirma e invoca o serviço de estoque.
type Oracle interface {
	// SuggestSupplier recomenda um parceiro para comprar o material, com
	// justificativa. O id recomendado é restringido ao conjunto de parceiros
	// informado. Erros são propagados ao chamador (visíveis ao usuário).
	SuggestSupplier(ctx context.Context, materialName string, partners []entity.Parceiro,
		movements []entity.Movimentacao, invoices []entity.NotaFiscal) (*dto.SupplierSuggestion, error)

	// FindMaterialImage busca uma URL de imagem para o material.
	// Melhor esforço: devolve vazio em qualquer falha, nunca erro.
	FindMaterialImage(ctx context.Context, materialName string) string

	// ForecastRevenue prevê o faturamento do próximo mês a partir da série.
	ForecastRevenue(ctx context.Context, monthly []dto.MonthlyRevenuePoint) (*dto.RevenueForecast, error)

	// SendMessage envia um turno do chat; a resposta é texto livre ou uma
	// chamada estruturada de registerStockMovement.
	SendMessage(ctx context.Context, history []dto.ChatMessage, message string,
		octx OracleContext) (*dto.ChatReply, error)

	// SendFunctionResult devolve ao modelo o resultado de uma ação
	// confirmada (ou rejeitada) e obtém o texto de fechamento.
	SendFunctionResult(ctx context.Context, history []dto.ChatMessage,
		pending dto.StockActionCall, resultText string, octx OracleContext) (*dto.ChatReply, error)
}
