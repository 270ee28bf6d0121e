// Package ai implementa o porto Oracle sobre o Gemini (google.golang.org/genai).
//
// O assistente usa chat com function calling: o modelo pode propor
// registerStockMovement, que o chamador confirma antes de aplicar. As
// consultas pontuais (fornecedor, previsão) usam resposta JSON com esquema.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/gestorone/estoque-api/internal/application/dto"
	"github.com/gestorone/estoque-api/internal/application/ports"
	"github.com/gestorone/estoque-api/internal/domain/entity"
	"github.com/gestorone/estoque-api/pkg/config"
	"github.com/gestorone/estoque-api/pkg/logger"
)

// callTimeout limite por chamada ao modelo.
const callTimeout = 45 * time.Second

const functionName = "registerStockMovement"

// GeminiOracle implementa ports.Oracle. O cliente é criado por chamada: a
// chave pode ser configurada depois do boot e o custo de criação é
// desprezível frente à latência do modelo.
type GeminiOracle struct {
	apiKey string
	model  string
	log    *logger.Logger
}

var _ ports.Oracle = (*GeminiOracle)(nil)

func NewGeminiOracle(cfg config.AIConfig, log *logger.Logger) *GeminiOracle {
	return &GeminiOracle{
		apiKey: cfg.GeminiAPIKey,
		model:  cfg.GeminiModel,
		log:    log,
	}
}

func (o *GeminiOracle) client(ctx context.Context) (*genai.Client, error) {
	if o.apiKey == "" {
		return nil, fmt.Errorf("oráculo indisponível: GEMINI_API_KEY não configurada")
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  o.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// ── Chat do assistente ────────────────────────────────────────────────────────

// stockFunctionDeclaration descreve registerStockMovement para o modelo.
// Os nomes dos campos espelham o contrato JSON do assistente.
func stockFunctionDeclaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name: functionName,
		Description: "Registra uma movimentação de estoque (entrada, saída ou consumo) " +
			"de um material para um colaborador. Use somente quando o usuário pedir " +
			"explicitamente para registrar; a ação só é aplicada após confirmação.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"materialName": {
					Type:        genai.TypeString,
					Description: "Nome do material exatamente como cadastrado.",
				},
				"quantity": {
					Type:        genai.TypeInteger,
					Description: "Quantidade de unidades, sempre positiva.",
				},
				"collaboratorName": {
					Type:        genai.TypeString,
					Description: "Nome do colaborador responsável.",
				},
				"type": {
					Type:        genai.TypeString,
					Description: "Tipo da movimentação.",
					Enum:        []string{"entrada", "saida", "consumo"},
				},
				"invoiceNumber": {
					Type:        genai.TypeString,
					Description: "Número da nota fiscal; apenas para entradas.",
				},
			},
			Required: []string{"materialName", "quantity", "collaboratorName", "type"},
		},
	}
}

// systemInstruction monta o prompt de sistema com o retrato das coleções.
func systemInstruction(octx ports.OracleContext) *genai.Content {
	var b strings.Builder
	b.WriteString(`Você é o assistente de estoque do Gestor One, uma revenda brasileira de
ferramentas. Responda sempre em português, de forma direta. Use os dados
abaixo como única fonte sobre o estado atual. Para registrar movimentações,
chame registerStockMovement; nunca invente materiais ou colaboradores que
não estejam cadastrados.

`)
	writeSection(&b, "MATERIAIS", octx.Materials)
	writeSection(&b, "MOVIMENTACOES_RECENTES", limit(octx.Movements, 50))
	writeSection(&b, "COLABORADORES", octx.Collaborators)
	writeSection(&b, "PARCEIROS", octx.Partners)
	writeSection(&b, "NOTAS_FISCAIS", octx.Invoices)
	return &genai.Content{Parts: []*genai.Part{{Text: b.String()}}}
}

func writeSection[T any](b *strings.Builder, name string, items []T) {
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	fmt.Fprintf(b, "%s:\n%s\n\n", name, data)
}

func limit[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// historyContents converte o histórico de turnos para o formato do SDK.
func historyContents(history []dto.ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		contents = append(contents, &genai.Content{
			Role:  msg.Role,
			Parts: []*genai.Part{{Text: msg.Text}},
		})
	}
	return contents
}

// SendMessage envia um turno do usuário; a resposta é texto ou uma chamada
// de registerStockMovement.
func (o *GeminiOracle) SendMessage(ctx context.Context, history []dto.ChatMessage,
	message string, octx ports.OracleContext) (*dto.ChatReply, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	client, err := o.client(ctx)
	if err != nil {
		return nil, err
	}

	chatConfig := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{FunctionDeclarations: []*genai.FunctionDeclaration{stockFunctionDeclaration()}},
		},
		SystemInstruction: systemInstruction(octx),
	}
	chat, err := client.Chats.Create(ctx, o.model, chatConfig, historyContents(history))
	if err != nil {
		return nil, fmt.Errorf("criar chat: %w", err)
	}

	resp, err := chat.Send(ctx, &genai.Part{Text: message})
	if err != nil {
		return nil, fmt.Errorf("enviar mensagem: %w", err)
	}
	return replyFromResponse(resp)
}

// SendFunctionResult devolve ao modelo o resultado da ação confirmada ou
// rejeitada. O turno de FunctionCall é reconstruído no histórico para o
// modelo reconhecer a FunctionResponse.
func (o *GeminiOracle) SendFunctionResult(ctx context.Context, history []dto.ChatMessage,
	pending dto.StockActionCall, resultText string, octx ports.OracleContext) (*dto.ChatReply, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	client, err := o.client(ctx)
	if err != nil {
		return nil, err
	}

	contents := historyContents(history)
	contents = append(contents, &genai.Content{
		Role: "model",
		Parts: []*genai.Part{{FunctionCall: &genai.FunctionCall{
			Name: functionName,
			Args: map[string]any{
				"materialName":     pending.MaterialName,
				"quantity":         pending.Quantity,
				"collaboratorName": pending.CollaboratorName,
				"type":             pending.Kind,
				"invoiceNumber":    pending.InvoiceNumber,
			},
		}}},
	})

	chatConfig := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{FunctionDeclarations: []*genai.FunctionDeclaration{stockFunctionDeclaration()}},
		},
		SystemInstruction: systemInstruction(octx),
	}
	chat, err := client.Chats.Create(ctx, o.model, chatConfig, contents)
	if err != nil {
		return nil, fmt.Errorf("criar chat: %w", err)
	}

	resp, err := chat.Send(ctx, &genai.Part{FunctionResponse: &genai.FunctionResponse{
		Name:     functionName,
		Response: map[string]any{"output": resultText},
	}})
	if err != nil {
		return nil, fmt.Errorf("enviar resultado da função: %w", err)
	}
	return replyFromResponse(resp)
}

// replyFromResponse extrai texto ou chamada de função do primeiro candidato.
func replyFromResponse(resp *genai.GenerateContentResponse) (*dto.ChatReply, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("resposta vazia do modelo")
	}
	part := resp.Candidates[0].Content.Parts[0]
	if part.FunctionCall != nil {
		call, err := actionFromArgs(part.FunctionCall.Args)
		if err != nil {
			return nil, err
		}
		return &dto.ChatReply{FunctionCall: call}, nil
	}
	return &dto.ChatReply{Text: part.Text}, nil
}

// actionFromArgs converte os argumentos soltos da FunctionCall no DTO. O
// modelo às vezes manda quantity como float; a conversão aceita os dois.
func actionFromArgs(args map[string]any) (*dto.StockActionCall, error) {
	call := &dto.StockActionCall{}
	var ok bool
	if call.MaterialName, ok = args["materialName"].(string); !ok {
		return nil, fmt.Errorf("chamada de função sem materialName")
	}
	if call.CollaboratorName, ok = args["collaboratorName"].(string); !ok {
		return nil, fmt.Errorf("chamada de função sem collaboratorName")
	}
	if call.Kind, ok = args["type"].(string); !ok {
		return nil, fmt.Errorf("chamada de função sem type")
	}
	switch q := args["quantity"].(type) {
	case float64:
		call.Quantity = int64(q)
	case int64:
		call.Quantity = q
	default:
		return nil, fmt.Errorf("chamada de função sem quantity numérico")
	}
	if inv, ok := args["invoiceNumber"].(string); ok {
		call.InvoiceNumber = inv
	}
	return call, nil
}

// ── Consultas pontuais ────────────────────────────────────────────────────────

// SuggestSupplier pede uma recomendação de parceiro restrita, via enum no
// esquema de resposta, aos ids cadastrados.
func (o *GeminiOracle) SuggestSupplier(ctx context.Context, materialName string,
	partners []entity.Parceiro, movements []entity.Movimentacao,
	invoices []entity.NotaFiscal) (*dto.SupplierSuggestion, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	client, err := o.client(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(partners))
	for _, p := range partners {
		ids = append(ids, p.ID)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("nenhum parceiro cadastrado para recomendar")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Recomende o melhor parceiro para comprar o material %q, "+
		"considerando histórico de compras e proximidade. Justifique em uma frase, "+
		"em português.\n\n", materialName)
	writeSection(&b, "PARCEIROS", partners)
	writeSection(&b, "MOVIMENTACOES", limit(movements, 100))
	writeSection(&b, "NOTAS_FISCAIS", invoices)

	genConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"recommendedPartnerId": {Type: genai.TypeString, Enum: ids},
				"justification":        {Type: genai.TypeString},
			},
			Required: []string{"recommendedPartnerId", "justification"},
		},
	}
	resp, err := client.Models.GenerateContent(ctx, o.model, genai.Text(b.String()), genConfig)
	if err != nil {
		return nil, fmt.Errorf("sugerir fornecedor: %w", err)
	}

	var suggestion dto.SupplierSuggestion
	if err := json.Unmarshal([]byte(resp.Text()), &suggestion); err != nil {
		return nil, fmt.Errorf("resposta do modelo ilegível: %w", err)
	}
	return &suggestion, nil
}

// FindMaterialImage busca uma URL de imagem do produto com grounding de
// busca. Melhor esforço: qualquer falha devolve vazio.
func (o *GeminiOracle) FindMaterialImage(ctx context.Context, materialName string) string {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	client, err := o.client(ctx)
	if err != nil {
		o.log.Warn().Err(err).Msg("busca de imagem indisponível")
		return ""
	}

	prompt := fmt.Sprintf("Encontre uma URL pública de imagem do produto %q "+
		"(ferramenta ou consumível de construção). Responda somente com a URL, "+
		"sem texto adicional. Se não encontrar, responda com string vazia.", materialName)
	genConfig := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}
	resp, err := client.Models.GenerateContent(ctx, o.model, genai.Text(prompt), genConfig)
	if err != nil {
		o.log.Warn().Err(err).Str("material", materialName).Msg("busca de imagem falhou")
		return ""
	}

	url := strings.TrimSpace(resp.Text())
	if !strings.HasPrefix(url, "http") {
		return ""
	}
	return url
}

// ForecastRevenue prevê o faturamento do próximo mês a partir da série.
func (o *GeminiOracle) ForecastRevenue(ctx context.Context,
	monthly []dto.MonthlyRevenuePoint) (*dto.RevenueForecast, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	client, err := o.client(ctx)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("A série abaixo é o faturamento mensal (R$) de uma revenda de " +
		"ferramentas. Preveja o valor do próximo mês e justifique em uma frase, " +
		"em português.\n\n")
	writeSection(&b, "FATURAMENTO_MENSAL", monthly)

	genConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"forecastValue": {Type: genai.TypeNumber},
				"justification": {Type: genai.TypeString},
			},
			Required: []string{"forecastValue", "justification"},
		},
	}
	resp, err := client.Models.GenerateContent(ctx, o.model, genai.Text(b.String()), genConfig)
	if err != nil {
		return nil, fmt.Errorf("prever faturamento: %w", err)
	}

	var forecast dto.RevenueForecast
	if err := json.Unmarshal([]byte(resp.Text()), &forecast); err != nil {
		return nil, fmt.Errorf("resposta do modelo ilegível: %w", err)
	}
	return &forecast, nil
}
