// Package assistant implementa o assistente de estoque: chat com o oráculo,
// fluxo explícito de confirmação de ações propostas e as consultas pontuais
// de IA (fornecedor, imagem, previsão).
package assistant

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorone/estoque-api/internal/application/analytics"
	"github.com/gestorone/estoque-api/internal/application/dto"
	"github.com/gestorone/estoque-api/internal/application/ports"
	"github.com/gestorone/estoque-api/internal/application/stock"
	"github.com/gestorone/estoque-api/internal/domain"
	"github.com/gestorone/estoque-api/internal/domain/entity"
	"github.com/gestorone/estoque-api/internal/domain/ledger"
	"github.com/gestorone/estoque-api/pkg/logger"
)

// conversation é o estado de chat de um usuário. pending != nil significa
// que o modelo propôs uma ação e o fluxo está travado até confirmar ou
// rejeitar.
type conversation struct {
	history []dto.ChatMessage
	pending *dto.StockActionCall
}

// Service guarda uma conversa por usuário autenticado. O estado vive em
// memória: reiniciar o processo zera as conversas, nunca o ledger.
type Service struct {
	mu            sync.Mutex
	conversations map[string]*conversation
	oracle        ports.Oracle
	stock         *stock.Service
	log           *logger.Logger
}

func NewService(oracle ports.Oracle, stockSvc *stock.Service, log *logger.Logger) *Service {
	return &Service{
		conversations: map[string]*conversation{},
		oracle:        oracle,
		stock:         stockSvc,
		log:           log,
	}
}

func (s *Service) conversationFor(userID string) *conversation {
	conv, ok := s.conversations[userID]
	if !ok {
		conv = &conversation{}
		s.conversations[userID] = conv
	}
	return conv
}

// oracleContext tira um retrato das coleções para o prompt de sistema.
func (s *Service) oracleContext() ports.OracleContext {
	snap := s.stock.Snapshot()
	return ports.OracleContext{
		Materials:     snap.Materials,
		Movements:     snap.Movements,
		Collaborators: snap.Collaborators,
		Partners:      snap.Partners,
		Invoices:      snap.Invoices,
	}
}

// SendMessage envia um turno do usuário. Com ação pendente o chat fica
// travado e devolve domain.ErrActionPending: o chamador precisa confirmar ou
// rejeitar antes de seguir.
func (s *Service) SendMessage(ctx context.Context, userID, message string) (*dto.ChatReply, error) {
	if message == "" {
		return nil, fmt.Errorf("%w: mensagem vazia", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conv := s.conversationFor(userID)
	if conv.pending != nil {
		return nil, domain.ErrActionPending
	}

	reply, err := s.oracle.SendMessage(ctx, conv.history, message, s.oracleContext())
	if err != nil {
		return nil, err
	}

	conv.history = append(conv.history, dto.ChatMessage{Role: "user", Text: message})
	if reply.FunctionCall != nil {
		call := *reply.FunctionCall
		conv.pending = &call
		s.log.Info().
			Str("usuario", userID).
			Str("material", call.MaterialName).
			Str("tipo", call.Kind).
			Msg("oráculo propôs movimentação; aguardando confirmação")
	} else {
		conv.history = append(conv.history, dto.ChatMessage{Role: "model", Text: reply.Text})
	}
	return reply, nil
}

// ConfirmAction aplica a ação pendente ao estoque e devolve o texto de
// fechamento do modelo. Sem pendência, domain.ErrNoPendingAction.
func (s *Service) ConfirmAction(ctx context.Context, userID string) (*dto.ChatReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv := s.conversationFor(userID)
	if conv.pending == nil {
		return nil, domain.ErrNoPendingAction
	}
	call := *conv.pending

	kind := entity.MovementKind(call.Kind)
	result := "Movimentação registrada com sucesso."
	mov, err := s.stock.AddMovement(ctx, ledger.MovementDraft{
		MaterialName:     call.MaterialName,
		CollaboratorName: call.CollaboratorName,
		Quantity:         call.Quantity,
		Date:             time.Now(),
		InvoiceNumber:    call.InvoiceNumber,
	}, kind)
	if err != nil {
		// O fechamento relata a falha ao modelo; a pendência é consumida
		// mesmo assim, para o chat não ficar preso numa ação inválida.
		result = fmt.Sprintf("Falha ao registrar a movimentação: %v", err)
		s.log.Warn().Err(err).Str("usuario", userID).Msg("ação confirmada falhou no estoque")
	} else {
		s.log.Info().Str("usuario", userID).Str("movimentacao", mov.ID).Msg("ação do oráculo aplicada")
	}
	conv.pending = nil

	reply, oerr := s.oracle.SendFunctionResult(ctx, conv.history, call, result, s.oracleContext())
	if oerr != nil {
		// A movimentação já está aplicada; sem fechamento do modelo, o
		// texto padrão responde ao usuário.
		s.log.Warn().Err(oerr).Msg("sem texto de fechamento do oráculo")
		reply = &dto.ChatReply{Text: result}
	}
	conv.history = append(conv.history, dto.ChatMessage{Role: "model", Text: reply.Text})
	return reply, err
}

// RejectAction descarta a ação pendente e informa o modelo.
func (s *Service) RejectAction(ctx context.Context, userID string) (*dto.ChatReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv := s.conversationFor(userID)
	if conv.pending == nil {
		return nil, domain.ErrNoPendingAction
	}
	call := *conv.pending
	conv.pending = nil

	reply, err := s.oracle.SendFunctionResult(ctx, conv.history, call,
		"Ação cancelada pelo usuário.", s.oracleContext())
	if err != nil {
		reply = &dto.ChatReply{Text: "Ação cancelada."}
	}
	conv.history = append(conv.history, dto.ChatMessage{Role: "model", Text: reply.Text})
	return reply, nil
}

// ResetConversation zera o histórico e a pendência do usuário.
func (s *Service) ResetConversation(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conversations, userID)
}

// SuggestSupplier recomenda um parceiro para repor o material.
func (s *Service) SuggestSupplier(ctx context.Context, materialName string) (*dto.SupplierSuggestion, error) {
	if materialName == "" {
		return nil, fmt.Errorf("%w: material não informado", domain.ErrInvalidInput)
	}
	if _, ok := s.stock.MaterialByName(materialName); !ok {
		return nil, domain.ErrMaterialNotFound
	}
	return s.oracle.SuggestSupplier(ctx, materialName,
		s.stock.Partners(), s.stock.Movements(""), s.stock.Invoices())
}

// FindMaterialImage busca uma URL de imagem. Melhor esforço: vazio em falha.
func (s *Service) FindMaterialImage(ctx context.Context, materialName string) string {
	if materialName == "" {
		return ""
	}
	return s.oracle.FindMaterialImage(ctx, materialName)
}

// ForecastRevenue monta a série mensal de faturamento e pede a previsão do
// próximo mês ao oráculo.
func (s *Service) ForecastRevenue(ctx context.Context) (*dto.RevenueForecast, error) {
	valueByID := map[string]decimal.Decimal{}
	for _, m := range s.stock.Materials() {
		valueByID[m.ID] = m.UnitValue
	}
	monthly := analytics.MonthlyRevenue(s.stock.Movements(""), valueByID)
	if len(monthly) == 0 {
		return nil, fmt.Errorf("%w: sem histórico de saídas para prever", domain.ErrInvalidInput)
	}
	return s.oracle.ForecastRevenue(ctx, monthly)
}
