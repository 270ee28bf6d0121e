package dto

// ChatMessage turno de conversa com o oráculo ("user" ou "model").
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// StockActionCall é a ação estruturada que o modelo pode propor via
// function calling: registrar uma movimentação de estoque. O chamador deve
// confirmar antes de aplicar ao ledger.
type StockActionCall struct {
	MaterialName     string `json:"materialName"`
	Quantity         int64  `json:"quantity"`
	CollaboratorName string `json:"collaboratorName"`
	Kind             string `json:"type"`
	InvoiceNumber    string `json:"invoiceNumber,omitempty"`
}

// ChatReply resposta do oráculo: texto livre ou uma chamada de função.
type ChatReply struct {
	Text         string           `json:"text,omitempty"`
	FunctionCall *StockActionCall `json:"functionCall,omitempty"`
}

// SupplierSuggestion recomendação de fornecedor para um material.
type SupplierSuggestion struct {
	RecommendedPartnerID string `json:"recommendedPartnerId"`
	Justification        string `json:"justification"`
}

// RevenueForecast previsão de faturamento do próximo mês.
type RevenueForecast struct {
	ForecastValue float64 `json:"forecastValue"`
	Justification string  `json:"justification"`
}

// MonthlyRevenuePoint ponto da série mensal de faturamento ("2025-01" etc.).
type MonthlyRevenuePoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// ChatRequest mensagem do usuário para o assistente.
type ChatRequest struct {
	Message string `json:"message"`
}

// SuggestSupplierRequest pedido de recomendação de fornecedor.
type SuggestSupplierRequest struct {
	MaterialName string `json:"material"`
}

// MaterialImageRequest pedido de busca de imagem de material.
type MaterialImageRequest struct {
	MaterialName string `json:"material"`
}
