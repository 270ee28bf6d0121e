package dto

import "github.com/shopspring/decimal"

// ChartPoint rótulo + valor para gráficos de barras do painel.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// DashboardSummary resumo financeiro e operacional do painel.
type DashboardSummary struct {
	TotalStockValue      decimal.Decimal       `json:"valorTotalEstoque"`
	EstimatedGrossProfit decimal.Decimal       `json:"lucroBrutoEstimado"`
	UnitsIn              int64                 `json:"unidadesEntrada"`
	UnitsOut             int64                 `json:"unidadesSaida"`
	UnitsConsumed        int64                 `json:"unidadesConsumo"`
	NegativeStockCount   int                   `json:"materiaisNegativos"`
	MonthlyRevenue       []MonthlyRevenuePoint `json:"faturamentoMensal"`
	TopProductsByProfit  []ChartPoint          `json:"topProdutosPorLucro"`
	TopCollaborators     []ChartPoint          `json:"topColaboradores"`
}
