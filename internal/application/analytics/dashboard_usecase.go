// Package analytics agrega o ledger em indicadores do painel: valor em
// estoque, lucro bruto estimado, série mensal de faturamento e rankings.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorone/estoque-api/internal/application/dto"
	"github.com/gestorone/estoque-api/internal/domain/entity"
)

// Margem bruta presumida sobre o valor de venda. O valor unitário cadastrado
// é o custo de reposição; a revenda pratica ~50% em cima.
var grossMargin = decimal.NewFromFloat(0.5)

const topProductsLimit = 5

// collaboratorWindow janela dos rankings de colaboradores.
const collaboratorWindow = 3 * 30 * 24 * time.Hour

// StockReader é o recorte de leitura que o painel precisa do estoque.
type StockReader interface {
	Materials() []entity.Material
	Movements(kind entity.MovementKind) []entity.Movimentacao
}

// Service calcula o resumo do painel sob demanda, sempre a partir do estado
// corrente do ledger. Nada é cacheado.
type Service struct {
	stock StockReader
}

func NewService(stock StockReader) *Service {
	return &Service{stock: stock}
}

// Summary monta o resumo completo do painel. now ancora a janela dos
// rankings de colaboradores.
func (s *Service) Summary(now time.Time) dto.DashboardSummary {
	materials := s.stock.Materials()
	movements := s.stock.Movements("")

	valueByID := make(map[string]decimal.Decimal, len(materials))
	totalStock := decimal.Zero
	negatives := 0
	for _, m := range materials {
		valueByID[m.ID] = m.UnitValue
		totalStock = totalStock.Add(m.UnitValue.Mul(decimal.NewFromInt(m.Quantity)))
		if m.Quantity < 0 {
			negatives++
		}
	}

	var unitsIn, unitsOut, unitsConsumed int64
	grossProfit := decimal.Zero
	profitByProduct := map[string]decimal.Decimal{}
	movesByCollaborator := map[string]float64{}
	cutoff := now.Add(-collaboratorWindow)

	for _, mov := range movements {
		switch mov.Kind {
		case entity.KindEntrada:
			unitsIn += mov.Quantity
		case entity.KindSaida:
			unitsOut += mov.Quantity
		case entity.KindConsumo:
			unitsConsumed += mov.Quantity
		}

		if mov.Kind == entity.KindSaida {
			// Movimentação com material removido do catálogo vale zero.
			unit := valueByID[mov.MaterialID]
			profit := unit.Mul(decimal.NewFromInt(mov.Quantity)).Mul(grossMargin)
			grossProfit = grossProfit.Add(profit)
			profitByProduct[mov.MaterialName] = profitByProduct[mov.MaterialName].Add(profit)
		}

		if mov.CollaboratorName != "" && !mov.Date.Before(cutoff) {
			movesByCollaborator[mov.CollaboratorName]++
		}
	}

	return dto.DashboardSummary{
		TotalStockValue:      totalStock,
		EstimatedGrossProfit: grossProfit,
		UnitsIn:              unitsIn,
		UnitsOut:             unitsOut,
		UnitsConsumed:        unitsConsumed,
		NegativeStockCount:   negatives,
		MonthlyRevenue:       MonthlyRevenue(movements, valueByID),
		TopProductsByProfit:  topDecimal(profitByProduct, topProductsLimit),
		TopCollaborators:     topFloat(movesByCollaborator, topProductsLimit),
	}
}

// MonthlyRevenue agrega as saídas por mês ("2025-06") em ordem cronológica.
// Exportada porque a previsão de faturamento do assistente usa a mesma série.
func MonthlyRevenue(movements []entity.Movimentacao, valueByID map[string]decimal.Decimal) []dto.MonthlyRevenuePoint {
	byMonth := map[string]decimal.Decimal{}
	for _, mov := range movements {
		if mov.Kind != entity.KindSaida {
			continue
		}
		month := mov.Date.Format("2006-01")
		revenue := valueByID[mov.MaterialID].Mul(decimal.NewFromInt(mov.Quantity))
		byMonth[month] = byMonth[month].Add(revenue)
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	series := make([]dto.MonthlyRevenuePoint, 0, len(months))
	for _, m := range months {
		series = append(series, dto.MonthlyRevenuePoint{
			Month:   m,
			Revenue: byMonth[m].InexactFloat64(),
		})
	}
	return series
}

func topDecimal(values map[string]decimal.Decimal, limit int) []dto.ChartPoint {
	points := make([]dto.ChartPoint, 0, len(values))
	for label, v := range values {
		points = append(points, dto.ChartPoint{Label: label, Value: v.InexactFloat64()})
	}
	return rank(points, limit)
}

func topFloat(values map[string]float64, limit int) []dto.ChartPoint {
	points := make([]dto.ChartPoint, 0, len(values))
	for label, v := range values {
		points = append(points, dto.ChartPoint{Label: label, Value: v})
	}
	return rank(points, limit)
}

// rank ordena por valor decrescente com desempate pelo rótulo, para que o
// painel seja estável entre chamadas.
func rank(points []dto.ChartPoint, limit int) []dto.ChartPoint {
	sort.Slice(points, func(i, j int) bool {
		if points[i].Value != points[j].Value {
			return points[i].Value > points[j].Value
		}
		return points[i].Label < points[j].Label
	})
	if len(points) > limit {
		points = points[:limit]
	}
	return points
}
