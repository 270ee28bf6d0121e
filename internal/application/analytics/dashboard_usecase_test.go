package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorone/estoque-api/internal/application/analytics"
	"github.com/gestorone/estoque-api/internal/domain/entity"
)

type fakeStock struct {
	materials []entity.Material
	movements []entity.Movimentacao
}

func (f *fakeStock) Materials() []entity.Material { return f.materials }

func (f *fakeStock) Movements(kind entity.MovementKind) []entity.Movimentacao {
	if kind == "" {
		return f.movements
	}
	var out []entity.Movimentacao
	for _, m := range f.movements {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSummary_ValoresFinanceiros(t *testing.T) {
	stock := &fakeStock{
		materials: []entity.Material{
			{ID: "M1", Name: "Furadeira", Quantity: 10, UnitValue: decimal.NewFromInt(200)},
			{ID: "M2", Name: "Parafuso", Quantity: -3, UnitValue: decimal.NewFromInt(1)},
		},
		movements: []entity.Movimentacao{
			{ID: "V1", MaterialID: "M1", MaterialName: "Furadeira", Kind: entity.KindSaida, Quantity: 4, Date: date(2025, 6, 10)},
			{ID: "V2", MaterialID: "M2", MaterialName: "Parafuso", Kind: entity.KindSaida, Quantity: 100, Date: date(2025, 6, 12)},
			{ID: "E1", MaterialID: "M1", MaterialName: "Furadeira", Kind: entity.KindEntrada, Quantity: 14, Date: date(2025, 6, 1)},
			{ID: "C1", MaterialID: "M2", MaterialName: "Parafuso", Kind: entity.KindConsumo, Quantity: 7, Date: date(2025, 6, 5)},
		},
	}
	svc := analytics.NewService(stock)

	sum := svc.Summary(date(2025, 6, 30))

	// 10*200 + (-3)*1 = 1997
	assert.True(t, decimal.NewFromInt(1997).Equal(sum.TotalStockValue),
		"valor total de estoque esperado 1997, veio %s", sum.TotalStockValue)

	// Lucro bruto: margem de 50% sobre as saídas: (4*200 + 100*1) * 0.5 = 450
	assert.True(t, decimal.NewFromInt(450).Equal(sum.EstimatedGrossProfit),
		"lucro bruto esperado 450, veio %s", sum.EstimatedGrossProfit)

	assert.Equal(t, int64(14), sum.UnitsIn)
	assert.Equal(t, int64(104), sum.UnitsOut)
	assert.Equal(t, int64(7), sum.UnitsConsumed)
	assert.Equal(t, 1, sum.NegativeStockCount)
}

func TestSummary_SerieMensalEmOrdemCronologica(t *testing.T) {
	stock := &fakeStock{
		materials: []entity.Material{
			{ID: "M1", Name: "Serra", Quantity: 5, UnitValue: decimal.NewFromInt(10)},
		},
		movements: []entity.Movimentacao{
			{ID: "V1", MaterialID: "M1", Kind: entity.KindSaida, Quantity: 2, Date: date(2025, 3, 1)},
			{ID: "V2", MaterialID: "M1", Kind: entity.KindSaida, Quantity: 1, Date: date(2025, 1, 15)},
			{ID: "V3", MaterialID: "M1", Kind: entity.KindSaida, Quantity: 3, Date: date(2025, 1, 20)},
		},
	}
	svc := analytics.NewService(stock)

	sum := svc.Summary(date(2025, 3, 31))

	require.Len(t, sum.MonthlyRevenue, 2)
	assert.Equal(t, "2025-01", sum.MonthlyRevenue[0].Month)
	assert.Equal(t, 40.0, sum.MonthlyRevenue[0].Revenue)
	assert.Equal(t, "2025-03", sum.MonthlyRevenue[1].Month)
	assert.Equal(t, 20.0, sum.MonthlyRevenue[1].Revenue)
}

func TestSummary_TopProdutosLimitadoACinco(t *testing.T) {
	stock := &fakeStock{}
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, n := range names {
		id := "M" + n
		stock.materials = append(stock.materials, entity.Material{
			ID: id, Name: n, Quantity: 10, UnitValue: decimal.NewFromInt(int64(i + 1)),
		})
		stock.movements = append(stock.movements, entity.Movimentacao{
			ID: "V" + n, MaterialID: id, MaterialName: n,
			Kind: entity.KindSaida, Quantity: 2, Date: date(2025, 6, 1),
		})
	}
	svc := analytics.NewService(stock)

	sum := svc.Summary(date(2025, 6, 30))

	require.Len(t, sum.TopProductsByProfit, 5)
	assert.Equal(t, "G", sum.TopProductsByProfit[0].Label, "maior lucro primeiro")
	assert.Equal(t, "C", sum.TopProductsByProfit[4].Label)
}

func TestSummary_ColaboradoresSoDentroDaJanela(t *testing.T) {
	stock := &fakeStock{
		materials: []entity.Material{
			{ID: "M1", Name: "Trena", Quantity: 5, UnitValue: decimal.NewFromInt(10)},
		},
		movements: []entity.Movimentacao{
			{ID: "V1", MaterialID: "M1", CollaboratorName: "Jorge", Kind: entity.KindSaida, Quantity: 1, Date: date(2025, 6, 10)},
			{ID: "V2", MaterialID: "M1", CollaboratorName: "Jorge", Kind: entity.KindConsumo, Quantity: 1, Date: date(2025, 5, 10)},
			{ID: "V3", MaterialID: "M1", CollaboratorName: "Davi", Kind: entity.KindSaida, Quantity: 1, Date: date(2024, 12, 1)},
		},
	}
	svc := analytics.NewService(stock)

	sum := svc.Summary(date(2025, 6, 30))

	require.Len(t, sum.TopCollaborators, 1, "movimentação antiga fica fora da janela de 3 meses")
	assert.Equal(t, "Jorge", sum.TopCollaborators[0].Label)
	assert.Equal(t, 2.0, sum.TopCollaborators[0].Value)
}

func TestSummary_MaterialRemovidoNaoContribuiLucro(t *testing.T) {
	stock := &fakeStock{
		movements: []entity.Movimentacao{
			{ID: "V1", MaterialID: "M-apagado", MaterialName: "Fantasma", Kind: entity.KindSaida, Quantity: 9, Date: date(2025, 6, 1)},
		},
	}
	svc := analytics.NewService(stock)

	sum := svc.Summary(date(2025, 6, 30))

	assert.True(t, sum.EstimatedGrossProfit.IsZero())
	assert.Equal(t, int64(9), sum.UnitsOut, "a contagem de unidades continua valendo")
}
