package entity

import "github.com/shopspring/decimal"

// Categorias de material.
const (
	CategoryFerramenta = "ferramenta"
	CategoryConsumivel = "consumivel"
)

// Material representa um item de estoque (ferramenta ou consumível).
// Quantity é inteiro com sinal: estoque negativo significa venda a descoberto
// e é permitido de propósito; o ledger nunca faz clamping.
// TotalInbound é semeado na criação com a quantidade inicial e não é
// atualizado por movimentações (comportamento herdado dos dashboards).
type Material struct {
	ID               string          `json:"id"`
	Name             string          `json:"nome"`
	ManufacturerCode string          `json:"codigoFabricante"`
	Quantity         int64           `json:"quantidade"`
	StorageLocation  string          `json:"armazenamento"`
	Category         string          `json:"categoria"`
	TotalInbound     int64           `json:"entradas"`
	UnitValue        decimal.Decimal `json:"valorUnitario"`
	ImageURL         string          `json:"imageUrl,omitempty"`
}

// TotalValue devolve quantidade × valor unitário (pode ser negativo).
func (m Material) TotalValue() decimal.Decimal {
	return decimal.NewFromInt(m.Quantity).Mul(m.UnitValue)
}
