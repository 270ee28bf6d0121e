package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// NotaFiscal é a nota de entrada emitida por um parceiro. As movimentações
// de entrada referenciam a nota pelo número; o ledger nunca a altera.
type NotaFiscal struct {
	ID         string           `json:"id"`
	Number     string           `json:"numero"`
	PartnerID  string           `json:"parceiroId"`
	IssueDate  time.Time        `json:"dataEmissao"`
	TotalValue decimal.Decimal  `json:"valorTotal"`
	Items      []NotaFiscalItem `json:"itens"`
}

// NotaFiscalItem linha de item da nota.
type NotaFiscalItem struct {
	MaterialID string          `json:"materialId"`
	Name       string          `json:"nome"`
	Quantity   int64           `json:"quantidade"`
	UnitValue  decimal.Decimal `json:"valorUnitario"`
}
