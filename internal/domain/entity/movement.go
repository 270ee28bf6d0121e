package entity

import "time"

// MovementKind tipo da movimentação de estoque.
type MovementKind string

// Tipos de movimentação.
const (
	KindEntrada MovementKind = "entrada" // compra/recebimento: soma ao estoque
	KindSaida   MovementKind = "saida"   // venda: subtrai do estoque
	KindConsumo MovementKind = "consumo" // uso interno: subtrai do estoque
)

// Valid informa se o tipo é um dos três conhecidos.
func (k MovementKind) Valid() bool {
	switch k {
	case KindEntrada, KindSaida, KindConsumo:
		return true
	}
	return false
}

// Effect devolve o sinal do efeito sobre o estoque: +1 para entrada, -1 para saída e consumo.
func (k MovementKind) Effect() int64 {
	if k == KindEntrada {
		return 1
	}
	return -1
}

// Movimentacao é um lançamento do ledger de estoque.
//
// As referências internas são por ID estável; MaterialName e CollaboratorName
// são rótulos desnormalizados para exibição do histórico. Se o material for
// apagado depois, o ID fica pendurado e a reversão correspondente é pulada.
type Movimentacao struct {
	ID               string       `json:"id"`
	MaterialID       string       `json:"materialId"`
	MaterialName     string       `json:"material"`
	CollaboratorID   string       `json:"colaboradorId"`
	CollaboratorName string       `json:"colaborador"`
	Quantity         int64        `json:"quantidade"`
	Kind             MovementKind `json:"tipo"`
	Date             time.Time    `json:"data"`
	InvoiceNumber    string       `json:"notaFiscal,omitempty"` // apenas para entrada
}

// QuantityDelta devolve o efeito assinado desta movimentação sobre o estoque.
func (m Movimentacao) QuantityDelta() int64 {
	return m.Kind.Effect() * m.Quantity
}
