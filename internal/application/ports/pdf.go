package ports

import "github.com/gestorone/estoque-api/internal/domain/entity"

// InvoicePDFGenerator gera o documento PDF de uma nota fiscal de entrada.
type InvoicePDFGenerator interface {
	Generate(invoice entity.NotaFiscal, partner entity.Parceiro) ([]byte, error)
}
