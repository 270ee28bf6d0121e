// Package billing monta documentos de notas fiscais a partir do ledger.
package billing

import (
	"github.com/gestorone/estoque-api/internal/application/ports"
	"github.com/gestorone/estoque-api/internal/domain"
	"github.com/gestorone/estoque-api/internal/domain/entity"
	"github.com/gestorone/estoque-api/pkg/logger"
)

// InvoiceReader é o recorte de leitura que a geração de PDF precisa.
type InvoiceReader interface {
	InvoiceByID(id string) (entity.NotaFiscal, bool)
	PartnerByID(id string) (entity.Parceiro, bool)
}

type Service struct {
	reader    InvoiceReader
	generator ports.InvoicePDFGenerator
	log       *logger.Logger
}

func NewService(reader InvoiceReader, generator ports.InvoicePDFGenerator, log *logger.Logger) *Service {
	return &Service{reader: reader, generator: generator, log: log}
}

// GeneratePDF gera o PDF da nota fiscal. Parceiro removido do cadastro não
// impede a geração: o documento sai com os dados do fornecedor em branco.
func (s *Service) GeneratePDF(invoiceID string) ([]byte, error) {
	invoice, ok := s.reader.InvoiceByID(invoiceID)
	if !ok {
		return nil, domain.ErrInvoiceNotFound
	}

	partner, ok := s.reader.PartnerByID(invoice.PartnerID)
	if !ok {
		s.log.Warn().
			Str("nota", invoice.Number).
			Str("parceiro", invoice.PartnerID).
			Msg("nota fiscal referencia parceiro inexistente")
		partner = entity.Parceiro{}
	}

	data, err := s.generator.Generate(invoice, partner)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("nota", invoice.Number).Int("bytes", len(data)).Msg("PDF da nota gerado")
	return data, nil
}
