package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorone/estoque-api/internal/application/billing"
	"github.com/gestorone/estoque-api/internal/application/dto"
	"github.com/gestorone/estoque-api/internal/application/stock"
)

// InvoiceHandler trata notas fiscais de entrada (protegido).
type InvoiceHandler struct {
	svc     *stock.Service
	billing *billing.Service
}

func NewInvoiceHandler(svc *stock.Service, billingSvc *billing.Service) *InvoiceHandler {
	return &InvoiceHandler{svc: svc, billing: billingSvc}
}

// List godoc
// @Summary      Listar notas fiscais
// @Tags         notas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.NotaFiscal
// @Router       /api/notas [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.svc.Invoices())
}

// GetByID godoc
// @Summary      Obter nota fiscal por ID
// @Tags         notas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da nota"
// @Success      200  {object}  entity.NotaFiscal
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notas/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	inv, ok := h.svc.InvoiceByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "INVOICE_NOT_FOUND", Message: "nota fiscal não encontrada"})
	}
	return c.JSON(inv)
}

// PDF godoc
// @Summary      Baixar PDF da nota fiscal
// @Tags         notas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID da nota"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notas/{id}/pdf [get]
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	id := c.Params("id")
	data, err := h.billing.GeneratePDF(id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="nota-%s.pdf"`, id))
	return c.Send(data)
}
