package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorone/estoque-api/internal/application/dto"
	"github.com/gestorone/estoque-api/internal/application/stock"
	"github.com/gestorone/estoque-api/internal/domain/entity"
	"github.com/gestorone/estoque-api/internal/domain/ledger"
)

// MaterialHandler trata o catálogo de materiais (protegido).
type MaterialHandler struct {
	svc *stock.Service
}

func NewMaterialHandler(svc *stock.Service) *MaterialHandler {
	return &MaterialHandler{svc: svc}
}

// List godoc
// @Summary      Listar materiais
// @Tags         materiais
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Material
// @Router       /api/materiais [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.svc.Materials())
}

// GetByID godoc
// @Summary      Obter material por ID
// @Tags         materiais
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do material"
// @Success      200  {object}  entity.Material
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materiais/{id} [get]
func (h *MaterialHandler) GetByID(c *fiber.Ctx) error {
	mat, ok := h.svc.MaterialByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "MATERIAL_NOT_FOUND", Message: "material não encontrado"})
	}
	return c.JSON(mat)
}

// Create godoc
// @Summary      Criar material
// @Tags         materiais
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MaterialRequest  true  "Dados do material"
// @Success      201   {object}  entity.Material
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/materiais [post]
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.MaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome é obrigatório"})
	}
	mat, err := h.svc.AddMaterial(c.Context(), ledger.MaterialDraft{
		Name:             in.Name,
		ManufacturerCode: in.ManufacturerCode,
		Quantity:         in.Quantity,
		StorageLocation:  in.StorageLocation,
		Category:         in.Category,
		UnitValue:        in.UnitValue,
		ImageURL:         in.ImageURL,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mat)
}

// Update godoc
// @Summary      Atualizar material
// @Tags         materiais
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do material"
// @Param        body  body  dto.MaterialRequest  true  "Dados do material"
// @Success      200   {object}  entity.Material
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/materiais/{id} [put]
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	current, ok := h.svc.MaterialByID(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "MATERIAL_NOT_FOUND", Message: "material não encontrado"})
	}
	var in dto.MaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	updated := entity.Material{
		ID:               id,
		Name:             in.Name,
		ManufacturerCode: in.ManufacturerCode,
		Quantity:         in.Quantity,
		StorageLocation:  in.StorageLocation,
		Category:         in.Category,
		TotalInbound:     current.TotalInbound,
		UnitValue:        in.UnitValue,
		ImageURL:         in.ImageURL,
	}
	if err := h.svc.UpdateMaterial(c.Context(), updated); err != nil {
		return writeError(c, err)
	}
	return c.JSON(updated)
}

// Delete godoc
// @Summary      Excluir material
// @Tags         materiais
// @Security     Bearer
// @Param        id  path  string  true  "ID do material"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materiais/{id} [delete]
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.DeleteMaterial(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateStock godoc
// @Summary      Corrigir quantidade em estoque
// @Tags         materiais
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID do material"
// @Param        body  body  dto.StockOverrideRequest  true  "Nova quantidade"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materiais/{id}/estoque [patch]
func (h *MaterialHandler) UpdateStock(c *fiber.Ctx) error {
	var in dto.StockOverrideRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.svc.UpdateMaterialStock(c.Context(), c.Params("id"), in.NewQuantity); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateBatch godoc
// @Summary      Atualizar materiais em lote
// @Tags         materiais
// @Security     Bearer
// @Accept       json
// @Param        body  body  []entity.Material  true  "Materiais a substituir"
// @Success      204
// @Router       /api/materiais/lote [put]
func (h *MaterialHandler) UpdateBatch(c *fiber.Ctx) error {
	var in []entity.Material
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	h.svc.UpdateMaterialBatch(c.Context(), in)
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateBatchValues godoc
// @Summary      Recalcular valores unitários em lote
// @Tags         materiais
// @Security     Bearer
// @Accept       json
// @Param        body  body  []dto.BatchValueRequest  true  "Novos valores totais por material"
// @Success      204
// @Router       /api/materiais/lote/valores [put]
func (h *MaterialHandler) UpdateBatchValues(c *fiber.Ctx) error {
	var in []dto.BatchValueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	updates := make([]ledger.BatchValueUpdate, 0, len(in))
	for _, u := range in {
		updates = append(updates, ledger.BatchValueUpdate{ID: u.ID, NewTotalValue: u.NewTotalValue})
	}
	h.svc.UpdateMaterialBatchValues(c.Context(), updates)
	return c.SendStatus(fiber.StatusNoContent)
}
