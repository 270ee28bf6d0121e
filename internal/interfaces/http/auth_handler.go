package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorone/estoque-api/internal/application/auth"
	"github.com/gestorone/estoque-api/internal/application/dto"
)

// AuthHandler trata o login de colaboradores (público).
type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login godoc
// @Summary      Login de colaborador
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciais"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.svc.Login(in.Name, in.Password)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
