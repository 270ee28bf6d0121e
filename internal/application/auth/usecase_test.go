package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestorone/estoque-api/internal/application/auth"
	"github.com/gestorone/estoque-api/internal/domain"
	"github.com/gestorone/estoque-api/internal/domain/entity"
	"github.com/gestorone/estoque-api/pkg/config"
	"github.com/gestorone/estoque-api/pkg/jwt"
	"github.com/gestorone/estoque-api/pkg/logger"
)

type fakeFinder struct {
	col   entity.Colaborador
	found bool
}

func (f *fakeFinder) CollaboratorByName(_ string) (entity.Colaborador, bool) {
	return f.col, f.found
}

func testJWT() config.JWTConfig {
	return config.JWTConfig{Secret: "segredo-de-teste", Expiration: 60, Issuer: "gestor-one"}
}

func TestLogin_Sucesso(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	finder := &fakeFinder{
		col: entity.Colaborador{
			ID: "COL-1", Name: "Jorge", Role: entity.RoleDiretor, PasswordHash: string(hash),
		},
		found: true,
	}
	svc := auth.NewService(finder, testJWT(), logger.Nop())

	resp, err := svc.Login("jorge", "senha123")
	require.NoError(t, err)
	assert.Equal(t, "COL-1", resp.ID)
	assert.Equal(t, entity.RoleDiretor, resp.Role)

	userID, name, role, err := jwt.Parse("segredo-de-teste", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "COL-1", userID)
	assert.Equal(t, "Jorge", name)
	assert.Equal(t, entity.RoleDiretor, role)
}

func TestLogin_SenhaErradaEDesconhecidoSaoIndistinguiveis(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("certa"), bcrypt.DefaultCost)
	require.NoError(t, err)

	finder := &fakeFinder{
		col:   entity.Colaborador{ID: "COL-1", Name: "Jorge", PasswordHash: string(hash)},
		found: true,
	}
	svc := auth.NewService(finder, testJWT(), logger.Nop())

	_, errSenha := svc.Login("jorge", "errada")
	assert.ErrorIs(t, errSenha, domain.ErrUnauthorized)

	finder.found = false
	_, errNome := svc.Login("ninguem", "certa")
	assert.ErrorIs(t, errNome, domain.ErrUnauthorized)

	assert.Equal(t, errSenha, errNome)
}

func TestLogin_CamposVazios(t *testing.T) {
	svc := auth.NewService(&fakeFinder{}, testJWT(), logger.Nop())

	_, err := svc.Login("", "senha")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Login("jorge", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
