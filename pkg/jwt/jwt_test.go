package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorone/estoque-api/pkg/jwt"
)

func TestGenerateEParse(t *testing.T) {
	token, err := jwt.Generate("segredo", "COL-9", "Luiz", "gerente", "gestor-one", 30)
	require.NoError(t, err)

	userID, name, role, err := jwt.Parse("segredo", token)
	require.NoError(t, err)
	assert.Equal(t, "COL-9", userID)
	assert.Equal(t, "Luiz", name)
	assert.Equal(t, "gerente", role)
}

func TestParse_SegredoErrado(t *testing.T) {
	token, err := jwt.Generate("segredo", "COL-9", "Luiz", "gerente", "gestor-one", 30)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("outro-segredo", token)
	assert.Error(t, err)
}

func TestGenerate_SegredoVazio(t *testing.T) {
	_, err := jwt.Generate("", "COL-9", "Luiz", "gerente", "gestor-one", 30)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate("segredo", "COL-9", "Luiz", "gerente", "gestor-one", -5)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("segredo", token)
	assert.Error(t, err)
}
