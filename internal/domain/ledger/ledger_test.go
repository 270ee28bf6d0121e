package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorone/estoque-api/internal/domain"
	"github.com/gestorone/estoque-api/internal/domain/entity"
	"github.com/gestorone/estoque-api/internal/domain/ledger"
)

func seedCollections() ledger.Collections {
	return ledger.Collections{
		Materials: []entity.Material{
			{ID: "MAT-A", Name: "Furadeira Impacto", Quantity: 10, TotalInbound: 10, UnitValue: decimal.NewFromInt(280), Category: entity.CategoryFerramenta},
			{ID: "MAT-B", Name: "Lixa d'água P120", Quantity: 10, TotalInbound: 10, UnitValue: decimal.NewFromFloat(1.5), Category: entity.CategoryConsumivel},
		},
		Collaborators: []entity.Colaborador{
			{ID: "COL-1", Name: "João", Role: entity.RoleOperador},
			{ID: "COL-2", Name: "Luiz", Role: entity.RoleGerente},
		},
	}
}

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func draft(material, collaborator string, qty int64, d int) ledger.MovementDraft {
	return ledger.MovementDraft{
		MaterialName:     material,
		CollaboratorName: collaborator,
		Quantity:         qty,
		Date:             day(d),
	}
}

func materialQty(t *testing.T, l *ledger.Ledger, id string) int64 {
	t.Helper()
	mat, ok := l.MaterialByID(id)
	require.True(t, ok, "material %s deve existir", id)
	return mat.Quantity
}

// ── Conservação ───────────────────────────────────────────────────────────────

// A quantidade final deve ser exatamente a soma assinada dos efeitos das
// movimentações aplicadas desde o estado inicial.
func TestAddMovement_Conservacao(t *testing.T) {
	l := ledger.New(seedCollections())

	_, err := l.AddMovement(draft("Furadeira Impacto", "João", 30, 1), entity.KindEntrada)
	require.NoError(t, err)
	_, err = l.AddMovement(draft("Furadeira Impacto", "Luiz", 12, 2), entity.KindSaida)
	require.NoError(t, err)
	_, err = l.AddMovement(draft("Furadeira Impacto", "João", 5, 3), entity.KindConsumo)
	require.NoError(t, err)

	// 10 + 30 - 12 - 5
	assert.Equal(t, int64(23), materialQty(t, l, "MAT-A"))
}

func TestAddMovement_EstoquePodeFicarNegativo(t *testing.T) {
	l := ledger.New(seedCollections())

	_, err := l.AddMovement(draft("Furadeira Impacto", "João", 25, 1), entity.KindSaida)
	require.NoError(t, err)

	assert.Equal(t, int64(-15), materialQty(t, l, "MAT-A"),
		"venda a descoberto é permitida: sem clamping em zero")
}

// ── Resolução de nomes ────────────────────────────────────────────────────────

func TestAddMovement_ResolucaoIgnoraCaixaEAcentos(t *testing.T) {
	l := ledger.New(seedCollections())

	_, err := l.AddMovement(draft("  furadeira impacto ", "JOÃO", 5, 1), entity.KindEntrada)
	require.NoError(t, err)

	mov := l.Movements()[0]
	assert.Equal(t, "Furadeira Impacto", mov.MaterialName, "o lançamento guarda o nome canônico")
	assert.Equal(t, "João", mov.CollaboratorName)
	assert.Equal(t, "MAT-A", mov.MaterialID)
	assert.Equal(t, int64(15), materialQty(t, l, "MAT-A"))
}

// Material inexistente: nada muda, nem materiais nem movimentações.
func TestAddMovement_MaterialDesconhecidoNaoAlteraNada(t *testing.T) {
	l := ledger.New(seedCollections())
	antesMateriais := l.Materials()
	antesMovimentos := l.Movements()

	_, err := l.AddMovement(draft("Serra Circular", "João", 5, 1), entity.KindEntrada)
	require.ErrorIs(t, err, domain.ErrMaterialNotFound)

	assert.Equal(t, antesMateriais, l.Materials())
	assert.Equal(t, antesMovimentos, l.Movements())
}

func TestAddMovement_ColaboradorDesconhecidoNaoAlteraNada(t *testing.T) {
	l := ledger.New(seedCollections())

	_, err := l.AddMovement(draft("Furadeira Impacto", "Zeca", 5, 1), entity.KindEntrada)
	require.ErrorIs(t, err, domain.ErrCollaboratorNotFound)

	assert.Equal(t, int64(10), materialQty(t, l, "MAT-A"))
	assert.Empty(t, l.Movements())
}

func TestAddMovement_QuantidadeInvalida(t *testing.T) {
	l := ledger.New(seedCollections())

	_, err := l.AddMovement(draft("Furadeira Impacto", "João", 0, 1), entity.KindEntrada)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Nota fiscal só faz sentido em entrada; nos demais tipos é descartada.
func TestAddMovement_NotaFiscalApenasEmEntrada(t *testing.T) {
	l := ledger.New(seedCollections())

	d := draft("Furadeira Impacto", "João", 5, 1)
	d.InvoiceNumber = "20250105"
	entrada, err := l.AddMovement(d, entity.KindEntrada)
	require.NoError(t, err)
	assert.Equal(t, "20250105", entrada.InvoiceNumber)

	d.Date = day(2)
	saida, err := l.AddMovement(d, entity.KindSaida)
	require.NoError(t, err)
	assert.Empty(t, saida.InvoiceNumber)
}

// ── Ordenação do log ──────────────────────────────────────────────────────────

func TestMovements_OrdemDecrescentePorData(t *testing.T) {
	l := ledger.New(seedCollections())

	_, err := l.AddMovement(draft("Furadeira Impacto", "João", 1, 10), entity.KindEntrada)
	require.NoError(t, err)
	_, err = l.AddMovement(draft("Furadeira Impacto", "João", 2, 20), entity.KindEntrada)
	require.NoError(t, err)
	_, err = l.AddMovement(draft("Furadeira Impacto", "João", 3, 15), entity.KindEntrada)
	require.NoError(t, err)

	movs := l.Movements()
	require.Len(t, movs, 3)
	assert.Equal(t, day(20), movs[0].Date)
	assert.Equal(t, day(15), movs[1].Date)
	assert.Equal(t, day(10), movs[2].Date)
}

// ── Edição ────────────────────────────────────────────────────────────────────

// Substituir uma movimentação por cópia idêntica não pode mexer no estoque.
func TestUpdateMovement_IdempotenciaDaReversao(t *testing.T) {
	l := ledger.New(seedCollections())

	mov, err := l.AddMovement(draft("Furadeira Impacto", "João", 5, 1), entity.KindEntrada)
	require.NoError(t, err)
	require.Equal(t, int64(15), materialQty(t, l, "MAT-A"))

	_, err = l.UpdateMovement(mov)
	require.NoError(t, err)

	assert.Equal(t, int64(15), materialQty(t, l, "MAT-A"))
}

// Edição cruzada: entrada de 5 em A vira saída de 5 em B.
// Reversão de +5 em A (15→10) e aplicação de −5 em B (10→5).
func TestUpdateMovement_TrocaDeMaterialETipo(t *testing.T) {
	l := ledger.New(seedCollections())

	mov, err := l.AddMovement(draft("Furadeira Impacto", "João", 5, 1), entity.KindEntrada)
	require.NoError(t, err)
	require.Equal(t, int64(15), materialQty(t, l, "MAT-A"))

	mov.MaterialName = "Lixa d'água P120"
	mov.Kind = entity.KindSaida
	_, err = l.UpdateMovement(mov)
	require.NoError(t, err)

	assert.Equal(t, int64(10), materialQty(t, l, "MAT-A"), "reversão da entrada de 5")
	assert.Equal(t, int64(5), materialQty(t, l, "MAT-B"), "aplicação da saída de 5")
}

func TestUpdateMovement_IdInexistente(t *testing.T) {
	l := ledger.New(seedCollections())

	_, err := l.UpdateMovement(entity.Movimentacao{
		ID: "nao-existe", MaterialName: "Furadeira Impacto", CollaboratorName: "João",
		Quantity: 1, Kind: entity.KindEntrada, Date: day(1),
	})
	require.ErrorIs(t, err, domain.ErrMovementNotFound)
	assert.Empty(t, l.Movements())
}

// Material apagado entre a criação e a edição: a reversão é pulada em
// silêncio e a quantidade deriva — limitação aceita.
func TestUpdateMovement_ReferenciaPenduradaEhPulada(t *testing.T) {
	l := ledger.New(seedCollections())

	mov, err := l.AddMovement(draft("Furadeira Impacto", "João", 5, 1), entity.KindEntrada)
	require.NoError(t, err)
	require.NoError(t, l.DeleteMaterial("MAT-A"))

	mov.Quantity = 7
	updated, err := l.UpdateMovement(mov)
	require.NoError(t, err)

	assert.Empty(t, updated.MaterialID, "referência pendurada fica sem id")
	_, ok := l.MaterialByID("MAT-A")
	assert.False(t, ok)
	assert.Equal(t, int64(10), materialQty(t, l, "MAT-B"), "o outro material não é tocado")
}

// ── Exclusão ──────────────────────────────────────────────────────────────────

// Apagar e recriar uma movimentação equivalente termina com o mesmo estoque
// de nunca ter apagado.
func TestDeleteMovement_EquivalenciaApagarRecriar(t *testing.T) {
	l := ledger.New(seedCollections())

	mov, err := l.AddMovement(draft("Furadeira Impacto", "João", 5, 1), entity.KindEntrada)
	require.NoError(t, err)
	require.Equal(t, int64(15), materialQty(t, l, "MAT-A"))

	_, err = l.DeleteMovement(mov.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), materialQty(t, l, "MAT-A"), "exclusão reverte o efeito")

	_, err = l.AddMovement(draft("Furadeira Impacto", "João", 5, 1), entity.KindEntrada)
	require.NoError(t, err)
	assert.Equal(t, int64(15), materialQty(t, l, "MAT-A"))
}

func TestDeleteMovement_IdInexistente(t *testing.T) {
	l := ledger.New(seedCollections())
	_, err := l.DeleteMovement("nao-existe")
	assert.ErrorIs(t, err, domain.ErrMovementNotFound)
}

// ── Materiais ─────────────────────────────────────────────────────────────────

func TestAddMaterial_SemeiaTotalInbound(t *testing.T) {
	l := ledger.New(seedCollections())

	mat, err := l.AddMaterial(ledger.MaterialDraft{
		Name: "Trena 5m", Quantity: 40, UnitValue: decimal.NewFromInt(25),
		Category: entity.CategoryFerramenta,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, mat.ID)
	assert.Equal(t, int64(40), mat.TotalInbound)
	got, ok := l.MaterialByName("trena 5m")
	require.True(t, ok)
	assert.Equal(t, mat.ID, got.ID)
}

func TestDeleteMaterial_NaoApagaMovimentacoesHistoricas(t *testing.T) {
	l := ledger.New(seedCollections())

	_, err := l.AddMovement(draft("Furadeira Impacto", "João", 5, 1), entity.KindEntrada)
	require.NoError(t, err)
	require.NoError(t, l.DeleteMaterial("MAT-A"))

	movs := l.Movements()
	require.Len(t, movs, 1, "o log mantém o lançamento com referência pendurada")
	assert.Equal(t, "Furadeira Impacto", movs[0].MaterialName)
}

func TestUpdateMaterial_RenomearReindexaBusca(t *testing.T) {
	l := ledger.New(seedCollections())

	mat, ok := l.MaterialByID("MAT-A")
	require.True(t, ok)
	mat.Name = "Furadeira de Bancada"
	require.NoError(t, l.UpdateMaterial(mat))

	_, ok = l.MaterialByName("Furadeira Impacto")
	assert.False(t, ok, "o nome antigo não resolve mais")
	got, ok := l.MaterialByName("furadeira de bancada")
	require.True(t, ok)
	assert.Equal(t, "MAT-A", got.ID)
}

func TestUpdateMaterialStock_SobrescritaDireta(t *testing.T) {
	l := ledger.New(seedCollections())

	require.NoError(t, l.UpdateMaterialStock("MAT-A", 99))
	assert.Equal(t, int64(99), materialQty(t, l, "MAT-A"))

	assert.ErrorIs(t, l.UpdateMaterialStock("nao-existe", 1), domain.ErrMaterialNotFound)
}

// Recalcular valor unitário: total 100 com quantidade 20 dá 5; quantidade
// zero não muda nada.
func TestUpdateMaterialBatchValues(t *testing.T) {
	l := ledger.New(seedCollections())
	require.NoError(t, l.UpdateMaterialStock("MAT-A", 20))
	require.NoError(t, l.UpdateMaterialStock("MAT-B", 0))
	antesB, _ := l.MaterialByID("MAT-B")

	l.UpdateMaterialBatchValues([]ledger.BatchValueUpdate{
		{ID: "MAT-A", NewTotalValue: decimal.NewFromInt(100)},
		{ID: "MAT-B", NewTotalValue: decimal.NewFromInt(100)},
	})

	a, _ := l.MaterialByID("MAT-A")
	b, _ := l.MaterialByID("MAT-B")
	assert.True(t, a.UnitValue.Equal(decimal.NewFromInt(5)), "100/20 = 5, obtido %s", a.UnitValue)
	assert.True(t, b.UnitValue.Equal(antesB.UnitValue), "quantidade 0 deixa o valor unitário intacto")
}

func TestUpdateMaterialBatch_IgnoraIdsDesconhecidos(t *testing.T) {
	l := ledger.New(seedCollections())
	a, _ := l.MaterialByID("MAT-A")
	a.StorageLocation = "Corredor Z"

	l.UpdateMaterialBatch([]entity.Material{a, {ID: "nao-existe", Name: "Fantasma"}})

	got, _ := l.MaterialByID("MAT-A")
	assert.Equal(t, "Corredor Z", got.StorageLocation)
	assert.Len(t, l.Materials(), 2)
}

// ── Colaboradores e reset ─────────────────────────────────────────────────────

func TestUpdateCollaboratorRole(t *testing.T) {
	l := ledger.New(seedCollections())

	require.NoError(t, l.UpdateCollaboratorRole("COL-1", entity.RoleDiretor))
	col, ok := l.CollaboratorByName("João")
	require.True(t, ok)
	assert.Equal(t, entity.RoleDiretor, col.Role)

	assert.ErrorIs(t, l.UpdateCollaboratorRole("COL-1", "chefe"), domain.ErrInvalidInput)
	assert.ErrorIs(t, l.UpdateCollaboratorRole("nao-existe", entity.RoleGerente), domain.ErrCollaboratorNotFound)
}

func TestReset_RestauraSemente(t *testing.T) {
	seed := seedCollections()
	l := ledger.New(seed)

	_, err := l.AddMovement(draft("Furadeira Impacto", "João", 5, 1), entity.KindEntrada)
	require.NoError(t, err)
	require.NoError(t, l.DeleteMaterial("MAT-B"))

	l.Reset(seed)

	assert.Equal(t, int64(10), materialQty(t, l, "MAT-A"))
	assert.Len(t, l.Materials(), 2)
	assert.Empty(t, l.Movements())
}
