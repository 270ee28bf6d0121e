package stock_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorone/estoque-api/internal/application/stock"
	"github.com/gestorone/estoque-api/internal/domain/entity"
	"github.com/gestorone/estoque-api/internal/domain/ledger"
	"github.com/gestorone/estoque-api/pkg/logger"
)

// fakeStore armazém chave-valor em memória, com falha injetável.
type fakeStore struct {
	data    map[string][]byte
	saveErr error
	loadErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string][]byte{}}
}

func (f *fakeStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	if f.loadErr != nil {
		return nil, false, f.loadErr
	}
	d, ok := f.data[key]
	return d, ok, nil
}

func (f *fakeStore) Save(_ context.Context, key string, data []byte) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.data[key] = data
	return nil
}

func (f *fakeStore) put(t *testing.T, key string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f.data[key] = data
}

func seed() ledger.Collections {
	return ledger.Collections{
		Materials: []entity.Material{
			{ID: "MAT-A", Name: "Martelo Unha", Quantity: 100, TotalInbound: 100, UnitValue: decimal.NewFromInt(35)},
		},
		Collaborators: []entity.Colaborador{
			{ID: "COL-1", Name: "Pedro", Role: entity.RoleOperador},
		},
	}
}

func movementDraft() ledger.MovementDraft {
	return ledger.MovementDraft{
		MaterialName:     "Martelo Unha",
		CollaboratorName: "Pedro",
		Quantity:         10,
		Date:             time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

// ── Portão de versão ──────────────────────────────────────────────────────────

// Versão gravada diferente da atual: tudo que está no armazém é ignorado e a
// semente vale para todas as coleções.
func TestLoad_VersaoDivergenteDescartaSnapshots(t *testing.T) {
	store := newFakeStore()
	store.put(t, "gestor_db_version", "1.0")
	store.put(t, "gestor_materials", []entity.Material{
		{ID: "MAT-X", Name: "Antigo", Quantity: 999},
	})

	svc := stock.NewService(store, seed(), logger.Nop())
	svc.Load(context.Background())

	mats := svc.Materials()
	require.Len(t, mats, 1)
	assert.Equal(t, "MAT-A", mats[0].ID, "semente aplicada, snapshot antigo descartado")

	var v string
	require.NoError(t, json.Unmarshal(store.data["gestor_db_version"], &v))
	assert.Equal(t, stock.SchemaVersion, v, "a versão atual é regravada no boot")
}

func TestLoad_VersaoCompativelUsaSnapshots(t *testing.T) {
	store := newFakeStore()
	store.put(t, "gestor_db_version", stock.SchemaVersion)
	store.put(t, "gestor_materials", []entity.Material{
		{ID: "MAT-P", Name: "Persistido", Quantity: 7},
	})

	svc := stock.NewService(store, seed(), logger.Nop())
	svc.Load(context.Background())

	mats := svc.Materials()
	require.Len(t, mats, 1)
	assert.Equal(t, "MAT-P", mats[0].ID)

	// Coleção sem snapshot cai para a semente individualmente.
	cols := svc.Collaborators()
	require.Len(t, cols, 1)
	assert.Equal(t, "Pedro", cols[0].Name)
}

func TestLoad_SnapshotCorrompidoCaiParaSemente(t *testing.T) {
	store := newFakeStore()
	store.put(t, "gestor_db_version", stock.SchemaVersion)
	store.data["gestor_materials"] = []byte("{nao é json válido")

	svc := stock.NewService(store, seed(), logger.Nop())
	svc.Load(context.Background())

	mats := svc.Materials()
	require.Len(t, mats, 1)
	assert.Equal(t, "MAT-A", mats[0].ID)
}

func TestLoad_ArmazemIndisponivelMantemSemente(t *testing.T) {
	store := newFakeStore()
	store.loadErr = errors.New("conexão recusada")

	svc := stock.NewService(store, seed(), logger.Nop())
	svc.Load(context.Background())

	assert.Len(t, svc.Materials(), 1, "falha de leitura é engolida; semente vale")
}

// ── Snapshots pós-commit ──────────────────────────────────────────────────────

func TestAddMovement_GravaSnapshotsAfetados(t *testing.T) {
	store := newFakeStore()
	svc := stock.NewService(store, seed(), logger.Nop())

	_, err := svc.AddMovement(context.Background(), movementDraft(), entity.KindSaida)
	require.NoError(t, err)

	var mats []entity.Material
	require.NoError(t, json.Unmarshal(store.data["gestor_materials"], &mats))
	require.Len(t, mats, 1)
	assert.Equal(t, int64(90), mats[0].Quantity)

	var movs []entity.Movimentacao
	require.NoError(t, json.Unmarshal(store.data["gestor_movements"], &movs))
	assert.Len(t, movs, 1)
}

// Falha de escrita não propaga: a operação é aplicada em memória mesmo assim.
func TestAddMovement_FalhaDeEscritaEhEngolida(t *testing.T) {
	store := newFakeStore()
	store.saveErr = errors.New("quota excedida")
	svc := stock.NewService(store, seed(), logger.Nop())

	mov, err := svc.AddMovement(context.Background(), movementDraft(), entity.KindConsumo)
	require.NoError(t, err)
	assert.NotEmpty(t, mov.ID)

	mat, ok := svc.MaterialByID("MAT-A")
	require.True(t, ok)
	assert.Equal(t, int64(90), mat.Quantity, "memória segue autoritativa")
}

func TestAddMovement_FalhaDeResolucaoNaoGravaNada(t *testing.T) {
	store := newFakeStore()
	svc := stock.NewService(store, seed(), logger.Nop())

	d := movementDraft()
	d.MaterialName = "Inexistente"
	_, err := svc.AddMovement(context.Background(), d, entity.KindSaida)
	require.Error(t, err)

	_, ok := store.data["gestor_movements"]
	assert.False(t, ok, "operação rejeitada não persiste snapshot")
}

func TestReset_RestauraEGravaTudo(t *testing.T) {
	store := newFakeStore()
	svc := stock.NewService(store, seed(), logger.Nop())

	_, err := svc.AddMovement(context.Background(), movementDraft(), entity.KindSaida)
	require.NoError(t, err)

	svc.Reset(context.Background())

	mat, ok := svc.MaterialByID("MAT-A")
	require.True(t, ok)
	assert.Equal(t, int64(100), mat.Quantity)
	assert.Empty(t, svc.Movements(""))

	for _, key := range []string{
		"gestor_materials", "gestor_movements", "gestor_collaborators",
		"gestor_partners", "gestor_invoices", "gestor_db_version",
	} {
		_, ok := store.data[key]
		assert.True(t, ok, "chave %s deve ser regravada no reset", key)
	}
}

func TestMovements_FiltroPorTipo(t *testing.T) {
	store := newFakeStore()
	svc := stock.NewService(store, seed(), logger.Nop())
	ctx := context.Background()

	_, err := svc.AddMovement(ctx, movementDraft(), entity.KindEntrada)
	require.NoError(t, err)
	_, err = svc.AddMovement(ctx, movementDraft(), entity.KindSaida)
	require.NoError(t, err)

	assert.Len(t, svc.Movements(""), 2)
	assert.Len(t, svc.Movements(entity.KindSaida), 1)
	assert.Len(t, svc.Movements(entity.KindConsumo), 0)
}
