// Package stock expõe o ledger como serviço de aplicação: serializa as
// operações (uma por vez, até o fim), carrega o estado persistido com
// validação de versão do esquema e grava snapshots pós-commit em melhor
// esforço.
package stock

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gestorone/estoque-api/internal/application/ports"
	"github.com/gestorone/estoque-api/internal/domain/entity"
	"github.com/gestorone/estoque-api/internal/domain/ledger"
	"github.com/gestorone/estoque-api/pkg/logger"
)

// SchemaVersion marca a versão do esquema das coleções persistidas.
// Quando a semente muda de forma incompatível, incrementar força o descarte
// dos snapshots antigos no próximo boot (invalidação de cache, não migração).
const SchemaVersion = "2.5"

// Chaves do armazém chave-valor, uma por coleção mais a versão.
const (
	keyVersion       = "gestor_db_version"
	keyMaterials     = "gestor_materials"
	keyMovements     = "gestor_movements"
	keyCollaborators = "gestor_collaborators"
	keyPartners      = "gestor_partners"
	keyInvoices      = "gestor_invoices"
)

// Service orquestra o ledger puro com persistência e logging.
//
// O mutex garante a ordem do modelo de execução original: cada operação
// observa o resultado de todas as anteriores e nunca é interrompida no meio
// por outra operação do ledger.
type Service struct {
	mu     sync.Mutex
	ledger *ledger.Ledger
	store  ports.SnapshotStore
	seed   ledger.Collections
	log    *logger.Logger
}

// NewService cria o serviço já populado com a semente; chamar Load para
// substituir pela versão persistida, se válida.
func NewService(store ports.SnapshotStore, seed ledger.Collections, log *logger.Logger) *Service {
	return &Service{
		ledger: ledger.New(seed),
		store:  store,
		seed:   seed,
		log:    log,
	}
}

// Load carrega os snapshots persistidos. Se a versão gravada difere de
// SchemaVersion, tudo é descartado e a semente vale para todas as coleções.
// Com versão compatível, cada coleção ausente ou corrompida cai para a
// semente individualmente. A chave de versão é regravada uma vez, aqui.
// Falhas de leitura são registradas e engolidas: a memória é autoritativa.
func (s *Service) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.loadVersion(ctx)
	if stored == SchemaVersion {
		cols := ledger.Collections{
			Materials:     s.seed.Materials,
			Movements:     s.seed.Movements,
			Collaborators: s.seed.Collaborators,
			Partners:      s.seed.Partners,
			Invoices:      s.seed.Invoices,
		}
		loadCollection(ctx, s, keyMaterials, &cols.Materials)
		loadCollection(ctx, s, keyMovements, &cols.Movements)
		loadCollection(ctx, s, keyCollaborators, &cols.Collaborators)
		loadCollection(ctx, s, keyPartners, &cols.Partners)
		loadCollection(ctx, s, keyInvoices, &cols.Invoices)
		s.ledger.Reset(cols)
		s.log.Info().Msg("estado carregado dos snapshots persistidos")
	} else {
		s.ledger.Reset(s.seed)
		s.log.Info().
			Str("versao_gravada", stored).
			Str("versao_atual", SchemaVersion).
			Msg("versão do esquema divergente: snapshots descartados, semente aplicada")
	}

	s.saveVersion(ctx)
}

func (s *Service) loadVersion(ctx context.Context) string {
	data, found, err := s.store.Load(ctx, keyVersion)
	if err != nil {
		s.log.Warn().Err(err).Msg("falha ao ler versão do esquema")
		return ""
	}
	if !found {
		return ""
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		s.log.Warn().Err(err).Msg("versão do esquema ilegível")
		return ""
	}
	return v
}

func (s *Service) saveVersion(ctx context.Context) {
	data, _ := json.Marshal(SchemaVersion)
	if err := s.store.Save(ctx, keyVersion, data); err != nil {
		s.log.Warn().Err(err).Msg("falha ao gravar versão do esquema")
	}
}

// loadCollection preenche dst com o snapshot da chave; em qualquer falha o
// valor semente já presente em dst permanece.
func loadCollection[T any](ctx context.Context, s *Service, key string, dst *[]T) {
	data, found, err := s.store.Load(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("falha ao ler snapshot; usando semente")
		return
	}
	if !found {
		return
	}
	var loaded []T
	if err := json.Unmarshal(data, &loaded); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("snapshot ilegível; usando semente")
		return
	}
	*dst = loaded
}

// persist grava as coleções indicadas. Melhor esforço: erro é registrado e
// engolido, sem retry e sem propagar ao chamador.
func (s *Service) persist(ctx context.Context, keys ...string) {
	for _, key := range keys {
		var payload any
		switch key {
		case keyMaterials:
			payload = s.ledger.Materials()
		case keyMovements:
			payload = s.ledger.Movements()
		case keyCollaborators:
			payload = s.ledger.Collaborators()
		case keyPartners:
			payload = s.ledger.Partners()
		case keyInvoices:
			payload = s.ledger.Invoices()
		default:
			continue
		}
		data, err := json.Marshal(payload)
		if err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("falha ao serializar snapshot")
			continue
		}
		if err := s.store.Save(ctx, key, data); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("falha ao gravar snapshot; memória segue autoritativa")
		}
	}
}

// ── Movimentações ─────────────────────────────────────────────────────────────

// AddMovement registra a movimentação e reconcilia o estoque.
func (s *Service) AddMovement(ctx context.Context, draft ledger.MovementDraft, kind entity.MovementKind) (entity.Movimentacao, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mov, err := s.ledger.AddMovement(draft, kind)
	if err != nil {
		return entity.Movimentacao{}, err
	}
	s.log.Info().
		Str("movimentacao", mov.ID).
		Str("material", mov.MaterialName).
		Str("tipo", string(mov.Kind)).
		Int64("quantidade", mov.Quantity).
		Msg("movimentação registrada")
	s.persist(ctx, keyMaterials, keyMovements)
	return mov, nil
}

// UpdateMovement substitui a movimentação, revertendo o efeito antigo e
// aplicando o novo.
func (s *Service) UpdateMovement(ctx context.Context, updated entity.Movimentacao) (entity.Movimentacao, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mov, err := s.ledger.UpdateMovement(updated)
	if err != nil {
		return entity.Movimentacao{}, err
	}
	s.persist(ctx, keyMaterials, keyMovements)
	return mov, nil
}

// DeleteMovement reverte e remove a movimentação.
func (s *Service) DeleteMovement(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.ledger.DeleteMovement(id); err != nil {
		return err
	}
	s.persist(ctx, keyMaterials, keyMovements)
	return nil
}

// ── Materiais ─────────────────────────────────────────────────────────────────

// AddMaterial cria um material.
func (s *Service) AddMaterial(ctx context.Context, draft ledger.MaterialDraft) (entity.Material, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mat, err := s.ledger.AddMaterial(draft)
	if err != nil {
		return entity.Material{}, err
	}
	s.persist(ctx, keyMaterials)
	return mat, nil
}

// UpdateMaterial substitui um material por id.
func (s *Service) UpdateMaterial(ctx context.Context, updated entity.Material) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ledger.UpdateMaterial(updated); err != nil {
		return err
	}
	s.persist(ctx, keyMaterials)
	return nil
}

// DeleteMaterial remove um material, sem cascata sobre o log.
func (s *Service) DeleteMaterial(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ledger.DeleteMaterial(id); err != nil {
		return err
	}
	s.persist(ctx, keyMaterials)
	return nil
}

// UpdateMaterialStock sobrescreve a quantidade diretamente.
func (s *Service) UpdateMaterialStock(ctx context.Context, id string, newQuantity int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ledger.UpdateMaterialStock(id, newQuantity); err != nil {
		return err
	}
	s.persist(ctx, keyMaterials)
	return nil
}

// UpdateMaterialBatch substitui materiais em lote.
func (s *Service) UpdateMaterialBatch(ctx context.Context, updates []entity.Material) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger.UpdateMaterialBatch(updates)
	s.persist(ctx, keyMaterials)
}

// UpdateMaterialBatchValues recalcula valores unitários em lote.
func (s *Service) UpdateMaterialBatchValues(ctx context.Context, updates []ledger.BatchValueUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger.UpdateMaterialBatchValues(updates)
	s.persist(ctx, keyMaterials)
}

// ── Colaboradores e administração ─────────────────────────────────────────────

// UpdateCollaboratorRole troca o papel de um colaborador.
func (s *Service) UpdateCollaboratorRole(ctx context.Context, id, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ledger.UpdateCollaboratorRole(id, role); err != nil {
		return err
	}
	s.persist(ctx, keyCollaborators)
	return nil
}

// Reset restaura as cinco coleções para a semente e regrava a versão.
func (s *Service) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger.Reset(s.seed)
	s.log.Info().Msg("base restaurada para a semente")
	s.persist(ctx, keyMaterials, keyMovements, keyCollaborators, keyPartners, keyInvoices)
	s.saveVersion(ctx)
}

// ── Leitura ───────────────────────────────────────────────────────────────────

// Materials lista os materiais.
func (s *Service) Materials() []entity.Material {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Materials()
}

// Movements lista o log; kind vazio devolve tudo.
func (s *Service) Movements(kind entity.MovementKind) []entity.Movimentacao {
	s.mu.Lock()
	defer s.mu.Unlock()
	movs := s.ledger.Movements()
	if kind == "" {
		return movs
	}
	out := make([]entity.Movimentacao, 0, len(movs))
	for _, m := range movs {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

// Collaborators lista os colaboradores.
func (s *Service) Collaborators() []entity.Colaborador {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Collaborators()
}

// Partners lista os parceiros.
func (s *Service) Partners() []entity.Parceiro {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Partners()
}

// Invoices lista as notas fiscais.
func (s *Service) Invoices() []entity.NotaFiscal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Invoices()
}

// MaterialByID busca material por id.
func (s *Service) MaterialByID(id string) (entity.Material, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.MaterialByID(id)
}

// MaterialByName busca material pelo nome exibido.
func (s *Service) MaterialByName(name string) (entity.Material, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.MaterialByName(name)
}

// CollaboratorByName busca colaborador pelo nome exibido.
func (s *Service) CollaboratorByName(name string) (entity.Colaborador, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.CollaboratorByName(name)
}

// InvoiceByID busca nota fiscal por id.
func (s *Service) InvoiceByID(id string) (entity.NotaFiscal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.InvoiceByID(id)
}

// PartnerByID busca parceiro por id.
func (s *Service) PartnerByID(id string) (entity.Parceiro, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.PartnerByID(id)
}

// Snapshot devolve uma cópia das cinco coleções.
func (s *Service) Snapshot() ledger.Collections {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Snapshot()
}
