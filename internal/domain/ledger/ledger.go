// Package ledger implementa o núcleo de contabilidade do estoque: a coleção
// de materiais e o log de movimentações, com reconciliação automática da
// quantidade em mãos a cada inclusão, edição e exclusão de lançamento.
//
// O ledger é puro e single-writer: não faz I/O, não conhece persistência e
// espera que o chamador serialize as operações. Cada operação valida, aplica
// por completo e retorna — não há estados intermediários observáveis.
package ledger

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestorone/estoque-api/internal/domain"
	"github.com/gestorone/estoque-api/internal/domain/entity"
)

// Collections agrupa as cinco coleções que o ledger possui.
type Collections struct {
	Materials     []entity.Material     `json:"materials"`
	Movements     []entity.Movimentacao `json:"movements"`
	Collaborators []entity.Colaborador  `json:"collaborators"`
	Partners      []entity.Parceiro     `json:"partners"`
	Invoices      []entity.NotaFiscal   `json:"invoices"`
}

// MovementDraft é o rascunho de uma movimentação vinda de formulário ou do
// assistente: referencia material e colaborador pelo nome exibido.
type MovementDraft struct {
	MaterialName     string
	CollaboratorName string
	Quantity         int64
	Date             time.Time
	InvoiceNumber    string
}

// BatchValueUpdate pedido de recálculo do valor unitário a partir de um novo
// valor total do item.
type BatchValueUpdate struct {
	ID            string
	NewTotalValue decimal.Decimal
}

// Ledger mantém o estado em memória. Movimentações ficam em ordem decrescente
// de data (empates preservam a ordem de inserção, mais recente primeiro).
// Os índices dão resolução O(1) por id e por nome normalizado.
type Ledger struct {
	materials     []*entity.Material
	movements     []*entity.Movimentacao
	collaborators []*entity.Colaborador
	partners      []entity.Parceiro
	invoices      []entity.NotaFiscal

	matByID   map[string]*entity.Material
	matByName map[string]*entity.Material
	colByID   map[string]*entity.Colaborador
	colByName map[string]*entity.Colaborador
	movByID   map[string]*entity.Movimentacao
}

// New cria um ledger com as coleções semente.
func New(seed Collections) *Ledger {
	l := &Ledger{}
	l.Reset(seed)
	return l
}

// Reset restaura todas as coleções para os valores informados.
func (l *Ledger) Reset(seed Collections) {
	l.materials = make([]*entity.Material, 0, len(seed.Materials))
	for _, m := range seed.Materials {
		mat := m
		l.materials = append(l.materials, &mat)
	}
	l.movements = make([]*entity.Movimentacao, 0, len(seed.Movements))
	for _, m := range seed.Movements {
		mov := m
		l.movements = append(l.movements, &mov)
	}
	l.collaborators = make([]*entity.Colaborador, 0, len(seed.Collaborators))
	for _, c := range seed.Collaborators {
		col := c
		l.collaborators = append(l.collaborators, &col)
	}
	l.partners = append([]entity.Parceiro(nil), seed.Partners...)
	l.invoices = append([]entity.NotaFiscal(nil), seed.Invoices...)

	l.sortMovements()
	l.rebuildIndexes()
}

// ── Movimentações ─────────────────────────────────────────────────────────────

// AddMovement resolve material e colaborador pelo nome (sem distinguir
// maiúsculas nem acentos), gera o lançamento e aplica o efeito no estoque:
// entrada soma, saída e consumo subtraem. Sem clamping — o estoque pode
// ficar negativo. Falha de resolução não altera nada.
func (l *Ledger) AddMovement(draft MovementDraft, kind entity.MovementKind) (entity.Movimentacao, error) {
	if !kind.Valid() || draft.Quantity <= 0 {
		return entity.Movimentacao{}, domain.ErrInvalidInput
	}
	mat, ok := l.matByName[normalizeName(draft.MaterialName)]
	if !ok {
		return entity.Movimentacao{}, domain.ErrMaterialNotFound
	}
	col, ok := l.colByName[normalizeName(draft.CollaboratorName)]
	if !ok {
		return entity.Movimentacao{}, domain.ErrCollaboratorNotFound
	}

	mov := &entity.Movimentacao{
		ID:               uuid.New().String(),
		MaterialID:       mat.ID,
		MaterialName:     mat.Name,
		CollaboratorID:   col.ID,
		CollaboratorName: col.Name,
		Quantity:         draft.Quantity,
		Kind:             kind,
		Date:             draft.Date,
	}
	if kind == entity.KindEntrada {
		mov.InvoiceNumber = draft.InvoiceNumber
	}

	l.movements = append([]*entity.Movimentacao{mov}, l.movements...)
	l.sortMovements()
	l.movByID[mov.ID] = mov

	mat.Quantity += mov.QuantityDelta()
	return *mov, nil
}

// UpdateMovement substitui a movimentação com o mesmo id: reverte o efeito
// antigo (pelo id do material) e aplica o novo (resolvendo o material pelo
// nome, que pode ter mudado). Metades não resolvíveis são puladas — a deriva
// de quantidade resultante é uma limitação aceita de referências penduradas.
func (l *Ledger) UpdateMovement(updated entity.Movimentacao) (entity.Movimentacao, error) {
	cur, ok := l.movByID[updated.ID]
	if !ok {
		return entity.Movimentacao{}, domain.ErrMovementNotFound
	}
	if !updated.Kind.Valid() || updated.Quantity <= 0 {
		return entity.Movimentacao{}, domain.ErrInvalidInput
	}

	// Reverte a antiga: entrada revertida subtrai, saída/consumo revertidos somam.
	if mat, ok := l.matByID[cur.MaterialID]; ok {
		mat.Quantity -= cur.QuantityDelta()
	}

	// Aplica a nova.
	if mat, ok := l.matByName[normalizeName(updated.MaterialName)]; ok {
		updated.MaterialID = mat.ID
		updated.MaterialName = mat.Name
		mat.Quantity += updated.QuantityDelta()
	} else {
		updated.MaterialID = ""
	}
	if col, ok := l.colByName[normalizeName(updated.CollaboratorName)]; ok {
		updated.CollaboratorID = col.ID
		updated.CollaboratorName = col.Name
	} else {
		updated.CollaboratorID = ""
	}
	if updated.Kind != entity.KindEntrada {
		updated.InvoiceNumber = ""
	}

	*cur = updated
	l.sortMovements()
	return *cur, nil
}

// DeleteMovement reverte o efeito do lançamento sobre o material (pulado se a
// referência estiver pendurada) e o remove do log.
func (l *Ledger) DeleteMovement(id string) (entity.Movimentacao, error) {
	cur, ok := l.movByID[id]
	if !ok {
		return entity.Movimentacao{}, domain.ErrMovementNotFound
	}
	if mat, ok := l.matByID[cur.MaterialID]; ok {
		mat.Quantity -= cur.QuantityDelta()
	}
	delete(l.movByID, id)
	for i, m := range l.movements {
		if m.ID == id {
			l.movements = append(l.movements[:i], l.movements[i+1:]...)
			break
		}
	}
	return *cur, nil
}

// ── Materiais ─────────────────────────────────────────────────────────────────

// MaterialDraft rascunho de material para criação.
type MaterialDraft struct {
	Name             string
	ManufacturerCode string
	Quantity         int64
	StorageLocation  string
	Category         string
	UnitValue        decimal.Decimal
	ImageURL         string
}

// AddMaterial cria o material com id novo e TotalInbound semeado com a
// quantidade inicial. Não gera movimentação.
func (l *Ledger) AddMaterial(draft MaterialDraft) (entity.Material, error) {
	if draft.Name == "" {
		return entity.Material{}, domain.ErrInvalidInput
	}
	mat := &entity.Material{
		ID:               uuid.New().String(),
		Name:             draft.Name,
		ManufacturerCode: draft.ManufacturerCode,
		Quantity:         draft.Quantity,
		StorageLocation:  draft.StorageLocation,
		Category:         draft.Category,
		TotalInbound:     draft.Quantity,
		UnitValue:        draft.UnitValue,
		ImageURL:         draft.ImageURL,
	}
	l.materials = append([]*entity.Material{mat}, l.materials...)
	l.matByID[mat.ID] = mat
	l.rebuildMaterialNameIndex()
	return *mat, nil
}

// UpdateMaterial substitui o material por id (edição administrativa completa,
// inclusive quantidade). Renomear não reetiqueta movimentações históricas.
func (l *Ledger) UpdateMaterial(updated entity.Material) error {
	cur, ok := l.matByID[updated.ID]
	if !ok {
		return domain.ErrMaterialNotFound
	}
	*cur = updated
	l.rebuildMaterialNameIndex()
	return nil
}

// DeleteMaterial remove o material. Movimentações históricas que o
// referenciam permanecem no log com a referência pendurada.
func (l *Ledger) DeleteMaterial(id string) error {
	if _, ok := l.matByID[id]; !ok {
		return domain.ErrMaterialNotFound
	}
	delete(l.matByID, id)
	for i, m := range l.materials {
		if m.ID == id {
			l.materials = append(l.materials[:i], l.materials[i+1:]...)
			break
		}
	}
	l.rebuildMaterialNameIndex()
	return nil
}

// UpdateMaterialStock sobrescreve a quantidade diretamente, fora da
// contabilidade de movimentações (correção administrativa).
func (l *Ledger) UpdateMaterialStock(id string, newQuantity int64) error {
	mat, ok := l.matByID[id]
	if !ok {
		return domain.ErrMaterialNotFound
	}
	mat.Quantity = newQuantity
	return nil
}

// UpdateMaterialBatch substitui em lote os materiais cujo id exista;
// ids desconhecidos são ignorados.
func (l *Ledger) UpdateMaterialBatch(updates []entity.Material) {
	for _, u := range updates {
		if cur, ok := l.matByID[u.ID]; ok {
			*cur = u
		}
	}
	l.rebuildMaterialNameIndex()
}

// UpdateMaterialBatchValues recalcula o valor unitário a partir de um novo
// valor total (total ÷ quantidade atual). Itens com quantidade ≤ 0 não mudam.
func (l *Ledger) UpdateMaterialBatchValues(updates []BatchValueUpdate) {
	for _, u := range updates {
		mat, ok := l.matByID[u.ID]
		if !ok || mat.Quantity <= 0 {
			continue
		}
		mat.UnitValue = u.NewTotalValue.Div(decimal.NewFromInt(mat.Quantity))
	}
}

// ── Colaboradores ─────────────────────────────────────────────────────────────

// UpdateCollaboratorRole troca o papel de um colaborador.
func (l *Ledger) UpdateCollaboratorRole(id, role string) error {
	if !entity.ValidRole(role) {
		return domain.ErrInvalidInput
	}
	col, ok := l.colByID[id]
	if !ok {
		return domain.ErrCollaboratorNotFound
	}
	col.Role = role
	return nil
}

// ── Leitura ───────────────────────────────────────────────────────────────────

// Materials devolve uma cópia da coleção de materiais.
func (l *Ledger) Materials() []entity.Material {
	out := make([]entity.Material, 0, len(l.materials))
	for _, m := range l.materials {
		out = append(out, *m)
	}
	return out
}

// Movements devolve uma cópia do log, em ordem decrescente de data.
func (l *Ledger) Movements() []entity.Movimentacao {
	out := make([]entity.Movimentacao, 0, len(l.movements))
	for _, m := range l.movements {
		out = append(out, *m)
	}
	return out
}

// Collaborators devolve uma cópia da coleção de colaboradores.
func (l *Ledger) Collaborators() []entity.Colaborador {
	out := make([]entity.Colaborador, 0, len(l.collaborators))
	for _, c := range l.collaborators {
		out = append(out, *c)
	}
	return out
}

// Partners devolve uma cópia da coleção de parceiros.
func (l *Ledger) Partners() []entity.Parceiro {
	return append([]entity.Parceiro(nil), l.partners...)
}

// Invoices devolve uma cópia da coleção de notas fiscais.
func (l *Ledger) Invoices() []entity.NotaFiscal {
	return append([]entity.NotaFiscal(nil), l.invoices...)
}

// MaterialByID busca material por id.
func (l *Ledger) MaterialByID(id string) (entity.Material, bool) {
	if m, ok := l.matByID[id]; ok {
		return *m, true
	}
	return entity.Material{}, false
}

// MaterialByName busca material pelo nome exibido (sem acentos/maiúsculas).
func (l *Ledger) MaterialByName(name string) (entity.Material, bool) {
	if m, ok := l.matByName[normalizeName(name)]; ok {
		return *m, true
	}
	return entity.Material{}, false
}

// CollaboratorByName busca colaborador pelo nome exibido.
func (l *Ledger) CollaboratorByName(name string) (entity.Colaborador, bool) {
	if c, ok := l.colByName[normalizeName(name)]; ok {
		return *c, true
	}
	return entity.Colaborador{}, false
}

// InvoiceByID busca nota fiscal por id.
func (l *Ledger) InvoiceByID(id string) (entity.NotaFiscal, bool) {
	for _, inv := range l.invoices {
		if inv.ID == id {
			return inv, true
		}
	}
	return entity.NotaFiscal{}, false
}

// PartnerByID busca parceiro por id.
func (l *Ledger) PartnerByID(id string) (entity.Parceiro, bool) {
	for _, p := range l.partners {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Parceiro{}, false
}

// Snapshot devolve uma cópia completa das cinco coleções.
func (l *Ledger) Snapshot() Collections {
	return Collections{
		Materials:     l.Materials(),
		Movements:     l.Movements(),
		Collaborators: l.Collaborators(),
		Partners:      l.Partners(),
		Invoices:      l.Invoices(),
	}
}

// ── Internos ──────────────────────────────────────────────────────────────────

// sortMovements mantém o log decrescente por data; sort estável preserva a
// ordem de inserção entre datas iguais (lançamento novo primeiro).
func (l *Ledger) sortMovements() {
	sort.SliceStable(l.movements, func(i, j int) bool {
		return l.movements[i].Date.After(l.movements[j].Date)
	})
}

func (l *Ledger) rebuildIndexes() {
	l.matByID = make(map[string]*entity.Material, len(l.materials))
	for _, m := range l.materials {
		l.matByID[m.ID] = m
	}
	l.rebuildMaterialNameIndex()

	l.colByID = make(map[string]*entity.Colaborador, len(l.collaborators))
	l.colByName = make(map[string]*entity.Colaborador, len(l.collaborators))
	for _, c := range l.collaborators {
		l.colByID[c.ID] = c
		key := normalizeName(c.Name)
		if _, exists := l.colByName[key]; !exists {
			l.colByName[key] = c
		}
	}

	l.movByID = make(map[string]*entity.Movimentacao, len(l.movements))
	for _, m := range l.movements {
		l.movByID[m.ID] = m
	}
}

// rebuildMaterialNameIndex reindexa nomes; em nomes duplicados vale a
// primeira ocorrência, como a busca linear do sistema de origem.
func (l *Ledger) rebuildMaterialNameIndex() {
	l.matByName = make(map[string]*entity.Material, len(l.materials))
	for _, m := range l.materials {
		key := normalizeName(m.Name)
		if _, exists := l.matByName[key]; !exists {
			l.matByName[key] = m
		}
	}
}
