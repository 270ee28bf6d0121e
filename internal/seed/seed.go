// Package seed traz os dados iniciais da base: o cenário padrão da revenda
// com faturamento alvo de ~R$ 500 mil no ano (constante de janeiro a
// setembro, alta em outubro, pico em novembro, dezembro zerado). Compras
// entram no dia 05 ou 10 de cada mês; vendas saem a partir do dia 15.
package seed

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestorone/estoque-api/internal/domain/entity"
	"github.com/gestorone/estoque-api/internal/domain/ledger"
)

// DefaultPassword senha inicial de todos os colaboradores da semente. Troca
// de senha fica para o diretor via atualização de colaborador.
const DefaultPassword = "gestor123"

// Collections monta as cinco coleções da semente. O hash da senha padrão é
// gerado aqui, uma vez por boot.
func Collections() (ledger.Collections, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return ledger.Collections{}, err
	}

	materials := seedMaterials()
	collaborators := seedCollaborators(string(hash))

	matByName := make(map[string]entity.Material, len(materials))
	for _, m := range materials {
		matByName[m.Name] = m
	}
	colByName := make(map[string]entity.Colaborador, len(collaborators))
	for _, c := range collaborators {
		colByName[c.Name] = c
	}

	return ledger.Collections{
		Materials:     materials,
		Movements:     seedMovements(matByName, colByName),
		Collaborators: collaborators,
		Partners:      seedPartners(),
		Invoices:      seedInvoices(),
	}, nil
}

func money(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedMaterials() []entity.Material {
	mat := func(id, nome, codigo string, qtd int64, local, categoria string, entradas int64, valor float64, img string) entity.Material {
		return entity.Material{
			ID: id, Name: nome, ManufacturerCode: codigo, Quantity: qtd,
			StorageLocation: local, Category: categoria, TotalInbound: entradas,
			UnitValue: money(valor), ImageURL: img,
		}
	}
	fer := entity.CategoryFerramenta
	con := entity.CategoryConsumivel

	return []entity.Material{
		mat("MAT007", "Furadeira Impacto", "200", 85, "Corredor A", fer, 600, 280.00, "https://m.media-amazon.com/images/I/717p-3I5N5L._AC_SL1500_.jpg"),
		mat("MAT010", "Parafusadeira Pro", "941", 60, "Corredor A", fer, 550, 350.00, "https://m.media-amazon.com/images/I/61k1f-h05ZL._AC_SL1500_.jpg"),
		mat("MAT020", "Serra Tico-Tico", "239", 35, "Corredor B", fer, 350, 380.00, "https://m.media-amazon.com/images/I/71u9ZTbClnL._AC_SL1500_.jpg"),
		mat("MAT028", "Torquímetro Digital", "385", 25, "Corredor C", fer, 300, 350.00, "https://m.media-amazon.com/images/I/61zBwn-4KLL._AC_SL1500_.jpg"),
		mat("MAT049", "Pistola Pintura HVLP", "385", 45, "Corredor B", fer, 400, 280.00, "https://m.media-amazon.com/images/I/61Bf4E226SL._AC_SL1500_.jpg"),
		mat("MAT001", "Chave de Fenda", "257", 450, "Gaveta 10", fer, 1200, 8.50, "https://m.media-amazon.com/images/I/617F3a8O9DL._AC_SL1500_.jpg"),
		mat("MAT002", "Parafuso Philips", "346", 5000, "Caixa 01", con, 20000, 0.25, "https://m.media-amazon.com/images/I/61k0p2y8d-L._AC_SL1500_.jpg"),
		mat("MAT003", "Arruela Lisa", "170", 4200, "Caixa 02", con, 15000, 0.15, "https://m.media-amazon.com/images/I/61Kq-unm4bL._AC_SL1500_.jpg"),
		mat("MAT004", "Porca Sextavada", "239", 1500, "Caixa 03", con, 5000, 0.20, "https://m.media-amazon.com/images/I/71FkL45B2IL._AC_SL1500_.jpg"),
		mat("MAT005", "Bucha 8mm", "111", 2800, "Caixa 04", con, 8000, 0.50, "https://m.media-amazon.com/images/I/61gXyP4QZLL._AC_SL1500_.jpg"),
		mat("MAT006", "Martelo Unha", "462", 180, "Painel 1", fer, 600, 35.00, "https://m.media-amazon.com/images/I/51rHe2a7rSL._AC_SL1200_.jpg"),
		mat("MAT008", "Jogo Chave Allen", "290", 200, "Gaveta 12", fer, 500, 15.00, "https://m.media-amazon.com/images/I/71x4agL-zSL._AC_SL1500_.jpg"),
		mat("MAT009", "Trena 5m", "789", 220, "Balcão", fer, 600, 25.00, "https://m.media-amazon.com/images/I/71sVo7kKqJL._AC_SL1500_.jpg"),
		mat("MAT011", "Cola Madeira", "592", 90, "Prateleira Quimicos", con, 400, 12.00, "https://m.media-amazon.com/images/I/61NGLtKqJkL._AC_SL1500_.jpg"),
		mat("MAT012", "Spray Lubrificante", "385", 85, "Prateleira Quimicos", con, 300, 28.00, "https://m.media-amazon.com/images/I/61j4iP1v-GL._AC_SL1500_.jpg"),
		mat("MAT013", "Chave Inglesa", "278", 40, "Painel 2", fer, 150, 45.50, "https://m.media-amazon.com/images/I/510Ralo-1kL._AC_SL1500_.jpg"),
		mat("MAT017", "Alicate Universal", "257", 60, "Painel 3", fer, 200, 38.00, "https://m.media-amazon.com/images/I/61G+pTT-Q-L._AC_SL1500_.jpg"),
		mat("MAT024", "Esquadro Aço", "290", 100, "Gaveta 15", fer, 250, 25.00, "https://m.media-amazon.com/images/I/613n-u7vwsL._AC_SL1500_.jpg"),
		mat("MAT050", "Suporte Mão Francesa", "941", 80, "Caixa 10", fer, 200, 15.00, "https://m.media-amazon.com/images/I/516Lq2kADIL._AC_SL1500_.jpg"),
		mat("MAT100", "Lixa d'água P120", "LIX-120", 1500, "Gaveta 20", con, 3000, 1.50, "https://m.media-amazon.com/images/I/71z1h-U5VjL._AC_SL1500_.jpg"),
		mat("MAT101", "Disco de Corte Inox", "DIS-001", 300, "Caixa 05", con, 600, 5.50, "https://m.media-amazon.com/images/I/815yS1HwbyL._AC_SL1500_.jpg"),
		mat("MAT102", "Luva de Malha", "EPI-050", 120, "Armário EPI", con, 300, 4.00, "https://m.media-amazon.com/images/I/81VqJhtB+vL._AC_SL1500_.jpg"),
		mat("MAT103", "Estopa para Limpeza (Kg)", "LIM-200", 50, "Depósito Limpeza", con, 100, 12.00, "https://m.media-amazon.com/images/I/81b2+6oB-3L._AC_SL1500_.jpg"),
	}
}

func seedCollaborators(passwordHash string) []entity.Colaborador {
	col := func(id, nome string, lat, lon float64, role string) entity.Colaborador {
		return entity.Colaborador{
			ID: id, Name: nome, Role: role,
			Latitude: lat, Longitude: lon, PasswordHash: passwordHash,
		}
	}
	return []entity.Colaborador{
		col("COL001", "Jorge", -20.4332, -40.3484, entity.RoleOperador),
		col("COL002", "João", -20.3190, -40.3377, entity.RoleOperador),
		col("COL003", "Luiz", -20.2976, -40.2958, entity.RoleDiretor),
		col("COL004", "Davi", -20.2118, -40.2581, entity.RoleOperador),
		col("COL005", "Henrique", -20.2713, -40.2993, entity.RoleGerente),
		col("COL006", "Arthur", -20.3500, -40.3100, entity.RoleOperador),
		col("COL007", "Carlos", -20.3300, -40.2900, entity.RoleOperador),
		col("COL008", "Gabriel", -20.3100, -40.3300, entity.RoleOperador),
		col("COL009", "Eduardo", -20.2900, -40.3500, entity.RoleOperador),
		col("COL010", "Pedro", -20.2700, -40.3100, entity.RoleOperador),
	}
}

func seedPartners() []entity.Parceiro {
	par := func(id, nome, cnpj, endereco, cidade, uf, telefone string, lat, lon float64) entity.Parceiro {
		return entity.Parceiro{
			ID: id, Name: nome, CNPJ: cnpj, Address: endereco,
			City: cidade, UF: uf, Phone: telefone, Latitude: lat, Longitude: lon,
		}
	}
	return []entity.Parceiro{
		par("PAR001", "Casa dos materiais", "6124920529200", "Rua três", "Cariacica", "ES", "2733361258", -20.2655, -40.4204),
		par("PAR002", "Ferragens Silva", "12345678000195", "Av. Principal", "Vitória", "ES", "2733254879", -20.3194, -40.3378),
		par("PAR003", "Materiais Constru", "98765432000187", "Rua das Flores", "Vila Velha", "ES", "2733547123", -20.3297, -40.2925),
		par("PAR004", "Depot Madeiras", "45678912000134", "Rua do Comércio", "Serra", "ES", "2733658987", -20.1293, -40.3079),
		par("PAR005", "Tech Ferragens", "65412378000156", "Rua Projetada", "Cariacica", "ES", "2733321456", -20.2680, -40.4250),
		par("PAR008", "Ferro & Aço", "15975346000128", "Rua do Aço", "Serra", "ES", "2733369874", -20.1285, -40.3100),
	}
}

func seedInvoices() []entity.NotaFiscal {
	nf := func(id, numero, parceiro string, data time.Time, total float64, item entity.NotaFiscalItem) entity.NotaFiscal {
		return entity.NotaFiscal{
			ID: id, Number: numero, PartnerID: parceiro, IssueDate: data,
			TotalValue: money(total), Items: []entity.NotaFiscalItem{item},
		}
	}
	item := func(materialID, nome string, qtd int64, valor float64) entity.NotaFiscalItem {
		return entity.NotaFiscalItem{MaterialID: materialID, Name: nome, Quantity: qtd, UnitValue: money(valor)}
	}
	return []entity.NotaFiscal{
		nf("NF-JAN", "20250105", "PAR001", day(2025, 1, 5), 33600.00, item("MAT007", "Furadeira Impacto", 120, 280.00)),
		nf("NF-FEV", "20250205", "PAR002", day(2025, 2, 5), 35000.00, item("MAT010", "Parafusadeira Pro", 100, 350.00)),
		nf("NF-MAR", "20250305", "PAR003", day(2025, 3, 5), 19000.00, item("MAT020", "Serra Tico-Tico", 50, 380.00)),
		nf("NF-ABR", "20250405", "PAR004", day(2025, 4, 5), 17500.00, item("MAT028", "Torquímetro Digital", 50, 350.00)),
		nf("NF-MAI", "20250505", "PAR005", day(2025, 5, 5), 22400.00, item("MAT049", "Pistola Pintura HVLP", 80, 280.00)),
		nf("NF-JUN", "20250605", "PAR008", day(2025, 6, 5), 8500.00, item("MAT001", "Chave de Fenda", 1000, 8.50)),
		nf("NF-JUL", "20250705", "PAR001", day(2025, 7, 5), 5000.00, item("MAT002", "Parafuso Philips", 20000, 0.25)),
		nf("NF-AGO", "20250805", "PAR002", day(2025, 8, 5), 25000.00, item("MAT009", "Trena 5m", 1000, 25.00)),
		nf("NF-SET", "20250905", "PAR003", day(2025, 9, 5), 30400.00, item("MAT017", "Alicate Universal", 800, 38.00)),
		// Grandes entradas para cobrir o pico de out/nov
		nf("NF-OUT", "20251005", "PAR004", day(2025, 10, 5), 98000.00, item("MAT007", "Furadeira Impacto", 350, 280.00)),
		nf("NF-NOV", "20251105", "PAR005", day(2025, 11, 5), 122500.00, item("MAT010", "Parafusadeira Pro", 350, 350.00)),
		// Entradas de consumíveis
		nf("NF-CONS1", "20250110", "PAR005", day(2025, 1, 10), 3500.00, item("MAT100", "Lixa d'água P120", 2000, 1.50)),
		nf("NF-CONS2", "20250610", "PAR008", day(2025, 6, 10), 2200.00, item("MAT101", "Disco de Corte Inox", 400, 5.50)),
	}
}

// seedMovements monta o log inicial. Referências são resolvidas contra as
// coleções da própria semente; nomes sem cadastro ("Equipe", "Oficina")
// ficam sem id de propósito, como apontamentos de uso interno.
func seedMovements(matByName map[string]entity.Material, colByName map[string]entity.Colaborador) []entity.Movimentacao {
	mov := func(id, material string, qtd int64, colaborador string, kind entity.MovementKind, data time.Time, nota string) entity.Movimentacao {
		m := entity.Movimentacao{
			ID: id, MaterialName: material, CollaboratorName: colaborador,
			Quantity: qtd, Kind: kind, Date: data, InvoiceNumber: nota,
		}
		if mat, ok := matByName[material]; ok {
			m.MaterialID = mat.ID
		}
		if col, ok := colByName[colaborador]; ok {
			m.CollaboratorID = col.ID
		}
		return m
	}
	ent := entity.KindEntrada
	sai := entity.KindSaida
	conR := entity.KindConsumo

	return []entity.Movimentacao{
		// Janeiro
		mov("ENT_JAN", "Furadeira Impacto", 120, "Carlos", ent, day(2025, 1, 5), "20250105"),
		mov("ENT_JAN_CONS", "Lixa d'água P120", 2000, "Carlos", ent, day(2025, 1, 10), "20250110"),
		mov("SAI_JAN_1", "Furadeira Impacto", 80, "João", sai, day(2025, 1, 15), ""),
		mov("SAI_JAN_2", "Chave de Fenda", 200, "Luiz", sai, day(2025, 1, 20), ""),
		mov("SAI_JAN_3", "Martelo Unha", 100, "Davi", sai, day(2025, 1, 25), ""),
		mov("SAI_JAN_4", "Lixa d'água P120", 500, "Gabriel", sai, day(2025, 1, 28), ""),
		mov("CONS_JAN_1", "Lixa d'água P120", 50, "Jorge", conR, day(2025, 1, 12), ""),
		// Fevereiro
		mov("ENT_FEV", "Parafusadeira Pro", 100, "Jorge", ent, day(2025, 2, 5), "20250205"),
		mov("SAI_FEV_1", "Parafusadeira Pro", 60, "Gabriel", sai, day(2025, 2, 15), ""),
		mov("SAI_FEV_2", "Jogo Chave Allen", 200, "Pedro", sai, day(2025, 2, 20), ""),
		mov("SAI_FEV_3", "Cola Madeira", 300, "Arthur", sai, day(2025, 2, 22), ""),
		mov("CONS_FEV_1", "Luva de Malha", 10, "Equipe", conR, day(2025, 2, 2), ""),
		// Março
		mov("ENT_MAR", "Serra Tico-Tico", 50, "Henrique", ent, day(2025, 3, 5), "20250305"),
		mov("SAI_MAR_1", "Serra Tico-Tico", 60, "Carlos", sai, day(2025, 3, 15), ""),
		mov("SAI_MAR_2", "Esquadro Aço", 100, "João", sai, day(2025, 3, 20), ""),
		mov("SAI_MAR_3", "Bucha 8mm", 5000, "Luiz", sai, day(2025, 3, 25), ""),
		// Abril
		mov("ENT_ABR", "Torquímetro Digital", 50, "Jorge", ent, day(2025, 4, 5), "20250405"),
		mov("SAI_ABR_1", "Torquímetro Digital", 60, "Davi", sai, day(2025, 4, 15), ""),
		mov("SAI_ABR_2", "Trena 5m", 200, "Gabriel", sai, day(2025, 4, 20), ""),
		mov("SAI_ABR_3", "Parafuso Philips", 5000, "Henrique", sai, day(2025, 4, 25), ""),
		mov("CONS_ABR_1", "Estopa para Limpeza (Kg)", 5, "Limpeza", conR, day(2025, 4, 10), ""),
		// Maio
		mov("ENT_MAI", "Pistola Pintura HVLP", 80, "Arthur", ent, day(2025, 5, 5), "20250505"),
		mov("SAI_MAI_1", "Pistola Pintura HVLP", 80, "Pedro", sai, day(2025, 5, 15), ""),
		mov("SAI_MAI_2", "Spray Lubrificante", 100, "Carlos", sai, day(2025, 5, 20), ""),
		mov("SAI_MAI_3", "Suporte Mão Francesa", 100, "João", sai, day(2025, 5, 25), ""),
		// Junho
		mov("ENT_JUN", "Chave de Fenda", 1000, "Luiz", ent, day(2025, 6, 5), "20250605"),
		mov("ENT_JUN_CONS", "Disco de Corte Inox", 400, "Luiz", ent, day(2025, 6, 10), "20250610"),
		mov("SAI_JUN_1", "Chave Inglesa", 200, "Davi", sai, day(2025, 6, 15), ""),
		mov("SAI_JUN_2", "Alicate Universal", 300, "Jorge", sai, day(2025, 6, 20), ""),
		mov("SAI_JUN_3", "Martelo Unha", 200, "Henrique", sai, day(2025, 6, 25), ""),
		mov("SAI_JUN_4", "Disco de Corte Inox", 100, "Henrique", sai, day(2025, 6, 28), ""),
		mov("CONS_JUN_1", "Disco de Corte Inox", 10, "Oficina", conR, day(2025, 6, 12), ""),
		// Julho
		mov("ENT_JUL", "Parafuso Philips", 20000, "Gabriel", ent, day(2025, 7, 5), "20250705"),
		mov("SAI_JUL_1", "Furadeira Impacto", 60, "Arthur", sai, day(2025, 7, 15), ""),
		mov("SAI_JUL_2", "Chave de Fenda", 500, "Pedro", sai, day(2025, 7, 20), ""),
		mov("SAI_JUL_3", "Trena 5m", 250, "Carlos", sai, day(2025, 7, 25), ""),
		// Agosto
		mov("ENT_AGO", "Trena 5m", 1000, "João", ent, day(2025, 8, 5), "20250805"),
		mov("SAI_AGO_1", "Parafusadeira Pro", 50, "Luiz", sai, day(2025, 8, 15), ""),
		mov("SAI_AGO_2", "Arruela Lisa", 10000, "Davi", sai, day(2025, 8, 20), ""),
		mov("SAI_AGO_3", "Porca Sextavada", 5000, "Jorge", sai, day(2025, 8, 25), ""),
		mov("SAI_AGO_4", "Spray Lubrificante", 250, "Henrique", sai, day(2025, 8, 28), ""),
		mov("CONS_AGO_1", "Lixa d'água P120", 50, "Oficina", conR, day(2025, 8, 10), ""),
		// Setembro
		mov("ENT_SET", "Alicate Universal", 800, "Gabriel", ent, day(2025, 9, 5), "20250905"),
		mov("SAI_SET_1", "Alicate Universal", 400, "Arthur", sai, day(2025, 9, 15), ""),
		mov("SAI_SET_2", "Bucha 8mm", 10000, "Pedro", sai, day(2025, 9, 20), ""),
		mov("SAI_SET_3", "Cola Madeira", 500, "Carlos", sai, day(2025, 9, 25), ""),
		// Outubro (alta temporada)
		mov("ENT_OUT", "Furadeira Impacto", 350, "João", ent, day(2025, 10, 5), "20251005"),
		mov("SAI_OUT_1", "Furadeira Impacto", 250, "Luiz", sai, day(2025, 10, 15), ""),
		mov("SAI_OUT_2", "Serra Tico-Tico", 50, "Davi", sai, day(2025, 10, 18), ""),
		mov("SAI_OUT_3", "Pistola Pintura HVLP", 40, "Jorge", sai, day(2025, 10, 22), ""),
		mov("CONS_OUT_1", "Estopa para Limpeza (Kg)", 10, "Limpeza Geral", conR, day(2025, 10, 2), ""),
		// Novembro (pico máximo)
		mov("ENT_NOV", "Parafusadeira Pro", 350, "Henrique", ent, day(2025, 11, 5), "20251105"),
		mov("SAI_NOV_1", "Parafusadeira Pro", 300, "Gabriel", sai, day(2025, 11, 15), ""),
		mov("SAI_NOV_2", "Torquímetro Digital", 100, "Arthur", sai, day(2025, 11, 20), ""),
		mov("SAI_NOV_3", "Chave Inglesa", 200, "Pedro", sai, day(2025, 11, 25), ""),
		mov("SAI_NOV_4", "Disco de Corte Inox", 100, "Pedro", sai, day(2025, 11, 28), ""),
		mov("CONS_NOV_1", "Luva de Malha", 20, "Equipe Extra", conR, day(2025, 11, 1), ""),
	}
}
