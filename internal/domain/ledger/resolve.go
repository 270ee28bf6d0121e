package ledger

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizer remove marcas diacríticas (NFD + remoção de Mn + NFC), para que
// "Saída", "saida" e "SAÍDA" resolvam para a mesma chave de índice.
var normalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeName produz a chave canônica de busca de um nome exibido:
// sem acentos, minúsculas, sem espaços nas pontas.
func normalizeName(name string) string {
	folded, _, err := transform.String(normalizer, name)
	if err != nil {
		folded = name
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
