package entity

// Papéis de colaborador. O papel limita o que a interface pode fazer
// (edição/exclusão); não participa da contabilidade do ledger.
const (
	RoleOperador  = "operador"
	RoleGerente   = "gerente"
	RoleDiretor   = "diretor"
	RoleVisitante = "visitante"
)

// ValidRole informa se o papel é um dos quatro conhecidos.
func ValidRole(role string) bool {
	switch role {
	case RoleOperador, RoleGerente, RoleDiretor, RoleVisitante:
		return true
	}
	return false
}

// Colaborador é quem executa movimentações. As coordenadas existem apenas
// para o mapa da interface.
type Colaborador struct {
	ID           string  `json:"id"`
	Name         string  `json:"nome"`
	Role         string  `json:"role"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	PasswordHash string  `json:"passwordHash,omitempty"`
}
