package entity

// Parceiro é um fornecedor. Dados de referência somente leitura para o
// ledger; o oráculo usa o histórico de compras por parceiro.
type Parceiro struct {
	ID        string  `json:"id"`
	Name      string  `json:"nome"`
	CNPJ      string  `json:"cnpj"`
	Address   string  `json:"endereco"`
	City      string  `json:"cidade"`
	UF        string  `json:"uf"`
	Phone     string  `json:"telefone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
