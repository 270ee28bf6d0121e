package dto

import "github.com/shopspring/decimal"

// MovementRequest cria ou edita uma movimentação. Material e colaborador são
// referenciados pelo nome exibido; a data vem em "2006-01-02" ou RFC 3339.
type MovementRequest struct {
	Material      string `json:"material"`
	Collaborator  string `json:"colaborador"`
	Quantity      int64  `json:"quantidade"`
	Kind          string `json:"tipo"`
	Date          string `json:"data"`
	InvoiceNumber string `json:"notaFiscal"`
}

// MaterialRequest cria ou edita um material.
type MaterialRequest struct {
	Name             string          `json:"nome"`
	ManufacturerCode string          `json:"codigoFabricante"`
	Quantity         int64           `json:"quantidade"`
	StorageLocation  string          `json:"armazenamento"`
	Category         string          `json:"categoria"`
	UnitValue        decimal.Decimal `json:"valorUnitario"`
	ImageURL         string          `json:"imageUrl"`
}

// StockOverrideRequest correção administrativa direta da quantidade.
type StockOverrideRequest struct {
	NewQuantity int64 `json:"novaQuantidade"`
}

// BatchValueRequest item do recálculo de valor unitário em lote.
type BatchValueRequest struct {
	ID            string          `json:"id"`
	NewTotalValue decimal.Decimal `json:"novoValorTotal"`
}

// RoleUpdateRequest troca o papel de um colaborador.
type RoleUpdateRequest struct {
	Role string `json:"role"`
}

// LoginRequest credenciais do colaborador.
type LoginRequest struct {
	Name     string `json:"nome"`
	Password string `json:"senha"`
}

// LoginResponse token emitido e identidade resumida.
type LoginResponse struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Name  string `json:"nome"`
	Role  string `json:"role"`
}
