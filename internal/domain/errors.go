package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound             = errors.New("recurso não encontrado")
	ErrMaterialNotFound     = errors.New("material não encontrado")
	ErrCollaboratorNotFound = errors.New("colaborador não encontrado")
	ErrMovementNotFound     = errors.New("movimentação não encontrada")
	ErrInvoiceNotFound      = errors.New("nota fiscal não encontrada")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrUnauthorized         = errors.New("não autorizado")
	ErrForbidden            = errors.New("acesso negado")
	ErrActionPending        = errors.New("existe uma ação pendente de confirmação")
	ErrNoPendingAction      = errors.New("não existe ação pendente")
)
