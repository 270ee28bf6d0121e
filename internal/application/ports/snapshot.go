package ports

import "context"

// SnapshotStore é o contrato chave-valor de persistência: um documento JSON
// por coleção, mais a chave de versão do esquema. O conteúdo é opaco para o
// armazém; quem serializa é o serviço de estoque.
type SnapshotStore interface {
	// Load devolve o documento da chave; found=false se a chave não existe.
	Load(ctx context.Context, key string) (data []byte, found bool, err error)
	// Save grava (upsert) o documento da chave.
	Save(ctx context.Context, key string, data []byte) error
}
