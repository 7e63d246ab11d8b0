package domain

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound indica que nenhum registro tem a chave pedida.
var ErrNotFound = errors.New("application not found")

// StoreError representa falha de conexão, consulta ou decodificação no banco.
//
// Nunca deve ser devolvido verbatim ao cliente HTTP; é logado e convertido
// em resposta genérica.
type StoreError struct {
	Op  string
	Key Key
	Err error
}

func (e *StoreError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("store %s %q: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// IsStoreError reporta se err (ou algo que ele embrulha) é um *StoreError.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

// ApplicationStore é o contrato de leitura do armazenamento de aplicações.
//
// Implementações devem ser seguras para uso concorrente. Uma falha durante a
// iteração de uma página retorna erro; nunca uma página parcial como sucesso.
type ApplicationStore interface {
	// GetByKey retorna ErrNotFound quando a chave não existe.
	GetByKey(ctx context.Context, key Key) (Application, error)
	// PageFromStart retorna até limit registros em ordem crescente de chave.
	PageFromStart(ctx context.Context, limit int) ([]Application, error)
	// PageAfter retorna até limit registros com chave estritamente maior que key,
	// em ordem crescente de chave.
	PageAfter(ctx context.Context, key Key, limit int) ([]Application, error)
}
