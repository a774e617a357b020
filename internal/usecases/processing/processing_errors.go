package processing

import (
	"errors"
	"fmt"
)

// Erros específicos do processamento de perguntas
var (
	ErrInvalidRecords    = errors.New("registros de deals inválidos")
	ErrMissingColumn     = errors.New("coluna obrigatória ausente em todos os registros")
	ErrTooManyRecords    = errors.New("quantidade de registros acima do limite")
	ErrProcessTimeout    = errors.New("tempo limite de processamento excedido")
	ErrUnexpectedFailure = errors.New("falha inesperada no processamento")
)

// Códigos de erro do processamento
const (
	CodeInvalidRecords = "PROC_001"
	CodeMissingColumn  = "PROC_002"
	CodeTooManyRecords = "PROC_003"
	CodeTimeout        = "PROC_004"
	CodeUnexpected     = "PROC_005"
)

// ProcessingError é um erro com contexto adicional do pipeline
type ProcessingError struct {
	Err     error  // Erro base
	Code    string // Código do erro
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ProcessingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// NewProcessingError cria um novo ProcessingError
func NewProcessingError(err error, code string, details string) *ProcessingError {
	return &ProcessingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
