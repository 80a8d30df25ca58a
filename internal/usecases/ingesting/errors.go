package ingesting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/sales-performance-ingest/internal/period"
	"github.com/vfg2006/sales-performance-ingest/internal/workbook"
	"github.com/vfg2006/sales-performance-ingest/pkg/ingestErrors"
)

// Erros fatais da ingestão
var (
	ErrInvalidFilenameFormat = period.ErrInvalidFilenameFormat
	ErrEmptyWorkbook         = workbook.ErrNoSheets
	ErrUnreadableBinary      = workbook.ErrUnreadable
)

// IngestionError é um erro fatal com contexto do arquivo
type IngestionError struct {
	Err      error  // Erro base
	Code     string // Código de erro
	FileName string // Arquivo envolvido
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *IngestionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *IngestionError) Unwrap() error {
	return e.Err
}

func (e *IngestionError) ErrorCode() string {
	return e.Code
}

// NewIngestionError cria um novo IngestionError classificando o erro base
func NewIngestionError(err error, fileName string) *IngestionError {
	return &IngestionError{
		Err:      err,
		Code:     classify(err),
		FileName: fileName,
	}
}

func classify(err error) string {
	switch {
	case errors.Is(err, ErrInvalidFilenameFormat):
		return ingestErrors.ErrInvalidFilenameFormat
	case errors.Is(err, ErrEmptyWorkbook):
		return ingestErrors.ErrEmptyWorkbook
	case errors.Is(err, ErrUnreadableBinary), errors.Is(err, workbook.ErrUnsupportedFormat):
		return ingestErrors.ErrUnreadableBinary
	default:
		return ingestErrors.ErrInternal
	}
}

// RowError é a falha de uma única linha; a linha é ignorada e a ingestão continua
type RowError struct {
	Row int // Base 1
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

func (e *RowError) ErrorCode() string {
	return ingestErrors.ErrRowParseFailure
}
