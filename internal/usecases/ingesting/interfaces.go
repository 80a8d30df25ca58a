package ingesting

import (
	"context"

	"github.com/vfg2006/sales-performance-ingest/internal/domain"
	"github.com/vfg2006/sales-performance-ingest/internal/workbook"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// WorkbookOpener define a leitura do arquivo enviado
type WorkbookOpener interface {
	// Open carrega a primeira planilha do conteúdo em memória
	Open(filename string, data []byte) (*workbook.Workbook, error)
}

// Ingester define a ingestão de um arquivo
type Ingester interface {
	// Ingest nunca retorna erro: falhas do arquivo vêm no próprio resultado.
	// O contexto é usado apenas para o ID de correlação dos logs.
	Ingest(ctx context.Context, upload domain.Upload) *domain.IngestionResult
}
