package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-ingest/internal/domain"
	"github.com/vfg2006/sales-performance-ingest/internal/usecases/ingesting"
	"github.com/vfg2006/sales-performance-ingest/pkg/ingestErrors"
	"github.com/vfg2006/sales-performance-ingest/pkg/log"
	"github.com/vfg2006/sales-performance-ingest/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ingestFiles imprime um resultado JSON por linha (ou indentado) e retorna o status de saída
// do primeiro arquivo que falhou
func ingestFiles(ctx context.Context, ingester ingesting.Ingester, paths []string, out io.Writer, pretty bool) int {
	status := 0

	for _, path := range paths {
		fileCtx, _ := log.WithCorrelationID(ctx)

		result := ingestPath(fileCtx, ingester, path)
		if !result.Success && status == 0 {
			status = exitStatusOf(result)
		}

		if err := writeResult(out, result, pretty); err != nil {
			logrus.WithError(err).Error("Erro ao escrever resultado")
			return ingestErrors.ExitStatus(ingestErrors.ErrInternal)
		}
	}

	return status
}

func ingestPath(ctx context.Context, ingester ingesting.Ingester, path string) *domain.IngestionResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return &domain.IngestionResult{
			Success: false,
			Error:   err.Error(),
			Detail:  ingestErrors.FromError(err, map[string]any{"file": path}),
		}
	}

	return ingester.Ingest(ctx, domain.Upload{Name: filepath.Base(path), Data: data})
}

func exitStatusOf(result *domain.IngestionResult) int {
	if detail, ok := result.Detail.(ingestErrors.ErrorDetail); ok {
		return ingestErrors.ExitStatus(detail.Code)
	}
	return ingestErrors.ExitStatus(ingestErrors.ErrInternal)
}

func writeResult(out io.Writer, result *domain.IngestionResult, pretty bool) error {
	if pretty {
		_, err := io.WriteString(out, utils.PrettyJson(result)+"\n")
		return err
	}

	return json.NewEncoder(out).Encode(result)
}
