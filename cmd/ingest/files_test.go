package main

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-ingest/internal/columns"
	"github.com/vfg2006/sales-performance-ingest/internal/domain"
	"github.com/vfg2006/sales-performance-ingest/internal/usecases/ingesting"
	"github.com/vfg2006/sales-performance-ingest/internal/workbook"
	"github.com/vfg2006/sales-performance-ingest/pkg/ingestErrors"
)

func TestIngestFiles(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "2024.06.01 Export.csv")
	require.NoError(t, os.WriteFile(good, []byte("N.;Agente;SM\n1;Rossi;Verdi\n2;Bianchi;\n;;\n"), 0o600))

	badName := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(badName, []byte("N.;Agente\n1;Rossi\n"), 0o600))

	service := ingesting.NewService(workbook.NewReader(), columns.Default())

	var out bytes.Buffer
	status := ingestFiles(context.Background(), service, []string{good, badName, filepath.Join(dir, "missing.csv")}, &out, false)
	assert.Equal(t, ingestErrors.ExitStatus(ingestErrors.ErrInvalidFilenameFormat), status)

	var results []domain.IngestionResult
	scanner := bufio.NewScanner(&out)
	scanner.Buffer(make([]byte, 1<<20), 1<<20)
	for scanner.Scan() {
		var r domain.IngestionResult
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &r))
		results = append(results, r)
	}
	require.Len(t, results, 3)

	assert.True(t, results[0].Success)
	assert.Len(t, results[0].Records, 2)
	assert.Equal(t, "2024-06", results[0].ReportingPeriod.Key)
	assert.Equal(t, "csv", results[0].FileInfo.Format)
	assert.NotEmpty(t, results[0].Diagnostics)

	assert.False(t, results[1].Success)
	assert.False(t, results[2].Success)
}

func TestIngestFiles_Pretty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "2024.06.01 Export.csv")
	require.NoError(t, os.WriteFile(path, []byte("N.;Agente\n1;Rossi\n"), 0o600))

	var out bytes.Buffer
	status := ingestFiles(context.Background(), ingesting.NewService(workbook.NewReader(), columns.Default()), []string{path}, &out, true)

	assert.Equal(t, 0, status)
	assert.Contains(t, out.String(), "\n\t\"success\": true")
	assert.Contains(t, out.String(), "\n\t\"records\": [")
	assert.Contains(t, out.String(), "\n\t\"diagnostics\": [")

	var result domain.IngestionResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	require.Len(t, result.Records, 1)
	assert.Equal(t, "Rossi", result.Records[0].Nome)
}

func TestLoadColumnMap(t *testing.T) {
	cm, err := loadColumnMap("")
	require.NoError(t, err)
	assert.Equal(t, columns.Default(), cm)

	_, err = loadColumnMap(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
