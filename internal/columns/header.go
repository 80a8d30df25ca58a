package columns

import (
	"strings"

	"github.com/vfg2006/sales-performance-ingest/internal/normalize"
	"github.com/vfg2006/sales-performance-ingest/internal/workbook"
)

const (
	// HeaderKeyword identifica a linha de cabeçalho na coluna do nome
	HeaderKeyword = "agente"
	// HeaderScanRows é a última linha (base zero) examinada
	HeaderScanRows = 10
	// FallbackHeaderRow é usada quando nenhuma linha contém o cabeçalho.
	// Se o cabeçalho real estiver em outro lugar, os dados ficam desalinhados.
	FallbackHeaderRow = 4
)

// FindHeaderRow procura o cabeçalho na coluna do nome, nas linhas 0..min(10, última).
// Retorna a linha de fallback e found=false quando não encontra.
func FindHeaderRow(sheet workbook.Sheet, nameCol int) (row int, found bool) {
	last := sheet.LastRow()
	if last > HeaderScanRows {
		last = HeaderScanRows
	}

	for r := 0; r <= last; r++ {
		cell, err := sheet.Cell(r, nameCol)
		if err != nil {
			continue
		}

		if strings.Contains(strings.ToLower(normalize.ToString(cell)), HeaderKeyword) {
			return r, true
		}
	}

	return FallbackHeaderRow, false
}
