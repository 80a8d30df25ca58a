package workbook

import (
	"bytes"
	"encoding/csv"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// openCSV lê exportações CSV; o separador (';' ou ',') é detectado pela primeira linha
func openCSV(name string, data []byte) (*Workbook, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoSheets
	}

	reader := csv.NewReader(decodeText(data))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]Cell
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(ErrUnreadable, "csv line %d: %v", len(rows)+1, err)
		}

		cells := make([]Cell, len(record))
		for i, v := range record {
			cells[i] = TextCell(v)
		}
		rows = append(rows, cells)
	}

	return &Workbook{
		Format:     FormatCSV,
		SheetNames: []string{name},
		First:      NewGrid(name, rows),
	}, nil
}

// decodeText converte para UTF-8: BOM UTF-8/UTF-16 quando presente, senão Windows-1252
// para arquivos que não são UTF-8 válido (exportações do Excel italiano)
func decodeText(data []byte) io.Reader {
	if hasBOM(data) || utf8.Valid(data) {
		return transform.NewReader(bytes.NewReader(data), unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	}
	return transform.NewReader(bytes.NewReader(data), charmap.Windows1252.NewDecoder())
}

func hasBOM(data []byte) bool {
	return bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) ||
		bytes.HasPrefix(data, []byte{0xFF, 0xFE}) ||
		bytes.HasPrefix(data, []byte{0xFE, 0xFF})
}

func detectDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}

	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}
