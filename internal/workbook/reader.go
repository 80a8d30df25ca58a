package workbook

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Erros de leitura do arquivo
var (
	ErrNoSheets          = errors.New("workbook has no sheets")
	ErrUnreadable        = errors.New("unreadable workbook")
	ErrUnsupportedFormat = errors.New("unsupported workbook format")
)

// Format identifica o formato binário do arquivo
type Format string

const (
	FormatXLSX    Format = "xlsx"
	FormatXLS     Format = "xls"
	FormatCSV     Format = "csv"
	FormatUnknown Format = "unknown"
)

var (
	zipMagic = []byte{'P', 'K', 0x03, 0x04}
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// Workbook é o resultado da leitura: apenas a primeira planilha é carregada
type Workbook struct {
	Format     Format
	SheetNames []string
	First      Sheet
}

// Reader abre arquivos enviados a partir do buffer em memória
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// Open detecta o formato e carrega a primeira planilha do arquivo
func (r *Reader) Open(filename string, data []byte) (*Workbook, error) {
	format := DetectFormat(filename, data)

	logrus.WithFields(logrus.Fields{
		"file":   filename,
		"format": format,
		"bytes":  len(data),
	}).Debug("Abrindo planilha")

	switch format {
	case FormatXLSX:
		return openXLSX(data)
	case FormatXLS:
		return openXLS(data)
	case FormatCSV:
		return openCSV(sheetNameFromFile(filename), data)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "file %q", filename)
	}
}

// DetectFormat escolhe o formato pela extensão e, na dúvida, pelos bytes iniciais
func DetectFormat(filename string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	case ".xls":
		// exportações antigas às vezes salvam OOXML com extensão .xls
		if bytes.HasPrefix(data, zipMagic) {
			return FormatXLSX
		}
		return FormatXLS
	case ".csv", ".txt":
		return FormatCSV
	}

	switch {
	case bytes.HasPrefix(data, zipMagic):
		return FormatXLSX
	case bytes.HasPrefix(data, oleMagic):
		return FormatXLS
	}

	return FormatUnknown
}

func sheetNameFromFile(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
