// Package workbook lê a primeira planilha de um arquivo enviado (OOXML, BIFF legado ou CSV)
// e a expõe como uma grade de células em memória.
package workbook

import "strconv"

// CellKind indica o tipo nativo de uma célula
type CellKind int

const (
	CellEmpty CellKind = iota
	CellNumber
	CellText
)

// Cell é o valor bruto de uma célula, antes de qualquer normalização
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
}

// EmptyCell representa uma célula ausente
var EmptyCell = Cell{Kind: CellEmpty}

func NumberCell(v float64) Cell {
	return Cell{Kind: CellNumber, Number: v}
}

func TextCell(s string) Cell {
	if s == "" {
		return EmptyCell
	}
	return Cell{Kind: CellText, Text: s}
}

// IsEmpty retorna verdadeiro quando a célula não tem conteúdo
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// String retorna a representação textual da célula, sem aplicar trim
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellText:
		return c.Text
	default:
		return ""
	}
}
