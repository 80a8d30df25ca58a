package workbook

import "fmt"

// Sheet é a visão somente leitura de uma planilha
type Sheet interface {
	Name() string
	// LastRow retorna o índice (base zero) da última linha, ou -1 quando a planilha está vazia
	LastRow() int
	// Cols retorna a largura da linha mais larga
	Cols() int
	Cell(row, col int) (Cell, error)
}

// CellError descreve uma célula que o leitor não conseguiu interpretar
type CellError struct {
	Row int
	Col int
	Err error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("cell %s: %v", cellRef(e.Row, e.Col), e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

// Grid é uma planilha totalmente carregada em memória
type Grid struct {
	name     string
	rows     [][]Cell
	cols     int
	cellErrs map[[2]int]error
}

// NewGrid cria uma planilha em memória a partir das linhas informadas
func NewGrid(name string, rows [][]Cell) *Grid {
	g := &Grid{
		name: name,
		rows: rows,
	}

	for _, row := range rows {
		if len(row) > g.cols {
			g.cols = len(row)
		}
	}

	return g
}

// markInvalid registra uma célula ilegível; a leitura dela passa a retornar erro
func (g *Grid) markInvalid(row, col int, err error) {
	if g.cellErrs == nil {
		g.cellErrs = make(map[[2]int]error)
	}
	g.cellErrs[[2]int{row, col}] = err
}

func (g *Grid) Name() string {
	return g.name
}

func (g *Grid) LastRow() int {
	return len(g.rows) - 1
}

func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) Cell(row, col int) (Cell, error) {
	if err, bad := g.cellErrs[[2]int{row, col}]; bad {
		return EmptyCell, &CellError{Row: row, Col: col, Err: err}
	}

	if row < 0 || row >= len(g.rows) || col < 0 {
		return EmptyCell, nil
	}

	cells := g.rows[row]
	if col >= len(cells) {
		return EmptyCell, nil
	}

	return cells[col], nil
}

// cellRef monta a referência A1 sem depender do pacote columns
func cellRef(row, col int) string {
	label := ""
	for n := col; n >= 0; n = n/26 - 1 {
		label = string(rune('A'+n%26)) + label
	}
	return fmt.Sprintf("%s%d", label, row+1)
}
