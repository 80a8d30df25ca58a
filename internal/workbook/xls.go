package workbook

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/extrame/xls"
	"github.com/pkg/errors"
)

// openXLS lê arquivos BIFF legados; o leitor entrega apenas texto, e os números voltam via xlsCell
func openXLS(data []byte) (wb *Workbook, err error) {
	// a biblioteca entra em pânico com alguns binários corrompidos
	defer func() {
		if r := recover(); r != nil {
			wb = nil
			err = errors.Wrap(ErrUnreadable, fmt.Sprint(r))
		}
	}()

	book, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, errors.Wrap(ErrUnreadable, err.Error())
	}

	if book.NumSheets() == 0 {
		return nil, ErrNoSheets
	}

	names := make([]string, 0, book.NumSheets())
	for i := 0; i < book.NumSheets(); i++ {
		if sh := book.GetSheet(i); sh != nil {
			names = append(names, sh.Name)
		}
	}

	sheet := book.GetSheet(0)
	if sheet == nil {
		return nil, errors.Wrap(ErrUnreadable, "first sheet is not readable")
	}

	rows := make([][]Cell, 0, int(sheet.MaxRow)+1)
	for r := 0; r <= int(sheet.MaxRow); r++ {
		row := sheet.Row(r)
		if row == nil {
			rows = append(rows, nil)
			continue
		}

		cells := make([]Cell, row.LastCol())
		for c := row.FirstCol(); c < row.LastCol(); c++ {
			cells[c] = xlsCell(row.Col(c))
		}
		rows = append(rows, cells)
	}

	return &Workbook{
		Format:     FormatXLS,
		SheetNames: names,
		First:      NewGrid(sheet.Name, trimTrailingEmptyRows(rows)),
	}, nil
}

// trimTrailingEmptyRows remove linhas vazias no fim, que o BIFF costuma reservar
func trimTrailingEmptyRows(rows [][]Cell) [][]Cell {
	last := len(rows) - 1
	for ; last >= 0; last-- {
		if !rowIsEmpty(rows[last]) {
			break
		}
	}
	return rows[:last+1]
}

func rowIsEmpty(row []Cell) bool {
	for _, c := range row {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// xlsCell recupera células numéricas: o leitor formata números com
// strconv.FormatFloat(f, 'f', -1, 64), então só esse formato exato vira número.
// Texto como "1.234,56" ou "0123" continua texto.
func xlsCell(s string) Cell {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || strconv.FormatFloat(f, 'f', -1, 64) != s {
		return TextCell(s)
	}
	return NumberCell(f)
}
