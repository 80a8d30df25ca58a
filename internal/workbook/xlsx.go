package workbook

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

func openXLSX(data []byte) (*Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(ErrUnreadable, err.Error())
	}
	defer func() {
		if err := f.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar planilha")
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	grid, err := loadXLSXSheet(f, sheets[0])
	if err != nil {
		return nil, err
	}

	return &Workbook{
		Format:     FormatXLSX,
		SheetNames: sheets,
		First:      grid,
	}, nil
}

// loadXLSXSheet carrega a planilha com valores brutos, mantendo números como números
func loadXLSXSheet(f *excelize.File, sheet string) (*Grid, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(ErrUnreadable, "read sheet %q: %v", sheet, err)
	}

	cells := make([][]Cell, len(rows))
	var invalid []CellError

	for r, row := range rows {
		cells[r] = make([]Cell, len(row))
		for c, raw := range row {
			if raw == "" {
				cells[r][c] = EmptyCell
				continue
			}

			ref, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				invalid = append(invalid, CellError{Row: r, Col: c, Err: err})
				continue
			}

			cellType, err := f.GetCellType(sheet, ref)
			if err != nil {
				invalid = append(invalid, CellError{Row: r, Col: c, Err: err})
				continue
			}

			cells[r][c] = xlsxCell(cellType, raw)
		}
	}

	grid := NewGrid(sheet, cells)
	for _, ce := range invalid {
		grid.markInvalid(ce.Row, ce.Col, ce.Err)
	}

	return grid, nil
}

func xlsxCell(cellType excelize.CellType, raw string) Cell {
	switch cellType {
	case excelize.CellTypeUnset, excelize.CellTypeNumber, excelize.CellTypeDate:
		if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			return NumberCell(v)
		}
	}
	return TextCell(raw)
}
