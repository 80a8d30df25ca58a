package ingesting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-ingest/internal/columns"
	"github.com/vfg2006/sales-performance-ingest/internal/domain"
	"github.com/vfg2006/sales-performance-ingest/internal/workbook"
)

func TestParseRow_SkipsBlankAndShortNames(t *testing.T) {
	tests := []struct {
		name string
		cell workbook.Cell
	}{
		{"nome vazio", workbook.EmptyCell},
		{"só espaços", workbook.TextCell("   ")},
		{"uma letra", workbook.TextCell(" R ")},
		{"um caractere acentuado", workbook.TextCell("È")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := agent("x", "Verdi", 10, 10)
			row[columns.Default().Position(columns.FieldAgente)] = tt.cell
			sheet := workbook.NewGrid("Sheet1", [][]workbook.Cell{row})
			diags := NewDiagnostics(true)

			rec, err := ParseRow(sheet, 0, columns.Default(), diags)
			require.NoError(t, err)
			assert.Nil(t, rec)
			assert.Zero(t, diags.Len())
		})
	}
}

func TestParseRow_MissingRevenueColumn(t *testing.T) {
	cm, err := columns.Default().WithOverrides(map[string]string{"FATTURATO_RUSH": "AZ"})
	require.NoError(t, err)

	rows := [][]workbook.Cell{
		agent("Rossi", "Verdi", 999, 10),
		agent("Bianchi", "Verdi", 999, 20),
	}
	sheet := workbook.NewGrid("Sheet1", rows)
	diags := NewDiagnostics(false)

	for i := range rows {
		rec, err := ParseRow(sheet, i, cm, diags)
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, 0.0, rec.Fatturato.Complessivo)
		assert.Equal(t, 0.0, rec.TotaliProdotti.FatturatoTotale)
	}

	items := diags.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "FATTURATO_RUSH", items[0].Field)
	assert.Equal(t, domain.SeverityWarning, items[0].Severity)
	assert.Contains(t, items[0].Description, "AZ")
}

func TestParseRow_DerivedTotals(t *testing.T) {
	values := map[columns.Field]workbook.Cell{
		columns.FieldNumero:           workbook.NumberCell(7),
		columns.FieldAgente:           workbook.TextCell("  Mario Rossi "),
		columns.FieldResponsabile:     workbook.TextCell("Neri"),
		columns.FieldDistretto:        workbook.TextCell("Romagna"),
		columns.FieldRuolo:            workbook.TextCell("Senior"),
		columns.FieldCasa:             workbook.NumberCell(1),
		columns.FieldBusiness:         workbook.NumberCell(2),
		columns.FieldMobile:           workbook.TextCell("3"),
		columns.FieldADSL:             workbook.NumberCell(4),
		columns.FieldFibra:            workbook.NumberCell(5),
		columns.FieldFibraBusiness:    workbook.NumberCell(6),
		columns.FieldLuce:             workbook.NumberCell(7),
		columns.FieldGas:              workbook.NumberCell(8),
		columns.FieldStation:          workbook.NumberCell(9),
		columns.FieldFastwebMobile:    workbook.NumberCell(10),
		columns.FieldFastwebCasa:      workbook.NumberCell(11),
		columns.FieldFastwebBusiness:  workbook.NumberCell(12),
		columns.FieldFastwebEnergia:   workbook.NumberCell(13),
		columns.FieldNuoviClienti:     workbook.NumberCell(14),
		columns.FieldFatturatoVoce:    workbook.TextCell("100,50"),
		columns.FieldFatturatoDati:    workbook.NumberCell(200),
		columns.FieldFatturatoEnergia: workbook.NumberCell(300),
		columns.FieldFatturatoFastweb: workbook.NumberCell(400),
		columns.FieldFatturatoRush:    workbook.TextCell("€ 1.500,00"),
		columns.FieldInflowTotale:     workbook.NumberCell(-20),
	}
	sheet := workbook.NewGrid("Sheet1", [][]workbook.Cell{sheetRow(values)})

	rec, err := ParseRow(sheet, 0, columns.Default(), NewDiagnostics(false))
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, 7, rec.Numero)
	assert.Equal(t, "Mario Rossi", rec.Nome)
	assert.Equal(t, domain.NoTeamLead, rec.TeamLead)
	assert.Equal(t, "Neri", rec.SecondaryOwner)
	assert.Equal(t, 3, rec.Prodotti.Mobile)
	assert.Equal(t, 100.5, rec.Fatturato.Voce)
	assert.Equal(t, 13, rec.FastwebEnergia)
	assert.Equal(t, 14, rec.NuoviClienti)
	assert.Equal(t, -20.0, rec.InflowTotale)

	// complessivo vem da própria coluna, mesmo diferente da soma das categorias
	assert.Equal(t, 1500.0, rec.Fatturato.Complessivo)
	assert.Equal(t, domain.ProductTotals{
		PezziTotali:     78,
		FatturatoTotale: 1500,
		Voce:            6,
		Dati:            15,
		Energia:         15,
		Fastweb:         46,
	}, rec.TotaliProdotti)
}

func TestParseRow_CellErrorIsRowError(t *testing.T) {
	sheet := flakySheet{
		Grid:   workbook.NewGrid("Sheet1", [][]workbook.Cell{agent("Rossi", "Verdi", 1, 1)}),
		badRow: 0,
	}

	rec, err := ParseRow(sheet, 0, columns.Default(), NewDiagnostics(true))
	assert.Nil(t, rec)

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 1, rowErr.Row)
	assert.Contains(t, err.Error(), "FATTURATO_RUSH")

	var cellErr *workbook.CellError
	assert.ErrorAs(t, err, &cellErr)
}

func TestAggregate_Empty(t *testing.T) {
	aggregates, totals := Aggregate(nil)
	assert.Empty(t, aggregates)
	assert.Equal(t, domain.GrandTotals{}, totals)
}

func TestParseRow_MissingNameColumnIsSilent(t *testing.T) {
	cm, err := columns.Default().WithOverrides(map[string]string{"AGENTE": "AZ"})
	require.NoError(t, err)

	sheet := workbook.NewGrid("Sheet1", [][]workbook.Cell{agent("Rossi", "Verdi", 10, 10)})
	diags := NewDiagnostics(true)

	rec, err := ParseRow(sheet, 0, cm, diags)
	require.NoError(t, err)
	assert.Nil(t, rec)
	assert.Zero(t, diags.Len())
}

func TestParseRow_FailedRowLeavesNoDiagnostics(t *testing.T) {
	cm, err := columns.Default().WithOverrides(map[string]string{"FATTURATO_VOCE": "AZ"})
	require.NoError(t, err)

	sheet := flakySheet{
		Grid: workbook.NewGrid("Sheet1", [][]workbook.Cell{
			agent("Rossi", "Verdi", 1, 1),
			agent("Bianchi", "Verdi", 2, 2),
		}),
		badRow: 0,
	}
	diags := NewDiagnostics(true)

	_, err = ParseRow(sheet, 0, cm, diags)
	require.Error(t, err)
	assert.Zero(t, diags.Len())

	rec, err := ParseRow(sheet, 1, cm, diags)
	require.NoError(t, err)
	require.NotNil(t, rec)

	items := diags.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "FATTURATO_VOCE", items[0].Field)
	assert.Equal(t, domain.SeverityWarning, items[0].Severity)
}

func TestParseRow_CountOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		cell workbook.Cell
		want int
	}{
		{"limite aceito", workbook.NumberCell(MaxCount), MaxCount},
		{"acima do limite", workbook.NumberCell(1e20), 0},
		{"texto acima do float64", workbook.TextCell(strings.Repeat("9", 400)), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := agent("Rossi", "Verdi", 10, 10)
			row[columns.Default().Position(columns.FieldGas)] = tt.cell
			sheet := workbook.NewGrid("Sheet1", [][]workbook.Cell{row})
			diags := NewDiagnostics(true)

			rec, err := ParseRow(sheet, 0, columns.Default(), diags)
			require.NoError(t, err)
			require.NotNil(t, rec)
			assert.Equal(t, tt.want, rec.Prodotti.Gas)
			assert.GreaterOrEqual(t, rec.TotaliProdotti.PezziTotali, 0)

			if tt.want == 0 {
				require.Equal(t, 1, diags.Len())
				assert.Equal(t, "GAS", diags.Items()[0].Field)
			} else {
				assert.Zero(t, diags.Len())
			}
		})
	}
}
