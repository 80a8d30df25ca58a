package ingesting

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vfg2006/sales-performance-ingest/internal/columns"
	"github.com/vfg2006/sales-performance-ingest/internal/domain"
	"github.com/vfg2006/sales-performance-ingest/internal/normalize"
	"github.com/vfg2006/sales-performance-ingest/internal/workbook"
)

// MinNameLength é o tamanho mínimo do nome para a linha virar registro
const MinNameLength = 2

// rowParser lê os campos de uma linha. Erros de célula interrompem a linha;
// os avisos de coluna ausente e de coerção só são publicados se a linha virar registro.
type rowParser struct {
	sheet   workbook.Sheet
	row     int
	cm      columns.ColumnMap
	diags   *Diagnostics
	pending []domain.Diagnostic
	missing []columns.Field
	err     error
}

// ParseRow monta o registro da linha (base zero). Retorna nil sem erro quando a linha
// não é um registro: nome em branco ou menor que MinNameLength.
func ParseRow(sheet workbook.Sheet, row int, cm columns.ColumnMap, diags *Diagnostics) (*domain.SalespersonRecord, error) {
	p := &rowParser{sheet: sheet, row: row, cm: cm, diags: diags}

	name := p.text(columns.FieldAgente)
	if p.err != nil {
		return nil, p.err
	}
	if name == "" || utf8.RuneCountInString(name) < MinNameLength {
		return nil, nil
	}

	rec := &domain.SalespersonRecord{
		Numero:         p.count(columns.FieldNumero),
		Nome:           name,
		TeamLead:       p.text(columns.FieldSM),
		SecondaryOwner: p.text(columns.FieldResponsabile),
		Distretto:      p.text(columns.FieldDistretto),
		Ruolo:          p.text(columns.FieldRuolo),
		Prodotti: domain.ProductCounts{
			Casa:            p.count(columns.FieldCasa),
			Business:        p.count(columns.FieldBusiness),
			Mobile:          p.count(columns.FieldMobile),
			ADSL:            p.count(columns.FieldADSL),
			Fibra:           p.count(columns.FieldFibra),
			FibraBusiness:   p.count(columns.FieldFibraBusiness),
			Luce:            p.count(columns.FieldLuce),
			Gas:             p.count(columns.FieldGas),
			Station:         p.count(columns.FieldStation),
			FastwebMobile:   p.count(columns.FieldFastwebMobile),
			FastwebCasa:     p.count(columns.FieldFastwebCasa),
			FastwebBusiness: p.count(columns.FieldFastwebBusiness),
		},
		Fatturato: domain.RevenueBreakdown{
			Voce:        p.amount(columns.FieldFatturatoVoce),
			Dati:        p.amount(columns.FieldFatturatoDati),
			Energia:     p.amount(columns.FieldFatturatoEnergia),
			Fastweb:     p.amount(columns.FieldFatturatoFastweb),
			Complessivo: p.amount(columns.FieldFatturatoRush),
		},
		NuoviClienti:   p.count(columns.FieldNuoviClienti),
		FastwebEnergia: p.count(columns.FieldFastwebEnergia),
		InflowTotale:   p.number(columns.FieldInflowTotale),
		Row:            row + 1,
	}
	if p.err != nil {
		return nil, p.err
	}

	if rec.TeamLead == "" {
		rec.TeamLead = domain.NoTeamLead
	}
	rec.ComputeTotals()

	for _, f := range p.missing {
		p.diags.MissingColumn(f, p.cm.Label(f))
	}
	for _, d := range p.pending {
		p.diags.Add(d)
	}

	return rec, nil
}

// cell lê a célula do campo; ok=false quando a coluna não existe ou a linha já falhou
func (p *rowParser) cell(f columns.Field) (workbook.Cell, bool) {
	if p.err != nil {
		return workbook.EmptyCell, false
	}

	col := p.cm.Position(f)
	if col >= p.sheet.Cols() {
		p.missing = append(p.missing, f)
		return workbook.EmptyCell, false
	}

	c, err := p.sheet.Cell(p.row, col)
	if err != nil {
		p.err = &RowError{Row: p.row + 1, Err: fmt.Errorf("field %s: %w", f, err)}
		return workbook.EmptyCell, false
	}

	return c, true
}

func (p *rowParser) text(f columns.Field) string {
	c, ok := p.cell(f)
	if !ok {
		return ""
	}
	return normalize.Normalize(c, normalize.String).Text
}

func (p *rowParser) number(f columns.Field) float64 {
	c, ok := p.cell(f)
	if !ok {
		return 0
	}

	v := normalize.Normalize(c, normalize.Number)
	if v.Coerced {
		p.coerced(f, fmt.Sprintf("%s: valore %q non numerico, impostato a 0", f.Description(), normalize.ToString(c)))
	}
	return v.Number
}

// amount é um valor monetário não negativo
func (p *rowParser) amount(f columns.Field) float64 {
	v := p.number(f)
	if v < 0 {
		p.coerced(f, fmt.Sprintf("%s: valore negativo %v impostato a 0", f.Description(), v))
		return 0
	}
	return v
}

// MaxCount é o maior valor aceito em uma quantidade; acima disso o valor vira zero
const MaxCount = math.MaxInt32

// count é uma quantidade inteira não negativa
func (p *rowParser) count(f columns.Field) int {
	v := math.Round(p.amount(f))
	if v > MaxCount {
		p.coerced(f, fmt.Sprintf("%s: valore %v fuori intervallo, impostato a 0", f.Description(), v))
		return 0
	}
	return int(v)
}

func (p *rowParser) coerced(f columns.Field, description string) {
	if !p.diags.reportCoercions {
		return
	}

	p.pending = append(p.pending, domain.Diagnostic{
		Field:       f.String(),
		Description: description,
		Severity:    domain.SeverityInfo,
		Row:         p.row + 1,
	})
}
